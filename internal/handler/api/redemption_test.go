//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"korvo/internal/domain/business"
	"korvo/internal/domain/redemption"
	"korvo/internal/handler/api"
	"korvo/internal/infra/memstore"
	"korvo/internal/pkg/clock"
	"korvo/internal/usecase/commands"
	"korvo/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	catalog *memstore.CatalogStore
	ledger  *memstore.Ledger
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	b := builder.NewBusinessBuilder().Build()
	s.catalog = memstore.NewCatalogStore(
		[]*business.Business{b},
		[]business.Discount{{Label: "Envío Gratis", Cost: 200}},
	)
	s.ledger = memstore.NewLedger()

	rate, err := redemption.NewRate(50)
	s.Require().NoError(err)
	clk := clock.NewFixedClock(time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))
	engine := redemption.NewEngine(rate, clk)

	handler := api.NewRedemptionHandler(commands.NewRedemptionCommands(engine, s.catalog, s.ledger))

	s.router.GET("/redemption", handler.Current)
	s.router.POST("/redemption/stage", handler.Stage)
	s.router.POST("/redemption/confirm", handler.Confirm)
	s.router.POST("/redemption/cancel", handler.Cancel)
}

func (s *RedemptionHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RedemptionHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RedemptionHandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *RedemptionHandlerTestSuite) TestStage() {
	rec := s.postJSON("/redemption/stage", gin.H{
		"businessId":     1,
		"kind":           "cash_out",
		"pointsToRedeem": 150,
	})

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal("cash_out", body["kind"])
	s.Equal("$3.00", body["value"])
	s.Equal(float64(200), body["projectedBalance"])
}

func (s *RedemptionHandlerTestSuite) TestStageInvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/redemption/stage", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RedemptionHandlerTestSuite) TestStageUnknownBusiness() {
	rec := s.postJSON("/redemption/stage", gin.H{
		"businessId":     99,
		"kind":           "cash_out",
		"pointsToRedeem": 150,
	})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RedemptionHandlerTestSuite) TestStageInsufficientPoints() {
	rec := s.postJSON("/redemption/stage", gin.H{
		"businessId":     1,
		"kind":           "cash_out",
		"pointsToRedeem": 999,
	})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *RedemptionHandlerTestSuite) TestStageUnknownReward() {
	rec := s.postJSON("/redemption/stage", gin.H{
		"businessId": 1,
		"kind":       "catalog_reward",
		"rewardId":   "missing",
	})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RedemptionHandlerTestSuite) TestConfirm() {
	rec := s.postJSON("/redemption/stage", gin.H{
		"businessId":     1,
		"kind":           "cash_out",
		"pointsToRedeem": 150,
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.postJSON("/redemption/confirm", nil)
	s.Equal(http.StatusOK, rec.Code)

	body := s.decode(rec)
	s.Equal(float64(200), body["newBalance"])

	claim, ok := body["claim"].(map[string]any)
	s.Require().True(ok)
	s.Equal("$3.00", claim["value"])
	s.Equal(1, s.ledger.Count())
}

func (s *RedemptionHandlerTestSuite) TestConfirmWithoutStage() {
	rec := s.postJSON("/redemption/confirm", nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RedemptionHandlerTestSuite) TestCancel() {
	rec := s.postJSON("/redemption/stage", gin.H{
		"businessId":     1,
		"kind":           "cash_out",
		"pointsToRedeem": 150,
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.postJSON("/redemption/cancel", nil)
	s.Equal(http.StatusNoContent, rec.Code)

	// Cancelling with nothing staged stays a no-op.
	rec = s.postJSON("/redemption/cancel", nil)
	s.Equal(http.StatusNoContent, rec.Code)

	current := s.decode(s.get("/redemption"))
	s.Equal("idle", current["state"])
}

func (s *RedemptionHandlerTestSuite) TestCurrent() {
	current := s.decode(s.get("/redemption"))
	s.Equal("idle", current["state"])
	s.Nil(current["staged"])

	rec := s.postJSON("/redemption/stage", gin.H{
		"businessId":    1,
		"kind":          "discount_offer",
		"discountLabel": "Envío Gratis",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	current = s.decode(s.get("/redemption"))
	s.Equal("staged", current["state"])
	staged, ok := current["staged"].(map[string]any)
	s.Require().True(ok)
	s.Equal("Envío Gratis", staged["title"])
}

func TestRedemptionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}
