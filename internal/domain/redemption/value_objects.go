package redemption

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRate  = errors.New("conversion rate must be positive")
	ErrInvalidOffer = errors.New("offer cost must be a positive number of points")
)

// Rate is the fixed points-per-currency-unit conversion used by
// cash-out claims (e.g. 50 means 50 pts = $1).
type Rate int

func NewRate(pointsPerUnit int) (Rate, error) {
	if pointsPerUnit <= 0 {
		return 0, ErrInvalidRate
	}
	return Rate(pointsPerUnit), nil
}

// CashValue converts a point cost to currency, rounded to two decimals.
// The stored point cost stays an exact integer; only the displayed cash
// amount is fractional.
func (r Rate) CashValue(cost int) float64 {
	return math.Round(float64(cost)/float64(r)*100) / 100
}

func (r Rate) FormatCash(cost int) string {
	return fmt.Sprintf("$%.2f", r.CashValue(cost))
}

type Kind string

const (
	KindCashOut       Kind = "cash_out"
	KindCatalogReward Kind = "catalog_reward"
	KindDiscountOffer Kind = "discount_offer"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCashOut, KindCatalogReward, KindDiscountOffer:
		return true
	default:
		return false
	}
}
