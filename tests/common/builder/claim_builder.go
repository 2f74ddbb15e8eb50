//go:build unit || e2e

package builder

import (
	"time"

	"korvo/internal/domain/redemption"

	"github.com/google/uuid"
)

type ClaimBuilder struct {
	ID           uuid.UUID
	Kind         redemption.Kind
	Cost         int
	BusinessID   int64
	BusinessName string
	Title        string
	Value        string
	ClaimedAt    time.Time
}

func NewClaimBuilder() *ClaimBuilder {
	return &ClaimBuilder{
		ID:           uuid.New(),
		Kind:         redemption.KindCatalogReward,
		Cost:         300,
		BusinessID:   1,
		BusinessName: "Dark Roast Lab",
		Title:        "Muffin de Arándanos",
		Value:        "300 pts",
		ClaimedAt:    time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func (c *ClaimBuilder) With(mutate func(*ClaimBuilder)) *ClaimBuilder {
	mutate(c)
	return c
}

func (c *ClaimBuilder) Build() *redemption.ClaimedItem {
	return redemption.ReconstructClaimedItem(
		c.ID, c.Kind, c.Cost, c.BusinessID, c.BusinessName, c.Title, c.Value, c.ClaimedAt,
	)
}
