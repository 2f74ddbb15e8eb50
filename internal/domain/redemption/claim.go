package redemption

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ClaimedItem is the committed record of a claim. It is created only by
// a successful Engine.Commit, removable by explicit user deletion, and
// never mutated otherwise. The business reference is denormalized at
// claim time and does not track later changes to the business record.
type ClaimedItem struct {
	id           uuid.UUID
	kind         Kind
	cost         int
	businessID   int64
	businessName string
	title        string
	value        string
	claimedAt    time.Time
}

func ReconstructClaimedItem(
	id uuid.UUID,
	kind Kind,
	cost int,
	businessID int64,
	businessName, title, value string,
	claimedAt time.Time,
) *ClaimedItem {
	return &ClaimedItem{
		id:           id,
		kind:         kind,
		cost:         cost,
		businessID:   businessID,
		businessName: businessName,
		title:        title,
		value:        value,
		claimedAt:    claimedAt,
	}
}

func (c *ClaimedItem) ID() uuid.UUID        { return c.id }
func (c *ClaimedItem) Kind() Kind           { return c.kind }
func (c *ClaimedItem) Cost() int            { return c.cost }
func (c *ClaimedItem) BusinessID() int64    { return c.businessID }
func (c *ClaimedItem) BusinessName() string { return c.businessName }
func (c *ClaimedItem) Title() string        { return c.title }
func (c *ClaimedItem) Value() string        { return c.value }
func (c *ClaimedItem) ClaimedAt() time.Time { return c.claimedAt }

func formatPoints(cost int) string {
	return fmt.Sprintf("%d pts", cost)
}
