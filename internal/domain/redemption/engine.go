package redemption

import (
	"errors"

	"korvo/internal/domain/business"
	"korvo/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrInsufficientPoints = errors.New("offer cost exceeds point balance")

// Engine is the sole authority for converting a business's point
// balance into claimed items. It validates offers against the live
// balance and performs the debit and the claim construction as one
// synchronous step, so a failed claim never leaves partial state.
type Engine struct {
	rate  Rate
	clock clock.Clock
}

func NewEngine(rate Rate, clk clock.Clock) *Engine {
	return &Engine{rate: rate, clock: clk}
}

// Validate checks an offer against the business's current balance
// without side effects.
func (e *Engine) Validate(b *business.Business, offer Offer) error {
	if !offer.kind.IsValid() || offer.cost <= 0 {
		return ErrInvalidOffer
	}
	if offer.cost > b.PointBalance() {
		return ErrInsufficientPoints
	}
	return nil
}

// Commit debits the offer's exact integer cost and returns the new
// claimed item. Callers must re-validate immediately before commit;
// Commit re-checks anyway and refuses rather than mutate on a stale or
// invalid offer.
func (e *Engine) Commit(b *business.Business, offer Offer) (*ClaimedItem, error) {
	if err := e.Validate(b, offer); err != nil {
		return nil, err
	}
	if err := b.Debit(offer.cost); err != nil {
		// Unreachable after Validate in a single-step commit; surfaced
		// loudly instead of swallowed so a contract break is a defect,
		// not silent corruption.
		return nil, err
	}

	return &ClaimedItem{
		id:           uuid.New(),
		kind:         offer.kind,
		cost:         offer.cost,
		businessID:   b.ID(),
		businessName: b.Name(),
		title:        offer.title,
		value:        offer.Value(e.rate),
		claimedAt:    e.clock.Now(),
	}, nil
}

func (e *Engine) Rate() Rate {
	return e.rate
}
