package redemption

import (
	"errors"

	"korvo/internal/domain/business"
)

var ErrNoStagedClaim = errors.New("no staged claim to act on")

type State string

const (
	StateIdle   State = "idle"
	StateStaged State = "staged"
)

func (s State) String() string {
	return string(s)
}

// StagedClaim is the snapshot captured at staging time. The projected
// balance is for display only; Confirm recomputes against the live
// balance instead of trusting it.
type StagedClaim struct {
	Offer            Offer
	BusinessID       int64
	BusinessName     string
	BalanceBefore    int
	ProjectedBalance int
}

// Flow is the short-lived confirmation state machine:
// idle -> staged -> (confirm | cancel) -> idle.
// Appending the committed item to the ledger belongs to the caller, so
// balance mutation and history recording stay independently testable.
type Flow struct {
	engine *Engine
	state  State
	staged *StagedClaim
}

func NewFlow(engine *Engine) *Flow {
	return &Flow{engine: engine, state: StateIdle}
}

// Stage validates and snapshots a pending claim. Staging while already
// staged replaces the pending claim, mirroring a user picking a
// different reward before confirming.
func (f *Flow) Stage(b *business.Business, offer Offer) (*StagedClaim, error) {
	if err := f.engine.Validate(b, offer); err != nil {
		return nil, err
	}

	f.staged = &StagedClaim{
		Offer:            offer,
		BusinessID:       b.ID(),
		BusinessName:     b.Name(),
		BalanceBefore:    b.PointBalance(),
		ProjectedBalance: b.PointBalance() - offer.cost,
	}
	f.state = StateStaged
	return f.staged, nil
}

// Confirm re-validates against the live balance and commits. The flow
// returns to idle whether the commit succeeds or fails; a failed
// re-validation surfaces the error with no mutation.
func (f *Flow) Confirm(b *business.Business) (*ClaimedItem, error) {
	if f.state != StateStaged || f.staged == nil {
		return nil, ErrNoStagedClaim
	}

	staged := f.staged
	f.reset()

	item, err := f.engine.Commit(b, staged.Offer)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Cancel discards any staged claim. Always safe; cancelling an idle
// flow is a no-op.
func (f *Flow) Cancel() {
	f.reset()
}

func (f *Flow) State() State {
	return f.state
}

// Staged returns the pending snapshot, or nil when idle.
func (f *Flow) Staged() *StagedClaim {
	if f.state != StateStaged {
		return nil
	}
	snapshot := *f.staged
	return &snapshot
}

func (f *Flow) reset() {
	f.staged = nil
	f.state = StateIdle
}
