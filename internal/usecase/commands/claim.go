package commands

import (
	"errors"

	"github.com/google/uuid"
)

type ClaimCommands interface {
	// Remove deletes a claim from the ledger. Removing an unknown id
	// is a no-op; user-initiated cleanup is idempotent.
	Remove(id uuid.UUID)
}

type claimCommandsImpl struct {
	ledger ClaimLedger
}

func NewClaimCommands(ledger ClaimLedger) ClaimCommands {
	return &claimCommandsImpl{ledger: ledger}
}

func (c *claimCommandsImpl) Remove(id uuid.UUID) {
	c.ledger.Remove(id)
}

func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
