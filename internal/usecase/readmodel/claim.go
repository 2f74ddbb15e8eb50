package readmodel

import "time"

type ClaimView struct {
	ID           string
	Kind         string
	BusinessID   int64
	BusinessName string
	Title        string
	Value        string
	ClaimedAt    time.Time
}

// ProofView is the scannable rendering of a claimed item for
// redemption at the register.
type ProofView struct {
	Code         string
	Kind         string
	Title        string
	Value        string
	BusinessName string
	ClaimedAt    time.Time
}

// StagedClaimView is the pending claim shown on the confirmation
// sheet. The projected balance is display-only; confirm recomputes.
type StagedClaimView struct {
	Kind             string
	Title            string
	Value            string
	Cost             int
	BusinessID       int64
	BusinessName     string
	BalanceBefore    int
	ProjectedBalance int
}

type FlowView struct {
	State  string
	Staged *StagedClaimView
}

// ClaimResultView is what a successful confirm returns: the new ledger
// entry plus the balance after the debit.
type ClaimResultView struct {
	Claim      ClaimView
	NewBalance int
}
