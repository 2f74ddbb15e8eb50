package queries

import (
	"fmt"

	"korvo/internal/domain/redemption"
	"korvo/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// proofScheme is the payload prefix the register scanner expects.
const proofScheme = "korvo://claim/"

type ClaimQueries interface {
	// List returns the session's claims most-recent-first.
	List() []readmodel.ClaimView
	// GetProof renders a claim as its scannable proof view. Unknown
	// ids surface errs.ErrClaimNotFound, never a panic.
	GetProof(id uuid.UUID) (*readmodel.ProofView, error)
}

type claimQueriesImpl struct {
	ledger LedgerReader
}

func NewClaimQueries(ledger LedgerReader) ClaimQueries {
	return &claimQueriesImpl{ledger: ledger}
}

func (c *claimQueriesImpl) List() []readmodel.ClaimView {
	items := c.ledger.All()
	views := make([]readmodel.ClaimView, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		views = append(views, readmodel.ClaimView{
			ID:           item.ID().String(),
			Kind:         item.Kind().String(),
			BusinessID:   item.BusinessID(),
			BusinessName: item.BusinessName(),
			Title:        item.Title(),
			Value:        item.Value(),
			ClaimedAt:    item.ClaimedAt(),
		})
	}
	return views
}

func (c *claimQueriesImpl) GetProof(id uuid.UUID) (*readmodel.ProofView, error) {
	item, err := c.ledger.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &readmodel.ProofView{
		Code:         ProofCode(item),
		Kind:         item.Kind().String(),
		Title:        item.Title(),
		Value:        item.Value(),
		BusinessName: item.BusinessName(),
		ClaimedAt:    item.ClaimedAt(),
	}, nil
}

func ProofCode(item *redemption.ClaimedItem) string {
	return fmt.Sprintf("%s%s", proofScheme, item.ID())
}
