package commands

import (
	"log/slog"
	"sync"

	"korvo/internal/domain/business"
	"korvo/internal/domain/redemption"
	"korvo/internal/pkg/errs"
	"korvo/internal/usecase/readmodel"
)

var (
	ErrBusinessNotFound   = errs.New("business not found")
	ErrRewardNotAvailable = errs.New("reward not available")
	ErrDiscountNotFound   = errs.New("discount not found")
	ErrInsufficientPoints = errs.New("insufficient points for offer")
	ErrInvalidOffer       = errs.New("invalid offer")
	ErrNoStagedClaim      = errs.New("no staged claim")
	ErrLedgerWriteFailed  = errs.New("ledger write failed")
)

type StageClaimParams struct {
	BusinessID     int64
	Kind           redemption.Kind
	PointsToRedeem int    // cash-out
	RewardID       string // catalog reward
	DiscountLabel  string // discount offer
}

type RedemptionCommands interface {
	Stage(params StageClaimParams) (*readmodel.StagedClaimView, error)
	Confirm() (*readmodel.ClaimResultView, error)
	Cancel()
	Current() *readmodel.FlowView
}

// redemptionCommandsImpl serializes the confirmation flow: one staged
// claim at a time, matching the single-actor interaction model of the
// wallet UI. The mutex keeps transport-level parallel requests from
// interleaving stage/confirm.
type redemptionCommandsImpl struct {
	mu      sync.Mutex
	flow    *redemption.Flow
	engine  *redemption.Engine
	catalog CatalogRepository
	ledger  ClaimLedger
}

func NewRedemptionCommands(
	engine *redemption.Engine,
	catalog CatalogRepository,
	ledger ClaimLedger,
) RedemptionCommands {
	return &redemptionCommandsImpl{
		flow:    redemption.NewFlow(engine),
		engine:  engine,
		catalog: catalog,
		ledger:  ledger,
	}
}

func (r *redemptionCommandsImpl) Stage(params StageClaimParams) (*readmodel.StagedClaimView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.catalog.FindByID(params.BusinessID)
	if err != nil {
		return nil, errs.Mark(err, ErrBusinessNotFound)
	}

	offer, err := r.buildOffer(b, params)
	if err != nil {
		return nil, err
	}

	staged, err := r.flow.Stage(b, offer)
	if err != nil {
		return nil, markFlowError(err)
	}
	return r.stagedView(staged), nil
}

func (r *redemptionCommandsImpl) Confirm() (*readmodel.ClaimResultView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := r.flow.Staged()
	if staged == nil {
		return nil, ErrNoStagedClaim
	}

	var (
		item       *redemption.ClaimedItem
		newBalance int
	)
	// Mutate holds the catalog lock across re-validate and debit, so
	// the commit acts on the live balance with no intervening writer.
	err := r.catalog.Mutate(staged.BusinessID, func(b *business.Business) error {
		committed, commitErr := r.flow.Confirm(b)
		if commitErr != nil {
			return commitErr
		}
		item = committed
		newBalance = b.PointBalance()
		return nil
	})
	if err != nil {
		return nil, markFlowError(err)
	}

	if appendErr := r.ledger.Append(item); appendErr != nil {
		// The debit has landed; a failed history write is a defect, not
		// a user-recoverable condition.
		slog.Error("claim committed but not recorded", "claim_id", item.ID(), "error", appendErr)
		return nil, errs.Mark(appendErr, ErrLedgerWriteFailed)
	}

	return &readmodel.ClaimResultView{
		Claim:      claimView(item),
		NewBalance: newBalance,
	}, nil
}

func (r *redemptionCommandsImpl) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flow.Cancel()
}

func (r *redemptionCommandsImpl) Current() *readmodel.FlowView {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := &readmodel.FlowView{State: r.flow.State().String()}
	if staged := r.flow.Staged(); staged != nil {
		view.Staged = r.stagedView(staged)
	}
	return view
}

func (r *redemptionCommandsImpl) buildOffer(b *business.Business, params StageClaimParams) (redemption.Offer, error) {
	switch params.Kind {
	case redemption.KindCashOut:
		offer, err := redemption.NewCashOutOffer(params.PointsToRedeem)
		if err != nil {
			return redemption.Offer{}, errs.Mark(err, ErrInvalidOffer)
		}
		return offer, nil

	case redemption.KindCatalogReward:
		reward, ok := b.RewardByID(params.RewardID)
		if !ok {
			return redemption.Offer{}, ErrRewardNotAvailable
		}
		offer, err := redemption.NewRewardOffer(reward)
		if err != nil {
			return redemption.Offer{}, errs.Mark(err, ErrInvalidOffer)
		}
		return offer, nil

	case redemption.KindDiscountOffer:
		for _, d := range r.catalog.Discounts() {
			if d.Label == params.DiscountLabel {
				offer, err := redemption.NewDiscountOffer(d.Label, d.Cost)
				if err != nil {
					return redemption.Offer{}, errs.Mark(err, ErrInvalidOffer)
				}
				return offer, nil
			}
		}
		return redemption.Offer{}, ErrDiscountNotFound

	default:
		return redemption.Offer{}, ErrInvalidOffer
	}
}

func (r *redemptionCommandsImpl) stagedView(staged *redemption.StagedClaim) *readmodel.StagedClaimView {
	return &readmodel.StagedClaimView{
		Kind:             staged.Offer.Kind().String(),
		Title:            staged.Offer.Title(),
		Value:            staged.Offer.Value(r.engine.Rate()),
		Cost:             staged.Offer.Cost(),
		BusinessID:       staged.BusinessID,
		BusinessName:     staged.BusinessName,
		BalanceBefore:    staged.BalanceBefore,
		ProjectedBalance: staged.ProjectedBalance,
	}
}

func claimView(item *redemption.ClaimedItem) readmodel.ClaimView {
	return readmodel.ClaimView{
		ID:           item.ID().String(),
		Kind:         item.Kind().String(),
		BusinessID:   item.BusinessID(),
		BusinessName: item.BusinessName(),
		Title:        item.Title(),
		Value:        item.Value(),
		ClaimedAt:    item.ClaimedAt(),
	}
}

func markFlowError(err error) error {
	switch {
	case isAny(err, redemption.ErrInsufficientPoints, business.ErrInsufficientPoints):
		return errs.Mark(err, ErrInsufficientPoints)
	case isAny(err, redemption.ErrInvalidOffer, business.ErrInvalidDebit):
		return errs.Mark(err, ErrInvalidOffer)
	case isAny(err, redemption.ErrNoStagedClaim):
		return errs.Mark(err, ErrNoStagedClaim)
	case isAny(err, errs.ErrBusinessNotFound):
		return errs.Mark(err, ErrBusinessNotFound)
	default:
		return err
	}
}
