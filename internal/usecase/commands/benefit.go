package commands

import (
	"time"

	"korvo/internal/domain/benefit"
	"korvo/internal/pkg/clock"
	"korvo/internal/pkg/errs"
	"korvo/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrRewardNotFound    = errs.New("admin reward not found")
	ErrPromotionNotFound = errs.New("promotion not found")
	ErrBenefitValidation = errs.New("benefit validation failed")
)

type CreateRewardParams struct {
	Name        string
	Description string
	Cost        int
	Category    string
}

type UpdateRewardParams struct {
	Name        string
	Description string
	Cost        int
	Category    string
	Active      bool
}

type CreatePromotionParams struct {
	Title       string
	Description string
	Type        string
	Amount      int
	StartDate   time.Time
	EndDate     time.Time
}

type UpdatePromotionParams struct {
	Title       string
	Description string
	Type        string
	Amount      int
	StartDate   time.Time
	EndDate     time.Time
	Active      bool
}

// BenefitCommands is the business-admin editor for the reward catalog
// and promotions.
type BenefitCommands interface {
	CreateReward(params CreateRewardParams) (*readmodel.AdminRewardView, error)
	UpdateReward(id uuid.UUID, params UpdateRewardParams) (*readmodel.AdminRewardView, error)
	DeleteReward(id uuid.UUID) error
	CreatePromotion(params CreatePromotionParams) (*readmodel.PromotionView, error)
	UpdatePromotion(id uuid.UUID, params UpdatePromotionParams) (*readmodel.PromotionView, error)
	DeletePromotion(id uuid.UUID) error
}

type benefitCommandsImpl struct {
	rewards    RewardRepository
	promotions PromotionRepository
	clock      clock.Clock
}

func NewBenefitCommands(
	rewards RewardRepository,
	promotions PromotionRepository,
	clk clock.Clock,
) BenefitCommands {
	return &benefitCommandsImpl{
		rewards:    rewards,
		promotions: promotions,
		clock:      clk,
	}
}

func (b *benefitCommandsImpl) CreateReward(params CreateRewardParams) (*readmodel.AdminRewardView, error) {
	reward, err := benefit.NewReward(params.Name, params.Description, params.Cost, params.Category, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrBenefitValidation)
	}
	b.rewards.Insert(reward)
	view := AdminRewardView(reward)
	return &view, nil
}

func (b *benefitCommandsImpl) UpdateReward(id uuid.UUID, params UpdateRewardParams) (*readmodel.AdminRewardView, error) {
	err := b.rewards.Mutate(id, func(r *benefit.Reward) error {
		return r.Update(params.Name, params.Description, params.Cost, params.Category, params.Active)
	})
	if err != nil {
		return nil, markBenefitError(err)
	}

	reward, err := b.rewards.FindByID(id)
	if err != nil {
		return nil, errs.Mark(err, ErrRewardNotFound)
	}
	view := AdminRewardView(reward)
	return &view, nil
}

func (b *benefitCommandsImpl) DeleteReward(id uuid.UUID) error {
	if err := b.rewards.Remove(id); err != nil {
		return errs.Mark(err, ErrRewardNotFound)
	}
	return nil
}

func (b *benefitCommandsImpl) CreatePromotion(params CreatePromotionParams) (*readmodel.PromotionView, error) {
	promo, err := benefit.NewPromotion(
		params.Title, params.Description,
		benefit.PromoType(params.Type), params.Amount,
		params.StartDate, params.EndDate,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrBenefitValidation)
	}
	b.promotions.Insert(promo)
	view := PromotionView(promo, b.clock.Now())
	return &view, nil
}

func (b *benefitCommandsImpl) UpdatePromotion(id uuid.UUID, params UpdatePromotionParams) (*readmodel.PromotionView, error) {
	err := b.promotions.Mutate(id, func(p *benefit.Promotion) error {
		return p.Update(
			params.Title, params.Description,
			benefit.PromoType(params.Type), params.Amount,
			params.StartDate, params.EndDate, params.Active,
		)
	})
	if err != nil {
		return nil, markBenefitError(err)
	}

	promo, err := b.promotions.FindByID(id)
	if err != nil {
		return nil, errs.Mark(err, ErrPromotionNotFound)
	}
	view := PromotionView(promo, b.clock.Now())
	return &view, nil
}

func (b *benefitCommandsImpl) DeletePromotion(id uuid.UUID) error {
	if err := b.promotions.Remove(id); err != nil {
		return errs.Mark(err, ErrPromotionNotFound)
	}
	return nil
}

func AdminRewardView(r *benefit.Reward) readmodel.AdminRewardView {
	return readmodel.AdminRewardView{
		ID:          r.ID().String(),
		Name:        r.Name(),
		Description: r.Description(),
		Cost:        r.Cost(),
		Category:    r.Category(),
		Active:      r.Active(),
		RedeemCount: r.RedeemCount(),
		CreatedAt:   r.CreatedAt(),
	}
}

func PromotionView(p *benefit.Promotion, now time.Time) readmodel.PromotionView {
	return readmodel.PromotionView{
		ID:          p.ID().String(),
		Title:       p.Title(),
		Description: p.Description(),
		Type:        string(p.Type()),
		Amount:      p.Amount(),
		StartDate:   p.StartDate(),
		EndDate:     p.EndDate(),
		Active:      p.Active(),
		Live:        p.IsLiveAt(now),
	}
}

func markBenefitError(err error) error {
	switch {
	case isAny(err, errs.ErrRewardNotFound):
		return errs.Mark(err, ErrRewardNotFound)
	case isAny(err, errs.ErrPromotionNotFound):
		return errs.Mark(err, ErrPromotionNotFound)
	default:
		return errs.Mark(err, ErrBenefitValidation)
	}
}
