package benefit

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPromoType   = errors.New("invalid promotion type")
	ErrInvalidPercentage  = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidPromoAmount = errors.New("promotion amount must be positive")
)

type PromoType string

const (
	PromoPercentage  PromoType = "percentage"
	PromoFixed       PromoType = "fixed"
	PromoBonusPoints PromoType = "bonus-points"
)

func (t PromoType) IsValid() bool {
	switch t {
	case PromoPercentage, PromoFixed, PromoBonusPoints:
		return true
	default:
		return false
	}
}

type Promotion struct {
	id          uuid.UUID
	title       string
	description string
	promoType   PromoType
	amount      int
	startDate   time.Time
	endDate     time.Time
	active      bool
}

func NewPromotion(
	title, description string,
	promoType PromoType,
	amount int,
	startDate, endDate time.Time,
) (*Promotion, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyPromoTitle
	}
	if !promoType.IsValid() {
		return nil, ErrInvalidPromoType
	}
	if err := validateAmount(promoType, amount); err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	return &Promotion{
		id:          uuid.New(),
		title:       title,
		description: strings.TrimSpace(description),
		promoType:   promoType,
		amount:      amount,
		startDate:   startDate,
		endDate:     endDate,
		active:      true,
	}, nil
}

func ReconstructPromotion(
	id uuid.UUID,
	title, description string,
	promoType PromoType,
	amount int,
	startDate, endDate time.Time,
	active bool,
) *Promotion {
	return &Promotion{
		id:          id,
		title:       title,
		description: description,
		promoType:   promoType,
		amount:      amount,
		startDate:   startDate,
		endDate:     endDate,
		active:      active,
	}
}

func (p *Promotion) Update(
	title, description string,
	promoType PromoType,
	amount int,
	startDate, endDate time.Time,
	active bool,
) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyPromoTitle
	}
	if !promoType.IsValid() {
		return ErrInvalidPromoType
	}
	if err := validateAmount(promoType, amount); err != nil {
		return err
	}
	if endDate.Before(startDate) {
		return ErrInvalidDateRange
	}
	p.title = title
	p.description = strings.TrimSpace(description)
	p.promoType = promoType
	p.amount = amount
	p.startDate = startDate
	p.endDate = endDate
	p.active = active
	return nil
}

func (p *Promotion) IsLiveAt(t time.Time) bool {
	return p.active && !t.Before(p.startDate) && !t.After(p.endDate)
}

func (p *Promotion) ID() uuid.UUID        { return p.id }
func (p *Promotion) Title() string        { return p.title }
func (p *Promotion) Description() string  { return p.description }
func (p *Promotion) Type() PromoType      { return p.promoType }
func (p *Promotion) Amount() int          { return p.amount }
func (p *Promotion) StartDate() time.Time { return p.startDate }
func (p *Promotion) EndDate() time.Time   { return p.endDate }
func (p *Promotion) Active() bool         { return p.active }

func validateAmount(t PromoType, amount int) error {
	if t == PromoPercentage {
		if amount < 0 || amount > 100 {
			return ErrInvalidPercentage
		}
		return nil
	}
	if amount <= 0 {
		return ErrInvalidPromoAmount
	}
	return nil
}
