package benefit

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRewardName  = errors.New("reward name cannot be empty")
	ErrInvalidCost      = errors.New("reward cost must be positive")
	ErrEmptyPromoTitle  = errors.New("promotion title cannot be empty")
	ErrInvalidDateRange = errors.New("promotion end date must not precede start date")
)

// Reward is a benefit the business offers in its catalog, managed from
// the business-admin editor.
type Reward struct {
	id          uuid.UUID
	name        string
	description string
	cost        int
	category    string
	active      bool
	redeemCount int
	createdAt   time.Time
}

func NewReward(name, description string, cost int, category string, createdAt time.Time) (*Reward, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRewardName
	}
	if cost <= 0 {
		return nil, ErrInvalidCost
	}

	return &Reward{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
		cost:        cost,
		category:    category,
		active:      true,
		createdAt:   createdAt,
	}, nil
}

func ReconstructReward(
	id uuid.UUID,
	name, description string,
	cost int,
	category string,
	active bool,
	redeemCount int,
	createdAt time.Time,
) *Reward {
	return &Reward{
		id:          id,
		name:        name,
		description: description,
		cost:        cost,
		category:    category,
		active:      active,
		redeemCount: redeemCount,
		createdAt:   createdAt,
	}
}

func (r *Reward) Update(name, description string, cost int, category string, active bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRewardName
	}
	if cost <= 0 {
		return ErrInvalidCost
	}
	r.name = name
	r.description = strings.TrimSpace(description)
	r.cost = cost
	r.category = category
	r.active = active
	return nil
}

func (r *Reward) RecordRedemption() {
	r.redeemCount++
}

func (r *Reward) ID() uuid.UUID        { return r.id }
func (r *Reward) Name() string         { return r.name }
func (r *Reward) Description() string  { return r.description }
func (r *Reward) Cost() int            { return r.cost }
func (r *Reward) Category() string     { return r.category }
func (r *Reward) Active() bool         { return r.active }
func (r *Reward) RedeemCount() int     { return r.redeemCount }
func (r *Reward) CreatedAt() time.Time { return r.createdAt }
