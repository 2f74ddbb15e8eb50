package business

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName          = errors.New("business name cannot be empty")
	ErrNegativeBalance    = errors.New("point balance cannot be negative")
	ErrInvalidStampGoal   = errors.New("stamp goal must be positive")
	ErrInvalidRewardCost  = errors.New("reward cost must be positive")
	ErrInvalidDebit       = errors.New("debit amount must be positive")
	ErrInsufficientPoints = errors.New("insufficient point balance")
)

// Discount is a fixed, business-independent offer available to every
// wallet card.
type Discount struct {
	Label string
	Cost  int
}

// Reward is a catalog entry the business offers in exchange for points.
type Reward struct {
	ID   string
	Name string
	Cost int
	Icon string
}

type Business struct {
	id           int64
	name         string
	address      string
	color        string
	coverURL     string
	rateLabel    string
	lastVisit    string
	pointBalance int
	stamps       int
	stampGoal    int
	rewards      []Reward
}

func NewBusiness(
	id int64,
	name, address string,
	pointBalance int,
	stamps, stampGoal int,
	rewards []Reward,
) (*Business, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if pointBalance < 0 {
		return nil, ErrNegativeBalance
	}
	if stampGoal <= 0 {
		return nil, ErrInvalidStampGoal
	}
	for _, r := range rewards {
		if r.Cost <= 0 {
			return nil, ErrInvalidRewardCost
		}
	}

	return &Business{
		id:           id,
		name:         name,
		address:      address,
		pointBalance: pointBalance,
		stamps:       stamps,
		stampGoal:    stampGoal,
		rewards:      rewards,
	}, nil
}

func ReconstructBusiness(
	id int64,
	name, address, color, coverURL, rateLabel, lastVisit string,
	pointBalance, stamps, stampGoal int,
	rewards []Reward,
) *Business {
	return &Business{
		id:           id,
		name:         name,
		address:      address,
		color:        color,
		coverURL:     coverURL,
		rateLabel:    rateLabel,
		lastVisit:    lastVisit,
		pointBalance: pointBalance,
		stamps:       stamps,
		stampGoal:    stampGoal,
		rewards:      rewards,
	}
}

// Debit is the single mutation path for the point balance. Only the
// redemption engine calls it; the balance can never go below zero.
func (b *Business) Debit(points int) error {
	if points <= 0 {
		return ErrInvalidDebit
	}
	if points > b.pointBalance {
		return ErrInsufficientPoints
	}
	b.pointBalance -= points
	return nil
}

func (b *Business) CanAfford(cost int) bool {
	return cost > 0 && cost <= b.pointBalance
}

func (b *Business) RewardByID(id string) (Reward, bool) {
	for _, r := range b.rewards {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}

// StampProgress is the completion percentage of the stamp card, 0-100.
func (b *Business) StampProgress() float64 {
	if b.stampGoal == 0 {
		return 0
	}
	return float64(b.stamps) / float64(b.stampGoal) * 100
}

func (b *Business) ID() int64         { return b.id }
func (b *Business) Name() string      { return b.name }
func (b *Business) Address() string   { return b.address }
func (b *Business) Color() string     { return b.color }
func (b *Business) CoverURL() string  { return b.coverURL }
func (b *Business) RateLabel() string { return b.rateLabel }
func (b *Business) LastVisit() string { return b.lastVisit }
func (b *Business) PointBalance() int { return b.pointBalance }
func (b *Business) Stamps() int       { return b.stamps }
func (b *Business) StampGoal() int    { return b.stampGoal }

// Rewards returns a copy of the reward catalog.
func (b *Business) Rewards() []Reward {
	out := make([]Reward, len(b.rewards))
	copy(out, b.rewards)
	return out
}
