//go:build unit || e2e

package builder

import (
	"korvo/internal/domain/business"
)

type BusinessBuilder struct {
	ID           int64
	Name         string
	Address      string
	PointBalance int
	Stamps       int
	StampGoal    int
	Rewards      []business.Reward
}

func NewBusinessBuilder() *BusinessBuilder {
	return &BusinessBuilder{
		ID:           1,
		Name:         "Dark Roast Lab",
		Address:      "Av. Corrientes 1200",
		PointBalance: 350,
		Stamps:       7,
		StampGoal:    10,
		Rewards: []business.Reward{
			{ID: "r1", Name: "Muffin de Arándanos", Cost: 300, Icon: "muffin"},
			{ID: "r2", Name: "Espresso Doble", Cost: 400, Icon: "coffee"},
		},
	}
}

func (b *BusinessBuilder) With(mutate func(*BusinessBuilder)) *BusinessBuilder {
	mutate(b)
	return b
}

func (b *BusinessBuilder) WithBalance(balance int) *BusinessBuilder {
	b.PointBalance = balance
	return b
}

func (b *BusinessBuilder) WithRewards(rewards ...business.Reward) *BusinessBuilder {
	b.Rewards = rewards
	return b
}

func (b *BusinessBuilder) BuildDomain() (*business.Business, error) {
	return business.NewBusiness(b.ID, b.Name, b.Address, b.PointBalance, b.Stamps, b.StampGoal, b.Rewards)
}

// Build skips constructor validation, for wiring stores in tests.
func (b *BusinessBuilder) Build() *business.Business {
	return business.ReconstructBusiness(
		b.ID,
		b.Name, b.Address, "#2D1B14", "", "1 punto por $1", "Hace 2 días",
		b.PointBalance, b.Stamps, b.StampGoal,
		b.Rewards,
	)
}
