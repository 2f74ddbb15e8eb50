//go:build unit

package seed_test

import (
	"testing"

	"korvo/internal/infra/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSeed = `
businesses:
  - id: 1
    name: "Dark Roast Lab"
    address: "Av. Corrientes 1200"
    color: "#2D1B14"
    rate: "1 punto por $1"
    last_visit: "Hace 2 días"
    point_balance: 350
    stamps: 7
    stamp_goal: 10
    rewards:
      - id: "r1"
        name: "Muffin de Arándanos"
        cost: 300
        icon: "muffin"
      - id: "r2"
        name: "Espresso Doble"
        cost: 400
        icon: "coffee"
  - id: 2
    name: "Matcha & Co."
    point_balance: 120
    stamps: 2
    stamp_goal: 8
discounts:
  - label: "Envío Gratis"
    cost: 200
transactions:
  - id: 1
    date: "Ayer"
    shop: "Dark Roast Lab"
    amount: "+25 pts"
    type: "earn"
    item: "Compra $25"
customers:
  - id: "c1"
    name: "Lucía Fernández"
    email: "lucia@example.com"
    points: 350
    stamps: 7
    total_stamps: 10
admin_rewards:
  - name: "Café Gratis"
    description: "Un café de cortesía"
    cost: 500
    category: "bebidas"
    redeem_count: 12
    created_at: "2026-01-15"
promotions:
  - title: "2x1 en Bebidas"
    type: "percentage"
    amount: 50
    start_date: "2026-03-01"
    end_date: "2026-03-31"
    active: true
stats:
  total_points: 1460
  points_earned: 2200
  points_redeemed: 740
  active_customers: 3
`

func TestParse(t *testing.T) {
	s, err := seed.Parse([]byte(validSeed))
	require.NoError(t, err)

	require.Len(t, s.Businesses, 2)
	first := s.Businesses[0]
	assert.Equal(t, int64(1), first.ID())
	assert.Equal(t, "Dark Roast Lab", first.Name())
	assert.Equal(t, 350, first.PointBalance())
	assert.Len(t, first.Rewards(), 2)

	require.Len(t, s.Discounts, 1)
	assert.Equal(t, 200, s.Discounts[0].Cost)

	require.Len(t, s.Transactions, 1)
	assert.Equal(t, "earn", s.Transactions[0].Type)

	require.Len(t, s.Customers, 1)
	assert.Equal(t, "Lucía Fernández", s.Customers[0].Name)

	require.Len(t, s.Rewards, 1)
	assert.Equal(t, "Café Gratis", s.Rewards[0].Name())
	assert.Equal(t, 12, s.Rewards[0].RedeemCount())
	assert.True(t, s.Rewards[0].Active())

	require.Len(t, s.Promotions, 1)
	assert.Equal(t, "2x1 en Bebidas", s.Promotions[0].Title())

	assert.Equal(t, 1460, s.Stats.TotalPoints)
	assert.Equal(t, 3, s.Stats.ActiveCustomers)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "malformed yaml",
			raw:  "businesses: [",
		},
		{
			name: "reward with zero cost",
			raw: `
businesses:
  - id: 1
    name: "Shop"
    point_balance: 100
    stamp_goal: 10
    rewards:
      - id: "r1"
        name: "Gratis"
        cost: 0
`,
		},
		{
			name: "negative balance",
			raw: `
businesses:
  - id: 1
    name: "Shop"
    point_balance: -10
    stamp_goal: 10
`,
		},
		{
			name: "discount with zero cost",
			raw: `
discounts:
  - label: "Gratis"
    cost: 0
`,
		},
		{
			name: "bad promotion date",
			raw: `
promotions:
  - title: "Promo"
    type: "fixed"
    amount: 100
    start_date: "not-a-date"
    end_date: "2026-03-31"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := seed.Load("does/not/exist.yaml")
	require.Error(t, err)
}
