//go:build unit

package queries_test

import (
	"testing"
	"time"

	"korvo/internal/infra/memstore"
	"korvo/internal/usecase/queries"
	"korvo/internal/usecase/readmodel"
	"korvo/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityQueries_Feed(t *testing.T) {
	seeded := []readmodel.ActivityEntryView{
		{DateName: "Ayer", Shop: "Dark Roast Lab", Amount: "+25 pts", Type: "earn", Item: "Compra $25"},
		{DateName: "Hace 3 días", Shop: "Velvet Bakery", Amount: "+40 pts", Type: "earn", Item: "Compra $40"},
	}
	transactions := memstore.NewTransactionStore(seeded)
	ledger := memstore.NewLedger()
	q := queries.NewActivityQueries(transactions, ledger)

	t.Run("no claims yields only seeded history", func(t *testing.T) {
		feed := q.Feed()
		if diff := cmp.Diff(seeded, feed); diff != "" {
			t.Errorf("feed mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("session claims come first, newest leading", func(t *testing.T) {
		older := builder.NewClaimBuilder().With(func(c *builder.ClaimBuilder) {
			c.Cost = 150
			c.Title = "Retiro en efectivo"
			c.ClaimedAt = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		}).Build()
		newer := builder.NewClaimBuilder().With(func(c *builder.ClaimBuilder) {
			c.Cost = 300
			c.Title = "Muffin de Arándanos"
			c.ClaimedAt = time.Date(2026, 3, 14, 11, 45, 0, 0, time.UTC)
		}).Build()
		require.NoError(t, ledger.Append(older))
		require.NoError(t, ledger.Append(newer))

		feed := q.Feed()
		require.Len(t, feed, 4)

		assert.Equal(t, readmodel.ActivityEntryView{
			DateName: "Hoy 11:45",
			Shop:     "Dark Roast Lab",
			Amount:   "-300 pts",
			Type:     "burn",
			Item:     "Muffin de Arándanos",
		}, feed[0])
		assert.Equal(t, "-150 pts", feed[1].Amount)
		assert.Equal(t, "earn", feed[2].Type)
	})
}
