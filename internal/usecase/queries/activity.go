package queries

import (
	"fmt"

	"korvo/internal/usecase/readmodel"
)

type ActivityQueries interface {
	// Feed merges the session's claims (burn side, newest first) with
	// the seeded history.
	Feed() []readmodel.ActivityEntryView
}

type activityQueriesImpl struct {
	transactions TransactionReader
	ledger       LedgerReader
}

func NewActivityQueries(transactions TransactionReader, ledger LedgerReader) ActivityQueries {
	return &activityQueriesImpl{transactions: transactions, ledger: ledger}
}

func (a *activityQueriesImpl) Feed() []readmodel.ActivityEntryView {
	claims := a.ledger.All()
	seeded := a.transactions.All()
	feed := make([]readmodel.ActivityEntryView, 0, len(claims)+len(seeded))

	for i := len(claims) - 1; i >= 0; i-- {
		item := claims[i]
		feed = append(feed, readmodel.ActivityEntryView{
			DateName: "Hoy " + item.ClaimedAt().Format("15:04"),
			Shop:     item.BusinessName(),
			Amount:   fmt.Sprintf("-%d pts", item.Cost()),
			Type:     "burn",
			Item:     item.Title(),
		})
	}

	feed = append(feed, seeded...)
	return feed
}
