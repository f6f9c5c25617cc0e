package reducers

import (
	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/rules"
)

func Trades(trades map[string]models.TradeState, a rules.Resolved) map[string]models.TradeState {
	switch a.Type {
	case actions.TradeOffer:
		next := cloneTrades(trades)
		next[a.Trade] = models.TradeState{
			ID:         a.Trade,
			From:       a.Player,
			With:       a.Other,
			Properties: append([]string(nil), a.Properties...),
			Amount:     a.Amount,
		}
		return next

	case actions.TradeDecline, actions.TradeAccept:
		if _, ok := trades[a.Trade]; !ok {
			return trades
		}
		next := cloneTrades(trades)
		delete(next, a.Trade)
		return next
	}
	return trades
}

func cloneTrades(trades map[string]models.TradeState) map[string]models.TradeState {
	next := make(map[string]models.TradeState, len(trades)+1)
	for id, t := range trades {
		next[id] = t
	}
	return next
}
