package reducers

import (
	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/rules"
)

func Auction(auction *models.AuctionState, a rules.Resolved) *models.AuctionState {
	switch a.Type {
	case actions.AuctionStart:
		return &models.AuctionState{
			Property: a.Property,
			Players:  append([]string(nil), a.Players...),
		}

	case actions.AuctionBid:
		if auction == nil {
			return nil
		}
		next := *auction
		next.Winning = a.Player
		next.Amount = a.Amount
		return &next

	case actions.AuctionConcede:
		if auction == nil {
			return nil
		}
		next := *auction
		next.Players = make([]string, 0, len(auction.Players))
		for _, token := range auction.Players {
			if token != a.Player {
				next.Players = append(next.Players, token)
			}
		}
		if len(next.Players) == 0 {
			return nil
		}
		return &next

	case actions.AuctionClose:
		return nil
	}
	return auction
}
