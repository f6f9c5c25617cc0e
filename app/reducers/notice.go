package reducers

import (
	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/rules"
)

var noticed = map[actions.Type]bool{
	actions.PlayerJoin:         true,
	actions.PropertyBuy:        true,
	actions.PropertyImprove:    true,
	actions.PropertyUnimprove:  true,
	actions.PropertyMortgage:   true,
	actions.PropertyUnmortgage: true,
	actions.PlayerPayRent:      true,
	actions.PlayerToBank:       true,
	actions.BankToPlayer:       true,
	actions.PlayerToPlayer:     true,
	actions.PlayerBankrupt:     true,
	actions.AuctionStart:       true,
	actions.AuctionBid:         true,
	actions.AuctionConcede:     true,
	actions.AuctionClose:       true,
	actions.TradeOffer:         true,
	actions.TradeDecline:       true,
	actions.TradeAccept:        true,
}

func Notice(notice *models.NoticeState, a rules.Resolved) *models.NoticeState {
	if !noticed[a.Type] || a.Notice == nil {
		return notice
	}
	return a.Notice
}
