package reducers

import (
	"testing"

	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() models.GameState {
	state := models.NewGameState([]models.Property{
		{ID: "mediterranean", Group: "purple", Price: 60},
		{ID: "baltic", Group: "purple", Price: 60},
		{ID: "reading", Group: models.GroupRailroad, Price: 200},
	}, models.DefaultConfig())
	state.Players["top-hat"] = models.PlayerState{Token: "top-hat", Balance: 1500}
	state.Players["boot"] = models.PlayerState{Token: "boot", Balance: 1500}
	return state
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := testState()
	next := Reduce(state, rules.Resolved{Type: actions.PropertyBuy, Player: "top-hat", Property: "baltic", Amount: 60})

	assert.Equal(t, 1500, state.Players["top-hat"].Balance)
	assert.Equal(t, models.Bank, state.Properties.ByID["baltic"].Owner)
	assert.Equal(t, 1440, next.Players["top-hat"].Balance)
	assert.Equal(t, "top-hat", next.Properties.ByID["baltic"].Owner)
	assert.Equal(t, state.Bank+60, next.Bank)
}

func TestBankSigns(t *testing.T) {
	assert.Equal(t, 90, Bank(100, rules.Resolved{Type: actions.PlayerJoin, Amount: 10}))
	assert.Equal(t, 110, Bank(100, rules.Resolved{Type: actions.PlayerToBank, Amount: 10}))
	assert.Equal(t, 100, Bank(100, rules.Resolved{Type: actions.PlayerPayRent, Amount: 10}))
	assert.Equal(t, 110, Bank(100, rules.Resolved{Type: actions.PlayerBankrupt, Other: models.Bank, Amount: 10}))
	assert.Equal(t, 100, Bank(100, rules.Resolved{Type: actions.PlayerBankrupt, Other: "boot", Amount: 10}))
	assert.Equal(t, models.Unlimited, Bank(models.Unlimited, rules.Resolved{Type: actions.PlayerJoin, Amount: 10}))
}

func TestInventory(t *testing.T) {
	assert.Equal(t, 31, Houses(32, rules.Resolved{Type: actions.PropertyImprove, Houses: 1}))
	assert.Equal(t, 36, Houses(32, rules.Resolved{Type: actions.PropertyImprove, Houses: -4}))
	assert.Equal(t, 11, Hotels(12, rules.Resolved{Type: actions.PropertyImprove, Hotels: 1}))
	assert.Equal(t, 13, Hotels(12, rules.Resolved{Type: actions.PropertyUnimprove, Hotels: -1}))
	assert.Equal(t, 32, Houses(32, rules.Resolved{Type: actions.PropertyBuy, Houses: 3}))
}

func TestMonopolyFollowsOwnership(t *testing.T) {
	props := testState().Properties
	props = Properties(props, rules.Resolved{Type: actions.PropertyBuy, Player: "top-hat", Property: "baltic"})
	assert.False(t, props.ByID["mediterranean"].Monopoly)

	props = Properties(props, rules.Resolved{Type: actions.PropertyBuy, Player: "top-hat", Property: "mediterranean"})
	assert.True(t, props.ByID["mediterranean"].Monopoly)
	assert.True(t, props.ByID["baltic"].Monopoly)
	assert.False(t, props.ByID["reading"].Monopoly)

	props = Properties(props, rules.Resolved{Type: actions.TradeAccept, Player: "boot", Other: "top-hat", Properties: []string{"baltic"}})
	assert.Equal(t, "boot", props.ByID["baltic"].Owner)
	assert.False(t, props.ByID["mediterranean"].Monopoly)
	assert.False(t, props.ByID["baltic"].Monopoly)
}

func TestAuctionLifecycle(t *testing.T) {
	var auction *models.AuctionState
	auction = Auction(auction, rules.Resolved{Type: actions.AuctionStart, Property: "baltic", Players: []string{"boot", "top-hat"}})
	require.NotNil(t, auction)
	assert.False(t, auction.HasWinner())
	assert.Equal(t, 0, auction.Amount)

	bid := Auction(auction, rules.Resolved{Type: actions.AuctionBid, Player: "boot", Amount: 20})
	assert.Equal(t, "boot", bid.Winning)
	assert.False(t, auction.HasWinner(), "bids copy the auction")

	conceded := Auction(bid, rules.Resolved{Type: actions.AuctionConcede, Player: "top-hat"})
	assert.Equal(t, []string{"boot"}, conceded.Players)
	assert.Equal(t, []string{"boot", "top-hat"}, bid.Players)

	assert.Nil(t, Auction(conceded, rules.Resolved{Type: actions.AuctionClose}))
	assert.Same(t, conceded, Auction(conceded, rules.Resolved{Type: actions.PropertyBuy}))
}

func TestTradesKeyed(t *testing.T) {
	trades := map[string]models.TradeState{}
	next := Trades(trades, rules.Resolved{Type: actions.TradeOffer, Player: "top-hat", Other: "boot", Trade: "boot_top-hat", Amount: 5})
	assert.Empty(t, trades)
	assert.Equal(t, "top-hat", next["boot_top-hat"].From)

	next = Trades(next, rules.Resolved{Type: actions.TradeOffer, Player: "boot", Other: "top-hat", Trade: "boot_top-hat", Amount: 7})
	assert.Len(t, next, 1)
	assert.Equal(t, "boot", next["boot_top-hat"].From)

	assert.Empty(t, Trades(next, rules.Resolved{Type: actions.TradeDecline, Trade: "boot_top-hat"}))
}

func TestNoticeSticky(t *testing.T) {
	n := &models.NoticeState{ID: "1"}
	assert.Same(t, n, Notice(n, rules.Resolved{Type: actions.PropertyBuy}))
	assert.Same(t, n, Notice(n, rules.Resolved{Type: "OTHER", Notice: &models.NoticeState{ID: "2"}}))
	assert.Equal(t, "2", Notice(n, rules.Resolved{Type: actions.PropertyBuy, Notice: &models.NoticeState{ID: "2"}}).ID)
}
