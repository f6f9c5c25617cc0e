package actions

import (
	"testing"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/stretchr/testify/assert"
)

func source() Source {
	catalog := []models.Property{
		{ID: "mediterranean", Name: "Mediterranean Avenue", Group: "purple", Price: 60, Cost: 50, Rent: [6]int{2, 10, 30, 90, 160, 250}},
		{ID: "baltic", Name: "Baltic Avenue", Group: "purple", Price: 60, Cost: 50, Rent: [6]int{4, 20, 60, 180, 320, 450}},
	}
	config := models.DefaultConfig()
	state := models.NewGameState(catalog, config)
	state.Players["top-hat"] = models.PlayerState{Name: "A", Token: "top-hat", Balance: 1500}
	return Source{State: state, Config: config}
}

func TestFieldResolve(t *testing.T) {
	var unset Field[int]
	assert.False(t, unset.IsSet())
	assert.Equal(t, 0, unset.Resolve(source()))

	concrete := Value(5)
	assert.True(t, concrete.IsSet())
	assert.False(t, concrete.IsDeferred())
	assert.Equal(t, 5, concrete.Resolve(source()))

	calls := 0
	deferred := Deferred(func(src Source) int {
		calls++
		return src.Config.PlayerStart
	})
	assert.Equal(t, 0, calls, "building a deferred field must not evaluate it")
	assert.Equal(t, 1500, deferred.Resolve(source()))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 5, concrete.Or(deferred).Resolve(source()))
	assert.Equal(t, 1500, unset.Or(deferred).Resolve(source()))
}

func TestBuyPropertyDefaultsToPrice(t *testing.T) {
	src := source()
	a := BuyProperty("top-hat", "baltic", nil)
	assert.True(t, a.Amount.IsDeferred())
	assert.Equal(t, 60, a.Amount.Resolve(src))

	amount := 10
	a = BuyProperty("top-hat", "baltic", &amount)
	assert.Equal(t, 10, a.Amount.Resolve(src))
}

func TestImproveToHotelSwapsHouses(t *testing.T) {
	src := source()
	a := ImproveProperty("top-hat", "baltic")
	assert.Equal(t, 1, a.Houses.Resolve(src))
	assert.Equal(t, 0, a.Hotels.Resolve(src))
	assert.Equal(t, 50, a.Amount.Resolve(src))

	p := src.State.Properties.ByID["baltic"]
	p.Buildings = 4
	src.State.Properties.ByID["baltic"] = p
	assert.Equal(t, -4, a.Houses.Resolve(src))
	assert.Equal(t, 1, a.Hotels.Resolve(src))

	u := UnimproveProperty("top-hat", "baltic")
	assert.Equal(t, -1, u.Houses.Resolve(src))
	assert.Equal(t, 0, u.Hotels.Resolve(src))
	assert.Equal(t, 25, u.Amount.Resolve(src))

	p.Buildings = 5
	src.State.Properties.ByID["baltic"] = p
	assert.Equal(t, 4, u.Houses.Resolve(src))
	assert.Equal(t, -1, u.Hotels.Resolve(src))
}

func TestMortgageAmounts(t *testing.T) {
	src := source()
	assert.Equal(t, 30, MortgageProperty("top-hat", "baltic").Amount.Resolve(src))
	assert.Equal(t, 33, UnmortgageProperty("top-hat", "baltic").Amount.Resolve(src))
}

func TestCloseAuctionNotice(t *testing.T) {
	src := source()
	src.State.Auction = &models.AuctionState{Property: "baltic", Players: []string{"top-hat"}}
	a := CloseAuction()
	assert.Equal(t, "notice.auction-cancelled", a.Notice.ID.Resolve(src))
	assert.Equal(t, "", a.Player.Resolve(src))

	src.State.Auction.Winning = "top-hat"
	src.State.Auction.Amount = 40
	assert.Equal(t, "notice.auction-won", a.Notice.ID.Resolve(src))
	assert.Equal(t, "top-hat", a.Player.Resolve(src))
	assert.Equal(t, 40, a.Amount.Resolve(src))
}

func TestClaimBankruptcyDefaultsToBank(t *testing.T) {
	a := ClaimBankruptcy("top-hat", "")
	assert.Equal(t, models.Bank, a.Other.Resolve(source()))
	assert.Equal(t, 1500, a.Amount.Resolve(source()))
}

func TestDeclineOfferNotice(t *testing.T) {
	src := source()
	src.State.Trades = map[string]models.TradeState{
		"boot_top-hat": {ID: "boot_top-hat", From: "top-hat", With: "boot"},
	}
	assert.Equal(t, "notice.trade-declined", DeclineOffer("boot", "top-hat").Notice.ID.Resolve(src))
	assert.Equal(t, "notice.trade-withdrawn", DeclineOffer("top-hat", "boot").Notice.ID.Resolve(src))
}
