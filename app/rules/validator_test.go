package rules

import (
	"errors"
	"testing"

	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/notice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() (models.GameState, models.Config) {
	config := models.DefaultConfig()
	state := models.NewGameState([]models.Property{
		{ID: "mediterranean", Name: "Mediterranean Avenue", Group: "purple", Price: 60, Cost: 50},
		{ID: "baltic", Name: "Baltic Avenue", Group: "purple", Price: 60, Cost: 50},
	}, config)
	state.Players["top-hat"] = models.PlayerState{Name: "Ann", Token: "top-hat", Balance: 1500}
	return state, config
}

func TestResolveLooksUpEntities(t *testing.T) {
	state, config := testState()
	c := Resolve(actions.BuyProperty("top-hat", "baltic", nil), state, config)

	assert.Equal(t, actions.PropertyBuy, c.Action.Type)
	assert.Equal(t, 60, c.Action.Amount)
	assert.Equal(t, "Ann", c.Player.Name)
	assert.Equal(t, "Baltic Avenue", c.Property.Name)
	require.Len(t, c.Properties, 2)
	assert.Equal(t, "mediterranean", c.Properties[0].ID)
}

func TestResolveFallsBackToReference(t *testing.T) {
	state, config := testState()
	c := Resolve(actions.BuyProperty("boot", "boardwalk", nil), state, config)

	assert.Equal(t, models.PlayerState{Token: "boot"}, c.Player)
	assert.Equal(t, models.PropertyState{ID: "boardwalk"}, c.Property)
	assert.Empty(t, c.Properties)
	assert.Equal(t, 0, c.Action.Amount)
}

func TestValidateStopsAtFirstFailure(t *testing.T) {
	state, config := testState()
	var ran []string
	rule := func(name string, ok bool) Rule {
		return Rule{name, func(*Context) bool {
			ran = append(ran, name)
			return ok
		}}
	}
	v := &Validator{
		Rules: Registry{
			actions.PropertyBuy: {rule("first", true), rule("second", false), rule("third", false)},
		},
		Catalog: notice.Messages{"rule.second": "{{player.name}} broke the second rule"},
	}

	err := v.Validate(Resolve(actions.BuyProperty("top-hat", "baltic", nil), state, config))
	require.Error(t, err)
	assert.Equal(t, []string{"first", "second"}, ran)
	assert.EqualError(t, err, "Ann broke the second rule")

	var violation *Error
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "second", violation.Name)
	assert.True(t, errors.Is(err, Violation("second", "")))
	assert.False(t, errors.Is(err, Violation("third", "")))
}

func TestValidateUnregisteredType(t *testing.T) {
	state, config := testState()
	v := &Validator{Rules: Registry{}}
	assert.NoError(t, v.Validate(Resolve(actions.BuyProperty("boot", "nowhere", nil), state, config)))
}

func TestNotice(t *testing.T) {
	state, config := testState()
	v := &Validator{
		Catalog: notice.Messages{"notice.bought-property": "{{player.name}} bought {{property.name}}"},
		NewID:   func() string { return "n1" },
	}
	c := Resolve(actions.BuyProperty("top-hat", "baltic", nil), state, config)

	n := v.Notice(actions.BuyProperty("top-hat", "baltic", nil).Notice, c)
	require.NotNil(t, n)
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, actions.NoticeProperty, n.Type)
	assert.Equal(t, "Ann bought Baltic Avenue", n.Message)
	assert.Equal(t, n, c.Action.Notice)

	assert.Nil(t, v.Notice(nil, c))
}

func TestDefaultRegistryCoversEveryType(t *testing.T) {
	reg := Default()
	for _, typ := range []actions.Type{
		actions.PlayerJoin, actions.PropertyBuy, actions.PropertyImprove, actions.PropertyUnimprove,
		actions.PropertyMortgage, actions.PropertyUnmortgage, actions.PlayerPayRent,
		actions.PlayerToBank, actions.BankToPlayer, actions.PlayerToPlayer, actions.PlayerBankrupt,
		actions.AuctionStart, actions.AuctionBid, actions.AuctionConcede, actions.AuctionClose,
		actions.TradeOffer, actions.TradeDecline, actions.TradeAccept,
	} {
		assert.NotEmpty(t, reg[typ], typ)
	}
}
