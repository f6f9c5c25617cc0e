package selectors

import (
	"testing"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/stretchr/testify/assert"
)

func testState() models.GameState {
	catalog := []models.Property{
		{ID: "oriental", Name: "Oriental Avenue", Group: "lightblue", Price: 100, Cost: 50, Rent: [6]int{6, 30, 90, 270, 400, 550}},
		{ID: "vermont", Name: "Vermont Avenue", Group: "lightblue", Price: 100, Cost: 50, Rent: [6]int{6, 30, 90, 270, 400, 550}},
		{ID: "reading", Name: "Reading Railroad", Group: models.GroupRailroad, Price: 200, Rent: [6]int{25, 50, 100, 200}},
		{ID: "pennsylvania-rr", Name: "Pennsylvania Railroad", Group: models.GroupRailroad, Price: 200, Rent: [6]int{25, 50, 100, 200}},
		{ID: "electric", Name: "Electric Company", Group: models.GroupUtility, Price: 150, Rent: [6]int{4, 10}},
		{ID: "water", Name: "Water Works", Group: models.GroupUtility, Price: 150, Rent: [6]int{4, 10}},
	}
	state := models.NewGameState(catalog, models.DefaultConfig())
	state.Players["top-hat"] = models.PlayerState{Name: "A", Token: "top-hat", Balance: 1500}
	state.Players["thimble"] = models.PlayerState{Name: "B", Token: "thimble", Balance: 1500, Bankrupt: true}
	state.Players["boot"] = models.PlayerState{Name: "C", Token: "boot", Balance: 1500}
	return state
}

func own(state *models.GameState, id, owner string) {
	p := state.Properties.ByID[id]
	p.Owner = owner
	state.Properties.ByID[id] = p
}

func TestTradeIDOrderIndependent(t *testing.T) {
	assert.Equal(t, TradeID("top-hat", "boot"), TradeID("boot", "top-hat"))
	assert.Equal(t, "boot_top-hat", TradeID("top-hat", "boot"))
}

func TestActivePlayersSkipsBankrupt(t *testing.T) {
	assert.Equal(t, []string{"boot", "top-hat"}, ActivePlayers(testState()))
}

func TestGetGroupKeepsCatalogOrder(t *testing.T) {
	group := GetGroup(testState(), "lightblue")
	if assert.Len(t, group, 2) {
		assert.Equal(t, "oriental", group[0].ID)
		assert.Equal(t, "vermont", group[1].ID)
	}
}

func TestIsMonopoly(t *testing.T) {
	state := testState()
	assert.False(t, IsMonopoly(state, "lightblue"))

	own(&state, "oriental", "top-hat")
	assert.False(t, IsMonopoly(state, "lightblue"))

	own(&state, "vermont", "boot")
	assert.False(t, IsMonopoly(state, "lightblue"))

	own(&state, "vermont", "top-hat")
	assert.True(t, IsMonopoly(state, "lightblue"))
	assert.False(t, IsMonopoly(state, "missing"))
}

func TestRent(t *testing.T) {
	state := testState()

	own(&state, "reading", "top-hat")
	assert.Equal(t, 25, Rent(state, state.Properties.ByID["reading"], 0))
	own(&state, "pennsylvania-rr", "top-hat")
	assert.Equal(t, 50, Rent(state, state.Properties.ByID["reading"], 0))

	own(&state, "electric", "boot")
	assert.Equal(t, 28, Rent(state, state.Properties.ByID["electric"], 7))
	own(&state, "water", "boot")
	assert.Equal(t, 70, Rent(state, state.Properties.ByID["electric"], 7))

	own(&state, "oriental", "top-hat")
	assert.Equal(t, 6, Rent(state, state.Properties.ByID["oriental"], 0))
	own(&state, "vermont", "top-hat")
	assert.Equal(t, 12, Rent(state, state.Properties.ByID["oriental"], 0))
	oriental := state.Properties.ByID["oriental"]
	oriental.Buildings = 3
	assert.Equal(t, 270, Rent(state, oriental, 0))
}

func TestOwnedBy(t *testing.T) {
	state := testState()
	own(&state, "water", "boot")
	own(&state, "oriental", "boot")
	assert.Equal(t, []string{"oriental", "water"}, OwnedBy(state, "boot"))
	assert.Empty(t, OwnedBy(state, "top-hat"))
}
