package rules

import (
	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/selectors"
)

// Resolved is an action with every field evaluated.
type Resolved struct {
	Type       actions.Type
	Player     string
	Other      string
	Name       string
	Property   string
	Properties []string
	Players    []string
	Trade      string
	Amount     int
	Houses     int
	Hotels     int
	Notice     *models.NoticeState
}

// Context is everything a rule can look at. Rules must not modify it.
type Context struct {
	State  models.GameState
	Config models.Config
	Action Resolved

	// Entities referenced by the action. When the lookup misses they hold
	// only the raw reference, such as PlayerState{Token: "x"}.
	Player   models.PlayerState
	Other    models.PlayerState
	Property models.PropertyState
	Trade    models.TradeState
	// Properties are the group siblings of Property, Property included.
	Properties []models.PropertyState
}

// Resolve evaluates every field of a against state and config and looks up
// the entities it references.
func Resolve(a actions.Action, state models.GameState, config models.Config) *Context {
	src := actions.Source{State: state, Config: config}
	r := Resolved{
		Type:       a.Type,
		Player:     a.Player.Resolve(src),
		Other:      a.Other.Resolve(src),
		Name:       a.Name.Resolve(src),
		Property:   a.Property.Resolve(src),
		Properties: a.Properties.Resolve(src),
		Players:    a.Players.Resolve(src),
		Trade:      a.Trade.Resolve(src),
		Amount:     a.Amount.Resolve(src),
		Houses:     a.Houses.Resolve(src),
		Hotels:     a.Hotels.Resolve(src),
	}
	c := &Context{
		State:    state,
		Config:   config,
		Action:   r,
		Player:   player(state, r.Player),
		Other:    player(state, r.Other),
		Property: models.PropertyState{ID: r.Property},
		Trade:    models.TradeState{ID: r.Trade},
	}
	if r.Property != "" {
		if p, ok := selectors.GetProperty(state, r.Property); ok {
			c.Property = p
			c.Properties = selectors.GetGroup(state, p.Group)
		}
	}
	if r.Trade != "" {
		if t, ok := state.Trades[r.Trade]; ok {
			c.Trade = t
		}
	}
	return c
}

func player(state models.GameState, token string) models.PlayerState {
	if token == models.Bank {
		return models.PlayerState{Token: models.Bank, Name: "the bank"}
	}
	if p, ok := selectors.GetPlayer(state, token); ok {
		return p
	}
	return models.PlayerState{Token: token}
}

// Scope is the view of the context message templates render against.
func (c *Context) Scope() map[string]interface{} {
	return map[string]interface{}{
		"player":     c.Player,
		"other":      c.Other,
		"property":   c.Property,
		"properties": c.Properties,
		"trade":      c.Trade,
		"auction":    c.State.Auction,
		"name":       c.Action.Name,
		"amount":     c.Action.Amount,
		"houses":     c.Action.Houses,
		"hotels":     c.Action.Hotels,
		"bank":       c.State.Bank,
		"config":     c.Config,
	}
}

// field returns the resolved value a notice meta key names.
func (c *Context) field(name string) (interface{}, bool) {
	switch name {
	case "player":
		return c.Action.Player, true
	case "other":
		return c.Action.Other, true
	case "name":
		return c.Action.Name, true
	case "property":
		return c.Action.Property, true
	case "properties":
		return c.Action.Properties, true
	case "players":
		return c.Action.Players, true
	case "trade":
		return c.Action.Trade, true
	case "amount":
		return c.Action.Amount, true
	case "houses":
		return c.Action.Houses, true
	case "hotels":
		return c.Action.Hotels, true
	}
	return nil, false
}
