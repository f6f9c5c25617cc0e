// Package selectors holds read-only lookups into a game state.
package selectors

import (
	"sort"
	"strings"

	"github.com/DedS3t/monopoly-backend/app/models"
)

func GetPlayer(state models.GameState, token string) (models.PlayerState, bool) {
	player, ok := state.Players[token]
	return player, ok
}

// ActivePlayers returns the tokens of every player that is not bankrupt,
// sorted so callers get a stable order.
func ActivePlayers(state models.GameState) []string {
	tokens := make([]string, 0, len(state.Players))
	for token, player := range state.Players {
		if !player.Bankrupt {
			tokens = append(tokens, token)
		}
	}
	sort.Strings(tokens)
	return tokens
}

func GetProperty(state models.GameState, id string) (models.PropertyState, bool) {
	property, ok := state.Properties.ByID[id]
	return property, ok
}

// GetGroup returns every property of group in catalog order.
func GetGroup(state models.GameState, group string) []models.PropertyState {
	var out []models.PropertyState
	for _, id := range state.Properties.All {
		if p := state.Properties.ByID[id]; p.Group == group {
			out = append(out, p)
		}
	}
	return out
}

// OwnedBy returns the ids of every property token owns, in catalog order.
func OwnedBy(state models.GameState, token string) []string {
	var out []string
	for _, id := range state.Properties.All {
		if state.Properties.ByID[id].Owner == token {
			out = append(out, id)
		}
	}
	return out
}

// OwnedInGroup counts the properties of group held by owner.
func OwnedInGroup(state models.GameState, group, owner string) int {
	n := 0
	for _, p := range GetGroup(state, group) {
		if p.Owner == owner {
			n++
		}
	}
	return n
}

// IsMonopoly recomputes the monopoly flag for group from ownership alone.
func IsMonopoly(state models.GameState, group string) bool {
	siblings := GetGroup(state, group)
	if len(siblings) == 0 {
		return false
	}
	owner := siblings[0].Owner
	if owner == models.Bank {
		return false
	}
	for _, p := range siblings[1:] {
		if p.Owner != owner {
			return false
		}
	}
	return true
}

// TradeID is the key of a trade between two players regardless of who offered.
func TradeID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}

func GetTrade(state models.GameState, a, b string) (models.TradeState, bool) {
	trade, ok := state.Trades[TradeID(a, b)]
	return trade, ok
}

// Rent computes what landing on p costs. dice only matters for utilities.
func Rent(state models.GameState, p models.PropertyState, dice int) int {
	switch p.Group {
	case models.GroupRailroad:
		n := OwnedInGroup(state, p.Group, p.Owner)
		if n == 0 {
			return 0
		}
		return p.Rent[n-1]
	case models.GroupUtility:
		n := OwnedInGroup(state, p.Group, p.Owner)
		if n == 0 {
			return 0
		}
		return p.Rent[n-1] * dice
	}
	if p.Buildings == 0 && OwnedInGroup(state, p.Group, p.Owner) == len(GetGroup(state, p.Group)) {
		return p.Rent[0] * 2
	}
	return p.Rent[p.Buildings]
}
