// Package reducers holds the pure state transitions for each slice of the
// game state. Every reducer returns its input untouched for action types it
// does not handle and never writes to a map it was given.
package reducers

import (
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/rules"
)

// Reduce applies a to every slice of state.
func Reduce(state models.GameState, a rules.Resolved) models.GameState {
	return models.GameState{
		Bank:       Bank(state.Bank, a),
		Houses:     Houses(state.Houses, a),
		Hotels:     Hotels(state.Hotels, a),
		Players:    Players(state.Players, a),
		Properties: Properties(state.Properties, a),
		Auction:    Auction(state.Auction, a),
		Trades:     Trades(state.Trades, a),
		Notice:     Notice(state.Notice, a),
	}
}
