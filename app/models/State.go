package models

import "math"

// Unlimited marks a bank that never runs out of money.
const Unlimited = math.MaxInt64

type AuctionState struct {
	Property string   `json:"property"`
	Players  []string `json:"players"`
	Winning  string   `json:"winning,omitempty"`
	Amount   int      `json:"amount"`
}

// HasWinner reports whether any bid has been placed.
func (a AuctionState) HasWinner() bool {
	return a.Winning != ""
}

type TradeState struct {
	ID         string   `json:"id"`
	From       string   `json:"from"`
	With       string   `json:"with"`
	Properties []string `json:"properties"`
	// Amount is paid by From to With; negative amounts flow the other way.
	Amount int `json:"amount"`
}

type NoticeState struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

type GameState struct {
	Bank       int                   `json:"bank"`
	Houses     int                   `json:"houses"`
	Hotels     int                   `json:"hotels"`
	Players    Players               `json:"players"`
	Properties Properties            `json:"properties"`
	Auction    *AuctionState         `json:"auction"`
	Trades     map[string]TradeState `json:"trades"`
	Notice     *NoticeState          `json:"notice"`
}

// NewGameState builds the opening state of a session.
func NewGameState(catalog []Property, config Config) GameState {
	bank := config.BankStart
	if bank < 0 {
		bank = Unlimited
	}
	return GameState{
		Bank:       bank,
		Houses:     config.HouseCount,
		Hotels:     config.HotelCount,
		Players:    Players{},
		Properties: NewProperties(catalog),
		Trades:     map[string]TradeState{},
	}
}
