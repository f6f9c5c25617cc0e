package models

import (
	"errors"
	"time"
)

var ErrGameNotFound = errors.New("game not found")

const (
	StatusOpen    = "open"
	StatusPlaying = "in progress"
)

// Record is the persisted shape of one session.
type Record struct {
	ID     string    `json:"id"`
	State  GameState `json:"state"`
	Config Config    `json:"config"`
}

// Game is the storage row behind a Record.
type Game struct {
	tableName struct{} `pg:"games"`

	Id        string    `pg:",pk" json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	State     GameState `pg:",type:jsonb" json:"state"`
	Config    Config    `pg:",type:jsonb" json:"config"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (g *Game) Record() Record {
	return Record{ID: g.Id, State: g.State, Config: g.Config}
}

type GameCreateDto struct {
	Name   string  `json:"name"`
	Config *Config `json:"config"`
}

type VerifyGameDto struct {
	Code string `query:"code"`
}

// GameSummary is what the lobby lists.
type GameSummary struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Players int    `json:"players"`
}
