// Package queries persists game sessions. Rooms only need Load and Save;
// the HTTP API also creates and lists sessions.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/platform/config"
	"github.com/DedS3t/monopoly-backend/platform/database"
)

type GameStore interface {
	CreateGame(ctx context.Context, game *models.Game) error
	Load(ctx context.Context, id string) (models.Record, error)
	Save(ctx context.Context, rec models.Record) error
	ListGames(ctx context.Context) ([]models.GameSummary, error)
	Close() error
}

// Open connects to the database the dialect names and makes sure the games
// table exists.
func Open(ctx context.Context, cfg config.Database) (GameStore, error) {
	switch cfg.Dialect {
	case config.DialectPostgres:
		s := NewPGStore(database.PostgreSQLConnection(cfg))
		if err := s.CreateTable(ctx); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	case config.DialectSQLite:
		db, err := database.SQLiteConnection(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s := NewSQLStore(db)
		if err := s.CreateTable(ctx); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported DB_DIALECT %q", cfg.Dialect)
}

// NewGame builds the row for a fresh session.
func NewGame(id, name string, catalog []models.Property, cfg models.Config) *models.Game {
	return &models.Game{
		Id:        id,
		Name:      name,
		Status:    models.StatusOpen,
		State:     models.NewGameState(catalog, cfg),
		Config:    cfg,
		UpdatedAt: time.Now().UTC(),
	}
}

func statusOf(state models.GameState) string {
	if len(state.Players) > 0 {
		return models.StatusPlaying
	}
	return models.StatusOpen
}

func summarize(g models.Game) models.GameSummary {
	return models.GameSummary{
		Id:      g.Id,
		Name:    g.Name,
		Status:  g.Status,
		Players: len(g.State.Players),
	}
}
