package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DedS3t/monopoly-backend/app/models"
)

const createGames = `CREATE TABLE IF NOT EXISTS games (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	status     TEXT NOT NULL,
	state      TEXT NOT NULL,
	config     TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLStore keeps sessions in an embedded sqlite database. State and config
// are stored as JSON text.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreateTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createGames); err != nil {
		return fmt.Errorf("create games table: %w", err)
	}
	return nil
}

func (s *SQLStore) CreateGame(ctx context.Context, game *models.Game) error {
	state, config, err := encode(game.State, game.Config)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO games (id, name, status, state, config, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		game.Id, game.Name, game.Status, state, config, game.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", game.Id, err)
	}
	return nil
}

func (s *SQLStore) Load(ctx context.Context, id string) (models.Record, error) {
	var state, config string
	err := s.db.QueryRowContext(ctx, `SELECT state, config FROM games WHERE id = ?`, id).Scan(&state, &config)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, models.ErrGameNotFound
	}
	if err != nil {
		return models.Record{}, fmt.Errorf("select game %s: %w", id, err)
	}
	rec := models.Record{ID: id}
	if err := json.Unmarshal([]byte(state), &rec.State); err != nil {
		return models.Record{}, fmt.Errorf("decode state of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(config), &rec.Config); err != nil {
		return models.Record{}, fmt.Errorf("decode config of %s: %w", id, err)
	}
	return rec, nil
}

func (s *SQLStore) Save(ctx context.Context, rec models.Record) error {
	state, config, err := encode(rec.State, rec.Config)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE games SET status = ?, state = ?, config = ?, updated_at = ? WHERE id = ?`,
		statusOf(rec.State), state, config, time.Now().UTC().UnixMilli(), rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update game %s: %w", rec.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrGameNotFound
	}
	return nil
}

func (s *SQLStore) ListGames(ctx context.Context) ([]models.GameSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, status, state FROM games ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	defer rows.Close()

	out := []models.GameSummary{}
	for rows.Next() {
		var g models.Game
		var state string
		if err := rows.Scan(&g.Id, &g.Name, &g.Status, &state); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		if err := json.Unmarshal([]byte(state), &g.State); err != nil {
			return nil, fmt.Errorf("decode state of %s: %w", g.Id, err)
		}
		out = append(out, summarize(g))
	}
	return out, rows.Err()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func encode(state models.GameState, config models.Config) (string, string, error) {
	s, err := json.Marshal(state)
	if err != nil {
		return "", "", fmt.Errorf("encode state: %w", err)
	}
	c, err := json.Marshal(config)
	if err != nil {
		return "", "", fmt.Errorf("encode config: %w", err)
	}
	return string(s), string(c), nil
}
