package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type PGStore struct {
	db *pg.DB
}

func NewPGStore(db *pg.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) CreateTable(ctx context.Context) error {
	err := s.db.ModelContext(ctx, (*models.Game)(nil)).CreateTable(&orm.CreateTableOptions{
		IfNotExists: true,
	})
	if err != nil {
		return fmt.Errorf("create games table: %w", err)
	}
	return nil
}

func (s *PGStore) CreateGame(ctx context.Context, game *models.Game) error {
	if _, err := s.db.ModelContext(ctx, game).Insert(); err != nil {
		return fmt.Errorf("insert game %s: %w", game.Id, err)
	}
	return nil
}

func (s *PGStore) Load(ctx context.Context, id string) (models.Record, error) {
	game := &models.Game{Id: id}
	err := s.db.ModelContext(ctx, game).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return models.Record{}, models.ErrGameNotFound
	}
	if err != nil {
		return models.Record{}, fmt.Errorf("select game %s: %w", id, err)
	}
	return game.Record(), nil
}

func (s *PGStore) Save(ctx context.Context, rec models.Record) error {
	game := &models.Game{
		Id:        rec.ID,
		Status:    statusOf(rec.State),
		State:     rec.State,
		Config:    rec.Config,
		UpdatedAt: time.Now().UTC(),
	}
	res, err := s.db.ModelContext(ctx, game).
		Column("status", "state", "config", "updated_at").
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("update game %s: %w", rec.ID, err)
	}
	if res.RowsAffected() == 0 {
		return models.ErrGameNotFound
	}
	return nil
}

func (s *PGStore) ListGames(ctx context.Context) ([]models.GameSummary, error) {
	var games []models.Game
	if err := s.db.ModelContext(ctx, &games).Order("updated_at DESC").Select(); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	out := make([]models.GameSummary, 0, len(games))
	for _, g := range games {
		out = append(out, summarize(g))
	}
	return out, nil
}

func (s *PGStore) Close() error {
	return s.db.Close()
}
