package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/platform/queries"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memGames struct {
	queries.GameStore
	records map[string]models.Record
	loads   int
	closed  bool
}

func (m *memGames) Load(_ context.Context, id string) (models.Record, error) {
	m.loads++
	rec, ok := m.records[id]
	if !ok {
		return models.Record{}, models.ErrGameNotFound
	}
	return rec, nil
}

func (m *memGames) Save(_ context.Context, rec models.Record) error {
	if _, ok := m.records[rec.ID]; !ok {
		return models.ErrGameNotFound
	}
	m.records[rec.ID] = rec
	return nil
}

func (m *memGames) Close() error {
	m.closed = true
	return nil
}

func setup(t *testing.T) (*Store, *memGames, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	cfg := models.DefaultConfig()
	games := &memGames{records: map[string]models.Record{
		"abc": {ID: "abc", State: models.NewGameState(nil, cfg), Config: cfg},
	}}
	return NewStore(games, CreateRedisPool(mr.Addr()), time.Minute), games, mr
}

func TestLoadReadsThrough(t *testing.T) {
	s, games, mr := setup(t)
	ctx := context.Background()

	rec, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 20580, rec.State.Bank)
	assert.Equal(t, 1, games.loads)
	assert.True(t, mr.Exists("game:abc"))
	assert.Equal(t, time.Minute, mr.TTL("game:abc"))

	_, err = s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, games.loads, "second load is served by redis")

	_, err = s.Load(ctx, "nope")
	assert.ErrorIs(t, err, models.ErrGameNotFound)
	assert.False(t, mr.Exists("game:nope"))
}

func TestSaveWritesThrough(t *testing.T) {
	s, games, mr := setup(t)
	ctx := context.Background()

	rec := games.records["abc"]
	rec.State.Bank = 100
	require.NoError(t, s.Save(ctx, rec))
	assert.Equal(t, 100, games.records["abc"].State.Bank)

	raw, err := mr.Get("game:abc")
	require.NoError(t, err)
	var cached models.Record
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, 100, cached.State.Bank)

	assert.ErrorIs(t, s.Save(ctx, models.Record{ID: "nope"}), models.ErrGameNotFound)
	assert.False(t, mr.Exists("game:nope"))
}

func TestExpiredEntryReloads(t *testing.T) {
	s, games, mr := setup(t)
	ctx := context.Background()

	_, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, games.loads)
}

func TestRedisDownFallsBack(t *testing.T) {
	s, games, mr := setup(t)
	mr.Close()

	rec, err := s.Load(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", rec.ID)
	assert.Equal(t, 1, games.loads)
	require.NoError(t, s.Save(context.Background(), rec))

	require.NoError(t, s.Close())
	assert.True(t, games.closed)
}
