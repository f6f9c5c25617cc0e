package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/platform/queries"
	"github.com/gomodule/redigo/redis"
	log "github.com/sirupsen/logrus"
)

// Store keeps session records in redis in front of a durable GameStore.
// Loads read through the cache and saves write through it. Redis failures
// are logged and fall back to the durable store.
type Store struct {
	queries.GameStore
	pool *redis.Pool
	ttl  time.Duration
}

func NewStore(next queries.GameStore, pool *redis.Pool, ttl time.Duration) *Store {
	return &Store{GameStore: next, pool: pool, ttl: ttl}
}

func key(id string) string {
	return fmt.Sprintf("game:%s", id)
}

func (s *Store) Load(ctx context.Context, id string) (models.Record, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		log.WithError(err).Warn("redis unavailable")
		return s.GameStore.Load(ctx, id)
	}
	defer conn.Close()

	data, err := Get(key(id), conn)
	if err == nil {
		var rec models.Record
		if err = json.Unmarshal(data, &rec); err == nil {
			return rec, nil
		}
	}
	if !errors.Is(err, redis.ErrNil) {
		log.WithError(err).WithField("game", id).Warn("cache read failed")
	}

	rec, err := s.GameStore.Load(ctx, id)
	if err != nil {
		return models.Record{}, err
	}
	s.put(conn, rec)
	return rec, nil
}

func (s *Store) Save(ctx context.Context, rec models.Record) error {
	if err := s.GameStore.Save(ctx, rec); err != nil {
		return err
	}
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		log.WithError(err).Warn("redis unavailable")
		return nil
	}
	defer conn.Close()
	s.put(conn, rec)
	return nil
}

func (s *Store) Close() error {
	if err := s.pool.Close(); err != nil {
		log.WithError(err).Warn("closing redis pool")
	}
	return s.GameStore.Close()
}

// put caches rec, dropping any stale copy when that fails.
func (s *Store) put(conn redis.Conn, rec models.Record) {
	data, err := json.Marshal(rec)
	if err == nil {
		err = Set(key(rec.ID), data, s.ttl, conn)
	}
	if err != nil {
		log.WithError(err).WithField("game", rec.ID).Warn("cache write failed")
		Del(key(rec.ID), conn)
	}
}
