package database

import (
	"github.com/DedS3t/monopoly-backend/platform/config"
	"github.com/go-pg/pg/v10"
)

func PostgreSQLConnection(cfg config.Database) *pg.DB {
	return pg.Connect(&pg.Options{
		User:     cfg.User,
		Addr:     cfg.Addr,
		Password: cfg.Password,
		Database: cfg.Name,
	})
}
