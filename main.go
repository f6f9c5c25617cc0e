package main

import (
	"context"
	"strings"

	"github.com/DedS3t/monopoly-backend/app/controllers"
	"github.com/DedS3t/monopoly-backend/app/room"
	"github.com/DedS3t/monopoly-backend/pkg/routes"
	"github.com/DedS3t/monopoly-backend/platform/board"
	"github.com/DedS3t/monopoly-backend/platform/cache"
	"github.com/DedS3t/monopoly-backend/platform/config"
	"github.com/DedS3t/monopoly-backend/platform/logging"
	"github.com/DedS3t/monopoly-backend/platform/queries"
	socket "github.com/DedS3t/monopoly-backend/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	properties, err := board.LoadProperties()
	if err != nil {
		log.WithError(err).Fatal("loading properties")
	}
	messages, err := board.LoadMessages()
	if err != nil {
		log.WithError(err).Fatal("loading messages")
	}

	games, err := queries.Open(context.Background(), cfg.DB)
	if err != nil {
		log.WithError(err).Fatal("opening database")
	}
	if cfg.Redis.URL != "" {
		games = cache.NewStore(games, cache.CreateRedisPool(cfg.Redis.URL), cfg.Redis.TTL)
	}
	defer games.Close()

	rooms := room.NewRegistry(games, messages)
	rooms.StorageTimeout = cfg.StorageTimeout
	server, err := socket.CreateSocketIOServer(&socket.Handlers{Rooms: rooms})
	if err != nil {
		log.WithError(err).Fatal("creating socket.io server")
	}
	go func() {
		if err := socket.Serve(server, cfg.SocketAddr, cfg.CORSOrigins); err != nil {
			log.WithError(err).Fatal("socket.io server")
		}
	}()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
	}))
	routes.HealthRoutes(app)
	routes.GameRoutes(app, &controllers.GameController{
		Games:    games,
		Catalog:  properties,
		Defaults: cfg.Game,
	})

	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.WithError(err).Error("http server")
	}
}
