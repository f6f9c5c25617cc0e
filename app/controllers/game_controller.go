package controllers

import (
	"errors"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/pkg"
	"github.com/DedS3t/monopoly-backend/platform/queries"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const codeLength = 8

type GameController struct {
	Games    queries.GameStore
	Catalog  []models.Property
	Defaults models.Config
}

// CreateGame starts a session from the default config, with any fields the
// body sets under "config" taking precedence.
func (g *GameController) CreateGame(c *fiber.Ctx) error {
	cfg := g.Defaults
	cfg.PlayerTokens = append([]string(nil), g.Defaults.PlayerTokens...)
	gameCreateDto := &models.GameCreateDto{Config: &cfg}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(gameCreateDto); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
		}
	}
	if gameCreateDto.Config == nil {
		gameCreateDto.Config = &cfg
	}

	game := queries.NewGame(pkg.RandString(codeLength), gameCreateDto.Name, g.Catalog, *gameCreateDto.Config)
	if game.Name == "" {
		game.Name = "Game " + game.Id
	}
	if err := g.Games.CreateGame(c.UserContext(), game); err != nil {
		log.WithError(err).Error("creating game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	log.WithFields(log.Fields{"game": game.Id, "name": game.Name}).Info("game created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": game.Id})
}

func (g *GameController) GetAllGames(c *fiber.Ctx) error {
	games, err := g.Games.ListGames(c.UserContext())
	if err != nil {
		log.WithError(err).Error("listing games")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

func (g *GameController) VerifyGame(c *fiber.Ctx) error {
	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil || verifyGameDto.Code == "" {
		return c.JSON(fiber.Map{"status": false})
	}
	_, err := g.Games.Load(c.UserContext(), verifyGameDto.Code)
	if err != nil && !errors.Is(err, models.ErrGameNotFound) {
		log.WithError(err).Error("verifying game")
	}
	return c.JSON(fiber.Map{"status": err == nil})
}

func (g *GameController) GetGame(c *fiber.Ctx) error {
	rec, err := g.Games.Load(c.UserContext(), c.Params("id"))
	if errors.Is(err, models.ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		log.WithError(err).Error("loading game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(rec)
}

func Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
