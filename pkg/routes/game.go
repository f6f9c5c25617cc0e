package routes

import (
	"github.com/DedS3t/monopoly-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a *fiber.App, games *controllers.GameController) {
	route := a.Group("/game")
	route.Post("/create", games.CreateGame)
	route.Get("/verify", games.VerifyGame)
	route.Get("/all", games.GetAllGames)
	route.Get("/:id", games.GetGame)
}

func HealthRoutes(a *fiber.App) {
	a.Get("/healthz", controllers.Healthz)
}
