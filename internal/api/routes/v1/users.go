package v1

import (
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/handlers"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerUsers(r fiber.Router, protected fiber.Handler) {
	userRepo := repo.NewUserRepository(config.DB)
	userHandler := handlers.NewUserHandler(userRepo)

	r.Get("/users/me", protected, userHandler.GetMe)
	r.Patch("/users/me", protected, userHandler.UpdateMe)
}
