package v1

import (
	"estatedesk-backend/internal/auth"
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/handlers"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerAuth(r fiber.Router, authority *auth.Authority) {
	userRepo := repo.NewUserRepository(config.DB)
	authHandler := handlers.NewAuthHandler(userRepo, authority)

	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/logout", authHandler.Logout)
	r.Get("/auth/google", authHandler.GoogleLogin)
	r.Get("/auth/google/callback", authHandler.GoogleCallback)
}
