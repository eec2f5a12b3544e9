package v1

import (
	"estatedesk-backend/internal/auth"
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router) {
	authority := auth.NewAuthority(repo.NewSessionRepository(config.DB))
	protected := auth.Middleware(authority)

	registerHealth(r)
	registerAuth(r, authority)
	registerUsers(r, protected)
	registerProjects(r, protected)
	registerDocuments(r, protected)
	registerChat(r, protected)
	registerSubscriptions(r)
	registerAuditLogs(r)
}
