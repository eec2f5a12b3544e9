package v1

import (
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/handlers"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerAuditLogs(r fiber.Router) {
	auditRepo := repo.NewAuditLogRepository(config.DB)
	auditHandler := handlers.NewAuditHandler(auditRepo)

	r.Get("/audit-logs", auditHandler.GetRecentAuditLogs)
	r.Post("/audit-logs", auditHandler.CreateAuditLog)
}
