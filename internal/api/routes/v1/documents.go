package v1

import (
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/handlers"
	"estatedesk-backend/internal/libraries"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerDocuments(r fiber.Router, protected fiber.Handler) {
	documentRepo := repo.NewDocumentRepository(config.DB)
	documentHandler := handlers.NewDocumentHandler(documentRepo, libraries.GetClients())

	r.Get("/documents/project/:projectId", documentHandler.GetDocumentsByProject)
	r.Post("/documents/upload", protected, documentHandler.Upload)
}
