package v1

import (
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/handlers"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerProjects(r fiber.Router, protected fiber.Handler) {
	projectRepo := repo.NewProjectRepository(config.DB)
	projectHandler := handlers.NewProjectHandler(projectRepo)

	// Marketplace browsing is public; mutation requires a session.
	r.Get("/projects", projectHandler.GetAllProjects)
	r.Post("/projects", protected, projectHandler.CreateProject)
	r.Get("/projects/:projectId", projectHandler.GetProjectByID)
	r.Patch("/projects/:projectId", protected, projectHandler.UpdateProject)
}
