package handlers

import (
	"log"
	"time"

	"estatedesk-backend/internal/auth"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// for simple crud operations service layer is not required
type ProjectHandler struct {
	repo repo.ProjectRepoInterface
}

func NewProjectHandler(repo repo.ProjectRepoInterface) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

// function to create a project
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	userID, ok := auth.CallerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var dto struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Phase       string `json:"phase"`
		LaunchDate  string `json:"launchDate"` // ISO date string
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	project := &models.Project{
		Name:          dto.Name,
		Description:   dto.Description,
		Location:      dto.Location,
		Phase:         dto.Phase,
		DeveloperUUID: userID,
	}
	if dto.LaunchDate != "" {
		launch, err := time.Parse("2006-01-02", dto.LaunchDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid launch date",
			})
		}
		project.LaunchDate = &launch
	}

	id, err := h.repo.CreateProject(project)
	if err != nil {
		log.Println(err, "Error creating project")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create project",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":    id.String(),
		"project": project,
	})
}

// function to get all projects
func (h *ProjectHandler) GetAllProjects(c *fiber.Ctx) error {
	projects, err := h.repo.GetAllProjects()
	if err != nil {
		log.Println(err, "Error getting projects")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get projects",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"projects": projects,
	})
}

// function to get project by ID
func (h *ProjectHandler) GetProjectByID(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID",
		})
	}

	project, err := h.repo.GetProjectByID(projectID)
	if err != nil {
		log.Println(err, "Error getting project")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get project",
		})
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"project": project,
	})
}

// function to update a project
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	if _, ok := auth.CallerID(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID",
		})
	}

	var dto struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Location    *string `json:"location"`
		Phase       *string `json:"phase"`
		LaunchDate  *string `json:"launchDate"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}
	if dto.Phase != nil {
		updates["phase"] = *dto.Phase
	}
	if dto.LaunchDate != nil {
		launch, err := time.Parse("2006-01-02", *dto.LaunchDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid launch date",
			})
		}
		updates["launch_date"] = launch
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No fields to update",
		})
	}

	project, err := h.repo.UpdateProject(projectID, updates)
	if err != nil {
		log.Println(err, "Error updating project")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update project",
		})
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"project": project,
	})
}
