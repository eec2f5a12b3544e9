package handlers

import (
	"encoding/json"
	"log"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditHandler struct {
	repo repo.AuditLogRepoInterface
}

func NewAuditHandler(repo repo.AuditLogRepoInterface) *AuditHandler {
	return &AuditHandler{repo: repo}
}

func (h *AuditHandler) GetRecentAuditLogs(c *fiber.Ctx) error {
	logs, err := h.repo.GetRecentAuditLogs(c.QueryInt("limit", 100))
	if err != nil {
		log.Println(err, "Error getting audit logs")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get audit logs",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"logs": logs,
	})
}

func (h *AuditHandler) CreateAuditLog(c *fiber.Ctx) error {
	var dto struct {
		ActorID  string          `json:"actorId"`
		Action   string          `json:"action"`
		Resource json.RawMessage `json:"resource"`
		Meta     json.RawMessage `json:"meta"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Action is required",
		})
	}

	entry := &models.AuditLog{
		Action:   dto.Action,
		Resource: datatypes.JSON(dto.Resource),
		Meta:     datatypes.JSON(dto.Meta),
	}
	if dto.ActorID != "" {
		actorID, err := uuid.Parse(dto.ActorID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid actor ID",
			})
		}
		entry.ActorUUID = &actorID
	}

	if err := h.repo.CreateAuditLog(entry); err != nil {
		log.Println(err, "Error creating audit log")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create audit log",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"log": entry,
	})
}
