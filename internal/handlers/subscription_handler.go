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

type SubscriptionHandler struct {
	repo repo.SubscriptionRepoInterface
}

func NewSubscriptionHandler(repo repo.SubscriptionRepoInterface) *SubscriptionHandler {
	return &SubscriptionHandler{repo: repo}
}

func (h *SubscriptionHandler) GetAllSubscriptions(c *fiber.Ctx) error {
	subs, err := h.repo.GetAllSubscriptions()
	if err != nil {
		log.Println(err, "Error getting subscriptions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get subscriptions",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subscriptions": subs,
	})
}

func (h *SubscriptionHandler) GetSubscriptionByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	sub, err := h.repo.GetSubscriptionByUser(userID)
	if err != nil {
		log.Println(err, "Error getting subscription")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get subscription",
		})
	}

	// mirrors the "null when absent" contract of the dashboard
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subscription": sub,
	})
}

func (h *SubscriptionHandler) CreateSubscription(c *fiber.Ctx) error {
	var dto struct {
		UserID               string          `json:"userId"`
		Plan                 string          `json:"plan"`
		StripeSubscriptionID string          `json:"stripeSubscriptionId"`
		Quota                json.RawMessage `json:"quota"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Plan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Plan is required",
		})
	}
	userID, err := uuid.Parse(dto.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	sub := &models.Subscription{
		UserUUID:             userID,
		Plan:                 dto.Plan,
		StripeSubscriptionID: dto.StripeSubscriptionID,
		Quota:                datatypes.JSON(dto.Quota),
		Status:               models.SubscriptionActive,
	}
	if err := h.repo.CreateSubscription(sub); err != nil {
		log.Println(err, "Error creating subscription")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create subscription",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"subscription": sub,
	})
}

func (h *SubscriptionHandler) UpdateSubscription(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subscription ID",
		})
	}

	var dto struct {
		Plan   *string         `json:"plan"`
		Status *string         `json:"status"`
		Quota  json.RawMessage `json:"quota"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updates := map[string]interface{}{}
	if dto.Plan != nil {
		updates["plan"] = *dto.Plan
	}
	if dto.Status != nil {
		switch models.SubscriptionStatus(*dto.Status) {
		case models.SubscriptionActive, models.SubscriptionPastDue,
			models.SubscriptionCanceled, models.SubscriptionTrialing:
			updates["status"] = *dto.Status
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status",
			})
		}
	}
	if len(dto.Quota) > 0 {
		updates["quota"] = datatypes.JSON(dto.Quota)
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No fields to update",
		})
	}

	sub, err := h.repo.UpdateSubscription(id, updates)
	if err != nil {
		log.Println(err, "Error updating subscription")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update subscription",
		})
	}
	if sub == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subscription not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subscription": sub,
	})
}
