package handlers

import (
	"log"

	"estatedesk-backend/internal/auth"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	repo repo.UserRepoInterface
}

func NewUserHandler(repo repo.UserRepoInterface) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, ok := auth.CallerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	user, err := h.repo.GetUserByID(userID)
	if err != nil {
		log.Println(err, "Error getting user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get user",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID, ok := auth.CallerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var dto struct {
		Name  *string `json:"name"`
		Image *string `json:"image"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updates := map[string]interface{}{}
	if dto.Name != nil && *dto.Name != "" {
		updates["name"] = *dto.Name
	}
	if dto.Image != nil {
		updates["image"] = *dto.Image
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No fields to update",
		})
	}

	user, err := h.repo.UpdateUser(userID, updates)
	if err != nil {
		log.Println(err, "Error updating user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}
