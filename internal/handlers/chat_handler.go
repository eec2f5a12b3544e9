package handlers

import (
	"errors"
	"log"

	"estatedesk-backend/internal/auth"
	"estatedesk-backend/internal/chat"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// SendMessage accepts a chat turn, creating a conversation when none is
// supplied.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, ok := auth.CallerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var dto struct {
		ConversationID string `json:"conversationId"`
		Content        string `json:"content"`
		ProjectID      string `json:"projectId"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content cannot be empty",
		})
	}

	var conversationID *uuid.UUID
	if dto.ConversationID != "" {
		id, err := uuid.Parse(dto.ConversationID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid conversation ID",
			})
		}
		conversationID = &id
	}

	var projectID *uuid.UUID
	if dto.ProjectID != "" {
		id, err := uuid.Parse(dto.ProjectID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid project ID",
			})
		}
		projectID = &id
	}

	result, err := h.svc.SendMessage(c.Context(), userID, dto.Content, conversationID, projectID)
	switch {
	case errors.Is(err, chat.ErrEmptyContent):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content cannot be empty",
		})
	case errors.Is(err, chat.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	case errors.Is(err, chat.ErrCompletionFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate response",
		})
	case err != nil:
		log.Println(err, "Error processing chat message")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"conversationId":   result.Conversation.UUID,
		"userMessage":      result.UserMessage,
		"assistantMessage": result.AssistantMessage,
	})
}

// GetConversations lists the caller's conversations, newest activity first.
func (h *ChatHandler) GetConversations(c *fiber.Ctx) error {
	userID, ok := auth.CallerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	convs, err := h.svc.ListConversations(userID)
	if err != nil {
		log.Println(err, "Error getting conversations")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get conversations",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"conversations": convs,
	})
}

// GetMessages returns the transcript of one owned conversation, oldest first.
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	userID, ok := auth.CallerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	conversationID, err := uuid.Parse(c.Params("conversationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid conversation ID",
		})
	}

	msgs, err := h.svc.ListMessages(userID, conversationID)
	if errors.Is(err, chat.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	if err != nil {
		log.Println(err, "Error getting messages")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get messages",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"messages": msgs,
	})
}
