package v1

import (
	"context"
	"log"
	"os"

	"estatedesk-backend/internal/chat"
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/handlers"
	llmHandlers "estatedesk-backend/internal/llm_handlers"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

// registerChat wires the conversation assembler behind the chat API.
func registerChat(r fiber.Router, protected fiber.Handler) {
	chatRepo := repo.NewChatRepository(config.DB)
	documentRepo := repo.NewDocumentRepository(config.DB)

	llmClient, err := llmHandlers.NewLLMClient(context.Background(), os.Getenv("LLM_PROVIDER"))
	if err != nil {
		log.Fatalf("failed to init llm client: %v", err)
	}

	assembler := chat.NewAssembler(chatRepo, documentRepo, llmClient)
	chatHandler := handlers.NewChatHandler(assembler)

	r.Post("/chat", protected, chatHandler.SendMessage)
	r.Get("/chat/conversations", protected, chatHandler.GetConversations)
	r.Get("/chat/:conversationId/messages", protected, chatHandler.GetMessages)
}
