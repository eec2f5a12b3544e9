package chat

import (
	"context"
	"errors"
	"fmt"
	"log"

	llmHandlers "estatedesk-backend/internal/llm_handlers"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/repo"

	"github.com/google/uuid"
)

const (
	// historyWindow bounds how many stored messages are forwarded to the
	// completion provider. Older turns stay stored but drop out of context.
	historyWindow = 20

	titleRunes = 50

	systemPromptBase      = "You are a helpful real estate assistant."
	systemPromptDocuments = " Project documents are available to help answer questions about this project."
)

var (
	ErrEmptyContent     = errors.New("content must not be empty")
	ErrNotFound         = errors.New("conversation not found")
	ErrCompletionFailed = errors.New("failed to generate response")
)

// Service assembles conversation context and drives the completion provider.
type Service interface {
	SendMessage(ctx context.Context, userID uuid.UUID, content string, conversationID, projectID *uuid.UUID) (*SendResult, error)
	ListConversations(userID uuid.UUID) ([]models.Conversation, error)
	ListMessages(userID uuid.UUID, conversationID uuid.UUID) ([]models.Message, error)
}

type ResolutionKind string

const (
	ResolutionCreated ResolutionKind = "created"
	ResolutionReused  ResolutionKind = "reused"
)

// Resolution is the outcome of the create-or-reuse step. Downstream logic is
// uniform over both kinds.
type Resolution struct {
	Kind         ResolutionKind
	Conversation *models.Conversation
}

type SendResult struct {
	Conversation     *models.Conversation
	Created          bool
	UserMessage      *models.Message
	AssistantMessage *models.Message
}

type Assembler struct {
	chats     repo.ChatRepoInterface
	documents repo.DocumentRepoInterface
	llm       llmHandlers.Client
}

func NewAssembler(chats repo.ChatRepoInterface, documents repo.DocumentRepoInterface, llm llmHandlers.Client) Service {
	return &Assembler{
		chats:     chats,
		documents: documents,
		llm:       llm,
	}
}

// SendMessage persists the user's message, forwards a bounded history window
// plus project document references to the provider, and persists the reply.
// The user message is kept even when the provider call fails.
func (a *Assembler) SendMessage(ctx context.Context, userID uuid.UUID, content string, conversationID, projectID *uuid.UUID) (*SendResult, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	res, err := a.resolveConversation(userID, content, conversationID, projectID)
	if err != nil {
		return nil, err
	}
	conv := res.Conversation

	// Explicit project input wins; the stored value is only a fallback.
	effectiveProject := projectID
	if effectiveProject == nil {
		effectiveProject = conv.ProjectUUID
	}

	userMsg := &models.Message{
		ConversationUUID: conv.UUID,
		Role:             models.RoleUser,
		Content:          content,
	}
	if err := a.chats.CreateMessage(userMsg); err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}

	history, err := a.chats.GetLatestMessages(conv.UUID, historyWindow)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	reverseMessages(history)

	systemInstruction, fileParts, err := a.projectContext(effectiveProject)
	if err != nil {
		return nil, fmt.Errorf("fetch project documents: %w", err)
	}

	// The final history entry is the user message saved above; it is rebuilt
	// as the closing turn so document references ride along with it.
	if len(history) > 0 {
		history = history[:len(history)-1]
	}
	turns := buildTurns(history)
	finalParts := append(fileParts, llmHandlers.TextPart(content))
	turns = append(turns, llmHandlers.Turn{Role: llmHandlers.TurnRoleUser, Parts: finalParts})

	reply, err := a.llm.Generate(ctx, llmHandlers.Request{
		SystemInstruction: systemInstruction,
		Turns:             turns,
	})
	if err != nil {
		// Detail stays server-side; the caller gets a generic failure and the
		// user message above remains stored without a paired reply.
		log.Printf("completion provider error: %v", err)
		return nil, ErrCompletionFailed
	}

	assistantMsg := &models.Message{
		ConversationUUID: conv.UUID,
		Role:             models.RoleAssistant,
		Content:          reply,
	}
	if err := a.chats.CreateMessage(assistantMsg); err != nil {
		return nil, fmt.Errorf("save assistant message: %w", err)
	}

	return &SendResult{
		Conversation:     conv,
		Created:          res.Kind == ResolutionCreated,
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
	}, nil
}

// ListConversations returns the caller's conversations, most recently updated
// first.
func (a *Assembler) ListConversations(userID uuid.UUID) ([]models.Conversation, error) {
	return a.chats.GetConversationsByUser(userID)
}

// ListMessages returns the full transcript oldest-first after verifying
// ownership.
func (a *Assembler) ListMessages(userID uuid.UUID, conversationID uuid.UUID) ([]models.Message, error) {
	conv, err := a.chats.GetConversationByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil || conv.UserUUID != userID {
		return nil, ErrNotFound
	}
	return a.chats.GetMessages(conversationID)
}

// resolveConversation creates a conversation when no id was supplied, or
// fetches and ownership-checks the existing one. A missing conversation and a
// foreign conversation produce the same error.
func (a *Assembler) resolveConversation(userID uuid.UUID, content string, conversationID, projectID *uuid.UUID) (Resolution, error) {
	if conversationID == nil {
		conv := &models.Conversation{
			UserUUID:    userID,
			ProjectUUID: projectID,
			Title:       deriveTitle(content),
		}
		if err := a.chats.CreateConversation(conv); err != nil {
			return Resolution{}, fmt.Errorf("create conversation: %w", err)
		}
		return Resolution{Kind: ResolutionCreated, Conversation: conv}, nil
	}

	conv, err := a.chats.GetConversationByID(*conversationID)
	if err != nil {
		return Resolution{}, err
	}
	if conv == nil || conv.UserUUID != userID {
		return Resolution{}, ErrNotFound
	}
	return Resolution{Kind: ResolutionReused, Conversation: conv}, nil
}

// projectContext builds the system instruction and file-reference parts for
// the effective project. The instruction extension keys off the document row
// count, so it can be present even when no row carries a usable file URI.
func (a *Assembler) projectContext(projectID *uuid.UUID) (string, []llmHandlers.Part, error) {
	if projectID == nil {
		return "", nil, nil
	}

	docs, err := a.documents.GetDocumentsByProject(*projectID)
	if err != nil {
		return "", nil, err
	}
	if len(docs) == 0 {
		return "", nil, nil
	}

	var fileParts []llmHandlers.Part
	for _, doc := range docs {
		if doc.GeminiFileURI == nil {
			continue
		}
		fileParts = append(fileParts, llmHandlers.FilePart(*doc.GeminiFileURI, contentTypeFor(doc.Type)))
	}

	return systemPromptBase + systemPromptDocuments, fileParts, nil
}

func contentTypeFor(t models.DocumentType) string {
	if t == models.DocumentTypeLegal {
		return "application/pdf"
	}
	return "text/plain"
}

// deriveTitle truncates to the first 50 runes and always appends an ellipsis.
func deriveTitle(content string) string {
	r := []rune(content)
	if len(r) > titleRunes {
		r = r[:titleRunes]
	}
	return string(r) + "..."
}

func buildTurns(history []models.Message) []llmHandlers.Turn {
	turns := make([]llmHandlers.Turn, 0, len(history)+1)
	for _, m := range history {
		role := llmHandlers.TurnRoleModel
		if m.Role == models.RoleUser {
			role = llmHandlers.TurnRoleUser
		}
		turns = append(turns, llmHandlers.Turn{
			Role:  role,
			Parts: []llmHandlers.Part{llmHandlers.TextPart(m.Content)},
		})
	}
	return turns
}

func reverseMessages(msgs []models.Message) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
