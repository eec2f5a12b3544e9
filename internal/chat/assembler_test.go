package chat

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	llmHandlers "estatedesk-backend/internal/llm_handlers"
	"estatedesk-backend/internal/models"

	"github.com/google/uuid"
)

type fakeChatRepo struct {
	conversations map[uuid.UUID]models.Conversation
	messages      []models.Message
	now           time.Time
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		conversations: map[uuid.UUID]models.Conversation{},
		now:           time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *fakeChatRepo) tick() time.Time {
	r.now = r.now.Add(time.Second)
	return r.now
}

func (r *fakeChatRepo) CreateConversation(conv *models.Conversation) error {
	conv.UUID = uuid.New()
	conv.CreatedAt = r.tick()
	conv.UpdatedAt = conv.CreatedAt
	r.conversations[conv.UUID] = *conv
	return nil
}

func (r *fakeChatRepo) GetConversationByID(id uuid.UUID) (*models.Conversation, error) {
	conv, ok := r.conversations[id]
	if !ok {
		return nil, nil
	}
	return &conv, nil
}

func (r *fakeChatRepo) GetConversationsByUser(userID uuid.UUID) ([]models.Conversation, error) {
	var convs []models.Conversation
	for _, conv := range r.conversations {
		if conv.UserUUID == userID {
			convs = append(convs, conv)
		}
	}
	sort.Slice(convs, func(i, j int) bool {
		return convs[i].UpdatedAt.After(convs[j].UpdatedAt)
	})
	return convs, nil
}

func (r *fakeChatRepo) CreateMessage(msg *models.Message) error {
	msg.UUID = uuid.New()
	msg.CreatedAt = r.tick()
	r.messages = append(r.messages, *msg)
	if conv, ok := r.conversations[msg.ConversationUUID]; ok {
		conv.UpdatedAt = msg.CreatedAt
		r.conversations[msg.ConversationUUID] = conv
	}
	return nil
}

func (r *fakeChatRepo) GetLatestMessages(conversationID uuid.UUID, limit int) ([]models.Message, error) {
	msgs, _ := r.GetMessages(conversationID)
	// newest first
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func (r *fakeChatRepo) GetMessages(conversationID uuid.UUID) ([]models.Message, error) {
	var msgs []models.Message
	for _, m := range r.messages {
		if m.ConversationUUID == conversationID {
			msgs = append(msgs, m)
		}
	}
	sort.Slice(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

func (r *fakeChatRepo) messagesFor(conversationID uuid.UUID) []models.Message {
	msgs, _ := r.GetMessages(conversationID)
	return msgs
}

type fakeDocumentRepo struct {
	docs map[uuid.UUID][]models.Document
}

func (r *fakeDocumentRepo) CreateDocument(doc *models.Document) error {
	if r.docs == nil {
		r.docs = map[uuid.UUID][]models.Document{}
	}
	r.docs[doc.ProjectUUID] = append(r.docs[doc.ProjectUUID], *doc)
	return nil
}

func (r *fakeDocumentRepo) GetDocumentsByProject(projectID uuid.UUID) ([]models.Document, error) {
	return r.docs[projectID], nil
}

type fakeLLM struct {
	lastRequest *llmHandlers.Request
	reply       string
	err         error
}

func (f *fakeLLM) Generate(_ context.Context, req llmHandlers.Request) (string, error) {
	f.lastRequest = &req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func strptr(s string) *string { return &s }

func setup() (*fakeChatRepo, *fakeDocumentRepo, *fakeLLM, Service) {
	chats := newFakeChatRepo()
	docs := &fakeDocumentRepo{}
	llm := &fakeLLM{reply: "assistant reply"}
	return chats, docs, llm, NewAssembler(chats, docs, llm)
}

func TestSendMessage_CreatesConversationWithTitle(t *testing.T) {
	caller := uuid.New()
	long := strings.Repeat("a", 60)

	tests := []struct {
		name      string
		content   string
		wantTitle string
	}{
		{"long content truncated", long, strings.Repeat("a", 50) + "..."},
		{"short content keeps ellipsis", "hi", "hi..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chats, _, _, svc := setup()

			result, err := svc.SendMessage(context.Background(), caller, tt.content, nil, nil)
			if err != nil {
				t.Fatalf("SendMessage: %v", err)
			}
			if !result.Created {
				t.Error("expected a freshly created conversation")
			}
			if result.Conversation.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", result.Conversation.Title, tt.wantTitle)
			}
			if result.Conversation.UserUUID != caller {
				t.Errorf("conversation owner = %v, want %v", result.Conversation.UserUUID, caller)
			}

			msgs := chats.messagesFor(result.Conversation.UUID)
			if len(msgs) != 2 {
				t.Fatalf("expected 2 stored messages, got %d", len(msgs))
			}
			if msgs[0].Role != models.RoleUser || msgs[1].Role != models.RoleAssistant {
				t.Errorf("stored roles = %s, %s; want user, assistant", msgs[0].Role, msgs[1].Role)
			}
		})
	}
}

func TestSendMessage_RejectsEmptyContent(t *testing.T) {
	_, _, _, svc := setup()

	_, err := svc.SendMessage(context.Background(), uuid.New(), "", nil, nil)
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}
}

func TestSendMessage_UnknownAndForeignConversationsLookTheSame(t *testing.T) {
	chats, _, _, svc := setup()
	caller := uuid.New()

	foreign := &models.Conversation{UserUUID: uuid.New(), Title: "theirs..."}
	if err := chats.CreateConversation(foreign); err != nil {
		t.Fatal(err)
	}
	missing := uuid.New()

	for name, id := range map[string]uuid.UUID{"missing": missing, "foreign": foreign.UUID} {
		t.Run(name, func(t *testing.T) {
			convID := id
			_, err := svc.SendMessage(context.Background(), caller, "hello", &convID, nil)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestSendMessage_ReusesStoredProject(t *testing.T) {
	chats, docs, llm, svc := setup()
	caller := uuid.New()
	projectID := uuid.New()

	docs.CreateDocument(&models.Document{
		ProjectUUID:   projectID,
		Type:          models.DocumentTypeLegal,
		GeminiFileURI: strptr("files/abc"),
	})

	conv := &models.Conversation{UserUUID: caller, ProjectUUID: &projectID, Title: "thread..."}
	if err := chats.CreateConversation(conv); err != nil {
		t.Fatal(err)
	}

	convID := conv.UUID
	_, err := svc.SendMessage(context.Background(), caller, "what is the price?", &convID, nil)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	req := llm.lastRequest
	if req.SystemInstruction == "" {
		t.Error("expected a system instruction from the stored project's documents")
	}
	final := req.Turns[len(req.Turns)-1]
	if len(final.Parts) != 2 {
		t.Fatalf("final turn parts = %d, want file reference + text", len(final.Parts))
	}
	if final.Parts[0].FileURI != "files/abc" || final.Parts[0].MIMEType != "application/pdf" {
		t.Errorf("file part = %+v, want files/abc as application/pdf", final.Parts[0])
	}
	if final.Parts[1].Text != "what is the price?" {
		t.Errorf("text part = %q", final.Parts[1].Text)
	}
}

func TestSendMessage_ExplicitProjectNotOverridden(t *testing.T) {
	chats, docs, llm, svc := setup()
	caller := uuid.New()
	storedProject := uuid.New()
	explicitProject := uuid.New()

	docs.CreateDocument(&models.Document{
		ProjectUUID:   storedProject,
		GeminiFileURI: strptr("files/stored"),
	})
	docs.CreateDocument(&models.Document{
		ProjectUUID:   explicitProject,
		GeminiFileURI: strptr("files/explicit"),
	})

	conv := &models.Conversation{UserUUID: caller, ProjectUUID: &storedProject, Title: "thread..."}
	if err := chats.CreateConversation(conv); err != nil {
		t.Fatal(err)
	}

	convID := conv.UUID
	_, err := svc.SendMessage(context.Background(), caller, "hello", &convID, &explicitProject)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	final := llm.lastRequest.Turns[len(llm.lastRequest.Turns)-1]
	if final.Parts[0].FileURI != "files/explicit" {
		t.Errorf("file part came from %q, want the explicitly supplied project", final.Parts[0].FileURI)
	}
}

func TestSendMessage_ProviderFailureKeepsUserMessage(t *testing.T) {
	chats, _, llm, svc := setup()
	llm.err = errors.New("quota exceeded")
	caller := uuid.New()

	_, err := svc.SendMessage(context.Background(), caller, "hello", nil, nil)
	if !errors.Is(err, ErrCompletionFailed) {
		t.Fatalf("err = %v, want ErrCompletionFailed", err)
	}

	if len(chats.messages) != 1 {
		t.Fatalf("stored messages = %d, want just the user message", len(chats.messages))
	}
	if chats.messages[0].Role != models.RoleUser {
		t.Errorf("surviving message role = %s, want user", chats.messages[0].Role)
	}
}

func TestSendMessage_HistoryWindowBounded(t *testing.T) {
	chats, _, llm, svc := setup()
	caller := uuid.New()

	conv := &models.Conversation{UserUUID: caller, Title: "thread..."}
	if err := chats.CreateConversation(conv); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 30; i++ {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		chats.CreateMessage(&models.Message{ConversationUUID: conv.UUID, Role: role, Content: "older"})
	}

	convID := conv.UUID
	_, err := svc.SendMessage(context.Background(), caller, "newest", &convID, nil)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	// 19 history turns plus the rebuilt final turn
	if len(llm.lastRequest.Turns) != 20 {
		t.Fatalf("provider turns = %d, want 20", len(llm.lastRequest.Turns))
	}
	final := llm.lastRequest.Turns[19]
	if final.Role != llmHandlers.TurnRoleUser || final.Parts[len(final.Parts)-1].Text != "newest" {
		t.Errorf("final turn = %+v, want the fresh user content", final)
	}

	// everything stays retrievable even when out of context
	msgs, err := svc.ListMessages(caller, conv.UUID)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 32 {
		t.Errorf("stored messages = %d, want 32", len(msgs))
	}
}

func TestSendMessage_FirstMessageIsSingleTurn(t *testing.T) {
	_, _, llm, svc := setup()

	_, err := svc.SendMessage(context.Background(), uuid.New(), "hello there", nil, nil)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if len(llm.lastRequest.Turns) != 1 {
		t.Fatalf("provider turns = %d, want 1", len(llm.lastRequest.Turns))
	}
	turn := llm.lastRequest.Turns[0]
	if turn.Role != llmHandlers.TurnRoleUser || turn.Parts[0].Text != "hello there" {
		t.Errorf("turn = %+v, want single user turn with the fresh content", turn)
	}
	if llm.lastRequest.SystemInstruction != "" {
		t.Errorf("system instruction = %q, want none without a project", llm.lastRequest.SystemInstruction)
	}
}

func TestSendMessage_HistoryRolesMapped(t *testing.T) {
	chats, _, llm, svc := setup()
	caller := uuid.New()

	conv := &models.Conversation{UserUUID: caller, Title: "thread..."}
	if err := chats.CreateConversation(conv); err != nil {
		t.Fatal(err)
	}
	chats.CreateMessage(&models.Message{ConversationUUID: conv.UUID, Role: models.RoleUser, Content: "question"})
	chats.CreateMessage(&models.Message{ConversationUUID: conv.UUID, Role: models.RoleAssistant, Content: "answer"})

	convID := conv.UUID
	if _, err := svc.SendMessage(context.Background(), caller, "followup", &convID, nil); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	turns := llm.lastRequest.Turns
	if len(turns) != 3 {
		t.Fatalf("provider turns = %d, want 3", len(turns))
	}
	if turns[0].Role != llmHandlers.TurnRoleUser || turns[0].Parts[0].Text != "question" {
		t.Errorf("turn 0 = %+v", turns[0])
	}
	if turns[1].Role != llmHandlers.TurnRoleModel || turns[1].Parts[0].Text != "answer" {
		t.Errorf("turn 1 = %+v", turns[1])
	}
}

func TestSendMessage_DocumentsWithoutFileReference(t *testing.T) {
	t.Run("excluded from file parts", func(t *testing.T) {
		_, docs, llm, svc := setup()
		projectID := uuid.New()
		docs.CreateDocument(&models.Document{ProjectUUID: projectID, GeminiFileURI: strptr("files/ok")})
		docs.CreateDocument(&models.Document{ProjectUUID: projectID, GeminiFileURI: nil})

		_, err := svc.SendMessage(context.Background(), uuid.New(), "hello", nil, &projectID)
		if err != nil {
			t.Fatalf("SendMessage: %v", err)
		}

		final := llm.lastRequest.Turns[len(llm.lastRequest.Turns)-1]
		if len(final.Parts) != 2 {
			t.Fatalf("final parts = %d, want one file reference + text", len(final.Parts))
		}
		if final.Parts[0].FileURI != "files/ok" {
			t.Errorf("file part = %q", final.Parts[0].FileURI)
		}
	})

	t.Run("row count alone still enables the instruction", func(t *testing.T) {
		_, docs, llm, svc := setup()
		projectID := uuid.New()
		docs.CreateDocument(&models.Document{ProjectUUID: projectID, GeminiFileURI: nil})

		_, err := svc.SendMessage(context.Background(), uuid.New(), "hello", nil, &projectID)
		if err != nil {
			t.Fatalf("SendMessage: %v", err)
		}

		if llm.lastRequest.SystemInstruction == "" {
			t.Error("expected the extended system instruction even with no usable references")
		}
		final := llm.lastRequest.Turns[len(llm.lastRequest.Turns)-1]
		if len(final.Parts) != 1 {
			t.Errorf("final parts = %d, want text only", len(final.Parts))
		}
	})
}

func TestSendMessage_NonLegalDocumentsArePlainText(t *testing.T) {
	_, docs, llm, svc := setup()
	projectID := uuid.New()
	docs.CreateDocument(&models.Document{
		ProjectUUID:   projectID,
		Type:          models.DocumentTypeMarketing,
		GeminiFileURI: strptr("files/brochure"),
	})

	_, err := svc.SendMessage(context.Background(), uuid.New(), "hello", nil, &projectID)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	final := llm.lastRequest.Turns[len(llm.lastRequest.Turns)-1]
	if final.Parts[0].MIMEType != "text/plain" {
		t.Errorf("mime = %q, want text/plain", final.Parts[0].MIMEType)
	}
}

func TestListMessages_OwnershipAndOrder(t *testing.T) {
	chats, _, _, svc := setup()
	owner := uuid.New()

	conv := &models.Conversation{UserUUID: owner, Title: "thread..."}
	if err := chats.CreateConversation(conv); err != nil {
		t.Fatal(err)
	}
	chats.CreateMessage(&models.Message{ConversationUUID: conv.UUID, Role: models.RoleUser, Content: "first"})
	chats.CreateMessage(&models.Message{ConversationUUID: conv.UUID, Role: models.RoleAssistant, Content: "second"})

	if _, err := svc.ListMessages(uuid.New(), conv.UUID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign caller err = %v, want ErrNotFound", err)
	}

	msgs, err := svc.ListMessages(owner, conv.UUID)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Content != "first" || msgs[1].Content != "second" {
		t.Errorf("transcript = %+v, want oldest first", msgs)
	}
}

func TestListConversations_MostRecentFirst(t *testing.T) {
	chats, _, _, svc := setup()
	caller := uuid.New()

	older := &models.Conversation{UserUUID: caller, Title: "older..."}
	chats.CreateConversation(older)
	newer := &models.Conversation{UserUUID: caller, Title: "newer..."}
	chats.CreateConversation(newer)
	chats.CreateConversation(&models.Conversation{UserUUID: uuid.New(), Title: "foreign..."})

	// activity on the older thread bumps it to the front
	chats.CreateMessage(&models.Message{ConversationUUID: older.UUID, Role: models.RoleUser, Content: "bump"})

	convs, err := svc.ListConversations(caller)
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	if len(convs) != 2 {
		t.Fatalf("conversations = %d, want 2", len(convs))
	}
	if convs[0].UUID != older.UUID {
		t.Errorf("first conversation = %s, want the recently bumped one", convs[0].Title)
	}
}
