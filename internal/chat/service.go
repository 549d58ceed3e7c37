package chat

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks docuchat/internal/chat LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_service.go -package=mocks -mock_names=Service=MockService docuchat/internal/chat Service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"docuchat/internal/contextutil"
	"docuchat/internal/docs"
	"docuchat/internal/llm"
	"docuchat/internal/storage"
	"docuchat/internal/tenant"
)

const maxTitleLength = 100

// LLMClient is an interface for interacting with an LLM API.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Chat sends a conversation to the LLM and returns the reply.
	Chat(ctx context.Context, messages []llm.Message) (string, error)
	// StreamChat sends a conversation to the LLM and streams the reply via callback.
	StreamChat(ctx context.Context, messages []llm.Message, callback func(chunk string) error) error
}

// Request represents a chat request in the domain layer. An empty ChatID
// means "start a new conversation".
type Request struct {
	ChatID  string
	UserID  string
	Message string
}

// Response represents a chat response in the domain layer.
type Response struct {
	ChatID string
	Reply  string
}

// ChatWithMessages is a chat together with its full message history.
type ChatWithMessages struct {
	Chat     storage.ChatRecord
	Messages []storage.MessageRecord
}

// Service provides documentation-grounded chat functionality.
type Service interface {
	// EnsureChat returns the user's chat with the given ID, or creates a new
	// chat in the current project when chatID is empty.
	EnsureChat(ctx context.Context, userID, chatID string) (*storage.ChatRecord, error)
	// ProcessChat answers a message grounded in the project's documents and
	// persists both sides of the exchange.
	ProcessChat(ctx context.Context, req Request) (Response, error)
	// StreamChat is ProcessChat with the reply streamed via callback.
	// Req.ChatID must name an existing chat (see EnsureChat).
	StreamChat(ctx context.Context, req Request, callback func(chunk string) error) error
	// ListChats returns the user's chats in the current project.
	ListChats(ctx context.Context, userID string) ([]storage.ChatRecord, error)
	// GetChat returns one chat with its messages.
	GetChat(ctx context.Context, userID, id string) (*ChatWithMessages, error)
	// RenameChat sets a chat's title.
	RenameChat(ctx context.Context, userID, id, title string) error
	// DeleteChat removes a chat and its messages.
	DeleteChat(ctx context.Context, userID, id string) error
}

// chatService implements Service.
type chatService struct {
	chats     storage.ChatStore
	messages  storage.MessageStore
	docs      docs.Service
	llmClient LLMClient
}

// NewService creates a new chat Service.
func NewService(chats storage.ChatStore, messages storage.MessageStore, docsService docs.Service, llmClient LLMClient) Service {
	return &chatService{
		chats:     chats,
		messages:  messages,
		docs:      docsService,
		llmClient: llmClient,
	}
}

func (s *chatService) project(ctx context.Context) (*storage.ProjectRecord, error) {
	p, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("no project in request context")
	}
	return p, nil
}

// EnsureChat returns the user's chat with the given ID, or creates a new chat
// in the current project when chatID is empty.
func (s *chatService) EnsureChat(ctx context.Context, userID, chatID string) (*storage.ChatRecord, error) {
	p, err := s.project(ctx)
	if err != nil {
		return nil, err
	}

	if chatID == "" {
		chat := &storage.ChatRecord{UserID: userID, ProjectID: p.ID}
		if err := s.chats.Create(ctx, chat); err != nil {
			return nil, WrapError(err, "failed to create chat")
		}
		return chat, nil
	}

	chat, err := s.chats.GetByID(ctx, chatID, p.ID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, WrapError(err, "failed to load chat")
	}
	return chat, nil
}

// buildConversation assembles the full message list for the LLM call: the
// grounded system prompt, the chat's history, then the new user message.
func (s *chatService) buildConversation(ctx context.Context, chatID, userMessage string) ([]llm.Message, int, error) {
	p, err := s.project(ctx)
	if err != nil {
		return nil, 0, err
	}

	sectionsPrompt, err := s.docs.SectionsPrompt(ctx)
	if err != nil {
		return nil, 0, WrapError(err, "failed to build sections prompt")
	}

	history, err := s.messages.ListByChat(ctx, chatID)
	if err != nil {
		return nil, 0, WrapError(err, "failed to load chat history")
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: composeSystem(p.Name, sectionsPrompt)})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: userMessage})

	return messages, len(history), nil
}

// finishExchange persists both sides of the exchange, bumps the chat, and
// titles it after the first exchange.
func (s *chatService) finishExchange(ctx context.Context, chat *storage.ChatRecord, userMessage, reply string, historyLen int) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.messages.Insert(ctx, &storage.MessageRecord{ChatID: chat.ID, Role: "user", Content: userMessage}); err != nil {
		return WrapError(err, "failed to persist user message")
	}
	if reply != "" {
		if err := s.messages.Insert(ctx, &storage.MessageRecord{ChatID: chat.ID, Role: "assistant", Content: reply}); err != nil {
			return WrapError(err, "failed to persist assistant message")
		}
	}
	if err := s.chats.Touch(ctx, chat.ID); err != nil {
		return WrapError(err, "failed to touch chat")
	}

	// Title generation is non-critical
	if historyLen == 0 {
		if err := s.generateTitle(ctx, chat, userMessage); err != nil {
			logger.WarnContext(ctx, "failed to generate chat title", "chat_id", chat.ID, "error", err)
		}
	}

	return nil
}

// generateTitle asks the LLM for a short title based on the opening message.
func (s *chatService) generateTitle(ctx context.Context, chat *storage.ChatRecord, firstMessage string) error {
	title, err := s.llmClient.Chat(ctx, []llm.Message{{Role: "user", Content: titlePrompt(firstMessage)}})
	if err != nil {
		return err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength]
	}

	return s.chats.UpdateTitle(ctx, chat.ID, chat.ProjectID, chat.UserID, title)
}

// ProcessChat answers a message grounded in the project's documents.
func (s *chatService) ProcessChat(ctx context.Context, req Request) (Response, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Message == "" {
		logger.WarnContext(ctx, "empty message in chat request")
		return Response{}, &ValidationError{Field: "message", Message: "cannot be empty"}
	}

	chat, err := s.EnsureChat(ctx, req.UserID, req.ChatID)
	if err != nil {
		return Response{}, err
	}

	messages, historyLen, err := s.buildConversation(ctx, chat.ID, req.Message)
	if err != nil {
		return Response{}, err
	}

	reply, err := s.llmClient.Chat(ctx, messages)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "error", err)
		return Response{}, WrapError(ErrExternalService, err.Error())
	}

	if err := s.finishExchange(ctx, chat, req.Message, reply, historyLen); err != nil {
		return Response{}, err
	}

	logger.InfoContext(ctx, "chat request processed", "chat_id", chat.ID,
		"message_length", len(req.Message), "reply_length", len(reply))
	return Response{ChatID: chat.ID, Reply: reply}, nil
}

// StreamChat answers a message with the reply streamed via callback.
func (s *chatService) StreamChat(ctx context.Context, req Request, callback func(chunk string) error) error {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Message == "" {
		logger.WarnContext(ctx, "empty message in streaming chat request")
		return &ValidationError{Field: "message", Message: "cannot be empty"}
	}
	if req.ChatID == "" {
		return &ValidationError{Field: "chatId", Message: "must be set for streaming (see EnsureChat)"}
	}

	chat, err := s.EnsureChat(ctx, req.UserID, req.ChatID)
	if err != nil {
		return err
	}

	messages, historyLen, err := s.buildConversation(ctx, chat.ID, req.Message)
	if err != nil {
		return err
	}

	var reply strings.Builder
	err = s.llmClient.StreamChat(ctx, messages, func(chunk string) error {
		reply.WriteString(chunk)
		return callback(chunk)
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to stream LLM response", "error", err)
		return WrapError(ErrExternalService, err.Error())
	}

	if err := s.finishExchange(ctx, chat, req.Message, reply.String(), historyLen); err != nil {
		return err
	}

	logger.InfoContext(ctx, "streaming chat request processed", "chat_id", chat.ID,
		"message_length", len(req.Message))
	return nil
}

// ListChats returns the user's chats in the current project.
func (s *chatService) ListChats(ctx context.Context, userID string) ([]storage.ChatRecord, error) {
	p, err := s.project(ctx)
	if err != nil {
		return nil, err
	}

	chats, err := s.chats.ListByProjectAndUser(ctx, p.ID, userID)
	if err != nil {
		return nil, WrapError(err, "failed to list chats")
	}
	return chats, nil
}

// GetChat returns one chat with its messages.
func (s *chatService) GetChat(ctx context.Context, userID, id string) (*ChatWithMessages, error) {
	p, err := s.project(ctx)
	if err != nil {
		return nil, err
	}

	chat, err := s.chats.GetByID(ctx, id, p.ID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, WrapError(err, "failed to load chat")
	}

	messages, err := s.messages.ListByChat(ctx, id)
	if err != nil {
		return nil, WrapError(err, "failed to load messages")
	}

	return &ChatWithMessages{Chat: *chat, Messages: messages}, nil
}

// RenameChat sets a chat's title.
func (s *chatService) RenameChat(ctx context.Context, userID, id, title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "cannot be empty"}
	}

	p, err := s.project(ctx)
	if err != nil {
		return err
	}

	err = s.chats.UpdateTitle(ctx, id, p.ID, userID, title)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DeleteChat removes a chat and its messages.
func (s *chatService) DeleteChat(ctx context.Context, userID, id string) error {
	p, err := s.project(ctx)
	if err != nil {
		return err
	}

	err = s.chats.Delete(ctx, id, p.ID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
