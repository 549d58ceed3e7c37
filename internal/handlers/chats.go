package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"docuchat/internal/chat"
	"docuchat/internal/contextutil"
	"docuchat/internal/storage"
)

// ChatsHandler handles the chat CRUD endpoints.
type ChatsHandler struct {
	chatService chat.Service
}

// NewChatsHandler creates a new ChatsHandler.
func NewChatsHandler(chatService chat.Service) *ChatsHandler {
	return &ChatsHandler{chatService: chatService}
}

// ChatSummary represents a chat in list responses.
type ChatSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageResponse represents a message in chat detail responses.
type MessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatDetail represents a chat with its messages.
type ChatDetail struct {
	ChatSummary
	Messages []MessageResponse `json:"messages"`
}

// RenameRequest represents the payload for renaming a chat.
type RenameRequest struct {
	Title string `json:"title"`
}

func toSummary(c storage.ChatRecord) ChatSummary {
	return ChatSummary{ID: c.ID, Title: c.Title, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// List handles GET /api/chats.
func (h *ChatsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	chats, err := h.chatService.ListChats(ctx, userID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list chats")
		return
	}

	summaries := make([]ChatSummary, 0, len(chats))
	for _, c := range chats {
		summaries = append(summaries, toSummary(c))
	}

	writeJSON(w, http.StatusOK, summaries)
}

// Get handles GET /api/chats/{id}.
func (h *ChatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	found, err := h.chatService.GetChat(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load chat")
		return
	}

	detail := ChatDetail{
		ChatSummary: toSummary(found.Chat),
		Messages:    make([]MessageResponse, 0, len(found.Messages)),
	}
	for _, m := range found.Messages {
		detail.Messages = append(detail.Messages, MessageResponse{
			ID: m.ID, Role: m.Role, Content: m.Content, CreatedAt: m.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, detail)
}

// Create handles POST /api/chats.
func (h *ChatsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	created, err := h.chatService.EnsureChat(ctx, userID, "")
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create chat")
		return
	}

	writeJSON(w, http.StatusCreated, toSummary(*created))
}

// Rename handles PATCH /api/chats/{id}.
func (h *ChatsHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.chatService.RenameChat(ctx, userID, chi.URLParam(r, "id"), req.Title); err != nil {
		handleServiceError(w, ctx, err, "Failed to rename chat")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/chats/{id}.
func (h *ChatsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.chatService.DeleteChat(ctx, userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete chat")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
