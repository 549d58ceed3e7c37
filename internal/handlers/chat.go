package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"docuchat/internal/chat"
	"docuchat/internal/contextutil"
)

// chatIDHeader reports the active chat's ID so the client can keep the
// conversation going after the first message created it.
const chatIDHeader = "X-Chat-Id"

// ChatHandler handles HTTP requests for chat.
type ChatHandler struct {
	chatService chat.Service
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService chat.Service) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message string `json:"message"`
	ChatID  string `json:"chatId,omitempty"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	Reply  string `json:"reply"`
	ChatID string `json:"chatId"`
}

// ServeHTTP handles HTTP requests for chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if r.URL.Query().Get("stream") == "true" {
		h.handleStreamingChat(w, r, userID, req)
		return
	}

	svcResp, err := h.chatService.ProcessChat(ctx, chat.Request{
		ChatID:  req.ChatID,
		UserID:  userID,
		Message: req.Message,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to process chat request")
		return
	}

	w.Header().Set(chatIDHeader, svcResp.ChatID)
	writeJSON(w, http.StatusOK, ChatResponse{Reply: svcResp.Reply, ChatID: svcResp.ChatID})
}

// handleStreamingChat handles streaming chat requests using Server-Sent Events.
func (h *ChatHandler) handleStreamingChat(w http.ResponseWriter, r *http.Request, userID string, req ChatRequest) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Validation error: validation error on field message: cannot be empty")
		return
	}

	// The chat row must exist before the stream starts so its ID can go out
	// in a response header.
	activeChat, err := h.chatService.EnsureChat(ctx, userID, req.ChatID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to open chat")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set(chatIDHeader, activeChat.ID)

	err = h.chatService.StreamChat(ctx, chat.Request{
		ChatID:  activeChat.ID,
		UserID:  userID,
		Message: req.Message,
	}, func(chunk string) error {
		// SSE format: "data: <chunk>\n\n"
		if _, err := fmt.Fprintf(w, "data: %s\n\n", chunk); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})

	if err != nil {
		logger.ErrorContext(ctx, "error streaming chat", "error", err)
		// Headers are already out; report the failure in-stream
		_, _ = fmt.Fprintf(w, "data: {\"error\":%q}\n\n", err.Error())
		flusher.Flush()
		return
	}

	_, _ = fmt.Fprintf(w, "data: [DONE]\n\n")
	flusher.Flush()
}
