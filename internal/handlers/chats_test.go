package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"docuchat/internal/chat"
	"docuchat/internal/chat/mocks"
	"docuchat/internal/storage"
	"go.uber.org/mock/gomock"
)

// newChatsRequest builds a request with the user header and an optional chi
// URL parameter for the chat ID.
func newChatsRequest(method, target, userID, chatID string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	if chatID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", chatID)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func TestChatsHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists the user's chats", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		now := time.Now().UTC()
		mockService.EXPECT().
			ListChats(gomock.Any(), "user-1").
			Return([]storage.ChatRecord{
				{ID: "chat-2", Title: "Rollout questions", CreatedAt: now, UpdatedAt: now},
				{ID: "chat-1", Title: "New conversation", CreatedAt: now, UpdatedAt: now},
			}, nil)

		handler := NewChatsHandler(mockService)
		w := httptest.NewRecorder()
		handler.List(w, newChatsRequest(http.MethodGet, "/api/chats", "user-1", "", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("List() status = %v, want 200", w.Code)
		}

		var got []ChatSummary
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("List() invalid JSON: %v", err)
		}
		if len(got) != 2 || got[0].ID != "chat-2" {
			t.Errorf("List() = %+v, want service order kept", got)
		}
	})

	t.Run("empty list is a JSON array", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		mockService.EXPECT().ListChats(gomock.Any(), "user-1").Return(nil, nil)

		handler := NewChatsHandler(mockService)
		w := httptest.NewRecorder()
		handler.List(w, newChatsRequest(http.MethodGet, "/api/chats", "user-1", "", nil))

		if body := w.Body.String(); body != "[]\n" {
			t.Errorf("List() body = %q, want empty JSON array", body)
		}
	})

	t.Run("requires user header", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		handler := NewChatsHandler(mockService)
		w := httptest.NewRecorder()
		handler.List(w, newChatsRequest(http.MethodGet, "/api/chats", "", "", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("List() status = %v, want 401", w.Code)
		}
	})
}

func TestChatsHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns chat with messages", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		mockService.EXPECT().
			GetChat(gomock.Any(), "user-1", "chat-1").
			Return(&chat.ChatWithMessages{
				Chat: storage.ChatRecord{ID: "chat-1", Title: "Install talk"},
				Messages: []storage.MessageRecord{
					{ID: "m1", Role: "user", Content: "Hi"},
					{ID: "m2", Role: "assistant", Content: "Hello"},
				},
			}, nil)

		handler := NewChatsHandler(mockService)
		w := httptest.NewRecorder()
		handler.Get(w, newChatsRequest(http.MethodGet, "/api/chats/chat-1", "user-1", "chat-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Get() status = %v, want 200", w.Code)
		}

		var got ChatDetail
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("Get() invalid JSON: %v", err)
		}
		if got.ID != "chat-1" || len(got.Messages) != 2 || got.Messages[1].Role != "assistant" {
			t.Errorf("Get() = %+v", got)
		}
	})

	t.Run("unknown chat", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		mockService.EXPECT().
			GetChat(gomock.Any(), "user-1", "missing").
			Return(nil, chat.ErrNotFound)

		handler := NewChatsHandler(mockService)
		w := httptest.NewRecorder()
		handler.Get(w, newChatsRequest(http.MethodGet, "/api/chats/missing", "user-1", "missing", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("Get() status = %v, want 404", w.Code)
		}
	})
}

func TestChatsHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockService(ctrl)
	mockService.EXPECT().
		EnsureChat(gomock.Any(), "user-1", "").
		Return(&storage.ChatRecord{ID: "chat-1", Title: "New conversation"}, nil)

	handler := NewChatsHandler(mockService)
	w := httptest.NewRecorder()
	handler.Create(w, newChatsRequest(http.MethodPost, "/api/chats", "user-1", "", nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("Create() status = %v, want 201", w.Code)
	}

	var got ChatSummary
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("Create() invalid JSON: %v", err)
	}
	if got.ID != "chat-1" || got.Title != "New conversation" {
		t.Errorf("Create() = %+v", got)
	}
}

func TestChatsHandler_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("renames", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		mockService.EXPECT().
			RenameChat(gomock.Any(), "user-1", "chat-1", "Better title").
			Return(nil)

		handler := NewChatsHandler(mockService)
		body, _ := json.Marshal(RenameRequest{Title: "Better title"})
		w := httptest.NewRecorder()
		handler.Rename(w, newChatsRequest(http.MethodPatch, "/api/chats/chat-1", "user-1", "chat-1", body))

		if w.Code != http.StatusNoContent {
			t.Errorf("Rename() status = %v, want 204", w.Code)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		handler := NewChatsHandler(mockService)
		w := httptest.NewRecorder()
		handler.Rename(w, newChatsRequest(http.MethodPatch, "/api/chats/chat-1", "user-1", "chat-1", []byte("not json")))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Rename() status = %v, want 400", w.Code)
		}
	})

	t.Run("empty title fails validation", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		mockService.EXPECT().
			RenameChat(gomock.Any(), "user-1", "chat-1", "").
			Return(&chat.ValidationError{Field: "title", Message: "cannot be empty"})

		handler := NewChatsHandler(mockService)
		body, _ := json.Marshal(RenameRequest{})
		w := httptest.NewRecorder()
		handler.Rename(w, newChatsRequest(http.MethodPatch, "/api/chats/chat-1", "user-1", "chat-1", body))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Rename() status = %v, want 400", w.Code)
		}
	})
}

func TestChatsHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deletes", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		mockService.EXPECT().
			DeleteChat(gomock.Any(), "user-1", "chat-1").
			Return(nil)

		handler := NewChatsHandler(mockService)
		w := httptest.NewRecorder()
		handler.Delete(w, newChatsRequest(http.MethodDelete, "/api/chats/chat-1", "user-1", "chat-1", nil))

		if w.Code != http.StatusNoContent {
			t.Errorf("Delete() status = %v, want 204", w.Code)
		}
	})

	t.Run("unknown chat", func(t *testing.T) {
		mockService := mocks.NewMockService(ctrl)
		mockService.EXPECT().
			DeleteChat(gomock.Any(), "user-1", "missing").
			Return(chat.ErrNotFound)

		handler := NewChatsHandler(mockService)
		w := httptest.NewRecorder()
		handler.Delete(w, newChatsRequest(http.MethodDelete, "/api/chats/missing", "user-1", "missing", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("Delete() status = %v, want 404", w.Code)
		}
	})
}
