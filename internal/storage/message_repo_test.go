package storage

import (
	"context"
	"testing"
)

func TestMessageRepo_InsertAndList(t *testing.T) {
	db := newTestDB(t)
	project, err := NewProjectRepo(db).GetOrCreate(context.Background(), "tandem", "Tandem")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}

	chats := NewChatRepo(db)
	chat := &ChatRecord{UserID: "user-1", ProjectID: project.ID}
	if err := chats.Create(context.Background(), chat); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	repo := NewMessageRepo(db)
	exchange := []MessageRecord{
		{ChatID: chat.ID, Role: "user", Content: "How do I install?"},
		{ChatID: chat.ID, Role: "assistant", Content: "See [Install](/ref/getting-started/install)."},
	}
	for i := range exchange {
		if err := repo.Insert(context.Background(), &exchange[i]); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		if exchange[i].ID == "" {
			t.Error("Insert() should generate an ID")
		}
	}

	msgs, err := repo.ListByChat(context.Background(), chat.ID)
	if err != nil {
		t.Fatalf("ListByChat() error = %v", err)
	}

	if len(msgs) != 2 {
		t.Fatalf("ListByChat() returned %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[1].Role != "assistant" {
		t.Errorf("ListByChat() order = [%s, %s], want [user, assistant]", msgs[0].Role, msgs[1].Role)
	}

	n, err := repo.CountByChat(context.Background(), chat.ID)
	if err != nil {
		t.Fatalf("CountByChat() error = %v", err)
	}
	if n != 2 {
		t.Errorf("CountByChat() = %d, want 2", n)
	}
}

func TestMessageRepo_EmptyChat(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepo(db)

	msgs, err := repo.ListByChat(context.Background(), "no-such-chat")
	if err != nil {
		t.Fatalf("ListByChat() error = %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("ListByChat() returned %d messages, want 0", len(msgs))
	}

	n, err := repo.CountByChat(context.Background(), "no-such-chat")
	if err != nil {
		t.Fatalf("CountByChat() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CountByChat() = %d, want 0", n)
	}
}

func TestMessageRepo_CascadeDelete(t *testing.T) {
	db := newTestDB(t)
	project, err := NewProjectRepo(db).GetOrCreate(context.Background(), "tandem", "Tandem")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}

	chats := NewChatRepo(db)
	chat := &ChatRecord{UserID: "user-1", ProjectID: project.ID}
	if err := chats.Create(context.Background(), chat); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	repo := NewMessageRepo(db)
	msg := &MessageRecord{ChatID: chat.ID, Role: "user", Content: "hello"}
	if err := repo.Insert(context.Background(), msg); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := chats.Delete(context.Background(), chat.ID, project.ID, "user-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	n, err := repo.CountByChat(context.Background(), chat.ID)
	if err != nil {
		t.Fatalf("CountByChat() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CountByChat() after chat delete = %d, want 0 (cascade)", n)
	}
}
