package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"docuchat/internal/chat"
	"docuchat/internal/config"
	"docuchat/internal/docs"
	"docuchat/internal/http"
	"docuchat/internal/llm"
	"docuchat/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	projectRepo := storage.NewProjectRepo(db)
	documentRepo := storage.NewDocumentRepo(db)
	chatRepo := storage.NewChatRepo(db)
	messageRepo := storage.NewMessageRepo(db)

	// Create LLM client (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)

	// Create services
	docsService := docs.NewService(documentRepo)
	chatService := chat.NewService(chatRepo, messageRepo, docsService, llmClient)
	slog.Info("Services initialized")

	// Create router with dependencies
	deps := &http.Deps{
		DB:             db,
		ChatService:    chatService,
		DocsService:    docsService,
		ProjectStore:   projectRepo,
		BaseDomain:     cfg.BaseDomain,
		DevProjectSlug: cfg.DevProjectSlug,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr, "base_domain", cfg.BaseDomain)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
