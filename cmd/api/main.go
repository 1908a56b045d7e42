package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tribuna/internal/app"
	"tribuna/internal/handler"
	"tribuna/internal/session"
	"tribuna/internal/store"
	"tribuna/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx := context.Background()

	slots, err := openStore(ctx)
	if err != nil {
		log.Fatalf("error opening store: %v", err)
	}
	defer slots.Close()

	summary := llm.NewService(newLLMClient())

	controller := app.New(slots, summary)
	if err := controller.Initialize(ctx); err != nil {
		log.Fatalf("error initializing state: %v", err)
	}

	sessions := session.NewRegistry()
	h := handler.NewHandler(controller, sessions)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.Use(handler.Sessions(sessions))
	h.Register(r)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	if err := r.Run(addr); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// openStore picks the persistence backend from the environment: Redis when
// REDIS_URL is set, Postgres when DATABASE_URL is set, otherwise a local
// SQLite file.
func openStore(ctx context.Context) (store.SlotStore, error) {
	if url := os.Getenv("REDIS_URL"); url != "" {
		slog.Info("using redis store")
		return store.NewRedisStore(ctx, url)
	}

	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		slog.Info("using postgres store")
		return store.NewPostgresStore(ctx, connStr)
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "tribuna.db"
	}
	slog.Info("using sqlite store", "path", path)
	return store.NewSQLiteStore(ctx, "file:"+path+"?_journal=WAL")
}

// newLLMClient picks the text-generation backend by which API key is set.
// With no key at all the summary service degrades to its fallback strings.
func newLLMClient() llm.Client {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return llm.NewOpenAIClient(key)
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return llm.NewAnthropicClient(key)
	}
	slog.Warn("no LLM API key configured, generated text will use fallbacks")
	return nil
}
