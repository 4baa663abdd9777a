package main

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/oreana/assistant-server/internal/assistant"
	"github.com/oreana/assistant-server/internal/assistant/intent"
	"github.com/oreana/assistant-server/internal/assistant/leads"
	"github.com/oreana/assistant-server/internal/assistant/model"
	"github.com/oreana/assistant-server/internal/assistant/respond"
	"github.com/oreana/assistant-server/internal/core"
	"github.com/oreana/assistant-server/internal/handler"
	"github.com/oreana/assistant-server/internal/router"
	logx "github.com/oreana/assistant-server/pkg/logger"
	pkgredis "github.com/oreana/assistant-server/pkg/redis"
)

// AppConfig defines all configurable parameters for the assistant server,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	// Infrastructure
	Server model.ServerConfig
	Redis  pkgredis.Config

	// LLM provider. An empty key is allowed: the server then runs entirely
	// on the deterministic fallback templates.
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Assistant configs
	Response model.ResponseModelConfig
	Prompt   model.PromptConfig
	Leads    model.LeadStoreConfig
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.EnvironmentFromOS()})

	repo, err := newLeadRepository(cfg)
	if err != nil {
		logx.Fatal().Err(err).Str("backend", cfg.Leads.Backend).Msg("failed to initialise lead store")
	}

	// Construction failure means "service unavailable", not a startup error:
	// the responder degrades to the fallback table.
	llm, err := respond.NewGeminiChatModel(ctx, respond.GeminiConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Response,
	})
	if err != nil {
		logx.Warn().Err(err).Msg("generative service unavailable, running on fallback responses")
		llm = nil
	}

	bot := assistant.New(
		intent.NewClassifier(),
		repo,
		respond.NewGenerator(llm, cfg.Prompt),
	)

	h := server.New(server.WithHostPorts(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)))
	router.Setup(h,
		handler.NewChatHandler(bot),
		handler.NewLeadsHandler(repo),
		handler.NewHealthHandler(),
	)

	logx.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("leads_backend", cfg.Leads.Backend).
		Bool("llm_available", llm != nil).
		Msg("assistant server starting")

	h.Spin()
}

// newLeadRepository picks the persistence backend. The file store is the
// default; Redis is opt-in via LEADS_BACKEND=redis.
func newLeadRepository(cfg AppConfig) (model.LeadRepository, error) {
	switch cfg.Leads.Backend {
	case "redis":
		rdb, err := cfg.Redis.New()
		if err != nil {
			return nil, err
		}
		return leads.NewRedisStore(rdb, cfg.Leads.Key), nil
	case "file", "":
		return leads.NewFileStore(cfg.Leads.Path), nil
	default:
		return nil, fmt.Errorf("unknown leads backend %q", cfg.Leads.Backend)
	}
}
