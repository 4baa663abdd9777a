package respond

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	chatmodel "github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"github.com/oreana/assistant-server/internal/assistant/model"
	logx "github.com/oreana/assistant-server/pkg/logger"
)

// GeminiConfig holds what is needed to reach the Gemini API.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   model.ResponseModelConfig
}

// NewGeminiChatModel builds the generative chat model. Callers treat a
// returned error as "service unavailable" and run on fallback templates; it
// is never fatal.
func NewGeminiChatModel(ctx context.Context, cfg GeminiConfig) (chatmodel.BaseChatModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model.Model,
		Temperature: &cfg.Model.Temperature,
		MaxTokens:   &cfg.Model.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating response model")
		return nil, fmt.Errorf("error creating response model: %w", err)
	}

	return cm, nil
}
