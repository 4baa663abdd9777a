package respond

import (
	"context"
	"fmt"

	chatmodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/oreana/assistant-server/internal/assistant/model"
	logx "github.com/oreana/assistant-server/pkg/logger"
)

// Generator produces the reply text for a classified message. The chat model
// is optional: nil means the generative service never became available and
// every non-lead reply comes from the fallback table. Either way, a failure
// of the service is never surfaced to the caller.
type Generator struct {
	llm     chatmodel.BaseChatModel
	persona string
}

// NewGenerator wires the optional chat model and the institute persona.
func NewGenerator(llm chatmodel.BaseChatModel, prompt model.PromptConfig) *Generator {
	return &Generator{
		llm:     llm,
		persona: fmt.Sprintf(systemPersona, prompt.InstituteName),
	}
}

// Available reports whether the generative service was constructed.
func (g *Generator) Available() bool {
	return g.llm != nil
}

// Respond applies the decision order: lead greeting, then the generative
// service, then the per-intent fallback table.
func (g *Generator) Respond(ctx context.Context, intent model.Intent, entities model.EntityRecord, text string) string {
	if intent == model.IntentLeadCapture && entities.Name != nil {
		return leadGreeting(*entities.Name)
	}

	if g.llm != nil {
		messages := []*schema.Message{
			schema.SystemMessage(g.persona),
			schema.UserMessage("Question: " + text),
		}
		out, err := g.llm.Generate(ctx, messages)
		if err == nil && out != nil {
			return out.Content
		}
		logx.Warn().Err(err).Str("intent", intent.String()).Msg("generative call failed, using fallback response")
	}

	return fallbackFor(intent)
}
