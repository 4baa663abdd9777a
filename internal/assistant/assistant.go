// Package assistant implements the per-message request pipeline:
// classify intent, extract entities, persist leads, generate a reply.
package assistant

import (
	"context"

	"github.com/oreana/assistant-server/internal/assistant/entity"
	"github.com/oreana/assistant-server/internal/assistant/intent"
	"github.com/oreana/assistant-server/internal/assistant/model"
	"github.com/oreana/assistant-server/internal/assistant/respond"
	logx "github.com/oreana/assistant-server/pkg/logger"
)

// Assistant runs the fixed pipeline for each inbound message. It holds no
// per-request state: the classifier is immutable after construction and the
// lead repository owns its own persistence.
type Assistant struct {
	classifier *intent.Classifier
	leads      model.LeadRepository
	responder  *respond.Generator
}

func New(classifier *intent.Classifier, leads model.LeadRepository, responder *respond.Generator) *Assistant {
	return &Assistant{
		classifier: classifier,
		leads:      leads,
		responder:  responder,
	}
}

// Handle runs the four pipeline steps unconditionally and always returns a
// success response. A failed lead append is logged, not surfaced: there is no
// user-visible error path in the nominal design.
func (a *Assistant) Handle(ctx context.Context, message string) model.ChatResponse {
	label := a.classifier.Classify(message)
	entities := entity.Extract(message)

	if label == model.IntentLeadCapture && entities.HasAny() {
		if err := a.leads.Append(ctx, entities); err != nil {
			logx.Error().Err(err).Msg("failed to persist lead")
		}
	}

	response := a.responder.Respond(ctx, label, entities, message)

	return model.ChatResponse{
		Intent:   label,
		Entities: entities,
		Response: response,
		Status:   model.StatusSuccess,
	}
}
