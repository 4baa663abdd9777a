package assistant

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreana/assistant-server/internal/assistant/intent"
	"github.com/oreana/assistant-server/internal/assistant/leads"
	"github.com/oreana/assistant-server/internal/assistant/model"
	"github.com/oreana/assistant-server/internal/assistant/respond"
)

// newTestAssistant wires the full pipeline with a file store in a temp dir
// and no generative service, so every reply is deterministic.
func newTestAssistant(t *testing.T) (*Assistant, model.LeadRepository) {
	store := leads.NewFileStore(filepath.Join(t.TempDir(), "leads.json"))
	responder := respond.NewGenerator(nil, model.PromptConfig{InstituteName: "Oreana Educational Institute"})
	return New(intent.NewClassifier(), store, responder), store
}

func TestHandleLeadCapture(t *testing.T) {
	ctx := context.Background()
	bot, store := newTestAssistant(t)

	resp := bot.Handle(ctx, "My name is Priya, my email is priya@x.com")

	assert.Equal(t, model.IntentLeadCapture, resp.Intent)
	assert.Equal(t, model.StatusSuccess, resp.Status)
	require.NotNil(t, resp.Entities.Name)
	assert.Equal(t, "Priya", *resp.Entities.Name)
	require.NotNil(t, resp.Entities.Email)
	assert.Equal(t, "priya@x.com", *resp.Entities.Email)
	assert.Nil(t, resp.Entities.Phone)
	assert.Contains(t, resp.Response, "Priya")

	persisted, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, resp.Entities, persisted[0])
}

func TestHandleCourseInfoWithoutLLM(t *testing.T) {
	ctx := context.Background()
	bot, store := newTestAssistant(t)

	resp := bot.Handle(ctx, "What courses do you offer?")

	assert.Equal(t, model.IntentCourseInfo, resp.Intent)
	assert.Equal(t, model.StatusSuccess, resp.Status)
	assert.Contains(t, resp.Response, "We offer comprehensive courses")
	assert.False(t, resp.Entities.HasAny())

	persisted, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted, "non-lead messages are never persisted")
}

func TestHandleLeadWithoutEntitiesIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	bot, store := newTestAssistant(t)

	resp := bot.Handle(ctx, "I want to enroll")

	assert.Equal(t, model.IntentLeadCapture, resp.Intent)
	assert.False(t, resp.Entities.HasAny())

	persisted, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestHandleAppendsInArrivalOrder(t *testing.T) {
	ctx := context.Background()
	bot, store := newTestAssistant(t)

	bot.Handle(ctx, "My name is Alice Smith")
	bot.Handle(ctx, "My email is bob@example.com")

	persisted, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	assert.Equal(t, "Alice Smith", *persisted[0].Name)
	assert.Equal(t, "bob@example.com", *persisted[1].Email)
}
