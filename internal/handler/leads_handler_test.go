package handler

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreana/assistant-server/internal/assistant/model"
)

type stubLeadRepo struct {
	records []model.EntityRecord
	cleared bool
}

func (s *stubLeadRepo) Append(_ context.Context, record model.EntityRecord) error {
	s.records = append(s.records, record)
	return nil
}

func (s *stubLeadRepo) LoadAll(_ context.Context) ([]model.EntityRecord, error) {
	return s.records, nil
}

func (s *stubLeadRepo) ClearAll(_ context.Context) error {
	s.cleared = true
	s.records = nil
	return nil
}

func newLeadsEngine(repo model.LeadRepository) *server.Hertz {
	h := server.Default()
	lh := NewLeadsHandler(repo)
	h.GET("/leads", lh.List)
	h.GET("/leads/export", lh.Export)
	h.DELETE("/leads", lh.Clear)
	return h
}

func TestLeadsHandlerList(t *testing.T) {
	repo := &stubLeadRepo{records: []model.EntityRecord{
		{Name: strPtr("Priya"), Email: strPtr("priya@x.com")},
	}}
	h := newLeadsEngine(repo)

	w := ut.PerformRequest(h.Engine, "GET", "/leads", nil)
	resp := w.Result()

	require.Equal(t, 200, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), `"count":1`)
	assert.Contains(t, string(resp.Body()), "priya@x.com")
}

func TestLeadsHandlerExport(t *testing.T) {
	repo := &stubLeadRepo{records: []model.EntityRecord{
		{Name: strPtr("Priya"), Phone: strPtr("9876543210")},
	}}
	h := newLeadsEngine(repo)

	w := ut.PerformRequest(h.Engine, "GET", "/leads/export", nil)
	resp := w.Result()

	require.Equal(t, 200, resp.StatusCode())
	assert.Contains(t, string(resp.Header.ContentType()), "text/csv")
	assert.Equal(t, "name,email,phone\nPriya,,9876543210\n", string(resp.Body()))
}

func TestLeadsHandlerClear(t *testing.T) {
	repo := &stubLeadRepo{records: []model.EntityRecord{{Name: strPtr("Priya")}}}
	h := newLeadsEngine(repo)

	w := ut.PerformRequest(h.Engine, "DELETE", "/leads", nil)
	resp := w.Result()

	assert.Equal(t, 204, resp.StatusCode())
	assert.True(t, repo.cleared)
	assert.Empty(t, repo.records)
}
