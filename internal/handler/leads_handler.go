package handler

import (
	"bytes"
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/oreana/assistant-server/internal/assistant/leads"
	"github.com/oreana/assistant-server/internal/assistant/model"
	logx "github.com/oreana/assistant-server/pkg/logger"
)

// LeadsHandler exposes the captured-lead collection: listing, CSV export and
// the administrative bulk clear.
type LeadsHandler struct {
	repo model.LeadRepository
}

func NewLeadsHandler(repo model.LeadRepository) *LeadsHandler {
	return &LeadsHandler{repo: repo}
}

// List handles GET /leads.
func (h *LeadsHandler) List(ctx context.Context, c *app.RequestContext) {
	records, err := h.repo.LoadAll(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("failed to load leads")
		ErrorResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{
		"leads": records,
		"count": len(records),
	})
}

// Export handles GET /leads/export, dumping the collection as CSV with the
// fixed columns name, email, phone.
func (h *LeadsHandler) Export(ctx context.Context, c *app.RequestContext) {
	records, err := h.repo.LoadAll(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("failed to load leads for export")
		ErrorResponse(c, err)
		return
	}

	var buf bytes.Buffer
	if err := leads.WriteCSV(&buf, records); err != nil {
		logx.Error().Err(err).Msg("failed to serialize leads csv")
		ErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)
	c.Data(consts.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Clear handles DELETE /leads.
func (h *LeadsHandler) Clear(ctx context.Context, c *app.RequestContext) {
	if err := h.repo.ClearAll(ctx); err != nil {
		logx.Error().Err(err).Msg("failed to clear leads")
		ErrorResponse(c, err)
		return
	}
	c.Status(consts.StatusNoContent)
}
