package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/oreana/assistant-server/internal/assistant/model"
	logx "github.com/oreana/assistant-server/pkg/logger"
)

// ChatService is the request pipeline boundary the handler depends on.
type ChatService interface {
	Handle(ctx context.Context, message string) model.ChatResponse
}

// ChatRequest is the inbound payload of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatHandler exposes the assistant pipeline over HTTP.
type ChatHandler struct {
	service ChatService
}

func NewChatHandler(service ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles POST /chat: one message in, one structured response out.
// Every request that reaches the pipeline succeeds; the only error path here
// is a malformed payload.
func (h *ChatHandler) Chat(ctx context.Context, c *app.RequestContext) {
	var req ChatRequest
	if err := c.BindJSON(&req); err != nil {
		logx.Warn().Err(err).Msg("failed to bind chat request")
		BadRequest(c)
		return
	}

	resp := h.service.Handle(ctx, req.Message)
	c.JSON(consts.StatusOK, resp)
}
