package handler

import (
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	errx "github.com/oreana/assistant-server/internal/core/error"
)

// ErrorBody is the JSON shape of every error reply.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse maps an error onto an HTTP reply. AppError carries its own
// status and safe message; anything else becomes a generic 500.
func ErrorResponse(c *app.RequestContext, err error) {
	var appErr *errx.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorBody{Status: "error", Message: appErr.Message})
		return
	}
	c.JSON(consts.StatusInternalServerError, ErrorBody{Status: "error", Message: errx.SystemErrorMessage})
}

// BadRequest replies with a 400 and the standard invalid-payload message.
func BadRequest(c *app.RequestContext) {
	c.JSON(consts.StatusBadRequest, ErrorBody{Status: "error", Message: errx.InvalidInputMessage})
}
