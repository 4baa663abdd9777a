package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	errx "github.com/oreana/assistant-server/internal/core/error"
	logx "github.com/oreana/assistant-server/pkg/logger"
)

// Recovery catches handler panics and converts them into a generic 500.
func Recovery() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				logx.Error().
					Str("request_id", GetRequestID(c)).
					Str("method", string(c.Method())).
					Str("path", string(c.Path())).
					Str("panic", fmt.Sprintf("%v", err)).
					Str("stack", string(debug.Stack())).
					Msg("panic recovered")

				c.JSON(consts.StatusInternalServerError, utils.H{
					"status":  "error",
					"message": errx.SystemErrorMessage,
				})
				c.Abort()
			}
		}()

		c.Next(ctx)
	}
}
