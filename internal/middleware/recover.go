package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"ContactBook/config"
	"ContactBook/pkg/errors"
	"ContactBook/pkg/logger"
	"ContactBook/pkg/response"
)

// RecoverMiddleware 捕获 handler 链中的 panic，记录日志并返回 500。
// 错误不会让进程退出，表单请求失败后客户端可以继续操作。
func RecoverMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}) {
	logger.Logger.Error("Panic recovered",
		zap.Any("panic", err),
		zap.String("method", string(c.Method())),
		zap.String("path", string(c.Path())),
		zap.ByteString("stack", debug.Stack()),
	)

	// 生产环境只返回通用提示，开发环境带上 panic 内容
	def := errors.Definition{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: "Internal server error",
	}
	if !config.Cfg.IsProduction() {
		def.Message = fmt.Sprintf("Internal error: %v", err)
	}

	response.Error(ctx, c, def)
}
