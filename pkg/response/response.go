package response

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"ContactBook/pkg/errors"
)

// ErrorBody 统一的错误响应格式。
// 客户端只展示 message 一条可关闭的提示，fields 供表单内联提示用。
type ErrorBody struct {
	Fields  map[string]string `json:"fields,omitempty"`
	Message string            `json:"message"`
}

func errorToHTTPStatus(err error) int {
	var def errors.Definition
	if !stderrors.As(err, &def) {
		return http.StatusInternalServerError
	}

	// 根据错误码映射 HTTP 状态码
	switch def.Code {
	case errors.ValidationFailed.Code:
		return http.StatusBadRequest // 400
	case errors.ContactNotFound.Code:
		return http.StatusNotFound // 404
	case errors.EmailConflict.Code:
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}

// Error 返回错误响应。
// 非业务错误（基础设施故障、未预期失败）一律折叠成 500 + 通用提示，
// 不向客户端泄露内部细节。
func Error(ctx context.Context, c *app.RequestContext, err error) {
	statusCode := errorToHTTPStatus(err)

	message := "Internal server error"
	var def errors.Definition
	if stderrors.As(err, &def) {
		message = def.Message
	}

	var fields map[string]string
	var fieldErr errors.FieldErrors
	if stderrors.As(err, &fieldErr) {
		fields = fieldErr.Fields
	}

	c.JSON(statusCode, ErrorBody{
		Message: message,
		Fields:  fields,
	})
}

// BindError 请求体无法解析时的 400 响应
func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Message: "Invalid request body",
	})
}

// Success 成功响应直接返回裸 JSON，与前端约定的数组/记录格式一致
func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功返回 201 + 记录本身
func Created(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 返回 204 No Content（用于 DELETE 等操作）
func NoContent(ctx context.Context, c *app.RequestContext) {
	c.Status(http.StatusNoContent)
}
