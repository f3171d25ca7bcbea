package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"ContactBook/internal/model/dto"
	"ContactBook/internal/service"
	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/pkg/response"
)

// ContactHandler 显式持有 service 实例，不走包级单例
type ContactHandler struct {
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// ListContacts 列出全部联系人
// GET /api/contacts
func (h *ContactHandler) ListContacts(ctx context.Context, c *app.RequestContext) {
	contacts, err := h.svc.List(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, contacts)
}

// CreateContact 新增联系人
// POST /api/contacts
func (h *ContactHandler) CreateContact(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	contact, err := h.svc.Create(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, contact)
}

// UpdateContact 更新联系人，三个字段整体替换
// PUT /api/contacts/:id
func (h *ContactHandler) UpdateContact(ctx context.Context, c *app.RequestContext) {
	id, ok := parseID(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.ContactNotFound)
		return
	}

	var req dto.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	contact, err := h.svc.Update(ctx, id, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, contact)
}

// DeleteContact 删除联系人
// DELETE /api/contacts/:id
func (h *ContactHandler) DeleteContact(ctx context.Context, c *app.RequestContext) {
	id, ok := parseID(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.ContactNotFound)
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}

// parseID 非数字 id 不可能命中任何记录，按 404 处理
func parseID(c *app.RequestContext) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
