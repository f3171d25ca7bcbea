package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"ContactBook/internal/model"
	"ContactBook/internal/model/dto"
	"ContactBook/internal/store"
	"ContactBook/internal/validate"
	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/pkg/logger"
	"ContactBook/pkg/snowflake"
)

// ContactService 联系人生命周期的四个操作。
// 除 Create 外都可以安全重试。
type ContactService struct {
	store *store.ContactStore
}

func NewContactService(st *store.ContactStore) *ContactService {
	return &ContactService{store: st}
}

// List 返回全部联系人，按 name 升序
func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	if contacts == nil {
		contacts = []model.Contact{}
	}
	return contacts, nil
}

// Create 创建联系人，id 由服务端分配。
// 客户端不可信，这里重新跑完整校验（含 email 格式），
// 校验不通过时不触达存储。
func (s *ContactService) Create(ctx context.Context, req dto.CreateContactRequest) (*model.Contact, error) {
	name, email, phone := trimAll(req.Name, req.Email, req.Phone)

	if fields := validate.Check(name, email, phone); !fields.OK() {
		return nil, pkgerrors.WithFields(pkgerrors.ValidationFailed, fields.Map())
	}

	id, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contact id: %w", err)
	}

	contact := &model.Contact{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
	}

	if err := s.store.Create(ctx, contact); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, pkgerrors.EmailConflict
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	logger.Logger.Info("Contact created",
		zap.Int64("contact_id", contact.ID),
	)
	return contact, nil
}

// Update 整体替换三个字段，id 保持不变。
// email 与另一条记录冲突返回 EmailConflict，id 不存在返回 ContactNotFound。
func (s *ContactService) Update(ctx context.Context, id int64, req dto.UpdateContactRequest) (*model.Contact, error) {
	name, email, phone := trimAll(req.Name, req.Email, req.Phone)

	if fields := validate.Check(name, email, phone); !fields.OK() {
		return nil, pkgerrors.WithFields(pkgerrors.ValidationFailed, fields.Map())
	}

	contact := &model.Contact{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
	}

	if err := s.store.Update(ctx, contact); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, pkgerrors.ContactNotFound
		case errors.Is(err, store.ErrDuplicateEmail):
			return nil, pkgerrors.EmailConflict
		default:
			return nil, fmt.Errorf("failed to update contact: %w", err)
		}
	}

	logger.Logger.Info("Contact updated",
		zap.Int64("contact_id", id),
	)
	return contact, nil
}

// Delete 硬删除联系人
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return pkgerrors.ContactNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	logger.Logger.Info("Contact deleted",
		zap.Int64("contact_id", id),
	)
	return nil
}

func trimAll(name, email, phone string) (string, string, string) {
	return strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone)
}
