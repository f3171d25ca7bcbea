package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ContactBook/internal/model"
)

// 存储层哨兵错误，由 service 层翻译成业务错误
var (
	ErrNotFound       = errors.New("store: contact not found")
	ErrDuplicateEmail = errors.New("store: duplicate email")
)

// ContactStore 联系人表的持久化访问。
// 持有显式注入的 *gorm.DB 句柄，不依赖任何包级连接状态。
type ContactStore struct {
	db *gorm.DB
}

func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

// List 返回全部联系人，按 name 升序（简单字节序，不做 locale 排序）
func (s *ContactStore) List(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Create 写入新记录。
// 唯一约束冲突由数据库裁决（不做预查询），并发写入下天然无竞态。
func (s *ContactStore) Create(ctx context.Context, contact *model.Contact) error {
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Update 原子替换三个字段，id 不变；影响 0 行视为记录不存在。
// 新 email 与其他记录冲突同样由唯一约束报出。
func (s *ContactStore) Update(ctx context.Context, contact *model.Contact) error {
	result := s.db.WithContext(ctx).
		Model(&model.Contact{}).
		Where("id = ?", contact.ID).
		Updates(map[string]interface{}{
			"name":  contact.Name,
			"email": contact.Email,
			"phone": contact.Phone,
		})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 硬删除，无软删除墓碑
func (s *ContactStore) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
