package client

import (
	"context"
	"strings"

	"ContactBook/internal/model"
	"ContactBook/internal/model/dto"
	"ContactBook/internal/validate"
)

// Session 把 Client 和 Snapshot 组合成一个用户会话。
// 同一会话内一次只有一个在途提交（提交期间表单禁用）。
type Session struct {
	api   *Client
	state Snapshot

	// Confirm 删除前的确认回调；未设置时删除一律不执行
	Confirm func(model.Contact) bool
}

func NewSession(api *Client) *Session {
	return &Session{api: api}
}

// State 当前快照
func (s *Session) State() Snapshot {
	return s.state
}

// Load 拉取全量快照并整体替换本地状态
func (s *Session) Load(ctx context.Context) {
	s.state = Apply(s.state, LoadStarted{})

	contacts, err := s.api.List(ctx)
	if err != nil {
		s.state = Apply(s.state, LoadFailed{Message: err.Error()})
		return
	}
	s.state = Apply(s.state, SnapshotLoaded{Contacts: contacts})
}

// Submit 创建或更新，取决于是否有编辑选择。
// 校验不通过时直接返回逐字段错误，不发请求；
// 提交成功后编辑选择被清除。
func (s *Session) Submit(ctx context.Context, name, email, phone string) validate.Fields {
	if fields := validate.Check(name, email, phone); !fields.OK() {
		return fields
	}

	if s.state.Submitting {
		return validate.Fields{}
	}

	s.state = Apply(s.state, SubmitStarted{})

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if s.state.Editing != nil {
		updated, err := s.api.Update(ctx, s.state.Editing.ID, dto.UpdateContactRequest{
			Name:  name,
			Email: email,
			Phone: phone,
		})
		if err != nil {
			s.state = Apply(s.state, SubmitFailed{Message: err.Error()})
			return validate.Fields{}
		}
		s.state = Apply(s.state, ContactUpdated{Contact: *updated})
		return validate.Fields{}
	}

	created, err := s.api.Create(ctx, dto.CreateContactRequest{
		Name:  name,
		Email: email,
		Phone: phone,
	})
	if err != nil {
		s.state = Apply(s.state, SubmitFailed{Message: err.Error()})
		return validate.Fields{}
	}
	s.state = Apply(s.state, ContactCreated{Contact: *created})
	return validate.Fields{}
}

// Delete 需要确认回调放行才会发请求
func (s *Session) Delete(ctx context.Context, contact model.Contact) {
	if s.Confirm == nil || !s.Confirm(contact) {
		return
	}

	if err := s.api.Delete(ctx, contact.ID); err != nil {
		s.state = Apply(s.state, DeleteFailed{Message: err.Error()})
		return
	}
	s.state = Apply(s.state, ContactDeleted{ID: contact.ID})
}

// SelectForEdit 进入编辑模式，表单回填该记录的当前字段值
func (s *Session) SelectForEdit(contact model.Contact) {
	s.state = Apply(s.state, EditSelected{Contact: contact})
}

// CancelEdit 退出编辑模式
func (s *Session) CancelEdit() {
	s.state = Apply(s.state, EditCancelled{})
}
