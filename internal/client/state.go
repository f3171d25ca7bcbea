package client

import (
	"sort"

	"ContactBook/internal/model"
)

// Snapshot UI 侧的联系人快照。
// 存储才是唯一事实来源，这份快照只是可丢弃的缓存，
// 每次 Load 整体替换。
type Snapshot struct {
	Contacts   []model.Contact
	Editing    *model.Contact // nil 表示新建模式
	Error      string
	Loading    bool
	Submitting bool
}

// Event 快照状态迁移事件
type Event interface {
	isEvent()
}

type (
	// LoadStarted 开始拉取快照
	LoadStarted struct{}
	// SnapshotLoaded 拉取成功，整体替换本地快照
	SnapshotLoaded struct{ Contacts []model.Contact }
	// LoadFailed 拉取失败，本地快照清空
	LoadFailed struct{ Message string }
	// SubmitStarted 提交期间表单禁用，不允许并发提交
	SubmitStarted struct{}
	// ContactCreated 创建成功，追加并按 name 重排
	ContactCreated struct{ Contact model.Contact }
	// ContactUpdated 更新成功，原位替换
	ContactUpdated struct{ Contact model.Contact }
	// SubmitFailed 提交失败，快照不变，展示错误消息
	SubmitFailed struct{ Message string }
	// ContactDeleted 删除成功，从快照移除
	ContactDeleted struct{ ID int64 }
	// DeleteFailed 删除失败
	DeleteFailed struct{ Message string }
	// EditSelected 选中一条记录进入编辑模式
	EditSelected struct{ Contact model.Contact }
	// EditCancelled 退出编辑模式
	EditCancelled struct{}
)

func (LoadStarted) isEvent()    {}
func (SnapshotLoaded) isEvent() {}
func (LoadFailed) isEvent()     {}
func (SubmitStarted) isEvent()  {}
func (ContactCreated) isEvent() {}
func (ContactUpdated) isEvent() {}
func (SubmitFailed) isEvent()   {}
func (ContactDeleted) isEvent() {}
func (DeleteFailed) isEvent()   {}
func (EditSelected) isEvent()   {}
func (EditCancelled) isEvent()  {}

// Apply 显式状态迁移函数：(当前快照, 事件) -> 新快照。
// 纯函数，不绑定任何渲染机制；切片在变更时整体重建，
// 旧快照不被原地修改。
func Apply(s Snapshot, e Event) Snapshot {
	switch ev := e.(type) {
	case LoadStarted:
		s.Loading = true
		s.Error = ""

	case SnapshotLoaded:
		s.Loading = false
		s.Contacts = ev.Contacts

	case LoadFailed:
		s.Loading = false
		s.Contacts = nil
		s.Error = ev.Message

	case SubmitStarted:
		s.Submitting = true
		s.Error = ""

	case ContactCreated:
		s.Submitting = false
		next := make([]model.Contact, 0, len(s.Contacts)+1)
		next = append(next, s.Contacts...)
		next = append(next, ev.Contact)
		sortByName(next)
		s.Contacts = next
		s.Editing = nil

	case ContactUpdated:
		s.Submitting = false
		next := make([]model.Contact, len(s.Contacts))
		for i, contact := range s.Contacts {
			if contact.ID == ev.Contact.ID {
				next[i] = ev.Contact
			} else {
				next[i] = contact
			}
		}
		s.Contacts = next
		s.Editing = nil

	case SubmitFailed:
		s.Submitting = false
		s.Error = ev.Message

	case ContactDeleted:
		next := make([]model.Contact, 0, len(s.Contacts))
		for _, contact := range s.Contacts {
			if contact.ID != ev.ID {
				next = append(next, contact)
			}
		}
		s.Contacts = next
		if s.Editing != nil && s.Editing.ID == ev.ID {
			s.Editing = nil
		}

	case DeleteFailed:
		s.Error = ev.Message

	case EditSelected:
		selected := ev.Contact
		s.Editing = &selected

	case EditCancelled:
		s.Editing = nil
	}

	return s
}

// 简单字节序，与服务端 ORDER BY name ASC 一致
func sortByName(contacts []model.Contact) {
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].Name < contacts[j].Name
	})
}
