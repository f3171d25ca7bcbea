package dto

// ========== Contact 相关 DTO ==========

// CreateContactRequest 创建联系人请求
type CreateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateContactRequest 更新联系人请求，三个字段整体替换
type UpdateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
