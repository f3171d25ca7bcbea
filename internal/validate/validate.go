package validate

import (
	"regexp"
	"strings"
)

// 非空白非 @ 字符 + "@" + 非空白非 @ 字符 + "." + 非空白非 @ 字符。
// 不做完整 RFC 校验，和表单提示的口径保持一致。
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Fields 每个字段的校验结果，空串表示通过
type Fields struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// OK 三个字段都通过才可提交
func (f Fields) OK() bool {
	return f.Name == "" && f.Email == "" && f.Phone == ""
}

// Map 转成 field -> message 映射，用于错误响应
func (f Fields) Map() map[string]string {
	m := make(map[string]string, 3)
	if f.Name != "" {
		m["name"] = f.Name
	}
	if f.Email != "" {
		m["email"] = f.Email
	}
	if f.Phone != "" {
		m["phone"] = f.Phone
	}
	return m
}

// Check 校验候选记录。
// 三个字段独立判断，互不短路；客户端提交前和服务端持久化前
// 跑的是同一份规则。
func Check(name, email, phone string) Fields {
	var f Fields

	if strings.TrimSpace(name) == "" {
		f.Name = "Name is required"
	}

	trimmedEmail := strings.TrimSpace(email)
	if trimmedEmail == "" {
		f.Email = "Email is required"
	} else if !emailPattern.MatchString(trimmedEmail) {
		f.Email = "Enter a valid email"
	}

	if strings.TrimSpace(phone) == "" {
		f.Phone = "Phone is required"
	}

	return f
}
