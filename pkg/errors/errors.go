package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 联系人模块错误，四类结果中除 Ok 以外的部分。
// 预期内的控制流一律走错误值，不走 panic。
var (
	ValidationFailed = Definition{Code: "VALIDATION_FAILED", Message: "name, email, and phone are required"}
	EmailConflict    = Definition{Code: "EMAIL_CONFLICT", Message: "A contact with that email already exists"}
	ContactNotFound  = Definition{Code: "CONTACT_NOT_FOUND", Message: "Contact not found"}
	StoreUnavailable = Definition{Code: "STORE_UNAVAILABLE", Message: "Internal server error"}
)

// FieldErrors 在校验错误上附带逐字段消息，供响应层展示
type FieldErrors struct {
	Definition
	Fields map[string]string
}

func (e FieldErrors) Unwrap() error {
	return e.Definition
}

// WithFields 给 Definition 附上逐字段消息
func WithFields(def Definition, fields map[string]string) error {
	return FieldErrors{Definition: def, Fields: fields}
}

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	ValidationFailed.Code: ValidationFailed,
	EmailConflict.Code:    EmailConflict,
	ContactNotFound.Code:  ContactNotFound,
	StoreUnavailable.Code: StoreUnavailable,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
