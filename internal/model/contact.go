package model

// Contact 联系人记录。
// id 由服务端分配且不可变，三个字段持久化前都已裁剪且非空，
// email 全表唯一（按存储值区分大小写）。
type Contact struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"`
	Phone string `gorm:"type:varchar(64);not null" json:"phone"`
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contacts"
}
