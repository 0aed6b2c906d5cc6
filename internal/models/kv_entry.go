package models

import "time"

// KVEntry 会话键值存储表（cart_<id>/savedItems_<id>/favorites_<id> 等整值覆盖写入）
type KVEntry struct {
	Key       string    `gorm:"primarykey;type:varchar(200)" json:"key"` // 存储键
	Value     string    `gorm:"type:text;not null" json:"value"`         // JSON 值
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                 // 更新时间
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}
