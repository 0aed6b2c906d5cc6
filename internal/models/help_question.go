package models

import (
	"time"

	"gorm.io/gorm"
)

// HelpQuestion 帮助中心问答
type HelpQuestion struct {
	ID        uint           `gorm:"primarykey" json:"id"`                            // 主键
	Question  string         `gorm:"type:text;not null" json:"question"`              // 问题
	Answer    string         `gorm:"type:text;default:''" json:"answer"`              // 回答
	Status    string         `gorm:"not null;default:'pending';index" json:"status"`  // 状态（pending/approved/rejected）
	UserName  string         `gorm:"default:''" json:"user_name"`                     // 提问者
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                         // 提问时间
	UpdatedAt time.Time      `json:"updated_at"`                                      // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间
}

// TableName 指定表名
func (HelpQuestion) TableName() string {
	return "help_questions"
}
