package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 运营支出（管理端财务）
type Expense struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                // 主键
	Description string         `gorm:"not null" json:"description"`                         // 支出描述
	Amount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // 金额
	Category    string         `gorm:"type:varchar(100);not null;index" json:"category"`    // 支出类别
	SpentAt     time.Time      `gorm:"index;not null" json:"spent_at"`                      // 支出日期
	CreatedAt   time.Time      `json:"created_at"`                                          // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                          // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (Expense) TableName() string {
	return "expenses"
}
