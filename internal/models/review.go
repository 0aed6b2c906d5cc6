package models

import (
	"time"

	"gorm.io/gorm"
)

// Review 商品评价
type Review struct {
	ID        uint           `gorm:"primarykey" json:"id"`               // 主键
	ProductID uint           `gorm:"index;not null" json:"product_id"`   // 商品ID
	UserID    uint           `gorm:"index;not null" json:"user_id"`      // 用户ID
	UserName  string         `gorm:"default:''" json:"user_name"`        // 用户昵称快照
	Rating    int            `gorm:"not null" json:"rating"`             // 评分（1-5）
	Comment   string         `gorm:"type:text;default:''" json:"comment"` // 评价内容
	CreatedAt time.Time      `gorm:"index" json:"created_at"`            // 评价时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                     // 软删除时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
