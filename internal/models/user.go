package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User 用户表（客户/经理/管理员共用一张表，按角色区分）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                        // 主键
	Name         string         `gorm:"default:''" json:"name"`                      // 姓名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`           // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                           // 密码哈希（不返回给前端）
	Role         string         `gorm:"not null;default:'client';index" json:"role"` // 角色（client/manager/admin）
	Status       string         `gorm:"not null;default:'active'" json:"status"`     // 账号状态
	Phone        string         `gorm:"type:varchar(40);default:''" json:"phone"`    // 电话
	Address      string         `gorm:"type:varchar(500);default:''" json:"address"` // 默认收货地址
	LastLoginAt  *time.Time     `json:"last_login_at"`                               // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                     // 创建时间（即注册日期）
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                     // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IdentityKey 返回身份命名空间键（小写邮箱）
func (u *User) IdentityKey() string {
	if u == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(u.Email))
}
