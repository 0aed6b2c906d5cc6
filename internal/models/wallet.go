package models

import (
	"time"

	"gorm.io/gorm"
)

// WalletAccount 钱包账户
type WalletAccount struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                  // 主键
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`                   // 用户ID
	Balance   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"balance"`  // 余额
	Currency  string         `gorm:"type:varchar(10);not null;default:'XOF'" json:"currency"` // 币种
	CreatedAt time.Time      `json:"created_at"`                                            // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                            // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                        // 软删除时间
}

// TableName 指定表名
func (WalletAccount) TableName() string {
	return "wallet_accounts"
}

// WalletTransaction 钱包流水
type WalletTransaction struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                        // 主键
	UserID       uint      `gorm:"index;not null" json:"user_id"`                               // 用户ID
	Type         string    `gorm:"not null;index" json:"type"`                                  // 交易类型
	Direction    string    `gorm:"not null" json:"direction"`                                   // 方向（in/out）
	Amount       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`         // 金额
	BalanceAfter Money     `gorm:"type:decimal(20,2);not null;default:0" json:"balance_after"`  // 交易后余额
	Reference    string    `gorm:"uniqueIndex;not null" json:"reference"`                       // 幂等引用号
	Description  string    `gorm:"type:varchar(500);default:''" json:"description"`             // 描述
	OrderNo      string    `gorm:"index;default:''" json:"order_no"`                            // 关联订单编号
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                     // 交易时间
}

// TableName 指定表名
func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
