package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	Category   string
	Search     string
	OnlyActive bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Email       string
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
	Status   string
}

// WalletTransactionListFilter 查询钱包流水的过滤条件
type WalletTransactionListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Type        string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ExpenseListFilter 查询支出列表的过滤条件
type ExpenseListFilter struct {
	Page     int
	PageSize int
	Category string
	From     *time.Time
	To       *time.Time
}

// HelpQuestionListFilter 查询帮助中心问题的过滤条件
type HelpQuestionListFilter struct {
	Page     int
	PageSize int
	Status   string
}
