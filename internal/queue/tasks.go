package queue

import (
	"encoding/json"

	"github.com/trymyday-shop/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusEmail 订单状态邮件通知任务
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskWalletCreditEmail 钱包入账邮件通知任务
	TaskWalletCreditEmail = constants.TaskWalletCreditEmail
)

// OrderStatusEmailPayload 订单状态邮件任务载荷
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// WalletCreditEmailPayload 钱包入账邮件任务载荷
type WalletCreditEmailPayload struct {
	UserID        uint   `json:"user_id"`
	TransactionID uint   `json:"transaction_id"`
	Amount        string `json:"amount"`
}

// NewOrderStatusEmailTask 创建订单状态邮件任务
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewWalletCreditEmailTask 创建钱包入账邮件任务
func NewWalletCreditEmailTask(payload WalletCreditEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWalletCreditEmail, body), nil
}
