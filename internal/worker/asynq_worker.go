package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/trymyday-shop/internal/logger"
	"github.com/trymyday-shop/internal/provider"
	"github.com/trymyday-shop/internal/queue"
	"github.com/trymyday-shop/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskWalletCreditEmail, c.handleWalletCreditEmail)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail := strings.TrimSpace(order.Email)
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderNo:      order.OrderNo,
		Status:       status,
		Amount:       order.TotalAmount,
		Currency:     order.Currency,
		CustomerName: order.CustomerName,
	}
	if err := c.EmailService.SendOrderStatusEmail(receiverEmail, input); err != nil {
		if err == service.ErrEmailServiceDisabled || err == service.ErrEmailNotConfigured {
			logger.Debugw("worker_order_status_email_skip_disabled", "order_no", order.OrderNo)
			return nil
		}
		logger.Warnw("worker_order_status_email_send_failed", "order_no", order.OrderNo, "error", err)
		return err
	}
	logger.Infow("worker_order_status_email_sent", "order_no", order.OrderNo, "status", status)
	return nil
}

func (c *Consumer) handleWalletCreditEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.WalletCreditEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_wallet_credit_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID == 0 {
		return nil
	}
	user, err := c.UserRepo.GetByID(payload.UserID)
	if err != nil {
		logger.Warnw("worker_wallet_credit_email_fetch_user_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return nil
	}
	if c.EmailService == nil {
		return nil
	}
	if err := c.EmailService.SendWalletCreditEmail(user.Email, user.Name, payload.Amount); err != nil {
		if err == service.ErrEmailServiceDisabled || err == service.ErrEmailNotConfigured {
			return nil
		}
		logger.Warnw("worker_wallet_credit_email_send_failed", "user_id", user.ID, "error", err)
		return err
	}
	logger.Infow("worker_wallet_credit_email_sent", "user_id", user.ID)
	return nil
}
