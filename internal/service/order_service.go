package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/logger"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/queue"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/storefront"

	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	walletSvc   *WalletService
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, walletSvc *WalletService, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		walletSvc:   walletSvc,
		queueClient: queueClient,
	}
}

// CheckoutInput 下单输入
type CheckoutInput struct {
	CustomerName    string
	ShippingAddress string
	Phone           string
	PaymentMethod   string
}

// 订单状态机：每个状态允许流转到的下一批状态
var orderStatusTransitions = map[string][]string{
	constants.OrderStatusPending:   {constants.OrderStatusConfirmed, constants.OrderStatusCanceled},
	constants.OrderStatusConfirmed: {constants.OrderStatusPreparing, constants.OrderStatusCanceled},
	constants.OrderStatusPreparing: {constants.OrderStatusShipping, constants.OrderStatusCanceled},
	constants.OrderStatusShipping:  {constants.OrderStatusDelivered},
	constants.OrderStatusDelivered: {constants.OrderStatusRefunded},
	constants.OrderStatusCanceled:  {constants.OrderStatusRefunded},
}

func canTransition(from, to string) bool {
	for _, allowed := range orderStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CreateFromCart 从购物车快照创建订单
// 金额取自购物车定价引擎，按下单瞬间冻结
func (s *OrderService) CreateFromCart(user *models.User, cart *storefront.Cart, input CheckoutInput) (*models.Order, error) {
	if user == nil || user.ID == 0 {
		return nil, ErrUserNotFound
	}
	items := cart.Items()
	if len(items) == 0 {
		return nil, ErrOrderEmptyCart
	}

	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = constants.PaymentMethodDelivery
	}

	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		customerName = user.Name
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          user.ID,
		CustomerName:    customerName,
		Email:           user.Email,
		Status:          constants.OrderStatusPending,
		Currency:        constants.ShopCurrency,
		Subtotal:        cart.Subtotal(),
		ShippingCost:    cart.ShippingCost(),
		DiscountAmount:  cart.Discount(),
		TotalAmount:     cart.Total(),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		Phone:           strings.TrimSpace(input.Phone),
		PaymentMethod:   paymentMethod,
	}
	if applied := cart.AppliedCoupon(); applied != nil {
		order.CouponCode = applied.Code
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			SelectedColor:   item.SelectedColor,
			SelectedSize:    item.SelectedSize,
			SelectedStorage: item.SelectedStorage,
		})
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.orderRepo.WithTx(tx)
		if err := repo.Create(order); err != nil {
			return err
		}
		if paymentMethod == constants.PaymentMethodWallet {
			if err := s.walletSvc.PayOrder(tx, order); err != nil {
				return err
			}
		}
		return repo.AppendTimeline(&models.OrderTimeline{
			OrderID: order.ID,
			Status:  constants.OrderStatusPending,
			Note:    "Commande créée",
		})
	})
	if err != nil {
		return nil, err
	}

	cart.Clear()
	s.notifyStatusChange(order)
	return order, nil
}

// ListForUser 查询用户订单列表
func (s *OrderService) ListForUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetForUser 获取用户订单详情
func (s *OrderService) GetForUser(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CancelByUser 客户取消订单
// 仅 pending/confirmed 状态可取消；钱包支付的订单同时退款
func (s *OrderService) CancelByUser(userID, orderID uint) (*models.Order, error) {
	order, err := s.GetForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderStatusPending && order.Status != constants.OrderStatusConfirmed {
		return nil, ErrOrderNotCancelable
	}
	if err := s.transitionTo(order, constants.OrderStatusCanceled, "Annulée par le client", ""); err != nil {
		return nil, err
	}
	return order, nil
}

// ListAdmin 管理端查询订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// GetAdmin 管理端获取订单详情
func (s *OrderService) GetAdmin(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatusInput 管理端状态变更输入
type UpdateStatusInput struct {
	Status         string
	Note           string
	TrackingNumber string
	Admin          string
}

// UpdateStatus 管理端变更订单状态
func (s *OrderService) UpdateStatus(orderID uint, input UpdateStatusInput) (*models.Order, error) {
	order, err := s.GetAdmin(orderID)
	if err != nil {
		return nil, err
	}
	if input.TrackingNumber != "" {
		order.TrackingNumber = strings.TrimSpace(input.TrackingNumber)
	}
	if err := s.transitionTo(order, input.Status, input.Note, input.Admin); err != nil {
		return nil, err
	}
	return order, nil
}

// transitionTo 执行状态流转：校验状态机、落库、记历史、触发通知
func (s *OrderService) transitionTo(order *models.Order, status, note, admin string) error {
	if !canTransition(order.Status, status) {
		return ErrOrderStatusInvalid
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.orderRepo.WithTx(tx)
		order.Status = status
		switch status {
		case constants.OrderStatusCanceled:
			now := time.Now()
			order.CanceledAt = &now
			if order.PaymentMethod == constants.PaymentMethodWallet {
				txn, err := s.walletSvc.RefundOrder(tx, order, order.TotalAmount, "")
				if err != nil {
					return err
				}
				order.RefundedAmount = txn.Amount
			}
		case constants.OrderStatusRefunded:
			if order.PaymentMethod == constants.PaymentMethodWallet {
				txn, err := s.walletSvc.RefundOrder(tx, order, order.TotalAmount, note)
				if err != nil {
					return err
				}
				order.RefundedAmount = txn.Amount
			}
		}
		if err := repo.Update(order); err != nil {
			return err
		}
		return repo.AppendTimeline(&models.OrderTimeline{
			OrderID: order.ID,
			Status:  status,
			Note:    note,
			Admin:   admin,
		})
	})
	if err != nil {
		return err
	}

	s.notifyStatusChange(order)
	return nil
}

func (s *OrderService) notifyStatusChange(order *models.Order) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		Status:  order.Status,
	})
	if err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_no", order.OrderNo,
			"status", order.Status,
			"error", err,
		)
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("TMD%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(n.String())
	}
	return b.String()
}
