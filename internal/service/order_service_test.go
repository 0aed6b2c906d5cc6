package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/kvstore"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/storefront"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderService(t *testing.T) (*OrderService, *WalletService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderTimeline{},
		&models.WalletAccount{},
		&models.WalletTransaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	walletSvc := NewWalletService(repository.NewWalletRepository(db), repository.NewUserRepository(db), nil)
	orderSvc := NewOrderService(repository.NewOrderRepository(db), walletSvc, nil)
	return orderSvc, walletSvc, db
}

func createOrderUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Client",
		Email:        email,
		PasswordHash: "x",
		Role:         constants.UserRoleClient,
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func buildTestCart(identityKey string) *storefront.Cart {
	cart := storefront.NewCart(kvstore.NewMemoryStore(), models.NewMoneyFromInt(1000))
	cart.IdentityChanged(identityKey)
	return cart
}

func addTestItem(cart *storefront.Cart, id uint, price int64, quantity int) {
	item := storefront.NewLineItem(&models.Product{
		ID:       id,
		Name:     fmt.Sprintf("Produit %d", id),
		Price:    models.NewMoneyFromInt(price),
		Category: "test",
	})
	cart.AddItem(item)
	for q := 1; q < quantity; q++ {
		cart.AddItem(item)
	}
}

func TestCreateFromCartSnapshotsPricing(t *testing.T) {
	orderSvc, _, db := setupOrderService(t)
	user := createOrderUser(t, db, "awa@example.com")

	cart := buildTestCart(user.IdentityKey())
	addTestItem(cart, 1, 20000, 2)
	addTestItem(cart, 2, 5000, 1)
	if result := cart.ApplyCoupon("WELCOME10"); !result.OK {
		t.Fatalf("apply coupon failed: %s", result.Message)
	}

	order, err := orderSvc.CreateFromCart(user, cart, CheckoutInput{
		CustomerName:    "Awa Diop",
		ShippingAddress: "Dakar, Sénégal",
		Phone:           "+221770000000",
		PaymentMethod:   constants.PaymentMethodDelivery,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if !strings.HasPrefix(order.OrderNo, "TMD") {
		t.Fatalf("order no should start with TMD, got %s", order.OrderNo)
	}
	if !order.Subtotal.Decimal.Equal(decimal.NewFromInt(45000)) {
		t.Fatalf("subtotal want 45000 got %s", order.Subtotal)
	}
	if !order.ShippingCost.Decimal.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("shipping want 1000 got %s", order.ShippingCost)
	}
	if !order.DiscountAmount.Decimal.Equal(decimal.NewFromInt(4500)) {
		t.Fatalf("discount want 4500 got %s", order.DiscountAmount)
	}
	if !order.TotalAmount.Decimal.Equal(decimal.NewFromInt(41500)) {
		t.Fatalf("total want 41500 got %s", order.TotalAmount)
	}
	if order.CouponCode != "WELCOME10" {
		t.Fatalf("coupon code want WELCOME10 got %s", order.CouponCode)
	}
	if len(order.Items) != 2 {
		t.Fatalf("order items want 2 got %d", len(order.Items))
	}

	// 下单成功后购物车应被清空
	if cart.Count() != 0 {
		t.Fatalf("cart should be empty after checkout, got %d items", cart.Count())
	}

	stored, err := orderSvc.GetForUser(user.ID, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if len(stored.Timeline) != 1 || stored.Timeline[0].Status != constants.OrderStatusPending {
		t.Fatalf("expected pending timeline entry, got %+v", stored.Timeline)
	}
}

func TestCreateFromCartEmptyCart(t *testing.T) {
	orderSvc, _, db := setupOrderService(t)
	user := createOrderUser(t, db, "empty@example.com")

	cart := buildTestCart(user.IdentityKey())
	if _, err := orderSvc.CreateFromCart(user, cart, CheckoutInput{}); !errors.Is(err, ErrOrderEmptyCart) {
		t.Fatalf("want ErrOrderEmptyCart, got %v", err)
	}
}

func TestCreateFromCartWalletPayment(t *testing.T) {
	orderSvc, walletSvc, db := setupOrderService(t)
	user := createOrderUser(t, db, "wallet@example.com")

	if _, err := walletSvc.AdminCredit(WalletCreditInput{UserID: user.ID, Amount: models.NewMoneyFromInt(50000)}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	cart := buildTestCart(user.IdentityKey())
	addTestItem(cart, 1, 10000, 1)

	order, err := orderSvc.CreateFromCart(user, cart, CheckoutInput{PaymentMethod: constants.PaymentMethodWallet})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	account, _ := walletSvc.GetAccount(user.ID)
	// 10000 + 1000 运费
	if !account.Balance.Decimal.Equal(decimal.NewFromInt(39000)) {
		t.Fatalf("balance want 39000 got %s", account.Balance)
	}
	if order.PaymentMethod != constants.PaymentMethodWallet {
		t.Fatalf("payment method want wallet got %s", order.PaymentMethod)
	}
}

func TestCreateFromCartWalletInsufficient(t *testing.T) {
	orderSvc, _, db := setupOrderService(t)
	user := createOrderUser(t, db, "poor@example.com")

	cart := buildTestCart(user.IdentityKey())
	addTestItem(cart, 1, 10000, 1)

	if _, err := orderSvc.CreateFromCart(user, cart, CheckoutInput{PaymentMethod: constants.PaymentMethodWallet}); !errors.Is(err, ErrWalletInsufficientFunds) {
		t.Fatalf("want ErrWalletInsufficientFunds, got %v", err)
	}
	// 事务回滚，不应留下订单
	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("failed checkout should leave no order, got %d", count)
	}
	// 支付失败时购物车保持不变
	if cart.Count() != 1 {
		t.Fatalf("cart should keep its items, got %d", cart.Count())
	}
}

func TestOrderStatusMachine(t *testing.T) {
	orderSvc, _, db := setupOrderService(t)
	user := createOrderUser(t, db, "machine@example.com")

	cart := buildTestCart(user.IdentityKey())
	addTestItem(cart, 1, 8000, 1)
	order, err := orderSvc.CreateFromCart(user, cart, CheckoutInput{PaymentMethod: constants.PaymentMethodDelivery})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// pending 不能直接 delivered
	if _, err := orderSvc.UpdateStatus(order.ID, UpdateStatusInput{Status: constants.OrderStatusDelivered}); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("pending->delivered want ErrOrderStatusInvalid, got %v", err)
	}

	for _, status := range []string{
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusShipping,
		constants.OrderStatusDelivered,
	} {
		if _, err := orderSvc.UpdateStatus(order.ID, UpdateStatusInput{Status: status, Admin: "admin@trymyday.local"}); err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
	}

	stored, err := orderSvc.GetAdmin(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusDelivered {
		t.Fatalf("status want delivered got %s", stored.Status)
	}
	if len(stored.Timeline) != 5 {
		t.Fatalf("timeline entries want 5 got %d", len(stored.Timeline))
	}

	// delivered 后不能再取消
	if _, err := orderSvc.UpdateStatus(order.ID, UpdateStatusInput{Status: constants.OrderStatusCanceled}); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("delivered->canceled want ErrOrderStatusInvalid, got %v", err)
	}
}

func TestCancelByUserRefundsWallet(t *testing.T) {
	orderSvc, walletSvc, db := setupOrderService(t)
	user := createOrderUser(t, db, "cancel@example.com")

	if _, err := walletSvc.AdminCredit(WalletCreditInput{UserID: user.ID, Amount: models.NewMoneyFromInt(20000)}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	cart := buildTestCart(user.IdentityKey())
	addTestItem(cart, 1, 6000, 1)
	order, err := orderSvc.CreateFromCart(user, cart, CheckoutInput{PaymentMethod: constants.PaymentMethodWallet})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	canceled, err := orderSvc.CancelByUser(user.ID, order.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCanceled {
		t.Fatalf("status want canceled got %s", canceled.Status)
	}
	if canceled.CanceledAt == nil {
		t.Fatalf("canceled_at should be set")
	}
	if !canceled.RefundedAmount.Decimal.Equal(canceled.TotalAmount.Decimal) {
		t.Fatalf("refunded want %s got %s", canceled.TotalAmount, canceled.RefundedAmount)
	}

	// 退款应回到钱包
	account, _ := walletSvc.GetAccount(user.ID)
	if !account.Balance.Decimal.Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("balance want 20000 got %s", account.Balance)
	}

	// 已取消的订单不能再次取消
	if _, err := orderSvc.CancelByUser(user.ID, order.ID); !errors.Is(err, ErrOrderNotCancelable) {
		t.Fatalf("want ErrOrderNotCancelable, got %v", err)
	}
}

func TestGetForUserOwnership(t *testing.T) {
	orderSvc, _, db := setupOrderService(t)
	owner := createOrderUser(t, db, "owner@example.com")
	other := createOrderUser(t, db, "other@example.com")

	cart := buildTestCart(owner.IdentityKey())
	addTestItem(cart, 1, 3000, 1)
	order, err := orderSvc.CreateFromCart(owner, cart, CheckoutInput{})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := orderSvc.GetForUser(other.ID, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign order want ErrOrderNotFound, got %v", err)
	}
	if _, err := orderSvc.CancelByUser(other.ID, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign cancel want ErrOrderNotFound, got %v", err)
	}
}
