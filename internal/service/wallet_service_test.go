package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupWalletService(t *testing.T) (*WalletService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:wallet_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.WalletAccount{}, &models.WalletTransaction{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	svc := NewWalletService(repository.NewWalletRepository(db), repository.NewUserRepository(db), nil)
	return svc, db
}

func createWalletUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test",
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

func TestWalletGetAccountAutoCreate(t *testing.T) {
	svc, db := setupWalletService(t)
	user := createWalletUser(t, db, "alice@example.com")

	account, err := svc.GetAccount(user.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if account.Currency != constants.ShopCurrency {
		t.Fatalf("currency want %s got %s", constants.ShopCurrency, account.Currency)
	}
	if !account.Balance.Decimal.IsZero() {
		t.Fatalf("new account balance should be zero, got %s", account.Balance)
	}

	again, err := svc.GetAccount(user.ID)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if again.ID != account.ID {
		t.Fatalf("expected same account, got %d and %d", account.ID, again.ID)
	}
}

func TestWalletAdminCreditAndInvalidAmount(t *testing.T) {
	svc, db := setupWalletService(t)
	user := createWalletUser(t, db, "bob@example.com")

	if _, err := svc.AdminCredit(WalletCreditInput{UserID: user.ID, Amount: models.NewMoneyFromInt(0)}); !errors.Is(err, ErrWalletInvalidAmount) {
		t.Fatalf("zero credit want ErrWalletInvalidAmount, got %v", err)
	}
	if _, err := svc.AdminCredit(WalletCreditInput{UserID: 9999, Amount: models.NewMoneyFromInt(1000)}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user want ErrUserNotFound, got %v", err)
	}

	txn, err := svc.AdminCredit(WalletCreditInput{UserID: user.ID, Amount: models.NewMoneyFromInt(5000), Remark: "Bonus"})
	if err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if txn.Direction != constants.WalletTxnDirectionIn {
		t.Fatalf("direction want in got %s", txn.Direction)
	}
	if txn.Description != "Bonus" {
		t.Fatalf("description want Bonus got %s", txn.Description)
	}

	account, _ := svc.GetAccount(user.ID)
	if !account.Balance.Decimal.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("balance want 5000 got %s", account.Balance)
	}
}

func TestWalletPayOrderIdempotent(t *testing.T) {
	svc, db := setupWalletService(t)
	user := createWalletUser(t, db, "carol@example.com")

	if _, err := svc.AdminCredit(WalletCreditInput{UserID: user.ID, Amount: models.NewMoneyFromInt(10000)}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	order := &models.Order{ID: 42, OrderNo: "TMD20260101000000123456", UserID: user.ID, TotalAmount: models.NewMoneyFromInt(4000)}
	if err := svc.PayOrder(db, order); err != nil {
		t.Fatalf("pay failed: %v", err)
	}
	// 相同引用号重复支付不应二次扣款
	if err := svc.PayOrder(db, order); err != nil {
		t.Fatalf("second pay should be a no-op, got %v", err)
	}

	account, _ := svc.GetAccount(user.ID)
	if !account.Balance.Decimal.Equal(decimal.NewFromInt(6000)) {
		t.Fatalf("balance want 6000 got %s", account.Balance)
	}

	var count int64
	db.Model(&models.WalletTransaction{}).Where("type = ?", constants.WalletTxnTypeOrderPay).Count(&count)
	if count != 1 {
		t.Fatalf("pay transactions want 1 got %d", count)
	}
}

func TestWalletPayOrderInsufficientFunds(t *testing.T) {
	svc, db := setupWalletService(t)
	user := createWalletUser(t, db, "dave@example.com")

	order := &models.Order{ID: 7, OrderNo: "TMD20260101000000000007", UserID: user.ID, TotalAmount: models.NewMoneyFromInt(2500)}
	if err := svc.PayOrder(db, order); !errors.Is(err, ErrWalletInsufficientFunds) {
		t.Fatalf("want ErrWalletInsufficientFunds, got %v", err)
	}
}

func TestWalletRefundOrderIdempotent(t *testing.T) {
	svc, db := setupWalletService(t)
	user := createWalletUser(t, db, "eva@example.com")

	order := &models.Order{ID: 11, OrderNo: "TMD20260101000000000011", UserID: user.ID, TotalAmount: models.NewMoneyFromInt(3000)}
	first, err := svc.RefundOrder(db, order, order.TotalAmount, "")
	if err != nil {
		t.Fatalf("refund failed: %v", err)
	}
	second, err := svc.RefundOrder(db, order, order.TotalAmount, "")
	if err != nil {
		t.Fatalf("second refund failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("refund should be idempotent, got transactions %d and %d", first.ID, second.ID)
	}

	account, _ := svc.GetAccount(user.ID)
	if !account.Balance.Decimal.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("balance want 3000 got %s", account.Balance)
	}
}

func TestWalletTransfer(t *testing.T) {
	svc, db := setupWalletService(t)
	sender := createWalletUser(t, db, "sender@example.com")
	receiver := createWalletUser(t, db, "receiver@example.com")

	if _, err := svc.AdminCredit(WalletCreditInput{UserID: sender.ID, Amount: models.NewMoneyFromInt(8000)}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	if _, err := svc.Transfer(WalletTransferInput{FromUserID: sender.ID, ToUserID: sender.ID, Amount: models.NewMoneyFromInt(100)}); !errors.Is(err, ErrWalletInvalidAmount) {
		t.Fatalf("self transfer want ErrWalletInvalidAmount, got %v", err)
	}
	if _, err := svc.Transfer(WalletTransferInput{FromUserID: sender.ID, ToUserID: receiver.ID, Amount: models.NewMoneyFromInt(50000)}); !errors.Is(err, ErrWalletInsufficientFunds) {
		t.Fatalf("overdraft want ErrWalletInsufficientFunds, got %v", err)
	}

	debit, err := svc.Transfer(WalletTransferInput{FromUserID: sender.ID, ToUserID: receiver.ID, Amount: models.NewMoneyFromInt(3000)})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if debit.Direction != constants.WalletTxnDirectionOut {
		t.Fatalf("debit direction want out got %s", debit.Direction)
	}

	senderAccount, _ := svc.GetAccount(sender.ID)
	receiverAccount, _ := svc.GetAccount(receiver.ID)
	if !senderAccount.Balance.Decimal.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("sender balance want 5000 got %s", senderAccount.Balance)
	}
	if !receiverAccount.Balance.Decimal.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("receiver balance want 3000 got %s", receiverAccount.Balance)
	}
}

func TestWalletManagerTransactionWindow(t *testing.T) {
	svc, db := setupWalletService(t)
	user := createWalletUser(t, db, "frank@example.com")

	old := &models.WalletTransaction{
		UserID:       user.ID,
		Type:         constants.WalletTxnTypeAdminCredit,
		Direction:    constants.WalletTxnDirectionIn,
		Amount:       models.NewMoneyFromInt(1000),
		BalanceAfter: models.NewMoneyFromInt(1000),
		Reference:    "admin_credit:old",
	}
	if err := db.Create(old).Error; err != nil {
		t.Fatalf("create old txn failed: %v", err)
	}
	past := time.Now().AddDate(0, 0, -60)
	db.Model(old).Update("created_at", past)

	if _, err := svc.AdminCredit(WalletCreditInput{UserID: user.ID, Amount: models.NewMoneyFromInt(2000)}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	filter := repository.WalletTransactionListFilter{UserID: user.ID}
	all, _, err := svc.ListTransactionsForRole(constants.UserRoleAdmin, filter)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see 2 transactions, got %d", len(all))
	}

	recent, _, err := svc.ListTransactionsForRole(constants.UserRoleManager, filter)
	if err != nil {
		t.Fatalf("manager list failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("manager should only see recent transactions, got %d", len(recent))
	}
}
