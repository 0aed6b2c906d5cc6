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
	"gorm.io/gorm"
)

func setupFinanceService(t *testing.T) (*FinanceService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:finance_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.Expense{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewFinanceService(repository.NewFinanceRepository(db), repository.NewExpenseRepository(db)), db
}

func createFinanceOrder(t *testing.T, db *gorm.DB, orderNo, status string, total, refunded int64) {
	t.Helper()
	order := &models.Order{
		OrderNo:        orderNo,
		UserID:         1,
		Email:          "client@example.com",
		Status:         status,
		Currency:       constants.ShopCurrency,
		TotalAmount:    models.NewMoneyFromInt(total),
		RefundedAmount: models.NewMoneyFromInt(refunded),
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
}

func TestFinanceSummary(t *testing.T) {
	svc, db := setupFinanceService(t)

	createFinanceOrder(t, db, "TMD1", constants.OrderStatusDelivered, 30000, 0)
	createFinanceOrder(t, db, "TMD2", constants.OrderStatusDelivered, 20000, 0)
	createFinanceOrder(t, db, "TMD3", constants.OrderStatusCanceled, 10000, 10000)
	createFinanceOrder(t, db, "TMD4", constants.OrderStatusPending, 5000, 0)

	if _, err := svc.CreateExpense(ExpenseInput{Description: "Loyer boutique", Amount: models.NewMoneyFromInt(15000), Category: "loyer"}); err != nil {
		t.Fatalf("create expense failed: %v", err)
	}

	summary, err := svc.GetSummary(nil, nil)
	if err != nil {
		t.Fatalf("get summary failed: %v", err)
	}
	if summary.OrdersTotal != 4 {
		t.Fatalf("orders total want 4 got %d", summary.OrdersTotal)
	}
	if summary.DeliveredOrders != 2 || summary.CanceledOrders != 1 {
		t.Fatalf("delivered/canceled want 2/1 got %d/%d", summary.DeliveredOrders, summary.CanceledOrders)
	}
	if summary.GrossRevenue != "50000" {
		t.Fatalf("gross revenue want 50000 got %s", summary.GrossRevenue)
	}
	if summary.RefundedAmount != "10000" {
		t.Fatalf("refunded want 10000 got %s", summary.RefundedAmount)
	}
	if summary.TotalExpenses != "15000" {
		t.Fatalf("expenses want 15000 got %s", summary.TotalExpenses)
	}
	// 50000 - 10000 - 15000
	if summary.NetProfit != "25000" {
		t.Fatalf("net profit want 25000 got %s", summary.NetProfit)
	}
	if summary.Currency != constants.ShopCurrency {
		t.Fatalf("currency want %s got %s", constants.ShopCurrency, summary.Currency)
	}
}

func TestExpenseCRUD(t *testing.T) {
	svc, _ := setupFinanceService(t)

	if _, err := svc.CreateExpense(ExpenseInput{Description: "Rien", Amount: models.NewMoneyFromInt(0)}); !errors.Is(err, ErrWalletInvalidAmount) {
		t.Fatalf("zero amount want ErrWalletInvalidAmount, got %v", err)
	}

	expense, err := svc.CreateExpense(ExpenseInput{Description: "  Publicité  ", Amount: models.NewMoneyFromInt(8000), Category: "marketing"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if expense.Description != "Publicité" {
		t.Fatalf("description should be trimmed, got %q", expense.Description)
	}
	if expense.SpentAt.IsZero() {
		t.Fatalf("spent_at should default to now")
	}

	updated, err := svc.UpdateExpense(expense.ID, ExpenseInput{Description: "Publicité Facebook", Amount: models.NewMoneyFromInt(9000), Category: "marketing"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != "Publicité Facebook" {
		t.Fatalf("description not updated: %q", updated.Description)
	}

	if _, err := svc.UpdateExpense(9999, ExpenseInput{Amount: models.NewMoneyFromInt(100)}); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("unknown expense want ErrExpenseNotFound, got %v", err)
	}

	list, total, err := svc.ListExpenses(repository.ExpenseListFilter{Category: "marketing"})
	if err != nil || total != 1 || len(list) != 1 {
		t.Fatalf("list want 1 expense, got total=%d len=%d err=%v", total, len(list), err)
	}

	if err := svc.DeleteExpense(expense.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteExpense(expense.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("second delete want ErrExpenseNotFound, got %v", err)
	}
}
