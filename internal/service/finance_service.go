package service

import (
	"strings"
	"time"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"

	"github.com/shopspring/decimal"
)

// FinanceService 财务服务（管理端营收与支出）
type FinanceService struct {
	financeRepo repository.FinanceRepository
	expenseRepo repository.ExpenseRepository
}

// NewFinanceService 创建财务服务
func NewFinanceService(financeRepo repository.FinanceRepository, expenseRepo repository.ExpenseRepository) *FinanceService {
	return &FinanceService{
		financeRepo: financeRepo,
		expenseRepo: expenseRepo,
	}
}

// FinanceSummary 财务汇总
type FinanceSummary struct {
	Currency        string `json:"currency"`
	OrdersTotal     int64  `json:"orders_total"`
	DeliveredOrders int64  `json:"delivered_orders"`
	CanceledOrders  int64  `json:"canceled_orders"`
	GrossRevenue    string `json:"gross_revenue"`
	RefundedAmount  string `json:"refunded_amount"`
	TotalExpenses   string `json:"total_expenses"`
	NetProfit       string `json:"net_profit"`
}

// ExpenseInput 支出创建/更新输入
type ExpenseInput struct {
	Description string
	Amount      models.Money
	Category    string
	SpentAt     time.Time
}

// GetSummary 汇总区间内营收、退款与支出
func (s *FinanceService) GetSummary(from, to *time.Time) (*FinanceSummary, error) {
	stats, err := s.financeRepo.GetRevenueStats(from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.SumAmount(from, to)
	if err != nil {
		return nil, err
	}

	net := stats.GrossRevenue.Sub(stats.RefundedAmount).Sub(expenses.Decimal)
	return &FinanceSummary{
		Currency:        constants.ShopCurrency,
		OrdersTotal:     stats.OrdersTotal,
		DeliveredOrders: stats.DeliveredOrders,
		CanceledOrders:  stats.CanceledOrders,
		GrossRevenue:    stats.GrossRevenue.Round(2).String(),
		RefundedAmount:  stats.RefundedAmount.Round(2).String(),
		TotalExpenses:   expenses.Decimal.Round(2).String(),
		NetProfit:       net.Round(2).String(),
	}, nil
}

// ListExpenses 查询支出列表
func (s *FinanceService) ListExpenses(filter repository.ExpenseListFilter) ([]models.Expense, int64, error) {
	return s.expenseRepo.List(filter)
}

// CreateExpense 创建支出
func (s *FinanceService) CreateExpense(input ExpenseInput) (*models.Expense, error) {
	if input.Amount.Decimal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWalletInvalidAmount
	}
	spentAt := input.SpentAt
	if spentAt.IsZero() {
		spentAt = time.Now()
	}
	expense := &models.Expense{
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Category:    strings.TrimSpace(input.Category),
		SpentAt:     spentAt,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense 更新支出
func (s *FinanceService) UpdateExpense(id uint, input ExpenseInput) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	if input.Amount.Decimal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWalletInvalidAmount
	}

	expense.Description = strings.TrimSpace(input.Description)
	expense.Amount = input.Amount
	expense.Category = strings.TrimSpace(input.Category)
	if !input.SpentAt.IsZero() {
		expense.SpentAt = input.SpentAt
	}
	if err := s.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense 删除支出
func (s *FinanceService) DeleteExpense(id uint) error {
	expense, err := s.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrExpenseNotFound
	}
	return s.expenseRepo.Delete(id)
}
