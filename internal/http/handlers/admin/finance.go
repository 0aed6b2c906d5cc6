package admin

import (
	"errors"
	"time"

	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// GetFinanceSummary 财务汇总（营收、退款、支出、净利）
func (h *Handler) GetFinanceSummary(c *gin.Context) {
	from, to := parseTimeRangeQuery(c)
	summary, err := h.FinanceService.GetSummary(from, to)
	if err != nil {
		response.Error(c, response.CodeInternal, "查询财务汇总失败")
		return
	}
	response.Success(c, summary)
}

// ListExpenses 支出列表
func (h *Handler) ListExpenses(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	from, to := parseTimeRangeQuery(c)
	filter := repository.ExpenseListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		From:     from,
		To:       to,
	}
	expenses, total, err := h.FinanceService.ListExpenses(filter)
	if err != nil {
		response.Error(c, response.CodeInternal, "查询支出列表失败")
		return
	}
	response.SuccessWithPage(c, expenses, response.NewPagination(page, pageSize, total))
}

// ExpenseRequest 支出创建/更新请求
type ExpenseRequest struct {
	Description string       `json:"description" binding:"required"`
	Amount      models.Money `json:"amount" binding:"required"`
	Category    string       `json:"category"`
	SpentAt     time.Time    `json:"spent_at"`
}

func (r ExpenseRequest) toInput() service.ExpenseInput {
	spentAt := r.SpentAt
	if spentAt.IsZero() {
		spentAt = time.Now()
	}
	return service.ExpenseInput{
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		SpentAt:     spentAt,
	}
}

// CreateExpense 记录一笔支出
func (h *Handler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	expense, err := h.FinanceService.CreateExpense(req.toInput())
	if err != nil {
		response.Error(c, response.CodeInternal, "创建支出失败")
		return
	}
	response.Success(c, expense)
}

// UpdateExpense 更新支出
func (h *Handler) UpdateExpense(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	expense, err := h.FinanceService.UpdateExpense(id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			response.NotFound(c, "支出记录不存在")
			return
		}
		response.Error(c, response.CodeInternal, "更新支出失败")
		return
	}
	response.Success(c, expense)
}

// DeleteExpense 删除支出
func (h *Handler) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.FinanceService.DeleteExpense(id); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			response.NotFound(c, "支出记录不存在")
			return
		}
		response.Error(c, response.CodeInternal, "删除支出失败")
		return
	}
	response.Success(c, nil)
}
