package admin

import (
	"errors"
	"strconv"

	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListWalletTransactions 钱包流水列表
// manager 角色只能看到最近 30 天的流水
func (h *Handler) ListWalletTransactions(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	from, to := parseTimeRangeQuery(c)
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	filter := repository.WalletTransactionListFilter{
		Page:        page,
		PageSize:    pageSize,
		UserID:      uint(userID),
		Type:        c.Query("type"),
		CreatedFrom: from,
		CreatedTo:   to,
	}
	transactions, total, err := h.WalletService.ListTransactionsForRole(currentRole(c), filter)
	if err != nil {
		response.Error(c, response.CodeInternal, "查询钱包流水失败")
		return
	}
	response.SuccessWithPage(c, transactions, response.NewPagination(page, pageSize, total))
}

// WalletCreditRequest 后台充值请求
type WalletCreditRequest struct {
	UserID uint         `json:"user_id" binding:"required"`
	Amount models.Money `json:"amount" binding:"required"`
	Remark string       `json:"remark"`
}

// CreditWallet 给用户钱包充值
func (h *Handler) CreditWallet(c *gin.Context) {
	var req WalletCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}

	txn, err := h.WalletService.AdminCredit(service.WalletCreditInput{
		UserID: req.UserID,
		Amount: req.Amount,
		Remark: req.Remark,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWalletInvalidAmount):
			response.BadRequest(c, "充值金额不合法")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "用户不存在")
		default:
			response.Error(c, response.CodeInternal, "充值失败")
		}
		return
	}
	response.Success(c, txn)
}
