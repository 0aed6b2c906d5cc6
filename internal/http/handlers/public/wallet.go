package public

import (
	"errors"
	"strconv"

	"github.com/trymyday-shop/internal/http/handlers/shared"
	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// GetMyWallet 我的钱包账户
func (h *Handler) GetMyWallet(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	account, err := h.WalletService.GetAccount(user.ID)
	if err != nil {
		response.Error(c, response.CodeInternal, "échec du chargement du portefeuille")
		return
	}
	response.Success(c, account)
}

// ListMyTransactions 我的钱包流水
func (h *Handler) ListMyTransactions(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.WalletTransactionListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   user.ID,
		Type:     c.Query("type"),
	}
	transactions, total, err := h.WalletService.ListTransactions(filter)
	if err != nil {
		response.Error(c, response.CodeInternal, "échec du chargement des transactions")
		return
	}
	response.SuccessWithPage(c, transactions, response.NewPagination(page, pageSize, total))
}

// WalletTransferRequest 转账请求
type WalletTransferRequest struct {
	ToUserID uint         `json:"to_user_id" binding:"required"`
	Amount   models.Money `json:"amount" binding:"required"`
	Remark   string       `json:"remark"`
}

// Transfer 用户间转账
func (h *Handler) Transfer(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req WalletTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	txn, err := h.WalletService.Transfer(service.WalletTransferInput{
		FromUserID: user.ID,
		ToUserID:   req.ToUserID,
		Amount:     req.Amount,
		Remark:     req.Remark,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWalletInvalidAmount):
			response.BadRequest(c, "montant invalide")
		case errors.Is(err, service.ErrWalletInsufficientFunds):
			response.BadRequest(c, "solde du portefeuille insuffisant")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "destinataire introuvable")
		default:
			response.Error(c, response.CodeInternal, "échec du transfert")
		}
		return
	}
	response.Success(c, txn)
}
