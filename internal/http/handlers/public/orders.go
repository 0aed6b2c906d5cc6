package public

import (
	"errors"
	"strconv"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/http/handlers/shared"
	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 下单请求
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	CouponCode      string `json:"coupon_code"`
}

// Checkout 结算下单：购物车定价快照生成订单，成功后清空购物车
func (h *Handler) Checkout(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}
	if req.PaymentMethod != constants.PaymentMethodWallet && req.PaymentMethod != constants.PaymentMethodDelivery {
		response.BadRequest(c, "mode de paiement non pris en charge")
		return
	}

	cart := h.loadCart(user)
	if req.CouponCode != "" {
		if result := cart.ApplyCoupon(req.CouponCode); !result.OK {
			response.BadRequest(c, result.Message)
			return
		}
	}

	order, err := h.OrderService.CreateFromCart(user, cart, service.CheckoutInput{
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderEmptyCart):
			response.BadRequest(c, "votre panier est vide")
		case errors.Is(err, service.ErrWalletInsufficientFunds):
			response.BadRequest(c, "solde du portefeuille insuffisant")
		default:
			response.Error(c, response.CodeInternal, "échec de la commande")
		}
		return
	}
	response.Success(c, order)
}

// ListMyOrders 我的订单列表
func (h *Handler) ListMyOrders(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListForUser(user.ID, page, pageSize)
	if err != nil {
		response.Error(c, response.CodeInternal, "échec du chargement des commandes")
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetMyOrder 我的订单详情
func (h *Handler) GetMyOrder(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "identifiant de commande invalide")
		return
	}

	order, err := h.OrderService.GetForUser(user.ID, uint(orderID))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, "commande introuvable")
			return
		}
		response.Error(c, response.CodeInternal, "échec du chargement de la commande")
		return
	}
	response.Success(c, order)
}

// CancelMyOrder 取消订单（仅 pending/confirmed 可取消）
func (h *Handler) CancelMyOrder(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "identifiant de commande invalide")
		return
	}

	order, err := h.OrderService.CancelByUser(user.ID, uint(orderID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.NotFound(c, "commande introuvable")
		case errors.Is(err, service.ErrOrderNotCancelable):
			response.BadRequest(c, "cette commande ne peut plus être annulée")
		default:
			response.Error(c, response.CodeInternal, "échec de l'annulation")
		}
		return
	}
	response.Success(c, order)
}
