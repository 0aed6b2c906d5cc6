package public

import (
	"errors"

	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/service"
	"github.com/trymyday-shop/internal/storefront"

	"github.com/gin-gonic/gin"
)

// cartState 返回给前端的购物车快照（含定价結果）
func cartState(cart *storefront.Cart) gin.H {
	state := gin.H{
		"items":         cart.Items(),
		"saved_items":   cart.SavedItems(),
		"count":         cart.Count(),
		"subtotal":      cart.Subtotal(),
		"shipping_cost": cart.ShippingCost(),
		"discount":      cart.Discount(),
		"total":         cart.Total(),
	}
	if applied := cart.AppliedCoupon(); applied != nil {
		state["applied_coupon"] = applied
	}
	return state
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	response.Success(c, cartState(h.loadCart(user)))
}

// CartItemRequest 购物车行项请求
type CartItemRequest struct {
	ProductID       uint   `json:"product_id" binding:"required"`
	SelectedColor   string `json:"selected_color"`
	SelectedSize    string `json:"selected_size"`
	SelectedStorage string `json:"selected_storage"`
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	product, err := h.ProductService.GetProduct(req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrProductUnavailable):
			response.NotFound(c, "produit introuvable")
		default:
			response.Error(c, response.CodeInternal, "échec de l'ajout au panier")
		}
		return
	}

	cart := h.loadCart(user)
	item := storefront.NewLineItem(product)
	item.SelectedColor = req.SelectedColor
	item.SelectedSize = req.SelectedSize
	item.SelectedStorage = req.SelectedStorage
	cart.AddItem(item)
	response.Success(c, cartState(cart))
}

// UpdateCartQuantityRequest 修改数量请求
type UpdateCartQuantityRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCartQuantity 修改购物车数量
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	cart := h.loadCart(user)
	if err := cart.UpdateQuantity(req.ProductID, req.Quantity); err != nil {
		response.BadRequest(c, "la quantité doit être au moins 1")
		return
	}
	response.Success(c, cartState(cart))
}

// RemoveCartItem 移出购物车
func (h *Handler) RemoveCartItem(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	cart := h.loadCart(user)
	cart.RemoveItem(req.ProductID)
	response.Success(c, cartState(cart))
}

// ClearCart 清空购物车（保留稍后购买列表）
func (h *Handler) ClearCart(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	cart := h.loadCart(user)
	cart.Clear()
	response.Success(c, cartState(cart))
}

// SaveForLater 移入稍后购买
func (h *Handler) SaveForLater(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	cart := h.loadCart(user)
	cart.SaveForLater(req.ProductID)
	response.Success(c, cartState(cart))
}

// MoveToCart 从稍后购买移回购物车
func (h *Handler) MoveToCart(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	cart := h.loadCart(user)
	cart.MoveToCart(req.ProductID)
	response.Success(c, cartState(cart))
}

// RemoveSavedItem 删除稍后购买行项
func (h *Handler) RemoveSavedItem(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	cart := h.loadCart(user)
	cart.RemoveSavedItem(req.ProductID)
	response.Success(c, cartState(cart))
}

// ApplyCouponRequest 应用优惠码请求
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon 应用优惠码
// 优惠码只影响当次会话定价，不持久化
func (h *Handler) ApplyCoupon(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	cart := h.loadCart(user)
	result := cart.ApplyCoupon(req.Code)
	if !result.OK {
		response.BadRequest(c, result.Message)
		return
	}
	state := cartState(cart)
	state["message"] = result.Message
	response.Success(c, state)
}

// RemoveCoupon 移除当前优惠码
func (h *Handler) RemoveCoupon(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	cart := h.loadCart(user)
	cart.RemoveCoupon()
	response.Success(c, cartState(cart))
}
