package admin

import (
	"errors"
	"strconv"

	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	from, to := parseTimeRangeQuery(c)
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	filter := repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		UserID:      uint(userID),
		Email:       c.Query("email"),
		Status:      c.Query("status"),
		OrderNo:     c.Query("order_no"),
		CreatedFrom: from,
		CreatedTo:   to,
	}
	orders, total, err := h.OrderService.ListAdmin(filter)
	if err != nil {
		response.Error(c, response.CodeInternal, "查询订单列表失败")
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetAdmin(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, "订单不存在")
			return
		}
		response.Error(c, response.CodeInternal, "查询订单失败")
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest 订单状态变更请求
type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	Note           string `json:"note"`
	TrackingNumber string `json:"tracking_number"`
}

// UpdateOrderStatus 按状态机推进订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}

	order, err := h.OrderService.UpdateStatus(id, service.UpdateStatusInput{
		Status:         req.Status,
		Note:           req.Note,
		TrackingNumber: req.TrackingNumber,
		Admin:          currentOperator(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.NotFound(c, "订单不存在")
		case errors.Is(err, service.ErrOrderStatusInvalid):
			response.BadRequest(c, "订单状态流转不合法")
		default:
			response.Error(c, response.CodeInternal, "更新订单状态失败")
		}
		return
	}
	response.Success(c, order)
}
