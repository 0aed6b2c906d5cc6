package admin

import (
	"errors"

	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Role:     c.Query("role"),
		Status:   c.Query("status"),
	}
	users, total, err := h.UserService.ListUsers(filter)
	if err != nil {
		response.Error(c, response.CodeInternal, "查询用户列表失败")
		return
	}
	response.SuccessWithPage(c, users, response.NewPagination(page, pageSize, total))
}

// GetUser 用户详情
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetUser(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "用户不存在")
			return
		}
		response.Error(c, response.CodeInternal, "查询用户失败")
		return
	}
	response.Success(c, user)
}

// SetUserStatusRequest 用户状态变更请求
type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetUserStatus 启用/禁用用户
func (h *Handler) SetUserStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	user, err := h.UserService.SetUserStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "用户不存在")
		case errors.Is(err, service.ErrUserStatusInvalid):
			response.BadRequest(c, "用户状态不合法")
		default:
			response.Error(c, response.CodeInternal, "更新用户状态失败")
		}
		return
	}
	response.Success(c, user)
}

// SetUserRoleRequest 用户角色变更请求
type SetUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetUserRole 调整用户角色
func (h *Handler) SetUserRole(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req SetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	user, err := h.UserService.SetUserRole(id, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "用户不存在")
		case errors.Is(err, service.ErrPermissionDenied):
			response.BadRequest(c, "角色不合法")
		default:
			response.Error(c, response.CodeInternal, "更新用户角色失败")
		}
		return
	}
	response.Success(c, user)
}
