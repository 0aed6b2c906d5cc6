package admin

import (
	"errors"

	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 商品创建/更新请求
type ProductRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       models.Money `json:"price" binding:"required"`
	Category    string       `json:"category" binding:"required"`
	Subcategory string       `json:"subcategory"`
	Stock       int          `json:"stock"`
	Images      []string     `json:"images"`
	Colors      []string     `json:"colors"`
	Sizes       []string     `json:"sizes"`
	Storages    []string     `json:"storages"`
	IsActive    *bool        `json:"is_active"`
	SortOrder   int          `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Stock:       r.Stock,
		Images:      r.Images,
		Colors:      r.Colors,
		Sizes:       r.Sizes,
		Storages:    r.Storages,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// ListProducts 商品列表（含下架商品）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	products, total, err := h.ProductService.ListProductsAdmin(filter)
	if err != nil {
		response.Error(c, response.CodeInternal, "查询商品列表失败")
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetProductAdmin(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "商品不存在")
			return
		}
		response.Error(c, response.CodeInternal, "查询商品失败")
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	product, err := h.ProductService.CreateProduct(req.toInput())
	if err != nil {
		response.Error(c, response.CodeInternal, "创建商品失败")
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	product, err := h.ProductService.UpdateProduct(id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "商品不存在")
			return
		}
		response.Error(c, response.CodeInternal, "更新商品失败")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.ProductService.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "商品不存在")
			return
		}
		response.Error(c, response.CodeInternal, "删除商品失败")
		return
	}
	response.Success(c, nil)
}
