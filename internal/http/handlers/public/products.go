package public

import (
	"errors"
	"strconv"

	"github.com/trymyday-shop/internal/http/handlers/shared"
	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"
	"github.com/trymyday-shop/internal/storefront"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表（仅上架商品）
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	products, total, err := h.ProductService.ListProductsAdmin(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		OnlyActive: true,
	})
	if err != nil {
		response.Error(c, response.CodeInternal, "échec du chargement des produits")
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "identifiant de produit invalide")
		return
	}

	product, err := h.ProductService.GetProduct(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrProductUnavailable):
			response.NotFound(c, "produit introuvable")
		default:
			response.Error(c, response.CodeInternal, "échec du chargement du produit")
		}
		return
	}
	response.Success(c, product)
}

// ListCoupons 公开可用的优惠码列表
func (h *Handler) ListCoupons(c *gin.Context) {
	response.Success(c, storefront.AvailableCoupons())
}
