package public

import (
	"errors"
	"strconv"

	"github.com/trymyday-shop/internal/http/handlers/shared"
	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProductReviews 商品评价列表
func (h *Handler) ListProductReviews(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "identifiant de produit invalide")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	reviews, total, err := h.ReviewService.ListForProduct(uint(productID), page, pageSize)
	if err != nil {
		response.Error(c, response.CodeInternal, "échec du chargement des avis")
		return
	}
	response.SuccessWithPage(c, reviews, response.NewPagination(page, pageSize, total))
}

// SubmitReviewRequest 提交评价请求
type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// SubmitReview 提交商品评价
func (h *Handler) SubmitReview(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "identifiant de produit invalide")
		return
	}
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	review, err := h.ReviewService.SubmitReview(user, uint(productID), req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewInvalidRating):
			response.BadRequest(c, "la note doit être comprise entre 1 et 5")
		case errors.Is(err, service.ErrProductNotFound):
			response.NotFound(c, "produit introuvable")
		default:
			response.Error(c, response.CodeInternal, "échec de l'envoi de l'avis")
		}
		return
	}
	response.Success(c, review)
}
