package admin

import (
	"errors"

	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// DeleteReview 删除商品评价
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.ReviewService.DeleteReview(id); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			response.NotFound(c, "评价不存在")
			return
		}
		response.Error(c, response.CodeInternal, "删除评价失败")
		return
	}
	response.Success(c, nil)
}
