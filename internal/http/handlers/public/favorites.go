package public

import (
	"github.com/trymyday-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListFavorites 获取收藏列表
func (h *Handler) ListFavorites(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	favorites := h.loadFavorites(user)
	response.Success(c, gin.H{
		"product_ids": favorites.List(),
		"count":       favorites.Count(),
	})
}

// FavoriteRequest 收藏操作请求
type FavoriteRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// ToggleFavorite 切换收藏状态
func (h *Handler) ToggleFavorite(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	favorites := h.loadFavorites(user)
	favorites.Toggle(req.ProductID)
	response.Success(c, gin.H{
		"product_ids": favorites.List(),
		"favorited":   favorites.Has(req.ProductID),
		"count":       favorites.Count(),
	})
}

// ClearFavorites 清空收藏
func (h *Handler) ClearFavorites(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	favorites := h.loadFavorites(user)
	favorites.Clear()
	response.Success(c, gin.H{
		"product_ids": favorites.List(),
		"count":       favorites.Count(),
	})
}
