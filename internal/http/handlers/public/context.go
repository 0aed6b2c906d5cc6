package public

import (
	"github.com/trymyday-shop/internal/http/handlers/shared"
	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/storefront"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return shared.GetContextUint(c, "user_id")
}

// currentUser 加载已认证用户，失败时已写出响应
func (h *Handler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, ok := getUserID(c)
	if !ok {
		return nil, false
	}
	user, err := h.UserRepo.GetByID(userID)
	if err != nil {
		response.Error(c, response.CodeInternal, "erreur interne")
		return nil, false
	}
	if user == nil {
		response.Unauthorized(c, "authentification requise")
		return nil, false
	}
	return user, true
}

// loadCart 构建当前用户的购物车引擎并加载其持久状态
func (h *Handler) loadCart(user *models.User) *storefront.Cart {
	cart := storefront.NewCart(h.KVStore, h.ShippingFlat)
	cart.IdentityChanged(user.IdentityKey())
	return cart
}

// loadFavorites 构建当前用户的收藏列表
func (h *Handler) loadFavorites(user *models.User) *storefront.Favorites {
	favorites := storefront.NewFavorites(h.KVStore)
	favorites.IdentityChanged(user.IdentityKey())
	return favorites
}
