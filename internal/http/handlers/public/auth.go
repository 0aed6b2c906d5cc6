package public

import (
	"errors"

	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 客户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	user, token, expiresAt, err := h.AuthService.RegisterWithToken(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			response.BadRequest(c, "cette adresse e-mail est déjà utilisée")
		case errors.Is(err, service.ErrWeakPassword):
			response.BadRequest(c, "le mot de passe ne respecte pas la politique de sécurité")
		case errors.Is(err, service.ErrInvalidCredentials):
			response.BadRequest(c, "adresse e-mail invalide")
		default:
			response.Error(c, response.CodeInternal, "échec de l'inscription")
		}
		return
	}

	response.Success(c, gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// Login 客户登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	if h.CaptchaService.Enabled() {
		if err := h.CaptchaService.Verify(req.CaptchaID, req.CaptchaCode); err != nil {
			response.BadRequest(c, "code de vérification incorrect")
			return
		}
	}

	user, token, expiresAt, err := h.AuthService.LoginWithToken(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "e-mail ou mot de passe incorrect")
		case errors.Is(err, service.ErrUserDisabled):
			response.Forbidden(c, "ce compte a été désactivé")
		default:
			response.Error(c, response.CodeInternal, "échec de la connexion")
		}
		return
	}

	response.Success(c, gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// Me 获取当前用户信息
func (h *Handler) Me(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	response.Success(c, user)
}

// UpdateProfileRequest 更新个人资料请求
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateProfile 更新个人资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	user, err := h.UserService.UpdateProfile(userID, service.UpdateProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, response.CodeInternal, "échec de la mise à jour du profil")
		return
	}
	response.Success(c, user)
}
