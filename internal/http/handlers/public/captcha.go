package public

import (
	"github.com/trymyday-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCaptcha 获取图形验证码
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.CaptchaService.Enabled() {
		response.Success(c, gin.H{"enabled": false})
		return
	}
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		response.Error(c, response.CodeInternal, "échec de la génération du captcha")
		return
	}
	response.Success(c, gin.H{
		"enabled":      true,
		"captcha_id":   challenge.CaptchaID,
		"captcha_data": challenge.ImageBase64,
	})
}
