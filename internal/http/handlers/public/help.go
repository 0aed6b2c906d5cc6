package public

import (
	"errors"
	"strconv"

	"github.com/trymyday-shop/internal/http/handlers/shared"
	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListHelp 已发布的帮助问答列表
func (h *Handler) ListHelp(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	questions, total, err := h.HelpService.ListApproved(page, pageSize)
	if err != nil {
		response.Error(c, response.CodeInternal, "échec du chargement de l'aide")
		return
	}
	response.SuccessWithPage(c, questions, response.NewPagination(page, pageSize, total))
}

// SubmitQuestionRequest 提交问题请求
type SubmitQuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

// SubmitQuestion 提交帮助问题（待审核）
func (h *Handler) SubmitQuestion(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req SubmitQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "requête invalide")
		return
	}

	question, err := h.HelpService.SubmitQuestion(req.Question, user.Name)
	if err != nil {
		if errors.Is(err, service.ErrHelpQuestionEmpty) {
			response.BadRequest(c, "la question ne peut pas être vide")
			return
		}
		response.Error(c, response.CodeInternal, "échec de l'envoi de la question")
		return
	}
	response.Success(c, question)
}
