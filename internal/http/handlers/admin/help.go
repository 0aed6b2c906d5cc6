package admin

import (
	"errors"

	"github.com/trymyday-shop/internal/http/response"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListHelpQuestions 帮助中心问题列表（全部状态）
func (h *Handler) ListHelpQuestions(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.HelpQuestionListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}
	questions, total, err := h.HelpService.ListAdmin(filter)
	if err != nil {
		response.Error(c, response.CodeInternal, "查询帮助问题失败")
		return
	}
	response.SuccessWithPage(c, questions, response.NewPagination(page, pageSize, total))
}

// AnswerQuestionRequest 回答问题请求
type AnswerQuestionRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// AnswerQuestion 回答并发布问题
func (h *Handler) AnswerQuestion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	question, err := h.HelpService.AnswerQuestion(id, req.Answer)
	if err != nil {
		if errors.Is(err, service.ErrHelpQuestionNotFound) {
			response.NotFound(c, "问题不存在")
			return
		}
		response.Error(c, response.CodeInternal, "回答问题失败")
		return
	}
	response.Success(c, question)
}

// RejectQuestion 驳回问题
func (h *Handler) RejectQuestion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	question, err := h.HelpService.RejectQuestion(id)
	if err != nil {
		if errors.Is(err, service.ErrHelpQuestionNotFound) {
			response.NotFound(c, "问题不存在")
			return
		}
		response.Error(c, response.CodeInternal, "驳回问题失败")
		return
	}
	response.Success(c, question)
}

// DeleteHelpQuestion 删除问题
func (h *Handler) DeleteHelpQuestion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.HelpService.DeleteQuestion(id); err != nil {
		if errors.Is(err, service.ErrHelpQuestionNotFound) {
			response.NotFound(c, "问题不存在")
			return
		}
		response.Error(c, response.CodeInternal, "删除问题失败")
		return
	}
	response.Success(c, nil)
}
