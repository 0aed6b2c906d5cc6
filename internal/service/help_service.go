package service

import (
	"strings"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"
)

// HelpService 帮助中心服务
type HelpService struct {
	helpRepo repository.HelpQuestionRepository
}

// NewHelpService 创建帮助中心服务
func NewHelpService(helpRepo repository.HelpQuestionRepository) *HelpService {
	return &HelpService{helpRepo: helpRepo}
}

// ListApproved 公开展示已审核通过的问答
func (s *HelpService) ListApproved(page, pageSize int) ([]models.HelpQuestion, int64, error) {
	return s.helpRepo.List(repository.HelpQuestionListFilter{
		Status:   constants.HelpQuestionStatusApproved,
		Page:     page,
		PageSize: pageSize,
	})
}

// SubmitQuestion 客户提交问题（进入待审核状态）
func (s *HelpService) SubmitQuestion(question, userName string) (*models.HelpQuestion, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrHelpQuestionEmpty
	}
	entry := &models.HelpQuestion{
		Question: question,
		UserName: strings.TrimSpace(userName),
		Status:   constants.HelpQuestionStatusPending,
	}
	if err := s.helpRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListAdmin 管理端查询问答列表
func (s *HelpService) ListAdmin(filter repository.HelpQuestionListFilter) ([]models.HelpQuestion, int64, error) {
	return s.helpRepo.List(filter)
}

// AnswerQuestion 管理端回答并通过审核
func (s *HelpService) AnswerQuestion(id uint, answer string) (*models.HelpQuestion, error) {
	question, err := s.helpRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrHelpQuestionNotFound
	}
	question.Answer = strings.TrimSpace(answer)
	question.Status = constants.HelpQuestionStatusApproved
	if err := s.helpRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

// RejectQuestion 管理端驳回问题
func (s *HelpService) RejectQuestion(id uint) (*models.HelpQuestion, error) {
	question, err := s.helpRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrHelpQuestionNotFound
	}
	question.Status = constants.HelpQuestionStatusRejected
	if err := s.helpRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion 管理端删除问答
func (s *HelpService) DeleteQuestion(id uint) error {
	question, err := s.helpRepo.GetByID(id)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrHelpQuestionNotFound
	}
	return s.helpRepo.Delete(id)
}
