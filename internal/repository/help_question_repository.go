package repository

import (
	"errors"

	"github.com/trymyday-shop/internal/models"

	"gorm.io/gorm"
)

// HelpQuestionRepository 帮助中心问答数据访问接口
type HelpQuestionRepository interface {
	GetByID(id uint) (*models.HelpQuestion, error)
	List(filter HelpQuestionListFilter) ([]models.HelpQuestion, int64, error)
	Create(question *models.HelpQuestion) error
	Update(question *models.HelpQuestion) error
	Delete(id uint) error
}

// GormHelpQuestionRepository GORM 实现
type GormHelpQuestionRepository struct {
	db *gorm.DB
}

// NewHelpQuestionRepository 创建问答仓库
func NewHelpQuestionRepository(db *gorm.DB) *GormHelpQuestionRepository {
	return &GormHelpQuestionRepository{db: db}
}

// GetByID 根据 ID 获取问答
func (r *GormHelpQuestionRepository) GetByID(id uint) (*models.HelpQuestion, error) {
	var question models.HelpQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// List 查询问答列表
func (r *GormHelpQuestionRepository) List(filter HelpQuestionListFilter) ([]models.HelpQuestion, int64, error) {
	query := r.db.Model(&models.HelpQuestion{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []models.HelpQuestion
	if err := applyPagination(query.Order("created_at desc"), filter.Page, filter.PageSize).Find(&questions).Error; err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// Create 创建问答
func (r *GormHelpQuestionRepository) Create(question *models.HelpQuestion) error {
	return r.db.Create(question).Error
}

// Update 更新问答
func (r *GormHelpQuestionRepository) Update(question *models.HelpQuestion) error {
	return r.db.Save(question).Error
}

// Delete 删除问答（软删除）
func (r *GormHelpQuestionRepository) Delete(id uint) error {
	return r.db.Delete(&models.HelpQuestion{}, id).Error
}
