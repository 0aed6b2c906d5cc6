package repository

import (
	"errors"
	"time"

	"github.com/trymyday-shop/internal/models"

	"gorm.io/gorm"
)

// ExpenseRepository 运营支出数据访问接口
type ExpenseRepository interface {
	GetByID(id uint) (*models.Expense, error)
	List(filter ExpenseListFilter) ([]models.Expense, int64, error)
	SumAmount(from, to *time.Time) (models.Money, error)
	Create(expense *models.Expense) error
	Update(expense *models.Expense) error
	Delete(id uint) error
}

// GormExpenseRepository GORM 实现
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository 创建支出仓库
func NewExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// GetByID 根据 ID 获取支出
func (r *GormExpenseRepository) GetByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

// List 查询支出列表
func (r *GormExpenseRepository) List(filter ExpenseListFilter) ([]models.Expense, int64, error) {
	query := r.db.Model(&models.Expense{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.From != nil {
		query = query.Where("spent_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("spent_at <= ?", filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenses []models.Expense
	if err := applyPagination(query.Order("spent_at desc"), filter.Page, filter.PageSize).Find(&expenses).Error; err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// SumAmount 统计区间内支出总额
func (r *GormExpenseRepository) SumAmount(from, to *time.Time) (models.Money, error) {
	query := r.db.Model(&models.Expense{})
	if from != nil {
		query = query.Where("spent_at >= ?", from)
	}
	if to != nil {
		query = query.Where("spent_at <= ?", to)
	}
	var total models.Money
	if err := query.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return models.Money{}, err
	}
	return total, nil
}

// Create 创建支出
func (r *GormExpenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// Update 更新支出
func (r *GormExpenseRepository) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

// Delete 删除支出（软删除）
func (r *GormExpenseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Expense{}, id).Error
}
