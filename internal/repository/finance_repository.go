package repository

import (
	"time"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueStats 营收统计
type RevenueStats struct {
	OrdersTotal     int64           // 订单总数
	DeliveredOrders int64           // 已送达订单数
	CanceledOrders  int64           // 已取消订单数
	GrossRevenue    decimal.Decimal // 已送达订单收入合计
	RefundedAmount  decimal.Decimal // 退款合计
}

// FinanceRepository 财务统计数据访问接口
type FinanceRepository interface {
	GetRevenueStats(from, to *time.Time) (*RevenueStats, error)
}

// GormFinanceRepository GORM 实现
type GormFinanceRepository struct {
	db *gorm.DB
}

// NewFinanceRepository 创建财务仓库
func NewFinanceRepository(db *gorm.DB) *GormFinanceRepository {
	return &GormFinanceRepository{db: db}
}

// GetRevenueStats 统计区间内订单营收
func (r *GormFinanceRepository) GetRevenueStats(from, to *time.Time) (*RevenueStats, error) {
	base := func() *gorm.DB {
		query := r.db.Model(&models.Order{})
		if from != nil {
			query = query.Where("created_at >= ?", from)
		}
		if to != nil {
			query = query.Where("created_at <= ?", to)
		}
		return query
	}

	stats := &RevenueStats{}
	if err := base().Count(&stats.OrdersTotal).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", constants.OrderStatusDelivered).Count(&stats.DeliveredOrders).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", constants.OrderStatusCanceled).Count(&stats.CanceledOrders).Error; err != nil {
		return nil, err
	}

	var gross models.Money
	if err := base().Where("status = ?", constants.OrderStatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&gross).Error; err != nil {
		return nil, err
	}
	stats.GrossRevenue = gross.Decimal

	var refunded models.Money
	if err := base().Select("COALESCE(SUM(refunded_amount), 0)").Scan(&refunded).Error; err != nil {
		return nil, err
	}
	stats.RefundedAmount = refunded.Decimal

	return stats, nil
}
