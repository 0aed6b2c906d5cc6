package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                 // 主键
	Name        string         `gorm:"not null;index" json:"name"`                           // 商品名称
	Description string         `gorm:"type:text" json:"description"`                         // 商品描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`   // 单价
	Category    string         `gorm:"type:varchar(100);not null;index" json:"category"`     // 分类
	Subcategory string         `gorm:"type:varchar(100);default:''" json:"subcategory"`      // 子分类
	Stock       int            `gorm:"not null;default:0" json:"stock"`                      // 库存
	Images      StringArray    `gorm:"type:json" json:"images"`                              // 图片数组
	Colors      StringArray    `gorm:"type:json" json:"colors"`                              // 可选颜色
	Sizes       StringArray    `gorm:"type:json" json:"sizes"`                               // 可选尺码
	Storages    StringArray    `gorm:"type:json" json:"storages"`                            // 可选存储容量（电子产品）
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`                  // 是否上架
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                    // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                              // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                           // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                       // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// Image 返回商品主图
func (p *Product) Image() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
