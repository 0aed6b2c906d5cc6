package storefront

import "github.com/trymyday-shop/internal/models"

// Catalog 商品目录（外部数据源，由 service.ProductService 实现）。
// 购物车只在加入时复制商品快照，后续目录变价不回写行项。
type Catalog interface {
	ListProducts() ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
}
