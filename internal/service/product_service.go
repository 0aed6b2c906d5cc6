package service

import (
	"strings"

	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"
)

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput 商品创建/更新输入
type ProductInput struct {
	Name        string
	Description string
	Price       models.Money
	Category    string
	Subcategory string
	Stock       int
	Images      []string
	Colors      []string
	Sizes       []string
	Storages    []string
	IsActive    *bool
	SortOrder   int
}

// ListProducts 返回全部上架商品（实现 storefront.Catalog）
func (s *ProductService) ListProducts() ([]models.Product, error) {
	products, _, err := s.productRepo.List(repository.ProductListFilter{OnlyActive: true})
	return products, err
}

// GetProduct 获取上架商品（实现 storefront.Catalog）
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductUnavailable
	}
	return product, nil
}

// ListProductsAdmin 管理端商品列表（含下架商品）
func (s *ProductService) ListProductsAdmin(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// GetProductAdmin 管理端获取商品
func (s *ProductService) GetProductAdmin(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// CreateProduct 创建商品
func (s *ProductService) CreateProduct(input ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		Subcategory: strings.TrimSpace(input.Subcategory),
		Stock:       input.Stock,
		Images:      input.Images,
		Colors:      input.Colors,
		Sizes:       input.Sizes,
		Storages:    input.Storages,
		IsActive:    true,
		SortOrder:   input.SortOrder,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct 更新商品
func (s *ProductService) UpdateProduct(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.Category = strings.TrimSpace(input.Category)
	product.Subcategory = strings.TrimSpace(input.Subcategory)
	product.Stock = input.Stock
	product.Images = input.Images
	product.Colors = input.Colors
	product.Sizes = input.Sizes
	product.Storages = input.Storages
	product.SortOrder = input.SortOrder
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct 删除商品（软删除）
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}
