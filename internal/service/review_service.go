package service

import (
	"strings"

	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"
)

// ReviewService 商品评价服务
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// ListForProduct 查询商品评价
func (s *ReviewService) ListForProduct(productID uint, page, pageSize int) ([]models.Review, int64, error) {
	return s.reviewRepo.ListByProductID(productID, page, pageSize)
}

// SubmitReview 客户提交评价
func (s *ReviewService) SubmitReview(user *models.User, productID uint, rating int, comment string) (*models.Review, error) {
	if user == nil || user.ID == 0 {
		return nil, ErrUserNotFound
	}
	if rating < 1 || rating > 5 {
		return nil, ErrReviewInvalidRating
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview 管理端删除评价
func (s *ReviewService) DeleteReview(id uint) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.Delete(id)
}
