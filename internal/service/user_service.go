package service

import (
	"context"
	"strings"

	"github.com/trymyday-shop/internal/cache"
	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"
)

// UserService 用户管理服务（管理端）
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户管理服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers 查询用户列表
func (s *UserService) ListUsers(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// GetUser 获取用户详情
func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SetUserStatus 启用/禁用用户
func (s *UserService) SetUserStatus(id uint, status string) (*models.User, error) {
	if status != constants.UserStatusActive && status != constants.UserStatusDisabled {
		return nil, ErrUserStatusInvalid
	}
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	s.invalidateAuthState(user.ID)
	return user, nil
}

// SetUserRole 变更用户角色
func (s *UserService) SetUserRole(id uint, role string) (*models.User, error) {
	role = strings.TrimSpace(role)
	switch role {
	case constants.UserRoleClient, constants.UserRoleManager, constants.UserRoleAdmin:
	default:
		return nil, ErrPermissionDenied
	}
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	s.invalidateAuthState(user.ID)
	return user, nil
}

// UpdateProfileInput 个人资料更新输入
type UpdateProfileInput struct {
	Name    string
	Phone   string
	Address string
}

// UpdateProfile 用户更新个人资料
func (s *UserService) UpdateProfile(id uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	user.Name = strings.TrimSpace(input.Name)
	user.Phone = strings.TrimSpace(input.Phone)
	user.Address = strings.TrimSpace(input.Address)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) invalidateAuthState(userID uint) {
	_ = cache.DelUserAuthState(context.Background(), userID)
}
