package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/trymyday-shop/internal/config"
	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-unit-tests-only-0001"
	cfg.JWT.ExpireHours = 24
	cfg.Security.PasswordPolicy.MinLength = 6
	return NewAuthService(cfg, repository.NewUserRepository(db)), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register("Awa Diop", " Awa@Example.COM ", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "awa@example.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}
	if user.Role != constants.UserRoleClient {
		t.Fatalf("role want client got %s", user.Role)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password must not be stored in clear")
	}

	if _, err := svc.Register("Autre", "awa@example.com", "autre123"); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("duplicate email want ErrEmailAlreadyRegistered, got %v", err)
	}

	logged, err := svc.Login("awa@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.LastLoginAt == nil {
		t.Fatalf("last_login_at should be set after login")
	}

	if _, err := svc.Login("awa@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password want ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email want ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	if _, err := svc.Register("Petit", "petit@example.com", "abc"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("short password want ErrWeakPassword, got %v", err)
	}
}

func TestLoginDisabledUser(t *testing.T) {
	svc, db := setupAuthService(t)

	if _, err := svc.Register("Bloqué", "bloque@example.com", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := db.Model(&models.User{}).Where("email = ?", "bloque@example.com").Update("status", constants.UserStatusDisabled).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	if _, err := svc.Login("bloque@example.com", "secret123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("disabled user want ErrUserDisabled, got %v", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register("Token", "token@example.com", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, expiresAt, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry should be in the future")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse jwt failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != user.Role {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, err := svc.ParseJWT(token + "corrupted"); err == nil {
		t.Fatalf("tampered token should be rejected")
	}
}
