package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/trymyday-shop/internal/constants"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestBootstrapManagerPermissions(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	cases := []struct {
		obj   string
		act   string
		allow bool
	}{
		{"/api/v1/admin/orders", "GET", true},
		{"/api/v1/admin/orders/12/status", "PUT", true},
		{"/api/v1/admin/orders/12/status", "DELETE", false},
		{"/api/v1/admin/products", "POST", true},
		{"/admin/products/8", "DELETE", true},
		{"/admin/users/7/role", "PUT", false},
		{"/admin/help-questions/3/answer", "PUT", true},
		{"/admin/reviews/5", "DELETE", false},
	}
	for _, tc := range cases {
		allow, err := svc.EnforceRole(constants.UserRoleManager, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", tc.act, tc.obj, err)
		}
		if allow != tc.allow {
			t.Fatalf("enforce %s %s want=%v got=%v", tc.act, tc.obj, tc.allow, allow)
		}
	}
}

func TestBootstrapAdminFullAccess(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	for _, obj := range []string{"/admin/users/7/status", "/admin/wallet/credit", "/admin/expenses/3"} {
		allow, err := svc.EnforceRole(constants.UserRoleAdmin, obj, "PUT")
		if err != nil {
			t.Fatalf("enforce admin %s failed: %v", obj, err)
		}
		if !allow {
			t.Fatalf("expected admin allow=true for %s", obj)
		}
	}

	allow, err := svc.EnforceRole(constants.UserRoleClient, "/admin/orders", "GET")
	if err != nil {
		t.Fatalf("enforce client failed: %v", err)
	}
	if allow {
		t.Fatalf("expected client allow=false")
	}
}

func TestGrantAndRevokeRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("support", "/admin/help-questions", "GET"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}

	allow, err := svc.EnforceRole("support", "/api/v1/admin/help-questions", "get")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow=true")
	}

	if err := svc.RevokeRolePolicy("support", "/admin/help-questions", "GET"); err != nil {
		t.Fatalf("revoke role policy failed: %v", err)
	}
	allow, err = svc.EnforceRole("support", "/api/v1/admin/help-questions", "GET")
	if err != nil {
		t.Fatalf("enforce after revoke failed: %v", err)
	}
	if allow {
		t.Fatalf("expected allow=false after revoke")
	}
}
