package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/trymyday-shop/internal/kvstore"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/provider"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func setupCartHandlerTest(t *testing.T) (*gin.Engine, uint, uint) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:cart_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	user := &models.User{Name: "Awa", Email: "awa@example.com", PasswordHash: "x", Role: "client", Status: "active"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	product := &models.Product{
		Name:     "Casque Sony",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(245000)),
		Category: "electronique",
		Stock:    5,
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	container := &provider.Container{
		KVStore:        kvstore.NewMemoryStore(),
		ShippingFlat:   models.NewMoneyFromInt(1000),
		UserRepo:       repository.NewUserRepository(db),
		ProductRepo:    productRepo,
		ProductService: service.NewProductService(productRepo),
	}
	h := New(container)

	r := gin.New()
	authed := r.Group("/api/v1", func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Next()
	})
	authed.GET("/cart", h.GetCart)
	authed.POST("/cart/items", h.AddCartItem)
	authed.PUT("/cart/items/quantity", h.UpdateCartQuantity)
	authed.POST("/cart/coupon", h.ApplyCoupon)

	return r, user.ID, product.ID
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) envelope {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s http status want 200 got %d", method, path, w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope failed: %v", err)
	}
	return env
}

func TestAddCartItemAndPricing(t *testing.T) {
	r, _, productID := setupCartHandlerTest(t)

	env := doJSON(t, r, http.MethodPost, "/api/v1/cart/items", fmt.Sprintf(`{"product_id":%d,"selected_color":"noir"}`, productID))
	if env.StatusCode != 0 {
		t.Fatalf("add item status_code want 0 got %d msg=%s", env.StatusCode, env.Msg)
	}

	var state struct {
		Count        int    `json:"count"`
		Subtotal     string `json:"subtotal"`
		ShippingCost string `json:"shipping_cost"`
		Total        string `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("decode cart state failed: %v", err)
	}
	if state.Count != 1 {
		t.Fatalf("count want 1 got %d", state.Count)
	}
	if state.Subtotal != "245000.00" {
		t.Fatalf("subtotal want 245000.00 got %s", state.Subtotal)
	}
	if state.Total != "246000.00" {
		t.Fatalf("total want 246000.00 got %s", state.Total)
	}

	// 同款再次加入合并为数量 2
	env = doJSON(t, r, http.MethodPost, "/api/v1/cart/items", fmt.Sprintf(`{"product_id":%d}`, productID))
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("decode cart state failed: %v", err)
	}
	if state.Count != 2 {
		t.Fatalf("count after merge want 2 got %d", state.Count)
	}

	env = doJSON(t, r, http.MethodGet, "/api/v1/cart", "")
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("decode cart state failed: %v", err)
	}
	if state.Count != 2 {
		t.Fatalf("persisted count want 2 got %d", state.Count)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r, _, _ := setupCartHandlerTest(t)

	env := doJSON(t, r, http.MethodPost, "/api/v1/cart/items", `{"product_id":9999}`)
	if env.StatusCode != 404 {
		t.Fatalf("status_code want 404 got %d", env.StatusCode)
	}
	if env.Msg != "produit introuvable" {
		t.Fatalf("msg want produit introuvable got %q", env.Msg)
	}
}

func TestUpdateCartQuantityRejectsNonPositive(t *testing.T) {
	r, _, productID := setupCartHandlerTest(t)
	doJSON(t, r, http.MethodPost, "/api/v1/cart/items", fmt.Sprintf(`{"product_id":%d}`, productID))

	env := doJSON(t, r, http.MethodPut, "/api/v1/cart/items/quantity", fmt.Sprintf(`{"product_id":%d,"quantity":-1}`, productID))
	if env.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", env.StatusCode)
	}

	env = doJSON(t, r, http.MethodPut, "/api/v1/cart/items/quantity", fmt.Sprintf(`{"product_id":%d,"quantity":3}`, productID))
	if env.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d msg=%s", env.StatusCode, env.Msg)
	}
	var state struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("decode cart state failed: %v", err)
	}
	if state.Count != 3 {
		t.Fatalf("count want 3 got %d", state.Count)
	}
}

func TestApplyCouponOnCart(t *testing.T) {
	r, _, productID := setupCartHandlerTest(t)
	doJSON(t, r, http.MethodPost, "/api/v1/cart/items", fmt.Sprintf(`{"product_id":%d}`, productID))

	env := doJSON(t, r, http.MethodPost, "/api/v1/cart/coupon", `{"code":"NOPE"}`)
	if env.StatusCode != 400 {
		t.Fatalf("invalid coupon status_code want 400 got %d", env.StatusCode)
	}

	env = doJSON(t, r, http.MethodPost, "/api/v1/cart/coupon", `{"code":"welcome10"}`)
	if env.StatusCode != 0 {
		t.Fatalf("coupon status_code want 0 got %d msg=%s", env.StatusCode, env.Msg)
	}
	var state struct {
		Discount string `json:"discount"`
		Total    string `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("decode cart state failed: %v", err)
	}
	if state.Discount != "24500.00" {
		t.Fatalf("discount want 24500.00 got %s", state.Discount)
	}
	if state.Total != "221500.00" {
		t.Fatalf("total want 221500.00 got %s", state.Total)
	}

	// 优惠码不持久化,重新加载后复位
	env = doJSON(t, r, http.MethodGet, "/api/v1/cart", "")
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("decode cart state failed: %v", err)
	}
	if state.Discount != "0.00" {
		t.Fatalf("reloaded discount want 0.00 got %s", state.Discount)
	}
}
