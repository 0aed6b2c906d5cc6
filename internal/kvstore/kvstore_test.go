package kvstore

import (
	"fmt"
	"testing"
	"time"

	"github.com/trymyday-shop/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupGormStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:kvstore_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewGormStore(db)
}

func TestGormStoreRoundTrip(t *testing.T) {
	store := setupGormStore(t)

	if _, ok, err := store.Get("cart_alice@example.com"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}

	if err := store.Set("cart_alice@example.com", `[{"product_id":1}]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, ok, err := store.Get("cart_alice@example.com")
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if value != `[{"product_id":1}]` {
		t.Fatalf("unexpected value: %s", value)
	}

	// 整值覆盖
	if err := store.Set("cart_alice@example.com", `[]`); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, _, _ = store.Get("cart_alice@example.com")
	if value != `[]` {
		t.Fatalf("expected overwrite, got: %s", value)
	}

	if err := store.Delete("cart_alice@example.com"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := store.Get("cart_alice@example.com"); ok {
		t.Fatalf("expected key deleted")
	}
}

func TestMemoryStoreIsolatedKeys(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Set("favorites_a@x.com", `[1,2]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set("favorites_b@x.com", `[3]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	a, _, _ := store.Get("favorites_a@x.com")
	b, _, _ := store.Get("favorites_b@x.com")
	if a != `[1,2]` || b != `[3]` {
		t.Fatalf("namespaces leaked: a=%s b=%s", a, b)
	}
}

func TestSaveAndLoadJSON(t *testing.T) {
	store := NewMemoryStore()
	type item struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}
	saved := []item{{ProductID: 7, Quantity: 2}}
	if err := SaveJSON(store, "cart_u@x.com", saved); err != nil {
		t.Fatalf("save json failed: %v", err)
	}

	var loaded []item
	ok, err := LoadJSON(store, "cart_u@x.com", &loaded)
	if err != nil || !ok {
		t.Fatalf("load json failed: ok=%v err=%v", ok, err)
	}
	if len(loaded) != 1 || loaded[0].ProductID != 7 || loaded[0].Quantity != 2 {
		t.Fatalf("unexpected loaded value: %+v", loaded)
	}

	var missing []item
	ok, err = LoadJSON(store, "cart_other@x.com", &missing)
	if err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
}
