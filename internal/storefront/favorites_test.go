package storefront

import (
	"testing"

	"github.com/trymyday-shop/internal/kvstore"
)

func TestFavoritesSetSemantics(t *testing.T) {
	fav := NewFavorites(kvstore.NewMemoryStore())
	fav.IdentityChanged("a@example.com")

	fav.Add(1)
	fav.Add(1)
	if fav.Count() != 1 {
		t.Fatalf("add must be idempotent, count=%d", fav.Count())
	}
	if !fav.Has(1) || fav.Has(2) {
		t.Fatalf("membership broken")
	}

	fav.Remove(2) // 不存在，幂等
	fav.Remove(1)
	if fav.Count() != 0 {
		t.Fatalf("remove failed")
	}
}

func TestFavoritesToggle(t *testing.T) {
	fav := NewFavorites(kvstore.NewMemoryStore())
	fav.IdentityChanged("a@example.com")

	fav.Toggle(5)
	if !fav.Has(5) {
		t.Fatalf("toggle on failed")
	}
	fav.Toggle(5)
	if fav.Has(5) {
		t.Fatalf("toggle off failed")
	}
}

func TestFavoritesPerIdentityNamespace(t *testing.T) {
	store := kvstore.NewMemoryStore()
	fav := NewFavorites(store)

	fav.IdentityChanged("a@example.com")
	fav.Add(1)
	fav.Add(2)

	fav.IdentityChanged("b@example.com")
	if fav.Count() != 0 {
		t.Fatalf("identity switch leaked favorites")
	}
	fav.Add(9)

	fav.IdentityChanged("a@example.com")
	ids := fav.List()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("persisted favorites not recovered: %v", ids)
	}
}

func TestFavoritesLogoutKeepsPersistedState(t *testing.T) {
	store := kvstore.NewMemoryStore()
	fav := NewFavorites(store)

	fav.IdentityChanged("a@example.com")
	fav.Add(3)

	fav.IdentityChanged("")
	if fav.Count() != 0 {
		t.Fatalf("logout must reset in-memory set")
	}
	if _, ok, _ := store.Get("favorites_a@example.com"); !ok {
		t.Fatalf("persisted favorites must not be deleted on logout")
	}

	fav.Add(8) // 游客收藏只在内存
	if _, ok, _ := store.Get("favorites_"); ok {
		t.Fatalf("guest favorites must not be persisted")
	}
}
