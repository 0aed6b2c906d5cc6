package storefront

import (
	"fmt"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/kvstore"
	"github.com/trymyday-shop/internal/logger"
)

// Favorites 收藏夹（幂等的商品ID集合，按身份命名空间持久化）
type Favorites struct {
	store       kvstore.Store
	identityKey string
	ids         []uint
}

// NewFavorites 创建收藏夹
func NewFavorites(store kvstore.Store) *Favorites {
	return &Favorites{store: store, ids: []uint{}}
}

// IdentityChanged 身份切换回调（与购物车同一套加载/复位规则）
func (f *Favorites) IdentityChanged(key string) {
	f.identityKey = key
	f.ids = []uint{}
	if key == "" {
		return
	}
	if _, err := kvstore.LoadJSON(f.store, f.storageKey(), &f.ids); err != nil {
		logger.Warnw("favorites_load_failed", "key", f.storageKey(), "error", err)
		f.ids = []uint{}
	}
	if f.ids == nil {
		f.ids = []uint{}
	}
}

func (f *Favorites) storageKey() string {
	return fmt.Sprintf("%s_%s", constants.StorageKeyFavorites, f.identityKey)
}

// Add 加入收藏（已存在时幂等）
func (f *Favorites) Add(productID uint) {
	if f.Has(productID) {
		return
	}
	f.ids = append(f.ids, productID)
	f.persist()
}

// Remove 取消收藏（不存在时幂等）
func (f *Favorites) Remove(productID uint) {
	for i, id := range f.ids {
		if id == productID {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			f.persist()
			return
		}
	}
}

// Toggle 收藏/取消收藏切换
func (f *Favorites) Toggle(productID uint) {
	if f.Has(productID) {
		f.Remove(productID)
		return
	}
	f.Add(productID)
}

// Has 是否已收藏
func (f *Favorites) Has(productID uint) bool {
	for _, id := range f.ids {
		if id == productID {
			return true
		}
	}
	return false
}

// Clear 清空收藏
func (f *Favorites) Clear() {
	f.ids = []uint{}
	f.persist()
}

// Count 收藏数量
func (f *Favorites) Count() int {
	return len(f.ids)
}

// List 返回收藏的商品ID副本（插入顺序）
func (f *Favorites) List() []uint {
	ids := make([]uint, len(f.ids))
	copy(ids, f.ids)
	return ids
}

func (f *Favorites) persist() {
	if f.identityKey == "" {
		return
	}
	if err := kvstore.SaveJSON(f.store, f.storageKey(), f.ids); err != nil {
		logger.Warnw("favorites_persist_failed", "key", f.storageKey(), "error", err)
	}
}
