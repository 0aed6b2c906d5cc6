// Package storefront 实现按身份命名空间管理的店面会话状态：
// 购物车与定价引擎、收藏夹、当前登录身份。状态常驻内存，
// 每次变更后以整值覆盖方式同步写入键值存储（命令中显式的
// mutate-then-persist 步骤，而非隐式副作用）。
package storefront

import (
	"errors"
	"fmt"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/kvstore"
	"github.com/trymyday-shop/internal/logger"
	"github.com/trymyday-shop/internal/models"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity 数量小于 1 的更新被拒绝
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartLineItem 购物车行项（加入时的商品快照，单价不随目录变价）
type CartLineItem struct {
	ProductID       uint         `json:"product_id"`
	Name            string       `json:"name"`
	UnitPrice       models.Money `json:"unit_price"`
	Quantity        int          `json:"quantity"`
	SelectedColor   string       `json:"selected_color,omitempty"`
	SelectedSize    string       `json:"selected_size,omitempty"`
	SelectedStorage string       `json:"selected_storage,omitempty"`
	Category        string       `json:"category"`
	Stock           int          `json:"stock"`
}

// NewLineItem 从目录商品生成行项快照（数量为 1）
func NewLineItem(p *models.Product) CartLineItem {
	return CartLineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		Category:  p.Category,
		Stock:     p.Stock,
	}
}

// Cart 购物车与定价引擎。
// 行项与稍后购买列表按身份命名空间持久化；已应用优惠码只在会话内存中，
// 重新加载（切换身份）时复位为空。
type Cart struct {
	store        kvstore.Store
	shippingFlat models.Money

	identityKey string
	items       []CartLineItem
	saved       []CartLineItem
	applied     *Coupon
}

// NewCart 创建购物车引擎
func NewCart(store kvstore.Store, shippingFlat models.Money) *Cart {
	return &Cart{
		store:        store,
		shippingFlat: shippingFlat,
		items:        []CartLineItem{},
		saved:        []CartLineItem{},
	}
}

// IdentityChanged 身份切换回调：登录时同步加载该身份的持久状态，
// 登出（key 为空）时复位为空。持久数据在登出时保留，供下次登录恢复。
func (c *Cart) IdentityChanged(key string) {
	c.identityKey = key
	c.items = []CartLineItem{}
	c.saved = []CartLineItem{}
	c.applied = nil
	if key == "" {
		return
	}
	if _, err := kvstore.LoadJSON(c.store, c.cartKey(), &c.items); err != nil {
		logger.Warnw("cart_load_failed", "key", c.cartKey(), "error", err)
		c.items = []CartLineItem{}
	}
	if _, err := kvstore.LoadJSON(c.store, c.savedKey(), &c.saved); err != nil {
		logger.Warnw("cart_saved_load_failed", "key", c.savedKey(), "error", err)
		c.saved = []CartLineItem{}
	}
	if c.items == nil {
		c.items = []CartLineItem{}
	}
	if c.saved == nil {
		c.saved = []CartLineItem{}
	}
}

func (c *Cart) cartKey() string {
	return fmt.Sprintf("%s_%s", constants.StorageKeyCart, c.identityKey)
}

func (c *Cart) savedKey() string {
	return fmt.Sprintf("%s_%s", constants.StorageKeySavedItems, c.identityKey)
}

// AddItem 加入商品：已存在同 ProductID 行项时数量 +1（保留首次加入的选项），
// 否则以数量 1 追加新行。总是成功。
func (c *Cart) AddItem(item CartLineItem) {
	defer c.persist()
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
}

// RemoveItem 移除行项；不存在时静默忽略
func (c *Cart) RemoveItem(productID uint) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateQuantity 将行项数量设置为绝对值；小于 1 时拒绝且状态不变
func (c *Cart) UpdateQuantity(productID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			c.persist()
			return nil
		}
	}
	return nil
}

// Clear 清空行项并撤销优惠码（稍后购买列表保留）
func (c *Cart) Clear() {
	c.items = []CartLineItem{}
	c.applied = nil
	c.persist()
}

// SaveForLater 将行项（含数量）整体移入稍后购买列表；不存在时静默忽略
func (c *Cart) SaveForLater(productID uint) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			item := c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.saved = append(c.saved, item)
			c.persist()
			return
		}
	}
}

// MoveToCart 将稍后购买的行项移回购物车（按 ProductID 合并）；不存在时静默忽略
func (c *Cart) MoveToCart(productID uint) {
	for i := range c.saved {
		if c.saved[i].ProductID == productID {
			item := c.saved[i]
			c.saved = append(c.saved[:i], c.saved[i+1:]...)
			c.mergeItem(item)
			c.persist()
			return
		}
	}
}

// mergeItem 以保留数量的方式并入行项（saveForLater 往返不丢数量）
func (c *Cart) mergeItem(item CartLineItem) {
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// RemoveSavedItem 从稍后购买列表移除；不存在时静默忽略
func (c *Cart) RemoveSavedItem(productID uint) {
	for i := range c.saved {
		if c.saved[i].ProductID == productID {
			c.saved = append(c.saved[:i], c.saved[i+1:]...)
			c.persist()
			return
		}
	}
}

// ApplyCoupon 应用优惠码（大小写不敏感）。命中则覆盖之前的优惠码（不叠加），
// 未命中则保持现状并返回失败提示。
func (c *Cart) ApplyCoupon(code string) CouponResult {
	coupon, ok := LookupCoupon(code)
	if !ok {
		return couponInvalidResult()
	}
	c.applied = &coupon
	return couponAppliedResult(coupon)
}

// RemoveCoupon 撤销已应用的优惠码
func (c *Cart) RemoveCoupon() {
	c.applied = nil
}

// AppliedCoupon 返回当前已应用的优惠码
func (c *Cart) AppliedCoupon() *Coupon {
	return c.applied
}

// Items 返回行项副本（插入顺序）
func (c *Cart) Items() []CartLineItem {
	items := make([]CartLineItem, len(c.items))
	copy(items, c.items)
	return items
}

// SavedItems 返回稍后购买列表副本
func (c *Cart) SavedItems() []CartLineItem {
	saved := make([]CartLineItem, len(c.saved))
	copy(saved, c.saved)
	return saved
}

// Subtotal 商品小计（单价 × 数量求和，decimal 精确运算）
func (c *Cart) Subtotal() models.Money {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(sum)
}

// ShippingCost 运费：固定金额，免运费优惠码生效时为 0
func (c *Cart) ShippingCost() models.Money {
	if c.applied != nil {
		if _, ok := c.applied.Rule.(FreeShipping); ok {
			return models.Money{}
		}
	}
	return c.shippingFlat
}

// Discount 折扣金额。免运费只作用于运费，这里恒为 0；
// 固定金额折扣封顶小计（折扣本身不会把总额拉成负数）。
func (c *Cart) Discount() models.Money {
	if c.applied == nil {
		return models.Money{}
	}
	return discountFor(c.applied.Rule, c.Subtotal())
}

// Total 应付总额 = max(0, 小计 + 运费 − 折扣)
func (c *Cart) Total() models.Money {
	total := c.Subtotal().Decimal.Add(c.ShippingCost().Decimal).Sub(c.Discount().Decimal)
	if total.IsNegative() {
		return models.Money{}
	}
	return models.NewMoneyFromDecimal(total)
}

// Count 行项数量合计（非去重行数）
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// persist 命令末尾的显式持久化步骤。游客会话（空身份）不落盘；
// 写入失败只记日志降级为会话内状态，绝不回滚内存变更。
func (c *Cart) persist() {
	if c.identityKey == "" {
		return
	}
	if err := kvstore.SaveJSON(c.store, c.cartKey(), c.items); err != nil {
		logger.Warnw("cart_persist_failed", "key", c.cartKey(), "error", err)
	}
	if err := kvstore.SaveJSON(c.store, c.savedKey(), c.saved); err != nil {
		logger.Warnw("cart_saved_persist_failed", "key", c.savedKey(), "error", err)
	}
}
