package storefront

import (
	"errors"
	"testing"

	"github.com/trymyday-shop/internal/kvstore"
	"github.com/trymyday-shop/internal/models"

	"github.com/shopspring/decimal"
)

func newTestCart() (*Cart, *kvstore.MemoryStore) {
	store := kvstore.NewMemoryStore()
	cart := NewCart(store, models.NewMoneyFromInt(1000))
	cart.IdentityChanged("client@example.com")
	return cart, store
}

func lineItem(id uint, price int64) CartLineItem {
	return CartLineItem{
		ProductID: id,
		Name:      "produit",
		UnitPrice: models.NewMoneyFromInt(price),
		Quantity:  1,
		Category:  "Électronique",
		Stock:     10,
	}
}

func assertMoney(t *testing.T, got models.Money, expected int64) {
	t.Helper()
	if !got.Decimal.Equal(decimal.NewFromInt(expected)) {
		t.Fatalf("unexpected amount: got=%s expected=%d", got.String(), expected)
	}
}

func TestAddItemDistinctProducts(t *testing.T) {
	cart, _ := newTestCart()
	for id := uint(1); id <= 5; id++ {
		cart.AddItem(lineItem(id, 1000))
	}
	if cart.Count() != 5 {
		t.Fatalf("unexpected count: %d", cart.Count())
	}
	if len(cart.Items()) != 5 {
		t.Fatalf("unexpected line count: %d", len(cart.Items()))
	}
}

func TestAddItemMergesByProductID(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 5000))
	cart.AddItem(lineItem(1, 5000))

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected single line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if cart.Count() != 2 {
		t.Fatalf("unexpected count: %d", cart.Count())
	}
}

func TestAddItemFirstAddWinsOnVariants(t *testing.T) {
	cart, _ := newTestCart()
	first := lineItem(1, 5000)
	first.SelectedColor = "noir"
	cart.AddItem(first)

	second := lineItem(1, 5000)
	second.SelectedColor = "rouge"
	cart.AddItem(second)

	items := cart.Items()
	if items[0].SelectedColor != "noir" {
		t.Fatalf("expected first-add variant kept, got %s", items[0].SelectedColor)
	}
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 5000))

	if err := cart.UpdateQuantity(1, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := cart.UpdateQuantity(1, -3); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if cart.Items()[0].Quantity != 1 {
		t.Fatalf("state changed on rejected update")
	}

	if err := cart.UpdateQuantity(1, 7); err != nil {
		t.Fatalf("absolute set failed: %v", err)
	}
	if cart.Items()[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", cart.Items()[0].Quantity)
	}
}

func TestRemoveItemMissingIsNoop(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 5000))
	cart.RemoveItem(99)
	if len(cart.Items()) != 1 {
		t.Fatalf("missing-id remove must be a noop")
	}
	cart.RemoveItem(1)
	if len(cart.Items()) != 0 {
		t.Fatalf("remove failed")
	}
}

func TestSaveForLaterRoundTrip(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 5000))
	if err := cart.UpdateQuantity(1, 3); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	cart.AddItem(lineItem(2, 2000))

	cart.SaveForLater(1)
	if len(cart.Items()) != 1 || len(cart.SavedItems()) != 1 {
		t.Fatalf("save for later did not move the line")
	}
	if cart.SavedItems()[0].Quantity != 3 {
		t.Fatalf("quantity lost on save: %d", cart.SavedItems()[0].Quantity)
	}

	cart.MoveToCart(1)
	if len(cart.Items()) != 2 || len(cart.SavedItems()) != 0 {
		t.Fatalf("move to cart did not restore the line")
	}
	for _, item := range cart.Items() {
		if item.ProductID == 1 && item.Quantity != 3 {
			t.Fatalf("round trip lost quantity: %d", item.Quantity)
		}
	}
}

func TestSaveForLaterDisjointLists(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 5000))
	cart.SaveForLater(1)
	cart.SaveForLater(1) // 已不在购物车，静默忽略
	if len(cart.SavedItems()) != 1 {
		t.Fatalf("duplicate saved line")
	}
	cart.RemoveSavedItem(1)
	if len(cart.SavedItems()) != 0 {
		t.Fatalf("remove saved failed")
	}
}

func TestClearKeepsSavedItemsDropsCoupon(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 5000))
	cart.AddItem(lineItem(2, 2000))
	cart.SaveForLater(2)
	cart.ApplyCoupon("WELCOME10")

	cart.Clear()
	if len(cart.Items()) != 0 {
		t.Fatalf("clear did not empty lines")
	}
	if len(cart.SavedItems()) != 1 {
		t.Fatalf("clear must not touch saved items")
	}
	if cart.AppliedCoupon() != nil {
		t.Fatalf("clear must drop the applied coupon")
	}
}

func TestApplyCouponCaseInsensitive(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 10000))

	lower := cart.ApplyCoupon("welcome10")
	if !lower.OK || lower.Coupon == nil || lower.Coupon.Code != "WELCOME10" {
		t.Fatalf("lowercase code rejected: %+v", lower)
	}
	lowerDiscount := cart.Discount()

	upper := cart.ApplyCoupon("WELCOME10")
	if !upper.OK {
		t.Fatalf("uppercase code rejected: %+v", upper)
	}
	if !cart.Discount().Decimal.Equal(lowerDiscount.Decimal) {
		t.Fatalf("case changed pricing")
	}
}

func TestApplyCouponUnknownLeavesStateUnchanged(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 10000))
	cart.ApplyCoupon("SAVE20")

	result := cart.ApplyCoupon("NOPE123")
	if result.OK {
		t.Fatalf("unknown code accepted")
	}
	if result.Message != "Code promo invalide" {
		t.Fatalf("unexpected message: %s", result.Message)
	}
	if cart.AppliedCoupon() == nil || cart.AppliedCoupon().Code != "SAVE20" {
		t.Fatalf("previous coupon lost on failed apply")
	}
}

func TestApplyCouponOverwritesNotStacks(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 10000))
	cart.ApplyCoupon("WELCOME10")
	cart.ApplyCoupon("SAVE20")

	if cart.AppliedCoupon().Code != "SAVE20" {
		t.Fatalf("expected overwrite, got %s", cart.AppliedCoupon().Code)
	}
	assertMoney(t, cart.Discount(), 2000)
}

func TestFixedCouponCappedAtSubtotal(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 10000))
	cart.ApplyCoupon("FIXED50") // 32 500 > 小计 10 000

	assertMoney(t, cart.Discount(), 10000)
	// 总额 = max(0, 10000 + 1000 − 10000) = 运费
	assertMoney(t, cart.Total(), 1000)
	if cart.Total().Decimal.IsNegative() {
		t.Fatalf("total went negative")
	}
}

func TestPricingScenario(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 5000))
	cart.AddItem(lineItem(1, 5000))

	if cart.Count() != 2 {
		t.Fatalf("unexpected count: %d", cart.Count())
	}
	assertMoney(t, cart.Subtotal(), 10000)

	cart.ApplyCoupon("SAVE20")
	assertMoney(t, cart.Discount(), 2000)
	assertMoney(t, cart.ShippingCost(), 1000)
	assertMoney(t, cart.Total(), 9000)

	cart.RemoveCoupon()
	assertMoney(t, cart.Total(), 11000)
}

func TestFreeShippingZeroesShippingOnly(t *testing.T) {
	cart, _ := newTestCart()
	cart.AddItem(lineItem(1, 8000))
	cart.ApplyCoupon("FREESHIP")

	assertMoney(t, cart.ShippingCost(), 0)
	assertMoney(t, cart.Discount(), 0)
	assertMoney(t, cart.Total(), 8000)
}

func TestEmptyCartPricing(t *testing.T) {
	cart, _ := newTestCart()
	assertMoney(t, cart.Subtotal(), 0)
	assertMoney(t, cart.Total(), 1000) // 空购物车仍计运费；UI 不会对空车结账
	cart.ApplyCoupon("FIXED50")
	assertMoney(t, cart.Discount(), 0)
	if cart.Total().Decimal.IsNegative() {
		t.Fatalf("total went negative on empty cart")
	}
}

func TestIdentitySwitchReloadsPersistedState(t *testing.T) {
	store := kvstore.NewMemoryStore()
	cart := NewCart(store, models.NewMoneyFromInt(1000))

	cart.IdentityChanged("a@example.com")
	cart.AddItem(lineItem(1, 5000))
	cart.AddItem(lineItem(2, 3000))
	cart.ApplyCoupon("SAVE20")

	// 登出：内存复位，持久数据保留
	cart.IdentityChanged("")
	if cart.Count() != 0 {
		t.Fatalf("logout must empty the working cart")
	}

	// 重新登录：恢复两行；优惠码不持久化，复位为空
	cart.IdentityChanged("a@example.com")
	if cart.Count() != 2 {
		t.Fatalf("persisted cart not recovered: count=%d", cart.Count())
	}
	if cart.AppliedCoupon() != nil {
		t.Fatalf("coupon must not survive a reload")
	}

	// 其他身份看不到 A 的状态
	cart.IdentityChanged("b@example.com")
	if cart.Count() != 0 {
		t.Fatalf("identity namespaces leaked")
	}
}

func TestGuestMutationsNotPersisted(t *testing.T) {
	store := kvstore.NewMemoryStore()
	cart := NewCart(store, models.NewMoneyFromInt(1000))
	cart.IdentityChanged("")
	cart.AddItem(lineItem(1, 5000))

	if cart.Count() != 1 {
		t.Fatalf("guest cart must work in memory")
	}
	if _, ok, _ := store.Get("cart_"); ok {
		t.Fatalf("guest state must not reach the store")
	}
}

// failingStore 写入永远失败的存根（模拟存储配额/禁用）
type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, nil }
func (failingStore) Set(string, string) error         { return errors.New("quota exceeded") }
func (failingStore) Delete(string) error              { return errors.New("quota exceeded") }

func TestPersistFailureDoesNotRollBack(t *testing.T) {
	cart := NewCart(failingStore{}, models.NewMoneyFromInt(1000))
	cart.IdentityChanged("a@example.com")

	cart.AddItem(lineItem(1, 5000))
	if cart.Count() != 1 {
		t.Fatalf("in-memory mutation must survive a failed persist")
	}
	if err := cart.UpdateQuantity(1, 4); err != nil {
		t.Fatalf("command failed because of persistence: %v", err)
	}
	if cart.Items()[0].Quantity != 4 {
		t.Fatalf("mutation lost")
	}
}
