package storefront

import (
	"fmt"
	"strings"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/models"

	"github.com/shopspring/decimal"
)

// CouponRule 优惠规则（密封和类型：百分比/固定金额/免运费）
type CouponRule interface {
	couponRule()
	// Kind 返回规则类型标识
	Kind() string
}

// Percentage 按小计百分比折扣
type Percentage struct {
	Points int64 // 折扣百分点（10 表示 10%）
}

func (Percentage) couponRule() {}

// Kind 返回规则类型标识
func (Percentage) Kind() string { return constants.CouponKindPercentage }

// FixedAmount 固定金额折扣
type FixedAmount struct {
	Amount models.Money // 折扣金额
}

func (FixedAmount) couponRule() {}

// Kind 返回规则类型标识
func (FixedAmount) Kind() string { return constants.CouponKindFixed }

// FreeShipping 免运费（只作用于运费，不计入折扣行）
type FreeShipping struct{}

func (FreeShipping) couponRule() {}

// Kind 返回规则类型标识
func (FreeShipping) Kind() string { return constants.CouponKindFreeShipping }

// Coupon 优惠券（固定注册表中的条目，不持久化）
type Coupon struct {
	Code        string     `json:"code"`
	Rule        CouponRule `json:"-"`
	Description string     `json:"description"`
}

// couponRegistry 内置优惠码注册表（编译期固定，无创建入口）
var couponRegistry = map[string]Coupon{
	"WELCOME10": {Code: "WELCOME10", Rule: Percentage{Points: 10}, Description: "Réduction de 10%"},
	"SAVE20":    {Code: "SAVE20", Rule: Percentage{Points: 20}, Description: "Réduction de 20%"},
	"FREESHIP":  {Code: "FREESHIP", Rule: FreeShipping{}, Description: "Livraison gratuite"},
	"FIXED50":   {Code: "FIXED50", Rule: FixedAmount{Amount: models.NewMoneyFromInt(32500)}, Description: "Réduction de 32 500 FCFA"},
}

// LookupCoupon 按优惠码查询（大小写不敏感）
func LookupCoupon(code string) (Coupon, bool) {
	coupon, ok := couponRegistry[strings.ToUpper(strings.TrimSpace(code))]
	return coupon, ok
}

// AvailableCoupons 返回注册表中全部优惠券
func AvailableCoupons() []Coupon {
	coupons := make([]Coupon, 0, len(couponRegistry))
	for _, code := range []string{"WELCOME10", "SAVE20", "FREESHIP", "FIXED50"} {
		coupons = append(coupons, couponRegistry[code])
	}
	return coupons
}

// CouponResult 应用优惠码的结果（带用户可读提示）
type CouponResult struct {
	OK      bool    `json:"ok"`
	Coupon  *Coupon `json:"coupon,omitempty"`
	Message string  `json:"message"`
}

func couponAppliedResult(coupon Coupon) CouponResult {
	return CouponResult{
		OK:      true,
		Coupon:  &coupon,
		Message: fmt.Sprintf("Coupon %q appliqué avec succès!", coupon.Code),
	}
}

func couponInvalidResult() CouponResult {
	return CouponResult{OK: false, Message: "Code promo invalide"}
}

// discountFor 按规则计算折扣金额；免运费不产生折扣行，固定金额折扣封顶小计
func discountFor(rule CouponRule, subtotal models.Money) models.Money {
	switch r := rule.(type) {
	case Percentage:
		percent := decimal.NewFromInt(r.Points).Div(decimal.NewFromInt(100))
		return models.NewMoneyFromDecimal(subtotal.Decimal.Mul(percent))
	case FixedAmount:
		if r.Amount.Decimal.GreaterThan(subtotal.Decimal) {
			return models.NewMoneyFromDecimal(subtotal.Decimal)
		}
		return r.Amount
	case FreeShipping:
		return models.Money{}
	default:
		return models.Money{}
	}
}
