package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                        // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`                        // 订单编号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                               // 用户ID
	CustomerName    string         `gorm:"default:''" json:"customer_name"`                             // 客户姓名
	Email           string         `gorm:"index;not null" json:"email"`                                 // 客户邮箱
	Status          string         `gorm:"index;not null" json:"status"`                                // 订单状态
	Currency        string         `gorm:"not null" json:"currency"`                                    // 币种
	Subtotal        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`       // 商品小计
	ShippingCost    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_cost"`  // 运费
	DiscountAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`       // 优惠金额
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`          // 实付金额
	CouponCode      string         `gorm:"type:varchar(50);default:''" json:"coupon_code"`              // 使用的优惠码
	ShippingAddress string         `gorm:"type:varchar(500);default:''" json:"shipping_address"`        // 收货地址
	Phone           string         `gorm:"type:varchar(40);default:''" json:"phone"`                    // 联系电话
	PaymentMethod   string         `gorm:"type:varchar(40);default:''" json:"payment_method"`           // 支付方式
	TrackingNumber  string         `gorm:"type:varchar(100);default:''" json:"tracking_number"`         // 物流单号
	RefundedAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"refunded_amount"` // 已退款金额
	CanceledAt      *time.Time     `gorm:"index" json:"canceled_at"`                                    // 取消时间
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间

	Items    []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`    // 订单项
	Timeline []OrderTimeline `gorm:"foreignKey:OrderID" json:"timeline,omitempty"` // 状态历史
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单项（下单时的商品快照）
type OrderItem struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID         uint           `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID       uint           `gorm:"index;not null" json:"product_id"`                        // 商品ID
	Name            string         `gorm:"not null" json:"name"`                                    // 商品名称快照
	UnitPrice       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 下单时单价
	Quantity        int            `gorm:"not null" json:"quantity"`                                // 数量
	SelectedColor   string         `gorm:"type:varchar(50);default:''" json:"selected_color"`       // 所选颜色
	SelectedSize    string         `gorm:"type:varchar(50);default:''" json:"selected_size"`        // 所选尺码
	SelectedStorage string         `gorm:"type:varchar(50);default:''" json:"selected_storage"`     // 所选容量
	CreatedAt       time.Time      `json:"created_at"`                                              // 创建时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderTimeline 订单状态历史
type OrderTimeline struct {
	ID        uint      `gorm:"primarykey" json:"id"`                   // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`         // 订单ID
	Status    string    `gorm:"not null" json:"status"`                 // 变更后状态
	Note      string    `gorm:"type:varchar(500);default:''" json:"note"` // 备注
	Admin     string    `gorm:"default:''" json:"admin"`                // 操作人
	CreatedAt time.Time `gorm:"index" json:"created_at"`                // 变更时间
}

// TableName 指定表名
func (OrderTimeline) TableName() string {
	return "order_timelines"
}
