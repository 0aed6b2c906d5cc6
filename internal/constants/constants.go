package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusPreparing  = "preparing"
	OrderStatusShipping   = "shipping"
	OrderStatusDelivered  = "delivered"
	OrderStatusCanceled   = "canceled"
	OrderStatusRefunded   = "refunded"
)

// 支付方式常量
const (
	PaymentMethodWallet   = "wallet"
	PaymentMethodDelivery = "cash_on_delivery"
)

// 钱包交易类型常量
const (
	WalletTxnTypeOrderPay    = "order_pay"
	WalletTxnTypeOrderRefund = "order_refund"
	WalletTxnTypeAdminCredit = "admin_credit"
	WalletTxnTypeTransfer    = "transfer"
)

// 钱包交易方向常量
const (
	WalletTxnDirectionIn  = "in"
	WalletTxnDirectionOut = "out"
)

// 用户角色常量
const (
	UserRoleClient  = "client"
	UserRoleManager = "manager"
	UserRoleAdmin   = "admin"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 优惠券类型常量
const (
	CouponKindPercentage   = "percentage"
	CouponKindFixed        = "fixed"
	CouponKindFreeShipping = "free_shipping"
)

// 帮助中心问题状态常量
const (
	HelpQuestionStatusPending  = "pending"
	HelpQuestionStatusApproved = "approved"
	HelpQuestionStatusRejected = "rejected"
)

// 会话存储键前缀常量（按身份命名空间隔离）
const (
	StorageKeyCart       = "cart"
	StorageKeySavedItems = "savedItems"
	StorageKeyFavorites  = "favorites"
	StorageKeyUser       = "user"
)

// 异步队列常量
const (
	QueueDefault          = "default"
	TaskOrderStatusEmail  = "email:order_status"
	TaskWalletCreditEmail = "email:wallet_credit"
)

// 店铺货币常量（FCFA 无小数位）
const (
	ShopCurrency = "XOF"
)

// 管理端经理角色可见的钱包流水窗口（天）
const (
	ManagerTxnWindowDays = 30
)
