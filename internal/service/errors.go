package service

import "errors"

// 业务错误定义，由 handler 层映射为 HTTP 响应
var (
	ErrInvalidCredentials      = errors.New("邮箱或密码错误")
	ErrEmailAlreadyRegistered  = errors.New("邮箱已被注册")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserDisabled            = errors.New("用户已被禁用")
	ErrUserStatusInvalid       = errors.New("用户状态不合法")
	ErrWeakPassword            = errors.New("密码不符合安全策略")
	ErrPermissionDenied        = errors.New("没有操作权限")
	ErrProductNotFound         = errors.New("商品不存在")
	ErrProductUnavailable      = errors.New("商品已下架")
	ErrOrderNotFound           = errors.New("订单不存在")
	ErrOrderEmptyCart          = errors.New("购物车为空，无法下单")
	ErrOrderStatusInvalid      = errors.New("订单状态不允许该操作")
	ErrOrderNotCancelable      = errors.New("订单当前状态不可取消")
	ErrWalletAccountNotFound   = errors.New("钱包账户不存在")
	ErrWalletInsufficientFunds = errors.New("钱包余额不足")
	ErrWalletInvalidAmount     = errors.New("金额必须大于零")
	ErrExpenseNotFound         = errors.New("支出记录不存在")
	ErrHelpQuestionNotFound    = errors.New("帮助问题不存在")
	ErrHelpQuestionEmpty       = errors.New("问题内容不能为空")
	ErrReviewNotFound          = errors.New("评价不存在")
	ErrReviewInvalidRating     = errors.New("评分必须在 1 到 5 之间")
	ErrCaptchaInvalid          = errors.New("验证码错误")
	ErrEmailServiceDisabled    = errors.New("邮件服务未启用")
	ErrEmailNotConfigured      = errors.New("邮件服务未配置")
	ErrInvalidEmail            = errors.New("邮箱地址无效")
)
