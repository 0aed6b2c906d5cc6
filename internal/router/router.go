package router

import (
	"fmt"
	"strings"

	"github.com/trymyday-shop/internal/cache"
	"github.com/trymyday-shop/internal/config"
	adminhandlers "github.com/trymyday-shop/internal/http/handlers/admin"
	publichandlers "github.com/trymyday-shop/internal/http/handlers/public"
	"github.com/trymyday-shop/internal/logger"
	"github.com/trymyday-shop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "tmd"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（商品图片）
	r.Static("/uploads", "./uploads")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/products/:id/reviews", publicHandler.ListProductReviews)
			public.GET("/coupons", publicHandler.ListCoupons)
			public.GET("/help", publicHandler.ListHelp)
			public.GET("/captcha/image", publicHandler.GetCaptcha)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(JWTAuthMiddleware(c.AuthService))
		{
			user.GET("/me", publicHandler.Me)
			user.PUT("/me/profile", publicHandler.UpdateProfile)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/quantity", publicHandler.UpdateCartQuantity)
			user.DELETE("/cart/items", publicHandler.RemoveCartItem)
			user.POST("/cart/clear", publicHandler.ClearCart)
			user.POST("/cart/save-for-later", publicHandler.SaveForLater)
			user.POST("/cart/move-to-cart", publicHandler.MoveToCart)
			user.DELETE("/cart/saved-items", publicHandler.RemoveSavedItem)
			user.POST("/cart/coupon", publicHandler.ApplyCoupon)
			user.DELETE("/cart/coupon", publicHandler.RemoveCoupon)

			user.GET("/favorites", publicHandler.ListFavorites)
			user.POST("/favorites/toggle", publicHandler.ToggleFavorite)
			user.POST("/favorites/clear", publicHandler.ClearFavorites)

			user.POST("/orders", publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListMyOrders)
			user.GET("/orders/:id", publicHandler.GetMyOrder)
			user.POST("/orders/:id/cancel", publicHandler.CancelMyOrder)

			user.GET("/wallet", publicHandler.GetMyWallet)
			user.GET("/wallet/transactions", publicHandler.ListMyTransactions)
			user.POST("/wallet/transfer", publicHandler.Transfer)

			user.POST("/products/:id/reviews", publicHandler.SubmitReview)
			user.POST("/help/questions", publicHandler.SubmitQuestion)
		}

		// 管理端接口（需鉴权 + RBAC）
		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(c.AuthService), RBACMiddleware(c.AuthzService))
		{
			// 商品管理
			admin.GET("/products", adminHandler.ListProducts)
			admin.GET("/products/:id", adminHandler.GetProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			// 订单管理
			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

			// 用户管理
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PUT("/users/:id/status", adminHandler.SetUserStatus)
			admin.PUT("/users/:id/role", adminHandler.SetUserRole)

			// 钱包管理
			admin.GET("/wallet/transactions", adminHandler.ListWalletTransactions)
			admin.POST("/wallet/credit", adminHandler.CreditWallet)

			// 财务
			admin.GET("/finance/summary", adminHandler.GetFinanceSummary)
			admin.GET("/expenses", adminHandler.ListExpenses)
			admin.POST("/expenses", adminHandler.CreateExpense)
			admin.PUT("/expenses/:id", adminHandler.UpdateExpense)
			admin.DELETE("/expenses/:id", adminHandler.DeleteExpense)

			// 帮助中心
			admin.GET("/help-questions", adminHandler.ListHelpQuestions)
			admin.PUT("/help-questions/:id/answer", adminHandler.AnswerQuestion)
			admin.PUT("/help-questions/:id/reject", adminHandler.RejectQuestion)
			admin.DELETE("/help-questions/:id", adminHandler.DeleteHelpQuestion)

			// 评价管理
			admin.DELETE("/reviews/:id", adminHandler.DeleteReview)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
