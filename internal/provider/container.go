package provider

import (
	"github.com/trymyday-shop/internal/authz"
	"github.com/trymyday-shop/internal/cache"
	"github.com/trymyday-shop/internal/config"
	"github.com/trymyday-shop/internal/kvstore"
	"github.com/trymyday-shop/internal/logger"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/queue"
	"github.com/trymyday-shop/internal/repository"
	"github.com/trymyday-shop/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// 会话状态存储（购物车/稍后购买/收藏按身份命名空间持久化）
	KVStore      kvstore.Store
	ShippingFlat models.Money

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	WalletRepo  repository.WalletRepository
	ExpenseRepo repository.ExpenseRepository
	FinanceRepo repository.FinanceRepository
	HelpRepo    repository.HelpQuestionRepository
	ReviewRepo  repository.ReviewRepository

	// Services
	AuthzService   *authz.Service
	AuthService    *service.AuthService
	UserService    *service.UserService
	EmailService   *service.EmailService
	CaptchaService *service.CaptchaService
	ProductService *service.ProductService
	OrderService   *service.OrderService
	WalletService  *service.WalletService
	FinanceService *service.FinanceService
	HelpService    *service.HelpService
	ReviewService  *service.ReviewService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:       cfg,
		QueueClient:  queueClient,
		ShippingFlat: models.NewMoneyFromInt(cfg.Shop.ShippingFlat),
	}

	// 1. 初始化会话状态存储
	c.initKVStore()

	// 2. 初始化 Repositories
	c.initRepositories()

	// 3. 初始化 Services
	c.initServices()

	return c
}

// Redis 可用时会话状态走 Redis，否则落到数据库的 kv_entries 表
func (c *Container) initKVStore() {
	if cache.Enabled() {
		c.KVStore = kvstore.NewRedisStore(cache.Client(), c.Config.Redis.Prefix)
		return
	}
	c.KVStore = kvstore.NewGormStore(models.DB)
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.WalletRepo = repository.NewWalletRepository(db)
	c.ExpenseRepo = repository.NewExpenseRepository(db)
	c.FinanceRepo = repository.NewFinanceRepository(db)
	c.HelpRepo = repository.NewHelpQuestionRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.WalletService = service.NewWalletService(c.WalletRepo, c.UserRepo, c.QueueClient)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.WalletService, c.QueueClient)
	c.FinanceService = service.NewFinanceService(c.FinanceRepo, c.ExpenseRepo)
	c.HelpService = service.NewHelpService(c.HelpRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
}
