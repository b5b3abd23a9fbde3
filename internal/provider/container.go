package provider

import (
	"github.com/supply-hub/supply-hub/internal/authz"
	"github.com/supply-hub/supply-hub/internal/cache"
	"github.com/supply-hub/supply-hub/internal/config"
	"github.com/supply-hub/supply-hub/internal/logger"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/queue"
	"github.com/supply-hub/supply-hub/internal/repository"
	"github.com/supply-hub/supply-hub/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo        repository.UserRepository
	SupplierRepo    repository.SupplierRepository
	ProductRepo     repository.ProductRepository
	ProductTypeRepo repository.ProductTypeRepository
	OrderRepo       repository.OrderRepository
	AuditLogRepo    repository.AuditLogRepository
	EmailLogRepo    repository.EmailLogRepository

	// Services
	AuthzService        *authz.Service
	AccessPolicy        *service.AccessPolicy
	AuditService        *service.AuditService
	AuthService         *service.AuthService
	EmailService        *service.EmailService
	NotificationService *service.NotificationService
	OrderService        *service.OrderService
	ReceivingService    *service.ReceivingService
	SupplierService     *service.SupplierService
	ProductService      *service.ProductService
	ProductTypeService  *service.ProductTypeService
	EmployeeService     *service.EmployeeService
	EmailLogService     *service.EmailLogService
	DashboardService    *service.DashboardService
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
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.SupplierRepo = repository.NewSupplierRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ProductTypeRepo = repository.NewProductTypeRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.AuditLogRepo = repository.NewAuditLogRepository(db)
	c.EmailLogRepo = repository.NewEmailLogRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService

	c.AccessPolicy = service.NewAccessPolicy()
	c.AuditService = service.NewAuditService(c.AuditLogRepo)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo, c.AuditService)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.NotificationService = service.NewNotificationService(c.OrderRepo, c.EmailLogRepo, c.EmailService, c.AuditService, c.Config.App.URL)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.SupplierRepo,
		c.ProductRepo,
		c.AuditService,
		c.AccessPolicy,
		c.QueueClient,
		c.NotificationService,
		c.Config.Order.NumberPrefix,
		c.Config.Order.NumberWidth,
	)
	c.ReceivingService = service.NewReceivingService(c.OrderRepo, c.AuditService, c.AccessPolicy)
	c.SupplierService = service.NewSupplierService(c.SupplierRepo, c.AuditService)
	c.ProductService = service.NewProductService(c.ProductRepo, c.SupplierRepo, c.ProductTypeRepo, c.AuditService)
	c.ProductTypeService = service.NewProductTypeService(c.ProductTypeRepo, c.AuditService)
	c.EmployeeService = service.NewEmployeeService(c.UserRepo, c.AuthService, c.AuditService)
	c.EmailLogService = service.NewEmailLogService(c.EmailLogRepo, c.AccessPolicy)
	c.DashboardService = service.NewDashboardService(c.OrderRepo, c.AccessPolicy)
}
