package router

import (
	"fmt"
	"strings"

	"github.com/supply-hub/supply-hub/internal/cache"
	"github.com/supply-hub/supply-hub/internal/config"
	adminhandlers "github.com/supply-hub/supply-hub/internal/http/handlers/admin"
	publichandlers "github.com/supply-hub/supply-hub/internal/http/handlers/public"
	"github.com/supply-hub/supply-hub/internal/logger"
	"github.com/supply-hub/supply-hub/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按员工侧/管理端分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sh"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "Too many login attempts",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 登录接口（无需鉴权）
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// 员工接口（需鉴权）
		user := apiV1.Group("")
		user.Use(JWTAuthMiddleware(c.AuthService, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.POST("/orders", publicHandler.PlaceOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.PATCH("/orders/:id/receive", publicHandler.ReceiveGoods)
			user.GET("/suppliers", publicHandler.ListSuppliers)
			user.GET("/products", publicHandler.ListProducts)
			user.GET("/product-types", publicHandler.ListProductTypes)
			user.GET("/emails", publicHandler.ListEmails)
			user.GET("/emails/:id", publicHandler.GetEmail)
			user.GET("/dashboard", publicHandler.GetDashboard)
		}

		// 管理端接口（需鉴权 + RBAC）
		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(c.AuthService, c.UserRepo), AdminRBACMiddleware(c.AuthzService))
		{
			// 员工管理
			admin.GET("/employees", adminHandler.ListEmployees)
			admin.GET("/employees/:id", adminHandler.GetEmployee)
			admin.POST("/employees", adminHandler.CreateEmployee)
			admin.PUT("/employees/:id", adminHandler.UpdateEmployee)
			admin.DELETE("/employees/:id", adminHandler.DeleteEmployee)

			// 供应商管理
			admin.GET("/suppliers", adminHandler.ListSuppliers)
			admin.GET("/suppliers/:id", adminHandler.GetSupplier)
			admin.POST("/suppliers", adminHandler.CreateSupplier)
			admin.PUT("/suppliers/:id", adminHandler.UpdateSupplier)
			admin.DELETE("/suppliers/:id", adminHandler.DeleteSupplier)

			// 商品管理
			admin.GET("/products", adminHandler.ListProducts)
			admin.GET("/products/:id", adminHandler.GetProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			// 商品类型管理
			admin.GET("/product-types", adminHandler.ListProductTypes)
			admin.GET("/product-types/:id", adminHandler.GetProductType)
			admin.POST("/product-types", adminHandler.CreateProductType)
			admin.PUT("/product-types/:id", adminHandler.UpdateProductType)
			admin.DELETE("/product-types/:id", adminHandler.DeleteProductType)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
