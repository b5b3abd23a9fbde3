package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/supply-hub/supply-hub/internal/config"
	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/provider"
	"github.com/supply-hub/supply-hub/internal/repository"
	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type orderHandlerFixture struct {
	router   *gin.Engine
	db       *gorm.DB
	employee models.User
	supplier models.Supplier
	product  models.Product
}

func setupOrderHandlerTest(t *testing.T) *orderHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:order_handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
		&models.EmailLog{},
	); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	previous := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = previous })

	employee := models.User{
		Email:        "jane@example.com",
		PasswordHash: "x",
		FirstName:    "Jane",
		LastName:     "Smith",
		Roles:        models.StringArray{constants.RoleUser},
		IsActive:     true,
	}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("创建员工失败: %v", err)
	}
	supplier := models.Supplier{
		Name:         "PackRight B.V.",
		Email:        "orders@packright.nl",
		ArticleGroup: constants.ArticleGroupPackaging,
		IsActive:     true,
	}
	if err := db.Create(&supplier).Error; err != nil {
		t.Fatalf("创建供应商失败: %v", err)
	}
	product := models.Product{
		Name:        "Cardboard Box 40x30x20",
		ArticleCode: "PKG-001",
		SupplierID:  supplier.ID,
		IsActive:    true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	emailLogRepo := repository.NewEmailLogRepository(db)
	auditService := service.NewAuditService(repository.NewAuditLogRepository(db))
	accessPolicy := service.NewAccessPolicy()
	emailService := service.NewEmailService(&config.EmailConfig{Provider: constants.EmailProviderCapture})
	notification := service.NewNotificationService(orderRepo, emailLogRepo, emailService, auditService, "http://localhost:3000")

	handler := New(&provider.Container{
		OrderService:     service.NewOrderService(orderRepo, supplierRepo, productRepo, auditService, accessPolicy, nil, notification, "BEST-", 4),
		ReceivingService: service.NewReceivingService(orderRepo, auditService, accessPolicy),
	})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", employee.ID)
		c.Set("user_roles", []string(employee.Roles))
	})
	router.POST("/api/v1/orders", handler.PlaceOrder)
	router.PATCH("/api/v1/orders/:id/receive", handler.ReceiveGoods)

	return &orderHandlerFixture{
		router:   router,
		db:       db,
		employee: employee,
		supplier: supplier,
		product:  product,
	}
}

func (f *orderHandlerFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("序列化请求体失败: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderResponseShape(t *testing.T) {
	f := setupOrderHandlerTest(t)

	w := f.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"supplierId": f.supplier.ID,
		"items": []gin.H{
			{"productId": f.product.ID, "quantity": 10, "unit": constants.UnitBox},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应体失败: %v", err)
	}
	// 订单字段平铺在顶层，预览链接以 etherealUrl 输出
	if body["orderNumber"] != "BEST-0001" {
		t.Fatalf("响应顶层应含 orderNumber, got: %v", body["orderNumber"])
	}
	etherealURL, _ := body["etherealUrl"].(string)
	if etherealURL == "" {
		t.Fatalf("capture 通道应返回 etherealUrl, body: %s", w.Body.String())
	}
	if _, exists := body["order"]; exists {
		t.Fatalf("订单不应嵌套在 order 键下")
	}
	if _, exists := body["previewUrl"]; exists {
		t.Fatalf("预览链接键应为 etherealUrl")
	}
}

func TestReceiveGoodsBindsOrderItemID(t *testing.T) {
	f := setupOrderHandlerTest(t)

	placed := f.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"supplierId": f.supplier.ID,
		"items": []gin.H{
			{"productId": f.product.ID, "quantity": 10, "unit": constants.UnitBox},
		},
	})
	if placed.Code != http.StatusCreated {
		t.Fatalf("下单失败: %d %s", placed.Code, placed.Body.String())
	}

	var order models.Order
	if err := f.db.First(&order).Error; err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	var item models.OrderItem
	if err := f.db.Where("order_id = ?", order.ID).First(&item).Error; err != nil {
		t.Fatalf("查询订单项失败: %v", err)
	}

	w := f.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/orders/%d/receive", order.ID), gin.H{
		"items": []gin.H{
			{"orderItemId": item.ID, "quantityReceived": 4},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var fresh models.OrderItem
	if err := f.db.First(&fresh, item.ID).Error; err != nil {
		t.Fatalf("查询订单项失败: %v", err)
	}
	if fresh.QuantityReceived == nil || *fresh.QuantityReceived != 4 {
		t.Fatalf("orderItemId 绑定失败, quantity_received=%v", fresh.QuantityReceived)
	}
}

func TestReceiveGoodsTerminalStatesReturnBadRequest(t *testing.T) {
	f := setupOrderHandlerTest(t)

	placed := f.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"supplierId": f.supplier.ID,
		"items": []gin.H{
			{"productId": f.product.ID, "quantity": 10, "unit": constants.UnitBox},
		},
	})
	if placed.Code != http.StatusCreated {
		t.Fatalf("下单失败: %d %s", placed.Code, placed.Body.String())
	}
	var order models.Order
	if err := f.db.First(&order).Error; err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	var item models.OrderItem
	if err := f.db.Where("order_id = ?", order.ID).First(&item).Error; err != nil {
		t.Fatalf("查询订单项失败: %v", err)
	}

	for _, status := range []string{constants.OrderStatusCancelled, constants.OrderStatusReceived} {
		if err := f.db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", status).Error; err != nil {
			t.Fatalf("更新订单状态失败: %v", err)
		}
		w := f.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/orders/%d/receive", order.ID), gin.H{
			"items": []gin.H{
				{"orderItemId": item.ID, "quantityReceived": 1},
			},
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s 订单收货应返回 400, got %d: %s", status, w.Code, w.Body.String())
		}
	}
}
