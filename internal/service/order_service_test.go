package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.ProductType{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	// 下单走 models.DB.Transaction
	previous := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = previous })

	orderRepo := repository.NewOrderRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	auditService := NewAuditService(repository.NewAuditLogRepository(db))
	svc := NewOrderService(orderRepo, supplierRepo, productRepo, auditService, NewAccessPolicy(), nil, nil, "BEST-", 4)
	return svc, db
}

func seedOrderFixtures(t *testing.T, db *gorm.DB) (employee models.User, supplier models.Supplier, product models.Product) {
	t.Helper()
	employee = models.User{
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
	supplier = models.Supplier{
		Name:         "PackRight B.V.",
		Email:        "orders@packright.nl",
		ArticleGroup: constants.ArticleGroupPackaging,
		IsActive:     true,
	}
	if err := db.Create(&supplier).Error; err != nil {
		t.Fatalf("创建供应商失败: %v", err)
	}
	product = models.Product{
		Name:        "Cardboard Box 40x30x20",
		ArticleCode: "PKG-001",
		SupplierID:  supplier.ID,
		IsActive:    true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}
	return employee, supplier, product
}

func TestPlaceOrderAssignsSequentialNumbers(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	employee, supplier, product := seedOrderFixtures(t, db)

	input := PlaceOrderInput{
		EmployeeID: employee.ID,
		SupplierID: supplier.ID,
		Items: []PlaceOrderItem{
			{ProductID: product.ID, Quantity: 10, Unit: constants.UnitBox},
		},
	}

	first, err := svc.PlaceOrder(input)
	if err != nil {
		t.Fatalf("首次下单失败: %v", err)
	}
	if first.Order.OrderNumber != "BEST-0001" {
		t.Fatalf("expected BEST-0001, got %s", first.Order.OrderNumber)
	}
	if first.Order.Status != constants.OrderStatusPending {
		t.Fatalf("新订单状态应为 PENDING, got %s", first.Order.Status)
	}

	second, err := svc.PlaceOrder(input)
	if err != nil {
		t.Fatalf("再次下单失败: %v", err)
	}
	if second.Order.OrderNumber != "BEST-0002" {
		t.Fatalf("expected BEST-0002, got %s", second.Order.OrderNumber)
	}
}

func TestPlaceOrderWritesAuditRecord(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	employee, supplier, product := seedOrderFixtures(t, db)

	result, err := svc.PlaceOrder(PlaceOrderInput{
		EmployeeID: employee.ID,
		SupplierID: supplier.ID,
		Notes:      "urgent",
		Items: []PlaceOrderItem{
			{ProductID: product.ID, Quantity: 5, Unit: constants.UnitPiece},
		},
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}

	var audit models.AuditLog
	if err := db.Where("action = ?", constants.AuditActionOrderPlaced).First(&audit).Error; err != nil {
		t.Fatalf("未找到下单审计记录: %v", err)
	}
	if audit.UserID != employee.ID {
		t.Fatalf("审计记录操作人应为 %d, got %d", employee.ID, audit.UserID)
	}
	if audit.EntityID != fmt.Sprintf("%d", result.Order.ID) {
		t.Fatalf("审计记录实体ID应为 %d, got %s", result.Order.ID, audit.EntityID)
	}
}

func TestPlaceOrderRejectsSupplierMismatch(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	employee, _, _ := seedOrderFixtures(t, db)

	other := models.Supplier{
		Name:         "LabelPro International",
		Email:        "info@labelpro.com",
		ArticleGroup: constants.ArticleGroupLabels,
		IsActive:     true,
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("创建供应商失败: %v", err)
	}
	foreign := models.Product{
		Name:        "Shipping Label A6",
		ArticleCode: "LBL-001",
		SupplierID:  other.ID,
		IsActive:    true,
	}
	if err := db.Create(&foreign).Error; err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}

	// 用第一家供应商下单，但挂另一家的商品
	var supplier models.Supplier
	if err := db.Where("name = ?", "PackRight B.V.").First(&supplier).Error; err != nil {
		t.Fatalf("查询供应商失败: %v", err)
	}
	_, err := svc.PlaceOrder(PlaceOrderInput{
		EmployeeID: employee.ID,
		SupplierID: supplier.ID,
		Items: []PlaceOrderItem{
			{ProductID: foreign.ID, Quantity: 1, Unit: constants.UnitBox},
		},
	})
	if !errors.Is(err, ErrProductSupplierMismatch) {
		t.Fatalf("expected ErrProductSupplierMismatch, got: %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("统计订单失败: %v", err)
	}
	if count != 0 {
		t.Fatalf("校验失败时不应落订单, got %d rows", count)
	}
}

func TestPlaceOrderRejectsInactiveSupplier(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	employee, supplier, product := seedOrderFixtures(t, db)

	if err := db.Model(&models.Supplier{}).Where("id = ?", supplier.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("停用供应商失败: %v", err)
	}

	_, err := svc.PlaceOrder(PlaceOrderInput{
		EmployeeID: employee.ID,
		SupplierID: supplier.ID,
		Items: []PlaceOrderItem{
			{ProductID: product.ID, Quantity: 1, Unit: constants.UnitBox},
		},
	})
	if !errors.Is(err, ErrSupplierInactive) {
		t.Fatalf("expected ErrSupplierInactive, got: %v", err)
	}
}

func TestPlaceOrderValidatesItems(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	employee, supplier, product := seedOrderFixtures(t, db)

	if _, err := svc.PlaceOrder(PlaceOrderInput{
		EmployeeID: employee.ID,
		SupplierID: supplier.ID,
	}); !errors.Is(err, ErrOrderItemsRequired) {
		t.Fatalf("空订单项应报 ErrOrderItemsRequired, got: %v", err)
	}

	if _, err := svc.PlaceOrder(PlaceOrderInput{
		EmployeeID: employee.ID,
		SupplierID: supplier.ID,
		Items: []PlaceOrderItem{
			{ProductID: product.ID, Quantity: 0, Unit: constants.UnitBox},
		},
	}); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("数量为 0 应报 ErrInvalidOrderItem, got: %v", err)
	}

	if _, err := svc.PlaceOrder(PlaceOrderInput{
		EmployeeID: employee.ID,
		SupplierID: supplier.ID,
		Items: []PlaceOrderItem{
			{ProductID: product.ID, Quantity: 1, Unit: "CRATE"},
		},
	}); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("非法单位应报 ErrInvalidOrderItem, got: %v", err)
	}
}

func TestListOrdersRejectsUnknownStatus(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	employee, _, _ := seedOrderFixtures(t, db)

	actor := Actor{UserID: employee.ID, Roles: []string{constants.RoleUser}}
	_, _, err := svc.ListOrders(actor, repository.OrderListFilter{Status: "SHIPPED"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestListOrdersScopesToOwner(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	employee, supplier, product := seedOrderFixtures(t, db)

	other := models.User{
		Email:        "bob@example.com",
		PasswordHash: "x",
		FirstName:    "Bob",
		LastName:     "Jones",
		Roles:        models.StringArray{constants.RoleUser},
		IsActive:     true,
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("创建员工失败: %v", err)
	}

	for _, uid := range []uint{employee.ID, other.ID} {
		if _, err := svc.PlaceOrder(PlaceOrderInput{
			EmployeeID: uid,
			SupplierID: supplier.ID,
			Items: []PlaceOrderItem{
				{ProductID: product.ID, Quantity: 2, Unit: constants.UnitBox},
			},
		}); err != nil {
			t.Fatalf("下单失败: %v", err)
		}
	}

	orders, total, err := svc.ListOrders(Actor{UserID: employee.ID, Roles: []string{constants.RoleUser}}, repository.OrderListFilter{})
	if err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("普通员工应只看到自己的订单, got total=%d len=%d", total, len(orders))
	}
	if orders[0].EmployeeID != employee.ID {
		t.Fatalf("返回了他人订单: employee_id=%d", orders[0].EmployeeID)
	}

	_, adminTotal, err := svc.ListOrders(Actor{UserID: employee.ID, Roles: []string{constants.RoleAdmin}}, repository.OrderListFilter{})
	if err != nil {
		t.Fatalf("管理员查询订单失败: %v", err)
	}
	if adminTotal != 2 {
		t.Fatalf("管理员应看到全部订单, got %d", adminTotal)
	}
}

func TestGetOrderForbiddenForForeignOrder(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	employee, supplier, product := seedOrderFixtures(t, db)

	result, err := svc.PlaceOrder(PlaceOrderInput{
		EmployeeID: employee.ID,
		SupplierID: supplier.ID,
		Items: []PlaceOrderItem{
			{ProductID: product.ID, Quantity: 3, Unit: constants.UnitPallet},
		},
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}

	stranger := Actor{UserID: employee.ID + 100, Roles: []string{constants.RoleUser}}
	if _, err := svc.GetOrder(stranger, result.Order.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}

	if _, err := svc.GetOrder(Actor{UserID: employee.ID, Roles: []string{constants.RoleUser}}, result.Order.ID); err != nil {
		t.Fatalf("下单人应能查看自己的订单: %v", err)
	}
}
