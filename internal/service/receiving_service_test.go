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

func setupReceivingServiceTest(t *testing.T) (*ReceivingService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:receiving_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
	); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	previous := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = previous })

	orderRepo := repository.NewOrderRepository(db)
	auditService := NewAuditService(repository.NewAuditLogRepository(db))
	return NewReceivingService(orderRepo, auditService, NewAccessPolicy()), db
}

// seedReceivableOrder 造一张含两个订单项的待收货订单
func seedReceivableOrder(t *testing.T, db *gorm.DB, employeeID uint) (models.Order, []models.OrderItem) {
	t.Helper()
	supplier := models.Supplier{
		Name:         "TapeMasters GmbH",
		Email:        "bestellungen@tapemasters.de",
		ArticleGroup: constants.ArticleGroupTape,
		IsActive:     true,
	}
	if err := db.Create(&supplier).Error; err != nil {
		t.Fatalf("创建供应商失败: %v", err)
	}
	products := []models.Product{
		{Name: "Packing Tape 50mm x 66m", ArticleCode: "TPE-001", SupplierID: supplier.ID, IsActive: true},
		{Name: "Printed Tape FRAGILE", ArticleCode: "TPE-002", SupplierID: supplier.ID, IsActive: true},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}
	order := models.Order{
		OrderNumber: "BEST-0001",
		EmployeeID:  employeeID,
		SupplierID:  supplier.ID,
		Status:      constants.OrderStatusPending,
		OrderDate:   time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}
	items := []models.OrderItem{
		{OrderID: order.ID, ProductID: products[0].ID, Quantity: 10, Unit: constants.UnitBox},
		{OrderID: order.ID, ProductID: products[1].ID, Quantity: 4, Unit: constants.UnitBox},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("创建订单项失败: %v", err)
	}
	return order, items
}

func TestReceiveGoodsPartial(t *testing.T) {
	svc, db := setupReceivingServiceTest(t)
	order, items := seedReceivableOrder(t, db, 1)
	actor := Actor{UserID: 1, Roles: []string{constants.RoleUser}}

	updated, err := svc.ReceiveGoods(actor, ReceiveGoodsInput{
		OrderID: order.ID,
		Items: []ReceiveGoodsItem{
			{ItemID: items[0].ID, QuantityReceived: 6},
		},
	})
	if err != nil {
		t.Fatalf("收货失败: %v", err)
	}
	if updated.Status != constants.OrderStatusPartiallyReceived {
		t.Fatalf("expected PARTIALLY_RECEIVED, got %s", updated.Status)
	}

	var item models.OrderItem
	if err := db.First(&item, items[0].ID).Error; err != nil {
		t.Fatalf("查询订单项失败: %v", err)
	}
	if item.QuantityReceived == nil || *item.QuantityReceived != 6 {
		t.Fatalf("expected quantity_received=6, got %v", item.QuantityReceived)
	}
	if item.ReceivedByID == nil || *item.ReceivedByID != actor.UserID {
		t.Fatalf("收货人应为 %d, got %v", actor.UserID, item.ReceivedByID)
	}
}

func TestReceiveGoodsFullClosesOrder(t *testing.T) {
	svc, db := setupReceivingServiceTest(t)
	order, items := seedReceivableOrder(t, db, 1)
	actor := Actor{UserID: 1, Roles: []string{constants.RoleUser}}

	updated, err := svc.ReceiveGoods(actor, ReceiveGoodsInput{
		OrderID: order.ID,
		Items: []ReceiveGoodsItem{
			{ItemID: items[0].ID, QuantityReceived: 10},
			{ItemID: items[1].ID, QuantityReceived: 4},
		},
	})
	if err != nil {
		t.Fatalf("收货失败: %v", err)
	}
	if updated.Status != constants.OrderStatusReceived {
		t.Fatalf("expected RECEIVED, got %s", updated.Status)
	}

	var audit models.AuditLog
	if err := db.Where("action = ?", constants.AuditActionGoodsReceived).First(&audit).Error; err != nil {
		t.Fatalf("未找到收货审计记录: %v", err)
	}
}

func TestReceiveGoodsZeroQuantityIsNoop(t *testing.T) {
	svc, db := setupReceivingServiceTest(t)
	order, items := seedReceivableOrder(t, db, 1)
	actor := Actor{UserID: 1, Roles: []string{constants.RoleUser}}

	updated, err := svc.ReceiveGoods(actor, ReceiveGoodsInput{
		OrderID: order.ID,
		Items: []ReceiveGoodsItem{
			{ItemID: items[0].ID, QuantityReceived: 0},
		},
	})
	if err != nil {
		t.Fatalf("收货失败: %v", err)
	}
	if updated.Status != constants.OrderStatusPending {
		t.Fatalf("0 数量提交不应改变状态, got %s", updated.Status)
	}

	var item models.OrderItem
	if err := db.First(&item, items[0].ID).Error; err != nil {
		t.Fatalf("查询订单项失败: %v", err)
	}
	if item.QuantityReceived != nil {
		t.Fatalf("0 数量提交不应写入收货数量, got %v", *item.QuantityReceived)
	}
}

func TestReceiveGoodsIsIdempotent(t *testing.T) {
	svc, db := setupReceivingServiceTest(t)
	order, items := seedReceivableOrder(t, db, 1)
	actor := Actor{UserID: 1, Roles: []string{constants.RoleUser}}

	input := ReceiveGoodsInput{
		OrderID: order.ID,
		Items: []ReceiveGoodsItem{
			{ItemID: items[0].ID, QuantityReceived: 6},
		},
	}
	if _, err := svc.ReceiveGoods(actor, input); err != nil {
		t.Fatalf("首次收货失败: %v", err)
	}
	// 收货数量是绝对值，重复提交同一批数量结果不变
	updated, err := svc.ReceiveGoods(actor, input)
	if err != nil {
		t.Fatalf("重复收货失败: %v", err)
	}
	if updated.Status != constants.OrderStatusPartiallyReceived {
		t.Fatalf("expected PARTIALLY_RECEIVED, got %s", updated.Status)
	}

	var item models.OrderItem
	if err := db.First(&item, items[0].ID).Error; err != nil {
		t.Fatalf("查询订单项失败: %v", err)
	}
	if item.QuantityReceived == nil || *item.QuantityReceived != 6 {
		t.Fatalf("重复提交后应仍为 6, got %v", item.QuantityReceived)
	}
}

func TestReceiveGoodsRejectsForeignItem(t *testing.T) {
	svc, db := setupReceivingServiceTest(t)
	order, items := seedReceivableOrder(t, db, 1)
	actor := Actor{UserID: 1, Roles: []string{constants.RoleUser}}

	// 另一张订单的订单项
	other := models.Order{
		OrderNumber: "BEST-0002",
		EmployeeID:  1,
		SupplierID:  order.SupplierID,
		Status:      constants.OrderStatusPending,
		OrderDate:   time.Now(),
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}
	foreignItem := models.OrderItem{OrderID: other.ID, ProductID: items[0].ProductID, Quantity: 1, Unit: constants.UnitBox}
	if err := db.Create(&foreignItem).Error; err != nil {
		t.Fatalf("创建订单项失败: %v", err)
	}

	_, err := svc.ReceiveGoods(actor, ReceiveGoodsInput{
		OrderID: order.ID,
		Items: []ReceiveGoodsItem{
			{ItemID: items[0].ID, QuantityReceived: 5},
			{ItemID: foreignItem.ID, QuantityReceived: 1},
		},
	})
	if !errors.Is(err, ErrItemNotInOrder) {
		t.Fatalf("expected ErrItemNotInOrder, got: %v", err)
	}

	// 整单拒绝，合法项也不应被写入
	var item models.OrderItem
	if err := db.First(&item, items[0].ID).Error; err != nil {
		t.Fatalf("查询订单项失败: %v", err)
	}
	if item.QuantityReceived != nil {
		t.Fatalf("整单拒绝时不应有部分写入, got %v", *item.QuantityReceived)
	}
}

func TestReceiveGoodsRejectsNegativeQuantity(t *testing.T) {
	svc, db := setupReceivingServiceTest(t)
	order, items := seedReceivableOrder(t, db, 1)
	actor := Actor{UserID: 1, Roles: []string{constants.RoleUser}}

	_, err := svc.ReceiveGoods(actor, ReceiveGoodsInput{
		OrderID: order.ID,
		Items: []ReceiveGoodsItem{
			{ItemID: items[0].ID, QuantityReceived: -1},
		},
	})
	if !errors.Is(err, ErrInvalidReceiveQty) {
		t.Fatalf("expected ErrInvalidReceiveQty, got: %v", err)
	}
}

func TestReceiveGoodsClosedOrderGuards(t *testing.T) {
	svc, db := setupReceivingServiceTest(t)
	order, items := seedReceivableOrder(t, db, 1)
	actor := Actor{UserID: 1, Roles: []string{constants.RoleUser}}

	// 终态拒绝后订单与订单项都不应有任何写入
	assertUntouched := func(wantStatus string) {
		t.Helper()
		var fresh models.Order
		if err := db.First(&fresh, order.ID).Error; err != nil {
			t.Fatalf("查询订单失败: %v", err)
		}
		if fresh.Status != wantStatus {
			t.Fatalf("拒绝收货不应改动状态: want %s, got %s", wantStatus, fresh.Status)
		}
		var item models.OrderItem
		if err := db.First(&item, items[0].ID).Error; err != nil {
			t.Fatalf("查询订单项失败: %v", err)
		}
		if item.QuantityReceived != nil || item.ReceivedByID != nil || item.ReceivedDate != nil {
			t.Fatalf("拒绝收货不应写入订单项: %+v", item)
		}
	}

	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", constants.OrderStatusCancelled).Error; err != nil {
		t.Fatalf("更新订单状态失败: %v", err)
	}
	_, err := svc.ReceiveGoods(actor, ReceiveGoodsInput{
		OrderID: order.ID,
		Items:   []ReceiveGoodsItem{{ItemID: items[0].ID, QuantityReceived: 1}},
	})
	if !errors.Is(err, ErrOrderCancelled) {
		t.Fatalf("expected ErrOrderCancelled, got: %v", err)
	}
	assertUntouched(constants.OrderStatusCancelled)

	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", constants.OrderStatusReceived).Error; err != nil {
		t.Fatalf("更新订单状态失败: %v", err)
	}
	_, err = svc.ReceiveGoods(actor, ReceiveGoodsInput{
		OrderID: order.ID,
		Items:   []ReceiveGoodsItem{{ItemID: items[0].ID, QuantityReceived: 1}},
	})
	if !errors.Is(err, ErrOrderAlreadyClosed) {
		t.Fatalf("expected ErrOrderAlreadyClosed, got: %v", err)
	}
	assertUntouched(constants.OrderStatusReceived)
}

func TestReceiveGoodsForbiddenForNonOwner(t *testing.T) {
	svc, db := setupReceivingServiceTest(t)
	order, items := seedReceivableOrder(t, db, 1)

	stranger := Actor{UserID: 99, Roles: []string{constants.RoleUser}}
	_, err := svc.ReceiveGoods(stranger, ReceiveGoodsInput{
		OrderID: order.ID,
		Items:   []ReceiveGoodsItem{{ItemID: items[0].ID, QuantityReceived: 1}},
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}

	// 管理员可代收
	admin := Actor{UserID: 99, Roles: []string{constants.RoleAdmin}}
	if _, err := svc.ReceiveGoods(admin, ReceiveGoodsInput{
		OrderID: order.ID,
		Items:   []ReceiveGoodsItem{{ItemID: items[0].ID, QuantityReceived: 1}},
	}); err != nil {
		t.Fatalf("管理员收货失败: %v", err)
	}
}

func TestReceiveGoodsUnknownOrder(t *testing.T) {
	svc, _ := setupReceivingServiceTest(t)
	actor := Actor{UserID: 1, Roles: []string{constants.RoleAdmin}}
	_, err := svc.ReceiveGoods(actor, ReceiveGoodsInput{OrderID: 12345})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got: %v", err)
	}
}
