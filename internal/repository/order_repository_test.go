package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
	); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}
	return NewOrderRepository(db), db
}

func createTestOrder(t *testing.T, db *gorm.DB, number, status string, employeeID uint) models.Order {
	t.Helper()
	order := models.Order{
		OrderNumber: number,
		EmployeeID:  employeeID,
		SupplierID:  1,
		Status:      status,
		OrderDate:   time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}
	return order
}

func TestNextOrderNumberFirst(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	number, err := repo.NextOrderNumber("BEST-", 4)
	if err != nil {
		t.Fatalf("分配编号失败: %v", err)
	}
	if number != "BEST-0001" {
		t.Fatalf("首单应为 BEST-0001, got %s", number)
	}
}

func TestNextOrderNumberIncrementsMax(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	createTestOrder(t, db, "BEST-0007", constants.OrderStatusPending, 1)
	createTestOrder(t, db, "BEST-0003", constants.OrderStatusReceived, 1)

	number, err := repo.NextOrderNumber("BEST-", 4)
	if err != nil {
		t.Fatalf("分配编号失败: %v", err)
	}
	if number != "BEST-0008" {
		t.Fatalf("应取最大后缀加一, got %s", number)
	}
}

func TestNextOrderNumberIgnoresNonNumericSuffix(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	createTestOrder(t, db, "BEST-0002", constants.OrderStatusPending, 1)
	createTestOrder(t, db, "BEST-DRAFT", constants.OrderStatusPending, 1)

	number, err := repo.NextOrderNumber("BEST-", 4)
	if err != nil {
		t.Fatalf("分配编号失败: %v", err)
	}
	if number != "BEST-0003" {
		t.Fatalf("非数字后缀应被忽略, got %s", number)
	}
}

func TestNextOrderNumberGrowsPastWidth(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	createTestOrder(t, db, "BEST-9999", constants.OrderStatusPending, 1)

	number, err := repo.NextOrderNumber("BEST-", 4)
	if err != nil {
		t.Fatalf("分配编号失败: %v", err)
	}
	if number != "BEST-10000" {
		t.Fatalf("超过补零位数后自然增长, got %s", number)
	}
}

func TestListReceivableFilter(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	createTestOrder(t, db, "BEST-0001", constants.OrderStatusPending, 1)
	createTestOrder(t, db, "BEST-0002", constants.OrderStatusPartiallyReceived, 1)
	createTestOrder(t, db, "BEST-0003", constants.OrderStatusReceived, 1)
	createTestOrder(t, db, "BEST-0004", constants.OrderStatusCancelled, 1)

	orders, total, err := repo.List(OrderListFilter{Receivable: true})
	if err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("可收货订单应为 2, got total=%d len=%d", total, len(orders))
	}
	for _, order := range orders {
		if order.Status != constants.OrderStatusPending && order.Status != constants.OrderStatusPartiallyReceived {
			t.Fatalf("不可收货状态混入结果: %s", order.Status)
		}
	}
}

func TestListFiltersByEmployeeAndStatus(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	createTestOrder(t, db, "BEST-0001", constants.OrderStatusPending, 1)
	createTestOrder(t, db, "BEST-0002", constants.OrderStatusPending, 2)
	createTestOrder(t, db, "BEST-0003", constants.OrderStatusReceived, 1)

	orders, total, err := repo.List(OrderListFilter{EmployeeID: 1, Status: constants.OrderStatusPending})
	if err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("expected 1 order, got total=%d len=%d", total, len(orders))
	}
	if orders[0].OrderNumber != "BEST-0001" {
		t.Fatalf("过滤结果错误: %s", orders[0].OrderNumber)
	}
}

func TestListSearchesByOrderNumber(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	createTestOrder(t, db, "BEST-0010", constants.OrderStatusPending, 1)
	createTestOrder(t, db, "BEST-0021", constants.OrderStatusPending, 1)

	orders, total, err := repo.List(OrderListFilter{OrderNumber: "0021"})
	if err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if total != 1 || len(orders) != 1 || orders[0].OrderNumber != "BEST-0021" {
		t.Fatalf("编号模糊查询结果错误: total=%d", total)
	}
}

func TestUpdateEmailSentAtKeepsStatus(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order := createTestOrder(t, db, "BEST-0001", constants.OrderStatusPending, 1)

	// 邮件路径持有下单时加载的旧快照，期间收货事务推进了状态
	stale, err := repo.GetByIDBare(order.ID)
	if err != nil || stale == nil {
		t.Fatalf("加载订单失败: %v", err)
	}
	if err := repo.UpdateStatus(order.ID, constants.OrderStatusPartiallyReceived, nil); err != nil {
		t.Fatalf("更新状态失败: %v", err)
	}

	if err := repo.UpdateEmailSentAt(stale.ID, time.Now()); err != nil {
		t.Fatalf("回写发送时间失败: %v", err)
	}

	fresh, err := repo.GetByIDBare(order.ID)
	if err != nil || fresh == nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if fresh.Status != constants.OrderStatusPartiallyReceived {
		t.Fatalf("回写发送时间不应改动状态: want PARTIALLY_RECEIVED, got %s", fresh.Status)
	}
	if fresh.EmailSentAt == nil {
		t.Fatalf("应回写 email_sent_at")
	}
}

func TestCountByStatusScoped(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	createTestOrder(t, db, "BEST-0001", constants.OrderStatusPending, 1)
	createTestOrder(t, db, "BEST-0002", constants.OrderStatusPending, 2)
	createTestOrder(t, db, "BEST-0003", constants.OrderStatusReceived, 1)

	all, err := repo.CountByStatus(0)
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if all[constants.OrderStatusPending] != 2 || all[constants.OrderStatusReceived] != 1 {
		t.Fatalf("全局统计错误: %v", all)
	}

	scoped, err := repo.CountByStatus(1)
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if scoped[constants.OrderStatusPending] != 1 || scoped[constants.OrderStatusReceived] != 1 {
		t.Fatalf("按员工统计错误: %v", scoped)
	}
}
