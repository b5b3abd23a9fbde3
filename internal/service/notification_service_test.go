package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/supply-hub/supply-hub/internal/config"
	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupNotificationServiceTest(t *testing.T) (*NotificationService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:notification_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
		&models.EmailLog{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	previous := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = previous })

	orderRepo := repository.NewOrderRepository(db)
	emailLogRepo := repository.NewEmailLogRepository(db)
	emailService := NewEmailService(&config.EmailConfig{Provider: constants.EmailProviderCapture})
	auditService := NewAuditService(repository.NewAuditLogRepository(db))
	svc := NewNotificationService(orderRepo, emailLogRepo, emailService, auditService, "http://localhost:3000/")
	return svc, db
}

func seedNotificationOrder(t *testing.T, db *gorm.DB) (models.Order, models.User) {
	t.Helper()
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
		CCEmails:     models.StringArray{"sales@packright.nl"},
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
	order := models.Order{
		OrderNumber: "BEST-0001",
		EmployeeID:  employee.ID,
		SupplierID:  supplier.ID,
		Status:      constants.OrderStatusPending,
		Notes:       "deliver to dock 3",
		OrderDate:   time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}
	item := models.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 10, Unit: constants.UnitBox}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("创建订单项失败: %v", err)
	}
	return order, employee
}

func TestSendOrderEmailCapture(t *testing.T) {
	svc, db := setupNotificationServiceTest(t)
	order, employee := seedNotificationOrder(t, db)

	previewURL, err := svc.SendOrderEmail(order.ID, employee.ID)
	if err != nil {
		t.Fatalf("发送订货邮件失败: %v", err)
	}

	var emailLog models.EmailLog
	if err := db.Where("order_id = ?", order.ID).First(&emailLog).Error; err != nil {
		t.Fatalf("未找到邮件记录: %v", err)
	}
	if emailLog.Status != constants.EmailStatusSent {
		t.Fatalf("capture 通道应落 SENT, got %s", emailLog.Status)
	}
	if emailLog.Provider != constants.EmailProviderCapture {
		t.Fatalf("expected capture provider, got %s", emailLog.Provider)
	}
	if emailLog.Recipient != "orders@packright.nl" {
		t.Fatalf("收件人应为供应商订货邮箱, got %s", emailLog.Recipient)
	}

	want := fmt.Sprintf("http://localhost:3000/api/v1/emails/%d", emailLog.ID)
	if previewURL != want {
		t.Fatalf("expected preview url %s, got %s", want, previewURL)
	}
	if emailLog.PreviewURL != want {
		t.Fatalf("邮件记录应回写预览链接, got %s", emailLog.PreviewURL)
	}

	// 抄送含供应商 CC 与下单员工
	ccJoined := strings.Join(emailLog.CC, ",")
	if !strings.Contains(ccJoined, "sales@packright.nl") || !strings.Contains(ccJoined, employee.Email) {
		t.Fatalf("抄送列表不完整: %v", emailLog.CC)
	}

	var fresh models.Order
	if err := db.First(&fresh, order.ID).Error; err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if fresh.EmailSentAt == nil {
		t.Fatalf("应回写 email_sent_at")
	}
	if fresh.Status != constants.OrderStatusPending {
		t.Fatalf("发送邮件不应改变订单状态, got %s", fresh.Status)
	}

	var audit models.AuditLog
	if err := db.Where("action = ?", constants.AuditActionOrderEmailSent).First(&audit).Error; err != nil {
		t.Fatalf("未找到邮件审计记录: %v", err)
	}
	if audit.UserID != employee.ID {
		t.Fatalf("审计记录操作人应为 %d, got %d", employee.ID, audit.UserID)
	}
}

func TestSendOrderEmailBodyContainsItems(t *testing.T) {
	svc, db := setupNotificationServiceTest(t)
	order, employee := seedNotificationOrder(t, db)

	if _, err := svc.SendOrderEmail(order.ID, employee.ID); err != nil {
		t.Fatalf("发送订货邮件失败: %v", err)
	}

	var emailLog models.EmailLog
	if err := db.Where("order_id = ?", order.ID).First(&emailLog).Error; err != nil {
		t.Fatalf("未找到邮件记录: %v", err)
	}
	for _, fragment := range []string{"BEST-0001", "Cardboard Box 40x30x20", "PKG-001", "deliver to dock 3"} {
		if !strings.Contains(emailLog.Body, fragment) {
			t.Fatalf("邮件正文缺少 %q", fragment)
		}
	}
	if !strings.Contains(emailLog.Subject, "BEST-0001") {
		t.Fatalf("邮件主题应含订单编号, got %s", emailLog.Subject)
	}
}

func TestSendOrderEmailUnknownOrder(t *testing.T) {
	svc, _ := setupNotificationServiceTest(t)
	if _, err := svc.SendOrderEmail(999, 1); err == nil {
		t.Fatalf("未知订单应报错")
	}
}
