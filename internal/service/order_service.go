package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/logger"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/queue"
	"github.com/supply-hub/supply-hub/internal/repository"

	"gorm.io/gorm"
)

// 订单编号撞唯一索引时重试整个事务的次数上限
const orderNumberMaxRetries = 3

// OrderService 订单服务
type OrderService struct {
	orderRepo    repository.OrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	auditService *AuditService
	accessPolicy *AccessPolicy
	queueClient  *queue.Client
	notification *NotificationService
	numberPrefix string
	numberWidth  int
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, supplierRepo repository.SupplierRepository, productRepo repository.ProductRepository, auditService *AuditService, accessPolicy *AccessPolicy, queueClient *queue.Client, notification *NotificationService, numberPrefix string, numberWidth int) *OrderService {
	if numberPrefix == "" {
		numberPrefix = "BEST-"
	}
	if numberWidth <= 0 {
		numberWidth = 4
	}
	return &OrderService{
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		auditService: auditService,
		accessPolicy: accessPolicy,
		queueClient:  queueClient,
		notification: notification,
		numberPrefix: numberPrefix,
		numberWidth:  numberWidth,
	}
}

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	EmployeeID uint
	SupplierID uint
	Notes      string
	Items      []PlaceOrderItem
}

// PlaceOrderItem 下单订单项输入
type PlaceOrderItem struct {
	ProductID uint
	Quantity  int
	Unit      string
}

// PlaceOrderResult 下单结果
type PlaceOrderResult struct {
	Order      *models.Order
	PreviewURL string // capture 通道下的邮件预览链接，异步发送时为空
}

// PlaceOrder 下单。校验供应商与商品归属后在单个事务内分配编号、
// 创建订单与订单项并写入审计记录。订货邮件在事务提交后尽力发送，
// 发送失败不影响下单结果。
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*PlaceOrderResult, error) {
	if input.EmployeeID == 0 {
		return nil, ErrInvalidOrderItem
	}
	if len(input.Items) == 0 {
		return nil, ErrOrderItemsRequired
	}
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity < 1 {
			return nil, ErrInvalidOrderItem
		}
		if !constants.IsValidUnit(item.Unit) {
			return nil, ErrInvalidOrderItem
		}
	}

	supplier, err := s.supplierRepo.GetByID(input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	if !supplier.IsActive {
		return nil, ErrSupplierInactive
	}

	if err := s.validateProducts(input); err != nil {
		return nil, err
	}

	order, err := s.createOrderWithRetry(input)
	if err != nil {
		return nil, err
	}

	result := &PlaceOrderResult{}

	// 事务已提交，邮件失败只记日志
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderEmail(queue.OrderEmailPayload{
			OrderID:  order.ID,
			SentByID: input.EmployeeID,
		}); err != nil {
			logger.Errorw("order_email_enqueue_failed",
				"order_id", order.ID,
				"order_number", order.OrderNumber,
				"error", err,
			)
		}
	} else if s.notification != nil {
		previewURL, err := s.notification.SendOrderEmail(order.ID, input.EmployeeID)
		if err != nil {
			logger.Errorw("order_email_send_failed",
				"order_id", order.ID,
				"order_number", order.OrderNumber,
				"error", err,
			)
		}
		result.PreviewURL = previewURL
	}

	full, err := s.orderRepo.GetByID(order.ID)
	if err != nil || full == nil {
		result.Order = order
		return result, nil
	}
	result.Order = full
	return result, nil
}

func (s *OrderService) validateProducts(input PlaceOrderInput) error {
	ids := make([]uint, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ids)
	if err != nil {
		return err
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for _, item := range input.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return ErrProductNotFound
		}
		if !product.IsActive {
			return ErrProductInactive
		}
		if product.SupplierID != input.SupplierID {
			return ErrProductSupplierMismatch
		}
	}
	return nil
}

func (s *OrderService) createOrderWithRetry(input PlaceOrderInput) (*models.Order, error) {
	var order *models.Order
	for attempt := 0; attempt < orderNumberMaxRetries; attempt++ {
		created, err := s.createOrderTx(input)
		if err == nil {
			order = created
			break
		}
		if isDuplicateOrderNumber(err) {
			logger.Warnw("order_number_conflict_retry",
				"attempt", attempt+1,
				"error", err,
			)
			continue
		}
		logger.Errorw("order_create_failed", "error", err)
		return nil, ErrOrderCreateFailed
	}
	if order == nil {
		return nil, ErrOrderCreateFailed
	}
	return order, nil
}

func (s *OrderService) createOrderTx(input PlaceOrderInput) (*models.Order, error) {
	now := time.Now()
	order := &models.Order{
		EmployeeID: input.EmployeeID,
		SupplierID: input.SupplierID,
		Status:     constants.OrderStatusPending,
		Notes:      strings.TrimSpace(input.Notes),
		OrderDate:  now,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)

		number, err := orderRepo.NextOrderNumber(s.numberPrefix, s.numberWidth)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		items := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Unit:      item.Unit,
			})
		}
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}

		return s.auditService.Record(tx, AuditInput{
			UserID:     input.EmployeeID,
			Action:     constants.AuditActionOrderPlaced,
			EntityType: constants.EntityTypeOrder,
			EntityID:   fmt.Sprintf("%d", order.ID),
			Details: models.JSON{
				"orderNumber": order.OrderNumber,
				"supplierId":  order.SupplierID,
				"itemCount":   len(input.Items),
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func isDuplicateOrderNumber(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint") ||
		strings.Contains(message, "duplicate key") ||
		strings.Contains(message, "constraint failed")
}

// GetOrder 获取订单详情，归属校验由访问策略执行
func (s *OrderService) GetOrder(actor Actor, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.accessPolicy.CanAccessOrder(actor, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders 查询订单列表，普通员工静默收窄到自己的订单
func (s *OrderService) ListOrders(actor Actor, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	filter.EmployeeID = s.accessPolicy.ScopeEmployeeID(actor)
	if filter.Status != "" && !constants.IsValidOrderStatus(filter.Status) {
		return nil, 0, ErrValidation
	}
	return s.orderRepo.List(filter)
}
