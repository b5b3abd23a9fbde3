package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByIDBare(id uint) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	NextOrderNumber(prefix string, width int) (string, error)
	ListItems(orderID uint) ([]models.OrderItem, error)
	UpdateItem(itemID uint, updates map[string]interface{}) error
	UpdateStatus(id uint, status string, updates map[string]interface{}) error
	UpdateEmailSentAt(id uint, sentAt time.Time) error
	CountByStatus(employeeID uint) (map[string]int64, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withGraph(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.ReceivedBy").
		Preload("Employee").
		Preload("Supplier")
}

// Create 创建订单与订单项
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID 根据 ID 获取订单（含订单项、商品、供应商、员工）
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withGraph(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDBare 根据 ID 获取订单（不加载关联）
func (r *GormOrderRepository) GetByIDBare(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List 查询订单列表
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})

	if filter.EmployeeID != 0 {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.SupplierID != 0 {
		query = query.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Receivable {
		query = query.Where("status IN ?", []string{
			constants.OrderStatusPending,
			constants.OrderStatusPartiallyReceived,
		})
	}
	if filter.OrderNumber != "" {
		query = query.Where("order_number LIKE ?", "%"+filter.OrderNumber+"%")
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := r.withGraph(query).Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// NextOrderNumber 分配下一个订单编号。
// 扫描现有编号的数字后缀取最大值加一，首单为 prefix + 1（补零至 width 位）。
// 并发下单时依赖 order_number 唯一索引兜底，由上层重试整个事务。
func (r *GormOrderRepository) NextOrderNumber(prefix string, width int) (string, error) {
	var numbers []string
	if err := r.db.Model(&models.Order{}).
		Where("order_number LIKE ?", prefix+"%").
		Pluck("order_number", &numbers).Error; err != nil {
		return "", err
	}

	max := 0
	for _, number := range numbers {
		suffix := strings.TrimPrefix(number, prefix)
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%0*d", prefix, width, max+1), nil
}

// ListItems 获取订单的全部订单项
func (r *GormOrderRepository) ListItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Where("order_id = ?", orderID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItem 更新订单项字段
func (r *GormOrderRepository) UpdateItem(itemID uint, updates map[string]interface{}) error {
	return r.db.Model(&models.OrderItem{}).Where("id = ?", itemID).Updates(updates).Error
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = status
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateEmailSentAt 回写订货邮件发送时间，不触碰状态列。
// 邮件可能异步发送，期间订单状态可能已被收货事务推进。
func (r *GormOrderRepository) UpdateEmailSentAt(id uint, sentAt time.Time) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("email_sent_at", sentAt).Error
}

// CountByStatus 按状态统计订单数量（employeeID 为 0 时统计全部）
func (r *GormOrderRepository) CountByStatus(employeeID uint) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	query := r.db.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status")
	if employeeID != 0 {
		query = query.Where("employee_id = ?", employeeID)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
