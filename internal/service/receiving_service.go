package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"

	"gorm.io/gorm"
)

// ReceivingService 收货服务
type ReceivingService struct {
	orderRepo    repository.OrderRepository
	auditService *AuditService
	accessPolicy *AccessPolicy
}

// NewReceivingService 创建收货服务
func NewReceivingService(orderRepo repository.OrderRepository, auditService *AuditService, accessPolicy *AccessPolicy) *ReceivingService {
	return &ReceivingService{
		orderRepo:    orderRepo,
		auditService: auditService,
		accessPolicy: accessPolicy,
	}
}

// ReceiveGoodsInput 收货输入
type ReceiveGoodsInput struct {
	OrderID uint
	Notes   string
	Items   []ReceiveGoodsItem
}

// ReceiveGoodsItem 单个订单项的收货登记
type ReceiveGoodsItem struct {
	ItemID           uint
	QuantityReceived int
	ReceivedDate     *time.Time
}

// ReceiveGoods 登记收货。在单个事务内写入各订单项的最新收货数量、
// 重新推导订单状态并写入审计记录。收货数量为绝对值而非增量，
// 重复提交同一批数量得到同样的结果；数量为 0 的提交不改动该项。
func (s *ReceivingService) ReceiveGoods(actor Actor, input ReceiveGoodsInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDBare(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.accessPolicy.CanAccessOrder(actor, order); err != nil {
		return nil, err
	}
	switch order.Status {
	case constants.OrderStatusCancelled:
		return nil, ErrOrderCancelled
	case constants.OrderStatusReceived:
		return nil, ErrOrderAlreadyClosed
	}

	for _, item := range input.Items {
		if item.ItemID == 0 || item.QuantityReceived < 0 {
			return nil, ErrInvalidReceiveQty
		}
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)

		items, err := orderRepo.ListItems(order.ID)
		if err != nil {
			return err
		}
		byID := make(map[uint]*models.OrderItem, len(items))
		for i := range items {
			byID[items[i].ID] = &items[i]
		}

		// 先整体校验归属，任何一项不属于该订单则整单拒绝
		for _, submitted := range input.Items {
			if _, ok := byID[submitted.ItemID]; !ok {
				return ErrItemNotInOrder
			}
		}

		updated := 0
		for _, submitted := range input.Items {
			if submitted.QuantityReceived == 0 {
				continue // 0 数量视为未提交
			}
			receivedDate := time.Now()
			if submitted.ReceivedDate != nil {
				receivedDate = *submitted.ReceivedDate
			}
			if err := orderRepo.UpdateItem(submitted.ItemID, map[string]interface{}{
				"quantity_received": submitted.QuantityReceived,
				"received_date":     receivedDate,
				"received_by_id":    actor.UserID,
			}); err != nil {
				return err
			}
			updated++
		}

		// 以库内最新状态重新推导订单状态
		fresh, err := orderRepo.ListItems(order.ID)
		if err != nil {
			return err
		}
		status := CalcOrderStatus(fresh)
		if status != order.Status {
			if err := orderRepo.UpdateStatus(order.ID, status, nil); err != nil {
				return err
			}
		}
		order.Status = status

		return s.auditService.Record(tx, AuditInput{
			UserID:     actor.UserID,
			Action:     constants.AuditActionGoodsReceived,
			EntityType: constants.EntityTypeOrder,
			EntityID:   fmt.Sprintf("%d", order.ID),
			Details: models.JSON{
				"orderNumber":  order.OrderNumber,
				"status":       status,
				"itemsUpdated": updated,
				"notes":        strings.TrimSpace(input.Notes),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(order.ID)
}

// ListReceivable 查询当前可收货的订单（PENDING / PARTIALLY_RECEIVED）
func (s *ReceivingService) ListReceivable(actor Actor, page, pageSize int) ([]models.Order, int64, error) {
	filter := repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		EmployeeID: s.accessPolicy.ScopeEmployeeID(actor),
		Receivable: true,
	}
	return s.orderRepo.List(filter)
}
