package service

import (
	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"
)

// DashboardService 看板汇总服务
type DashboardService struct {
	orderRepo    repository.OrderRepository
	accessPolicy *AccessPolicy
}

// NewDashboardService 创建看板服务
func NewDashboardService(orderRepo repository.OrderRepository, accessPolicy *AccessPolicy) *DashboardService {
	return &DashboardService{orderRepo: orderRepo, accessPolicy: accessPolicy}
}

// DashboardSummary 看板汇总数据
type DashboardSummary struct {
	TotalOrders       int64            `json:"totalOrders"`
	PendingReceipt    int64            `json:"pendingReceipt"` // PENDING + PARTIALLY_RECEIVED
	CountsByStatus    map[string]int64 `json:"countsByStatus"`
	RecentOrders      []models.Order   `json:"recentOrders"`
	RecentOrdersLimit int              `json:"-"`
}

// Summary 汇总订单概况，管理员为全局视角，普通员工只看自己的订单
func (s *DashboardService) Summary(actor Actor) (*DashboardSummary, error) {
	employeeID := s.accessPolicy.ScopeEmployeeID(actor)

	counts, err := s.orderRepo.CountByStatus(employeeID)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		CountsByStatus:    counts,
		RecentOrdersLimit: 5,
	}
	for _, status := range constants.OrderStatuses {
		if _, ok := counts[status]; !ok {
			summary.CountsByStatus[status] = 0
		}
	}
	for _, count := range counts {
		summary.TotalOrders += count
	}
	summary.PendingReceipt = counts[constants.OrderStatusPending] + counts[constants.OrderStatusPartiallyReceived]

	recent, _, err := s.orderRepo.List(repository.OrderListFilter{
		Page:       1,
		PageSize:   summary.RecentOrdersLimit,
		EmployeeID: employeeID,
	})
	if err != nil {
		return nil, err
	}
	summary.RecentOrders = recent

	return summary, nil
}
