package service

import (
	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
)

// CalcOrderStatus 根据全部订单项的收货进度推导订单状态。
// 全部订单项收满为 RECEIVED；任意一项有收货记录为 PARTIALLY_RECEIVED；
// 否则为 PENDING。纯函数，不读写数据库。
func CalcOrderStatus(items []models.OrderItem) string {
	if len(items) == 0 {
		return constants.OrderStatusPending
	}

	allReceived := true
	anyReceived := false
	for i := range items {
		item := &items[i]
		if item.QuantityReceived != nil && *item.QuantityReceived > 0 {
			anyReceived = true
		}
		if !item.FullyReceived() {
			allReceived = false
		}
	}

	if allReceived {
		return constants.OrderStatusReceived
	}
	if anyReceived {
		return constants.OrderStatusPartiallyReceived
	}
	return constants.OrderStatusPending
}
