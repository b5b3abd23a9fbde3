package models

import (
	"time"
)

// OrderItem 订单项表
type OrderItem struct {
	ID               uint       `gorm:"primarykey" json:"id"`                // 主键
	OrderID          uint       `gorm:"index;not null" json:"orderId"`       // 订单ID
	ProductID        uint       `gorm:"index;not null" json:"productId"`     // 商品ID
	Quantity         int        `gorm:"not null" json:"quantity"`            // 订购数量
	Unit             string     `gorm:"not null" json:"unit"`                // 订购单位
	QuantityReceived *int       `json:"quantityReceived"`                    // 累计收货数量（nil 表示未收过货）
	ReceivedDate     *time.Time `json:"receivedDate,omitempty"`              // 最近收货时间
	ReceivedByID     *uint      `gorm:"index" json:"receivedById,omitempty"` // 最近收货人ID
	CreatedAt        time.Time  `json:"createdAt"`                           // 创建时间
	UpdatedAt        time.Time  `json:"updatedAt"`                           // 更新时间

	Product    *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`       // 商品
	ReceivedBy *User    `gorm:"foreignKey:ReceivedByID" json:"receivedBy,omitempty"` // 收货人
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// FullyReceived 判断该项是否已全量收货
func (i *OrderItem) FullyReceived() bool {
	return i.QuantityReceived != nil && *i.QuantityReceived >= i.Quantity
}
