package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 采购订单表
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`                    // 主键
	OrderNumber string         `gorm:"uniqueIndex;not null" json:"orderNumber"` // 订单编号（BEST-NNNN）
	EmployeeID  uint           `gorm:"index;not null" json:"employeeId"`        // 下单员工ID
	SupplierID  uint           `gorm:"index;not null" json:"supplierId"`        // 供应商ID
	Status      string         `gorm:"index;not null" json:"status"`            // 订单状态
	Notes       string         `gorm:"type:text" json:"notes,omitempty"`        // 备注
	OrderDate   time.Time      `gorm:"index;not null" json:"orderDate"`         // 下单时间
	EmailSentAt *time.Time     `json:"emailSentAt,omitempty"`                   // 订货邮件发送时间
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`                  // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updatedAt"`                  // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除时间

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`       // 订单项
	Employee *User       `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"` // 下单员工
	Supplier *Supplier   `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"` // 供应商
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
