package models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier 供应商表
type Supplier struct {
	ID           uint           `gorm:"primarykey" json:"id"`                  // 主键
	Name         string         `gorm:"not null;index" json:"name"`            // 供应商名称
	Email        string         `gorm:"not null" json:"email"`                 // 订货邮箱
	CCEmails     StringArray    `gorm:"type:json" json:"ccEmails"`             // 抄送邮箱
	ContactName  string         `gorm:"default:''" json:"contactName"`         // 联系人
	Phone        string         `gorm:"default:''" json:"phone,omitempty"`     // 联系电话
	ArticleGroup string         `gorm:"index;not null" json:"articleGroup"`    // 物料分组
	IsActive     bool           `gorm:"not null;default:true" json:"isActive"` // 是否启用
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`                // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updatedAt"`                // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间

	Products []Product `gorm:"foreignKey:SupplierID" json:"products,omitempty"` // 供货商品
}

// TableName 指定表名
func (Supplier) TableName() string {
	return "suppliers"
}
