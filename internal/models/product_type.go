package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductType 商品类型表
type ProductType struct {
	ID        uint           `gorm:"primarykey" json:"id"`                  // 主键
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`      // 类型名称
	IsActive  bool           `gorm:"not null;default:true" json:"isActive"` // 是否启用
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`                // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updatedAt"`                // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (ProductType) TableName() string {
	return "product_types"
}
