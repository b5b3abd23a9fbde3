package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 包材商品表
type Product struct {
	ID               uint           `gorm:"primarykey" json:"id"`                        // 主键
	Name             string         `gorm:"not null;index" json:"name"`                  // 商品名称
	ArticleCode      string         `gorm:"not null;index" json:"articleCode"`           // 物料编码
	SupplierID       uint           `gorm:"index;not null" json:"supplierId"`            // 供应商ID
	ProductTypeID    *uint          `gorm:"index" json:"productTypeId,omitempty"`        // 商品类型ID
	UnitsPerBox      *int           `json:"unitsPerBox,omitempty"`                       // 每箱数量
	UnitsPerPallet   *int           `json:"unitsPerPallet,omitempty"`                    // 每托数量
	PricePerUnit     *Money         `gorm:"type:decimal(20,2)" json:"pricePerUnit"`      // 单价
	CSRDRequirements string         `gorm:"type:text" json:"csrdRequirements,omitempty"` // CSRD 合规说明
	IsActive         bool           `gorm:"not null;default:true" json:"isActive"`       // 是否启用
	CreatedAt        time.Time      `gorm:"index" json:"createdAt"`                      // 创建时间
	UpdatedAt        time.Time      `gorm:"index" json:"updatedAt"`                      // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除时间

	Supplier    *Supplier    `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`       // 供应商
	ProductType *ProductType `gorm:"foreignKey:ProductTypeID" json:"productType,omitempty"` // 商品类型
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
