package repository

import (
	"errors"

	"github.com/supply-hub/supply-hub/internal/models"

	"gorm.io/gorm"
)

// ProductTypeRepository 商品类型数据访问接口
type ProductTypeRepository interface {
	Create(productType *models.ProductType) error
	GetByID(id uint) (*models.ProductType, error)
	List(onlyActive bool) ([]models.ProductType, error)
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormProductTypeRepository
}

// GormProductTypeRepository GORM 实现
type GormProductTypeRepository struct {
	db *gorm.DB
}

// NewProductTypeRepository 创建商品类型仓库
func NewProductTypeRepository(db *gorm.DB) *GormProductTypeRepository {
	return &GormProductTypeRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductTypeRepository) WithTx(tx *gorm.DB) *GormProductTypeRepository {
	if tx == nil {
		return r
	}
	return &GormProductTypeRepository{db: tx}
}

// Create 创建商品类型
func (r *GormProductTypeRepository) Create(productType *models.ProductType) error {
	return r.db.Create(productType).Error
}

// GetByID 根据 ID 获取商品类型
func (r *GormProductTypeRepository) GetByID(id uint) (*models.ProductType, error) {
	var productType models.ProductType
	if err := r.db.First(&productType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &productType, nil
}

// List 查询商品类型列表
func (r *GormProductTypeRepository) List(onlyActive bool) ([]models.ProductType, error) {
	var productTypes []models.ProductType
	query := r.db.Model(&models.ProductType{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("name asc").Find(&productTypes).Error; err != nil {
		return nil, err
	}
	return productTypes, nil
}

// Update 更新商品类型字段
func (r *GormProductTypeRepository) Update(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.ProductType{}).Where("id = ?", id).Updates(updates).Error
}

// Delete 软删除商品类型
func (r *GormProductTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProductType{}, id).Error
}
