package service

import (
	"fmt"
	"strings"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"
)

// ProductTypeService 商品类型主数据服务
type ProductTypeService struct {
	productTypeRepo repository.ProductTypeRepository
	auditService    *AuditService
}

// NewProductTypeService 创建商品类型服务
func NewProductTypeService(productTypeRepo repository.ProductTypeRepository, auditService *AuditService) *ProductTypeService {
	return &ProductTypeService{productTypeRepo: productTypeRepo, auditService: auditService}
}

// List 查询商品类型列表
func (s *ProductTypeService) List(onlyActive bool) ([]models.ProductType, error) {
	return s.productTypeRepo.List(onlyActive)
}

// Get 获取商品类型详情
func (s *ProductTypeService) Get(id uint) (*models.ProductType, error) {
	productType, err := s.productTypeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if productType == nil {
		return nil, ErrProductTypeNotFound
	}
	return productType, nil
}

// Create 创建商品类型并记录审计
func (s *ProductTypeService) Create(actorID uint, name string, isActive *bool) (*models.ProductType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}
	productType := &models.ProductType{Name: name, IsActive: true}
	if isActive != nil {
		productType.IsActive = *isActive
	}
	if err := s.productTypeRepo.Create(productType); err != nil {
		return nil, err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionCreate,
		EntityType: constants.EntityTypeProductType,
		EntityID:   fmt.Sprintf("%d", productType.ID),
		Details:    models.JSON{"name": name},
	})
	return productType, nil
}

// Update 更新商品类型并记录审计
func (s *ProductTypeService) Update(actorID uint, id uint, name string, isActive *bool) (*models.ProductType, error) {
	existing, err := s.productTypeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductTypeNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}
	updates := map[string]interface{}{"name": name}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	if err := s.productTypeRepo.Update(id, updates); err != nil {
		return nil, err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionUpdate,
		EntityType: constants.EntityTypeProductType,
		EntityID:   fmt.Sprintf("%d", id),
		Details:    models.JSON{"name": name},
	})
	return s.productTypeRepo.GetByID(id)
}

// Delete 软删除商品类型并记录审计
func (s *ProductTypeService) Delete(actorID uint, id uint) error {
	existing, err := s.productTypeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductTypeNotFound
	}
	if err := s.productTypeRepo.Delete(id); err != nil {
		return err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionDelete,
		EntityType: constants.EntityTypeProductType,
		EntityID:   fmt.Sprintf("%d", id),
		Details:    models.JSON{"name": existing.Name},
	})
	return nil
}
