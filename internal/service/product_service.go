package service

import (
	"fmt"
	"strings"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"
)

// ProductService 商品主数据服务
type ProductService struct {
	productRepo     repository.ProductRepository
	supplierRepo    repository.SupplierRepository
	productTypeRepo repository.ProductTypeRepository
	auditService    *AuditService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository, productTypeRepo repository.ProductTypeRepository, auditService *AuditService) *ProductService {
	return &ProductService{
		productRepo:     productRepo,
		supplierRepo:    supplierRepo,
		productTypeRepo: productTypeRepo,
		auditService:    auditService,
	}
}

// ProductInput 商品写入字段
type ProductInput struct {
	Name             string
	ArticleCode      string
	SupplierID       uint
	ProductTypeID    *uint
	UnitsPerBox      *int
	UnitsPerPallet   *int
	PricePerUnit     *models.Money
	CSRDRequirements string
	IsActive         *bool
}

// 校验供应商与商品类型存在性
func (s *ProductService) validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.ArticleCode) == "" {
		return ErrValidation
	}
	supplier, err := s.supplierRepo.GetByID(input.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return ErrSupplierNotFound
	}
	if input.ProductTypeID != nil {
		productType, err := s.productTypeRepo.GetByID(*input.ProductTypeID)
		if err != nil {
			return err
		}
		if productType == nil {
			return ErrProductTypeNotFound
		}
	}
	return nil
}

// List 查询商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get 获取商品详情
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品并记录审计
func (s *ProductService) Create(actorID uint, input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:             strings.TrimSpace(input.Name),
		ArticleCode:      strings.TrimSpace(input.ArticleCode),
		SupplierID:       input.SupplierID,
		ProductTypeID:    input.ProductTypeID,
		UnitsPerBox:      input.UnitsPerBox,
		UnitsPerPallet:   input.UnitsPerPallet,
		PricePerUnit:     input.PricePerUnit,
		CSRDRequirements: strings.TrimSpace(input.CSRDRequirements),
		IsActive:         true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionCreate,
		EntityType: constants.EntityTypeProduct,
		EntityID:   fmt.Sprintf("%d", product.ID),
		Details:    models.JSON{"name": product.Name, "articleCode": product.ArticleCode},
	})
	return product, nil
}

// Update 更新商品并记录审计
func (s *ProductService) Update(actorID uint, id uint, input ProductInput) (*models.Product, error) {
	existing, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":              strings.TrimSpace(input.Name),
		"article_code":      strings.TrimSpace(input.ArticleCode),
		"supplier_id":       input.SupplierID,
		"product_type_id":   input.ProductTypeID,
		"units_per_box":     input.UnitsPerBox,
		"units_per_pallet":  input.UnitsPerPallet,
		"price_per_unit":    input.PricePerUnit,
		"csrd_requirements": strings.TrimSpace(input.CSRDRequirements),
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if err := s.productRepo.Update(id, updates); err != nil {
		return nil, err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionUpdate,
		EntityType: constants.EntityTypeProduct,
		EntityID:   fmt.Sprintf("%d", id),
		Details:    models.JSON{"name": strings.TrimSpace(input.Name)},
	})
	return s.productRepo.GetByID(id)
}

// Delete 软删除商品并记录审计
func (s *ProductService) Delete(actorID uint, id uint) error {
	existing, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionDelete,
		EntityType: constants.EntityTypeProduct,
		EntityID:   fmt.Sprintf("%d", id),
		Details:    models.JSON{"name": existing.Name},
	})
	return nil
}
