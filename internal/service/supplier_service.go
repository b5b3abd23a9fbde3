package service

import (
	"fmt"
	"strings"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"
)

// SupplierService 供应商主数据服务
type SupplierService struct {
	supplierRepo repository.SupplierRepository
	auditService *AuditService
}

// NewSupplierService 创建供应商服务
func NewSupplierService(supplierRepo repository.SupplierRepository, auditService *AuditService) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, auditService: auditService}
}

// SupplierInput 供应商写入字段
type SupplierInput struct {
	Name         string
	Email        string
	CCEmails     []string
	ContactName  string
	Phone        string
	ArticleGroup string
	IsActive     *bool
}

func (in SupplierInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return ErrValidation
	}
	if !constants.IsValidArticleGroup(in.ArticleGroup) {
		return ErrValidation
	}
	return nil
}

// List 查询供应商列表
func (s *SupplierService) List(filter repository.SupplierListFilter) ([]models.Supplier, int64, error) {
	return s.supplierRepo.List(filter)
}

// Get 获取供应商详情
func (s *SupplierService) Get(id uint) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

// Create 创建供应商并记录审计
func (s *SupplierService) Create(actorID uint, input SupplierInput) (*models.Supplier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	supplier := &models.Supplier{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		CCEmails:     models.StringArray(input.CCEmails),
		ContactName:  strings.TrimSpace(input.ContactName),
		Phone:        strings.TrimSpace(input.Phone),
		ArticleGroup: input.ArticleGroup,
		IsActive:     true,
	}
	if input.IsActive != nil {
		supplier.IsActive = *input.IsActive
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionCreate,
		EntityType: constants.EntityTypeSupplier,
		EntityID:   fmt.Sprintf("%d", supplier.ID),
		Details:    models.JSON{"name": supplier.Name},
	})
	return supplier, nil
}

// Update 更新供应商并记录审计
func (s *SupplierService) Update(actorID uint, id uint, input SupplierInput) (*models.Supplier, error) {
	existing, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSupplierNotFound
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":          strings.TrimSpace(input.Name),
		"email":         strings.TrimSpace(input.Email),
		"cc_emails":     models.StringArray(input.CCEmails),
		"contact_name":  strings.TrimSpace(input.ContactName),
		"phone":         strings.TrimSpace(input.Phone),
		"article_group": input.ArticleGroup,
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if err := s.supplierRepo.Update(id, updates); err != nil {
		return nil, err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionUpdate,
		EntityType: constants.EntityTypeSupplier,
		EntityID:   fmt.Sprintf("%d", id),
		Details:    models.JSON{"name": strings.TrimSpace(input.Name)},
	})
	return s.supplierRepo.GetByID(id)
}

// Delete 软删除供应商并记录审计
func (s *SupplierService) Delete(actorID uint, id uint) error {
	existing, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSupplierNotFound
	}
	if err := s.supplierRepo.Delete(id); err != nil {
		return err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionDelete,
		EntityType: constants.EntityTypeSupplier,
		EntityID:   fmt.Sprintf("%d", id),
		Details:    models.JSON{"name": existing.Name},
	})
	return nil
}
