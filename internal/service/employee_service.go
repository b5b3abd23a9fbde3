package service

import (
	"fmt"
	"strings"

	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"
)

// EmployeeService 员工账号管理服务（管理员专用）
type EmployeeService struct {
	userRepo     repository.UserRepository
	authService  *AuthService
	auditService *AuditService
}

// NewEmployeeService 创建员工管理服务
func NewEmployeeService(userRepo repository.UserRepository, authService *AuthService, auditService *AuditService) *EmployeeService {
	return &EmployeeService{
		userRepo:     userRepo,
		authService:  authService,
		auditService: auditService,
	}
}

// EmployeeInput 员工写入字段
type EmployeeInput struct {
	Email      string
	Password   string // 创建时必填，更新时留空表示不改密码
	FirstName  string
	MiddleName string
	LastName   string
	Roles      []string
	IsActive   *bool
}

func (in EmployeeInput) validate(requirePassword bool) error {
	if strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" {
		return ErrValidation
	}
	if requirePassword && strings.TrimSpace(in.Password) == "" {
		return ErrValidation
	}
	if len(in.Roles) == 0 {
		return ErrValidation
	}
	for _, role := range in.Roles {
		if !constants.IsValidRole(role) {
			return ErrValidation
		}
	}
	return nil
}

// List 查询员工列表
func (s *EmployeeService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// Get 获取员工详情
func (s *EmployeeService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create 创建员工并记录审计
func (s *EmployeeService) Create(actorID uint, input EmployeeInput) (*models.User, error) {
	if err := input.validate(true); err != nil {
		return nil, err
	}
	existing, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.authService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		MiddleName:   strings.TrimSpace(input.MiddleName),
		LastName:     strings.TrimSpace(input.LastName),
		Roles:        models.StringArray(input.Roles),
		IsActive:     true,
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionCreate,
		EntityType: constants.EntityTypeUser,
		EntityID:   fmt.Sprintf("%d", user.ID),
		Details:    models.JSON{"email": user.Email},
	})
	return user, nil
}

// Update 更新员工并记录审计
func (s *EmployeeService) Update(actorID uint, id uint, input EmployeeInput) (*models.User, error) {
	existing, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}
	if err := input.validate(false); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != existing.Email {
		taken, err := s.userRepo.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != id {
			return nil, ErrEmailTaken
		}
	}

	updates := map[string]interface{}{
		"email":       email,
		"first_name":  strings.TrimSpace(input.FirstName),
		"middle_name": strings.TrimSpace(input.MiddleName),
		"last_name":   strings.TrimSpace(input.LastName),
		"roles":       models.StringArray(input.Roles),
	}
	if strings.TrimSpace(input.Password) != "" {
		hash, err := s.authService.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hash
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if err := s.userRepo.Update(id, updates); err != nil {
		return nil, err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionUpdate,
		EntityType: constants.EntityTypeUser,
		EntityID:   fmt.Sprintf("%d", id),
		Details:    models.JSON{"email": email},
	})
	return s.userRepo.GetByID(id)
}

// Delete 软删除员工并记录审计
func (s *EmployeeService) Delete(actorID uint, id uint) error {
	existing, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}
	s.auditService.RecordBestEffort(AuditInput{
		UserID:     actorID,
		Action:     constants.AuditActionDelete,
		EntityType: constants.EntityTypeUser,
		EntityID:   fmt.Sprintf("%d", id),
		Details:    models.JSON{"email": existing.Email},
	})
	return nil
}
