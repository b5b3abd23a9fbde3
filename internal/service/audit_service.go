package service

import (
	"github.com/supply-hub/supply-hub/internal/logger"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"

	"gorm.io/gorm"
)

// AuditService 审计记录服务（只追加，不提供查询）
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService 创建审计服务
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// AuditInput 审计记录输入
type AuditInput struct {
	UserID     uint
	Action     string
	EntityType string
	EntityID   string
	Details    models.JSON
}

// Record 在给定事务内写入一条审计记录，与业务变更同生共死。
// tx 为 nil 时直接走默认连接（事务外的补充记录）。
func (s *AuditService) Record(tx *gorm.DB, input AuditInput) error {
	log := &models.AuditLog{
		UserID:     input.UserID,
		Action:     input.Action,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		Details:    input.Details,
	}
	return s.auditRepo.WithTx(tx).Create(log)
}

// RecordBestEffort 事务外写入审计记录，失败只记日志不上抛。
func (s *AuditService) RecordBestEffort(input AuditInput) {
	if err := s.Record(nil, input); err != nil {
		logger.Warnw("audit_record_failed",
			"action", input.Action,
			"entity_type", input.EntityType,
			"entity_id", input.EntityID,
			"error", err,
		)
	}
}
