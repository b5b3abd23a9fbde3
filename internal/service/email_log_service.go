package service

import (
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/repository"
)

// EmailLogService 邮件记录查询服务
type EmailLogService struct {
	emailLogRepo repository.EmailLogRepository
	accessPolicy *AccessPolicy
}

// NewEmailLogService 创建邮件记录服务
func NewEmailLogService(emailLogRepo repository.EmailLogRepository, accessPolicy *AccessPolicy) *EmailLogService {
	return &EmailLogService{emailLogRepo: emailLogRepo, accessPolicy: accessPolicy}
}

// List 查询邮件记录，普通员工静默收窄到自己触发的邮件
func (s *EmailLogService) List(actor Actor, filter repository.EmailLogListFilter) ([]models.EmailLog, int64, error) {
	filter.SentByID = s.accessPolicy.ScopeEmployeeID(actor)
	return s.emailLogRepo.List(filter)
}

// Get 获取邮件记录详情（capture 预览链接的落点）
func (s *EmailLogService) Get(actor Actor, id uint) (*models.EmailLog, error) {
	log, err := s.emailLogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrNotFound
	}
	if !actor.IsAdmin() && log.SentByID != nil && *log.SentByID != actor.UserID {
		return nil, ErrForbidden
	}
	return log, nil
}
