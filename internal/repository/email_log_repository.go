package repository

import (
	"errors"

	"github.com/supply-hub/supply-hub/internal/models"

	"gorm.io/gorm"
)

// EmailLogRepository 邮件记录数据访问接口（只追加）
type EmailLogRepository interface {
	Create(log *models.EmailLog) error
	GetByID(id uint) (*models.EmailLog, error)
	List(filter EmailLogListFilter) ([]models.EmailLog, int64, error)
	UpdatePreviewURL(id uint, url string) error
	WithTx(tx *gorm.DB) *GormEmailLogRepository
}

// GormEmailLogRepository GORM 实现
type GormEmailLogRepository struct {
	db *gorm.DB
}

// NewEmailLogRepository 创建邮件记录仓库
func NewEmailLogRepository(db *gorm.DB) *GormEmailLogRepository {
	return &GormEmailLogRepository{db: db}
}

// WithTx 绑定事务
func (r *GormEmailLogRepository) WithTx(tx *gorm.DB) *GormEmailLogRepository {
	if tx == nil {
		return r
	}
	return &GormEmailLogRepository{db: tx}
}

// Create 写入一条邮件记录
func (r *GormEmailLogRepository) Create(log *models.EmailLog) error {
	return r.db.Create(log).Error
}

// UpdatePreviewURL 回填 capture 通道的预览链接（编号在落库后才可知）
func (r *GormEmailLogRepository) UpdatePreviewURL(id uint, url string) error {
	return r.db.Model(&models.EmailLog{}).Where("id = ?", id).Update("preview_url", url).Error
}

// GetByID 根据 ID 获取邮件记录
func (r *GormEmailLogRepository) GetByID(id uint) (*models.EmailLog, error) {
	var log models.EmailLog
	if err := r.db.Preload("Order").Preload("SentBy").First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// List 查询邮件记录列表
func (r *GormEmailLogRepository) List(filter EmailLogListFilter) ([]models.EmailLog, int64, error) {
	var logs []models.EmailLog
	query := r.db.Model(&models.EmailLog{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.OrderID != 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.SentByID != 0 {
		query = query.Where("sent_by_id = ?", filter.SentByID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Order").Order("id desc").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
