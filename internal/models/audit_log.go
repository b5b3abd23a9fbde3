package models

import (
	"time"
)

// AuditLog 审计日志表（只追加，不更新）
type AuditLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`               // 主键
	UserID     uint      `gorm:"index;not null" json:"userId"`       // 操作人ID
	Action     string    `gorm:"index;not null" json:"action"`       // 动作
	EntityType string    `gorm:"index;not null" json:"entityType"`   // 实体类型
	EntityID   string    `gorm:"index;not null" json:"entityId"`     // 实体ID
	Details    JSON      `gorm:"type:json" json:"details,omitempty"` // 结构化详情
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`             // 记录时间
}

// TableName 指定表名
func (AuditLog) TableName() string {
	return "audit_logs"
}
