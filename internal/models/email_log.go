package models

import (
	"time"
)

// EmailLog 邮件发送记录表（每次发送尝试一条）
type EmailLog struct {
	ID         uint        `gorm:"primarykey" json:"id"`                   // 主键
	Type       string      `gorm:"index;not null" json:"type"`             // 邮件类型
	Subject    string      `gorm:"not null" json:"subject"`                // 主题
	Recipient  string      `gorm:"not null" json:"recipient"`              // 收件人
	CC         StringArray `gorm:"type:json" json:"cc"`                    // 抄送
	OrderID    *uint       `gorm:"index" json:"orderId,omitempty"`         // 关联订单ID
	SentByID   *uint       `gorm:"index" json:"sentById,omitempty"`        // 触发人ID
	Provider   string      `gorm:"not null" json:"provider"`               // 投递通道
	PreviewURL string      `gorm:"default:''" json:"previewUrl,omitempty"` // 预览链接（capture 通道）
	Status     string      `gorm:"index;not null" json:"status"`           // SENT / FAILED
	Error      string      `gorm:"type:text" json:"error,omitempty"`       // 失败原因
	Body       string      `gorm:"type:text" json:"body,omitempty"`        // 邮件正文（HTML）
	SentAt     time.Time   `gorm:"index;not null" json:"sentAt"`           // 发送时间
	CreatedAt  time.Time   `json:"createdAt"`                              // 创建时间

	Order  *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`   // 关联订单
	SentBy *User  `gorm:"foreignKey:SentByID" json:"sentBy,omitempty"` // 触发人
}

// TableName 指定表名
func (EmailLog) TableName() string {
	return "email_logs"
}
