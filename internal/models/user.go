package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/supply-hub/supply-hub/internal/constants"
)

// User 员工账号表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                   // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`      // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                      // 密码哈希（不返回给前端）
	FirstName    string         `gorm:"not null" json:"firstName"`              // 名
	MiddleName   string         `gorm:"default:''" json:"middleName,omitempty"` // 中间名
	LastName     string         `gorm:"not null" json:"lastName"`               // 姓
	Roles        StringArray    `gorm:"type:json;not null" json:"roles"`        // 角色集合（ADMIN/USER）
	IsActive     bool           `gorm:"not null;default:true" json:"isActive"`  // 是否启用
	LastLoginAt  *time.Time     `json:"lastLoginAt,omitempty"`                  // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`                 // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updatedAt"`                 // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IsAdmin 判断是否拥有管理员角色
func (u *User) IsAdmin() bool {
	return u.Roles.Contains(constants.RoleAdmin)
}

// FullName 返回展示用全名
func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.FirstName, u.MiddleName, u.LastName} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " ")
}
