package service

import (
	"github.com/supply-hub/supply-hub/internal/constants"
	"github.com/supply-hub/supply-hub/internal/models"
)

// Actor 当前操作人身份
type Actor struct {
	UserID uint
	Roles  models.StringArray
}

// IsAdmin 判断操作人是否为管理员
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(constants.RoleAdmin)
}

// AccessPolicy 订单访问策略。管理员可访问任意订单，
// 普通员工只能访问自己下的订单。
type AccessPolicy struct{}

// NewAccessPolicy 创建访问策略
func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanAccessOrder 判断操作人能否访问指定订单。
// 订单存在但归属他人时返回 ErrForbidden（而非 404），
// 列表查询不走此判定，由 ScopeOrderFilter 静默收窄。
func (p *AccessPolicy) CanAccessOrder(actor Actor, order *models.Order) error {
	if order == nil {
		return ErrOrderNotFound
	}
	if actor.IsAdmin() {
		return nil
	}
	if order.EmployeeID != actor.UserID {
		return ErrForbidden
	}
	return nil
}

// ScopeEmployeeID 返回列表查询应使用的员工过滤 ID，
// 管理员返回 0（不过滤），普通员工返回自身 ID。
func (p *AccessPolicy) ScopeEmployeeID(actor Actor) uint {
	if actor.IsAdmin() {
		return 0
	}
	return actor.UserID
}
