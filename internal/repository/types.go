package repository

import "time"

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	EmployeeID  uint // 0 表示不按员工过滤（管理员视角）
	SupplierID  uint
	Status      string
	OrderNumber string
	Receivable  bool // 仅 PENDING / PARTIALLY_RECEIVED
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// SupplierListFilter 查询供应商列表的过滤条件
type SupplierListFilter struct {
	Page         int
	PageSize     int
	Search       string
	ArticleGroup string
	OnlyActive   bool
}

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page          int
	PageSize      int
	Search        string
	SupplierID    uint
	ProductTypeID uint
	OnlyActive    bool
}

// UserListFilter 查询员工列表的过滤条件
type UserListFilter struct {
	Page       int
	PageSize   int
	Keyword    string
	Role       string
	OnlyActive bool
}

// EmailLogListFilter 查询邮件记录列表的过滤条件
type EmailLogListFilter struct {
	Page     int
	PageSize int
	Type     string
	OrderID  uint
	SentByID uint // 0 表示不按触发人过滤（管理员视角）
	Status   string
}
