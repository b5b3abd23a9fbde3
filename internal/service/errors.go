package service

import "errors"

// 服务层哨兵错误，由 HTTP 层映射为对应状态码
var (
	// 通用
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")

	// 认证
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account disabled")

	// 下单
	ErrOrderItemsRequired      = errors.New("order requires at least one item")
	ErrInvalidOrderItem        = errors.New("invalid order item")
	ErrSupplierNotFound        = errors.New("supplier not found")
	ErrSupplierInactive        = errors.New("supplier is not active")
	ErrProductNotFound         = errors.New("product not found")
	ErrProductInactive         = errors.New("product is not active")
	ErrProductSupplierMismatch = errors.New("product does not belong to supplier")
	ErrOrderCreateFailed       = errors.New("order create failed")

	// 收货
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderCancelled     = errors.New("cannot receive goods for cancelled order")
	ErrOrderAlreadyClosed = errors.New("order already fully received")
	ErrItemNotInOrder     = errors.New("order item does not belong to order")
	ErrInvalidReceiveQty  = errors.New("invalid received quantity")

	// 主数据
	ErrProductTypeNotFound = errors.New("product type not found")
	ErrEmailTaken          = errors.New("email already in use")
	ErrUserNotFound        = errors.New("user not found")

	// 邮件
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")

	// 队列
	ErrQueueUnavailable = errors.New("queue unavailable")
)
