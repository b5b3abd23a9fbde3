package constants

// 订单状态常量
const (
	OrderStatusPending           = "PENDING"
	OrderStatusPartiallyReceived = "PARTIALLY_RECEIVED"
	OrderStatusReceived          = "RECEIVED"
	OrderStatusCancelled         = "CANCELLED"
)

// 订购单位常量
const (
	UnitPiece  = "PIECE"
	UnitBox    = "BOX"
	UnitPallet = "PALLET"
)

// 用户角色常量
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// 供应商物料分组常量
const (
	ArticleGroupPackaging = "PACKAGING"
	ArticleGroupLabels    = "LABELS"
	ArticleGroupTape      = "TAPE"
	ArticleGroupPallets   = "PALLETS"
	ArticleGroupOther     = "OTHER"
)

// 审计动作常量
const (
	AuditActionCreate         = "CREATE"
	AuditActionUpdate         = "UPDATE"
	AuditActionDelete         = "DELETE"
	AuditActionLogin          = "LOGIN"
	AuditActionOrderPlaced    = "ORDER_PLACED"
	AuditActionGoodsReceived  = "GOODS_RECEIVED"
	AuditActionOrderEmailSent = "ORDER_EMAIL_SENT"
)

// 审计实体类型常量
const (
	EntityTypeOrder       = "Order"
	EntityTypeSupplier    = "Supplier"
	EntityTypeProduct     = "Product"
	EntityTypeProductType = "ProductType"
	EntityTypeUser        = "User"
)

// 邮件类型常量
const (
	EmailTypeOrder = "ORDER"
	EmailTypeTest  = "TEST"
)

// 邮件投递状态常量
const (
	EmailStatusSent   = "SENT"
	EmailStatusFailed = "FAILED"
)

// 邮件投递通道常量
const (
	EmailProviderSMTP    = "smtp"
	EmailProviderCapture = "capture"
)

// 异步任务类型常量
const (
	TaskOrderEmail = "email:order"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// OrderStatuses 全部订单状态集合
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPartiallyReceived,
	OrderStatusReceived,
	OrderStatusCancelled,
}

// Units 全部订购单位集合
var Units = []string{UnitPiece, UnitBox, UnitPallet}

// ArticleGroups 全部物料分组集合
var ArticleGroups = []string{
	ArticleGroupPackaging,
	ArticleGroupLabels,
	ArticleGroupTape,
	ArticleGroupPallets,
	ArticleGroupOther,
}

// Roles 全部用户角色集合
var Roles = []string{RoleAdmin, RoleUser}

// IsValidOrderStatus 校验订单状态是否合法
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPartiallyReceived, OrderStatusReceived, OrderStatusCancelled:
		return true
	}
	return false
}

// IsValidUnit 校验订购单位是否合法
func IsValidUnit(unit string) bool {
	switch unit {
	case UnitPiece, UnitBox, UnitPallet:
		return true
	}
	return false
}

// IsValidArticleGroup 校验物料分组是否合法
func IsValidArticleGroup(group string) bool {
	switch group {
	case ArticleGroupPackaging, ArticleGroupLabels, ArticleGroupTape, ArticleGroupPallets, ArticleGroupOther:
		return true
	}
	return false
}

// IsValidRole 校验用户角色是否合法
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// OrderStatusLabel 订单状态展示文案
func OrderStatusLabel(status string) string {
	switch status {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusPartiallyReceived:
		return "Partially Received"
	case OrderStatusReceived:
		return "Received"
	case OrderStatusCancelled:
		return "Cancelled"
	}
	return status
}

// UnitLabel 订购单位展示文案
func UnitLabel(unit string) string {
	switch unit {
	case UnitPiece:
		return "Piece(s)"
	case UnitBox:
		return "Box(es)"
	case UnitPallet:
		return "Pallet(s)"
	}
	return unit
}

// ArticleGroupLabel 物料分组展示文案
func ArticleGroupLabel(group string) string {
	switch group {
	case ArticleGroupPackaging:
		return "Packaging"
	case ArticleGroupLabels:
		return "Labels"
	case ArticleGroupTape:
		return "Tape"
	case ArticleGroupPallets:
		return "Pallets"
	case ArticleGroupOther:
		return "Other"
	}
	return group
}
