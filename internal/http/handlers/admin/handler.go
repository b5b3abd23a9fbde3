package admin

import "github.com/supply-hub/supply-hub/internal/provider"

// Handler 管理端接口处理器入口
// 说明：该处理器用于员工、供应商、商品等主数据的管理接口。
type Handler struct {
	*provider.Container
}

// New 创建管理端处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
