package public

import "github.com/supply-hub/supply-hub/internal/provider"

// Handler 员工侧 API 处理器入口
// 说明：该处理器用于登录及员工日常订货、收货接口。
type Handler struct {
	*provider.Container
}

// New 创建员工侧处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
