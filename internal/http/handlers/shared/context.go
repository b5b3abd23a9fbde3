package shared

import (
	"github.com/supply-hub/supply-hub/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextUint 从上下文读取 uint 值并统一处理错误响应。
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, "Unauthorized")
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			response.BadRequest(c, "Invalid identity in context")
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			response.BadRequest(c, "Invalid identity in context")
			return 0, false
		}
		return uint(v), true
	default:
		response.InternalError(c, "")
		return 0, false
	}
}

// GetContextRoles 从上下文读取角色集合，类型不符时返回空集合。
func GetContextRoles(c *gin.Context, key string) []string {
	value, exists := c.Get(key)
	if !exists {
		return nil
	}
	if roles, ok := value.([]string); ok {
		return roles
	}
	return nil
}
