package public

import (
	"errors"
	"net/http"
	"time"

	"github.com/supply-hub/supply-hub/internal/http/response"
	"github.com/supply-hub/supply-hub/internal/models"
	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// Login 员工登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Email and password are required", err)
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		if errors.Is(err, service.ErrAccountDisabled) {
			respondError(c, http.StatusForbidden, "Account disabled", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	response.Success(c, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

// GetCurrentUser 获取当前员工信息
func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.AuthService.GetProfile(uid)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch profile", err)
		return
	}

	response.Success(c, user)
}
