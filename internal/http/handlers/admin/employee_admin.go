package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/supply-hub/supply-hub/internal/http/response"
	"github.com/supply-hub/supply-hub/internal/repository"
	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeRequest 员工写入请求
type EmployeeRequest struct {
	Email      string   `json:"email" binding:"required"`
	Password   string   `json:"password"`
	FirstName  string   `json:"firstName" binding:"required"`
	MiddleName string   `json:"middleName"`
	LastName   string   `json:"lastName" binding:"required"`
	Roles      []string `json:"roles" binding:"required"`
	IsActive   *bool    `json:"isActive"`
}

func (r EmployeeRequest) toInput() service.EmployeeInput {
	return service.EmployeeInput{
		Email:      r.Email,
		Password:   r.Password,
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		Roles:      r.Roles,
		IsActive:   r.IsActive,
	}
}

// ListEmployees 员工列表
func (h *Handler) ListEmployees(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	employees, total, err := h.EmployeeService.List(repository.UserListFilter{
		Page:       page,
		PageSize:   pageSize,
		Keyword:    strings.TrimSpace(c.Query("search")),
		Role:       strings.TrimSpace(c.Query("role")),
		OnlyActive: c.Query("onlyActive") == "true",
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch employees", err)
		return
	}

	response.SuccessWithPage(c, employees, response.NewPagination(page, pageSize, total))
}

// GetEmployee 员工详情
func (h *Handler) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	employee, err := h.EmployeeService.Get(id)
	if err != nil {
		respondMasterDataError(c, err, "Employee not found")
		return
	}

	response.Success(c, employee)
}

// CreateEmployee 创建员工
func (h *Handler) CreateEmployee(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	employee, err := h.EmployeeService.Create(actorID, req.toInput())
	if err != nil {
		respondMasterDataError(c, err, "Employee not found")
		return
	}

	response.Created(c, employee)
}

// UpdateEmployee 更新员工
func (h *Handler) UpdateEmployee(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	employee, err := h.EmployeeService.Update(actorID, id, req.toInput())
	if err != nil {
		respondMasterDataError(c, err, "Employee not found")
		return
	}

	response.Success(c, employee)
}

// DeleteEmployee 删除员工
func (h *Handler) DeleteEmployee(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.EmployeeService.Delete(actorID, id); err != nil {
		respondMasterDataError(c, err, "Employee not found")
		return
	}

	response.NoContent(c)
}
