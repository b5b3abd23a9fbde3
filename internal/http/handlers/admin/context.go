package admin

import (
	"errors"
	"net/http"
	"strconv"

	handlershared "github.com/supply-hub/supply-hub/internal/http/handlers/shared"
	"github.com/supply-hub/supply-hub/internal/service"

	"github.com/gin-gonic/gin"
)

func getActorID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

func respondError(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondError(c, status, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// respondMasterDataError 统一主数据接口的业务错误映射。
func respondMasterDataError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(c, http.StatusBadRequest, "Validation failed", nil)
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusConflict, "Email already in use", nil)
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrProductTypeNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg, nil)
	default:
		respondError(c, http.StatusInternalServerError, "Operation failed", err)
	}
}
