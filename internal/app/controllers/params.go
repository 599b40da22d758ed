package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"village-admin-service/internal/error/response"
)

// parseIDParam reads the :id path parameter. On failure it writes the
// validation response and reports false.
func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ParamError(ctx, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
