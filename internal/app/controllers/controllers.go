package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models/dto"
)

// parseIDParam reads a positive int64 path parameter, responding with a 400
// and returning false when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// parseLevelParam reads the level path parameter as a plain int.
func parseLevelParam(ctx *gin.Context) (int, bool) {
	level, err := strconv.Atoi(ctx.Param("level"))
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid level parameter").
			WithDetails("level must be a number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return level, true
}

// queryInt64 reads an optional int64 query parameter, treating absence and
// malformed values as zero.
func queryInt64(ctx *gin.Context, name string) int64 {
	value, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
