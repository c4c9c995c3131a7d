package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
)

// RoleController exposes the seeded role catalog
type RoleController struct {
	roleService services.RoleService
}

// NewRoleController creates a new RoleController
func NewRoleController(roleService services.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// GetAll lists all roles
// @Summary List roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Role} "Roles"
// @Router /roles [get]
func (c *RoleController) GetAll(ctx *gin.Context) {
	roles, err := c.roleService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(roles))
}

// GetByID retrieves one role
// @Summary Get a role
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} dto.APIResponse{data=models.Role} "Role"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Router /roles/{id} [get]
func (c *RoleController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	role, err := c.roleService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(role))
}
