package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
)

// GuidanceGroupController handles guidance group endpoints
type GuidanceGroupController struct {
	groupService services.GuidanceGroupService
}

// NewGuidanceGroupController creates a new GuidanceGroupController
func NewGuidanceGroupController(groupService services.GuidanceGroupService) *GuidanceGroupController {
	return &GuidanceGroupController{groupService: groupService}
}

// Create adds a new guidance group
// @Summary Create a guidance group
// @Tags guidance-groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GuidanceGroupRequest true "Guidance group data"
// @Success 201 {object} dto.APIResponse{data=models.GuidanceGroup} "Guidance group created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /guidance-groups [post]
func (c *GuidanceGroupController) Create(ctx *gin.Context) {
	var req dto.GuidanceGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	group := &models.GuidanceGroup{GroupName: req.GroupName, Level: req.Level}
	id, err := c.groupService.Create(ctx, group)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	group.ID = id
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(group))
}

// GetAll lists all guidance groups
// @Summary List guidance groups
// @Tags guidance-groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.GuidanceGroup} "Guidance groups"
// @Router /guidance-groups [get]
func (c *GuidanceGroupController) GetAll(ctx *gin.Context) {
	groups, err := c.groupService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(groups))
}

// GetByLevel lists the guidance groups at one level
// @Summary List guidance groups by level
// @Tags guidance-groups
// @Produce json
// @Security BearerAuth
// @Param level path int true "Level (1-4)"
// @Success 200 {object} dto.APIResponse{data=[]models.GuidanceGroup} "Groups at the level, possibly empty"
// @Failure 400 {object} dto.ErrorResponse "Level out of range"
// @Router /guidance-groups/level/{level} [get]
func (c *GuidanceGroupController) GetByLevel(ctx *gin.Context) {
	level, ok := parseLevelParam(ctx)
	if !ok {
		return
	}

	groups, err := c.groupService.GetByLevel(ctx, level)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(groups))
}

// GetByID retrieves one guidance group
// @Summary Get a guidance group
// @Tags guidance-groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guidance group ID"
// @Success 200 {object} dto.APIResponse{data=models.GuidanceGroup} "Guidance group"
// @Failure 404 {object} dto.ErrorResponse "Guidance group not found"
// @Router /guidance-groups/{id} [get]
func (c *GuidanceGroupController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	group, err := c.groupService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(group))
}

// Update rewrites a guidance group
// @Summary Update a guidance group
// @Tags guidance-groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guidance group ID"
// @Param request body dto.GuidanceGroupRequest true "Guidance group data"
// @Success 200 {object} dto.APIResponse{data=models.GuidanceGroup} "Guidance group updated"
// @Failure 404 {object} dto.ErrorResponse "Guidance group not found"
// @Router /guidance-groups/{id} [put]
func (c *GuidanceGroupController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.GuidanceGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	group := &models.GuidanceGroup{ID: id, GroupName: req.GroupName, Level: req.Level}
	if err := c.groupService.Update(ctx, group); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(group))
}

// Delete removes a guidance group
// @Summary Delete a guidance group
// @Tags guidance-groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guidance group ID"
// @Success 200 {object} dto.APIResponse "Guidance group deleted"
// @Failure 404 {object} dto.ErrorResponse "Guidance group not found"
// @Failure 409 {object} dto.ErrorResponse "Guidance group has students or schedules"
// @Router /guidance-groups/{id} [delete]
func (c *GuidanceGroupController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.groupService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Guidance group deleted"))
}
