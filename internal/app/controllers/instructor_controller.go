package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
)

// InstructorController handles instructor endpoints
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{instructorService: instructorService}
}

// Create registers a new instructor with their account
// @Summary Create an instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InstructorRequest true "Instructor and account data"
// @Success 201 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email or national number already exists"
// @Router /instructors [post]
func (c *InstructorController) Create(ctx *gin.Context) {
	var req dto.InstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.instructorService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.instructorService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.FromInstructor(created)))
}

// GetAll lists all instructors
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors"
// @Router /instructors [get]
func (c *InstructorController) GetAll(ctx *gin.Context) {
	instructors, err := c.instructorService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromInstructors(instructors)))
}

// GetByID retrieves one instructor
// @Summary Get an instructor
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromInstructor(instructor)))
}

// Update rewrites an instructor and their account
// @Summary Update an instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Param request body dto.InstructorRequest true "Instructor and account data"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor updated"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [put]
func (c *InstructorController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.InstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.instructorService.Update(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.instructorService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromInstructor(updated)))
}

// Delete removes an instructor and their account
// @Summary Delete an instructor
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse "Instructor deleted"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [delete]
func (c *InstructorController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.instructorService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Instructor deleted"))
}
