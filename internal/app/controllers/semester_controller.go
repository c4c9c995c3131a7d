package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/helpers"
)

// SemesterController handles semester endpoints
type SemesterController struct {
	semesterService services.SemesterService
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService services.SemesterService) *SemesterController {
	return &SemesterController{semesterService: semesterService}
}

func semesterFromRequest(req *dto.SemesterRequest) (*models.Semester, error) {
	start, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date must use the %s format", apperrors.ErrValidationFailed, helpers.DateLayout)
	}
	end, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date must use the %s format", apperrors.ErrValidationFailed, helpers.DateLayout)
	}
	return &models.Semester{
		SemesterNumber: req.SemesterNumber,
		StartDate:      start,
		EndDate:        end,
		AcademicYearID: req.AcademicYearID,
	}, nil
}

// Create adds a new semester
// @Summary Create a semester
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SemesterRequest true "Semester data"
// @Success 201 {object} dto.APIResponse{data=dto.SemesterResponse} "Semester created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Router /semesters [post]
func (c *SemesterController) Create(ctx *gin.Context) {
	var req dto.SemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	semester, err := semesterFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.semesterService.Create(ctx, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	semester.ID = id
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.FromSemester(semester)))
}

// GetAll lists semesters, optionally scoped to an academic year
// @Summary List semesters
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param academicYearId query int false "Limit to one academic year"
// @Success 200 {object} dto.APIResponse{data=[]dto.SemesterResponse} "Semesters"
// @Router /semesters [get]
func (c *SemesterController) GetAll(ctx *gin.Context) {
	academicYearID := queryInt64(ctx, "academicYearId")

	semesters, err := c.semesterService.GetAll(ctx, academicYearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromSemesters(semesters)))
}

// GetByID retrieves one semester
// @Summary Get a semester
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.SemesterResponse} "Semester"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{id} [get]
func (c *SemesterController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	semester, err := c.semesterService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromSemester(semester)))
}

// Update rewrites a semester
// @Summary Update a semester
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param request body dto.SemesterRequest true "Semester data"
// @Success 200 {object} dto.APIResponse{data=dto.SemesterResponse} "Semester updated"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{id} [put]
func (c *SemesterController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	semester, err := semesterFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	semester.ID = id

	if err := c.semesterService.Update(ctx, semester); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromSemester(semester)))
}

// Delete removes a semester
// @Summary Delete a semester
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse "Semester deleted"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 409 {object} dto.ErrorResponse "Semester is referenced"
// @Router /semesters/{id} [delete]
func (c *SemesterController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.semesterService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Semester deleted"))
}
