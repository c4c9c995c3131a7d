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

// AcademicYearController handles academic year endpoints
type AcademicYearController struct {
	yearService services.AcademicYearService
}

// NewAcademicYearController creates a new AcademicYearController
func NewAcademicYearController(yearService services.AcademicYearService) *AcademicYearController {
	return &AcademicYearController{yearService: yearService}
}

func yearFromRequest(req *dto.AcademicYearRequest) (*models.AcademicYear, error) {
	start, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date must use the %s format", apperrors.ErrValidationFailed, helpers.DateLayout)
	}
	end, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date must use the %s format", apperrors.ErrValidationFailed, helpers.DateLayout)
	}
	return &models.AcademicYear{StartDate: start, EndDate: end}, nil
}

// Create adds a new academic year
// @Summary Create an academic year
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AcademicYearRequest true "Academic year dates"
// @Success 201 {object} dto.APIResponse{data=dto.AcademicYearResponse} "Academic year created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /academic-years [post]
func (c *AcademicYearController) Create(ctx *gin.Context) {
	var req dto.AcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	year, err := yearFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.yearService.Create(ctx, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	year.ID = id
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.FromAcademicYear(year)))
}

// GetAll lists all academic years
// @Summary List academic years
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AcademicYearResponse} "Academic years"
// @Router /academic-years [get]
func (c *AcademicYearController) GetAll(ctx *gin.Context) {
	years, err := c.yearService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromAcademicYears(years)))
}

// GetByID retrieves one academic year
// @Summary Get an academic year
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Success 200 {object} dto.APIResponse{data=dto.AcademicYearResponse} "Academic year"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Router /academic-years/{id} [get]
func (c *AcademicYearController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	year, err := c.yearService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromAcademicYear(year)))
}

// Update rewrites an academic year
// @Summary Update an academic year
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Param request body dto.AcademicYearRequest true "Academic year dates"
// @Success 200 {object} dto.APIResponse{data=dto.AcademicYearResponse} "Academic year updated"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Router /academic-years/{id} [put]
func (c *AcademicYearController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	year, err := yearFromRequest(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	year.ID = id

	if err := c.yearService.Update(ctx, year); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromAcademicYear(year)))
}

// Delete removes an academic year
// @Summary Delete an academic year
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Success 200 {object} dto.APIResponse "Academic year deleted"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Failure 409 {object} dto.ErrorResponse "Academic year is referenced"
// @Router /academic-years/{id} [delete]
func (c *AcademicYearController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.yearService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Academic year deleted"))
}
