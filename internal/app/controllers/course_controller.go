package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
)

// CourseController handles course endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

func courseFromRequest(req *dto.CourseRequest) *models.Course {
	return &models.Course{
		CourseCode:     req.CourseCode,
		CourseName:     req.CourseName,
		CreditHours:    req.CreditHours,
		CourseLevel:    req.CourseLevel,
		AcademicYearID: req.AcademicYearID,
		SemesterID:     req.SemesterID,
	}
}

// Create adds a new course
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Router /courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	course := courseFromRequest(&req)
	id, err := c.courseService.Create(ctx, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.FromCourse(created)))
}

// GetAll lists all courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses"
// @Router /courses [get]
func (c *CourseController) GetAll(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromCourses(courses)))
}

// GetByLevel lists the courses taught at one level
// @Summary List courses by level
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param level path int true "Level (1-4)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses at the level, possibly empty"
// @Failure 400 {object} dto.ErrorResponse "Level out of range"
// @Router /courses/level/{level} [get]
func (c *CourseController) GetByLevel(ctx *gin.Context) {
	level, ok := parseLevelParam(ctx)
	if !ok {
		return
	}

	courses, err := c.courseService.GetByLevel(ctx, level)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromCourses(courses)))
}

// GetByID retrieves one course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromCourse(course)))
}

// GetLevel returns just the level of one course
// @Summary Get a course's level
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Level"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/level [get]
func (c *CourseController) GetLevel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	level, err := c.courseService.GetLevel(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{
		"courseId":  id,
		"level":     level,
		"levelName": models.LevelName(level),
	}))
}

// Update rewrites a course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseRequest true "Course data"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	course := courseFromRequest(&req)
	course.ID = id

	if err := c.courseService.Update(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromCourse(updated)))
}

// Delete removes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course is referenced by schedules"
// @Router /courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted"))
}
