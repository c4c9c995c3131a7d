package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
)

// SessionController handles held sessions and attendance reads
type SessionController struct {
	attendanceService services.AttendanceService
}

// NewSessionController creates a new SessionController
func NewSessionController(attendanceService services.AttendanceService) *SessionController {
	return &SessionController{attendanceService: attendanceService}
}

// Create records a held session with its attendance
// @Summary Record a session with attendance
// @Description Writes the session and every attendance record atomically. A second submission for the same schedule and date is rejected, so retries cannot double-record.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSessionRequest true "Session and attendance data"
// @Success 201 {object} dto.APIResponse "Session recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or student outside the group"
// @Failure 409 {object} dto.ErrorResponse "Session already recorded for that date"
// @Router /sessions [post]
func (c *SessionController) Create(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	sessionID, err := c.attendanceService.SubmitSession(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(gin.H{"sessionId": sessionID}))
}

// GetStudentHistory lists a student's full attendance history
// @Summary Get a student's attendance history
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceDetailResponse} "Attendance records, possibly empty"
// @Router /attendance/students/{id} [get]
func (c *SessionController) GetStudentHistory(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if !c.canReadStudent(ctx, studentID) {
		return
	}

	details, err := c.attendanceService.GetStudentHistory(ctx, studentID, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromAttendanceDetails(details)))
}

// GetStudentCourseHistory lists a student's attendance in one course
// @Summary Get a student's attendance history for a course
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceDetailResponse} "Attendance records, possibly empty"
// @Router /attendance/students/{id}/courses/{courseId} [get]
func (c *SessionController) GetStudentCourseHistory(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}
	if !c.canReadStudent(ctx, studentID) {
		return
	}

	details, err := c.attendanceService.GetStudentHistory(ctx, studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromAttendanceDetails(details)))
}

// canReadStudent lets staff read any student's history and students only
// their own.
func (c *SessionController) canReadStudent(ctx *gin.Context, studentID int64) bool {
	role, _ := middleware.CallerRole(ctx)
	if role != models.RoleStudent {
		return true
	}

	callerID, ok := middleware.CallerID(ctx)
	if ok && callerID == studentID {
		return true
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
		WithDetails("Students may only read their own attendance")
	ctx.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
	return false
}
