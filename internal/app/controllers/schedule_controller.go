package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
)

// ScheduleController handles session schedule endpoints
type ScheduleController struct {
	scheduleService   services.ScheduleService
	attendanceService services.AttendanceService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(
	scheduleService services.ScheduleService,
	attendanceService services.AttendanceService,
) *ScheduleController {
	return &ScheduleController{
		scheduleService:   scheduleService,
		attendanceService: attendanceService,
	}
}

// Create adds a new weekly teaching slot
// @Summary Create a session schedule
// @Description Stores a recurring weekly slot and notifies the students of its guidance group
// @Tags session-schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleRequest true "Schedule data"
// @Success 201 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Room or group is busy in that slot"
// @Router /session-schedules [post]
func (c *ScheduleController) Create(ctx *gin.Context) {
	var req dto.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	created, err := c.scheduleService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.FromSchedule(created)))
}

// List retrieves schedules, narrowed by the most specific filter given
// @Summary List session schedules
// @Description A guidance group filter wins over a semester filter, which wins over an academic year filter; the group filter may be narrowed further by a semester
// @Tags session-schedules
// @Produce json
// @Security BearerAuth
// @Param guidanceGroupId query int false "Guidance group ID"
// @Param semesterId query int false "Semester ID"
// @Param academicYearId query int false "Academic year ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduleResponse} "Schedules, possibly empty"
// @Router /session-schedules [get]
func (c *ScheduleController) List(ctx *gin.Context) {
	filter := dto.ScheduleFilter{
		GuidanceGroupID: queryInt64(ctx, "guidanceGroupId"),
		SemesterID:      queryInt64(ctx, "semesterId"),
		AcademicYearID:  queryInt64(ctx, "academicYearId"),
	}

	schedules, err := c.scheduleService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromSchedules(schedules)))
}

// GetByID retrieves one schedule
// @Summary Get a session schedule
// @Tags session-schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /session-schedules/{id} [get]
func (c *ScheduleController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	schedule, err := c.scheduleService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromSchedule(schedule)))
}

// GetSessionGroup resolves a schedule to its attending group
// @Summary Get the session group of a schedule
// @Tags session-schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=dto.SessionGroupResponse} "Session group"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /session-schedules/{id}/session-group [get]
func (c *ScheduleController) GetSessionGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	group, err := c.scheduleService.GetSessionGroup(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromSessionGroup(group)))
}

// GetAttendanceSheet prepares a blank attendance sheet for a schedule
// @Summary Get an attendance sheet for a schedule
// @Description Returns the schedule, its session group and the group roster with every student defaulted to present
// @Tags session-schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceSheet} "Attendance sheet"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /session-schedules/{id}/attendance-sheet [get]
func (c *ScheduleController) GetAttendanceSheet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sheet, err := c.attendanceService.BuildSheet(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(sheet))
}

// Update rewrites a schedule
// @Summary Update a session schedule
// @Description Moves the slot and notifies the students of its guidance group
// @Tags session-schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param request body dto.ScheduleRequest true "Schedule data"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule updated"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 409 {object} dto.ErrorResponse "Room or group is busy in that slot"
// @Router /session-schedules/{id} [put]
func (c *ScheduleController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.scheduleService.Update(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.scheduleService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromSchedule(updated)))
}

// Delete removes a schedule
// @Summary Delete a session schedule
// @Tags session-schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse "Schedule deleted"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 409 {object} dto.ErrorResponse "Schedule has held sessions"
// @Router /session-schedules/{id} [delete]
func (c *ScheduleController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.scheduleService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Schedule deleted"))
}
