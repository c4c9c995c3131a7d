package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
	"github.com/bisplatform/bisbackend/internal/pkg/helpers"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Create registers a new student with their account
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentRequest true "Student and account data"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email or national number already exists"
// @Router /students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.studentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.FromStudent(created)))
}

// GetAll lists students page by page
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Students"
// @Router /students [get]
func (c *StudentController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students, total, err := c.studentService.GetAll(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.PaginatedResponse{
		Items:      dto.FromStudents(students),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// GetByID retrieves one student
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromStudent(student)))
}

// GetBySessionGroup lists the roster behind a session group
// @Summary List students of a session group
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param sessionGroupId path int true "Session group ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Roster, possibly empty"
// @Router /students/session-group/{sessionGroupId} [get]
func (c *StudentController) GetBySessionGroup(ctx *gin.Context) {
	sessionGroupID, ok := parseIDParam(ctx, "sessionGroupId")
	if !ok {
		return
	}

	students, err := c.studentService.GetBySessionGroup(ctx, sessionGroupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromStudents(students)))
}

// GetByGroup lists the students enrolled in a guidance group
// @Summary List students of a guidance group
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guidance group ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Roster, possibly empty"
// @Router /guidance-groups/{id}/students [get]
func (c *StudentController) GetByGroup(ctx *gin.Context) {
	groupID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.studentService.GetByGroup(ctx, groupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromStudents(students)))
}

// Upload bulk-imports students from an xlsx workbook
// @Summary Import students from a spreadsheet
// @Description Accepts an xlsx file whose first sheet holds one student per row after a header row
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Workbook (.xlsx)"
// @Success 200 {object} dto.APIResponse{data=dto.ImportSummary} "Import summary"
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Router /students/upload [post]
func (c *StudentController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing workbook file").
			WithDetails("A multipart field named 'file' is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unreadable workbook file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}
	defer file.Close()

	summary, err := c.studentService.ImportFromWorkbook(ctx, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary))
}

// Update rewrites a student and their account
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.StudentRequest true "Student and account data"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.studentService.Update(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FromStudent(updated)))
}

// Delete removes a student and their account
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student has recorded attendance"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted"))
}
