package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/middleware"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

type stubAttendanceService struct {
	sheet     *dto.AttendanceSheet
	sessionID int64
	history   []*models.AttendanceDetail

	submitErr  error
	lastSubmit *dto.CreateSessionRequest
}

func (s *stubAttendanceService) BuildSheet(_ context.Context, scheduleID int64) (*dto.AttendanceSheet, error) {
	if s.sheet == nil {
		return nil, apperrors.ErrScheduleNotFound
	}
	return s.sheet, nil
}

func (s *stubAttendanceService) SubmitSession(_ context.Context, req *dto.CreateSessionRequest) (int64, error) {
	if s.submitErr != nil {
		return 0, s.submitErr
	}
	s.lastSubmit = req
	return s.sessionID, nil
}

func (s *stubAttendanceService) GetStudentHistory(_ context.Context, studentID, courseID int64) ([]*models.AttendanceDetail, error) {
	return s.history, nil
}

// asCaller injects the auth context JWTAuth would normally set.
func asCaller(userID int64, role models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, string(role))
		c.Next()
	}
}

func sessionRouter(stub *stubAttendanceService, caller gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if caller != nil {
		router.Use(caller)
	}
	controller := NewSessionController(stub)
	router.POST("/sessions", controller.Create)
	router.GET("/attendance/students/:id", controller.GetStudentHistory)
	router.GET("/attendance/students/:id/courses/:courseId", controller.GetStudentCourseHistory)
	return router
}

const validSessionBody = `{
	"sessionScheduleId": 1,
	"roomId": 2,
	"sessionGroupId": 3,
	"date": "2026-03-02",
	"startTime": "09:00",
	"endTime": "10:30",
	"attendances": [
		{"studentId": 10, "enStatus": 1},
		{"studentId": 11, "enStatus": 3}
	]
}`

func TestSessionCreate(t *testing.T) {
	stub := &stubAttendanceService{sessionID: 55}
	router := sessionRouter(stub, asCaller(1, models.RoleFaculty))

	rec := performJSON(t, router, http.MethodPost, "/sessions", validSessionBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	if stub.lastSubmit == nil {
		t.Fatal("service did not receive the request")
	}
	if len(stub.lastSubmit.Attendances) != 2 {
		t.Errorf("attendances = %d, want 2", len(stub.lastSubmit.Attendances))
	}
}

func TestSessionCreateRejectsEmptyAttendance(t *testing.T) {
	router := sessionRouter(&stubAttendanceService{}, asCaller(1, models.RoleFaculty))

	body := `{
		"sessionScheduleId": 1, "roomId": 2, "sessionGroupId": 3,
		"date": "2026-03-02", "startTime": "09:00", "endTime": "10:30",
		"attendances": []
	}`
	rec := performJSON(t, router, http.MethodPost, "/sessions", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSessionCreateAlreadyRecorded(t *testing.T) {
	stub := &stubAttendanceService{submitErr: apperrors.ErrSessionAlreadyRecorded}
	router := sessionRouter(stub, asCaller(1, models.RoleFaculty))

	rec := performJSON(t, router, http.MethodPost, "/sessions", validSessionBody)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestSessionCreateStudentOutsideGroup(t *testing.T) {
	stub := &stubAttendanceService{submitErr: apperrors.ErrStudentNotInGroup}
	router := sessionRouter(stub, asCaller(1, models.RoleFaculty))

	rec := performJSON(t, router, http.MethodPost, "/sessions", validSessionBody)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStudentHistoryAccess(t *testing.T) {
	cases := []struct {
		name     string
		callerID int64
		role     models.RoleName
		want     int
	}{
		{"staff reads anyone", 1, models.RoleFaculty, http.StatusOK},
		{"admin reads anyone", 1, models.RoleAdmin, http.StatusOK},
		{"student reads own", 10, models.RoleStudent, http.StatusOK},
		{"student blocked from others", 11, models.RoleStudent, http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			router := sessionRouter(&stubAttendanceService{}, asCaller(c.callerID, c.role))
			rec := performJSON(t, router, http.MethodGet, "/attendance/students/10", "")
			if rec.Code != c.want {
				t.Errorf("status = %d, want %d", rec.Code, c.want)
			}
		})
	}
}

func TestStudentCourseHistoryBlockedForOtherStudents(t *testing.T) {
	router := sessionRouter(&stubAttendanceService{}, asCaller(11, models.RoleStudent))

	rec := performJSON(t, router, http.MethodGet, "/attendance/students/10/courses/5", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
