package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

type stubCourseService struct {
	courses map[int64]*models.Course

	createErr error
	deleteErr error

	lastCreated *models.Course
}

func (s *stubCourseService) Create(_ context.Context, course *models.Course) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.lastCreated = course
	course.ID = 42
	if s.courses == nil {
		s.courses = map[int64]*models.Course{}
	}
	s.courses[course.ID] = course
	return course.ID, nil
}

func (s *stubCourseService) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (s *stubCourseService) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		out = append(out, course)
	}
	return out, nil
}

func (s *stubCourseService) GetByLevel(_ context.Context, level int) ([]*models.Course, error) {
	if !models.ValidLevel(level) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "level must be between 1 and 4")
	}
	var out []*models.Course
	for _, course := range s.courses {
		if course.CourseLevel == level {
			out = append(out, course)
		}
	}
	return out, nil
}

func (s *stubCourseService) GetLevel(_ context.Context, id int64) (int, error) {
	course, ok := s.courses[id]
	if !ok {
		return 0, apperrors.ErrCourseNotFound
	}
	return course.CourseLevel, nil
}

func (s *stubCourseService) Update(_ context.Context, course *models.Course) error {
	if _, ok := s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	s.courses[course.ID] = course
	return nil
}

func (s *stubCourseService) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

func courseRouter(stub *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCourseController(stub)
	router.POST("/courses", controller.Create)
	router.GET("/courses", controller.GetAll)
	router.GET("/courses/level/:level", controller.GetByLevel)
	router.GET("/courses/:id", controller.GetByID)
	router.GET("/courses/:id/level", controller.GetLevel)
	router.PUT("/courses/:id", controller.Update)
	router.DELETE("/courses/:id", controller.Delete)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validCourseBody = `{
	"courseCode": "CS301",
	"courseName": "Databases",
	"creditHours": 3,
	"courseLevel": 3,
	"academicYearId": 1,
	"semesterId": 2
}`

func TestCourseCreate(t *testing.T) {
	stub := &stubCourseService{}
	router := courseRouter(stub)

	rec := performJSON(t, router, http.MethodPost, "/courses", validCourseBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	if stub.lastCreated == nil || stub.lastCreated.CourseCode != "CS301" {
		t.Error("service did not receive the parsed course")
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID         int64  `json:"id"`
			CourseCode string `json:"courseCode"`
			LevelName  string `json:"levelName"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Error("expected success envelope")
	}
	if body.Data.ID != 42 {
		t.Errorf("Data.ID = %d, want 42", body.Data.ID)
	}
	if body.Data.LevelName != "Level 3" {
		t.Errorf("Data.LevelName = %q, want Level 3", body.Data.LevelName)
	}
}

func TestCourseCreateRejectsMissingFields(t *testing.T) {
	router := courseRouter(&stubCourseService{})

	rec := performJSON(t, router, http.MethodPost, "/courses", `{"courseCode": "CS301"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCourseCreateDuplicateCode(t *testing.T) {
	stub := &stubCourseService{createErr: apperrors.ErrCourseAlreadyExists}
	router := courseRouter(stub)

	rec := performJSON(t, router, http.MethodPost, "/courses", validCourseBody)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestCourseGetByIDNotFound(t *testing.T) {
	router := courseRouter(&stubCourseService{})

	rec := performJSON(t, router, http.MethodGet, "/courses/99", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCourseGetByIDRejectsBadParam(t *testing.T) {
	router := courseRouter(&stubCourseService{})

	rec := performJSON(t, router, http.MethodGet, "/courses/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCourseGetByLevel(t *testing.T) {
	stub := &stubCourseService{courses: map[int64]*models.Course{
		1: {ID: 1, CourseCode: "CS101", CourseLevel: 1},
		2: {ID: 2, CourseCode: "CS301", CourseLevel: 3},
	}}
	router := courseRouter(stub)

	rec := performJSON(t, router, http.MethodGet, "/courses/level/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data []struct {
			CourseCode string `json:"courseCode"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].CourseCode != "CS301" {
		t.Errorf("unexpected courses for level 3: %+v", body.Data)
	}
}

func TestCourseGetByLevelOutOfRange(t *testing.T) {
	router := courseRouter(&stubCourseService{})

	rec := performJSON(t, router, http.MethodGet, "/courses/level/9", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCourseDeleteGuarded(t *testing.T) {
	stub := &stubCourseService{
		courses:   map[int64]*models.Course{1: {ID: 1}},
		deleteErr: apperrors.NewConflictError("course is referenced by session schedules"),
	}
	router := courseRouter(stub)

	rec := performJSON(t, router, http.MethodDelete, "/courses/1", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestCourseDelete(t *testing.T) {
	stub := &stubCourseService{courses: map[int64]*models.Course{1: {ID: 1}}}
	router := courseRouter(stub)

	rec := performJSON(t, router, http.MethodDelete, "/courses/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(stub.courses) != 0 {
		t.Error("course was not deleted")
	}
}
