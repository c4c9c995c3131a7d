package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

type stubStudentService struct {
	byGroup        map[int64][]*models.Student
	bySessionGroup map[int64][]*models.Student
}

func (s *stubStudentService) Create(_ context.Context, req *dto.StudentRequest) (int64, error) {
	return 0, apperrors.ErrValidationFailed
}

func (s *stubStudentService) GetByID(_ context.Context, id int64) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStudentService) GetAll(_ context.Context, page, pageSize int) ([]*models.Student, int64, error) {
	return nil, 0, nil
}

func (s *stubStudentService) GetBySessionGroup(_ context.Context, sessionGroupID int64) ([]*models.Student, error) {
	return s.bySessionGroup[sessionGroupID], nil
}

func (s *stubStudentService) GetByGroup(_ context.Context, groupID int64) ([]*models.Student, error) {
	return s.byGroup[groupID], nil
}

func (s *stubStudentService) Update(_ context.Context, id int64, req *dto.StudentRequest) error {
	return apperrors.ErrStudentNotFound
}

func (s *stubStudentService) Delete(_ context.Context, id int64) error {
	return apperrors.ErrStudentNotFound
}

func (s *stubStudentService) ImportFromWorkbook(_ context.Context, r io.Reader) (*dto.ImportSummary, error) {
	return &dto.ImportSummary{}, nil
}

func studentRouter(stub *stubStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewStudentController(stub)
	router.GET("/guidance-groups/:id/students", controller.GetByGroup)
	router.GET("/students/session-group/:sessionGroupId", controller.GetBySessionGroup)
	return router
}

func decodeRoster(t *testing.T, payload []byte) []dto.StudentResponse {
	t.Helper()
	var body struct {
		Data []dto.StudentResponse `json:"data"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body.Data
}

func TestGetByGroupRoster(t *testing.T) {
	stub := &stubStudentService{byGroup: map[int64][]*models.Student{
		4: {
			{StudentID: 101, GuidanceGroupID: 4, User: &models.User{ID: 101, Name: "Aya Mostafa"}},
			{StudentID: 102, GuidanceGroupID: 4, User: &models.User{ID: 102, Name: "Omar Khaled"}},
		},
	}}
	router := studentRouter(stub)

	rec := performJSON(t, router, http.MethodGet, "/guidance-groups/4/students", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	roster := decodeRoster(t, rec.Body.Bytes())
	if len(roster) != 2 {
		t.Fatalf("roster = %d students, want 2", len(roster))
	}
	if roster[0].User.Name != "Aya Mostafa" {
		t.Errorf("first student = %q", roster[0].User.Name)
	}
}

func TestGetByGroupUnknownGroupIsEmpty(t *testing.T) {
	router := studentRouter(&stubStudentService{})

	rec := performJSON(t, router, http.MethodGet, "/guidance-groups/9/students", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if roster := decodeRoster(t, rec.Body.Bytes()); len(roster) != 0 {
		t.Errorf("roster = %d students, want empty", len(roster))
	}
}

func TestGetByGroupRejectsBadParam(t *testing.T) {
	router := studentRouter(&stubStudentService{})

	rec := performJSON(t, router, http.MethodGet, "/guidance-groups/abc/students", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetBySessionGroupRoster(t *testing.T) {
	stub := &stubStudentService{bySessionGroup: map[int64][]*models.Student{
		5: {{StudentID: 101, User: &models.User{ID: 101, Name: "Aya Mostafa"}}},
	}}
	router := studentRouter(stub)

	rec := performJSON(t, router, http.MethodGet, "/students/session-group/5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if roster := decodeRoster(t, rec.Body.Bytes()); len(roster) != 1 {
		t.Errorf("roster = %d students, want 1", len(roster))
	}
}
