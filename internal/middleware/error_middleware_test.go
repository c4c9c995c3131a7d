package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

func statusFor(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return rec.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"schedule not found", apperrors.ErrScheduleNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrCourseNotFound), http.StatusNotFound},
		{"academic year in use", apperrors.ErrAcademicYearInUse, http.StatusConflict},
		{"guidance group in use", apperrors.ErrGuidanceGroupInUse, http.StatusConflict},
		{"duplicate course", apperrors.ErrCourseAlreadyExists, http.StatusConflict},
		{"slot taken", apperrors.ErrScheduleSlotTaken, http.StatusConflict},
		{"session already recorded", apperrors.ErrSessionAlreadyRecorded, http.StatusConflict},
		{"conflict helper", apperrors.NewConflictError("room has sessions"), http.StatusConflict},
		{"validation failure", fmt.Errorf("%w: bad gpa", apperrors.ErrValidationFailed), http.StatusBadRequest},
		{"student not in group", apperrors.ErrStudentNotInGroup, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, body := statusFor(t, c.err)
			if status != c.want {
				t.Errorf("status = %d, want %d", status, c.want)
			}
			if body.Error == nil {
				t.Fatal("expected an error detail in the body")
			}
			if body.Success {
				t.Error("error responses must not claim success")
			}
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	_, body := statusFor(t, errors.New("pq: connection refused"))
	if body.Error.Message == "pq: connection refused" {
		t.Error("internal error details must not leak to clients")
	}
}
