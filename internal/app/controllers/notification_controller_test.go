package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

type stubNotificationService struct {
	feed []*models.Notification

	markSeenErr error
	seenID      int64
	seenUserID  int64
}

func (s *stubNotificationService) ListByUser(_ context.Context, userID int64) ([]*models.Notification, error) {
	return s.feed, nil
}

func (s *stubNotificationService) MarkSeen(_ context.Context, id, userID int64) error {
	if s.markSeenErr != nil {
		return s.markSeenErr
	}
	s.seenID = id
	s.seenUserID = userID
	return nil
}

func (s *stubNotificationService) NotifyGroup(_ context.Context, groupID int64, scheduleID *int64, message string, notifType models.NotificationType) (int64, error) {
	return 0, nil
}

func notificationRouter(stub *stubNotificationService, caller gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if caller != nil {
		router.Use(caller)
	}
	controller := NewNotificationController(stub)
	router.GET("/notifications/user/:id", controller.ListByUser)
	router.PUT("/notifications/:id/seen", controller.MarkSeen)
	return router
}

func TestListByUserOwnFeed(t *testing.T) {
	stub := &stubNotificationService{feed: []*models.Notification{
		{ID: 1, UserID: 10, Message: "Schedule updated"},
	}}
	router := notificationRouter(stub, asCaller(10, models.RoleStudent))

	rec := performJSON(t, router, http.MethodGet, "/notifications/user/10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data []struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Message != "Schedule updated" {
		t.Errorf("unexpected feed: %+v", body.Data)
	}
}

func TestListByUserBlocksOtherUsers(t *testing.T) {
	router := notificationRouter(&stubNotificationService{}, asCaller(11, models.RoleStudent))

	rec := performJSON(t, router, http.MethodGet, "/notifications/user/10", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestListByUserAdminReadsAnyFeed(t *testing.T) {
	router := notificationRouter(&stubNotificationService{}, asCaller(1, models.RoleAdmin))

	rec := performJSON(t, router, http.MethodGet, "/notifications/user/10", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestMarkSeenScopesToCaller(t *testing.T) {
	stub := &stubNotificationService{}
	router := notificationRouter(stub, asCaller(10, models.RoleStudent))

	rec := performJSON(t, router, http.MethodPut, "/notifications/7/seen", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.seenID != 7 || stub.seenUserID != 10 {
		t.Errorf("MarkSeen called with (%d, %d), want (7, 10)", stub.seenID, stub.seenUserID)
	}
}

func TestMarkSeenNotYours(t *testing.T) {
	stub := &stubNotificationService{markSeenErr: apperrors.ErrNotificationNotFound}
	router := notificationRouter(stub, asCaller(10, models.RoleStudent))

	rec := performJSON(t, router, http.MethodPut, "/notifications/7/seen", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMarkSeenWithoutAuthContext(t *testing.T) {
	router := notificationRouter(&stubNotificationService{}, nil)

	rec := performJSON(t, router, http.MethodPut, "/notifications/7/seen", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
