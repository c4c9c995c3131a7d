package dto

import (
	"time"

	"github.com/bisplatform/bisbackend/internal/app/models"
)

// NotificationResponse is one entry in a user's notification feed.
type NotificationResponse struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	SessionScheduleID int64     `json:"sessionScheduleId,omitempty"`
	Message           string    `json:"message"`
	Seen              bool      `json:"seen"`
	Type              int       `json:"enType"`
	TypeName          string    `json:"type"`
	CreatedAt         time.Time `json:"createdAt"`
}

// FromNotification converts a model to its response representation.
func FromNotification(n *models.Notification) NotificationResponse {
	if n == nil {
		return NotificationResponse{}
	}
	resp := NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Seen:      n.Seen,
		Type:      int(n.Type),
		TypeName:  n.Type.Name(),
		CreatedAt: n.CreatedAt,
	}
	if n.SessionScheduleID != nil {
		resp.SessionScheduleID = *n.SessionScheduleID
	}
	return resp
}

// FromNotifications converts a model slice to response representations.
func FromNotifications(notifications []*models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, FromNotification(n))
	}
	return out
}
