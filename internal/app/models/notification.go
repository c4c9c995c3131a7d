package models

import "time"

// Notification is one entry in a user's notification feed.
type Notification struct {
	ID                int64            `json:"id" db:"id"`
	UserID            int64            `json:"userId" db:"user_id"`
	SessionScheduleID *int64           `json:"sessionScheduleId,omitempty" db:"session_schedule_id"`
	Message           string           `json:"message" db:"message"`
	Seen              bool             `json:"seen" db:"seen"`
	Type              NotificationType `json:"enType" db:"type"`
	CreatedAt         time.Time        `json:"createdAt" db:"created_at"`
}
