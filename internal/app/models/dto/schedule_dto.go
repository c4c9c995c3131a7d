package dto

import (
	"github.com/bisplatform/bisbackend/internal/app/models"
)

// ScheduleRequest represents session schedule creation/update data.
// Times use the "15:04:05" wire format (HH:MM is also accepted).
type ScheduleRequest struct {
	CourseID        int64  `json:"courseId" binding:"required,min=1"`
	SessionType     int    `json:"sessionType" binding:"min=0,max=1"`
	RoomID          int64  `json:"roomId" binding:"required,min=1"`
	GuidanceGroupID int64  `json:"guidanceGroupId" binding:"required,min=1"`
	Day             int    `json:"day" binding:"min=0,max=6"`
	StartTime       string `json:"startTime" binding:"required"`
	EndTime         string `json:"endTime" binding:"required"`
	AcademicYearID  int64  `json:"academicYearId" binding:"required,min=1"`
	SemesterID      int64  `json:"semesterId" binding:"required,min=1"`
}

// ScheduleResponse is one recurring weekly teaching slot with joined names.
type ScheduleResponse struct {
	SessionID       int64  `json:"sessionId"`
	CourseID        int64  `json:"courseId"`
	CourseName      string `json:"courseName"`
	SessionType     int    `json:"sessionType"`
	RoomID          int64  `json:"roomId"`
	RoomName        string `json:"roomName"`
	GuidanceGroupID int64  `json:"guidanceGroupId"`
	Day             int    `json:"day"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	AcademicYearID  int64  `json:"academicYearId"`
	SemesterID      int64  `json:"semesterId"`
}

// FromSchedule converts a model to its response representation.
func FromSchedule(schedule *models.SessionSchedule) ScheduleResponse {
	if schedule == nil {
		return ScheduleResponse{}
	}
	return ScheduleResponse{
		SessionID:       schedule.ID,
		CourseID:        schedule.CourseID,
		CourseName:      schedule.CourseName,
		SessionType:     int(schedule.SessionType),
		RoomID:          schedule.RoomID,
		RoomName:        schedule.RoomName,
		GuidanceGroupID: schedule.GuidanceGroupID,
		Day:             int(schedule.Day),
		StartTime:       schedule.StartTime,
		EndTime:         schedule.EndTime,
		AcademicYearID:  schedule.AcademicYearID,
		SemesterID:      schedule.SemesterID,
	}
}

// FromSchedules converts a model slice to response representations.
func FromSchedules(schedules []*models.SessionSchedule) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, FromSchedule(s))
	}
	return out
}

// ScheduleFilter selects which session schedules to list. Precedence:
// guidance group (optionally narrowed by semester) over semester over
// academic year; all zero means fetch everything.
type ScheduleFilter struct {
	GuidanceGroupID int64
	SemesterID      int64
	AcademicYearID  int64
}
