package dto

import (
	"github.com/bisplatform/bisbackend/internal/app/models"
)

// AttendanceItem is one student's status within a submission.
type AttendanceItem struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
	Status    int   `json:"enStatus" binding:"required,min=1,max=3"`
}

// CreateSessionRequest records a held session together with the attendance
// of every student in its group. Submitted atomically.
type CreateSessionRequest struct {
	SessionScheduleID int64            `json:"sessionScheduleId" binding:"required,min=1"`
	RoomID            int64            `json:"roomId" binding:"required,min=1"`
	SessionGroupID    int64            `json:"sessionGroupId" binding:"required,min=1"`
	Date              string           `json:"date" binding:"required"`
	StartTime         string           `json:"startTime" binding:"required"`
	EndTime           string           `json:"endTime" binding:"required"`
	Attendances       []AttendanceItem `json:"attendances" binding:"required,min=1,dive"`
}

// AttendanceSheetEntry is one roster row on a prepared attendance sheet.
type AttendanceSheetEntry struct {
	StudentID   int64  `json:"studentId"`
	StudentName string `json:"studentName"`
	Status      int    `json:"enStatus"`
}

// AttendanceSheet is everything needed to take attendance for one scheduled
// session: the schedule, its resolved group, and the roster with every
// student defaulted to present.
type AttendanceSheet struct {
	Schedule       ScheduleResponse       `json:"schedule"`
	SessionGroupID int64                  `json:"sessionGroupId"`
	GroupID        int64                  `json:"groupId"`
	Entries        []AttendanceSheetEntry `json:"entries"`
}

// SessionGroupResponse resolves a schedule to its attending group.
type SessionGroupResponse struct {
	ID                int64 `json:"id"`
	SessionScheduleID int64 `json:"sessionScheduleId"`
	GroupID           int64 `json:"groupId"`
}

// FromSessionGroup converts a model to its response representation.
func FromSessionGroup(group *models.SessionGroup) SessionGroupResponse {
	if group == nil {
		return SessionGroupResponse{}
	}
	return SessionGroupResponse{
		ID:                group.ID,
		SessionScheduleID: group.SessionScheduleID,
		GroupID:           group.GroupID,
	}
}

// AttendanceDetailResponse is one joined attendance history row.
type AttendanceDetailResponse struct {
	AttendanceID      int64  `json:"attendanceId"`
	StudentID         int64  `json:"studentId"`
	Status            int    `json:"enStatus"`
	StatusName        string `json:"status"`
	SessionID         int64  `json:"sessionId"`
	SessionDate       string `json:"sessionDate"`
	SessionStartTime  string `json:"sessionStartTime"`
	SessionEndTime    string `json:"sessionEndTime"`
	SessionScheduleID int64  `json:"sessionScheduleId"`
	SessionType       string `json:"sessionType"`
	ScheduledDay      string `json:"scheduledDay"`
	CourseID          int64  `json:"courseId"`
	CourseCode        string `json:"courseCode"`
	CourseName        string `json:"courseName"`
	RoomID            int64  `json:"roomId"`
	RoomName          string `json:"roomName"`
	RoomLocation      string `json:"roomLocation"`
}

// FromAttendanceDetail converts a model to its response representation.
func FromAttendanceDetail(detail *models.AttendanceDetail) AttendanceDetailResponse {
	if detail == nil {
		return AttendanceDetailResponse{}
	}
	return AttendanceDetailResponse{
		AttendanceID:      detail.AttendanceID,
		StudentID:         detail.StudentID,
		Status:            int(detail.Status),
		StatusName:        detail.Status.Name(),
		SessionID:         detail.SessionID,
		SessionDate:       detail.SessionDate.Format(DateLayout),
		SessionStartTime:  detail.SessionStartTime,
		SessionEndTime:    detail.SessionEndTime,
		SessionScheduleID: detail.SessionScheduleID,
		SessionType:       detail.SessionType.Name(),
		ScheduledDay:      detail.ScheduledDay.Name(),
		CourseID:          detail.CourseID,
		CourseCode:        detail.CourseCode,
		CourseName:        detail.CourseName,
		RoomID:            detail.RoomID,
		RoomName:          detail.RoomName,
		RoomLocation:      detail.RoomLocation,
	}
}

// FromAttendanceDetails converts a model slice to response representations.
func FromAttendanceDetails(details []*models.AttendanceDetail) []AttendanceDetailResponse {
	out := make([]AttendanceDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromAttendanceDetail(d))
	}
	return out
}
