package models

import "time"

// SessionSchedule is one recurring weekly teaching slot: a course taught to a
// guidance group in a room on a fixed weekday and time window. Times of day
// are kept in the "HH:MM:SS" wire format.
type SessionSchedule struct {
	ID              int64       `json:"sessionId" db:"id"`
	CourseID        int64       `json:"courseId" db:"course_id"`
	SessionType     SessionType `json:"sessionType" db:"session_type"`
	RoomID          int64       `json:"roomId" db:"room_id"`
	GuidanceGroupID int64       `json:"guidanceGroupId" db:"guidance_group_id"`
	Day             WeekDay     `json:"day" db:"day"`
	StartTime       string      `json:"startTime" db:"start_time"`
	EndTime         string      `json:"endTime" db:"end_time"`
	AcademicYearID  int64       `json:"academicYearId" db:"academic_year_id"`
	SemesterID      int64       `json:"semesterId" db:"semester_id"`

	// Joined display fields (populated by list queries)
	CourseName string `json:"courseName,omitempty"`
	RoomName   string `json:"roomName,omitempty"`
}

// SessionGroup resolves a session schedule to the concrete guidance group
// whose students attend it. Exactly one exists per schedule.
type SessionGroup struct {
	ID                int64 `json:"id" db:"id"`
	SessionScheduleID int64 `json:"sessionScheduleId" db:"session_schedule_id"`
	GroupID           int64 `json:"groupId" db:"group_id"`
}

// Session is one held instance of a scheduled slot on a concrete date.
type Session struct {
	ID                int64     `json:"id" db:"id"`
	SessionScheduleID int64     `json:"sessionScheduleId" db:"session_schedule_id"`
	RoomID            int64     `json:"roomId" db:"room_id"`
	SessionGroupID    int64     `json:"sessionGroupId" db:"session_group_id"`
	Date              time.Time `json:"date" db:"date"`
	StartTime         string    `json:"startTime" db:"start_time"`
	EndTime           string    `json:"endTime" db:"end_time"`
}

// AttendanceRecord is the per-student outcome of a held session.
type AttendanceRecord struct {
	ID        int64            `json:"attendanceId" db:"id"`
	SessionID int64            `json:"sessionId" db:"session_id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	Status    AttendanceStatus `json:"enStatus" db:"status"`
}

// AttendanceDetail is an attendance record joined with its session, schedule,
// course and room for the student attendance history views.
type AttendanceDetail struct {
	AttendanceID      int64            `json:"attendanceId"`
	StudentID         int64            `json:"studentId"`
	Status            AttendanceStatus `json:"enStatus"`
	SessionID         int64            `json:"sessionId"`
	SessionDate       time.Time        `json:"sessionDate"`
	SessionStartTime  string           `json:"sessionStartTime"`
	SessionEndTime    string           `json:"sessionEndTime"`
	SessionScheduleID int64            `json:"sessionScheduleId"`
	SessionType       SessionType      `json:"sessionType"`
	ScheduledDay      WeekDay          `json:"scheduledDay"`
	CourseID          int64            `json:"courseId"`
	CourseCode        string           `json:"courseCode"`
	CourseName        string           `json:"courseName"`
	RoomID            int64            `json:"roomId"`
	RoomName          string           `json:"roomName"`
	RoomLocation      string           `json:"roomLocation"`
}
