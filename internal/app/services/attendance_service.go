package services

import (
	"context"
	"fmt"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/helpers"
	"github.com/bisplatform/bisbackend/internal/pkg/logger"
)

// AttendanceService defines the interface for taking and reading attendance
type AttendanceService interface {
	BuildSheet(ctx context.Context, scheduleID int64) (*dto.AttendanceSheet, error)
	SubmitSession(ctx context.Context, req *dto.CreateSessionRequest) (int64, error)
	GetStudentHistory(ctx context.Context, studentID, courseID int64) ([]*models.AttendanceDetail, error)
}

// scheduleReader is the slice of the schedule repository the attendance
// flow needs.
type scheduleReader interface {
	GetByID(ctx context.Context, id int64) (*models.SessionSchedule, error)
	GetSessionGroup(ctx context.Context, scheduleID int64) (*models.SessionGroup, error)
}

// rosterReader resolves a session group to its student roster.
type rosterReader interface {
	GetBySessionGroup(ctx context.Context, sessionGroupID int64) ([]*models.Student, error)
}

// sessionStore persists held sessions and reads attendance history.
type sessionStore interface {
	CreateWithAttendance(ctx context.Context, session *models.Session, records []models.AttendanceRecord) (int64, error)
	GetHistoryByStudent(ctx context.Context, studentID, courseID int64) ([]*models.AttendanceDetail, error)
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	scheduleRepo scheduleReader
	studentRepo  rosterReader
	sessionRepo  sessionStore
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	scheduleRepo scheduleReader,
	studentRepo rosterReader,
	sessionRepo sessionStore,
) AttendanceService {
	return &attendanceServiceImpl{
		scheduleRepo: scheduleRepo,
		studentRepo:  studentRepo,
		sessionRepo:  sessionRepo,
	}
}

// BuildSheet assembles everything needed to take attendance for one
// scheduled slot: the schedule, its session group, and the group roster
// with every student defaulted to present.
func (s *attendanceServiceImpl) BuildSheet(ctx context.Context, scheduleID int64) (*dto.AttendanceSheet, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	sessionGroup, err := s.scheduleRepo.GetSessionGroup(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	roster, err := s.studentRepo.GetBySessionGroup(ctx, sessionGroup.ID)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.AttendanceSheetEntry, 0, len(roster))
	for _, student := range roster {
		entries = append(entries, dto.AttendanceSheetEntry{
			StudentID:   student.StudentID,
			StudentName: student.User.Name,
			Status:      int(models.AttendancePresent),
		})
	}

	return &dto.AttendanceSheet{
		Schedule:       dto.FromSchedule(schedule),
		SessionGroupID: sessionGroup.ID,
		GroupID:        sessionGroup.GroupID,
		Entries:        entries,
	}, nil
}

// SubmitSession records a held session and its attendance atomically. A
// second submission for the same schedule and date is rejected, so a
// retried request cannot double-record.
func (s *attendanceServiceImpl) SubmitSession(ctx context.Context, req *dto.CreateSessionRequest) (int64, error) {
	if req == nil {
		return 0, fmt.Errorf("%w: session data is required", apperrors.ErrValidationFailed)
	}
	if len(req.Attendances) == 0 {
		return 0, fmt.Errorf("%w: attendance list cannot be empty", apperrors.ErrValidationFailed)
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: date must use the %s format", apperrors.ErrValidationFailed, helpers.DateLayout)
	}
	start, err := helpers.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return 0, fmt.Errorf("%w: start time must use the %s format", apperrors.ErrValidationFailed, helpers.TimeLayout)
	}
	end, err := helpers.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return 0, fmt.Errorf("%w: end time must use the %s format", apperrors.ErrValidationFailed, helpers.TimeLayout)
	}
	if !end.After(start) {
		return 0, fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidationFailed)
	}

	// The session group must belong to the submitted schedule.
	sessionGroup, err := s.scheduleRepo.GetSessionGroup(ctx, req.SessionScheduleID)
	if err != nil {
		return 0, err
	}
	if sessionGroup.ID != req.SessionGroupID {
		return 0, fmt.Errorf("%w: session group does not belong to the schedule", apperrors.ErrValidationFailed)
	}

	roster, err := s.studentRepo.GetBySessionGroup(ctx, sessionGroup.ID)
	if err != nil {
		return 0, err
	}
	inGroup := make(map[int64]bool, len(roster))
	for _, student := range roster {
		inGroup[student.StudentID] = true
	}

	seen := make(map[int64]bool, len(req.Attendances))
	records := make([]models.AttendanceRecord, 0, len(req.Attendances))
	for _, item := range req.Attendances {
		if !models.AttendanceStatus(item.Status).Valid() {
			return 0, fmt.Errorf("%w: unknown attendance status %d for student %d",
				apperrors.ErrValidationFailed, item.Status, item.StudentID)
		}
		if seen[item.StudentID] {
			return 0, fmt.Errorf("%w: student %d listed twice", apperrors.ErrValidationFailed, item.StudentID)
		}
		seen[item.StudentID] = true
		if !inGroup[item.StudentID] {
			return 0, apperrors.ErrStudentNotInGroup
		}
		records = append(records, models.AttendanceRecord{
			StudentID: item.StudentID,
			Status:    models.AttendanceStatus(item.Status),
		})
	}

	session := &models.Session{
		SessionScheduleID: req.SessionScheduleID,
		RoomID:            req.RoomID,
		SessionGroupID:    req.SessionGroupID,
		Date:              date,
		StartTime:         start.Format(helpers.TimeLayout),
		EndTime:           end.Format(helpers.TimeLayout),
	}

	sessionID, err := s.sessionRepo.CreateWithAttendance(ctx, session, records)
	if err != nil {
		return 0, err
	}

	logger.Info().
		Int64("sessionID", sessionID).
		Int64("scheduleID", req.SessionScheduleID).
		Int("records", len(records)).
		Msg("Attendance recorded")

	return sessionID, nil
}

// GetStudentHistory returns a student's attendance records joined with
// their sessions. courseID of zero means all courses; no records yields an
// empty slice.
func (s *attendanceServiceImpl) GetStudentHistory(ctx context.Context, studentID, courseID int64) ([]*models.AttendanceDetail, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: student id is required", apperrors.ErrValidationFailed)
	}
	return s.sessionRepo.GetHistoryByStudent(ctx, studentID, courseID)
}
