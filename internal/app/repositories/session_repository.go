package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/db"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/dberrors"
	"github.com/bisplatform/bisbackend/internal/pkg/logger"
)

// SessionRepository handles held sessions and their attendance records.
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateWithAttendance inserts a held session and all its attendance
// records in one transaction. A session already recorded for the same
// schedule and date is rejected, which makes resubmissions safe.
func (r *SessionRepository) CreateWithAttendance(ctx context.Context, session *models.Session, records []models.AttendanceRecord) (int64, error) {
	var sessionID int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("sessions").
			Columns("session_schedule_id", "room_id", "session_group_id", "date", "start_time", "end_time").
			Values(session.SessionScheduleID, session.RoomID, session.SessionGroupID,
				session.Date, session.StartTime, session.EndTime).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create session query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&sessionID); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "sessions_schedule_date_key") {
				return apperrors.ErrSessionAlreadyRecorded
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.NewBadRequestError("referenced schedule, room or session group does not exist")
			}
			logger.Error().Err(err).Int64("scheduleID", session.SessionScheduleID).Msg("Error executing create session query")
			return fmt.Errorf("error creating session: %w", err)
		}

		builder := r.sb.Insert("attendance_records").
			Columns("session_id", "student_id", "status")
		for _, record := range records {
			builder = builder.Values(sessionID, record.StudentID, record.Status)
		}

		sql, args, err = builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create attendance records query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			logger.Error().Err(err).Int64("sessionID", sessionID).Msg("Error inserting attendance records")
			return fmt.Errorf("error creating attendance records: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return sessionID, nil
}

// GetHistoryByStudent retrieves a student's attendance history joined with
// session, schedule, course and room details, newest session first.
// courseID of zero means all courses. No history yields an empty slice.
func (r *SessionRepository) GetHistoryByStudent(ctx context.Context, studentID, courseID int64) ([]*models.AttendanceDetail, error) {
	builder := r.sb.Select(
		"a.id", "a.student_id", "a.status",
		"se.id", "se.date", "se.start_time::text", "se.end_time::text",
		"ss.id", "ss.session_type", "ss.day",
		"c.id", "c.course_code", "c.course_name",
		"rm.id", "rm.name", "rm.location").
		From("attendance_records a").
		Join("sessions se ON se.id = a.session_id").
		Join("session_schedules ss ON ss.id = se.session_schedule_id").
		Join("courses c ON c.id = ss.course_id").
		Join("rooms rm ON rm.id = se.room_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("se.date DESC", "se.start_time DESC")

	if courseID > 0 {
		builder = builder.Where(squirrel.Eq{"c.id": courseID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance history query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing attendance history query")
		return nil, fmt.Errorf("error querying attendance history: %w", err)
	}
	defer rows.Close()

	details := []*models.AttendanceDetail{}
	for rows.Next() {
		detail := &models.AttendanceDetail{}
		if err := rows.Scan(
			&detail.AttendanceID, &detail.StudentID, &detail.Status,
			&detail.SessionID, &detail.SessionDate, &detail.SessionStartTime, &detail.SessionEndTime,
			&detail.SessionScheduleID, &detail.SessionType, &detail.ScheduledDay,
			&detail.CourseID, &detail.CourseCode, &detail.CourseName,
			&detail.RoomID, &detail.RoomName, &detail.RoomLocation,
		); err != nil {
			return nil, fmt.Errorf("error scanning attendance history row: %w", err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance history rows: %w", err)
	}

	return details, nil
}
