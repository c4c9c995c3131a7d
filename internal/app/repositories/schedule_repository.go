package repositories

import (
	"context"
	"errors"
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

// ScheduleRepository handles session schedule database operations. Every
// schedule owns exactly one session group row resolving it to its guidance
// group; the two are written together.
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a schedule and its session group atomically. Returns the
// schedule id. Slots overlapping in time with an existing schedule for the
// same room or group on the same day are rejected.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.SessionSchedule) (int64, error) {
	var scheduleID int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		taken, err := r.slotTaken(ctx, tx, schedule, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrScheduleSlotTaken
		}

		sql, args, err := r.sb.Insert("session_schedules").
			Columns("course_id", "session_type", "room_id", "guidance_group_id", "day",
				"start_time", "end_time", "academic_year_id", "semester_id").
			Values(schedule.CourseID, schedule.SessionType, schedule.RoomID, schedule.GuidanceGroupID,
				schedule.Day, schedule.StartTime, schedule.EndTime, schedule.AcademicYearID, schedule.SemesterID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create schedule query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&scheduleID); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.NewBadRequestError("referenced course, room, group, year or semester does not exist")
			}
			logger.Error().Err(err).Msg("Error executing create schedule query")
			return fmt.Errorf("error creating schedule: %w", err)
		}

		sql, args, err = r.sb.Insert("session_groups").
			Columns("session_schedule_id", "group_id").
			Values(scheduleID, schedule.GuidanceGroupID).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create session group query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Int64("scheduleID", scheduleID).Msg("Error creating session group")
			return fmt.Errorf("error creating session group: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return scheduleID, nil
}

// slotTaken checks for a schedule in the same semester, on the same day,
// overlapping in time, for either the same room or the same group.
// excludeID skips the schedule being updated.
func (r *ScheduleRepository) slotTaken(ctx context.Context, q dbtx, schedule *models.SessionSchedule, excludeID int64) (bool, error) {
	builder := r.sb.Select("1").
		From("session_schedules").
		Where(squirrel.Eq{"semester_id": schedule.SemesterID, "day": schedule.Day}).
		Where(squirrel.Or{
			squirrel.Eq{"room_id": schedule.RoomID},
			squirrel.Eq{"guidance_group_id": schedule.GuidanceGroupID},
		}).
		Where(squirrel.Lt{"start_time": schedule.EndTime}).
		Where(squirrel.Gt{"end_time": schedule.StartTime})
	if excludeID > 0 {
		builder = builder.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := builder.
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build slot conflict query: %w", err)
	}

	var exists bool
	err = q.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking slot conflict: %w", err)
	}

	return exists, nil
}

func (r *ScheduleRepository) selectSchedules() squirrel.SelectBuilder {
	return r.sb.Select(
		"ss.id", "ss.course_id", "ss.session_type", "ss.room_id", "ss.guidance_group_id",
		"ss.day", "ss.start_time::text", "ss.end_time::text", "ss.academic_year_id", "ss.semester_id",
		"c.course_name", "rm.name").
		From("session_schedules ss").
		Join("courses c ON c.id = ss.course_id").
		Join("rooms rm ON rm.id = ss.room_id")
}

func scanSchedule(row pgx.Row) (*models.SessionSchedule, error) {
	schedule := &models.SessionSchedule{}
	err := row.Scan(
		&schedule.ID, &schedule.CourseID, &schedule.SessionType, &schedule.RoomID, &schedule.GuidanceGroupID,
		&schedule.Day, &schedule.StartTime, &schedule.EndTime, &schedule.AcademicYearID, &schedule.SemesterID,
		&schedule.CourseName, &schedule.RoomName,
	)
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// GetByID retrieves a schedule with course and room names joined.
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.SessionSchedule, error) {
	sql, args, err := r.selectSchedules().
		Where(squirrel.Eq{"ss.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get schedule query: %w", err)
	}

	schedule, err := scanSchedule(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error scanning schedule row")
		return nil, fmt.Errorf("error getting schedule by ID: %w", err)
	}

	return schedule, nil
}

// List retrieves schedules filtered by at most one scope. A guidance group
// takes precedence over a semester, which takes precedence over an academic
// year; a group filter may additionally be narrowed by a semester. All
// zeroes lists everything. Unknown scope ids yield an empty slice.
func (r *ScheduleRepository) List(ctx context.Context, guidanceGroupID, semesterID, academicYearID int64) ([]*models.SessionSchedule, error) {
	builder := r.selectSchedules().
		OrderBy("ss.day ASC", "ss.start_time ASC")

	switch {
	case guidanceGroupID > 0:
		builder = builder.Where(squirrel.Eq{"ss.guidance_group_id": guidanceGroupID})
		if semesterID > 0 {
			builder = builder.Where(squirrel.Eq{"ss.semester_id": semesterID})
		}
	case semesterID > 0:
		builder = builder.Where(squirrel.Eq{"ss.semester_id": semesterID})
	case academicYearID > 0:
		builder = builder.Where(squirrel.Eq{"ss.academic_year_id": academicYearID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list schedules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list schedules query")
		return nil, fmt.Errorf("error querying schedules: %w", err)
	}
	defer rows.Close()

	schedules := []*models.SessionSchedule{}
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return schedules, nil
}

// Update updates a schedule and keeps its session group pointing at the
// right guidance group.
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.SessionSchedule) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		taken, err := r.slotTaken(ctx, tx, schedule, schedule.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrScheduleSlotTaken
		}

		sql, args, err := r.sb.Update("session_schedules").
			SetMap(map[string]interface{}{
				"course_id":         schedule.CourseID,
				"session_type":      schedule.SessionType,
				"room_id":           schedule.RoomID,
				"guidance_group_id": schedule.GuidanceGroupID,
				"day":               schedule.Day,
				"start_time":        schedule.StartTime,
				"end_time":          schedule.EndTime,
				"academic_year_id":  schedule.AcademicYearID,
				"semester_id":       schedule.SemesterID,
			}).
			Where(squirrel.Eq{"id": schedule.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update schedule query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.NewBadRequestError("referenced course, room, group, year or semester does not exist")
			}
			logger.Error().Err(err).Int64("scheduleID", schedule.ID).Msg("Error executing update schedule query")
			return fmt.Errorf("error updating schedule: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrScheduleNotFound
		}

		sql, args, err = r.sb.Update("session_groups").
			Set("group_id", schedule.GuidanceGroupID).
			Where(squirrel.Eq{"session_schedule_id": schedule.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update session group query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Int64("scheduleID", schedule.ID).Msg("Error updating session group")
			return fmt.Errorf("error updating session group: %w", err)
		}

		return nil
	})
}

// Delete removes a schedule and its session group. Schedules with held
// sessions cannot be deleted.
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Delete("session_groups").
			Where(squirrel.Eq{"session_schedule_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete session group query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.NewConflictError("schedule has held sessions and cannot be deleted")
			}
			logger.Error().Err(err).Int64("scheduleID", id).Msg("Error deleting session group")
			return fmt.Errorf("error deleting session group: %w", err)
		}

		sql, args, err = r.sb.Delete("session_schedules").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete schedule query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.NewConflictError("schedule has held sessions and cannot be deleted")
			}
			logger.Error().Err(err).Int64("scheduleID", id).Msg("Error executing delete schedule query")
			return fmt.Errorf("error deleting schedule: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrScheduleNotFound
		}

		return nil
	})
}

// GetSessionGroup resolves a schedule to its session group row.
func (r *ScheduleRepository) GetSessionGroup(ctx context.Context, scheduleID int64) (*models.SessionGroup, error) {
	sql, args, err := r.sb.Select("id", "session_schedule_id", "group_id").
		From("session_groups").
		Where(squirrel.Eq{"session_schedule_id": scheduleID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session group query: %w", err)
	}

	group := &models.SessionGroup{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&group.ID, &group.SessionScheduleID, &group.GroupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionGroupNotFound
		}
		logger.Error().Err(err).Int64("scheduleID", scheduleID).Msg("Error scanning session group row")
		return nil, fmt.Errorf("error getting session group: %w", err)
	}

	return group, nil
}
