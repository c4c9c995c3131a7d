package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/dberrors"
	"github.com/bisplatform/bisbackend/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.course_code", "c.course_name", "c.credit_hours", "c.course_level",
		"c.academic_year_id", "c.semester_id",
		"y.id", "y.start_date", "y.end_date",
		"s.id", "s.semester_number", "s.start_date", "s.end_date", "s.academic_year_id").
		From("courses c").
		Join("academic_years y ON y.id = c.academic_year_id").
		Join("semesters s ON s.id = c.semester_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{
		AcademicYear: &models.AcademicYear{},
		Semester:     &models.Semester{},
	}
	err := row.Scan(
		&course.ID, &course.CourseCode, &course.CourseName, &course.CreditHours, &course.CourseLevel,
		&course.AcademicYearID, &course.SemesterID,
		&course.AcademicYear.ID, &course.AcademicYear.StartDate, &course.AcademicYear.EndDate,
		&course.Semester.ID, &course.Semester.SemesterNumber, &course.Semester.StartDate,
		&course.Semester.EndDate, &course.Semester.AcademicYearID,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// Create inserts a new course and returns its id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_code", "course_name", "credit_hours", "course_level", "academic_year_id", "semester_id").
		Values(course.CourseCode, course.CourseName, course.CreditHours, course.CourseLevel,
			course.AcademicYearID, course.SemesterID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewBadRequestError("referenced academic year or semester does not exist")
		}
		logger.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course with its academic year and semester joined.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectCourses().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses ordered by code.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.query(ctx, r.selectCourses().OrderBy("c.course_code ASC"))
}

// GetByLevel retrieves the courses taught at one level. An unknown level
// yields an empty slice, not an error.
func (r *CourseRepository) GetByLevel(ctx context.Context, level int) ([]*models.Course, error) {
	return r.query(ctx, r.selectCourses().
		Where(squirrel.Eq{"c.course_level": level}).
		OrderBy("c.course_code ASC"))
}

func (r *CourseRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Course, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetLevel returns just the level of a course.
func (r *CourseRepository) GetLevel(ctx context.Context, id int64) (int, error) {
	sql, args, err := r.sb.Select("course_level").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build get course level query: %w", err)
	}

	var level int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrCourseNotFound
		}
		return 0, fmt.Errorf("error getting course level: %w", err)
	}

	return level, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"course_code":      course.CourseCode,
			"course_name":      course.CourseName,
			"credit_hours":     course.CreditHours,
			"course_level":     course.CourseLevel,
			"academic_year_id": course.AcademicYearID,
			"semester_id":      course.SemesterID,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced academic year or semester does not exist")
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course. Courses referenced by session schedules cannot
// be deleted.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("course has associated session schedules and cannot be deleted")
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
