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

// SemesterRepository handles semester database operations
type SemesterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSemesterRepository creates a new SemesterRepository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new semester and returns its id.
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) (int64, error) {
	sql, args, err := r.sb.Insert("semesters").
		Columns("semester_number", "start_date", "end_date", "academic_year_id").
		Values(semester.SemesterNumber, semester.StartDate, semester.EndDate, semester.AcademicYearID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create semester query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrAcademicYearNotFound
		}
		logger.Error().Err(err).Msg("Error executing create semester query")
		return 0, fmt.Errorf("error creating semester: %w", err)
	}

	return id, nil
}

// GetByID retrieves a semester with its academic year joined.
func (r *SemesterRepository) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.semester_number", "s.start_date", "s.end_date", "s.academic_year_id",
		"y.id", "y.start_date", "y.end_date").
		From("semesters s").
		Join("academic_years y ON y.id = s.academic_year_id").
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get semester query: %w", err)
	}

	semester := &models.Semester{AcademicYear: &models.AcademicYear{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&semester.ID, &semester.SemesterNumber, &semester.StartDate, &semester.EndDate, &semester.AcademicYearID,
		&semester.AcademicYear.ID, &semester.AcademicYear.StartDate, &semester.AcademicYear.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		logger.Error().Err(err).Int64("semesterID", id).Msg("Error scanning semester row")
		return nil, fmt.Errorf("error getting semester by ID: %w", err)
	}

	return semester, nil
}

// GetAll retrieves all semesters, optionally filtered by academic year.
// academicYearID of zero means no filter.
func (r *SemesterRepository) GetAll(ctx context.Context, academicYearID int64) ([]*models.Semester, error) {
	builder := r.sb.Select(
		"s.id", "s.semester_number", "s.start_date", "s.end_date", "s.academic_year_id",
		"y.id", "y.start_date", "y.end_date").
		From("semesters s").
		Join("academic_years y ON y.id = s.academic_year_id").
		OrderBy("s.start_date DESC")

	if academicYearID > 0 {
		builder = builder.Where(squirrel.Eq{"s.academic_year_id": academicYearID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all semesters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all semesters query")
		return nil, fmt.Errorf("error querying semesters: %w", err)
	}
	defer rows.Close()

	semesters := []*models.Semester{}
	for rows.Next() {
		semester := &models.Semester{AcademicYear: &models.AcademicYear{}}
		if err := rows.Scan(
			&semester.ID, &semester.SemesterNumber, &semester.StartDate, &semester.EndDate, &semester.AcademicYearID,
			&semester.AcademicYear.ID, &semester.AcademicYear.StartDate, &semester.AcademicYear.EndDate,
		); err != nil {
			return nil, fmt.Errorf("error scanning semester row: %w", err)
		}
		semesters = append(semesters, semester)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating semester rows: %w", err)
	}

	return semesters, nil
}

// Update updates an existing semester
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	sql, args, err := r.sb.Update("semesters").
		SetMap(map[string]interface{}{
			"semester_number":  semester.SemesterNumber,
			"start_date":       semester.StartDate,
			"end_date":         semester.EndDate,
			"academic_year_id": semester.AcademicYearID,
		}).
		Where(squirrel.Eq{"id": semester.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update semester query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAcademicYearNotFound
		}
		logger.Error().Err(err).Int64("semesterID", semester.ID).Msg("Error executing update semester query")
		return fmt.Errorf("error updating semester: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}

	return nil
}

// Delete removes a semester. Semesters referenced by courses or schedules
// cannot be deleted.
func (r *SemesterRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("semesters").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete semester query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("semester has associated courses or schedules and cannot be deleted")
		}
		logger.Error().Err(err).Int64("semesterID", id).Msg("Error executing delete semester query")
		return fmt.Errorf("error deleting semester: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}

	return nil
}
