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

// AcademicYearRepository handles academic year database operations
type AcademicYearRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAcademicYearRepository creates a new AcademicYearRepository
func NewAcademicYearRepository(db *pgxpool.Pool) *AcademicYearRepository {
	return &AcademicYearRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new academic year and returns its id.
func (r *AcademicYearRepository) Create(ctx context.Context, year *models.AcademicYear) (int64, error) {
	sql, args, err := r.sb.Insert("academic_years").
		Columns("start_date", "end_date").
		Values(year.StartDate, year.EndDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create academic year SQL")
		return 0, fmt.Errorf("failed to build create academic year query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create academic year query")
		return 0, fmt.Errorf("error creating academic year: %w", err)
	}

	return id, nil
}

// GetByID retrieves an academic year by ID
func (r *AcademicYearRepository) GetByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	sql, args, err := r.sb.Select("id", "start_date", "end_date").
		From("academic_years").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get academic year query: %w", err)
	}

	year := &models.AcademicYear{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&year.ID, &year.StartDate, &year.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademicYearNotFound
		}
		logger.Error().Err(err).Int64("academicYearID", id).Msg("Error scanning academic year row")
		return nil, fmt.Errorf("error getting academic year by ID: %w", err)
	}

	return year, nil
}

// GetAll retrieves all academic years ordered by start date, newest first.
func (r *AcademicYearRepository) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	sql, args, err := r.sb.Select("id", "start_date", "end_date").
		From("academic_years").
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all academic years query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all academic years query")
		return nil, fmt.Errorf("error querying academic years: %w", err)
	}
	defer rows.Close()

	years := []*models.AcademicYear{}
	for rows.Next() {
		year := &models.AcademicYear{}
		if err := rows.Scan(&year.ID, &year.StartDate, &year.EndDate); err != nil {
			return nil, fmt.Errorf("error scanning academic year row: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating academic year rows: %w", err)
	}

	return years, nil
}

// Update updates an existing academic year
func (r *AcademicYearRepository) Update(ctx context.Context, year *models.AcademicYear) error {
	sql, args, err := r.sb.Update("academic_years").
		SetMap(map[string]interface{}{
			"start_date": year.StartDate,
			"end_date":   year.EndDate,
		}).
		Where(squirrel.Eq{"id": year.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update academic year query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("academicYearID", year.ID).Msg("Error executing update academic year query")
		return fmt.Errorf("error updating academic year: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}

	return nil
}

// Delete removes an academic year. Years referenced by semesters or courses
// cannot be deleted.
func (r *AcademicYearRepository) Delete(ctx context.Context, id int64) error {
	inUse, err := r.isReferenced(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.ErrAcademicYearInUse
	}

	sql, args, err := r.sb.Delete("academic_years").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete academic year query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			// Referenced between the check and the delete
			return apperrors.ErrAcademicYearInUse
		}
		logger.Error().Err(err).Int64("academicYearID", id).Msg("Error executing delete academic year query")
		return fmt.Errorf("error deleting academic year: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}

	return nil
}

func (r *AcademicYearRepository) isReferenced(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("semesters").
		Where(squirrel.Eq{"academic_year_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build check semesters query: %w", err)
	}

	var hasSemesters bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&hasSemesters)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking associated semesters: %w", err)
	}
	if hasSemesters {
		return true, nil
	}

	sql, args, err = r.sb.Select("1").
		From("courses").
		Where(squirrel.Eq{"academic_year_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build check courses query: %w", err)
	}

	var hasCourses bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&hasCourses)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking associated courses: %w", err)
	}

	return hasCourses, nil
}
