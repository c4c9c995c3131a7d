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

// InstructorRepository handles instructor database operations. Like
// students, instructors are a user account plus a title row.
type InstructorRepository struct {
	db    *pgxpool.Pool
	sb    squirrel.StatementBuilderType
	users *UserRepository
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(pool *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db:    pool,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		users: NewUserRepository(pool),
	}
}

// Create inserts the user account and the instructor row atomically.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) (int64, error) {
	var instructorID int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := r.users.CreateTx(ctx, tx, instructor.User)
		if err != nil {
			return err
		}

		sql, args, err := r.sb.Insert("instructors").
			Columns("user_id", "title").
			Values(userID, instructor.Title).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create instructor query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&instructorID); err != nil {
			logger.Error().Err(err).Int64("userID", userID).Msg("Error executing create instructor query")
			return fmt.Errorf("error creating instructor: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return instructorID, nil
}

func (r *InstructorRepository) selectInstructors() squirrel.SelectBuilder {
	return r.sb.Select(
		"i.id", "i.user_id", "i.title",
		"u.id", "u.name", "u.email", "u.phone", "u.national_no", "u.profile_image",
		"u.role_id", "u.created_at", "u.updated_at").
		From("instructors i").
		Join("users u ON u.id = i.user_id")
}

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	instructor := &models.Instructor{User: &models.User{}}
	err := row.Scan(
		&instructor.ID, &instructor.UserID, &instructor.Title,
		&instructor.User.ID, &instructor.User.Name, &instructor.User.Email, &instructor.User.Phone,
		&instructor.User.NationalNo, &instructor.User.ProfileImage,
		&instructor.User.RoleID, &instructor.User.CreatedAt, &instructor.User.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return instructor, nil
}

// GetAll retrieves all instructors with their accounts joined.
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	sql, args, err := r.selectInstructors().
		OrderBy("u.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all instructors query")
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}

// GetByID retrieves an instructor with the account joined.
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	sql, args, err := r.selectInstructors().
		Where(squirrel.Eq{"i.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get instructor query: %w", err)
	}

	instructor, err := scanInstructor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		logger.Error().Err(err).Int64("instructorID", id).Msg("Error scanning instructor row")
		return nil, fmt.Errorf("error getting instructor by ID: %w", err)
	}

	return instructor, nil
}

// Update updates the account and title rows atomically.
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.users.UpdateTx(ctx, tx, instructor.User); err != nil {
			return err
		}

		sql, args, err := r.sb.Update("instructors").
			Set("title", instructor.Title).
			Where(squirrel.Eq{"id": instructor.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update instructor query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Int64("instructorID", instructor.ID).Msg("Error executing update instructor query")
			return fmt.Errorf("error updating instructor: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrInstructorNotFound
		}

		return nil
	})
}

// Delete removes the instructor and the backing user account atomically.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var userID int64
		sql, args, err := r.sb.Delete("instructors").
			Where(squirrel.Eq{"id": id}).
			Suffix("RETURNING user_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete instructor query: %w", err)
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrInstructorNotFound
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.NewConflictError("instructor is referenced and cannot be deleted")
			}
			logger.Error().Err(err).Int64("instructorID", id).Msg("Error executing delete instructor query")
			return fmt.Errorf("error deleting instructor: %w", err)
		}

		sql, args, err = r.sb.Delete("users").
			Where(squirrel.Eq{"id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete user query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Int64("userID", userID).Msg("Error deleting user behind instructor")
			return fmt.Errorf("error deleting instructor account: %w", err)
		}

		return nil
	})
}
