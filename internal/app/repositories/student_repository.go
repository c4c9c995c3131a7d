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

// StudentRepository handles student database operations. Students are a
// user account plus an enrollment row, written together in one transaction.
type StudentRepository struct {
	db    *pgxpool.Pool
	sb    squirrel.StatementBuilderType
	users *UserRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db:    pool,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		users: NewUserRepository(pool),
	}
}

// Create inserts the user account and the student row atomically. Returns
// the new student id (which equals the user id).
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	var studentID int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := r.users.CreateTx(ctx, tx, student.User)
		if err != nil {
			return err
		}

		sql, args, err := r.sb.Insert("students").
			Columns("student_id", "gpa", "enrollment_date", "student_level", "guidance_group_id").
			Values(userID, student.GPA, student.EnrollmentDate, student.StudentLevel, student.GuidanceGroupID).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create student query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrGuidanceGroupNotFound
			}
			logger.Error().Err(err).Int64("userID", userID).Msg("Error executing create student query")
			return fmt.Errorf("error creating student: %w", err)
		}

		studentID = userID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return studentID, nil
}

func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.student_id", "s.gpa", "s.enrollment_date", "s.student_level", "s.guidance_group_id",
		"u.id", "u.name", "u.email", "u.phone", "u.national_no", "u.profile_image",
		"u.role_id", "u.created_at", "u.updated_at").
		From("students s").
		Join("users u ON u.id = s.student_id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{User: &models.User{}}
	err := row.Scan(
		&student.StudentID, &student.GPA, &student.EnrollmentDate, &student.StudentLevel, &student.GuidanceGroupID,
		&student.User.ID, &student.User.Name, &student.User.Email, &student.User.Phone,
		&student.User.NationalNo, &student.User.ProfileImage,
		&student.User.RoleID, &student.User.CreatedAt, &student.User.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetAll retrieves a page of students with their accounts joined, plus the
// total count.
func (r *StudentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("students").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	sql, args, err := r.selectStudents().
		OrderBy("u.name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get all students query: %w", err)
	}

	students, err := r.queryStudents(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetByID retrieves a student with the account joined.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.selectStudents().
		Where(squirrel.Eq{"s.student_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetBySessionGroup retrieves the roster of the guidance group a session
// group resolves to. An unknown session group yields an empty slice.
func (r *StudentRepository) GetBySessionGroup(ctx context.Context, sessionGroupID int64) ([]*models.Student, error) {
	sql, args, err := r.selectStudents().
		Join("session_groups sg ON sg.group_id = s.guidance_group_id").
		Where(squirrel.Eq{"sg.id": sessionGroupID}).
		OrderBy("u.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get students by session group query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

// GetByGroup retrieves the roster of a guidance group.
func (r *StudentRepository) GetByGroup(ctx context.Context, groupID int64) ([]*models.Student, error) {
	sql, args, err := r.selectStudents().
		Where(squirrel.Eq{"s.guidance_group_id": groupID}).
		OrderBy("u.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get students by group query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update updates the account and enrollment rows atomically.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.users.UpdateTx(ctx, tx, student.User); err != nil {
			return err
		}

		sql, args, err := r.sb.Update("students").
			SetMap(map[string]interface{}{
				"gpa":               student.GPA,
				"enrollment_date":   student.EnrollmentDate,
				"student_level":     student.StudentLevel,
				"guidance_group_id": student.GuidanceGroupID,
			}).
			Where(squirrel.Eq{"student_id": student.StudentID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update student query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrGuidanceGroupNotFound
			}
			logger.Error().Err(err).Int64("studentID", student.StudentID).Msg("Error executing update student query")
			return fmt.Errorf("error updating student: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}

// Delete removes the student and the backing user account atomically.
// Students with recorded attendance cannot be deleted.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Delete("students").
			Where(squirrel.Eq{"student_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete student query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.NewConflictError("student has recorded attendance and cannot be deleted")
			}
			logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
			return fmt.Errorf("error deleting student: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		sql, args, err = r.sb.Delete("users").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete user query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Int64("userID", id).Msg("Error deleting user behind student")
			return fmt.Errorf("error deleting student account: %w", err)
		}

		return nil
	})
}

// InGroup reports whether a student belongs to the guidance group that a
// session group resolves to.
func (r *StudentRepository) InGroup(ctx context.Context, studentID, sessionGroupID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students s").
		Join("session_groups sg ON sg.group_id = s.guidance_group_id").
		Where(squirrel.Eq{"s.student_id": studentID, "sg.id": sessionGroupID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student group membership query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking student group membership: %w", err)
	}

	return exists, nil
}
