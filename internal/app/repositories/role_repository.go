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

// RoleRepository handles role database operations
type RoleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new role and returns its id. Used by the seeder.
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) (int64, error) {
	sql, args, err := r.sb.Insert("roles").
		Columns("name", "description").
		Values(role.Name, role.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create role query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Str("name", role.Name).Msg("Error executing create role query")
		return 0, fmt.Errorf("error creating role: %w", err)
	}

	return id, nil
}

// GetAll retrieves all roles ordered by id.
func (r *RoleRepository) GetAll(ctx context.Context) ([]*models.Role, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("roles").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all roles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all roles query")
		return nil, fmt.Errorf("error querying roles: %w", err)
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("error scanning role row: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}

	return roles, nil
}

// GetByID retrieves a role by ID
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("roles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get role query: %w", err)
	}

	role := &models.Role{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("error getting role by ID: %w", err)
	}

	return role, nil
}

// GetByName retrieves a role by its unique name.
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("roles").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get role by name query: %w", err)
	}

	role := &models.Role{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("error getting role by name: %w", err)
	}

	return role, nil
}
