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

// GuidanceGroupRepository handles guidance group database operations
type GuidanceGroupRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGuidanceGroupRepository creates a new GuidanceGroupRepository
func NewGuidanceGroupRepository(db *pgxpool.Pool) *GuidanceGroupRepository {
	return &GuidanceGroupRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new guidance group and returns its id.
func (r *GuidanceGroupRepository) Create(ctx context.Context, group *models.GuidanceGroup) (int64, error) {
	sql, args, err := r.sb.Insert("guidance_groups").
		Columns("group_name", "level").
		Values(group.GroupName, group.Level).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create guidance group query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Str("groupName", group.GroupName).Msg("Error executing create guidance group query")
		return 0, fmt.Errorf("error creating guidance group: %w", err)
	}

	return id, nil
}

// GetByID retrieves a guidance group by ID
func (r *GuidanceGroupRepository) GetByID(ctx context.Context, id int64) (*models.GuidanceGroup, error) {
	sql, args, err := r.sb.Select("id", "group_name", "level").
		From("guidance_groups").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get guidance group query: %w", err)
	}

	group := &models.GuidanceGroup{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&group.ID, &group.GroupName, &group.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGuidanceGroupNotFound
		}
		logger.Error().Err(err).Int64("groupID", id).Msg("Error scanning guidance group row")
		return nil, fmt.Errorf("error getting guidance group by ID: %w", err)
	}

	return group, nil
}

// GetAll retrieves all guidance groups ordered by level then name.
func (r *GuidanceGroupRepository) GetAll(ctx context.Context) ([]*models.GuidanceGroup, error) {
	return r.query(ctx, r.sb.Select("id", "group_name", "level").
		From("guidance_groups").
		OrderBy("level ASC", "group_name ASC"))
}

// GetByLevel retrieves the guidance groups at one level. An unknown level
// yields an empty slice, not an error.
func (r *GuidanceGroupRepository) GetByLevel(ctx context.Context, level int) ([]*models.GuidanceGroup, error) {
	return r.query(ctx, r.sb.Select("id", "group_name", "level").
		From("guidance_groups").
		Where(squirrel.Eq{"level": level}).
		OrderBy("group_name ASC"))
}

func (r *GuidanceGroupRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.GuidanceGroup, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build guidance groups query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing guidance groups query")
		return nil, fmt.Errorf("error querying guidance groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.GuidanceGroup{}
	for rows.Next() {
		group := &models.GuidanceGroup{}
		if err := rows.Scan(&group.ID, &group.GroupName, &group.Level); err != nil {
			return nil, fmt.Errorf("error scanning guidance group row: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guidance group rows: %w", err)
	}

	return groups, nil
}

// Update updates an existing guidance group
func (r *GuidanceGroupRepository) Update(ctx context.Context, group *models.GuidanceGroup) error {
	sql, args, err := r.sb.Update("guidance_groups").
		SetMap(map[string]interface{}{
			"group_name": group.GroupName,
			"level":      group.Level,
		}).
		Where(squirrel.Eq{"id": group.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update guidance group query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Int64("groupID", group.ID).Msg("Error executing update guidance group query")
		return fmt.Errorf("error updating guidance group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGuidanceGroupNotFound
	}

	return nil
}

// Delete removes a guidance group. Groups with enrolled students or
// scheduled sessions cannot be deleted.
func (r *GuidanceGroupRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("guidance_groups").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete guidance group query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrGuidanceGroupInUse
		}
		logger.Error().Err(err).Int64("groupID", id).Msg("Error executing delete guidance group query")
		return fmt.Errorf("error deleting guidance group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGuidanceGroupNotFound
	}

	return nil
}
