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

// RoomRepository handles room database operations
type RoomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new room and returns its id.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) (int64, error) {
	sql, args, err := r.sb.Insert("rooms").
		Columns("name", "capacity", "location").
		Values(room.Name, room.Capacity, room.Location).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create room query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrRoomAlreadyExists
		}
		logger.Error().Err(err).Str("name", room.Name).Msg("Error executing create room query")
		return 0, fmt.Errorf("error creating room: %w", err)
	}

	return id, nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	sql, args, err := r.sb.Select("id", "name", "capacity", "location").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	room := &models.Room{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&room.ID, &room.Name, &room.Capacity, &room.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		logger.Error().Err(err).Int64("roomID", id).Msg("Error scanning room row")
		return nil, fmt.Errorf("error getting room by ID: %w", err)
	}

	return room, nil
}

// GetAll retrieves all rooms ordered by name.
func (r *RoomRepository) GetAll(ctx context.Context) ([]*models.Room, error) {
	sql, args, err := r.sb.Select("id", "name", "capacity", "location").
		From("rooms").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all rooms query")
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.Location); err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}

// Update updates an existing room
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Update("rooms").
		SetMap(map[string]interface{}{
			"name":     room.Name,
			"capacity": room.Capacity,
			"location": room.Location,
		}).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update room query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrRoomAlreadyExists
		}
		logger.Error().Err(err).Int64("roomID", room.ID).Msg("Error executing update room query")
		return fmt.Errorf("error updating room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// Delete removes a room. Rooms referenced by schedules or sessions cannot
// be deleted.
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete room query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("room has associated sessions and cannot be deleted")
		}
		logger.Error().Err(err).Int64("roomID", id).Msg("Error executing delete room query")
		return fmt.Errorf("error deleting room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}
