package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/logger"
)

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a single notification.
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) (int64, error) {
	sql, args, err := r.sb.Insert("notifications").
		Columns("user_id", "session_schedule_id", "message", "seen", "type", "created_at").
		Values(notification.UserID, notification.SessionScheduleID, notification.Message,
			false, notification.Type, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create notification query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("userID", notification.UserID).Msg("Error executing create notification query")
		return 0, fmt.Errorf("error creating notification: %w", err)
	}

	return id, nil
}

// CreateForGroup fans one notification out to every student of a guidance
// group with a single statement. Returns the number of rows inserted.
func (r *NotificationRepository) CreateForGroup(ctx context.Context, groupID int64, scheduleID *int64, message string, notifType models.NotificationType) (int64, error) {
	sql := `INSERT INTO notifications (user_id, session_schedule_id, message, seen, type, created_at)
		SELECT s.student_id, $1, $2, FALSE, $3, $4
		FROM students s
		WHERE s.guidance_group_id = $5`
	args := []interface{}{scheduleID, message, notifType, time.Now(), groupID}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("groupID", groupID).Msg("Error fanning out group notification")
		return 0, fmt.Errorf("error creating group notifications: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// ListByUser retrieves a user's notifications, newest first. No
// notifications yields an empty slice.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	sql, args, err := r.sb.Select("id", "user_id", "session_schedule_id", "message", "seen", "type", "created_at").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list notifications query")
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.SessionScheduleID, &n.Message, &n.Seen, &n.Type, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

// MarkSeen marks one notification of a user as seen.
func (r *NotificationRepository) MarkSeen(ctx context.Context, id, userID int64) error {
	sql, args, err := r.sb.Update("notifications").
		Set("seen", true).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark seen query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("notificationID", id).Msg("Error executing mark seen query")
		return fmt.Errorf("error marking notification seen: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}
