package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

// RoomService defines the interface for room operations
type RoomService interface {
	Create(ctx context.Context, room *models.Room) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetAll(ctx context.Context) ([]*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id int64) error
}

// roomServiceImpl implements the RoomService interface
type roomServiceImpl struct {
	roomRepo *repositories.RoomRepository
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo *repositories.RoomRepository) RoomService {
	return &roomServiceImpl{roomRepo: roomRepo}
}

func validateRoom(room *models.Room) error {
	if room == nil {
		return fmt.Errorf("%w: room is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(room.Name) == "" {
		return fmt.Errorf("%w: room name cannot be empty", apperrors.ErrValidationFailed)
	}
	if room.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *roomServiceImpl) Create(ctx context.Context, room *models.Room) (int64, error) {
	if err := validateRoom(room); err != nil {
		return 0, err
	}
	return s.roomRepo.Create(ctx, room)
}

func (s *roomServiceImpl) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *roomServiceImpl) GetAll(ctx context.Context) ([]*models.Room, error) {
	return s.roomRepo.GetAll(ctx)
}

func (s *roomServiceImpl) Update(ctx context.Context, room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	return s.roomRepo.Update(ctx, room)
}

func (s *roomServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.roomRepo.Delete(ctx, id)
}
