package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

// GuidanceGroupService defines the interface for guidance group operations
type GuidanceGroupService interface {
	Create(ctx context.Context, group *models.GuidanceGroup) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.GuidanceGroup, error)
	GetAll(ctx context.Context) ([]*models.GuidanceGroup, error)
	GetByLevel(ctx context.Context, level int) ([]*models.GuidanceGroup, error)
	Update(ctx context.Context, group *models.GuidanceGroup) error
	Delete(ctx context.Context, id int64) error
}

// guidanceGroupServiceImpl implements the GuidanceGroupService interface
type guidanceGroupServiceImpl struct {
	groupRepo *repositories.GuidanceGroupRepository
}

// NewGuidanceGroupService creates a new guidance group service instance
func NewGuidanceGroupService(groupRepo *repositories.GuidanceGroupRepository) GuidanceGroupService {
	return &guidanceGroupServiceImpl{groupRepo: groupRepo}
}

func validateGuidanceGroup(group *models.GuidanceGroup) error {
	if group == nil {
		return fmt.Errorf("%w: guidance group is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(group.GroupName) == "" {
		return fmt.Errorf("%w: group name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !models.ValidLevel(group.Level) {
		return fmt.Errorf("%w: level must be between %d and %d",
			apperrors.ErrValidationFailed, models.MinLevel, models.MaxLevel)
	}
	return nil
}

func (s *guidanceGroupServiceImpl) Create(ctx context.Context, group *models.GuidanceGroup) (int64, error) {
	if err := validateGuidanceGroup(group); err != nil {
		return 0, err
	}
	return s.groupRepo.Create(ctx, group)
}

func (s *guidanceGroupServiceImpl) GetByID(ctx context.Context, id int64) (*models.GuidanceGroup, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *guidanceGroupServiceImpl) GetAll(ctx context.Context) ([]*models.GuidanceGroup, error) {
	return s.groupRepo.GetAll(ctx)
}

// GetByLevel returns the groups at one level. A valid level with no groups
// yields an empty slice.
func (s *guidanceGroupServiceImpl) GetByLevel(ctx context.Context, level int) ([]*models.GuidanceGroup, error) {
	if !models.ValidLevel(level) {
		return nil, fmt.Errorf("%w: level must be between %d and %d",
			apperrors.ErrValidationFailed, models.MinLevel, models.MaxLevel)
	}
	return s.groupRepo.GetByLevel(ctx, level)
}

func (s *guidanceGroupServiceImpl) Update(ctx context.Context, group *models.GuidanceGroup) error {
	if err := validateGuidanceGroup(group); err != nil {
		return err
	}
	return s.groupRepo.Update(ctx, group)
}

func (s *guidanceGroupServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.groupRepo.Delete(ctx, id)
}
