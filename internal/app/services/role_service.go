package services

import (
	"context"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
)

// RoleService exposes the role lookup used by the instructor and student
// forms. Roles are seeded at startup and read-only at runtime.
type RoleService interface {
	GetAll(ctx context.Context) ([]*models.Role, error)
	GetByID(ctx context.Context, id int64) (*models.Role, error)
}

// roleServiceImpl implements the RoleService interface
type roleServiceImpl struct {
	roleRepo *repositories.RoleRepository
}

// NewRoleService creates a new role service instance
func NewRoleService(roleRepo *repositories.RoleRepository) RoleService {
	return &roleServiceImpl{roleRepo: roleRepo}
}

func (s *roleServiceImpl) GetAll(ctx context.Context) ([]*models.Role, error) {
	return s.roleRepo.GetAll(ctx)
}

func (s *roleServiceImpl) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	return s.roleRepo.GetByID(ctx, id)
}
