package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/auth"
	"github.com/bisplatform/bisbackend/internal/pkg/validation"
)

// InstructorService defines the interface for instructor operations
type InstructorService interface {
	Create(ctx context.Context, req *dto.InstructorRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAll(ctx context.Context) ([]*models.Instructor, error)
	Update(ctx context.Context, id int64, req *dto.InstructorRequest) error
	Delete(ctx context.Context, id int64) error
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructorRepo *repositories.InstructorRepository
	roleRepo       *repositories.RoleRepository
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(
	instructorRepo *repositories.InstructorRepository,
	roleRepo *repositories.RoleRepository,
) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
		roleRepo:       roleRepo,
	}
}

func (s *instructorServiceImpl) validateRequest(req *dto.InstructorRequest, requirePassword bool) error {
	if req == nil {
		return fmt.Errorf("%w: instructor data is required", apperrors.ErrValidationFailed)
	}
	if !models.InstructorTitle(req.Title).Valid() {
		return fmt.Errorf("%w: unknown instructor title", apperrors.ErrValidationFailed)
	}
	return validateStudentAccount(&req.User, requirePassword)
}

func (s *instructorServiceImpl) buildInstructor(req *dto.InstructorRequest, roleID int64) *models.Instructor {
	instructor := &models.Instructor{
		Title: models.InstructorTitle(req.Title),
		User: &models.User{
			Name:       strings.TrimSpace(req.User.Name),
			Email:      strings.TrimSpace(strings.ToLower(req.User.Email)),
			Phone:      req.User.Phone,
			NationalNo: req.User.NationalNo,
			RoleID:     roleID,
		},
	}
	if req.User.ProfileImage != "" {
		instructor.User.ProfileImage = &req.User.ProfileImage
	}
	return instructor
}

func (s *instructorServiceImpl) Create(ctx context.Context, req *dto.InstructorRequest) (int64, error) {
	if err := s.validateRequest(req, true); err != nil {
		return 0, err
	}

	role, err := s.roleRepo.GetByName(ctx, string(models.RoleFaculty))
	if err != nil {
		return 0, fmt.Errorf("faculty role is not seeded: %w", err)
	}

	instructor := s.buildInstructor(req, role.ID)

	hashed, err := auth.HashPassword(req.User.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	instructor.User.Password = hashed

	return s.instructorRepo.Create(ctx, instructor)
}

func (s *instructorServiceImpl) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	return s.instructorRepo.GetByID(ctx, id)
}

func (s *instructorServiceImpl) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	return s.instructorRepo.GetAll(ctx)
}

func (s *instructorServiceImpl) Update(ctx context.Context, id int64, req *dto.InstructorRequest) error {
	if err := s.validateRequest(req, false); err != nil {
		return err
	}

	existing, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	instructor := s.buildInstructor(req, existing.User.RoleID)
	instructor.ID = id
	instructor.UserID = existing.UserID
	instructor.User.ID = existing.UserID

	if req.User.Password != "" {
		if len(req.User.Password) < validation.PasswordMinLength {
			return fmt.Errorf("%w: password must be at least %d characters",
				apperrors.ErrValidationFailed, validation.PasswordMinLength)
		}
		hashed, err := auth.HashPassword(req.User.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		instructor.User.Password = hashed
	}

	return s.instructorRepo.Update(ctx, instructor)
}

func (s *instructorServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.instructorRepo.Delete(ctx, id)
}
