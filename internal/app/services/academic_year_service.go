package services

import (
	"context"
	"fmt"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

// AcademicYearService defines the interface for academic year operations
type AcademicYearService interface {
	Create(ctx context.Context, year *models.AcademicYear) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.AcademicYear, error)
	GetAll(ctx context.Context) ([]*models.AcademicYear, error)
	Update(ctx context.Context, year *models.AcademicYear) error
	Delete(ctx context.Context, id int64) error
}

// academicYearServiceImpl implements the AcademicYearService interface
type academicYearServiceImpl struct {
	yearRepo *repositories.AcademicYearRepository
}

// NewAcademicYearService creates a new academic year service instance
func NewAcademicYearService(yearRepo *repositories.AcademicYearRepository) AcademicYearService {
	return &academicYearServiceImpl{yearRepo: yearRepo}
}

func validateAcademicYear(year *models.AcademicYear) error {
	if year == nil {
		return fmt.Errorf("%w: academic year is nil", apperrors.ErrValidationFailed)
	}
	if year.StartDate.IsZero() || year.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidationFailed)
	}
	if !year.EndDate.After(year.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *academicYearServiceImpl) Create(ctx context.Context, year *models.AcademicYear) (int64, error) {
	if err := validateAcademicYear(year); err != nil {
		return 0, err
	}
	return s.yearRepo.Create(ctx, year)
}

func (s *academicYearServiceImpl) GetByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	return s.yearRepo.GetByID(ctx, id)
}

func (s *academicYearServiceImpl) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.yearRepo.GetAll(ctx)
}

func (s *academicYearServiceImpl) Update(ctx context.Context, year *models.AcademicYear) error {
	if err := validateAcademicYear(year); err != nil {
		return err
	}
	return s.yearRepo.Update(ctx, year)
}

func (s *academicYearServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.yearRepo.Delete(ctx, id)
}
