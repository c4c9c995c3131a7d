package services

import (
	"context"
	"fmt"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

// SemesterService defines the interface for semester operations
type SemesterService interface {
	Create(ctx context.Context, semester *models.Semester) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
	GetAll(ctx context.Context, academicYearID int64) ([]*models.Semester, error)
	Update(ctx context.Context, semester *models.Semester) error
	Delete(ctx context.Context, id int64) error
}

// semesterServiceImpl implements the SemesterService interface
type semesterServiceImpl struct {
	semesterRepo *repositories.SemesterRepository
	yearRepo     *repositories.AcademicYearRepository
}

// NewSemesterService creates a new semester service instance
func NewSemesterService(
	semesterRepo *repositories.SemesterRepository,
	yearRepo *repositories.AcademicYearRepository,
) SemesterService {
	return &semesterServiceImpl{
		semesterRepo: semesterRepo,
		yearRepo:     yearRepo,
	}
}

func (s *semesterServiceImpl) validateSemester(ctx context.Context, semester *models.Semester) error {
	if semester == nil {
		return fmt.Errorf("%w: semester is nil", apperrors.ErrValidationFailed)
	}
	if semester.SemesterNumber < 1 || semester.SemesterNumber > 3 {
		return fmt.Errorf("%w: semester number must be 1, 2 or 3", apperrors.ErrValidationFailed)
	}
	if semester.StartDate.IsZero() || semester.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidationFailed)
	}
	if !semester.EndDate.After(semester.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidationFailed)
	}

	year, err := s.yearRepo.GetByID(ctx, semester.AcademicYearID)
	if err != nil {
		return err
	}
	if semester.StartDate.Before(year.StartDate) || semester.EndDate.After(year.EndDate) {
		return fmt.Errorf("%w: semester must fall within its academic year", apperrors.ErrValidationFailed)
	}

	return nil
}

func (s *semesterServiceImpl) Create(ctx context.Context, semester *models.Semester) (int64, error) {
	if err := s.validateSemester(ctx, semester); err != nil {
		return 0, err
	}
	return s.semesterRepo.Create(ctx, semester)
}

func (s *semesterServiceImpl) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	return s.semesterRepo.GetByID(ctx, id)
}

func (s *semesterServiceImpl) GetAll(ctx context.Context, academicYearID int64) ([]*models.Semester, error) {
	return s.semesterRepo.GetAll(ctx, academicYearID)
}

func (s *semesterServiceImpl) Update(ctx context.Context, semester *models.Semester) error {
	if err := s.validateSemester(ctx, semester); err != nil {
		return err
	}
	return s.semesterRepo.Update(ctx, semester)
}

func (s *semesterServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.semesterRepo.Delete(ctx, id)
}
