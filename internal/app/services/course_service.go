package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

// CourseService defines the interface for course operations
type CourseService interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByLevel(ctx context.Context, level int) ([]*models.Course, error)
	GetLevel(ctx context.Context, id int64) (int, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.CourseCode) == "" {
		return fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.CourseName) == "" {
		return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.CreditHours < 1 || course.CreditHours > 10 {
		return fmt.Errorf("%w: credit hours must be between 1 and 10", apperrors.ErrValidationFailed)
	}
	if !models.ValidLevel(course.CourseLevel) {
		return fmt.Errorf("%w: course level must be between %d and %d",
			apperrors.ErrValidationFailed, models.MinLevel, models.MaxLevel)
	}
	return nil
}

func (s *courseServiceImpl) Create(ctx context.Context, course *models.Course) (int64, error) {
	if err := validateCourse(course); err != nil {
		return 0, err
	}
	course.CourseCode = strings.ToUpper(strings.TrimSpace(course.CourseCode))
	return s.courseRepo.Create(ctx, course)
}

func (s *courseServiceImpl) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *courseServiceImpl) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetByLevel returns the courses taught at one level. The level must be in
// range; a valid level with no courses yields an empty slice.
func (s *courseServiceImpl) GetByLevel(ctx context.Context, level int) ([]*models.Course, error) {
	if !models.ValidLevel(level) {
		return nil, fmt.Errorf("%w: level must be between %d and %d",
			apperrors.ErrValidationFailed, models.MinLevel, models.MaxLevel)
	}
	return s.courseRepo.GetByLevel(ctx, level)
}

func (s *courseServiceImpl) GetLevel(ctx context.Context, id int64) (int, error) {
	return s.courseRepo.GetLevel(ctx, id)
}

func (s *courseServiceImpl) Update(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}
	course.CourseCode = strings.ToUpper(strings.TrimSpace(course.CourseCode))
	return s.courseRepo.Update(ctx, course)
}

func (s *courseServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
