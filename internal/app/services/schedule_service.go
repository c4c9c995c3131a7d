package services

import (
	"context"
	"fmt"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/helpers"
	"github.com/bisplatform/bisbackend/internal/pkg/logger"
)

// ScheduleService defines the interface for session schedule operations
type ScheduleService interface {
	Create(ctx context.Context, req *dto.ScheduleRequest) (*models.SessionSchedule, error)
	GetByID(ctx context.Context, id int64) (*models.SessionSchedule, error)
	List(ctx context.Context, filter dto.ScheduleFilter) ([]*models.SessionSchedule, error)
	Update(ctx context.Context, id int64, req *dto.ScheduleRequest) error
	Delete(ctx context.Context, id int64) error
	GetSessionGroup(ctx context.Context, scheduleID int64) (*models.SessionGroup, error)
}

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	scheduleRepo *repositories.ScheduleRepository
	notifier     NotificationService
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(
	scheduleRepo *repositories.ScheduleRepository,
	notifier NotificationService,
) ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		notifier:     notifier,
	}
}

// NormalizeFilter reduces a schedule filter to its effective scope. A
// guidance group wins over a semester, which wins over an academic year;
// the group scope may keep a semester to narrow it further.
func NormalizeFilter(filter dto.ScheduleFilter) dto.ScheduleFilter {
	switch {
	case filter.GuidanceGroupID > 0:
		return dto.ScheduleFilter{GuidanceGroupID: filter.GuidanceGroupID, SemesterID: filter.SemesterID}
	case filter.SemesterID > 0:
		return dto.ScheduleFilter{SemesterID: filter.SemesterID}
	case filter.AcademicYearID > 0:
		return dto.ScheduleFilter{AcademicYearID: filter.AcademicYearID}
	default:
		return dto.ScheduleFilter{}
	}
}

func buildSchedule(req *dto.ScheduleRequest) (*models.SessionSchedule, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: schedule data is required", apperrors.ErrValidationFailed)
	}
	if !models.SessionType(req.SessionType).Valid() {
		return nil, fmt.Errorf("%w: unknown session type", apperrors.ErrValidationFailed)
	}
	if !models.WeekDay(req.Day).Valid() {
		return nil, fmt.Errorf("%w: day must be between 0 (Saturday) and 6 (Friday)", apperrors.ErrValidationFailed)
	}

	start, err := helpers.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time must use the %s format", apperrors.ErrValidationFailed, helpers.TimeLayout)
	}
	end, err := helpers.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end time must use the %s format", apperrors.ErrValidationFailed, helpers.TimeLayout)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidationFailed)
	}

	return &models.SessionSchedule{
		CourseID:        req.CourseID,
		SessionType:     models.SessionType(req.SessionType),
		RoomID:          req.RoomID,
		GuidanceGroupID: req.GuidanceGroupID,
		Day:             models.WeekDay(req.Day),
		StartTime:       start.Format(helpers.TimeLayout),
		EndTime:         end.Format(helpers.TimeLayout),
		AcademicYearID:  req.AcademicYearID,
		SemesterID:      req.SemesterID,
	}, nil
}

// Create stores a new weekly slot and notifies the students of its group.
func (s *scheduleServiceImpl) Create(ctx context.Context, req *dto.ScheduleRequest) (*models.SessionSchedule, error) {
	schedule, err := buildSchedule(req)
	if err != nil {
		return nil, err
	}

	id, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return nil, err
	}

	created, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("New %s scheduled for %s: %s, %s-%s in %s",
		created.SessionType.Name(), created.CourseName,
		created.Day.Name(), created.StartTime, created.EndTime, created.RoomName)
	s.notifyGroup(ctx, created, message, models.NotificationScheduleCreated)

	return created, nil
}

func (s *scheduleServiceImpl) GetByID(ctx context.Context, id int64) (*models.SessionSchedule, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

func (s *scheduleServiceImpl) List(ctx context.Context, filter dto.ScheduleFilter) ([]*models.SessionSchedule, error) {
	effective := NormalizeFilter(filter)
	return s.scheduleRepo.List(ctx, effective.GuidanceGroupID, effective.SemesterID, effective.AcademicYearID)
}

// Update rewrites a slot and notifies the (possibly new) group.
func (s *scheduleServiceImpl) Update(ctx context.Context, id int64, req *dto.ScheduleRequest) error {
	schedule, err := buildSchedule(req)
	if err != nil {
		return err
	}
	schedule.ID = id

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return err
	}

	updated, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("%s session for %s moved to %s, %s-%s in %s",
		updated.SessionType.Name(), updated.CourseName,
		updated.Day.Name(), updated.StartTime, updated.EndTime, updated.RoomName)
	s.notifyGroup(ctx, updated, message, models.NotificationScheduleUpdated)

	return nil
}

func (s *scheduleServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.scheduleRepo.Delete(ctx, id)
}

func (s *scheduleServiceImpl) GetSessionGroup(ctx context.Context, scheduleID int64) (*models.SessionGroup, error) {
	return s.scheduleRepo.GetSessionGroup(ctx, scheduleID)
}

// notifyGroup fans the schedule change out to the group. Failures are
// logged, not propagated; the schedule write already succeeded.
func (s *scheduleServiceImpl) notifyGroup(ctx context.Context, schedule *models.SessionSchedule, message string, notifType models.NotificationType) {
	scheduleID := schedule.ID
	if _, err := s.notifier.NotifyGroup(ctx, schedule.GuidanceGroupID, &scheduleID, message, notifType); err != nil {
		logger.Warn().Err(err).Int64("scheduleID", schedule.ID).Msg("Failed to notify group of schedule change")
	}
}
