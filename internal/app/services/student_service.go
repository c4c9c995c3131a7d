package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/auth"
	"github.com/bisplatform/bisbackend/internal/pkg/helpers"
	"github.com/bisplatform/bisbackend/internal/pkg/logger"
	"github.com/bisplatform/bisbackend/internal/pkg/validation"
)

// StudentService defines the interface for student operations
type StudentService interface {
	Create(ctx context.Context, req *dto.StudentRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context, page, pageSize int) ([]*models.Student, int64, error)
	GetBySessionGroup(ctx context.Context, sessionGroupID int64) ([]*models.Student, error)
	GetByGroup(ctx context.Context, groupID int64) ([]*models.Student, error)
	Update(ctx context.Context, id int64, req *dto.StudentRequest) error
	Delete(ctx context.Context, id int64) error
	ImportFromWorkbook(ctx context.Context, r io.Reader) (*dto.ImportSummary, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	roleRepo    *repositories.RoleRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	roleRepo *repositories.RoleRepository,
) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		roleRepo:    roleRepo,
	}
}

func validateStudentAccount(user *dto.UserPayload, requirePassword bool) error {
	if user == nil {
		return fmt.Errorf("%w: user data is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidEmail(user.Email) {
		return fmt.Errorf("%w: malformed email", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidPhone(user.Phone) {
		return fmt.Errorf("%w: phone must be 11 digits", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidNationalNo(user.NationalNo) {
		return fmt.Errorf("%w: national number must be 14 digits", apperrors.ErrValidationFailed)
	}
	if requirePassword {
		if len(user.Password) < validation.PasswordMinLength {
			return fmt.Errorf("%w: password must be at least %d characters",
				apperrors.ErrValidationFailed, validation.PasswordMinLength)
		}
		if user.ConfirmPassword != "" && user.Password != user.ConfirmPassword {
			return fmt.Errorf("%w: passwords do not match", apperrors.ErrValidationFailed)
		}
	}
	return nil
}

func validateStudentFields(req *dto.StudentRequest) error {
	if req.GPA < 0 || req.GPA > 4 {
		return fmt.Errorf("%w: gpa must be between 0 and 4", apperrors.ErrValidationFailed)
	}
	if !models.ValidLevel(req.StudentLevel) {
		return fmt.Errorf("%w: student level must be between %d and %d",
			apperrors.ErrValidationFailed, models.MinLevel, models.MaxLevel)
	}
	if req.GuidanceGroupID <= 0 {
		return fmt.Errorf("%w: guidance group is required", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *studentServiceImpl) buildStudent(req *dto.StudentRequest, roleID int64) (*models.Student, error) {
	enrollment := time.Now()
	if req.EnrollmentDate != "" {
		parsed, err := helpers.ParseDate(req.EnrollmentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: enrollment date must use the %s format",
				apperrors.ErrValidationFailed, helpers.DateLayout)
		}
		enrollment = parsed
	}

	student := &models.Student{
		GPA:             req.GPA,
		EnrollmentDate:  enrollment,
		StudentLevel:    req.StudentLevel,
		GuidanceGroupID: req.GuidanceGroupID,
		User: &models.User{
			Name:       strings.TrimSpace(req.User.Name),
			Email:      strings.TrimSpace(strings.ToLower(req.User.Email)),
			Phone:      req.User.Phone,
			NationalNo: req.User.NationalNo,
			RoleID:     roleID,
		},
	}
	if req.User.ProfileImage != "" {
		student.User.ProfileImage = &req.User.ProfileImage
	}
	return student, nil
}

func (s *studentServiceImpl) studentRoleID(ctx context.Context) (int64, error) {
	role, err := s.roleRepo.GetByName(ctx, string(models.RoleStudent))
	if err != nil {
		return 0, fmt.Errorf("student role is not seeded: %w", err)
	}
	return role.ID, nil
}

func (s *studentServiceImpl) Create(ctx context.Context, req *dto.StudentRequest) (int64, error) {
	if err := validateStudentAccount(&req.User, true); err != nil {
		return 0, err
	}
	if err := validateStudentFields(req); err != nil {
		return 0, err
	}

	roleID, err := s.studentRoleID(ctx)
	if err != nil {
		return 0, err
	}

	student, err := s.buildStudent(req, roleID)
	if err != nil {
		return 0, err
	}

	hashed, err := auth.HashPassword(req.User.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	student.User.Password = hashed

	return s.studentRepo.Create(ctx, student)
}

func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentServiceImpl) GetAll(ctx context.Context, page, pageSize int) ([]*models.Student, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	return s.studentRepo.GetAll(ctx, offset, limit)
}

func (s *studentServiceImpl) GetBySessionGroup(ctx context.Context, sessionGroupID int64) ([]*models.Student, error) {
	return s.studentRepo.GetBySessionGroup(ctx, sessionGroupID)
}

func (s *studentServiceImpl) GetByGroup(ctx context.Context, groupID int64) ([]*models.Student, error) {
	return s.studentRepo.GetByGroup(ctx, groupID)
}

func (s *studentServiceImpl) Update(ctx context.Context, id int64, req *dto.StudentRequest) error {
	if err := validateStudentAccount(&req.User, false); err != nil {
		return err
	}
	if err := validateStudentFields(req); err != nil {
		return err
	}

	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	student, err := s.buildStudent(req, existing.User.RoleID)
	if err != nil {
		return err
	}
	student.StudentID = id
	student.User.ID = id

	if req.User.Password != "" {
		if len(req.User.Password) < validation.PasswordMinLength {
			return fmt.Errorf("%w: password must be at least %d characters",
				apperrors.ErrValidationFailed, validation.PasswordMinLength)
		}
		hashed, err := auth.HashPassword(req.User.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		student.User.Password = hashed
	}

	return s.studentRepo.Update(ctx, student)
}

func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// Spreadsheet column order for bulk student upload.
const importColumns = "name, email, password, phone, nationalNo, gpa, enrollmentDate, studentLevel, guidanceGroupId"

// ParseStudentRow converts one spreadsheet row into a student request. The
// expected columns are name, email, password, phone, national number, GPA,
// enrollment date, level and guidance group id.
func ParseStudentRow(cells []string) (*dto.StudentRequest, error) {
	if len(cells) < 9 {
		return nil, fmt.Errorf("%w: expected 9 columns (%s)", apperrors.ErrValidationFailed, importColumns)
	}
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	gpa, err := strconv.ParseFloat(cells[5], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: gpa is not a number", apperrors.ErrValidationFailed)
	}
	level, err := strconv.Atoi(cells[7])
	if err != nil {
		return nil, fmt.Errorf("%w: student level is not a number", apperrors.ErrValidationFailed)
	}
	groupID, err := strconv.ParseInt(cells[8], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: guidance group id is not a number", apperrors.ErrValidationFailed)
	}

	req := &dto.StudentRequest{
		GPA:             gpa,
		EnrollmentDate:  cells[6],
		StudentLevel:    level,
		GuidanceGroupID: groupID,
		User: dto.UserPayload{
			Name:       cells[0],
			Email:      cells[1],
			Password:   cells[2],
			Phone:      cells[3],
			NationalNo: cells[4],
		},
	}

	if err := validateStudentAccount(&req.User, true); err != nil {
		return nil, err
	}
	if err := validateStudentFields(req); err != nil {
		return nil, err
	}

	return req, nil
}

// ImportFromWorkbook reads an xlsx workbook and creates a student per data
// row of the first sheet. The first row is treated as a header. Rows that
// fail validation or collide with existing accounts are reported, not
// fatal.
func (s *studentServiceImpl) ImportFromWorkbook(ctx context.Context, r io.Reader) (*dto.ImportSummary, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read workbook", apperrors.ErrBadRequest)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrBadRequest)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: could not read sheet rows", apperrors.ErrBadRequest)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: workbook has no data rows", apperrors.ErrBadRequest)
	}

	summary := &dto.ImportSummary{}
	for i, cells := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		req, err := ParseStudentRow(cells)
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Row: rowNum, Reason: err.Error()})
			continue
		}

		if _, err := s.Create(ctx, req); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Row: rowNum, Reason: err.Error()})
			continue
		}
		summary.Imported++
	}

	logger.Info().Int("imported", summary.Imported).Int("failed", summary.Failed).Msg("Student workbook import finished")

	return summary, nil
}
