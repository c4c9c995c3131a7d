package services

import (
	"context"
	"errors"
	"testing"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

type fakeScheduleReader struct {
	schedule *models.SessionSchedule
	group    *models.SessionGroup
}

func (f *fakeScheduleReader) GetByID(_ context.Context, id int64) (*models.SessionSchedule, error) {
	if f.schedule == nil || f.schedule.ID != id {
		return nil, apperrors.ErrScheduleNotFound
	}
	return f.schedule, nil
}

func (f *fakeScheduleReader) GetSessionGroup(_ context.Context, scheduleID int64) (*models.SessionGroup, error) {
	if f.group == nil || f.group.SessionScheduleID != scheduleID {
		return nil, apperrors.ErrSessionGroupNotFound
	}
	return f.group, nil
}

type fakeRosterReader struct {
	roster []*models.Student
}

func (f *fakeRosterReader) GetBySessionGroup(_ context.Context, sessionGroupID int64) ([]*models.Student, error) {
	return f.roster, nil
}

type fakeSessionStore struct {
	nextID  int64
	session *models.Session
	records []models.AttendanceRecord
	history []*models.AttendanceDetail
}

func (f *fakeSessionStore) CreateWithAttendance(_ context.Context, session *models.Session, records []models.AttendanceRecord) (int64, error) {
	f.session = session
	f.records = records
	return f.nextID, nil
}

func (f *fakeSessionStore) GetHistoryByStudent(_ context.Context, studentID, courseID int64) ([]*models.AttendanceDetail, error) {
	return f.history, nil
}

func rosterStudent(id int64, name string) *models.Student {
	return &models.Student{StudentID: id, User: &models.User{ID: id, Name: name}}
}

func attendanceFixture() (*fakeScheduleReader, *fakeRosterReader, *fakeSessionStore, AttendanceService) {
	schedules := &fakeScheduleReader{
		schedule: &models.SessionSchedule{
			ID:              1,
			CourseID:        2,
			RoomID:          3,
			GuidanceGroupID: 4,
			StartTime:       "09:00:00",
			EndTime:         "10:30:00",
		},
		group: &models.SessionGroup{ID: 5, SessionScheduleID: 1, GroupID: 4},
	}
	roster := &fakeRosterReader{roster: []*models.Student{
		rosterStudent(101, "Aya Mostafa"),
		rosterStudent(102, "Omar Khaled"),
	}}
	store := &fakeSessionStore{nextID: 77}
	return schedules, roster, store, NewAttendanceService(schedules, roster, store)
}

func TestBuildSheetDefaultsToPresent(t *testing.T) {
	_, _, _, service := attendanceFixture()

	sheet, err := service.BuildSheet(context.Background(), 1)
	if err != nil {
		t.Fatalf("BuildSheet returned error: %v", err)
	}
	if sheet.SessionGroupID != 5 || sheet.GroupID != 4 {
		t.Errorf("resolved group = (%d, %d), want (5, 4)", sheet.SessionGroupID, sheet.GroupID)
	}
	if len(sheet.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(sheet.Entries))
	}
	for _, entry := range sheet.Entries {
		if entry.Status != int(models.AttendancePresent) {
			t.Errorf("student %d starts as status %d, want present", entry.StudentID, entry.Status)
		}
	}
	if sheet.Entries[0].StudentName != "Aya Mostafa" {
		t.Errorf("first entry name = %q", sheet.Entries[0].StudentName)
	}
}

func TestBuildSheetUnknownSchedule(t *testing.T) {
	_, _, _, service := attendanceFixture()

	if _, err := service.BuildSheet(context.Background(), 9); !errors.Is(err, apperrors.ErrScheduleNotFound) {
		t.Errorf("expected schedule not found, got %v", err)
	}
}

func validSubmission() *dto.CreateSessionRequest {
	return &dto.CreateSessionRequest{
		SessionScheduleID: 1,
		RoomID:            3,
		SessionGroupID:    5,
		Date:              "2026-03-02",
		StartTime:         "09:00",
		EndTime:           "10:30",
		Attendances: []dto.AttendanceItem{
			{StudentID: 101, Status: int(models.AttendanceAbsent)},
			{StudentID: 102, Status: int(models.AttendanceLate)},
		},
	}
}

func TestSubmitSessionRecordsAttendance(t *testing.T) {
	_, _, store, service := attendanceFixture()

	sessionID, err := service.SubmitSession(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("SubmitSession returned error: %v", err)
	}
	if sessionID != 77 {
		t.Errorf("sessionID = %d, want 77", sessionID)
	}
	if store.session == nil {
		t.Fatal("session was not persisted")
	}
	if store.session.StartTime != "09:00:00" || store.session.EndTime != "10:30:00" {
		t.Errorf("times = (%q, %q), want normalized HH:MM:SS",
			store.session.StartTime, store.session.EndTime)
	}
	if len(store.records) != 2 {
		t.Fatalf("records = %d, want 2", len(store.records))
	}
	byStudent := map[int64]models.AttendanceStatus{}
	for _, record := range store.records {
		byStudent[record.StudentID] = record.Status
	}
	if byStudent[101] != models.AttendanceAbsent || byStudent[102] != models.AttendanceLate {
		t.Errorf("statuses = %v, want 101 absent and 102 late", byStudent)
	}
}

func TestSubmitSessionRejectsBadSubmissions(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.CreateSessionRequest)
		wantErr error
	}{
		{
			"student outside the group",
			func(r *dto.CreateSessionRequest) {
				r.Attendances = append(r.Attendances, dto.AttendanceItem{StudentID: 999, Status: 1})
			},
			apperrors.ErrStudentNotInGroup,
		},
		{
			"student listed twice",
			func(r *dto.CreateSessionRequest) {
				r.Attendances = append(r.Attendances, dto.AttendanceItem{StudentID: 101, Status: 1})
			},
			apperrors.ErrValidationFailed,
		},
		{
			"unknown status code",
			func(r *dto.CreateSessionRequest) { r.Attendances[0].Status = 4 },
			apperrors.ErrValidationFailed,
		},
		{
			"group does not belong to schedule",
			func(r *dto.CreateSessionRequest) { r.SessionGroupID = 6 },
			apperrors.ErrValidationFailed,
		},
		{
			"empty attendance list",
			func(r *dto.CreateSessionRequest) { r.Attendances = nil },
			apperrors.ErrValidationFailed,
		},
		{
			"malformed date",
			func(r *dto.CreateSessionRequest) { r.Date = "03/02/2026" },
			apperrors.ErrValidationFailed,
		},
		{
			"end before start",
			func(r *dto.CreateSessionRequest) { r.StartTime = "11:00"; r.EndTime = "10:00" },
			apperrors.ErrValidationFailed,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, store, service := attendanceFixture()
			req := validSubmission()
			c.mutate(req)

			_, err := service.SubmitSession(context.Background(), req)
			if !errors.Is(err, c.wantErr) {
				t.Errorf("error = %v, want %v", err, c.wantErr)
			}
			if store.session != nil {
				t.Error("rejected submission must not reach the store")
			}
		})
	}
}
