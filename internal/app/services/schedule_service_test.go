package services

import (
	"errors"
	"testing"

	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

func TestNormalizeFilterPrecedence(t *testing.T) {
	cases := []struct {
		name string
		in   dto.ScheduleFilter
		want dto.ScheduleFilter
	}{
		{
			"group wins over year",
			dto.ScheduleFilter{GuidanceGroupID: 3, AcademicYearID: 1},
			dto.ScheduleFilter{GuidanceGroupID: 3},
		},
		{
			"group keeps semester to narrow it",
			dto.ScheduleFilter{GuidanceGroupID: 3, SemesterID: 2, AcademicYearID: 1},
			dto.ScheduleFilter{GuidanceGroupID: 3, SemesterID: 2},
		},
		{
			"semester wins over year",
			dto.ScheduleFilter{SemesterID: 2, AcademicYearID: 1},
			dto.ScheduleFilter{SemesterID: 2},
		},
		{
			"year alone",
			dto.ScheduleFilter{AcademicYearID: 1},
			dto.ScheduleFilter{AcademicYearID: 1},
		},
		{
			"nothing set means fetch everything",
			dto.ScheduleFilter{},
			dto.ScheduleFilter{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NormalizeFilter(c.in); got != c.want {
				t.Errorf("NormalizeFilter(%+v) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}

func validScheduleRequest() *dto.ScheduleRequest {
	return &dto.ScheduleRequest{
		CourseID:        1,
		SessionType:     0,
		RoomID:          2,
		GuidanceGroupID: 3,
		Day:             1,
		StartTime:       "09:00",
		EndTime:         "10:30:00",
		AcademicYearID:  4,
		SemesterID:      5,
	}
}

func TestBuildScheduleNormalizesTimes(t *testing.T) {
	schedule, err := buildSchedule(validScheduleRequest())
	if err != nil {
		t.Fatalf("buildSchedule returned error: %v", err)
	}
	if schedule.StartTime != "09:00:00" {
		t.Errorf("StartTime = %q, want 09:00:00", schedule.StartTime)
	}
	if schedule.EndTime != "10:30:00" {
		t.Errorf("EndTime = %q, want 10:30:00", schedule.EndTime)
	}
}

func TestBuildScheduleRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.ScheduleRequest)
	}{
		{"unknown session type", func(r *dto.ScheduleRequest) { r.SessionType = 9 }},
		{"day out of range", func(r *dto.ScheduleRequest) { r.Day = 7 }},
		{"malformed start time", func(r *dto.ScheduleRequest) { r.StartTime = "nine" }},
		{"end before start", func(r *dto.ScheduleRequest) { r.StartTime = "11:00"; r.EndTime = "10:00" }},
		{"zero-length slot", func(r *dto.ScheduleRequest) { r.StartTime = "10:00"; r.EndTime = "10:00" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validScheduleRequest()
			c.mutate(req)
			if _, err := buildSchedule(req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation failure, got %v", err)
			}
		})
	}
}
