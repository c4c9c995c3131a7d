package models

import "testing"

func TestSessionType(t *testing.T) {
	if SessionTypeLecture.Name() != "Lecture" || SessionTypeSection.Name() != "Section" {
		t.Error("unexpected session type names")
	}
	if SessionType(5).Name() != "Unknown" {
		t.Error("out-of-range session type should be Unknown")
	}
	if !SessionTypeLecture.Valid() || !SessionTypeSection.Valid() || SessionType(2).Valid() {
		t.Error("session type validity check is wrong")
	}
}

func TestWeekDay(t *testing.T) {
	if Saturday.Name() != "Saturday" {
		t.Errorf("day 0 = %q, want Saturday", Saturday.Name())
	}
	if Friday.Name() != "Friday" {
		t.Errorf("day 6 = %q, want Friday", Friday.Name())
	}
	if WeekDay(7).Name() != "Unknown" || WeekDay(-1).Name() != "Unknown" {
		t.Error("out-of-range weekday should be Unknown")
	}
	if !Wednesday.Valid() || WeekDay(7).Valid() {
		t.Error("weekday validity check is wrong")
	}
}

func TestAttendanceStatus(t *testing.T) {
	cases := map[AttendanceStatus]string{
		AttendancePresent: "Present",
		AttendanceLate:    "Late",
		AttendanceAbsent:  "Absent",
	}
	for status, want := range cases {
		if status.Name() != want {
			t.Errorf("status %d = %q, want %q", status, status.Name(), want)
		}
		if !status.Valid() {
			t.Errorf("status %d should be valid", status)
		}
	}
	if AttendanceStatus(0).Valid() || AttendanceStatus(4).Valid() {
		t.Error("statuses outside 1-3 should be invalid")
	}
}

func TestLevels(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		if !ValidLevel(level) {
			t.Errorf("level %d should be valid", level)
		}
	}
	if ValidLevel(0) || ValidLevel(5) {
		t.Error("levels outside 1-4 should be invalid")
	}
	if LevelName(3) != "Level 3" {
		t.Errorf("LevelName(3) = %q", LevelName(3))
	}
	if LevelName(9) != "Unknown" {
		t.Errorf("LevelName(9) = %q", LevelName(9))
	}
}

func TestInstructorTitle(t *testing.T) {
	if TitleDoctor.Name() != "Doctor" || TitleTeachingAssistant.Name() != "Teaching Assistant" {
		t.Error("unexpected instructor title names")
	}
	if InstructorTitle(0).Valid() || InstructorTitle(3).Valid() {
		t.Error("titles outside 1-2 should be invalid")
	}
}

func TestNotificationType(t *testing.T) {
	if NotificationScheduleCreated.Name() != "Schedule Created" {
		t.Errorf("name = %q", NotificationScheduleCreated.Name())
	}
	if NotificationType(99).Name() != "Unknown" {
		t.Error("unknown notification type should be Unknown")
	}
}
