package services

import (
	"errors"
	"testing"

	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
)

func validStudentRow() []string {
	return []string{
		"Sara Ahmed", "sara@university.edu", "Password1!", "01012345678",
		"29801011234567", "3.4", "2024-09-15", "2", "7",
	}
}

func TestParseStudentRow(t *testing.T) {
	req, err := ParseStudentRow(validStudentRow())
	if err != nil {
		t.Fatalf("ParseStudentRow returned error: %v", err)
	}
	if req.User.Name != "Sara Ahmed" {
		t.Errorf("Name = %q", req.User.Name)
	}
	if req.GPA != 3.4 {
		t.Errorf("GPA = %v, want 3.4", req.GPA)
	}
	if req.StudentLevel != 2 {
		t.Errorf("StudentLevel = %d, want 2", req.StudentLevel)
	}
	if req.GuidanceGroupID != 7 {
		t.Errorf("GuidanceGroupID = %d, want 7", req.GuidanceGroupID)
	}
	if req.EnrollmentDate != "2024-09-15" {
		t.Errorf("EnrollmentDate = %q", req.EnrollmentDate)
	}
}

func TestParseStudentRowTrimsCells(t *testing.T) {
	row := validStudentRow()
	row[0] = "  Sara Ahmed  "
	row[1] = " sara@university.edu "

	req, err := ParseStudentRow(row)
	if err != nil {
		t.Fatalf("ParseStudentRow returned error: %v", err)
	}
	if req.User.Name != "Sara Ahmed" {
		t.Errorf("Name = %q, want trimmed value", req.User.Name)
	}
}

func TestParseStudentRowRejectsBadRows(t *testing.T) {
	cases := []struct {
		name   string
		mutate func([]string) []string
	}{
		{"too few columns", func(r []string) []string { return r[:5] }},
		{"gpa not a number", func(r []string) []string { r[5] = "high"; return r }},
		{"gpa out of range", func(r []string) []string { r[5] = "4.5"; return r }},
		{"level not a number", func(r []string) []string { r[7] = "two"; return r }},
		{"level out of range", func(r []string) []string { r[7] = "6"; return r }},
		{"group id not a number", func(r []string) []string { r[8] = "x"; return r }},
		{"bad email", func(r []string) []string { r[1] = "not-an-email"; return r }},
		{"short password", func(r []string) []string { r[2] = "short"; return r }},
		{"bad phone", func(r []string) []string { r[3] = "123"; return r }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			row := c.mutate(validStudentRow())
			if _, err := ParseStudentRow(row); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation failure, got %v", err)
			}
		})
	}
}
