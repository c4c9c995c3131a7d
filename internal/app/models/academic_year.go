package models

import (
	"fmt"
	"time"
)

// AcademicYear represents one academic year delimited by its start and end dates.
type AcademicYear struct {
	ID        int64     `json:"id" db:"id"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
}

// Label derives the display label from the start and end years,
// e.g. "2024 - 2025".
func (y AcademicYear) Label() string {
	return fmt.Sprintf("%d - %d", y.StartDate.Year(), y.EndDate.Year())
}

// Semester represents one semester within an academic year.
type Semester struct {
	ID             int64     `json:"id" db:"id"`
	SemesterNumber int       `json:"semesterNumber" db:"semester_number"` // 1, 2 or 3 (summer)
	StartDate      time.Time `json:"startDate" db:"start_date"`
	EndDate        time.Time `json:"endDate" db:"end_date"`
	AcademicYearID int64     `json:"academicYearId" db:"academic_year_id"`

	// Relation (populated when needed)
	AcademicYear *AcademicYear `json:"academicYear,omitempty"`
}
