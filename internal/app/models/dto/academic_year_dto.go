package dto

import (
	"github.com/bisplatform/bisbackend/internal/app/models"
)

// AcademicYearRequest represents academic year creation/update data.
// Dates use the "2006-01-02" wire format.
type AcademicYearRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// AcademicYearResponse represents one academic year with its derived label.
type AcademicYearResponse struct {
	ID        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Label     string `json:"label"`
}

// FromAcademicYear converts a model to its response representation.
func FromAcademicYear(year *models.AcademicYear) AcademicYearResponse {
	if year == nil {
		return AcademicYearResponse{}
	}
	return AcademicYearResponse{
		ID:        year.ID,
		StartDate: year.StartDate.Format(DateLayout),
		EndDate:   year.EndDate.Format(DateLayout),
		Label:     year.Label(),
	}
}

// FromAcademicYears converts a model slice to response representations.
func FromAcademicYears(years []*models.AcademicYear) []AcademicYearResponse {
	out := make([]AcademicYearResponse, 0, len(years))
	for _, y := range years {
		out = append(out, FromAcademicYear(y))
	}
	return out
}

// SemesterRequest represents semester creation/update data.
type SemesterRequest struct {
	SemesterNumber int    `json:"semesterNumber" binding:"required,min=1,max=3"`
	StartDate      string `json:"startDate" binding:"required"`
	EndDate        string `json:"endDate" binding:"required"`
	AcademicYearID int64  `json:"academicYearId" binding:"required,min=1"`
}

// SemesterResponse represents one semester joined with its year label.
type SemesterResponse struct {
	ID                int64  `json:"id"`
	SemesterNumber    int    `json:"semesterNumber"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	AcademicYearID    int64  `json:"academicYearId"`
	AcademicYearLabel string `json:"academicYearLabel,omitempty"`
}

// FromSemester converts a model to its response representation.
func FromSemester(semester *models.Semester) SemesterResponse {
	if semester == nil {
		return SemesterResponse{}
	}
	resp := SemesterResponse{
		ID:             semester.ID,
		SemesterNumber: semester.SemesterNumber,
		StartDate:      semester.StartDate.Format(DateLayout),
		EndDate:        semester.EndDate.Format(DateLayout),
		AcademicYearID: semester.AcademicYearID,
	}
	if semester.AcademicYear != nil {
		resp.AcademicYearLabel = semester.AcademicYear.Label()
	}
	return resp
}

// FromSemesters converts a model slice to response representations.
func FromSemesters(semesters []*models.Semester) []SemesterResponse {
	out := make([]SemesterResponse, 0, len(semesters))
	for _, s := range semesters {
		out = append(out, FromSemester(s))
	}
	return out
}
