package dto

import (
	"github.com/bisplatform/bisbackend/internal/app/models"
)

// CourseRequest represents course creation/update data.
type CourseRequest struct {
	CourseCode     string `json:"courseCode" binding:"required"`
	CourseName     string `json:"courseName" binding:"required"`
	CreditHours    int    `json:"creditHours" binding:"required,min=1,max=10"`
	CourseLevel    int    `json:"courseLevel" binding:"required,min=1,max=4"`
	AcademicYearID int64  `json:"academicYearId" binding:"required,min=1"`
	SemesterID     int64  `json:"semesterId" binding:"required,min=1"`
}

// CourseResponse represents one course with its joined display labels.
type CourseResponse struct {
	ID             int64  `json:"id"`
	CourseCode     string `json:"courseCode"`
	CourseName     string `json:"courseName"`
	CreditHours    int    `json:"creditHours"`
	CourseLevel    int    `json:"courseLevel"`
	LevelName      string `json:"levelName"`
	AcademicYearID int64  `json:"academicYearId"`
	YearLabel      string `json:"yearLabel,omitempty"`
	SemesterID     int64  `json:"semesterId"`
	SemesterLabel  string `json:"semesterLabel,omitempty"`
}

// FromCourse converts a model to its response representation.
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}
	resp := CourseResponse{
		ID:             course.ID,
		CourseCode:     course.CourseCode,
		CourseName:     course.CourseName,
		CreditHours:    course.CreditHours,
		CourseLevel:    course.CourseLevel,
		LevelName:      models.LevelName(course.CourseLevel),
		AcademicYearID: course.AcademicYearID,
		SemesterID:     course.SemesterID,
	}
	if course.AcademicYear != nil {
		resp.YearLabel = course.AcademicYear.Label()
	}
	if course.Semester != nil {
		resp.SemesterLabel = semesterLabel(course.Semester.SemesterNumber)
	}
	return resp
}

// FromCourses converts a model slice to response representations.
func FromCourses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}

func semesterLabel(number int) string {
	switch number {
	case 1:
		return "First Semester"
	case 2:
		return "Second Semester"
	case 3:
		return "Summer Semester"
	default:
		return "Unknown"
	}
}

// RoomRequest represents room creation/update data.
type RoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Location string `json:"location" binding:"required"`
}

// GuidanceGroupRequest represents guidance group creation/update data.
type GuidanceGroupRequest struct {
	GroupName string `json:"groupName" binding:"required"`
	Level     int    `json:"level" binding:"required,min=1,max=4"`
}
