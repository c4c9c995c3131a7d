package models

// Course represents a course taught at a specific level within a semester.
type Course struct {
	ID             int64  `json:"id" db:"id"`
	CourseCode     string `json:"courseCode" db:"course_code"`
	CourseName     string `json:"courseName" db:"course_name"`
	CreditHours    int    `json:"creditHours" db:"credit_hours"`
	CourseLevel    int    `json:"courseLevel" db:"course_level"` // 1-4
	AcademicYearID int64  `json:"academicYearId" db:"academic_year_id"`
	SemesterID     int64  `json:"semesterId" db:"semester_id"`

	// Relations (populated when needed)
	AcademicYear *AcademicYear `json:"academicYear,omitempty"`
	Semester     *Semester     `json:"semester,omitempty"`
}

// Room represents a physical teaching room.
type Room struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Capacity int    `json:"capacity" db:"capacity"`
	Location string `json:"location" db:"location"`
}

// GuidanceGroup is a cohort of students at one level that attends
// sessions together.
type GuidanceGroup struct {
	ID        int64  `json:"id" db:"id"`
	GroupName string `json:"groupName" db:"group_name"`
	Level     int    `json:"level" db:"level"` // 1-4
}
