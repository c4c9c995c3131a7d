package models

import "time"

// Student defines the student model based on the 'students' table. The
// student id doubles as the id of the associated user account.
type Student struct {
	StudentID       int64     `json:"studentID" db:"student_id"`
	GPA             float64   `json:"gpa" db:"gpa"`
	EnrollmentDate  time.Time `json:"enrollmentDate" db:"enrollment_date"`
	StudentLevel    int       `json:"studentLevel" db:"student_level"` // 1-4
	GuidanceGroupID int64     `json:"guidanceGroupID" db:"guidance_group_id"`

	// Relations (populated when needed)
	User          *User          `json:"user,omitempty"`
	GuidanceGroup *GuidanceGroup `json:"guidanceGroup,omitempty"`
}

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID     int64           `json:"id" db:"id"`
	UserID int64           `json:"userId" db:"user_id"`
	Title  InstructorTitle `json:"title" db:"title"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}
