package dto

import (
	"github.com/bisplatform/bisbackend/internal/app/models"
)

// UserPayload is the embedded account data for students and instructors.
type UserPayload struct {
	ID              int64  `json:"id,omitempty"`
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	Phone           string `json:"phone" binding:"required"`
	NationalNo      string `json:"nationalNo" binding:"required"`
	ProfileImage    string `json:"profileImage,omitempty"`
}

// StudentRequest represents student creation/update data.
type StudentRequest struct {
	GPA             float64     `json:"gpa" binding:"min=0,max=4"`
	EnrollmentDate  string      `json:"enrollmentDate,omitempty"`
	StudentLevel    int         `json:"studentLevel" binding:"required,min=1,max=4"`
	GuidanceGroupID int64       `json:"guidanceGroupID" binding:"required,min=1"`
	User            UserPayload `json:"user" binding:"required"`
}

// StudentUserResponse is the account part of a student response.
type StudentUserResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	NationalNo   string `json:"nationalNo"`
	ProfileImage string `json:"profileImage,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// StudentResponse represents one student with the embedded account.
type StudentResponse struct {
	StudentID       int64               `json:"studentID"`
	GPA             float64             `json:"gpa"`
	EnrollmentDate  string              `json:"enrollmentDate"`
	StudentLevel    int                 `json:"studentLevel"`
	GuidanceGroupID int64               `json:"guidanceGroupID"`
	User            StudentUserResponse `json:"user"`
}

// FromStudent converts a model to its response representation.
func FromStudent(student *models.Student) StudentResponse {
	if student == nil {
		return StudentResponse{}
	}
	resp := StudentResponse{
		StudentID:       student.StudentID,
		GPA:             student.GPA,
		EnrollmentDate:  student.EnrollmentDate.Format(DateLayout),
		StudentLevel:    student.StudentLevel,
		GuidanceGroupID: student.GuidanceGroupID,
	}
	if student.User != nil {
		resp.User = StudentUserResponse{
			ID:         student.User.ID,
			Name:       student.User.Name,
			Email:      student.User.Email,
			Phone:      student.User.Phone,
			NationalNo: student.User.NationalNo,
			CreatedAt:  student.User.CreatedAt.Format(DateLayout),
			UpdatedAt:  student.User.UpdatedAt.Format(DateLayout),
		}
		if student.User.ProfileImage != nil {
			resp.User.ProfileImage = *student.User.ProfileImage
		}
	}
	return resp
}

// FromStudents converts a model slice to response representations.
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}

// ImportRowError describes why one spreadsheet row was rejected.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportSummary reports the outcome of a bulk student upload.
type ImportSummary struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

// InstructorRequest represents instructor creation/update data.
type InstructorRequest struct {
	Title int         `json:"enInstructorTitle" binding:"required,min=1,max=2"`
	User  UserPayload `json:"userDto" binding:"required"`
}

// InstructorResponse represents one instructor with the embedded account.
type InstructorResponse struct {
	ID        int64               `json:"id"`
	Title     int                 `json:"enInstructorTitle"`
	TitleName string              `json:"instructorTitle"`
	User      StudentUserResponse `json:"userDto"`
}

// FromInstructor converts a model to its response representation.
func FromInstructor(instructor *models.Instructor) InstructorResponse {
	if instructor == nil {
		return InstructorResponse{}
	}
	resp := InstructorResponse{
		ID:        instructor.ID,
		Title:     int(instructor.Title),
		TitleName: instructor.Title.Name(),
	}
	if instructor.User != nil {
		resp.User = StudentUserResponse{
			ID:         instructor.User.ID,
			Name:       instructor.User.Name,
			Email:      instructor.User.Email,
			Phone:      instructor.User.Phone,
			NationalNo: instructor.User.NationalNo,
			CreatedAt:  instructor.User.CreatedAt.Format(DateLayout),
			UpdatedAt:  instructor.User.UpdatedAt.Format(DateLayout),
		}
		if instructor.User.ProfileImage != nil {
			resp.User.ProfileImage = *instructor.User.ProfileImage
		}
	}
	return resp
}

// FromInstructors converts a model slice to response representations.
func FromInstructors(instructors []*models.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(instructors))
	for _, i := range instructors {
		out = append(out, FromInstructor(i))
	}
	return out
}
