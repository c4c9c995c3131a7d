package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	RoleRepository          *RoleRepository
	UserRepository          *UserRepository
	TokenRepository         *TokenRepository
	AcademicYearRepository  *AcademicYearRepository
	SemesterRepository      *SemesterRepository
	CourseRepository        *CourseRepository
	RoomRepository          *RoomRepository
	GuidanceGroupRepository *GuidanceGroupRepository
	StudentRepository       *StudentRepository
	InstructorRepository    *InstructorRepository
	ScheduleRepository      *ScheduleRepository
	SessionRepository       *SessionRepository
	NotificationRepository  *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		RoleRepository:          NewRoleRepository(db),
		UserRepository:          NewUserRepository(db),
		TokenRepository:         NewTokenRepository(db),
		AcademicYearRepository:  NewAcademicYearRepository(db),
		SemesterRepository:      NewSemesterRepository(db),
		CourseRepository:        NewCourseRepository(db),
		RoomRepository:          NewRoomRepository(db),
		GuidanceGroupRepository: NewGuidanceGroupRepository(db),
		StudentRepository:       NewStudentRepository(db),
		InstructorRepository:    NewInstructorRepository(db),
		ScheduleRepository:      NewScheduleRepository(db),
		SessionRepository:       NewSessionRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
	}
}
