package models

// RoleName defines the closed set of user roles.
type RoleName string

const (
	RoleAdmin   RoleName = "Admin"
	RoleFaculty RoleName = "Faculty"
	RoleStudent RoleName = "Student"
)

// SessionType distinguishes lectures from sections.
type SessionType int

const (
	SessionTypeLecture SessionType = 0
	SessionTypeSection SessionType = 1
)

// Name returns the display name of the session type.
func (t SessionType) Name() string {
	switch t {
	case SessionTypeLecture:
		return "Lecture"
	case SessionTypeSection:
		return "Section"
	default:
		return "Unknown"
	}
}

// Valid reports whether the value is a known session type.
func (t SessionType) Valid() bool {
	return t == SessionTypeLecture || t == SessionTypeSection
}

// WeekDay is the scheduling weekday. The academic week starts on Saturday.
type WeekDay int

const (
	Saturday  WeekDay = 0
	Sunday    WeekDay = 1
	Monday    WeekDay = 2
	Tuesday   WeekDay = 3
	Wednesday WeekDay = 4
	Thursday  WeekDay = 5
	Friday    WeekDay = 6
)

var weekDayNames = [...]string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Name returns the display name of the weekday.
func (d WeekDay) Name() string {
	if d < Saturday || d > Friday {
		return "Unknown"
	}
	return weekDayNames[d]
}

// Valid reports whether the value is a known weekday.
func (d WeekDay) Valid() bool {
	return d >= Saturday && d <= Friday
}

// AttendanceStatus is the per-student attendance outcome of a held session.
type AttendanceStatus int

const (
	AttendancePresent AttendanceStatus = 1
	AttendanceLate    AttendanceStatus = 2
	AttendanceAbsent  AttendanceStatus = 3
)

// Name returns the display name of the attendance status.
func (s AttendanceStatus) Name() string {
	switch s {
	case AttendancePresent:
		return "Present"
	case AttendanceLate:
		return "Late"
	case AttendanceAbsent:
		return "Absent"
	default:
		return "Unknown"
	}
}

// Valid reports whether the value is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	return s >= AttendancePresent && s <= AttendanceAbsent
}

// Level constants for courses, students and guidance groups (years 1-4).
const (
	MinLevel = 1
	MaxLevel = 4
)

// LevelName returns the display name for an academic level.
func LevelName(level int) string {
	switch level {
	case 1:
		return "Level 1"
	case 2:
		return "Level 2"
	case 3:
		return "Level 3"
	case 4:
		return "Level 4"
	default:
		return "Unknown"
	}
}

// ValidLevel reports whether the level is within the 1-4 range.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// InstructorTitle is the fixed instructor title lookup.
type InstructorTitle int

const (
	TitleDoctor            InstructorTitle = 1
	TitleTeachingAssistant InstructorTitle = 2
)

// Name returns the display name of the instructor title.
func (t InstructorTitle) Name() string {
	switch t {
	case TitleDoctor:
		return "Doctor"
	case TitleTeachingAssistant:
		return "Teaching Assistant"
	default:
		return "Unknown"
	}
}

// Valid reports whether the value is a known instructor title.
func (t InstructorTitle) Valid() bool {
	return t == TitleDoctor || t == TitleTeachingAssistant
}

// NotificationType categorizes notification feed entries.
type NotificationType int

const (
	NotificationGeneral         NotificationType = 0
	NotificationScheduleCreated NotificationType = 1
	NotificationScheduleUpdated NotificationType = 2
)

// Name returns the display name of the notification type.
func (t NotificationType) Name() string {
	switch t {
	case NotificationGeneral:
		return "General"
	case NotificationScheduleCreated:
		return "Schedule Created"
	case NotificationScheduleUpdated:
		return "Schedule Updated"
	default:
		return "Unknown"
	}
}
