package services

// Services defined in this package:
// - AuthService: email/password login, refresh tokens, logout
// - AcademicYearService, SemesterService: academic calendar catalog
// - CourseService, RoomService, GuidanceGroupService: teaching catalog
// - StudentService: student accounts, rosters and workbook import
// - InstructorService: instructor accounts and titles
// - ScheduleService: weekly slots, conflict checks and group notifications
// - AttendanceService: attendance sheets, session submission and history
// - NotificationService: per-user feed and group fan-out
// - RoleService: read-only role lookup
