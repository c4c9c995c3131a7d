package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/controllers"
	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/middleware"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	AcademicYear  *controllers.AcademicYearController
	Semester      *controllers.SemesterController
	Course        *controllers.CourseController
	Room          *controllers.RoomController
	GuidanceGroup *controllers.GuidanceGroupController
	Student       *controllers.StudentController
	Instructor    *controllers.InstructorController
	Schedule      *controllers.ScheduleController
	Session       *controllers.SessionController
	Notification  *controllers.NotificationController
	Role          *controllers.RoleController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login-with-email", c.Auth.LoginWithEmail)
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", c.Auth.Logout)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	staffOnly := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty)

	// Academic year routes - reads for everyone, mutations for admins
	years := authenticated.Group("/academic-years")
	{
		years.GET("", c.AcademicYear.GetAll)
		years.GET("/:id", c.AcademicYear.GetByID)

		yearsAdmin := years.Group("", adminOnly)
		{
			yearsAdmin.POST("", c.AcademicYear.Create)
			yearsAdmin.PUT("/:id", c.AcademicYear.Update)
			yearsAdmin.DELETE("/:id", c.AcademicYear.Delete)
		}
	}

	// Semester routes
	semesters := authenticated.Group("/semesters")
	{
		semesters.GET("", c.Semester.GetAll)
		semesters.GET("/:id", c.Semester.GetByID)

		semestersAdmin := semesters.Group("", adminOnly)
		{
			semestersAdmin.POST("", c.Semester.Create)
			semestersAdmin.PUT("/:id", c.Semester.Update)
			semestersAdmin.DELETE("/:id", c.Semester.Delete)
		}
	}

	// Course routes
	courses := authenticated.Group("/courses")
	{
		courses.GET("", c.Course.GetAll)
		courses.GET("/level/:level", c.Course.GetByLevel)
		courses.GET("/:id", c.Course.GetByID)
		courses.GET("/:id/level", c.Course.GetLevel)

		coursesAdmin := courses.Group("", adminOnly)
		{
			coursesAdmin.POST("", c.Course.Create)
			coursesAdmin.PUT("/:id", c.Course.Update)
			coursesAdmin.DELETE("/:id", c.Course.Delete)
		}
	}

	// Room routes
	rooms := authenticated.Group("/rooms")
	{
		rooms.GET("", c.Room.GetAll)
		rooms.GET("/:id", c.Room.GetByID)

		roomsAdmin := rooms.Group("", adminOnly)
		{
			roomsAdmin.POST("", c.Room.Create)
			roomsAdmin.PUT("/:id", c.Room.Update)
			roomsAdmin.DELETE("/:id", c.Room.Delete)
		}
	}

	// Guidance group routes
	groups := authenticated.Group("/guidance-groups")
	{
		groups.GET("", c.GuidanceGroup.GetAll)
		groups.GET("/level/:level", c.GuidanceGroup.GetByLevel)
		groups.GET("/:id", c.GuidanceGroup.GetByID)
		groups.GET("/:id/students", c.Student.GetByGroup)

		groupsAdmin := groups.Group("", adminOnly)
		{
			groupsAdmin.POST("", c.GuidanceGroup.Create)
			groupsAdmin.PUT("/:id", c.GuidanceGroup.Update)
			groupsAdmin.DELETE("/:id", c.GuidanceGroup.Delete)
		}
	}

	// Student routes - staff manage accounts, any authenticated user can read
	students := authenticated.Group("/students")
	{
		students.GET("", c.Student.GetAll)
		students.GET("/session-group/:sessionGroupId", c.Student.GetBySessionGroup)
		students.GET("/:id", c.Student.GetByID)

		studentsAdmin := students.Group("", adminOnly)
		{
			studentsAdmin.POST("", c.Student.Create)
			studentsAdmin.POST("/upload", c.Student.Upload)
			studentsAdmin.PUT("/:id", c.Student.Update)
			studentsAdmin.DELETE("/:id", c.Student.Delete)
		}
	}

	// Instructor routes
	instructors := authenticated.Group("/instructors")
	{
		instructors.GET("", c.Instructor.GetAll)
		instructors.GET("/:id", c.Instructor.GetByID)

		instructorsAdmin := instructors.Group("", adminOnly)
		{
			instructorsAdmin.POST("", c.Instructor.Create)
			instructorsAdmin.PUT("/:id", c.Instructor.Update)
			instructorsAdmin.DELETE("/:id", c.Instructor.Delete)
		}
	}

	// Session schedule routes
	schedules := authenticated.Group("/session-schedules")
	{
		schedules.GET("", c.Schedule.List)
		schedules.GET("/:id", c.Schedule.GetByID)
		schedules.GET("/:id/session-group", c.Schedule.GetSessionGroup)
		schedules.GET("/:id/attendance-sheet", staffOnly, c.Schedule.GetAttendanceSheet)

		schedulesAdmin := schedules.Group("", adminOnly)
		{
			schedulesAdmin.POST("", c.Schedule.Create)
			schedulesAdmin.PUT("/:id", c.Schedule.Update)
			schedulesAdmin.DELETE("/:id", c.Schedule.Delete)
		}
	}

	// Session submission - staff record attendance
	sessions := authenticated.Group("/sessions")
	{
		sessions.POST("", staffOnly, c.Session.Create)
	}

	// Attendance history reads
	attendance := authenticated.Group("/attendance")
	{
		attendance.GET("/students/:id", c.Session.GetStudentHistory)
		attendance.GET("/students/:id/courses/:courseId", c.Session.GetStudentCourseHistory)
	}

	// Notification feed
	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("/user/:id", c.Notification.ListByUser)
		notifications.PUT("/:id/seen", c.Notification.MarkSeen)
	}

	// Role catalog
	roles := authenticated.Group("/roles")
	{
		roles.GET("", c.Role.GetAll)
		roles.GET("/:id", c.Role.GetByID)
	}

	// Swagger routes are set up in bootstrap.go already
}
