package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/bisplatform/bisbackend/docs" // Import generated swagger docs
	appControllers "github.com/bisplatform/bisbackend/internal/app/controllers"
	appMigrations "github.com/bisplatform/bisbackend/internal/app/migrations"
	appRepos "github.com/bisplatform/bisbackend/internal/app/repositories"
	appRoutes "github.com/bisplatform/bisbackend/internal/app/routes"
	appServices "github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/config"
	"github.com/bisplatform/bisbackend/internal/db"
	appMiddleware "github.com/bisplatform/bisbackend/internal/middleware"
	pkgAuth "github.com/bisplatform/bisbackend/internal/pkg/auth"
	"github.com/bisplatform/bisbackend/internal/pkg/helpers"
	"github.com/bisplatform/bisbackend/internal/pkg/logger"
	"github.com/bisplatform/bisbackend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	AcademicYearService  appServices.AcademicYearService
	SemesterService      appServices.SemesterService
	CourseService        appServices.CourseService
	RoomService          appServices.RoomService
	GuidanceGroupService appServices.GuidanceGroupService
	StudentService       appServices.StudentService
	InstructorService    appServices.InstructorService
	ScheduleService      appServices.ScheduleService
	AttendanceService    appServices.AttendanceService
	NotificationService  appServices.NotificationService
	RoleService          appServices.RoleService

	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)

	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository)
	deps.AcademicYearService = appServices.NewAcademicYearService(deps.Repos.AcademicYearRepository)
	deps.SemesterService = appServices.NewSemesterService(deps.Repos.SemesterRepository, deps.Repos.AcademicYearRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)
	deps.GuidanceGroupService = appServices.NewGuidanceGroupService(deps.Repos.GuidanceGroupRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.RoleRepository)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.InstructorRepository, deps.Repos.RoleRepository)
	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.ScheduleRepository, deps.NotificationService)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.ScheduleRepository,
		deps.Repos.StudentRepository,
		deps.Repos.SessionRepository,
	)
	deps.RoleService = appServices.NewRoleService(deps.Repos.RoleRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:          appControllers.NewAuthController(deps.AuthService),
		AcademicYear:  appControllers.NewAcademicYearController(deps.AcademicYearService),
		Semester:      appControllers.NewSemesterController(deps.SemesterService),
		Course:        appControllers.NewCourseController(deps.CourseService),
		Room:          appControllers.NewRoomController(deps.RoomService),
		GuidanceGroup: appControllers.NewGuidanceGroupController(deps.GuidanceGroupService),
		Student:       appControllers.NewStudentController(deps.StudentService),
		Instructor:    appControllers.NewInstructorController(deps.InstructorService),
		Schedule:      appControllers.NewScheduleController(deps.ScheduleService, deps.AttendanceService),
		Session:       appControllers.NewSessionController(deps.AttendanceService),
		Notification:  appControllers.NewNotificationController(deps.NotificationService),
		Role:          appControllers.NewRoleController(deps.RoleService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
