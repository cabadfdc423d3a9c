package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/f24tech/edumate/docs" // generated swagger docs
	appControllers "github.com/f24tech/edumate/internal/app/controllers"
	appMigrations "github.com/f24tech/edumate/internal/app/migrations"
	appRepos "github.com/f24tech/edumate/internal/app/repositories"
	appRoutes "github.com/f24tech/edumate/internal/app/routes"
	appServices "github.com/f24tech/edumate/internal/app/services"
	"github.com/f24tech/edumate/internal/config"
	"github.com/f24tech/edumate/internal/db"
	appMiddleware "github.com/f24tech/edumate/internal/middleware"
	pkgAuth "github.com/f24tech/edumate/internal/pkg/auth"
	"github.com/f24tech/edumate/internal/pkg/logger"
	"github.com/f24tech/edumate/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	ClassService         appServices.ClassService
	StudentService       appServices.StudentService
	AssignmentService    appServices.AssignmentService
	NoteService          appServices.NoteService
	FeeService           appServices.FeeService
	AttendanceService    appServices.AttendanceService
	AuthController       *appControllers.AuthController
	ClassController      *appControllers.ClassController
	StudentController    *appControllers.StudentController
	AssignmentController *appControllers.AssignmentController
	NoteController       *appControllers.NoteController
	FeeController        *appControllers.FeeController
	AttendanceController *appControllers.AttendanceController
	Repos                *appRepos.Repositories
	Credential           *pkgAuth.Credential
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, ensures the schema
// exists, and seeds the default teacher credential.
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

	lgr.Info().Msg("Ensuring records schema...")
	migrator := appMigrations.NewMigrator(database)
	if err := migrator.EnsureSchema(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Schema initialization error")
		dbPool.Close()
		return nil, err
	}

	if err := seed.EnsureDefaultTeacher(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default teacher, proceeding anyway...")
	}

	if count, err := appRepos.NewTeacherRepository(dbPool).Count(context.Background()); err == nil {
		lgr.Info().Int64("teachers", count).Msg("Teacher credentials available")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Credential = pkgAuth.NewCredential()

	deps.AuthService = appServices.NewAuthService(deps.Repos.TeacherRepository, deps.Credential)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.AssignmentService = appServices.NewAssignmentService(deps.Repos.AssignmentRepository)
	deps.NoteService = appServices.NewNoteService(deps.Repos.NoteRepository)
	deps.FeeService = appServices.NewFeeService(deps.Repos.FeeRepository)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService)
	deps.NoteController = appControllers.NewNoteController(deps.NoteService)
	deps.FeeController = appControllers.NewFeeController(deps.FeeService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ClassController,
		deps.StudentController,
		deps.AssignmentController,
		deps.NoteController,
		deps.FeeController,
		deps.AttendanceController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
