package app

import (
	"database/sql"

	"github.com/Slawuu/Company-manager/internal/authz"
	"github.com/Slawuu/Company-manager/internal/department"
	"github.com/Slawuu/Company-manager/internal/employee"
	"github.com/Slawuu/Company-manager/internal/identity"
	"github.com/Slawuu/Company-manager/internal/leave"
	"github.com/Slawuu/Company-manager/internal/messaging/kafka"
	"github.com/Slawuu/Company-manager/internal/middleware"
	"github.com/Slawuu/Company-manager/internal/profile"
	"github.com/Slawuu/Company-manager/internal/project"
	"github.com/Slawuu/Company-manager/internal/report"
	"github.com/Slawuu/Company-manager/internal/visibility"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Policy & Visibility ---
	authzService, err := authz.NewService()
	if err != nil {
		return err
	}
	directory := visibility.NewDirectory(gormDB)
	resolver := visibility.NewResolver(directory)

	// --- Repositories ---
	identityRepo := identity.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	identityService := identity.NewService(identityRepo)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, resolver, identityService, outboxRepo, rdb)
	projectService := project.NewService(db, projectRepo)
	leaveService := leave.NewService(db, leaveRepo, resolver, directory, outboxRepo)
	reportService := report.NewService(reportRepo, resolver)
	profileService := profile.NewService(db, profileRepo, identityService)

	// --- Handlers ---
	identityHandler := identity.NewHandler(identityService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	projectHandler := project.NewHandler(projectService)
	leaveHandler := leave.NewHandler(leaveService)
	reportHandler := report.NewHandler(reportService)
	profileHandler := profile.NewHandler(profileService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.Idempotency(rdb))
	{
		identity.RegisterRoutes(api, identityHandler)
		department.RegisterRoutes(api, departmentHandler, authzService)
		employee.RegisterRoutes(api, employeeHandler, authzService)
		project.RegisterRoutes(api, projectHandler, authzService)
		leave.RegisterRoutes(api, leaveHandler, authzService)
		report.RegisterRoutes(api, reportHandler, authzService)
		profile.RegisterRoutes(api, profileHandler, authzService)
	}

	return nil
}
