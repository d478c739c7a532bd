package app

import (
	"go-employee-directory/internal/config"
	"go-employee-directory/internal/department"
	"go-employee-directory/internal/employee"
	"go-employee-directory/internal/job"
	"go-employee-directory/internal/middleware"
	"go-employee-directory/internal/office"
	"go-employee-directory/internal/shared/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	if err := metrics.Register(prometheus.DefaultRegisterer, sqlDB); err != nil {
		return err
	}

	router.Use(
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)

	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	officeRepo := office.NewRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, logger)
	employeeService := employee.NewService(employeeRepo, employee.Lookups{
		Departments: departmentRepo,
		Jobs:        jobRepo,
		Offices:     officeRepo,
	}, rdb, cfg.PageSize, logger)
	jobService := job.NewService(jobRepo, logger)
	officeService := office.NewService(officeRepo, logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	jobHandler := job.NewHandler(jobService)
	officeHandler := office.NewHandler(officeService)

	// --- Routes Registration ---
	router.GET("/healthz", healthHandler(sqlDB, rdb))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler, logger)
		job.RegisterRoutes(api, jobHandler)
		office.RegisterRoutes(api, officeHandler)
	}

	return nil
}
