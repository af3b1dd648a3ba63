package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/workroster/workroster-api/api/swagger"
	"github.com/workroster/workroster-api/internal/handler"
	"github.com/workroster/workroster-api/internal/middleware"
	"github.com/workroster/workroster-api/internal/models"
	"github.com/workroster/workroster-api/internal/repository"
	"github.com/workroster/workroster-api/internal/service"
	"github.com/workroster/workroster-api/pkg/cache"
	"github.com/workroster/workroster-api/pkg/config"
	"github.com/workroster/workroster-api/pkg/database"
	"github.com/workroster/workroster-api/pkg/logger"
	corsmiddleware "github.com/workroster/workroster-api/pkg/middleware/cors"
	reqidmiddleware "github.com/workroster/workroster-api/pkg/middleware/requestid"
)

// @title Workroster API
// @version 1.0.0
// @description Weekly work schedule management: rosters, change requests, bulk import/export
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	// Redis is an accelerator, not a dependency. The API serves from
	// postgres when the cache is unreachable.
	var cacheRepo *repository.CacheRepository
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
	} else {
		defer redisClient.Close()
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	configRepo := repository.NewConfigurationRepository(db)

	authSvc := service.NewAuthService(userRepo, auditRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:      cfg.JWT.Secret,
		AccessTokenExpiry:      cfg.JWT.Expiration,
		Issuer:                 cfg.JWT.Issuer,
		BootstrapAdminUsername: cfg.Bootstrap.AdminUsername,
		BootstrapAdminEmail:    cfg.Bootstrap.AdminEmail,
		BootstrapAdminPassword: cfg.Bootstrap.AdminPassword,
	})
	userSvc := service.NewUserService(userRepo, validate, logr)
	configSvc := service.NewConfigurationService(configRepo, validate, logr)
	requestSvc := service.NewRequestService(requestRepo, auditRepo, validate, logr)
	metricsSvc := service.NewMetricsService()

	var scheduleSvc *service.ScheduleService
	var rosterSvc *service.RosterService
	if cacheRepo != nil {
		scheduleSvc = service.NewScheduleService(scheduleRepo, userRepo, cacheRepo, auditRepo, cfg.Schedules.CacheTTL, logr)
		rosterSvc = service.NewRosterService(scheduleRepo, userRepo, cacheRepo, auditRepo, nil, nil, cfg.Schedules.ImportMaxRows, logr)
	} else {
		scheduleSvc = service.NewScheduleService(scheduleRepo, userRepo, nil, auditRepo, cfg.Schedules.CacheTTL, logr)
		rosterSvc = service.NewRosterService(scheduleRepo, userRepo, nil, auditRepo, nil, nil, cfg.Schedules.ImportMaxRows, logr)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	requestHandler := handler.NewRequestHandler(requestSvc)
	rosterHandler := handler.NewRosterHandler(rosterSvc)
	configHandler := handler.NewConfigurationHandler(configSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := string(models.RoleAdmin)
	coordinator := string(models.RoleCoordinator)
	employee := string(models.RoleEmployee)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/login", authHandler.Login)
		api.POST("/init-admin", authHandler.InitAdmin)
		api.GET("/configuration", configHandler.Get)

		authed := api.Group("")
		authed.Use(middleware.JWT(authSvc))
		{
			authed.GET("/me", authHandler.Me)
			authed.GET("/services", userHandler.ListServices)
			authed.GET("/my-schedule", scheduleHandler.GetMine)
			authed.GET("/my-schedule/export", rosterHandler.ExportOwn)
			authed.GET("/schedules", scheduleHandler.List)
			authed.GET("/schedule-requests", requestHandler.List)

			authed.POST("/schedule-requests", middleware.RBAC(employee), requestHandler.Create)

			authed.GET("/schedules/:userId", middleware.RBAC(admin, coordinator, middleware.SelfParam), scheduleHandler.Get)

			reviewers := authed.Group("")
			reviewers.Use(middleware.RBAC(admin, coordinator))
			{
				reviewers.GET("/users", userHandler.List)
				reviewers.GET("/employees", userHandler.ListEmployees)
				reviewers.PUT("/schedules/:userId/days/:day", scheduleHandler.UpsertDay)
				reviewers.PUT("/schedules/:userId", scheduleHandler.UpsertWeek)
				reviewers.GET("/pending-requests", requestHandler.ListPending)
				reviewers.PUT("/schedule-requests/:id/respond", requestHandler.Decide)
				reviewers.GET("/export-schedules", rosterHandler.ExportAll)
				reviewers.POST("/import-schedules", rosterHandler.Import)
				reviewers.GET("/download-template", rosterHandler.Template)
				reviewers.PUT("/configuration", configHandler.Update)
			}

			authed.POST("/users", middleware.RBAC(admin), userHandler.Create)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
