package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sales-tracker/internal/auth"
	"sales-tracker/internal/config"
	apphttp "sales-tracker/internal/http"
	"sales-tracker/internal/repository/sqlite"
	"sales-tracker/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	contactRepo := sqlite.NewContactRepository(db)
	dealRepo := sqlite.NewDealRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := customerRepo.Init(ctx); err != nil {
		logger.Fatalf("init customer repository: %v", err)
	}
	if err := contactRepo.Init(ctx); err != nil {
		logger.Fatalf("init contact repository: %v", err)
	}
	if err := dealRepo.Init(ctx); err != nil {
		logger.Fatalf("init deal repository: %v", err)
	}
	if err := activityRepo.Init(ctx); err != nil {
		logger.Fatalf("init activity repository: %v", err)
	}

	integrity := service.NewIntegrityChecker(customerRepo, dealRepo, cfg.Integrity.Enforce)
	userService := service.NewUserService(userRepo)
	customerService := service.NewCustomerService(customerRepo)
	contactService := service.NewContactService(contactRepo, customerRepo, integrity)
	dealService := service.NewDealService(dealRepo, integrity)
	activityService := service.NewActivityService(activityRepo, integrity)
	dashboardService := service.NewDashboardService(customerRepo, dealRepo)

	if cfg.Bootstrap.SeedAdmin {
		created, err := userService.EnsureUser(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
		if err != nil {
			logger.Fatalf("seed admin account: %v", err)
		}
		if created {
			logger.Warnf("seeded default admin account %q; change its password", cfg.Bootstrap.AdminUsername)
		}
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	// monetary fields serialize as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		userService,
		customerService,
		contactService,
		dealService,
		activityService,
		dashboardService,
		tokens,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
