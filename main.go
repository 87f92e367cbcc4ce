// File: lakehouse/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"lakehouse/config"
	"lakehouse/database"
	auditRepo "lakehouse/database/repository/audit"
	bookerRepo "lakehouse/database/repository/booker"
	permissionsRepo "lakehouse/database/repository/permissions"
	pricingRepo "lakehouse/database/repository/pricing"
	reservationRepo "lakehouse/database/repository/reservation"
	roundsRepo "lakehouse/database/repository/rounds"
	seasonRepo "lakehouse/database/repository/season"
	unitRepo "lakehouse/database/repository/unit"
	"lakehouse/handlers"
	"lakehouse/middleware"
	"lakehouse/routes"
	"lakehouse/services/admin"
	"lakehouse/services/audit"
	"lakehouse/services/reservation"
	"lakehouse/services/rounds"
	"lakehouse/services/storage"
	"lakehouse/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.FirebaseInit()
	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.TodayMiddleware(utils.SystemClock{}))

	// repositories.
	resRepo := reservationRepo.NewFirestoreReservationRepo()
	rndRepo := roundsRepo.NewFirestoreRoundsRepo()
	bkrRepo := bookerRepo.NewFirestoreBookerRepo()
	untRepo := unitRepo.NewFirestoreUnitRepo()
	prcRepo := pricingRepo.NewFirestorePricingRepo()
	ssnRepo := seasonRepo.NewFirestoreSeasonRepo()
	prmRepo := permissionsRepo.NewFirestorePermissionsRepo(utils.GetCacheClient())
	audRepo := auditRepo.NewFirestoreAuditRepo()

	// services.
	roundsService := &rounds.DefaultRoundsService{Repo: rndRepo}
	auditWriter := &audit.DefaultWriter{Repo: audRepo}
	auditReader := &audit.DefaultReader{Repo: audRepo}

	reservationService := &reservation.DefaultReservationService{
		Repo:        resRepo,
		Bookers:     bkrRepo,
		Permissions: prmRepo,
		Rounds:      roundsService,
		Audit:       auditWriter,
	}

	adminService := &admin.DefaultAdminService{
		Auth:        utils.AuthClient,
		Permissions: prmRepo,
	}

	storageService := storage.NewGCSStorageService(utils.StorageBucket)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Season:      handlers.NewSeasonHandler(roundsService, bkrRepo, untRepo, prcRepo, ssnRepo),
		Reservation: handlers.NewReservationHandler(reservationService, auditReader),
		Admin:       handlers.NewAdminHandler(adminService, roundsService, ssnRepo, prcRepo, untRepo),
		Storage:     handlers.NewStorageHandler(storageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, utils.AuthClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
