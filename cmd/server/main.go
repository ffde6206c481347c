package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/codetutors/tutoring/internal/app"
	"github.com/codetutors/tutoring/internal/config"
	"github.com/codetutors/tutoring/internal/controller"
	"github.com/codetutors/tutoring/internal/repository"
	"github.com/codetutors/tutoring/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting tutoring backend", zap.String("environment", cfg.Environment))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	userRepo := repository.NewUserRepository(pool)
	tutorRepo := repository.NewTutorRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	termRepo := repository.NewTermRepository(pool)
	availabilityRepo := repository.NewAvailabilityRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)

	userService := service.NewUserService(userRepo, logger)
	tutorService := service.NewTutorService(tutorRepo, userRepo, catalogRepo, availabilityRepo, applicationRepo, logger)
	bookingService := service.NewBookingService(bookingRepo, lessonRepo, tutorRepo, termRepo, availabilityRepo, logger)
	lessonService := service.NewLessonService(lessonRepo, bookingRepo, userRepo, catalogRepo, logger)
	invoiceService := service.NewInvoiceService(invoiceRepo, lessonRepo, logger)
	catalogService := service.NewCatalogService(termRepo, catalogRepo, logger)

	scheduler := app.NewScheduler(bookingService, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := controller.NewServer(controller.Services{
		Users:    userService,
		Tutors:   tutorService,
		Bookings: bookingService,
		Lessons:  lessonService,
		Invoices: invoiceService,
		Catalog:  catalogService,
	}, logger)

	go func() {
		if err := server.Start(cfg.HTTPAddr); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
