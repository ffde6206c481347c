package app

import (
	"context"
	"time"

	"github.com/codetutors/tutoring/internal/service"
	"go.uber.org/zap"
)

// Scheduler runs background maintenance tasks.
type Scheduler struct {
	bookingService *service.BookingService
	logger         *zap.Logger
	stopChan       chan struct{}
}

func NewScheduler(bookingService *service.BookingService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		logger:         logger,
		stopChan:       make(chan struct{}),
	}
}

// Start launches the background tasks.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")
	go s.runLessonReconciliation(ctx)
}

// Stop stops the background tasks.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runLessonReconciliation periodically re-materializes lessons for accepted
// bookings. Materialization is idempotent, so this only fills gaps (e.g. a
// crash between approval and lesson creation).
func (s *Scheduler) runLessonReconciliation(ctx context.Context) {
	s.reconcileLessons(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.reconcileLessons(ctx)
		case <-s.stopChan:
			s.logger.Info("Lesson reconciliation task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Lesson reconciliation task cancelled")
			return
		}
	}
}

func (s *Scheduler) reconcileLessons(ctx context.Context) {
	s.logger.Info("Starting lesson reconciliation")

	bookings, err := s.bookingService.GetAcceptedBookings(ctx)
	if err != nil {
		s.logger.Error("Failed to list accepted bookings", zap.Error(err))
		return
	}

	for _, b := range bookings {
		if err := s.bookingService.MaterializeLessons(ctx, b); err != nil {
			s.logger.Error("Failed to materialize lessons",
				zap.Error(err),
				zap.Int64("booking_id", b.ID),
			)
		}
	}

	s.logger.Info("Lesson reconciliation completed", zap.Int("bookings", len(bookings)))
}
