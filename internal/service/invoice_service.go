package service

import (
	"context"
	"fmt"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository"
	"go.uber.org/zap"
)

type InvoiceService struct {
	invoiceRepo *repository.InvoiceRepository
	lessonRepo  *repository.LessonRepository
	logger      *zap.Logger
}

func NewInvoiceService(
	invoiceRepo *repository.InvoiceRepository,
	lessonRepo *repository.LessonRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		lessonRepo:  lessonRepo,
		logger:      logger,
	}
}

// CreateForLesson bills a lesson. One invoice per lesson.
func (s *InvoiceService) CreateForLesson(ctx context.Context, lessonID, amountCents int64) (*model.Invoice, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("invoice amount must be positive")
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	if lesson == nil {
		return nil, fmt.Errorf("lesson not found")
	}

	existing, err := s.invoiceRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("check existing invoice: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("lesson is already invoiced")
	}

	invoice := &model.Invoice{
		LessonID:    lessonID,
		AmountCents: amountCents,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("Invoice created",
		zap.Int64("invoice_id", invoice.ID),
		zap.Int64("lesson_id", lessonID),
		zap.Int64("amount_cents", amountCents),
	)

	return invoice, nil
}

// MarkPaid settles an invoice.
func (s *InvoiceService) MarkPaid(ctx context.Context, invoiceID int64) error {
	if err := s.invoiceRepo.MarkPaid(ctx, invoiceID); err != nil {
		return err
	}

	s.logger.Info("Invoice paid", zap.Int64("invoice_id", invoiceID))
	return nil
}

// ListUnpaid returns outstanding invoices.
func (s *InvoiceService) ListUnpaid(ctx context.Context) ([]*model.Invoice, error) {
	return s.invoiceRepo.ListUnpaid(ctx)
}
