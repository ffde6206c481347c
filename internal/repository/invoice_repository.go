package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository/base"
)

type InvoiceRepository struct {
	*base.Repository
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{Repository: base.NewRepository(pool)}
}

// Create inserts an invoice for a lesson.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	query := `
		INSERT INTO invoices (lesson_id, amount_cents, is_paid)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query,
		invoice.LessonID,
		invoice.AmountCents,
		invoice.IsPaid,
	).Scan(&invoice.ID, &invoice.CreatedAt)

	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}

	return nil
}

// GetByID fetches an invoice, nil if absent.
func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	query := `
		SELECT id, lesson_id, amount_cents, is_paid, created_at
		FROM invoices
		WHERE id = $1
	`

	var invoice model.Invoice
	err := r.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.LessonID,
		&invoice.AmountCents,
		&invoice.IsPaid,
		&invoice.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}

	return &invoice, nil
}

// GetByLessonID fetches the invoice of a lesson, nil if absent.
func (r *InvoiceRepository) GetByLessonID(ctx context.Context, lessonID int64) (*model.Invoice, error) {
	query := `
		SELECT id, lesson_id, amount_cents, is_paid, created_at
		FROM invoices
		WHERE lesson_id = $1
	`

	var invoice model.Invoice
	err := r.QueryRow(ctx, query, lessonID).Scan(
		&invoice.ID,
		&invoice.LessonID,
		&invoice.AmountCents,
		&invoice.IsPaid,
		&invoice.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by lesson: %w", err)
	}

	return &invoice, nil
}

// MarkPaid flips the paid flag.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id int64) error {
	affected, err := r.ExecAffected(ctx, `UPDATE invoices SET is_paid = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark invoice paid: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("invoice not found")
	}

	return nil
}

// ListUnpaid returns outstanding invoices, oldest first.
func (r *InvoiceRepository) ListUnpaid(ctx context.Context) ([]*model.Invoice, error) {
	query := `
		SELECT id, lesson_id, amount_cents, is_paid, created_at
		FROM invoices
		WHERE is_paid = FALSE
		ORDER BY created_at ASC
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list unpaid invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*model.Invoice
	for rows.Next() {
		var invoice model.Invoice
		err := rows.Scan(
			&invoice.ID,
			&invoice.LessonID,
			&invoice.AmountCents,
			&invoice.IsPaid,
			&invoice.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, &invoice)
	}

	return invoices, nil
}
