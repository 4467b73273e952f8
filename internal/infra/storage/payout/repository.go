package payout

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	"github.com/tutorlink/booking-service/pkg/dbmetrics"
	"github.com/tutorlink/booking-service/pkg/psqlbuilder"
)

var payoutColumns = []string{
	"id",
	"tutor_id",
	"credits",
	"amount",
	"platform_fee",
	"net_amount",
	"paypal_email",
	"status",
	"processed_by",
	"processed_at",
	"created_at",
}

// Repository репозиторий для работы с выплатами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория выплат
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запрос на выплату
func (r *Repository) Create(ctx context.Context, p *domain.Payout) (*domain.Payout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("payouts").
		Columns(
			"id",
			"tutor_id",
			"credits",
			"amount",
			"platform_fee",
			"net_amount",
			"paypal_email",
			"status",
		).
		Values(
			p.ID,
			p.TutorID,
			p.Credits,
			p.Amount,
			p.PlatformFee,
			p.NetAmount,
			p.PaypalEmail,
			p.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// GetByID получает выплату по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(payoutColumns...).
		From("payouts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	p, err := r.scanPayout(row)
	if err == sql.ErrNoRows {
		return nil, ErrPayoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan payout: %v", ErrScanRow, err)
	}

	return p, nil
}

// HasPending reports whether the tutor already has a payout awaiting
// approval.
func (r *Repository) HasPending(ctx context.Context, tutorID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(1)").
		From("payouts").
		Where(squirrel.Eq{"tutor_id": tutorID, "status": domain.PayoutProcessing}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasPending - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasPending - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// ListByTutor returns the tutor's payout history, newest first.
func (r *Repository) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*domain.Payout, error) {
	return r.list(ctx, squirrel.Eq{"tutor_id": tutorID}, "ListByTutor")
}

// ListPending returns all payouts awaiting approval, newest first.
func (r *Repository) ListPending(ctx context.Context) ([]*domain.Payout, error) {
	return r.list(ctx, squirrel.Eq{"status": domain.PayoutProcessing}, "ListPending")
}

// MarkProcessed approves a pending payout. Only PROCESSING payouts can
// be approved; approving twice affects zero rows and reports not found.
func (r *Repository) MarkProcessed(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payouts").
		Set("status", domain.PayoutProcessed).
		Set("processed_by", adminID).
		Set("processed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.PayoutProcessing}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPayoutNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq, op string) ([]*domain.Payout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(payoutColumns...).
		From("payouts").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	payouts := make([]*domain.Payout, 0)
	for rows.Next() {
		p, err := r.scanPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		payouts = append(payouts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return payouts, nil
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanPayout(row scannable) (*domain.Payout, error) {
	var p domain.Payout
	var processedAt, createdAt sql.NullTime
	var processedBy uuid.NullUUID

	err := row.Scan(
		&p.ID,
		&p.TutorID,
		&p.Credits,
		&p.Amount,
		&p.PlatformFee,
		&p.NetAmount,
		&p.PaypalEmail,
		&p.Status,
		&processedBy,
		&processedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if processedBy.Valid {
		p.ProcessedBy = &processedBy.UUID
	}
	if processedAt.Valid {
		p.ProcessedAt = &processedAt.Time
	}
	p.CreatedAt = createdAt.Time

	return &p, nil
}
