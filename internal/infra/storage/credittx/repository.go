// Package credittx persists the append-only credit transaction log.
// There is deliberately no Update or Delete here: corrections are made
// by appending compensating transactions.
package credittx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tutorlink/booking-service/internal/domain"
	"github.com/tutorlink/booking-service/pkg/dbmetrics"
	"github.com/tutorlink/booking-service/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Repository репозиторий журнала кредитных транзакций
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append записывает одну транзакцию в журнал
func (r *Repository) Append(ctx context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("credit_transactions").
		Columns("id", "account_id", "amount", "type", "idempotency_key").
		Values(tx.ID, tx.AccountID, tx.Amount, tx.Type, tx.IdempotencyKey).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	tx.CreatedAt = createdAt.Time

	return tx, nil
}

// ListByAccount returns the account's transactions, newest first.
func (r *Repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.CreditTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"account_id",
		"amount",
		"type",
		"idempotency_key",
		"created_at",
	).
		From("credit_transactions").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByAccount - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAccount - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.CreditTransaction, 0)
	for rows.Next() {
		var tx domain.CreditTransaction
		var createdAt sql.NullTime

		err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Amount, &tx.Type, &tx.IdempotencyKey, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByAccount - scan row: %v", ErrScanRow, err)
		}

		tx.CreatedAt = createdAt.Time
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAccount - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// SumByAccount computes the sum of all transaction amounts for the
// account. Used to audit the balance-equals-sum invariant.
func (r *Repository) SumByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("credit_transactions").
		Where(squirrel.Eq{"account_id": accountID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumByAccount - build select query: %v", ErrBuildQuery, err)
	}

	var sum int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumByAccount - scan sum: %v", ErrScanRow, err)
	}

	return sum, nil
}
