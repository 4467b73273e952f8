package account

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

var accountColumns = []string{
	"id",
	"name",
	"email",
	"role",
	"credits",
	"verification_status",
	"specialty",
	"experience",
	"credential_url",
	"description",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с аккаунтами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория аккаунтов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new account. New accounts start with the STUDENT role
// and a zero balance unless the caller set something else.
func (r *Repository) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if acc.ID == uuid.Nil {
		acc.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("accounts").
		Columns(
			"id",
			"name",
			"email",
			"role",
			"credits",
			"verification_status",
			"specialty",
			"experience",
			"credential_url",
			"description",
		).
		Values(
			acc.ID,
			acc.Name,
			acc.Email,
			acc.Role,
			acc.Credits,
			acc.VerificationStatus,
			acc.Specialty,
			acc.Experience,
			acc.CredentialURL,
			acc.Description,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	acc.CreatedAt = createdAt.Time
	acc.UpdatedAt = updatedAt.Time

	return acc, nil
}

// GetByID получает аккаунт по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanAccount(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// UpdateProfile updates role, verification status and the tutor profile
// fields. The balance is never touched here.
func (r *Repository) UpdateProfile(ctx context.Context, acc *domain.Account) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("accounts").
		Set("role", acc.Role).
		Set("verification_status", acc.VerificationStatus).
		Set("specialty", acc.Specialty).
		Set("experience", acc.Experience).
		Set("credential_url", acc.CredentialURL).
		Set("description", acc.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": acc.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRow(result, "UpdateProfile")
}

// UpdateVerification sets a tutor's verification status.
func (r *Repository) UpdateVerification(ctx context.Context, id uuid.UUID, status domain.VerificationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("accounts").
		Set("verification_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "role": domain.RoleTutor}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateVerification - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateVerification - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRow(result, "UpdateVerification")
}

// ListTutors returns tutors with the given verification status,
// optionally filtered by specialty, ordered by name.
func (r *Repository) ListTutors(ctx context.Context, status domain.VerificationStatus, specialty *string) ([]*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"role": domain.RoleTutor, "verification_status": status}).
		OrderBy("name ASC")

	if specialty != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"specialty": *specialty})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTutors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTutors - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAccounts(rows)
}

// IncrementCredits adds amount (> 0) to the account balance.
func (r *Repository) IncrementCredits(ctx context.Context, id uuid.UUID, amount int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("accounts").
		Set("credits", squirrel.Expr("credits + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementCredits - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementCredits - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRow(result, "IncrementCredits")
}

// DecrementCredits subtracts amount (> 0) from the account balance.
// The update is guarded by credits >= amount so the non-negative balance
// invariant holds even under concurrent transfers; a zero row count on
// an existing account means the balance was insufficient.
func (r *Repository) DecrementCredits(ctx context.Context, id uuid.UUID, amount int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("accounts").
		Set("credits", squirrel.Expr("credits - ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"credits": amount}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementCredits - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementCredits - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementCredits - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Distinguish a missing account from an insufficient balance
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrInsufficientCredits
	}

	return nil
}

func (r *Repository) requireRow(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *Repository) scanAccount(row *sql.Row, op string) (*domain.Account, error) {
	var acc domain.Account
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.Email,
		&acc.Role,
		&acc.Credits,
		&acc.VerificationStatus,
		&acc.Specialty,
		&acc.Experience,
		&acc.CredentialURL,
		&acc.Description,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan account: %v", ErrScanRow, op, err)
	}

	acc.CreatedAt = createdAt.Time
	acc.UpdatedAt = updatedAt.Time

	return &acc, nil
}

func (r *Repository) scanAccounts(rows *sql.Rows) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		var acc domain.Account
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&acc.ID,
			&acc.Name,
			&acc.Email,
			&acc.Role,
			&acc.Credits,
			&acc.VerificationStatus,
			&acc.Specialty,
			&acc.Experience,
			&acc.CredentialURL,
			&acc.Description,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAccounts - scan row: %v", ErrScanRow, err)
		}

		acc.CreatedAt = createdAt.Time
		acc.UpdatedAt = updatedAt.Time

		accounts = append(accounts, &acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAccounts - rows error: %v", ErrScanRow, err)
	}

	return accounts, nil
}
