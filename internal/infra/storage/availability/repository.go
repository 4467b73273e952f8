package availability

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

// Repository репозиторий для работы с окнами доступности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert replaces the tutor's window wholesale. A tutor has at most one
// window, enforced by the unique constraint on tutor_id.
func (r *Repository) Upsert(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if window.ID == uuid.Nil {
		window.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns("id", "tutor_id", "start_time", "end_time", "status").
		Values(window.ID, window.TutorID, window.StartTime, window.EndTime, window.Status).
		Suffix(`ON CONFLICT (tutor_id) DO UPDATE
			SET start_time = EXCLUDED.start_time,
			    end_time = EXCLUDED.end_time,
			    status = EXCLUDED.status,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&window.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// GetByTutor получает окно доступности тьютора
func (r *Repository) GetByTutor(ctx context.Context, tutorID uuid.UUID) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tutor_id",
		"start_time",
		"end_time",
		"status",
		"created_at",
		"updated_at",
	).
		From("availability_windows").
		Where(squirrel.Eq{"tutor_id": tutorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTutor - build select query: %v", ErrBuildQuery, err)
	}

	var window domain.AvailabilityWindow
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&window.TutorID,
		&window.StartTime,
		&window.EndTime,
		&window.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTutor - scan window: %v", ErrScanRow, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}
