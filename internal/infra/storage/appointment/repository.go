package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	"github.com/tutorlink/booking-service/pkg/dbmetrics"
	"github.com/tutorlink/booking-service/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"tutor_id",
	"student_id",
	"start_time",
	"end_time",
	"status",
	"notes",
	"student_description",
	"video_session_id",
	"video_session_token",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на занятия
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create persists a new appointment. Normally called inside the booking
// transaction, after the conflict check on the same context.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"tutor_id",
			"student_id",
			"start_time",
			"end_time",
			"status",
			"notes",
			"student_description",
			"video_session_id",
			"video_session_token",
		).
		Values(
			appt.ID,
			appt.TutorID,
			appt.StudentID,
			appt.StartTime,
			appt.EndTime,
			appt.Status,
			appt.Notes,
			appt.StudentDescription,
			appt.VideoSessionID,
			appt.VideoSessionToken,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.TutorID,
		&appt.StudentID,
		&appt.StartTime,
		&appt.EndTime,
		&appt.Status,
		&appt.Notes,
		&appt.StudentDescription,
		&appt.VideoSessionID,
		&appt.VideoSessionToken,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// ListScheduledByTutor returns the tutor's SCHEDULED appointments that
// start before the given boundary, ordered by start time.
//
// Inside a transaction the rows are locked with FOR UPDATE: the booking
// usecase reads them as part of its conflict check, and two concurrent
// bookings for the same tutor must serialize on these rows.
func (r *Repository) ListScheduledByTutor(ctx context.Context, tutorID uuid.UUID, until time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"tutor_id": tutorID, "status": domain.StatusScheduled}).
		Where(squirrel.LtOrEq{"start_time": until}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListScheduledByTutor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListScheduledByTutor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CountScheduledByTutor returns how many SCHEDULED appointments the
// tutor currently has. The payout service uses the count to keep the
// credits backing those appointments out of the payable balance.
func (r *Repository) CountScheduledByTutor(ctx context.Context, tutorID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"tutor_id": tutorID, "status": domain.StatusScheduled}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountScheduledByTutor - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountScheduledByTutor - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// ListByParticipant returns appointments where the account is the tutor
// or the student, depending on its role, ordered by start time.
func (r *Repository) ListByParticipant(ctx context.Context, accountID uuid.UUID, role domain.Role) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	column := "student_id"
	if role == domain.RoleTutor {
		column = "tutor_id"
	}

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{column: accountID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByParticipant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByParticipant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus moves an appointment to a new status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, query, args, "UpdateStatus")
}

// SetNotes stores the tutor's notes on the appointment.
func (r *Repository) SetNotes(ctx context.Context, id uuid.UUID, notes string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetNotes - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, query, args, "SetNotes")
}

// SetVideoToken stores the last issued join token.
func (r *Repository) SetVideoToken(ctx context.Context, id uuid.UUID, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("video_session_token", token).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetVideoToken - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, query, args, "SetVideoToken")
}

func (r *Repository) exec(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.TutorID,
			&appt.StudentID,
			&appt.StartTime,
			&appt.EndTime,
			&appt.Status,
			&appt.Notes,
			&appt.StudentDescription,
			&appt.VideoSessionID,
			&appt.VideoSessionToken,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
