package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

// Create вставляет запись одним INSERT. Инвариант непересечения интервалов
// держит ограничение appointments_no_overlap (EXCLUDE USING gist) на стороне
// БД: при гонке двух вставок коммитится ровно одна, вторая получает
// domain.ErrSlotTaken. Никаких предварительных SELECT-проверок — проверка
// "прочитал-потом-вставил" на клиенте гонку не закрывает.
func (r *AppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (int64, error) {
	query := `
		INSERT INTO appointments (master_id, client_id, procedure_id, date, start_min, duration_min, comment, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		appointment.MasterID,
		appointment.ClientID,
		appointment.ProcedureID,
		appointment.Date,
		appointment.StartMin,
		appointment.DurationMin,
		appointment.Comment,
		domain.AppointmentStatusScheduled,
		now,
	).Scan(&id)

	if err != nil {
		if isOverlapConflict(err) {
			return 0, domain.ErrSlotTaken
		}
		return 0, fmt.Errorf("ошибка создания записи: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `
		SELECT a.id, a.master_id, a.client_id, a.procedure_id, a.date, a.start_min, a.duration_min, a.comment, a.status, a.created_at, a.updated_at,
		       c.first_name || ' ' || c.last_name AS client_name,
		       m.first_name || ' ' || m.last_name AS master_name,
		       p.name AS procedure_name
		FROM appointments a
		JOIN clients c ON a.client_id = c.id
		JOIN masters m ON a.master_id = m.id
		JOIN procedures p ON a.procedure_id = p.id
		WHERE a.id = $1
	`

	var appointment domain.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.MasterID,
		&appointment.ClientID,
		&appointment.ProcedureID,
		&appointment.Date,
		&appointment.StartMin,
		&appointment.DurationMin,
		&appointment.Comment,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
		&appointment.ClientName,
		&appointment.MasterName,
		&appointment.ProcedureName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("запись с ID %d не найдена", id)
		}
		return nil, fmt.Errorf("ошибка получения записи: %w", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	var updateFields []string
	var args []interface{}

	argCount := 1

	if dto.Date != nil {
		date, err := time.Parse("2006-01-02", *dto.Date)
		if err != nil {
			return fmt.Errorf("неверный формат даты: %w", err)
		}
		updateFields = append(updateFields, fmt.Sprintf("date = $%d", argCount))
		args = append(args, date)
		argCount++
	}

	if dto.Time != nil {
		t, err := time.Parse("15:04", *dto.Time)
		if err != nil {
			return fmt.Errorf("неверный формат времени: %w", err)
		}
		updateFields = append(updateFields, fmt.Sprintf("start_min = $%d", argCount))
		args = append(args, t.Hour()*60+t.Minute())
		argCount++
	}

	if dto.Status != nil {
		updateFields = append(updateFields, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *dto.Status)
		argCount++
	}

	if dto.Comment != nil {
		updateFields = append(updateFields, fmt.Sprintf("comment = $%d", argCount))
		args = append(args, *dto.Comment)
		argCount++
	}

	if len(updateFields) == 0 {
		return nil
	}

	updateFields = append(updateFields, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE appointments
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		// Перенос записи проходит через то же ограничение, что и вставка.
		if isOverlapConflict(err) {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("ошибка обновления записи: %w", err)
	}

	return nil
}

func (r *AppointmentRepo) Cancel(ctx context.Context, id int64) error {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, domain.AppointmentStatusCancelled, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка отмены записи: %w", err)
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	baseQuery := `
		SELECT a.id, a.master_id, a.client_id, a.procedure_id, a.date, a.start_min, a.duration_min, a.comment, a.status, a.created_at, a.updated_at,
		       c.first_name || ' ' || c.last_name AS client_name,
		       m.first_name || ' ' || m.last_name AS master_name,
		       p.name AS procedure_name
		FROM appointments a
		JOIN clients c ON a.client_id = c.id
		JOIN masters m ON a.master_id = m.id
		JOIN procedures p ON a.procedure_id = p.id
	`

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.MasterID != nil {
		conditions = append(conditions, fmt.Sprintf("a.master_id = $%d", argCount))
		args = append(args, *filter.MasterID)
		argCount++
	}

	if filter.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("a.client_id = $%d", argCount))
		args = append(args, *filter.ClientID)
		argCount++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}

	query := baseQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY a.date DESC, a.start_min DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var appointment domain.Appointment
		if err := rows.Scan(
			&appointment.ID,
			&appointment.MasterID,
			&appointment.ClientID,
			&appointment.ProcedureID,
			&appointment.Date,
			&appointment.StartMin,
			&appointment.DurationMin,
			&appointment.Comment,
			&appointment.Status,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
			&appointment.ClientName,
			&appointment.MasterName,
			&appointment.ProcedureName,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки записи: %w", err)
		}

		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	baseQuery := `
		SELECT COUNT(*)
		FROM appointments
	`

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.MasterID != nil {
		conditions = append(conditions, fmt.Sprintf("master_id = $%d", argCount))
		args = append(args, *filter.MasterID)
		argCount++
	}

	if filter.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", argCount))
		args = append(args, *filter.ClientID)
		argCount++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}

	query := baseQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета записей: %w", err)
	}

	return count, nil
}

func (r *AppointmentRepo) GetBusyIntervals(ctx context.Context, masterID int64, date time.Time) ([]domain.BusyInterval, error) {
	query := `
		SELECT start_min, duration_min
		FROM appointments
		WHERE master_id = $1
		AND date = $2
		AND status != 'cancelled'
		ORDER BY start_min
	`

	rows, err := r.db.Query(ctx, query, masterID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения занятых интервалов: %w", err)
	}
	defer rows.Close()

	intervals := make([]domain.BusyInterval, 0)
	for rows.Next() {
		var interval domain.BusyInterval
		if err := rows.Scan(&interval.StartMin, &interval.DurationMin); err != nil {
			return nil, fmt.Errorf("ошибка сканирования интервала: %w", err)
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return intervals, nil
}

// isOverlapConflict распознаёт срабатывание ограничения непересечения:
// 23P01 — exclusion_violation, 23505 — на случай уникального индекса.
func isOverlapConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23P01" || pgErr.Code == "23505"
}
