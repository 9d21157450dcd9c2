package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon/internal/domain"
)

type MasterRepo struct {
	db *pgxpool.Pool
}

func NewMasterRepository(db *pgxpool.Pool) *MasterRepo {
	return &MasterRepo{
		db: db,
	}
}

func (r *MasterRepo) Create(ctx context.Context, dto domain.CreateMasterDTO) (int64, error) {
	query := `
		INSERT INTO masters (user_id, first_name, last_name, phone, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.UserID,
		dto.FirstName,
		dto.LastName,
		dto.Phone,
		dto.Description,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания мастера: %w", err)
	}

	return id, nil
}

func (r *MasterRepo) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	query := `
		SELECT id, user_id, first_name, last_name, phone, description, COALESCE(photo_url, ''), is_active, created_at, updated_at
		FROM masters
		WHERE id = $1
	`

	var master domain.Master
	err := r.db.QueryRow(ctx, query, id).Scan(
		&master.ID,
		&master.UserID,
		&master.FirstName,
		&master.LastName,
		&master.Phone,
		&master.Description,
		&master.PhotoURL,
		&master.IsActive,
		&master.CreatedAt,
		&master.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("мастер с ID %d не найден", id)
		}
		return nil, fmt.Errorf("ошибка получения мастера: %w", err)
	}

	return &master, nil
}

func (r *MasterRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Master, error) {
	query := `
		SELECT id, user_id, first_name, last_name, phone, description, COALESCE(photo_url, ''), is_active, created_at, updated_at
		FROM masters
		WHERE user_id = $1
	`

	var master domain.Master
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&master.ID,
		&master.UserID,
		&master.FirstName,
		&master.LastName,
		&master.Phone,
		&master.Description,
		&master.PhotoURL,
		&master.IsActive,
		&master.CreatedAt,
		&master.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("профиль мастера для пользователя %d не найден", userID)
		}
		return nil, fmt.Errorf("ошибка получения мастера: %w", err)
	}

	return &master, nil
}

func (r *MasterRepo) Update(ctx context.Context, id int64, dto domain.UpdateMasterDTO) error {
	var updateFields []string
	var args []interface{}

	argCount := 1

	if dto.FirstName != nil {
		updateFields = append(updateFields, fmt.Sprintf("first_name = $%d", argCount))
		args = append(args, *dto.FirstName)
		argCount++
	}

	if dto.LastName != nil {
		updateFields = append(updateFields, fmt.Sprintf("last_name = $%d", argCount))
		args = append(args, *dto.LastName)
		argCount++
	}

	if dto.Phone != nil {
		updateFields = append(updateFields, fmt.Sprintf("phone = $%d", argCount))
		args = append(args, *dto.Phone)
		argCount++
	}

	if dto.Description != nil {
		updateFields = append(updateFields, fmt.Sprintf("description = $%d", argCount))
		args = append(args, *dto.Description)
		argCount++
	}

	if dto.IsActive != nil {
		updateFields = append(updateFields, fmt.Sprintf("is_active = $%d", argCount))
		args = append(args, *dto.IsActive)
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
		UPDATE masters
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления мастера: %w", err)
	}

	return nil
}

func (r *MasterRepo) UpdatePhoto(ctx context.Context, id int64, photoURL string) error {
	query := `
		UPDATE masters
		SET photo_url = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, photoURL, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления фото мастера: %w", err)
	}

	return nil
}

func (r *MasterRepo) Delete(ctx context.Context, id int64) error {
	query := `
		UPDATE masters
		SET is_active = false, updated_at = $1
		WHERE id = $2
	`

	_, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка удаления мастера: %w", err)
	}

	return nil
}

func (r *MasterRepo) List(ctx context.Context, filter domain.MasterFilter) ([]domain.Master, error) {
	query := `
		SELECT id, user_id, first_name, last_name, phone, description, COALESCE(photo_url, ''), is_active, created_at, updated_at
		FROM masters
	`

	var args []interface{}
	if filter.IsActive != nil {
		query += " WHERE is_active = $1"
		args = append(args, *filter.IsActive)
	}

	query += " ORDER BY last_name, first_name"

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

	masters := make([]domain.Master, 0)
	for rows.Next() {
		var master domain.Master
		if err := rows.Scan(
			&master.ID,
			&master.UserID,
			&master.FirstName,
			&master.LastName,
			&master.Phone,
			&master.Description,
			&master.PhotoURL,
			&master.IsActive,
			&master.CreatedAt,
			&master.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки мастера: %w", err)
		}

		masters = append(masters, master)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return masters, nil
}

// GetWorkingHours возвращает график по дням недели. Отсутствие строки на
// день означает выходной — карта содержит только рабочие дни.
func (r *MasterRepo) GetWorkingHours(ctx context.Context, masterID int64) (domain.WorkingHours, error) {
	query := `
		SELECT weekday, start_min, end_min
		FROM master_working_hours
		WHERE master_id = $1
		ORDER BY weekday
	`

	rows, err := r.db.Query(ctx, query, masterID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения графика мастера: %w", err)
	}
	defer rows.Close()

	hours := make(domain.WorkingHours)
	for rows.Next() {
		var weekday, startMin, endMin int
		if err := rows.Scan(&weekday, &startMin, &endMin); err != nil {
			return nil, fmt.Errorf("ошибка сканирования графика: %w", err)
		}
		hours[weekday] = domain.DayWindow{Start: startMin, End: endMin}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return hours, nil
}

// SetWorkingHours заменяет график целиком в одной транзакции.
func (r *MasterRepo) SetWorkingHours(ctx context.Context, masterID int64, hours domain.WorkingHours) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "DELETE FROM master_working_hours WHERE master_id = $1", masterID)
	if err != nil {
		return fmt.Errorf("ошибка очистки графика: %w", err)
	}

	query := `
		INSERT INTO master_working_hours (master_id, weekday, start_min, end_min)
		VALUES ($1, $2, $3, $4)
	`

	for weekday, window := range hours {
		if _, err := tx.Exec(ctx, query, masterID, weekday, window.Start, window.End); err != nil {
			return fmt.Errorf("ошибка сохранения графика: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return nil
}
