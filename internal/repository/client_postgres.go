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

type ClientRepo struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{
		db: db,
	}
}

func (r *ClientRepo) Create(ctx context.Context, dto domain.CreateClientDTO) (int64, error) {
	query := `
		INSERT INTO clients (first_name, last_name, phone, email, comment, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.FirstName,
		dto.LastName,
		dto.Phone,
		dto.Email,
		dto.Comment,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания клиента: %w", err)
	}

	return id, nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `
		SELECT id, first_name, last_name, phone, COALESCE(email, ''), COALESCE(comment, ''), is_active, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var client domain.Client
	err := r.db.QueryRow(ctx, query, id).Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Phone,
		&client.Email,
		&client.Comment,
		&client.IsActive,
		&client.CreatedAt,
		&client.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("клиент с ID %d не найден", id)
		}
		return nil, fmt.Errorf("ошибка получения клиента: %w", err)
	}

	return &client, nil
}

func (r *ClientRepo) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	query := `
		SELECT id, first_name, last_name, phone, COALESCE(email, ''), COALESCE(comment, ''), is_active, created_at, updated_at
		FROM clients
		WHERE phone = $1
	`

	var client domain.Client
	err := r.db.QueryRow(ctx, query, phone).Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Phone,
		&client.Email,
		&client.Comment,
		&client.IsActive,
		&client.CreatedAt,
		&client.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("клиент с телефоном %s не найден", phone)
		}
		return nil, fmt.Errorf("ошибка получения клиента: %w", err)
	}

	return &client, nil
}

func (r *ClientRepo) Update(ctx context.Context, id int64, dto domain.UpdateClientDTO) error {
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

	if dto.Email != nil {
		updateFields = append(updateFields, fmt.Sprintf("email = $%d", argCount))
		args = append(args, *dto.Email)
		argCount++
	}

	if dto.Comment != nil {
		updateFields = append(updateFields, fmt.Sprintf("comment = $%d", argCount))
		args = append(args, *dto.Comment)
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
		UPDATE clients
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления клиента: %w", err)
	}

	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	query := `
		UPDATE clients
		SET is_active = false, updated_at = $1
		WHERE id = $2
	`

	_, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка удаления клиента: %w", err)
	}

	return nil
}

func (r *ClientRepo) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	baseQuery := `
		SELECT id, first_name, last_name, phone, COALESCE(email, ''), COALESCE(comment, ''), is_active, created_at, updated_at
		FROM clients
	`

	conditions, args := clientFilterConditions(filter)

	query := baseQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
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

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.FirstName,
			&client.LastName,
			&client.Phone,
			&client.Email,
			&client.Comment,
			&client.IsActive,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки клиента: %w", err)
		}

		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return clients, nil
}

func (r *ClientRepo) CountByFilter(ctx context.Context, filter domain.ClientFilter) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM clients
	`

	conditions, args := clientFilterConditions(filter)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета клиентов: %w", err)
	}

	return count, nil
}

func clientFilterConditions(filter domain.ClientFilter) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR phone ILIKE $%d)", argCount, argCount, argCount))
		args = append(args, "%"+*filter.Search+"%")
		argCount++
	}

	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argCount))
		args = append(args, *filter.IsActive)
		argCount++
	}

	return conditions, args
}
