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

type ProcedureRepo struct {
	db *pgxpool.Pool
}

func NewProcedureRepository(db *pgxpool.Pool) *ProcedureRepo {
	return &ProcedureRepo{
		db: db,
	}
}

func (r *ProcedureRepo) Create(ctx context.Context, dto domain.CreateProcedureDTO) (int64, error) {
	query := `
		INSERT INTO procedures (name, description, duration_min, price, category, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Name,
		dto.Description,
		dto.DurationMin,
		dto.Price,
		dto.Category,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания процедуры: %w", err)
	}

	return id, nil
}

func (r *ProcedureRepo) GetByID(ctx context.Context, id int64) (*domain.Procedure, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), duration_min, price, COALESCE(category, ''), is_active, created_at, updated_at
		FROM procedures
		WHERE id = $1
	`

	var procedure domain.Procedure
	err := r.db.QueryRow(ctx, query, id).Scan(
		&procedure.ID,
		&procedure.Name,
		&procedure.Description,
		&procedure.DurationMin,
		&procedure.Price,
		&procedure.Category,
		&procedure.IsActive,
		&procedure.CreatedAt,
		&procedure.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("процедура с ID %d не найдена", id)
		}
		return nil, fmt.Errorf("ошибка получения процедуры: %w", err)
	}

	return &procedure, nil
}

func (r *ProcedureRepo) Update(ctx context.Context, id int64, dto domain.UpdateProcedureDTO) error {
	var updateFields []string
	var args []interface{}

	argCount := 1

	if dto.Name != nil {
		updateFields = append(updateFields, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *dto.Name)
		argCount++
	}

	if dto.Description != nil {
		updateFields = append(updateFields, fmt.Sprintf("description = $%d", argCount))
		args = append(args, *dto.Description)
		argCount++
	}

	if dto.DurationMin != nil {
		updateFields = append(updateFields, fmt.Sprintf("duration_min = $%d", argCount))
		args = append(args, *dto.DurationMin)
		argCount++
	}

	if dto.Price != nil {
		updateFields = append(updateFields, fmt.Sprintf("price = $%d", argCount))
		args = append(args, *dto.Price)
		argCount++
	}

	if dto.Category != nil {
		updateFields = append(updateFields, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *dto.Category)
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
		UPDATE procedures
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления процедуры: %w", err)
	}

	return nil
}

func (r *ProcedureRepo) Delete(ctx context.Context, id int64) error {
	query := `
		UPDATE procedures
		SET is_active = false, updated_at = $1
		WHERE id = $2
	`

	_, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка удаления процедуры: %w", err)
	}

	return nil
}

func (r *ProcedureRepo) List(ctx context.Context, filter domain.ProcedureFilter) ([]domain.Procedure, error) {
	baseQuery := `
		SELECT id, name, COALESCE(description, ''), duration_min, price, COALESCE(category, ''), is_active, created_at, updated_at
		FROM procedures
	`

	conditions, args := procedureFilterConditions(filter)

	query := baseQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY category, name"

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

	procedures := make([]domain.Procedure, 0)
	for rows.Next() {
		var procedure domain.Procedure
		if err := rows.Scan(
			&procedure.ID,
			&procedure.Name,
			&procedure.Description,
			&procedure.DurationMin,
			&procedure.Price,
			&procedure.Category,
			&procedure.IsActive,
			&procedure.CreatedAt,
			&procedure.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки процедуры: %w", err)
		}

		procedures = append(procedures, procedure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов: %w", err)
	}

	return procedures, nil
}

func (r *ProcedureRepo) CountByFilter(ctx context.Context, filter domain.ProcedureFilter) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM procedures
	`

	conditions, args := procedureFilterConditions(filter)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета процедур: %w", err)
	}

	return count, nil
}

func procedureFilterConditions(filter domain.ProcedureFilter) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filter.Category)
		argCount++
	}

	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argCount))
		args = append(args, *filter.IsActive)
		argCount++
	}

	return conditions, args
}
