package domain

import (
	"time"
)

type Procedure struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	DurationMin int       `json:"duration_min"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProcedureDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
}

type UpdateProcedureDTO struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	DurationMin *int     `json:"duration_min" binding:"omitempty,gt=0"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"is_active"`
}

type ProcedureFilter struct {
	Category *string `json:"category"`
	IsActive *bool   `json:"is_active"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}
