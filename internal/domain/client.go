package domain

import (
	"time"
)

type Client struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateClientDTO struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Comment   string `json:"comment"`
}

type UpdateClientDTO struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Comment   *string `json:"comment"`
	IsActive  *bool   `json:"is_active"`
}

type ClientFilter struct {
	Search   *string `json:"search"`
	IsActive *bool   `json:"is_active"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}
