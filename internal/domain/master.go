package domain

import (
	"time"
)

type Master struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id,omitempty"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone,omitempty"`
	Description string    `json:"description,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateMasterDTO struct {
	UserID      *int64 `json:"user_id"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

type UpdateMasterDTO struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type MasterFilter struct {
	IsActive *bool `json:"is_active"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
}

// DayWindow — рабочее окно дня в минутах от полуночи, Start < End.
type DayWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// WorkingHours — график мастера по дням недели (0=воскресенье..6=суббота).
// Отсутствие дня в карте означает выходной, никаких окон по умолчанию.
type WorkingHours map[int]DayWindow

// WindowFor возвращает рабочее окно на день недели или nil, если день выходной.
func (wh WorkingHours) WindowFor(weekday time.Weekday) *DayWindow {
	w, ok := wh[int(weekday)]
	if !ok {
		return nil
	}
	return &w
}

type WorkingDayDTO struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
}

type SetWorkingHoursDTO struct {
	Days []WorkingDayDTO `json:"days" binding:"required,dive"`
}
