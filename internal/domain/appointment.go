package domain

import (
	"errors"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusDone      AppointmentStatus = "done"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ErrSlotTaken — конфликт брони: интервал пересекается с уже существующей
// записью мастера. Репозиторий возвращает её вместо текста ошибки БД,
// обработчики проверяют через errors.Is.
var ErrSlotTaken = errors.New("у мастера уже есть запись на это время")

type Appointment struct {
	ID            int64             `json:"id"`
	MasterID      int64             `json:"master_id"`
	ClientID      int64             `json:"client_id"`
	ProcedureID   int64             `json:"procedure_id"`
	Date          time.Time         `json:"date"`
	StartMin      int               `json:"start_min"`
	DurationMin   int               `json:"duration_min"`
	Comment       string            `json:"comment,omitempty"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	ClientName    string            `json:"client_name,omitempty"`
	MasterName    string            `json:"master_name,omitempty"`
	ProcedureName string            `json:"procedure_name,omitempty"`
}

type CreateAppointmentDTO struct {
	MasterID    int64  `json:"master_id" binding:"required"`
	ClientID    int64  `json:"client_id" binding:"required"`
	ProcedureID int64  `json:"procedure_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Comment     string `json:"comment"`
}

type UpdateAppointmentDTO struct {
	Date    *string            `json:"date"`
	Time    *string            `json:"time"`
	Status  *AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled done cancelled"`
	Comment *string            `json:"comment"`
}

type AppointmentFilter struct {
	MasterID  *int64             `json:"master_id"`
	ClientID  *int64             `json:"client_id"`
	Status    *AppointmentStatus `json:"status"`
	StartDate *time.Time         `json:"start_date"`
	EndDate   *time.Time         `json:"end_date"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// BusyInterval — занятый интервал дня мастера, вход для расчёта слотов.
type BusyInterval struct {
	StartMin    int `json:"start_min"`
	DurationMin int `json:"duration_min"`
}
