package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"salon/internal/domain"
)

type Repositories struct {
	User        UserRepository
	Auth        AuthRepository
	Client      ClientRepository
	Procedure   ProcedureRepository
	Master      MasterRepository
	Appointment AppointmentRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Auth:        NewAuthRepository(db),
		Client:      NewClientRepository(db),
		Procedure:   NewProcedureRepository(db),
		Master:      NewMasterRepository(db),
		Appointment: NewAppointmentRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type ClientRepository interface {
	Create(ctx context.Context, client domain.CreateClientDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	Update(ctx context.Context, id int64, client domain.UpdateClientDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error)
	CountByFilter(ctx context.Context, filter domain.ClientFilter) (int, error)
}

type ProcedureRepository interface {
	Create(ctx context.Context, procedure domain.CreateProcedureDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Procedure, error)
	Update(ctx context.Context, id int64, procedure domain.UpdateProcedureDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ProcedureFilter) ([]domain.Procedure, error)
	CountByFilter(ctx context.Context, filter domain.ProcedureFilter) (int, error)
}

type MasterRepository interface {
	Create(ctx context.Context, master domain.CreateMasterDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Master, error)
	Update(ctx context.Context, id int64, master domain.UpdateMasterDTO) error
	UpdatePhoto(ctx context.Context, id int64, photoURL string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.MasterFilter) ([]domain.Master, error)

	GetWorkingHours(ctx context.Context, masterID int64) (domain.WorkingHours, error)
	SetWorkingHours(ctx context.Context, masterID int64, hours domain.WorkingHours) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment domain.Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
	GetBusyIntervals(ctx context.Context, masterID int64, date time.Time) ([]domain.BusyInterval, error)
}
