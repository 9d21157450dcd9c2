package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"salon/config"
	"salon/internal/availability"
	"salon/internal/domain"
	"salon/internal/repository"
	"salon/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
}

type Services struct {
	User        UserService
	Auth        AuthService
	Client      ClientService
	Procedure   ProcedureService
	Master      MasterService
	Schedule    ScheduleService
	Appointment AppointmentService
}

func NewServices(deps Deps) *Services {
	return &Services{
		User:        NewUserService(deps.Repos.User, deps.Logger),
		Auth:        NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Client:      NewClientService(deps.Repos.Client, deps.Logger),
		Procedure:   NewProcedureService(deps.Repos.Procedure, deps.Logger),
		Master:      NewMasterService(deps.Repos.Master, deps.FileStorage, deps.Logger),
		Schedule:    NewScheduleService(deps.Repos.Master, deps.Repos.Procedure, deps.Repos.Appointment, deps.Logger),
		Appointment: NewAppointmentService(deps.Repos.Appointment, deps.Repos.Client, deps.Repos.Master, deps.Repos.Procedure, deps.Logger),
	}
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type ClientService interface {
	Create(ctx context.Context, dto domain.CreateClientDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	Update(ctx context.Context, id int64, dto domain.UpdateClientDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int, error)
}

type ProcedureService interface {
	Create(ctx context.Context, dto domain.CreateProcedureDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Procedure, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProcedureDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ProcedureFilter) ([]domain.Procedure, int, error)
}

type MasterService interface {
	Create(ctx context.Context, dto domain.CreateMasterDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Master, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Master, error)
	Update(ctx context.Context, id int64, dto domain.UpdateMasterDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.MasterFilter) ([]domain.Master, error)

	UploadPhoto(ctx context.Context, masterID int64, photo []byte, filename string) error
	DeletePhoto(ctx context.Context, masterID int64) error
}

type ScheduleService interface {
	GetWorkingHours(ctx context.Context, masterID int64) (domain.WorkingHours, error)
	SetWorkingHours(ctx context.Context, masterID int64, dto domain.SetWorkingHoursDTO) error
	GetSlots(ctx context.Context, masterID, procedureID int64, date time.Time) ([]availability.Slot, error)
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
}
