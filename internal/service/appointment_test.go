package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"salon/internal/domain"
)

// fakeAppointmentRepo моделирует гарантию хранилища: вставка и проверка
// пересечения атомарны под мьютексом, как EXCLUDE-ограничение в Postgres.
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []domain.Appointment
	nextID       int64
	failCreate   error
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (int64, error) {
	if r.failCreate != nil {
		return 0, r.failCreate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.MasterID != appt.MasterID || !existing.Date.Equal(appt.Date) {
			continue
		}
		if existing.Status == domain.AppointmentStatusCancelled {
			continue
		}
		if appt.StartMin < existing.StartMin+existing.DurationMin &&
			existing.StartMin < appt.StartMin+appt.DurationMin {
			return 0, domain.ErrSlotTaken
		}
	}

	r.nextID++
	appt.ID = r.nextID
	appt.Status = domain.AppointmentStatusScheduled
	r.appointments = append(r.appointments, appt)
	return appt.ID, nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, appt := range r.appointments {
		if appt.ID == id {
			a := appt
			return &a, nil
		}
	}
	return nil, errors.New("запись не найдена")
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	return nil
}

func (r *fakeAppointmentRepo) Cancel(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments[i].Status = domain.AppointmentStatusCancelled
			return nil
		}
	}
	return errors.New("запись не найдена")
}

func (r *fakeAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Appointment(nil), r.appointments...), nil
}

func (r *fakeAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appointments), nil
}

func (r *fakeAppointmentRepo) GetBusyIntervals(ctx context.Context, masterID int64, date time.Time) ([]domain.BusyInterval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	intervals := make([]domain.BusyInterval, 0)
	for _, appt := range r.appointments {
		if appt.MasterID == masterID && appt.Date.Equal(date) && appt.Status != domain.AppointmentStatusCancelled {
			intervals = append(intervals, domain.BusyInterval{StartMin: appt.StartMin, DurationMin: appt.DurationMin})
		}
	}
	return intervals, nil
}

type fakeClientRepo struct{}

func (r *fakeClientRepo) Create(ctx context.Context, dto domain.CreateClientDTO) (int64, error) {
	return 1, nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return &domain.Client{ID: id, FirstName: "Анна", LastName: "Иванова", IsActive: true}, nil
}

func (r *fakeClientRepo) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	return nil, errors.New("клиент не найден")
}

func (r *fakeClientRepo) Update(ctx context.Context, id int64, dto domain.UpdateClientDTO) error {
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *fakeClientRepo) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) CountByFilter(ctx context.Context, filter domain.ClientFilter) (int, error) {
	return 0, nil
}

type fakeMasterRepo struct {
	hours domain.WorkingHours
}

func (r *fakeMasterRepo) Create(ctx context.Context, dto domain.CreateMasterDTO) (int64, error) {
	return 1, nil
}

func (r *fakeMasterRepo) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	return &domain.Master{ID: id, FirstName: "Мария", LastName: "Петрова", IsActive: true}, nil
}

func (r *fakeMasterRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Master, error) {
	return nil, errors.New("профиль мастера не найден")
}

func (r *fakeMasterRepo) Update(ctx context.Context, id int64, dto domain.UpdateMasterDTO) error {
	return nil
}

func (r *fakeMasterRepo) UpdatePhoto(ctx context.Context, id int64, photoURL string) error {
	return nil
}

func (r *fakeMasterRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *fakeMasterRepo) List(ctx context.Context, filter domain.MasterFilter) ([]domain.Master, error) {
	return nil, nil
}

func (r *fakeMasterRepo) GetWorkingHours(ctx context.Context, masterID int64) (domain.WorkingHours, error) {
	if r.hours == nil {
		return domain.WorkingHours{}, nil
	}
	return r.hours, nil
}

func (r *fakeMasterRepo) SetWorkingHours(ctx context.Context, masterID int64, hours domain.WorkingHours) error {
	r.hours = hours
	return nil
}

type fakeProcedureRepo struct {
	durationMin int
}

func (r *fakeProcedureRepo) Create(ctx context.Context, dto domain.CreateProcedureDTO) (int64, error) {
	return 1, nil
}

func (r *fakeProcedureRepo) GetByID(ctx context.Context, id int64) (*domain.Procedure, error) {
	duration := r.durationMin
	if duration == 0 {
		duration = 30
	}
	return &domain.Procedure{ID: id, Name: "Стрижка", DurationMin: duration, Price: 1500, IsActive: true}, nil
}

func (r *fakeProcedureRepo) Update(ctx context.Context, id int64, dto domain.UpdateProcedureDTO) error {
	return nil
}

func (r *fakeProcedureRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *fakeProcedureRepo) List(ctx context.Context, filter domain.ProcedureFilter) ([]domain.Procedure, error) {
	return nil, nil
}

func (r *fakeProcedureRepo) CountByFilter(ctx context.Context, filter domain.ProcedureFilter) (int, error) {
	return 0, nil
}

func newAppointmentService(repo *fakeAppointmentRepo) *AppointmentServiceImpl {
	return NewAppointmentService(repo, &fakeClientRepo{}, &fakeMasterRepo{}, &fakeProcedureRepo{}, zap.NewNop())
}

func TestAppointmentCreate_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newAppointmentService(repo)

	id, err := svc.Create(context.Background(), domain.CreateAppointmentDTO{
		MasterID:    1,
		ClientID:    1,
		ProcedureID: 1,
		Date:        "2026-09-07",
		Time:        "11:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero appointment id")
	}
}

func TestAppointmentCreate_OverlapConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newAppointmentService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateAppointmentDTO{
		MasterID: 1, ClientID: 1, ProcedureID: 1,
		Date: "2026-09-07", Time: "10:00",
	}); err != nil {
		t.Fatalf("unexpected error on first booking: %v", err)
	}

	// Та же процедура на 30 минут, интервалы [600,630) и [615,645) пересекаются.
	_, err := svc.Create(ctx, domain.CreateAppointmentDTO{
		MasterID: 1, ClientID: 2, ProcedureID: 1,
		Date: "2026-09-07", Time: "10:15",
	})
	if !errors.Is(err, domain.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Смежная граница конфликтом не является: [630, 660).
	if _, err := svc.Create(ctx, domain.CreateAppointmentDTO{
		MasterID: 1, ClientID: 2, ProcedureID: 1,
		Date: "2026-09-07", Time: "10:30",
	}); err != nil {
		t.Fatalf("boundary-adjacent booking must succeed, got %v", err)
	}
}

func TestAppointmentCreate_RaceOneWinner(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newAppointmentService(repo)

	dto := domain.CreateAppointmentDTO{
		MasterID: 1, ClientID: 1, ProcedureID: 1,
		Date: "2026-09-07", Time: "11:00",
	}

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), dto)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var committed, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			committed++
		case errors.Is(err, domain.ErrSlotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error kind: %v", err)
		}
	}

	if committed != 1 {
		t.Fatalf("expected exactly one committed booking, got %d", committed)
	}
	if conflicts != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
}

func TestAppointmentCreate_StoreFailure(t *testing.T) {
	repo := &fakeAppointmentRepo{failCreate: errors.New("connection refused")}
	svc := newAppointmentService(repo)

	_, err := svc.Create(context.Background(), domain.CreateAppointmentDTO{
		MasterID: 1, ClientID: 1, ProcedureID: 1,
		Date: "2026-09-07", Time: "11:00",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrSlotTaken) {
		t.Fatal("infrastructure failure must not be reported as slot conflict")
	}
}

func TestAppointmentCreate_BadInput(t *testing.T) {
	svc := newAppointmentService(&fakeAppointmentRepo{})

	if _, err := svc.Create(context.Background(), domain.CreateAppointmentDTO{
		MasterID: 1, ClientID: 1, ProcedureID: 1,
		Date: "07.09.2026", Time: "11:00",
	}); err == nil {
		t.Fatal("expected error for bad date format")
	}

	if _, err := svc.Create(context.Background(), domain.CreateAppointmentDTO{
		MasterID: 1, ClientID: 1, ProcedureID: 1,
		Date: "2026-09-07", Time: "25:70",
	}); err == nil {
		t.Fatal("expected error for bad time format")
	}
}
