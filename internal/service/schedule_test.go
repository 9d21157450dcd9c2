package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"salon/internal/availability"
	"salon/internal/domain"
)

func newScheduleService(masterRepo *fakeMasterRepo, apptRepo *fakeAppointmentRepo, durationMin int) *ScheduleServiceImpl {
	return NewScheduleService(masterRepo, &fakeProcedureRepo{durationMin: durationMin}, apptRepo, zap.NewNop())
}

func TestGetSlots_ClosedDay(t *testing.T) {
	// 2026-09-07 — понедельник; график задан только на вторник.
	masterRepo := &fakeMasterRepo{hours: domain.WorkingHours{
		int(time.Tuesday): {Start: 540, End: 1080},
	}}
	svc := newScheduleService(masterRepo, &fakeAppointmentRepo{}, 30)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	slots, err := svc.GetSlots(context.Background(), 1, 1, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty grid on a day off, got %d slots", len(slots))
	}
}

func TestGetSlots_MarksBookedIntervals(t *testing.T) {
	masterRepo := &fakeMasterRepo{hours: domain.WorkingHours{
		int(time.Monday): {Start: 540, End: 1080}, // 09:00–18:00
	}}
	apptRepo := &fakeAppointmentRepo{}
	svc := newScheduleService(masterRepo, apptRepo, 30)
	ctx := context.Background()

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	if _, err := apptRepo.Create(ctx, domain.Appointment{
		MasterID: 1, ClientID: 1, ProcedureID: 1,
		Date: date, StartMin: 600, DurationMin: 45, // 10:00–10:45
	}); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	slots, err := svc.GetSlots(ctx, 1, 1, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected non-empty grid")
	}

	byTime := make(map[int]availability.Slot, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot
	}

	// Процедура 30 минут: слоты, чей интервал задевает [600, 645), заняты.
	for _, tc := range []struct {
		timeMin   int
		available bool
	}{
		{570, true},  // [570, 600) заканчивается ровно к началу брони
		{585, false}, // [585, 615) задевает бронь
		{600, false},
		{630, false},
		{645, true}, // [645, 675) начинается ровно на границе
	} {
		slot, ok := byTime[tc.timeMin]
		if !ok {
			t.Fatalf("slot %s missing from grid", availability.FormatMinutes(tc.timeMin))
		}
		if slot.Available != tc.available {
			t.Errorf("slot %s: available = %v, want %v", slot.Label, slot.Available, tc.available)
		}
	}

	// [540, 570) целиком до брони и должен быть свободен.
	if slot := byTime[540]; !slot.Available {
		t.Errorf("slot 09:00 must be available")
	}
}

func TestGetSlots_FreshOnEveryCall(t *testing.T) {
	masterRepo := &fakeMasterRepo{hours: domain.WorkingHours{
		int(time.Monday): {Start: 540, End: 720},
	}}
	apptRepo := &fakeAppointmentRepo{}
	svc := newScheduleService(masterRepo, apptRepo, 30)
	ctx := context.Background()

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	before, err := svc.GetSlots(ctx, 1, 1, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, slot := range before {
		if !slot.Available {
			t.Fatalf("expected all slots free before booking, %s is busy", slot.Label)
		}
	}

	if _, err := apptRepo.Create(ctx, domain.Appointment{
		MasterID: 1, ClientID: 1, ProcedureID: 1,
		Date: date, StartMin: 540, DurationMin: 30,
	}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	after, err := svc.GetSlots(ctx, 1, 1, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after[0].Available {
		t.Error("slot 09:00 must be busy after booking")
	}
}

func TestSetWorkingHours_Validation(t *testing.T) {
	masterRepo := &fakeMasterRepo{}
	svc := newScheduleService(masterRepo, &fakeAppointmentRepo{}, 30)
	ctx := context.Background()

	err := svc.SetWorkingHours(ctx, 1, domain.SetWorkingHoursDTO{
		Days: []domain.WorkingDayDTO{{Weekday: 1, Start: "18:00", End: "09:00"}},
	})
	if err == nil {
		t.Fatal("expected error when start is after end")
	}

	err = svc.SetWorkingHours(ctx, 1, domain.SetWorkingHoursDTO{
		Days: []domain.WorkingDayDTO{
			{Weekday: 1, Start: "09:00", End: "18:00"},
			{Weekday: 1, Start: "10:00", End: "19:00"},
		},
	})
	if err == nil {
		t.Fatal("expected error for duplicate weekday")
	}

	err = svc.SetWorkingHours(ctx, 1, domain.SetWorkingHoursDTO{
		Days: []domain.WorkingDayDTO{
			{Weekday: 1, Start: "09:00", End: "18:00"},
			{Weekday: 2, Start: "10:00", End: "20:00"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hours, err := svc.GetWorkingHours(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := hours[1]; got.Start != 540 || got.End != 1080 {
		t.Errorf("monday window = %+v, want 540–1080", got)
	}
}
