package availability

import (
	"reflect"
	"testing"
)

func TestSlots_WorkingDayGrid(t *testing.T) {
	// 09:00-18:00, шаг 15, услуга 30 минут.
	window := &Window{Start: 9 * 60, End: 18 * 60}

	slots := Slots(window, 30, Granularity, nil)
	if len(slots) == 0 {
		t.Fatal("expected non-empty slot grid")
	}

	first := slots[0]
	if first.Time != 9*60 || first.Label != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", first.Label)
	}

	last := slots[len(slots)-1]
	// 17:45 исключён: 17:45+30 = 18:15 > 18:00.
	if last.Time != 17*60+30 || last.Label != "17:30" {
		t.Fatalf("expected last slot 17:30, got %s", last.Label)
	}

	for _, s := range slots {
		if s.Time+30 > window.End {
			t.Fatalf("slot %s overflows closing time", s.Label)
		}
		if !s.Available {
			t.Fatalf("slot %s unexpectedly busy on empty day", s.Label)
		}
	}
}

func TestSlots_ClosedDay(t *testing.T) {
	slots := Slots(nil, 30, Granularity, nil)
	if len(slots) != 0 {
		t.Fatalf("expected empty result for closed day, got %d slots", len(slots))
	}
}

func TestSlots_OverlapMarking(t *testing.T) {
	window := &Window{Start: 9 * 60, End: 18 * 60}
	// Запись 10:00 на 45 минут занимает [600, 645).
	busy := []Busy{{StartMin: 600, DurationMin: 45}}

	slots := Slots(window, 30, Granularity, busy)

	byTime := make(map[int]Slot, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s
	}

	// 10:15 на 30 минут — [615, 645), пересекается: 615 < 645 и 645 > 600.
	if s := byTime[615]; s.Available {
		t.Fatal("expected 10:15 to be busy")
	}
	// 10:45 на 30 минут — [645, 675), смежная граница пересечением не считается.
	if s := byTime[645]; !s.Available {
		t.Fatal("expected 10:45 to be available")
	}
	// Слот, начинающийся внутри занятого интервала.
	if s := byTime[600]; s.Available {
		t.Fatal("expected 10:00 to be busy")
	}
	// Слот, заканчивающийся ровно к началу занятого интервала.
	if s := byTime[570]; !s.Available {
		t.Fatal("expected 09:30 to be available")
	}
	// Слот, заходящий хвостом в занятый интервал.
	if s := byTime[585]; s.Available {
		t.Fatal("expected 09:45 to be busy")
	}
}

func TestSlots_Idempotent(t *testing.T) {
	window := &Window{Start: 10 * 60, End: 14 * 60}
	busy := []Busy{{StartMin: 11 * 60, DurationMin: 60}}

	a := Slots(window, 45, Granularity, busy)
	b := Slots(window, 45, Granularity, busy)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical output for identical input")
	}
}

func TestSlots_ServiceLongerThanWindow(t *testing.T) {
	window := &Window{Start: 9 * 60, End: 10 * 60}

	slots := Slots(window, 90, Granularity, nil)
	if len(slots) != 0 {
		t.Fatalf("expected no slots when service does not fit, got %d", len(slots))
	}
}

func TestSlots_InvalidInputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-positive duration")
		}
	}()
	Slots(&Window{Start: 0, End: 60}, 0, Granularity, nil)
}

func TestAvailable_FiltersBusy(t *testing.T) {
	window := &Window{Start: 9 * 60, End: 11 * 60}
	busy := []Busy{{StartMin: 9 * 60, DurationMin: 60}}

	free := Available(Slots(window, 30, 30, busy))
	if len(free) != 2 {
		t.Fatalf("expected 2 free slots, got %d", len(free))
	}
	if free[0].Label != "10:00" || free[1].Label != "10:30" {
		t.Fatalf("unexpected free slots %s, %s", free[0].Label, free[1].Label)
	}
}

func TestParseMinutes(t *testing.T) {
	min, err := ParseMinutes("17:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 17*60+30 {
		t.Fatalf("expected 1050, got %d", min)
	}

	if _, err := ParseMinutes("25:00"); err == nil {
		t.Fatal("expected error for hour out of range")
	}
	if FormatMinutes(min) != "17:30" {
		t.Fatalf("expected 17:30, got %s", FormatMinutes(min))
	}
}
