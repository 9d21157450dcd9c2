package availability

import "fmt"

// Granularity — шаг сетки слотов в минутах, системная константа.
const Granularity = 15

// Window — рабочее окно дня в минутах от полуночи, полуоткрытый смысл не
// нужен: Start и End — границы рабочего времени, Start < End.
type Window struct {
	Start int
	End   int
}

// Busy — занятый интервал [StartMin, StartMin+DurationMin).
type Busy struct {
	StartMin    int
	DurationMin int
}

type Slot struct {
	Time      int    `json:"time"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// Slots строит упорядоченную сетку слотов для окна window с шагом step.
// Кандидат на время t создаётся только если услуга длительностью duration
// помещается до закрытия (t+duration <= window.End). Слот недоступен, если
// его интервал пересекается с любым занятым интервалом; интервалы
// полуоткрытые, поэтому касание границ пересечением не считается.
//
// window == nil означает выходной — результат пустой, это нормальный
// исход, а не ошибка. Некорректные duration или step — ошибка
// программиста, функция паникует.
//
// Функция чистая: без побочных эффектов и скрытого состояния, повторный
// вызов с теми же входами даёт тот же результат.
func Slots(window *Window, duration, step int, busy []Busy) []Slot {
	if duration <= 0 {
		panic(fmt.Sprintf("availability: некорректная длительность услуги %d", duration))
	}
	if step <= 0 {
		panic(fmt.Sprintf("availability: некорректный шаг сетки %d", step))
	}

	slots := make([]Slot, 0)
	if window == nil {
		return slots
	}

	for t := window.Start; t+duration <= window.End; t += step {
		slots = append(slots, Slot{
			Time:      t,
			Label:     FormatMinutes(t),
			Available: !overlapsAny(t, t+duration, busy),
		})
	}

	return slots
}

// Available оставляет только свободные слоты, сохраняя порядок.
func Available(slots []Slot) []Slot {
	free := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			free = append(free, s)
		}
	}
	return free
}

func overlapsAny(start, end int, busy []Busy) bool {
	for _, b := range busy {
		// [start,end) пересекается с [b.StartMin, b.StartMin+b.DurationMin)
		if start < b.StartMin+b.DurationMin && b.StartMin < end {
			return true
		}
	}
	return false
}

// FormatMinutes переводит минуты от полуночи в строку "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseMinutes разбирает строку "HH:MM" в минуты от полуночи.
func ParseMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("неверный формат времени %q, ожидается HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("время %q вне диапазона суток", s)
	}
	return h*60 + m, nil
}
