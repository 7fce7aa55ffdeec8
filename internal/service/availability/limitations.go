package availability

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Limitations вычисляет окна, недоступные для бронирования, для каждой даты недели
//
//   - сегодня: от полуночи до ближайшего полного часа после now
//     (прошедшие часы и текущий неполный час закрыты)
//   - прошлые даты и даты начиная с последнего дня maxRangeMonths-го месяца от now: весь день
//   - остальные даты: без ограничений
//
// Даты трактуются как календарные дни в часовом поясе now.
func Limitations(dates [7]time.Time, now time.Time, maxRangeMonths int) []domain.Window {
	windows := make([]domain.Window, 0, len(dates))
	for _, date := range dates {
		if w, ok := DayLimitation(date, now, maxRangeMonths); ok {
			windows = append(windows, w)
		}
	}
	return windows
}

// DayLimitation возвращает недоступное окно для одного календарного дня
// ok=false, если день полностью открыт для бронирования
func DayLimitation(date time.Time, now time.Time, maxRangeMonths int) (domain.Window, bool) {
	loc := now.Location()
	today := midnight(now, loc)
	futureDate := lastDayOfMonth(now, maxRangeMonths)
	day := midnight(date.In(loc), loc)

	var length int
	switch {
	case day.Equal(today):
		length = minutesUntilNextHour(day, now)
	case day.Before(today) || !day.Before(futureDate):
		length = domain.MinutesPerDay
	}

	if length <= 0 {
		return domain.Window{}, false
	}

	return domain.Window{StartAt: day.Unix(), Length: length}, true
}

// minutesUntilNextHour считает минуты от полуночи day до начала следующего часа после now
// В 23:xx результат равен 1440 (следующая полночь)
func minutesUntilNextHour(day, now time.Time) int {
	rounded := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location()).
		Add(time.Hour)

	days := 0
	if !sameDay(rounded, day) {
		days = 1
	}

	return days*domain.MinutesPerDay + rounded.Hour()*domain.MinutesPerHour + rounded.Minute()
}

// lastDayOfMonth возвращает полночь последнего дня месяца, отстоящего от now на months
func lastDayOfMonth(now time.Time, months int) time.Time {
	// нулевой день следующего месяца = последний день нужного
	return time.Date(now.Year(), now.Month()+time.Month(months)+1, 0, 0, 0, 0, 0, now.Location())
}

// midnight возвращает начало календарного дня t в часовом поясе loc
func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
