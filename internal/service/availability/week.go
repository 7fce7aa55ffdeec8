package availability

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

const (
	minISOYear = 1
	maxISOYear = 9999
)

// Week семь дат календарной недели (пн-вс) с нормализованными ISO годом и номером недели
type Week struct {
	Year  int
	Week  int
	Dates [7]time.Time // полночь каждого дня
}

// Start возвращает полночь понедельника
func (w Week) Start() time.Time {
	return w.Dates[0]
}

// End возвращает полночь понедельника следующей недели
func (w Week) End() time.Time {
	return w.Dates[6].AddDate(0, 0, 1)
}

// DateStrings возвращает даты в формате YYYY-MM-DD
func (w Week) DateStrings() []string {
	out := make([]string, len(w.Dates))
	for i, d := range w.Dates {
		out[i] = d.Format(domain.DateFormat)
	}
	return out
}

// ResolveWeek превращает год и номер ISO недели в семь дат в часовом поясе loc
//
// Отрицательные значения берутся по модулю. Неделя < 1 означает первую неделю
// предыдущего года, неделя >= 54 - первую неделю следующего. Неделя 53 в году,
// где её нет, переходит в первую неделю следующего года.
// Год и неделя в ответе вычисляются заново по воскресенью, а не копируются из запроса.
func ResolveWeek(year, week int, loc *time.Location) (Week, error) {
	year, week = abs(year), abs(week)

	switch {
	case week < 1:
		year--
		week = 1
	case week >= 54:
		year++
		week = 1
	}

	var result Week
	for day := 1; day <= 7; day++ {
		date, err := isoWeekDate(year, week, day, loc)
		if err != nil {
			return Week{}, err
		}
		result.Dates[day-1] = date
	}

	result.Year, result.Week = result.Dates[6].ISOWeek()
	return result, nil
}

// isoWeekDate возвращает дату YYYY-Www-d
// 4 января всегда принадлежит первой ISO неделе года
func isoWeekDate(year, week, day int, loc *time.Location) (time.Time, error) {
	if year < minISOYear || year > maxISOYear || week < 1 || week > 53 || day < 1 || day > 7 {
		return time.Time{}, &CalendarResolutionError{Year: year, Week: week}
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	monday := jan4.AddDate(0, 0, -(isoWeekday(jan4) - 1))
	return monday.AddDate(0, 0, (week-1)*7+(day-1)), nil
}

// isoWeekday возвращает день недели в нумерации ISO (пн=1 ... вс=7)
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
