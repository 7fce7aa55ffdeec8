package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается, если строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

const timeLayout = "15:04"

// TimeString время суток в формате HH:MM (без даты и часового пояса)
type TimeString string

// Midnight начало суток
const Midnight TimeString = "00:00"

// NewTimeStringFromString парсит и валидирует строку формата HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// NewTimeString берет время суток из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// String возвращает строковое представление
func (ts TimeString) String() string {
	return string(ts)
}

// Minutes возвращает количество минут с начала суток
// Для невалидной строки возвращает 0
func (ts TimeString) Minutes() int {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// IsBefore true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.Minutes() < other.Minutes()
}

// IsAfter true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.Minutes() > other.Minutes()
}

// OnDate возвращает момент времени ts в указанную дату (в часовом поясе даты)
func (ts TimeString) OnDate(date time.Time) time.Time {
	m := ts.Minutes()
	y, mon, d := date.Date()
	return time.Date(y, mon, d, m/60, m%60, 0, 0, date.Location())
}
