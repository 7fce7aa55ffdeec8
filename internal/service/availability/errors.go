package availability

import "fmt"

// CalendarResolutionError возвращается, когда пара (год, неделя) не превращается в даты
// Это ошибка клиента (4xx), повторять запрос бессмысленно
type CalendarResolutionError struct {
	Year int
	Week int
}

func (e *CalendarResolutionError) Error() string {
	return fmt.Sprintf("availability: cannot resolve week %d of year %d", e.Week, e.Year)
}
