package pricing

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// Engine считает стоимость набора бронирований по правилам цены зала
// Не хранит состояния между вызовами, правила зала только читаются
type Engine struct {
	loc *time.Location
}

// NewEngine создает движок. loc - часовой пояс сервера, в котором считаются дни недели и окна времени
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{loc: loc}
}

// Price возвращает суммарную стоимость бронирований в минимальных единицах валюты
//
// Без правил каждое бронирование стоит base_price * целое число часов.
// Иначе для каждого бронирования суммируются результаты ВСЕХ правил, прошедших фильтр по услугам.
func (e *Engine) Price(hall *domain.Hall, reservations []domain.Reservation, serviceIDs []int64) (int64, error) {
	// суммы копятся в единицах цена*секунда, деление на час одно в самом конце
	var total int64

	for _, r := range reservations {
		if !hall.HasPriceRules() {
			total += hall.BasePrice * int64(r.Length/domain.MinutesPerHour) * secondsPerHour
			continue
		}

		// matches source semantics, likely unintended: правила складываются,
		// а не выбирается одно подходящее, поэтому base_price может учитываться несколько раз
		var amount int64
		for i := range hall.Prices {
			rule := &hall.Prices[i]
			if !rule.MatchesServices(serviceIDs) {
				continue
			}

			v, err := e.evaluateRule(rule, r, hall.BasePrice)
			if err != nil {
				return 0, err
			}
			amount += v
		}
		total += amount
	}

	return total / secondsPerHour, nil
}

// evaluateRule возвращает стоимость одного бронирования по одному правилу в единицах цена*секунда
// Если правило не подходит по длительности или дню недели - стоимость по базовой цене
func (e *Engine) evaluateRule(rule *domain.PriceRule, r domain.Reservation, basePrice int64) (int64, error) {
	if err := ValidateRule(rule); err != nil {
		return 0, err
	}

	seconds := int64(r.Length) * secondsPerMinute
	fallback := basePrice * seconds

	if !rule.Comparison.Compare(r.Length, rule.FromLength) {
		return fallback, nil
	}

	start := r.Start(e.loc)
	if rule.ScheduleMask != nil && !rule.ScheduleMask.Includes(domain.DayBit(isoWeekday(start))) {
		return fallback, nil
	}

	if rule.Type == domain.PriceTypeFixed {
		return rule.Price * secondsPerHour, nil
	}

	overlap := seconds
	if rule.HasTimeWindow() {
		overlap = overlapSeconds(start, start.Add(time.Duration(r.Length)*time.Minute), *rule.TimeFrom, *rule.TimeTo)
	}

	return rule.Price*overlap + basePrice*(seconds-overlap), nil
}

// overlapSeconds считает пересечение [start, end) с окном [from, to) в день начала бронирования
// to == 00:00 означает конец суток. Строки уже провалидированы
func overlapSeconds(start, end time.Time, from, to string) int64 {
	fromTS, _ := types.NewTimeStringFromString(from)
	toTS, _ := types.NewTimeStringFromString(to)

	windowStart := fromTS.OnDate(start)
	windowEnd := toTS.OnDate(start)
	if toTS == types.Midnight {
		windowEnd = windowEnd.AddDate(0, 0, 1)
	}

	lo := start
	if windowStart.After(lo) {
		lo = windowStart
	}
	hi := end
	if windowEnd.Before(hi) {
		hi = windowEnd
	}

	overlap := int64(hi.Sub(lo) / time.Second)
	if overlap < 0 {
		return 0
	}
	return overlap
}

// ValidateRule проверяет тип и строки времени правила
func ValidateRule(rule *domain.PriceRule) error {
	if !rule.Type.IsKnown() {
		return &InvalidPriceRuleError{RuleID: rule.ID, Field: "type", Err: ErrUnknownPriceType}
	}
	if rule.TimeFrom != nil {
		if _, err := types.NewTimeStringFromString(*rule.TimeFrom); err != nil {
			return &InvalidPriceRuleError{RuleID: rule.ID, Field: "time_from", Err: err}
		}
	}
	if rule.TimeTo != nil {
		if _, err := types.NewTimeStringFromString(*rule.TimeTo); err != nil {
			return &InvalidPriceRuleError{RuleID: rule.ID, Field: "time_to", Err: err}
		}
	}
	return nil
}

// isoWeekday возвращает день недели в нумерации ISO (пн=1 ... вс=7)
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
