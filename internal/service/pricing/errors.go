package pricing

import (
	"errors"
	"fmt"
)

// ErrUnknownPriceType возвращается для правила с неподдерживаемым типом
var ErrUnknownPriceType = errors.New("unknown price type")

// InvalidPriceRuleError некорректные данные правила цены (битое время, неизвестный тип)
// Правила заводит администратор, поэтому это ошибка целостности данных, а не клиента
type InvalidPriceRuleError struct {
	RuleID int64
	Field  string
	Err    error
}

func (e *InvalidPriceRuleError) Error() string {
	return fmt.Sprintf("pricing: invalid price rule id=%d, field %s: %v", e.RuleID, e.Field, e.Err)
}

func (e *InvalidPriceRuleError) Unwrap() error {
	return e.Err
}
