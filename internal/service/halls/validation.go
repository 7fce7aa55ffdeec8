package halls

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/internal/service/pricing"
)

func validateHall(hall *domain.Hall) error {
	if strings.TrimSpace(hall.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if hall.BasePrice < 0 {
		return fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	if hall.PrepaymentPercent < 0 || hall.PrepaymentPercent > domain.MaxPrepaymentPercent {
		return fmt.Errorf("%w: prepayment percent must be in [0, %d]", ErrInvalidInput, domain.MaxPrepaymentPercent)
	}
	return validateRules(hall.Prices)
}

// validateRules проверяет правила до сохранения, чтобы битые данные не доходили до расчета цены
func validateRules(rules []domain.PriceRule) error {
	if len(rules) > domain.MaxPriceRules {
		return fmt.Errorf("%w: too many price rules (max %d)", ErrInvalidPriceRule, domain.MaxPriceRules)
	}

	for i := range rules {
		rule := &rules[i]

		if !rule.Comparison.IsKnown() {
			return fmt.Errorf("%w: rule #%d: unknown comparison %q", ErrInvalidPriceRule, i, rule.Comparison)
		}
		if rule.FromLength < domain.MinReservationLength || rule.FromLength > domain.MaxReservationLength {
			return fmt.Errorf("%w: rule #%d: fromLength must be in [%d, %d]",
				ErrInvalidPriceRule, i, domain.MinReservationLength, domain.MaxReservationLength)
		}
		if rule.ScheduleMask != nil && *rule.ScheduleMask > domain.AllDays {
			return fmt.Errorf("%w: rule #%d: schedule mask must fit 7 bits", ErrInvalidPriceRule, i)
		}
		if rule.Price < 0 {
			return fmt.Errorf("%w: rule #%d: price must not be negative", ErrInvalidPriceRule, i)
		}
		if (rule.TimeFrom == nil) != (rule.TimeTo == nil) {
			return fmt.Errorf("%w: rule #%d: timeFrom and timeTo must be set together", ErrInvalidPriceRule, i)
		}
		if err := pricing.ValidateRule(rule); err != nil {
			return fmt.Errorf("%w: rule #%d: %v", ErrInvalidPriceRule, i, err)
		}
	}

	return nil
}
