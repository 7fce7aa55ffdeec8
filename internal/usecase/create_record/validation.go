package create_record

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/internal/service/availability"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	if len(req.Reservations) == 0 {
		return fmt.Errorf("%w: at least one reservation is required", ErrInvalidInput)
	}

	if len(req.Reservations) > domain.MaxReservationsPerRecord {
		return fmt.Errorf("%w: too many reservations (max %d)", ErrInvalidInput, domain.MaxReservationsPerRecord)
	}

	for i, r := range req.Reservations {
		// пустая резервация в записи смысла не имеет
		if r.Length <= 0 || r.Length > domain.MaxReservationLength {
			return fmt.Errorf("%w: reservation #%d: length must be in (0, %d]",
				ErrInvalidInput, i, domain.MaxReservationLength)
		}
		if r.StartAt <= 0 {
			return fmt.Errorf("%w: reservation #%d: start_at must be positive", ErrInvalidInput, i)
		}
	}

	if err := validateNoSelfOverlap(req.Reservations); err != nil {
		return err
	}

	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment is longer than %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}

// validateNoSelfOverlap проверяет, что резервации одной записи не пересекаются
func validateNoSelfOverlap(reservations []domain.Reservation) error {
	sorted := make([]domain.Reservation, len(reservations))
	copy(sorted, reservations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartAt < sorted[j].StartAt })

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Overlaps(sorted[i]) {
			return fmt.Errorf("%w: reservations overlap each other", ErrInvalidInput)
		}
	}
	return nil
}

// validateLimitations проверяет резервации против окон недоступности всех затронутых дней
func validateLimitations(reservations []domain.Reservation, now time.Time, maxRangeMonths int) error {
	loc := now.Location()
	for _, r := range reservations {
		start := r.Start(loc)
		last := time.Unix(r.EndAt()-1, 0).In(loc)
		first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)

		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			window, ok := availability.DayLimitation(day, now, maxRangeMonths)
			if ok && window.Blocks(r) {
				return fmt.Errorf("%w: start_at=%d", ErrTimeNotAvailable, r.StartAt)
			}
		}
	}
	return nil
}

// validateNoConflicts проверяет пересечения с существующими резервациями зала
func validateNoConflicts(reservations, existing []domain.Reservation) error {
	for _, r := range reservations {
		for _, e := range existing {
			if r.Overlaps(e) {
				return fmt.Errorf("%w: start_at=%d", ErrReservationConflict, r.StartAt)
			}
		}
	}
	return nil
}

// searchRange границы поиска существующих резерваций
// Резервация длится не больше суток, поэтому начало сдвигается на сутки назад
func searchRange(reservations []domain.Reservation) (int64, int64) {
	from, to := reservations[0].StartAt, reservations[0].EndAt()
	for _, r := range reservations[1:] {
		if r.StartAt < from {
			from = r.StartAt
		}
		if r.EndAt() > to {
			to = r.EndAt()
		}
	}
	return from - int64(domain.MaxReservationLength)*60, to
}
