package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/ptr"
	"github.com/m04kA/SMC-HallBookingService/pkg/types"
)

// at возвращает unix-время в UTC
func at(year int, month time.Month, day, hour, minute int) int64 {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC).Unix()
}

// среда
var wednesday5pm = at(2024, time.March, 6, 17, 0)

func TestEngine_NoRules(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{BasePrice: 1000}

	tests := []struct {
		name   string
		length int
		want   int64
	}{
		{name: "hours are integer-divided", length: 90, want: 1000},
		{name: "less than an hour is free", length: 59, want: 0},
		{name: "whole day", length: 1440, want: 24000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Price(hall, []domain.Reservation{{StartAt: wednesday5pm, Length: tt.length}}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_FixedRule(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{{
			Comparison: domain.ComparisonGreaterOrEqual,
			FromLength: 60,
			Type:       domain.PriceTypeFixed,
			Price:      5000,
		}},
	}

	for _, length := range []int{60, 180, 600} {
		got, err := engine.Price(hall, []domain.Reservation{{StartAt: wednesday5pm, Length: length}}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), got, "length %d", length)
	}
}

func TestEngine_TimeWindowSlicing(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{{
			Comparison: domain.ComparisonGreaterOrEqual,
			FromLength: 0,
			Type:       domain.PriceTypePerHour,
			TimeFrom:   ptr.Ptr("18:00"),
			TimeTo:     ptr.Ptr("00:00"),
			Price:      2000,
		}},
	}

	tests := []struct {
		name    string
		startAt int64
		length  int
		want    int64
	}{
		{
			name:    "one hour before the window, two inside",
			startAt: wednesday5pm, length: 180,
			want: 1000*1 + 2000*2,
		},
		{
			name:    "entirely inside the window up to midnight",
			startAt: at(2024, time.March, 6, 21, 0), length: 180,
			want: 2000 * 3,
		},
		{
			name:    "entirely before the window",
			startAt: at(2024, time.March, 6, 9, 0), length: 120,
			want: 1000 * 2,
		},
		{
			name:    "half an hour inside",
			startAt: at(2024, time.March, 6, 17, 0), length: 90,
			want: 1000 + 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Price(hall, []domain.Reservation{{StartAt: tt.startAt, Length: tt.length}}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_PerHourWithoutWindow(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{{
			Comparison: domain.ComparisonGreaterOrEqual,
			FromLength: 60,
			Type:       domain.PriceTypePerHour,
			Price:      1500,
		}},
	}

	got, err := engine.Price(hall, []domain.Reservation{{StartAt: wednesday5pm, Length: 150}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3750), got)
}

func TestEngine_LengthPredicateFallback(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{{
			Comparison: domain.ComparisonGreater,
			FromLength: 120,
			Type:       domain.PriceTypeFixed,
			Price:      9999,
		}},
	}

	// фактические часы дробные, в отличие от ветки без правил
	got, err := engine.Price(hall, []domain.Reservation{{StartAt: wednesday5pm, Length: 90}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), got)

	got, err = engine.Price(hall, []domain.Reservation{{StartAt: wednesday5pm, Length: 121}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(9999), got)
}

func TestEngine_FractionalHoursSumWithoutLoss(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{{
			Comparison: domain.ComparisonGreater,
			FromLength: domain.MinutesPerDay,
			Type:       domain.PriceTypeFixed,
			Price:      1,
		}},
	}

	tests := []struct {
		name   string
		count  int
		length int
		want   int64
	}{
		{name: "six 10 minute reservations", count: 6, length: 10, want: 1000},
		{name: "twelve 70 minute reservations", count: 12, length: 70, want: 14000},
		{name: "three 20 minute reservations", count: 3, length: 20, want: 1000},
		{name: "truncated once at the end", count: 1, length: 1, want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservations := make([]domain.Reservation, 0, tt.count)
			for i := 0; i < tt.count; i++ {
				reservations = append(reservations, domain.Reservation{
					StartAt: wednesday5pm + int64(i)*2*3600,
					Length:  tt.length,
				})
			}

			got, err := engine.Price(hall, reservations, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_TimeWindowSlicingWithSeconds(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{{
			Comparison: domain.ComparisonGreaterOrEqual,
			Type:       domain.PriceTypePerHour,
			TimeFrom:   ptr.Ptr("18:00"),
			TimeTo:     ptr.Ptr("19:00"),
			Price:      2000,
		}},
	}

	// 17:30:30 - 18:30:30: 29.5 минут по базовой цене, 30.5 минут по цене правила
	got, err := engine.Price(hall, []domain.Reservation{{StartAt: at(2024, time.March, 6, 17, 30) + 30, Length: 60}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1508), got)
}

func TestEngine_UnknownComparisonFallsBackToGreaterOrEqual(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{{
			Comparison: domain.Comparison("=>"),
			FromLength: 120,
			Type:       domain.PriceTypeFixed,
			Price:      4000,
		}},
	}

	got, err := engine.Price(hall, []domain.Reservation{{StartAt: wednesday5pm, Length: 120}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), got)
}

func TestEngine_ScheduleMask(t *testing.T) {
	engine := NewEngine(time.UTC)
	weekdays := domain.ScheduleMask(0b0011111)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{{
			Comparison:   domain.ComparisonGreaterOrEqual,
			FromLength:   0,
			ScheduleMask: &weekdays,
			Type:         domain.PriceTypePerHour,
			Price:        3000,
		}},
	}

	saturday := at(2024, time.March, 9, 10, 0)
	got, err := engine.Price(hall, []domain.Reservation{{StartAt: saturday, Length: 120}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), got, "excluded weekday falls back to base price")

	got, err = engine.Price(hall, []domain.Reservation{{StartAt: wednesday5pm, Length: 120}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), got)
}

func TestEngine_RulesAreAdditive(t *testing.T) {
	engine := NewEngine(time.UTC)
	fixed := domain.PriceRule{
		Comparison: domain.ComparisonGreaterOrEqual,
		FromLength: 60,
		Type:       domain.PriceTypeFixed,
		Price:      5000,
	}
	perHour := domain.PriceRule{
		Comparison: domain.ComparisonGreaterOrEqual,
		FromLength: 60,
		Type:       domain.PriceTypePerHour,
		Price:      2000,
	}
	reservation := []domain.Reservation{{StartAt: wednesday5pm, Length: 120}}

	fixedOnly, err := engine.Price(&domain.Hall{BasePrice: 1000, Prices: []domain.PriceRule{fixed}}, reservation, nil)
	require.NoError(t, err)
	perHourOnly, err := engine.Price(&domain.Hall{BasePrice: 1000, Prices: []domain.PriceRule{perHour}}, reservation, nil)
	require.NoError(t, err)
	both, err := engine.Price(&domain.Hall{BasePrice: 1000, Prices: []domain.PriceRule{fixed, perHour}}, reservation, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(5000), fixedOnly)
	assert.Equal(t, int64(4000), perHourOnly)
	assert.Equal(t, fixedOnly+perHourOnly, both)
}

func TestEngine_FailedPredicatesDoubleCountBasePrice(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{
			{Comparison: domain.ComparisonGreater, FromLength: 600, Type: domain.PriceTypeFixed, Price: 100},
			{Comparison: domain.ComparisonGreater, FromLength: 600, Type: domain.PriceTypeFixed, Price: 100},
		},
	}

	got, err := engine.Price(hall, []domain.Reservation{{StartAt: wednesday5pm, Length: 60}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), got)
}

func TestEngine_ServiceFilter(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{
			{Comparison: domain.ComparisonGreaterOrEqual, Type: domain.PriceTypeFixed, Price: 3000, ServiceIDs: []int64{7}},
			{Comparison: domain.ComparisonGreaterOrEqual, Type: domain.PriceTypeFixed, Price: 500},
		},
	}
	reservation := []domain.Reservation{{StartAt: wednesday5pm, Length: 60}}

	got, err := engine.Price(hall, reservation, []int64{7})
	require.NoError(t, err)
	assert.Equal(t, int64(3500), got)

	got, err = engine.Price(hall, reservation, []int64{3})
	require.NoError(t, err)
	assert.Equal(t, int64(500), got)
}

func TestEngine_MultipleReservationsAreSummed(t *testing.T) {
	engine := NewEngine(time.UTC)
	hall := &domain.Hall{BasePrice: 1000}

	got, err := engine.Price(hall, []domain.Reservation{
		{StartAt: wednesday5pm, Length: 60},
		{StartAt: at(2024, time.March, 7, 10, 0), Length: 120},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), got)
}

func TestEngine_InvalidRule(t *testing.T) {
	engine := NewEngine(time.UTC)
	reservation := []domain.Reservation{{StartAt: wednesday5pm, Length: 60}}

	tests := []struct {
		name      string
		rule      domain.PriceRule
		wantField string
		wantErr   error
	}{
		{
			name:      "malformed time_from",
			rule:      domain.PriceRule{ID: 4, Type: domain.PriceTypePerHour, TimeFrom: ptr.Ptr("25:00"), TimeTo: ptr.Ptr("00:00")},
			wantField: "time_from",
			wantErr:   types.ErrInvalidTimeString,
		},
		{
			name:      "malformed time_to",
			rule:      domain.PriceRule{ID: 4, Type: domain.PriceTypePerHour, TimeFrom: ptr.Ptr("18:00"), TimeTo: ptr.Ptr("late")},
			wantField: "time_to",
			wantErr:   types.ErrInvalidTimeString,
		},
		{
			name:      "unknown type",
			rule:      domain.PriceRule{ID: 4, Type: domain.PriceType("per_minute")},
			wantField: "type",
			wantErr:   ErrUnknownPriceType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hall := &domain.Hall{BasePrice: 1000, Prices: []domain.PriceRule{tt.rule}}

			_, err := engine.Price(hall, reservation, nil)
			require.Error(t, err)

			var ruleErr *InvalidPriceRuleError
			require.True(t, errors.As(err, &ruleErr))
			assert.Equal(t, int64(4), ruleErr.RuleID)
			assert.Equal(t, tt.wantField, ruleErr.Field)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEngine_UsesServerLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	engine := NewEngine(loc)
	hall := &domain.Hall{
		BasePrice: 1000,
		Prices: []domain.PriceRule{{
			Comparison: domain.ComparisonGreaterOrEqual,
			Type:       domain.PriceTypePerHour,
			TimeFrom:   ptr.Ptr("18:00"),
			TimeTo:     ptr.Ptr("00:00"),
			Price:      2000,
		}},
	}

	// 15:00 UTC = 18:00 UTC+3
	got, err := engine.Price(hall, []domain.Reservation{{StartAt: at(2024, time.March, 6, 15, 0), Length: 60}}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), got)
}
