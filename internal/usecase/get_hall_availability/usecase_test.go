package get_hall_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	settingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/setting"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeHallRepo struct {
	err error
}

func (f *fakeHallRepo) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Hall{ID: id, BasePrice: 1000}, nil
}

type fakeReservationRepo struct {
	reservations []domain.Reservation
	err          error
	gotStart     int64
	gotEnd       int64
}

func (f *fakeReservationRepo) FindByHallAndRange(ctx context.Context, hallID int64, startAt, endAt int64) ([]domain.Reservation, error) {
	f.gotStart, f.gotEnd = startAt, endAt
	return f.reservations, f.err
}

type fakeSettingRepo struct {
	setting *domain.Setting
	err     error
}

func (f *fakeSettingRepo) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.setting == nil {
		return nil, settingRepo.ErrSettingNotFound
	}
	return f.setting, nil
}

// среда 13 марта 2024, 10:20 UTC, ISO неделя 2024-W11
var wednesday = time.Date(2024, time.March, 13, 10, 20, 0, 0, time.UTC)

func newTestUseCase(halls *fakeHallRepo, res *fakeReservationRepo, settings *fakeSettingRepo, now time.Time) *UseCase {
	uc := NewUseCase(halls, res, settings, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_CurrentWeek(t *testing.T) {
	existing := []domain.Reservation{{StartAt: time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC).Unix(), Length: 120}}
	res := &fakeReservationRepo{reservations: existing}
	uc := newTestUseCase(&fakeHallRepo{}, res, &fakeSettingRepo{}, wednesday)

	resp, err := uc.Execute(context.Background(), &Request{HallID: 1, Year: 2024, Week: 11})
	require.NoError(t, err)

	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 11, resp.Week)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), resp.Dates[0])
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), resp.Dates[6])
	assert.Equal(t, existing, resp.Reservations)

	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC).Unix(), res.gotStart)
	assert.Equal(t, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC).Unix(), res.gotEnd)

	require.Len(t, resp.Limitations, 3)
	assert.Equal(t, domain.MinutesPerDay, resp.Limitations[0].Length)
	assert.Equal(t, domain.MinutesPerDay, resp.Limitations[1].Length)
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC).Unix(), resp.Limitations[2].StartAt)
	assert.Equal(t, 11*60, resp.Limitations[2].Length)
}

func TestExecute_FarWeekBlockedBySetting(t *testing.T) {
	// при глубине 1 месяц все даты начиная с 30 апреля закрыты
	uc := newTestUseCase(&fakeHallRepo{}, &fakeReservationRepo{}, &fakeSettingRepo{}, wednesday)

	resp, err := uc.Execute(context.Background(), &Request{HallID: 1, Year: 2024, Week: 20})
	require.NoError(t, err)
	require.Len(t, resp.Limitations, 7)
	for _, w := range resp.Limitations {
		assert.Equal(t, domain.MinutesPerDay, w.Length)
	}

	// при глубине 3 месяца та же неделя открыта
	settings := &fakeSettingRepo{setting: &domain.Setting{Key: domain.SettingCalendarMaxBookingRange, Value: "3"}}
	uc = newTestUseCase(&fakeHallRepo{}, &fakeReservationRepo{}, settings, wednesday)

	resp, err = uc.Execute(context.Background(), &Request{HallID: 1, Year: 2024, Week: 20})
	require.NoError(t, err)
	assert.Empty(t, resp.Limitations)
}

func TestExecute_WeekCarryOver(t *testing.T) {
	uc := newTestUseCase(&fakeHallRepo{}, &fakeReservationRepo{}, &fakeSettingRepo{}, wednesday)

	resp, err := uc.Execute(context.Background(), &Request{HallID: 1, Year: 2024, Week: 0})
	require.NoError(t, err)
	assert.Equal(t, 2023, resp.Year)
	assert.Equal(t, 1, resp.Week)
}

func TestExecute_Errors(t *testing.T) {
	dbErr := errors.New("connection reset")

	tests := []struct {
		name     string
		req      *Request
		halls    *fakeHallRepo
		res      *fakeReservationRepo
		settings *fakeSettingRepo
		wantErr  error
	}{
		{
			name:     "invalid hall id",
			req:      &Request{HallID: 0, Year: 2024, Week: 11},
			halls:    &fakeHallRepo{},
			res:      &fakeReservationRepo{},
			settings: &fakeSettingRepo{},
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "hall not found",
			req:      &Request{HallID: 5, Year: 2024, Week: 11},
			halls:    &fakeHallRepo{err: hallRepo.ErrHallNotFound},
			res:      &fakeReservationRepo{},
			settings: &fakeSettingRepo{},
			wantErr:  ErrHallNotFound,
		},
		{
			name:     "unresolvable year",
			req:      &Request{HallID: 5, Year: 10000, Week: 11},
			halls:    &fakeHallRepo{},
			res:      &fakeReservationRepo{},
			settings: &fakeSettingRepo{},
			wantErr:  ErrInvalidWeek,
		},
		{
			name:     "reservations failure",
			req:      &Request{HallID: 5, Year: 2024, Week: 11},
			halls:    &fakeHallRepo{},
			res:      &fakeReservationRepo{err: dbErr},
			settings: &fakeSettingRepo{},
			wantErr:  ErrInternal,
		},
		{
			name:     "settings failure",
			req:      &Request{HallID: 5, Year: 2024, Week: 11},
			halls:    &fakeHallRepo{},
			res:      &fakeReservationRepo{},
			settings: &fakeSettingRepo{err: dbErr},
			wantErr:  ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.halls, tt.res, tt.settings, wednesday)
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
