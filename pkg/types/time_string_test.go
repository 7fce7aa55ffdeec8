package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    TimeString
		wantErr bool
	}{
		{name: "valid", in: "18:00", want: "18:00"},
		{name: "midnight", in: "00:00", want: Midnight},
		{name: "single digit hour", in: "9:30", want: "09:30"},
		{name: "hour overflow", in: "24:00", wantErr: true},
		{name: "minute overflow", in: "10:60", wantErr: true},
		{name: "garbage", in: "evening", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.Equal(t, 18*60+30, TimeString("18:30").Minutes())
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("23:59").IsAfter("00:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2024, time.March, 5, 13, 45, 0, 0, time.UTC)
	got := TimeString("18:15").OnDate(date)
	assert.Equal(t, time.Date(2024, time.March, 5, 18, 15, 0, 0, time.UTC), got)
}
