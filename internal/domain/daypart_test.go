package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"13:30", 810, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrValidation, "ParseClock(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseClock(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseClock(%q)", tc.in)
	}
}

func TestResolveDaypart_NonWrapping(t *testing.T) {
	dayparts := DefaultDayparts()

	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Matin", ResolveDaypart(dayparts, at), "window start is inclusive")

	at = time.Date(2026, 3, 10, 11, 59, 0, 0, time.UTC)
	assert.Equal(t, "Matin", ResolveDaypart(dayparts, at))

	at = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "Apres-midi", ResolveDaypart(dayparts, at))

	at = time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "Matin", ResolveDaypart(dayparts, at), "window end is exclusive; falls back to first")
}

func TestResolveDaypart_Wrapping(t *testing.T) {
	// "Soir" runs 21:30–00:00, wrapping past midnight.
	dayparts := DefaultDayparts()

	at := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, "Soir", ResolveDaypart(dayparts, at))

	at = time.Date(2026, 3, 10, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "Soir", ResolveDaypart(dayparts, at))

	at = time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Soir", ResolveDaypart(dayparts, at))
}

func TestResolveDaypart_FirstMatchWins(t *testing.T) {
	dayparts := []Daypart{
		{Name: "Early", Start: "08:00", End: "12:00"},
		{Name: "Overlap", Start: "10:00", End: "14:00"},
	}
	at := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, "Early", ResolveDaypart(dayparts, at))
}

func TestResolveDaypart_Fallback(t *testing.T) {
	dayparts := []Daypart{
		{Name: "Morning", Start: "09:00", End: "12:00"},
	}
	at := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "Morning", ResolveDaypart(dayparts, at), "no match falls back to first daypart")

	assert.Equal(t, "", ResolveDaypart(nil, at))
}

func TestCombineDateAndTime(t *testing.T) {
	got, err := CombineDateAndTime("2026-03-10", "13:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 13, 30, 0, 0, time.UTC), got)

	_, err = CombineDateAndTime("10/03/2026", "13:30")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CombineDateAndTime("2026-03-10", "25:00")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDateOf(t *testing.T) {
	at := time.Date(2026, 3, 10, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-10", DateOf(at))
}
