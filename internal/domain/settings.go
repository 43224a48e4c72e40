package domain

import "time"

// Settings is the singleton preferences record.
type Settings struct {
	ID                   int
	Dayparts             []Daypart
	DefaultFocusMinutes  int
	DefaultBreakMinutes  int
	NotificationsEnabled bool
	SoundEnabled         bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SettingsUpdate is a full replacement of the mutable settings fields.
type SettingsUpdate struct {
	Dayparts             []Daypart
	DefaultFocusMinutes  int
	DefaultBreakMinutes  int
	NotificationsEnabled bool
	SoundEnabled         bool
}

// DefaultDayparts returns the seeded part-of-day windows.
func DefaultDayparts() []Daypart {
	return []Daypart{
		{Name: "Matin", Start: "09:00", End: "12:00"},
		{Name: "Apres-midi", Start: "13:00", End: "17:00"},
		{Name: "Soir", Start: "21:30", End: "00:00"},
	}
}

// DefaultPauseCards returns the four cards seeded on first setup.
func DefaultPauseCards() []PauseCard {
	return []PauseCard{
		{Name: "Cafe", DailyQuota: 2},
		{Name: "Toilettes", DailyQuota: 2},
		{Name: "Etirements", DailyQuota: 2},
		{Name: "Joker", DailyQuota: 1, IsJoker: true},
	}
}

const (
	DefaultFocusMinutes = 45
	DefaultBreakMinutes = 5
)
