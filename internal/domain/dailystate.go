package domain

// DailyState is the per-date accrual record. PauseDueMinutes is the break
// time owed to the user: merges increase it, pause consumption decreases it
// (floored at zero), day resets zero it.
type DailyState struct {
	Date            string
	PauseDueMinutes int
}
