package domain

import "time"

// PauseCard is a named permission to take a break outside the normal flow,
// limited to DailyQuota uses per calendar day. The quota counts uses, not
// minutes.
type PauseCard struct {
	ID         string
	Name       string
	DailyQuota int
	IsJoker    bool
	CreatedAt  time.Time
}

// PauseCardUse records one successful consumption of a card. Immutable
// after creation; removed only by day-reset operations.
type PauseCardUse struct {
	ID          string
	PauseCardID string
	Date        string
	SessionID   string
	UsedAt      time.Time
}

// PauseCardPatch carries a partial card update. Nil fields are left
// untouched.
type PauseCardPatch struct {
	Name       *string
	DailyQuota *int
	IsJoker    *bool
}

// Apply copies the set fields of the patch onto the card.
func (p PauseCardPatch) Apply(c *PauseCard) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.DailyQuota != nil {
		c.DailyQuota = *p.DailyQuota
	}
	if p.IsJoker != nil {
		c.IsJoker = *p.IsJoker
	}
}

// RemainingUses returns the uses left today given a same-day use count.
func (c *PauseCard) RemainingUses(usesToday int) int {
	remaining := c.DailyQuota - usesToday
	if remaining < 0 {
		return 0
	}
	return remaining
}
