package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPauseCard_RemainingUses(t *testing.T) {
	card := &PauseCard{Name: "Cafe", DailyQuota: 2}

	assert.Equal(t, 2, card.RemainingUses(0))
	assert.Equal(t, 1, card.RemainingUses(1))
	assert.Equal(t, 0, card.RemainingUses(2))
	assert.Equal(t, 0, card.RemainingUses(5), "over-consumption never goes negative")
}

func TestPauseCardPatch_Apply(t *testing.T) {
	card := &PauseCard{Name: "Cafe", DailyQuota: 2}

	name := "Thé"
	quota := 3
	joker := true
	patch := PauseCardPatch{Name: &name, DailyQuota: &quota, IsJoker: &joker}
	patch.Apply(card)

	assert.Equal(t, "Thé", card.Name)
	assert.Equal(t, 3, card.DailyQuota)
	assert.True(t, card.IsJoker)
}
