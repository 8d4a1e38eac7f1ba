package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutordesk/internal/model"
)

func wheel() []*model.PunishmentOption {
	return []*model.PunishmentOption{
		{ID: 1, Label: "Extra homework", Weight: 3},
		{ID: 2, Label: "Recite a poem", Weight: 1},
		{ID: 3, Label: "Retired option", Weight: 0},
		{ID: 4, Label: "Clean the whiteboard", Weight: 2},
	}
}

func TestTotalWeight(t *testing.T) {
	assert.Equal(t, 6, TotalWeight(wheel()))
	assert.Equal(t, 0, TotalWeight(nil))
	assert.Equal(t, 0, TotalWeight([]*model.PunishmentOption{{Weight: -5}}))
}

func TestPickWeightedCoversEveryRoll(t *testing.T) {
	options := wheel()
	total := TotalWeight(options)

	// Every roll in [0, total) must land on exactly one positive-weight
	// option, proportionally to its weight.
	hits := map[int64]int{}
	for roll := 0; roll < total; roll++ {
		picked := PickWeighted(options, roll)
		require.NotNil(t, picked, "roll %d", roll)
		assert.Greater(t, picked.Weight, 0)
		hits[picked.ID]++
	}

	assert.Equal(t, 3, hits[1])
	assert.Equal(t, 1, hits[2])
	assert.Zero(t, hits[3]) // zero weight never comes up
	assert.Equal(t, 2, hits[4])
}

func TestPickWeightedOutOfRange(t *testing.T) {
	assert.Nil(t, PickWeighted(wheel(), TotalWeight(wheel())))
	assert.Nil(t, PickWeighted(nil, 0))
}
