package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flegias94/degree-project/pkg/model"
)

func TestScore(t *testing.T) {
	assert.Equal(t, 5, Score(model.KindLecture, 8))
	assert.Equal(t, 1, Score(model.KindLecture, 18))
	assert.Equal(t, 0, Score(model.KindLab, 8))
	assert.Equal(t, 5, Score(model.KindLab, 10))
	assert.Equal(t, 5, Score(model.KindSeminar, 14))
	assert.Equal(t, 0, Score(model.KindSeminar, 7), "unlisted hours score zero")
}

func TestScoredSlotsOrdering(t *testing.T) {
	lecture := scoredSlots(model.KindLecture)
	require.Len(t, lecture, len(model.Weekdays)*len(model.HourBlocks))

	// 08:00 scores highest for lectures; ties keep weekday order.
	for i, day := range model.Weekdays {
		assert.Equal(t, day, lecture[i].day)
		assert.Equal(t, 8, lecture[i].hour)
	}
	// The score-3 band follows, again in weekday-then-hour order.
	assert.Equal(t, "Monday", lecture[5].day)
	assert.Equal(t, 10, lecture[5].hour)
	assert.Equal(t, "Monday", lecture[6].day)
	assert.Equal(t, 12, lecture[6].hour)

	practice := scoredSlots(model.KindLab)
	assert.Equal(t, "Monday", practice[0].day)
	assert.Equal(t, 10, practice[0].hour)
	// The 08:00 block is the least desirable practice slot.
	last := practice[len(practice)-1]
	assert.Equal(t, 8, last.hour)
}

func TestScoredSlotsReproducible(t *testing.T) {
	first := scoredSlots(model.KindSeminar)
	second := scoredSlots(model.KindSeminar)
	assert.Equal(t, first, second)
}
