package timetable

import (
	"sort"

	"github.com/Flegias94/degree-project/pkg/model"
)

// Fixed desirability weights per hour block. Lectures favor early hours,
// practice sessions favor mid-morning and midday and avoid the first block.
var (
	lectureWeights = map[int]int{
		8: 5, 10: 3, 12: 3, 14: 3, 16: 2, 18: 1, 20: 0,
	}
	practiceWeights = map[int]int{
		8: 0, 10: 5, 12: 5, 14: 5, 16: 3, 18: 1, 20: 0,
	}
)

// Score returns the desirability of starting a session of the given kind at
// the given hour. Unlisted hours score 0.
func Score(kind model.SessionKind, hour int) int {
	if kind == model.KindLecture {
		return lectureWeights[hour]
	}
	return practiceWeights[hour]
}

type slotCandidate struct {
	day   string
	slot  int
	hour  int
	score int
}

// scoredSlots enumerates every (weekday, hour block) pair and orders it by
// descending score. The sort is stable so ties keep the weekday-then-hour
// enumeration order, which makes allocation reproducible.
func scoredSlots(kind model.SessionKind) []slotCandidate {
	candidates := make([]slotCandidate, 0, len(model.Weekdays)*len(model.HourBlocks))
	for _, day := range model.Weekdays {
		for slot, hour := range model.HourBlocks {
			candidates = append(candidates, slotCandidate{
				day:   day,
				slot:  slot,
				hour:  hour,
				score: Score(kind, hour),
			})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	return candidates
}
