package timetable

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/Flegias94/degree-project/pkg/model"
)

// Generate expands a course's weekly hour load for one cohort into discrete
// session requests. Lecture requests come first, sized to the whole cohort.
// Practice requests follow, sized to a subgroup pair when any matching room
// can seat a pair, otherwise to single subgroups. Pure: the same inputs
// always yield the same requests in the same order.
func Generate(course *model.Course, cohort *model.Cohort, rooms []*model.Room) []*model.SessionRequest {
	var requests []*model.SessionRequest

	for i := 0; i < sessionsPerWeek(course.LectureHours); i++ {
		requests = append(requests, &model.SessionRequest{
			Course: course.Name,
			Kind:   model.KindLecture,
			Size:   cohort.Students,
		})
	}

	subgroups := cohort.SubgroupLabels()
	groupSize := cohort.SubgroupSize()
	pairSize := groupSize * 2
	canPair := lo.SomeBy(rooms, func(r *model.Room) bool {
		return r.CanHost(course.PracticeKind, pairSize)
	})

	if canPair {
		for _, pair := range lo.Chunk(subgroups, 2) {
			size := groupSize * len(pair)
			label := strings.Join(pair, ", ")
			for i := 0; i < sessionsPerWeek(course.PracticeHours); i++ {
				requests = append(requests, &model.SessionRequest{
					Course:   course.Name,
					Kind:     course.PracticeKind,
					Size:     size,
					Subgroup: label,
				})
			}
		}
	} else {
		for _, sgr := range subgroups {
			for i := 0; i < sessionsPerWeek(course.PracticeHours); i++ {
				requests = append(requests, &model.SessionRequest{
					Course:   course.Name,
					Kind:     course.PracticeKind,
					Size:     groupSize,
					Subgroup: sgr,
				})
			}
		}
	}

	return requests
}

// sessionsPerWeek converts weekly hours into two-hour block sessions.
func sessionsPerWeek(hours int) int {
	return int(math.Ceil(float64(hours) / 2.0))
}
