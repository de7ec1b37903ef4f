package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flegias94/degree-project/pkg/model"
)

func TestGeneratePairsSubgroups(t *testing.T) {
	// 30 students in 2 subgroups, a lab room big enough for a pair:
	// one whole-cohort lecture plus one paired lab session.
	cohort := &model.Cohort{Specialization: "IE", Year: 1, Students: 30, Groups: 1, Subgroups: 2}
	course := &model.Course{
		CohortKey:     "IE 1",
		Name:          "Databases",
		PracticeKind:  model.KindLab,
		LectureHours:  2,
		PracticeHours: 2,
	}
	rooms := []*model.Room{
		{ID: 1, Label: "A1", Capacity: 40, Purpose: model.KindLecture},
		{ID: 2, Label: "L1", Capacity: 32, Purpose: model.KindLab},
	}

	requests := Generate(course, cohort, rooms)
	require.Len(t, requests, 2)

	assert.Equal(t, model.KindLecture, requests[0].Kind)
	assert.Equal(t, 30, requests[0].Size)
	assert.Empty(t, requests[0].Subgroup)

	assert.Equal(t, model.KindLab, requests[1].Kind)
	assert.Equal(t, 30, requests[1].Size)
	assert.Equal(t, "sgr:1, sgr:2", requests[1].Subgroup)
}

func TestGenerateFallsBackToSingleSubgroups(t *testing.T) {
	cohort := &model.Cohort{Specialization: "IE", Year: 1, Students: 30, Groups: 1, Subgroups: 2}
	course := &model.Course{
		CohortKey:     "IE 1",
		Name:          "Databases",
		PracticeKind:  model.KindLab,
		LectureHours:  0,
		PracticeHours: 2,
	}
	// The only lab room seats 16 < pair size 30.
	rooms := []*model.Room{
		{ID: 2, Label: "L1", Capacity: 16, Purpose: model.KindLab},
	}

	requests := Generate(course, cohort, rooms)
	require.Len(t, requests, 2)
	for i, req := range requests {
		assert.Equal(t, 15, req.Size)
		assert.Equal(t, []string{"sgr:1", "sgr:2"}[i], req.Subgroup)
	}
}

func TestGenerateOddSubgroupCount(t *testing.T) {
	// 3 subgroups pair as (1,2) with 3 left single; 4 practice hours mean
	// 2 sessions per grouping, so 4 requests and no lectures.
	cohort := &model.Cohort{Specialization: "CS", Year: 2, Students: 30, Groups: 1, Subgroups: 3}
	course := &model.Course{
		CohortKey:     "CS 2",
		Name:          "Networking",
		PracticeKind:  model.KindSeminar,
		LectureHours:  0,
		PracticeHours: 4,
	}
	rooms := []*model.Room{
		{ID: 3, Label: "S1", Capacity: 25, Purpose: model.KindSeminar},
	}

	requests := Generate(course, cohort, rooms)
	require.Len(t, requests, 4)

	assert.Equal(t, "sgr:1, sgr:2", requests[0].Subgroup)
	assert.Equal(t, 20, requests[0].Size)
	assert.Equal(t, "sgr:1, sgr:2", requests[1].Subgroup)
	assert.Equal(t, "sgr:3", requests[2].Subgroup)
	assert.Equal(t, 10, requests[2].Size)
	assert.Equal(t, "sgr:3", requests[3].Subgroup)
}

func TestGenerateOddHourCounts(t *testing.T) {
	cohort := &model.Cohort{Specialization: "IE", Year: 1, Students: 20, Groups: 1, Subgroups: 2}
	course := &model.Course{
		CohortKey:     "IE 1",
		Name:          "Ethics",
		PracticeKind:  model.KindSeminar,
		LectureHours:  3,
		PracticeHours: 1,
	}
	rooms := []*model.Room{
		{ID: 1, Label: "A1", Capacity: 40, Purpose: model.KindLecture},
		{ID: 3, Label: "S1", Capacity: 25, Purpose: model.KindSeminar},
	}

	requests := Generate(course, cohort, rooms)
	// ceil(3/2)=2 lectures, ceil(1/2)=1 paired seminar.
	require.Len(t, requests, 3)
	assert.Equal(t, model.KindLecture, requests[0].Kind)
	assert.Equal(t, model.KindLecture, requests[1].Kind)
	assert.Equal(t, model.KindSeminar, requests[2].Kind)
}

func TestGenerateIsDeterministic(t *testing.T) {
	cohort := &model.Cohort{Specialization: "IE", Year: 1, Students: 30, Groups: 1, Subgroups: 3}
	course := &model.Course{
		CohortKey:     "IE 1",
		Name:          "Databases",
		PracticeKind:  model.KindLab,
		LectureHours:  4,
		PracticeHours: 4,
	}
	rooms := []*model.Room{
		{ID: 1, Label: "A1", Capacity: 40, Purpose: model.KindLecture},
		{ID: 2, Label: "L1", Capacity: 32, Purpose: model.KindLab},
	}

	first := Generate(course, cohort, rooms)
	second := Generate(course, cohort, rooms)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, *first[i], *second[i], "request %d", i)
	}
}
