package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flegias94/degree-project/pkg/model"
)

func TestValidateCatalogueCollectsAllProblems(t *testing.T) {
	cohorts := []*model.Cohort{
		{Specialization: "IE", Year: 1, Students: 0, Groups: 1, Subgroups: 3},
	}
	courses := []*model.Course{
		{CohortKey: "CS 9", Name: "Ghost", PracticeKind: "gym"},
	}
	rooms := []*model.Room{
		{ID: 1, Label: "A1", Capacity: -5, Purpose: model.KindLecture},
	}

	err := ValidateCatalogue(cohorts, courses, rooms)
	require.Error(t, err)

	terr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, CodeCatalogueInvalid, terr.Code)
	assert.Contains(t, terr.Message, "student count")
	assert.Contains(t, terr.Message, "unknown cohort")
	assert.Contains(t, terr.Message, "practice kind")
	assert.Contains(t, terr.Message, "capacity")
}

func TestValidateCatalogueAcceptsGoodInput(t *testing.T) {
	cohorts, courses, rooms := testCatalogue()
	assert.NoError(t, ValidateCatalogue(cohorts, courses, rooms))
}

func TestVerifyFlagsDoubleBooking(t *testing.T) {
	room := &model.Room{ID: 1, Label: "A1", Capacity: 100, Purpose: model.KindLecture}

	gridA := model.NewScheduleGrid()
	gridA.PlaceSession("Monday", 0, &model.SessionRequest{Course: "Algebra", Kind: model.KindLecture, Size: 30, Room: room})
	gridB := model.NewScheduleGrid()
	gridB.PlaceSession("Monday", 0, &model.SessionRequest{Course: "Physics", Kind: model.KindLecture, Size: 30, Room: room})

	valid, report := Verify(map[string]*model.ScheduleGrid{"IE 1": gridA, "CS 1": gridB})
	assert.False(t, valid)
	assert.Contains(t, report, "[FAIL]: Room collision check.")
}

func TestVerifyFlagsUnsuitableRoom(t *testing.T) {
	lab := &model.Room{ID: 2, Label: "L1", Capacity: 10, Purpose: model.KindLab}

	grid := model.NewScheduleGrid()
	grid.PlaceSession("Monday", 0, &model.SessionRequest{Course: "Algebra", Kind: model.KindLecture, Size: 30, Room: lab})

	valid, report := Verify(map[string]*model.ScheduleGrid{"IE 1": grid})
	assert.False(t, valid)
	assert.Contains(t, report, "[FAIL]: Room purpose/capacity check.")
}

func TestVerifyAllowsSharedLectureAcrossViews(t *testing.T) {
	room := &model.Room{ID: 1, Label: "A1", Capacity: 100, Purpose: model.KindLecture}
	lecture := &model.SessionRequest{Course: "Algebra", Kind: model.KindLecture, Size: 30, Room: room}

	gridA := model.NewScheduleGrid()
	gridA.PlaceSession("Monday", 0, lecture)
	gridB := model.NewScheduleGrid()
	gridB.PlaceSession("Monday", 0, lecture)

	valid, report := Verify(map[string]*model.ScheduleGrid{"IE 1": gridA, "IE 1_grupa1a": gridB})
	assert.True(t, valid, report)
}
