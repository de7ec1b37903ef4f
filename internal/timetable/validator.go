package timetable

import (
	"fmt"
	"strings"

	"github.com/Flegias94/degree-project/pkg/model"
)

// ValidateCatalogue checks the parsed catalogues for malformed data before
// any generation starts. All problems are collected into a single typed
// error so the caller sees the full list at once.
func ValidateCatalogue(cohorts []*model.Cohort, courses []*model.Course, rooms []*model.Room) error {
	var problems []string

	known := make(map[string]bool, len(cohorts))
	for _, c := range cohorts {
		known[c.Key()] = true
		if c.Students <= 0 {
			problems = append(problems, fmt.Sprintf("cohort %s has non-positive student count %d", c.Key(), c.Students))
		}
		if c.Groups <= 0 {
			problems = append(problems, fmt.Sprintf("cohort %s has non-positive group count %d", c.Key(), c.Groups))
		}
		if c.Subgroups <= 0 {
			problems = append(problems, fmt.Sprintf("cohort %s has non-positive subgroup count %d", c.Key(), c.Subgroups))
		} else if c.Groups > 0 && c.Subgroups%c.Groups != 0 {
			problems = append(problems, fmt.Sprintf("cohort %s has %d subgroups not divisible across %d groups", c.Key(), c.Subgroups, c.Groups))
		}
	}

	for _, c := range courses {
		if !known[c.CohortKey] {
			problems = append(problems, fmt.Sprintf("course %q references unknown cohort %q", c.Name, c.CohortKey))
		}
		if c.PracticeKind != model.KindSeminar && c.PracticeKind != model.KindLab {
			problems = append(problems, fmt.Sprintf("course %q has invalid practice kind %q", c.Name, c.PracticeKind))
		}
		if c.LectureHours < 0 || c.PracticeHours < 0 {
			problems = append(problems, fmt.Sprintf("course %q has negative hour counts", c.Name))
		}
	}

	for _, r := range rooms {
		if r.Capacity <= 0 {
			problems = append(problems, fmt.Sprintf("room %q has non-positive capacity %d", r.Label, r.Capacity))
		}
		if r.Purpose != model.KindLecture && r.Purpose != model.KindSeminar && r.Purpose != model.KindLab {
			problems = append(problems, fmt.Sprintf("room %q has invalid purpose %q", r.Label, r.Purpose))
		}
	}

	if len(problems) > 0 {
		return NewError(CodeCatalogueInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Verify checks the generated schedules against the engine invariants:
// unique (room, weekday, hour) triples and purpose/capacity matching on
// every committed session. Returns false and a report for violations.
func Verify(schedules map[string]*model.ScheduleGrid) (bool, string) {
	var message string
	valid := true
	hasRoomCollision := false
	hasRoomMismatch := false

	type claim struct {
		roomID int
		day    string
		slot   int
	}
	seen := make(map[claim]string)

	for label, grid := range schedules {
		for _, day := range model.Weekdays {
			for slot := 0; slot < model.SlotsPerDay; slot++ {
				cell := grid.At(day, slot)
				s := cell.Session
				if s == nil || s.Room == nil {
					continue
				}
				// Shared lecture cells legitimately repeat across the
				// cohort view and its merged subgroup views.
				key := claim{roomID: s.Room.ID, day: day, slot: slot}
				if prev, taken := seen[key]; taken && prev != s.Render() {
					valid = false
					hasRoomCollision = true
					message += fmt.Sprintf("- Room %s double-booked at %s slot %d (%s)\n", s.Room.Label, day, slot, label)
				} else {
					seen[key] = s.Render()
				}
				if !s.Room.CanHost(s.Kind, s.Size) {
					valid = false
					hasRoomMismatch = true
					message += fmt.Sprintf("- Session %q in unsuitable room %s (%s)\n", s.Course, s.Room.Label, label)
				}
			}
		}
	}

	if hasRoomMismatch {
		message = "[FAIL]: Room purpose/capacity check.\n" + message
	} else {
		message = "[  OK]: Room purpose/capacity check.\n" + message
	}
	if hasRoomCollision {
		message = "[FAIL]: Room collision check.\n" + message
	} else {
		message = "[  OK]: Room collision check.\n" + message
	}

	return valid, message
}
