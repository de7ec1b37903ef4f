package timetable

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Flegias94/degree-project/pkg/model"
)

// CellSeparator joins the labels of two sessions that ended up sharing a
// merged or combined grid cell, so neither is lost.
const CellSeparator = " | "

// Result summarizes one GenerateAll run.
type Result struct {
	Labels   []string
	Placed   int
	Degraded []string
	Dropped  []string
}

// Scheduler builds weekly timetables for every cohort in two phases: a
// shared lecture pass producing one canonical grid per cohort, then a
// per-subgroup practice pass whose grids are merged with the parent
// cohort's lectures. All passes share one reservation set.
type Scheduler struct {
	cohorts []*model.Cohort
	courses []*model.Course
	rooms   []*model.Room
	log     *zap.Logger

	schedules map[string]*model.ScheduleGrid
	lectures  map[string]*model.ScheduleGrid
}

// New creates a Scheduler over already-parsed catalogues. A nil logger
// falls back to a no-op logger.
func New(cohorts []*model.Cohort, courses []*model.Course, rooms []*model.Room, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		cohorts:   cohorts,
		courses:   courses,
		rooms:     rooms,
		log:       log,
		schedules: make(map[string]*model.ScheduleGrid),
		lectures:  make(map[string]*model.ScheduleGrid),
	}
}

// GenerateAll validates the catalogues, then runs both scheduling phases
// for every cohort. Placement degradation never fails the run; it travels
// in the Result diagnostics.
func (s *Scheduler) GenerateAll() (*Result, error) {
	if err := ValidateCatalogue(s.cohorts, s.courses, s.rooms); err != nil {
		return nil, err
	}

	s.schedules = make(map[string]*model.ScheduleGrid)
	s.lectures = make(map[string]*model.ScheduleGrid)
	for _, r := range s.rooms {
		r.ResetHosted()
	}

	reservations := model.NewReservationSet()
	var diag Diagnostics

	// Phase 1: one shared lecture grid per cohort.
	for _, cohort := range s.cohorts {
		grid, d := s.allocateLectures(cohort, reservations)
		s.lectures[cohort.Key()] = grid
		s.schedules[cohort.Key()] = grid
		diag.merge(d)
		s.log.Info("lecture pass done",
			zap.String("cohort", cohort.Key()),
			zap.Int("placed", d.Placed),
			zap.Int("degraded", len(d.Degraded)))
	}

	// Phase 2: practice sessions per subgroup, merged with the parent
	// cohort's lectures.
	for _, cohort := range s.cohorts {
		perGroup := cohort.Subgroups / cohort.Groups
		for g := 1; g <= cohort.Groups; g++ {
			for k := 1; k <= perGroup; k++ {
				sgr := fmt.Sprintf("sgr:%d", (g-1)*perGroup+k)
				grid, d := s.allocatePractice(cohort, sgr, reservations)
				mergeLectures(grid, s.lectures[cohort.Key()])
				label := fmt.Sprintf("%s_grupa%d%c", cohort.Key(), g, rune('a'+k-1))
				s.schedules[label] = grid
				diag.merge(d)
			}
		}
		s.log.Info("practice pass done", zap.String("cohort", cohort.Key()))
	}

	result := &Result{
		Labels:   s.Labels(),
		Placed:   diag.Placed,
		Degraded: diag.Degraded,
		Dropped:  diag.Dropped,
	}
	if len(diag.Dropped) > 0 {
		s.log.Warn("requests dropped: grid exhausted",
			zap.Int("count", len(diag.Dropped)),
			zap.Strings("requests", diag.Dropped))
	}
	return result, nil
}

func (s *Scheduler) allocateLectures(cohort *model.Cohort, reservations *model.ReservationSet) (*model.ScheduleGrid, Diagnostics) {
	var requests []*model.SessionRequest
	for _, course := range s.coursesFor(cohort.Key()) {
		for _, req := range Generate(course, cohort, s.rooms) {
			if req.Kind == model.KindLecture {
				requests = append(requests, req)
			}
		}
	}
	return Allocate(requests, s.rooms, reservations)
}

func (s *Scheduler) allocatePractice(cohort *model.Cohort, sgr string, reservations *model.ReservationSet) (*model.ScheduleGrid, Diagnostics) {
	var requests []*model.SessionRequest
	for _, course := range s.coursesFor(cohort.Key()) {
		for _, req := range Generate(course, cohort, s.rooms) {
			if req.Kind != model.KindLecture && req.HasSubgroup(sgr) {
				requests = append(requests, req)
			}
		}
	}
	return Allocate(requests, s.rooms, reservations)
}

func (s *Scheduler) coursesFor(key string) []*model.Course {
	var courses []*model.Course
	for _, c := range s.courses {
		if c.CohortKey == key {
			courses = append(courses, c)
		}
	}
	return courses
}

// mergeLectures folds the cohort's shared lecture grid into a subgroup
// grid in place. Empty subgroup cells receive the lecture cell; cells
// holding the same course keep the subgroup placement; differing cells are
// joined so neither side is lost.
func mergeLectures(sub, lectures *model.ScheduleGrid) {
	for _, day := range model.Weekdays {
		for slot := 0; slot < model.SlotsPerDay; slot++ {
			lec := lectures.At(day, slot)
			if lec.Empty() {
				continue
			}
			cur := sub.At(day, slot)
			if cur.Empty() {
				sub.SetCell(day, slot, lec)
				continue
			}
			if cur.CourseName() == lec.CourseName() {
				continue
			}
			sub.ReplaceCell(day, slot, model.Cell{Fallback: cur.Text() + CellSeparator + lec.Text()})
		}
	}
}

// Schedule returns the grid stored under a label, or an empty grid for an
// unknown label.
func (s *Scheduler) Schedule(label string) *model.ScheduleGrid {
	if grid, ok := s.schedules[label]; ok {
		return grid
	}
	return model.NewScheduleGrid()
}

// Labels lists every stored schedule label in sorted order.
func (s *Scheduler) Labels() []string {
	labels := make([]string, 0, len(s.schedules))
	for label := range s.schedules {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// CombinedSchedule unions every stored grid whose label starts with the
// given prefix into a single cohort-wide view. When several schedules fill
// the same cell with different content, the texts are joined; identical
// content is kept once.
func (s *Scheduler) CombinedSchedule(prefix string) *model.ScheduleGrid {
	combined := model.NewScheduleGrid()
	for _, label := range s.Labels() {
		if !strings.HasPrefix(label, prefix) {
			continue
		}
		grid := s.schedules[label]
		for _, day := range model.Weekdays {
			for slot := 0; slot < model.SlotsPerDay; slot++ {
				cell := grid.At(day, slot)
				if cell.Empty() {
					continue
				}
				cur := combined.At(day, slot)
				switch {
				case cur.Empty():
					combined.SetCell(day, slot, cell)
				case cur.Text() == cell.Text():
					// already contributed by another view
				case strings.Contains(cur.Text(), cell.Text()):
					// already part of a joined cell
				default:
					combined.ReplaceCell(day, slot, model.Cell{Fallback: cur.Text() + CellSeparator + cell.Text()})
				}
			}
		}
	}
	return combined
}
