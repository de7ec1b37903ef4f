package timetable

import "github.com/Flegias94/degree-project/pkg/model"

// Diagnostics records how an allocation run went. Degraded placements and
// dropped requests are reported to the caller, never raised as errors.
type Diagnostics struct {
	Placed   int
	Degraded []string
	Dropped  []string
}

func (d *Diagnostics) merge(other Diagnostics) {
	d.Placed += other.Placed
	d.Degraded = append(d.Degraded, other.Degraded...)
	d.Dropped = append(d.Dropped, other.Dropped...)
}

// Allocate assigns each request, in input order, to a room and time slot.
// Candidate slots are walked in descending preference order; for each slot
// the rooms are scanned in their given order and the first room with the
// right purpose, enough seats, a free reservation triple, and an empty grid
// cell wins. A request with no feasible (slot, room) pair degrades to a
// plain-text label in the first empty cell; if even that fails the request
// is counted as dropped.
//
// The reservation set is shared across calls on purpose: it is what keeps
// separate scheduling passes from double-booking a room.
func Allocate(requests []*model.SessionRequest, rooms []*model.Room, reservations *model.ReservationSet) (*model.ScheduleGrid, Diagnostics) {
	grid := model.NewScheduleGrid()
	var diag Diagnostics

	for _, req := range requests {
		if placeRequest(req, grid, rooms, reservations) {
			diag.Placed++
			continue
		}
		day, slot, ok := grid.FirstEmpty()
		if !ok {
			diag.Dropped = append(diag.Dropped, req.FallbackLabel())
			continue
		}
		grid.PlaceFallback(day, slot, req.FallbackLabel())
		diag.Degraded = append(diag.Degraded, req.FallbackLabel())
	}

	return grid, diag
}

func placeRequest(req *model.SessionRequest, grid *model.ScheduleGrid, rooms []*model.Room, reservations *model.ReservationSet) bool {
	for _, c := range scoredSlots(req.Kind) {
		if !grid.At(c.day, c.slot).Empty() {
			continue
		}
		for _, room := range rooms {
			if !room.CanHost(req.Kind, req.Size) {
				continue
			}
			if !reservations.Reserve(room.ID, c.day, c.hour) {
				continue
			}
			req.Room = room
			room.Host(req)
			grid.PlaceSession(c.day, c.slot, req)
			return true
		}
	}
	return false
}
