package model

// Weekdays in grid order. The grid covers a single representative week.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// HourBlocks are the two-hour block start times of each day, in slot order.
var HourBlocks = []int{8, 10, 12, 14, 16, 18}

// SlotsPerDay is the number of hour blocks per weekday.
const SlotsPerDay = 6

// Cell is one grid position. It holds either nothing, a placed session, or
// a plain-text fallback label. Session and Fallback are never both set.
type Cell struct {
	Session  *SessionRequest
	Fallback string
}

// Empty reports whether the cell holds no content.
func (c Cell) Empty() bool {
	return c.Session == nil && c.Fallback == ""
}

// Text renders the cell for display: the session's multi-line label, the
// fallback text, or the empty string.
func (c Cell) Text() string {
	if c.Session != nil {
		return c.Session.Render()
	}
	return c.Fallback
}

// CourseName is the course a cell belongs to, used by merge deduplication.
// Fallback cells answer with their full text.
func (c Cell) CourseName() string {
	if c.Session != nil {
		return c.Session.Course
	}
	return c.Fallback
}

// ScheduleGrid is the 5-weekday x 6-hour-block matrix for one schedule run.
// Cells are written at most once; occupied cells are never overwritten.
type ScheduleGrid struct {
	cells [][]Cell // [weekday index][slot index]
}

// NewScheduleGrid creates an empty grid.
func NewScheduleGrid() *ScheduleGrid {
	g := &ScheduleGrid{cells: make([][]Cell, len(Weekdays))}
	for i := range g.cells {
		g.cells[i] = make([]Cell, SlotsPerDay)
	}
	return g
}

func dayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

// At returns the cell at (weekday, slot). Unknown days and out-of-range
// slots read as empty.
func (g *ScheduleGrid) At(day string, slot int) Cell {
	i := dayIndex(day)
	if i < 0 || slot < 0 || slot >= SlotsPerDay {
		return Cell{}
	}
	return g.cells[i][slot]
}

// SetCell writes a cell if the position is still empty.
// Returns false when the position is occupied or out of range.
func (g *ScheduleGrid) SetCell(day string, slot int, c Cell) bool {
	i := dayIndex(day)
	if i < 0 || slot < 0 || slot >= SlotsPerDay {
		return false
	}
	if !g.cells[i][slot].Empty() {
		return false
	}
	g.cells[i][slot] = c
	return true
}

// ReplaceCell overwrites a cell regardless of content. Reserved for the
// merge step, which joins existing content into the replacement instead of
// dropping it; allocation itself only ever writes empty cells.
func (g *ScheduleGrid) ReplaceCell(day string, slot int, c Cell) bool {
	i := dayIndex(day)
	if i < 0 || slot < 0 || slot >= SlotsPerDay {
		return false
	}
	g.cells[i][slot] = c
	return true
}

// PlaceSession commits a session into an empty cell.
func (g *ScheduleGrid) PlaceSession(day string, slot int, s *SessionRequest) bool {
	return g.SetCell(day, slot, Cell{Session: s})
}

// PlaceFallback writes a degraded plain-text placement into an empty cell.
func (g *ScheduleGrid) PlaceFallback(day string, slot int, text string) bool {
	return g.SetCell(day, slot, Cell{Fallback: text})
}

// FirstEmpty finds the first free position in weekday order, then slot
// order. ok is false when the grid is exhausted.
func (g *ScheduleGrid) FirstEmpty() (day string, slot int, ok bool) {
	for i, d := range Weekdays {
		for j := range g.cells[i] {
			if g.cells[i][j].Empty() {
				return d, j, true
			}
		}
	}
	return "", 0, false
}

// Render flattens the grid into per-day display strings for the external
// renderer: one string per hour block, empty cells as "".
func (g *ScheduleGrid) Render() map[string][]string {
	out := make(map[string][]string, len(Weekdays))
	for i, d := range Weekdays {
		row := make([]string, SlotsPerDay)
		for j, c := range g.cells[i] {
			row[j] = c.Text()
		}
		out[d] = row
	}
	return out
}
