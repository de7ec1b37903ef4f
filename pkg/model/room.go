package model

// Room is a physical teaching space. Purpose must equal a session's kind
// exactly for the room to be eligible. The hosted list is a derived index of
// sessions placed into this room; the session's Room pointer is the source
// of truth.
type Room struct {
	ID       int         `csv:"room_id" json:"id"`
	Label    string      `csv:"label" json:"sala"`
	Capacity int         `csv:"capacity" json:"nr_locuri"`
	Purpose  SessionKind `csv:"-" json:"-"`

	hosted []*SessionRequest
}

// CanHost checks purpose and capacity for a request of the given kind/size.
func (r *Room) CanHost(kind SessionKind, size int) bool {
	return r.Purpose == kind && r.Capacity >= size
}

// Host records a session on the room's hosted index. Called by the
// allocator once per committed placement.
func (r *Room) Host(s *SessionRequest) {
	r.hosted = append(r.hosted, s)
}

// Hosted returns the sessions committed to this room so far in the run.
func (r *Room) Hosted() []*SessionRequest {
	return r.hosted
}

// ResetHosted clears the hosted index at the start of a scheduling run.
func (r *Room) ResetHosted() {
	r.hosted = nil
}
