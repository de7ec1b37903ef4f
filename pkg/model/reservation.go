package model

import "sync"

// ReservationKey identifies one physical room at one time of the week.
type ReservationKey struct {
	RoomID int
	Day    string
	Hour   int
}

// ReservationSet tracks every (room, weekday, hour) triple committed by any
// allocation run in the current scheduling session. It is created once per
// top-level run and shared by reference across the lecture pass and all
// subgroup passes, so two passes never claim the same room at the same time.
type ReservationSet struct {
	mu   sync.Mutex
	used map[ReservationKey]struct{}
}

// NewReservationSet creates an empty set.
func NewReservationSet() *ReservationSet {
	return &ReservationSet{used: make(map[ReservationKey]struct{})}
}

// Reserve atomically checks and claims a triple. Returns false if it was
// already taken.
func (r *ReservationSet) Reserve(roomID int, day string, hour int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ReservationKey{RoomID: roomID, Day: day, Hour: hour}
	if _, taken := r.used[key]; taken {
		return false
	}
	r.used[key] = struct{}{}
	return true
}

// Reserved reports whether a triple is already committed.
func (r *ReservationSet) Reserved(roomID int, day string, hour int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, taken := r.used[ReservationKey{RoomID: roomID, Day: day, Hour: hour}]
	return taken
}

// Len is the number of committed triples.
func (r *ReservationSet) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.used)
}
