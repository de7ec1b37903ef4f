package model

import (
	"fmt"
	"strings"
)

// SessionKind classifies a teaching session and doubles as a room purpose.
type SessionKind string

const (
	KindLecture SessionKind = "lecture"
	KindSeminar SessionKind = "seminar"
	KindLab     SessionKind = "lab"
)

// ParseKind normalizes a catalogue value into a SessionKind. The JSON
// catalogues use the Romanian names (curs/seminar/laborator).
func ParseKind(s string) (SessionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lecture", "curs":
		return KindLecture, nil
	case "seminar":
		return KindSeminar, nil
	case "lab", "laborator":
		return KindLab, nil
	}
	return "", fmt.Errorf("unknown session kind %q", s)
}

// SessionRequest is one unit of teaching time waiting for a room and slot.
// Room starts nil and is set at most once by the allocator; it stays nil
// when placement degrades to a fallback cell.
type SessionRequest struct {
	Course   string
	Kind     SessionKind
	Size     int
	Subgroup string // "" for whole-cohort lectures, "sgr:1" or "sgr:1, sgr:2" otherwise
	Room     *Room
}

// HasSubgroup reports whether the request covers the given subgroup label.
func (s *SessionRequest) HasSubgroup(label string) bool {
	for _, member := range strings.Split(s.Subgroup, ",") {
		if strings.TrimSpace(member) == label {
			return true
		}
	}
	return false
}

// FallbackLabel is the plain-text form used when no room could be assigned.
func (s *SessionRequest) FallbackLabel() string {
	return fmt.Sprintf("%s (%s, %s)", s.Course, s.Kind, s.Subgroup)
}

// Render produces the multi-line cell label: wrapped course name, kind,
// subgroup if any, room label if assigned.
func (s *SessionRequest) Render() string {
	lines := wrapText(s.Course, 20)
	lines = append(lines, string(s.Kind))
	if s.Subgroup != "" {
		lines = append(lines, s.Subgroup)
	}
	if s.Room != nil {
		lines = append(lines, s.Room.Label)
	}
	return strings.Join(lines, "\n")
}

// wrapText greedily wraps words so no line exceeds width. Words longer than
// the width get a line of their own.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	lines := []string{words[0]}
	for _, w := range words[1:] {
		last := lines[len(lines)-1]
		if len(last)+1+len(w) <= width {
			lines[len(lines)-1] = last + " " + w
		} else {
			lines = append(lines, w)
		}
	}
	return lines
}
