// Package catalog loads the cohort, course, and room catalogues the engine
// consumes, and exports generated schedules. Catalogues come in two
// formats: semicolon-delimited CSV and the JSON files of the legacy
// tooling (students.json / subjects.json / rooms.json).
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/Flegias94/degree-project/pkg/model"
)

// LoadCohorts reads and parses the given csv file for cohort data.
func LoadCohorts(path string, delim rune) ([]*model.Cohort, error) {
	var cohorts []*model.Cohort
	if err := loadCSV(path, delim, &cohorts); err != nil {
		return nil, err
	}
	return cohorts, nil
}

// LoadCourses reads and parses the given csv file for course data. Practice
// kinds are normalized; unknown values survive the load and are rejected by
// catalogue validation instead.
func LoadCourses(path string, delim rune) ([]*model.Course, error) {
	type courseRow struct {
		model.Course
		Kind string `csv:"practice_kind"`
	}
	var rows []*courseRow
	if err := loadCSV(path, delim, &rows); err != nil {
		return nil, err
	}
	courses := make([]*model.Course, 0, len(rows))
	for _, row := range rows {
		c := row.Course
		if kind, err := model.ParseKind(row.Kind); err == nil {
			c.PracticeKind = kind
		} else {
			c.PracticeKind = model.SessionKind(row.Kind)
		}
		courses = append(courses, &c)
	}
	return courses, nil
}

// LoadRooms reads and parses the given csv file for room data.
func LoadRooms(path string, delim rune) ([]*model.Room, error) {
	type roomRow struct {
		model.Room
		Purpose string `csv:"purpose"`
	}
	var rows []*roomRow
	if err := loadCSV(path, delim, &rows); err != nil {
		return nil, err
	}
	rooms := make([]*model.Room, 0, len(rows))
	for _, row := range rows {
		r := row.Room
		if purpose, err := model.ParseKind(row.Purpose); err == nil {
			r.Purpose = purpose
		} else {
			r.Purpose = model.SessionKind(row.Purpose)
		}
		rooms = append(rooms, &r)
	}
	return rooms, nil
}

func loadCSV(path string, delim rune, out any) error {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
