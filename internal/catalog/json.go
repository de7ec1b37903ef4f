package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/Flegias94/degree-project/pkg/model"
)

// LoadCohortsJSON parses the legacy students.json catalogue.
func LoadCohortsJSON(path string) ([]*model.Cohort, error) {
	raw, err := readJSONList(path)
	if err != nil {
		return nil, err
	}
	cohorts := make([]*model.Cohort, 0, len(raw))
	for _, entry := range raw {
		var c model.Cohort
		if err := decodeEntry(entry, &c); err != nil {
			return nil, fmt.Errorf("decode cohort from %s: %w", path, err)
		}
		cohorts = append(cohorts, &c)
	}
	return cohorts, nil
}

// LoadCoursesJSON parses the legacy subjects.json catalogue. The tip_ora
// field carries the Romanian kind name and is normalized here.
func LoadCoursesJSON(path string) ([]*model.Course, error) {
	raw, err := readJSONList(path)
	if err != nil {
		return nil, err
	}
	courses := make([]*model.Course, 0, len(raw))
	for _, entry := range raw {
		var c model.Course
		if err := decodeEntry(entry, &c); err != nil {
			return nil, fmt.Errorf("decode course from %s: %w", path, err)
		}
		if kindStr, ok := entry["tip_ora"].(string); ok {
			if kind, err := model.ParseKind(kindStr); err == nil {
				c.PracticeKind = kind
			} else {
				c.PracticeKind = model.SessionKind(kindStr)
			}
		}
		courses = append(courses, &c)
	}
	return courses, nil
}

// LoadRoomsJSON parses the legacy rooms.json catalogue. The scop field
// carries the Romanian purpose name and is normalized here.
func LoadRoomsJSON(path string) ([]*model.Room, error) {
	raw, err := readJSONList(path)
	if err != nil {
		return nil, err
	}
	rooms := make([]*model.Room, 0, len(raw))
	for _, entry := range raw {
		var r model.Room
		if err := decodeEntry(entry, &r); err != nil {
			return nil, fmt.Errorf("decode room from %s: %w", path, err)
		}
		if purposeStr, ok := entry["scop"].(string); ok {
			if purpose, err := model.ParseKind(purposeStr); err == nil {
				r.Purpose = purpose
			} else {
				r.Purpose = model.SessionKind(purposeStr)
			}
		}
		rooms = append(rooms, &r)
	}
	return rooms, nil
}

func readJSONList(path string) ([]map[string]any, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, nil
}

// decodeEntry maps a raw catalogue entry onto a model struct, reusing the
// struct's json tags as field names and coercing JSON numbers to ints.
func decodeEntry(entry map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(entry)
}
