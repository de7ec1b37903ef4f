package catalog

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/Flegias94/degree-project/pkg/model"
)

// ScheduleCSVRow is one committed or degraded placement in the export.
type ScheduleCSVRow struct {
	Label    string `csv:"label"`
	Day      string `csv:"day"`
	Hour     int    `csv:"hour"`
	Course   string `csv:"course"`
	Kind     string `csv:"kind"`
	Subgroup string `csv:"subgroup"`
	Room     string `csv:"room"`
}

// ExportSchedule flattens a named grid into CSV rows and writes it to the
// given path, replacing any previous file.
func ExportSchedule(label string, grid *model.ScheduleGrid, path string) error {
	rows := flattenSchedule(label, grid)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func flattenSchedule(label string, grid *model.ScheduleGrid) []*ScheduleCSVRow {
	var rows []*ScheduleCSVRow
	for _, day := range model.Weekdays {
		for slot, hour := range model.HourBlocks {
			cell := grid.At(day, slot)
			if cell.Empty() {
				continue
			}
			row := &ScheduleCSVRow{Label: label, Day: day, Hour: hour}
			if s := cell.Session; s != nil {
				row.Course = s.Course
				row.Kind = string(s.Kind)
				row.Subgroup = s.Subgroup
				if s.Room != nil {
					row.Room = s.Room.Label
				}
			} else {
				row.Course = cell.Fallback
			}
			rows = append(rows, row)
		}
	}
	return rows
}
