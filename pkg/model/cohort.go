package model

import "fmt"

// Cohort is a specialization-and-year group of students scheduled as a unit
// for lectures. Immutable once loaded.
type Cohort struct {
	Specialization string `csv:"specialization" json:"nume_specializare"`
	Year           int    `csv:"year" json:"an_studiu"`
	Students       int    `csv:"students" json:"nr_studenti"`
	Groups         int    `csv:"groups" json:"nr_grupe"`
	Subgroups      int    `csv:"subgroups" json:"nr_semigrupe"`
}

// Key is the cohort identity courses refer to, e.g. "IE 1".
func (c *Cohort) Key() string {
	return fmt.Sprintf("%s %d", c.Specialization, c.Year)
}

// SubgroupLabels returns the cohort-wide labels sgr:1 .. sgr:N.
func (c *Cohort) SubgroupLabels() []string {
	labels := make([]string, c.Subgroups)
	for i := range labels {
		labels[i] = fmt.Sprintf("sgr:%d", i+1)
	}
	return labels
}

// SubgroupSize is the student count of a single subgroup.
func (c *Cohort) SubgroupSize() int {
	return c.Students / c.Subgroups
}
