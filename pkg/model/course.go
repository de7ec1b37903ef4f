package model

// Course describes one subject taught to a single cohort: its weekly hour
// load and the kind of practice sessions it requires. Immutable.
type Course struct {
	CohortKey     string      `csv:"cohort" json:"nume_specializare_mat"`
	Name          string      `csv:"course_name" json:"nume_materie"`
	PracticeKind  SessionKind `csv:"-" json:"-"`
	LectureHours  int         `csv:"lecture_hours" json:"ore_curs"`
	PracticeHours int         `csv:"practice_hours" json:"ore_practice"`
	Lecturer      string      `csv:"lecturer" json:"prof_titular"`
	Assistants    string      `csv:"assistants" json:"prof_asistenti"`
	Weeks         int         `csv:"weeks" json:"nr_saptamani"`
}
