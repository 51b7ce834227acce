package timetable

// Fixed domain bounds. Coordinates are 1-based.
const (
	Grades   = 3
	Weekdays = 5
	Periods  = 8
)

// TimetableEntry is one decoded (grade, class, weekday, period) cell.
type TimetableEntry struct {
	Grade     int    `json:"grade"`
	Class     int    `json:"class"`
	Weekday   int    `json:"weekday"`
	Period    int    `json:"period"`
	Teacher   string `json:"teacher"`
	Subject   string `json:"subject"`
	Classroom string `json:"classroom"`
	Changed   bool   `json:"changed"`
	// Code labels cells that belong to the same joint lecture, e.g. "A_".
	Code string `json:"code"`
}

// ClassTimetable is the week of one class, Days[weekday-1][period-1].
type ClassTimetable struct {
	Grade int                              `json:"grade"`
	Class int                              `json:"class"`
	Days  [Weekdays][Periods]TimetableEntry `json:"days"`
}

// Entry returns the cell at the given 1-based weekday and period.
func (c *ClassTimetable) Entry(weekday, period int) (TimetableEntry, bool) {
	if !validSlot(weekday, period) {
		return TimetableEntry{}, false
	}
	return c.Days[weekday-1][period-1], true
}

// Set stores e at its own weekday and period.
func (c *ClassTimetable) Set(e TimetableEntry) {
	if validSlot(e.Weekday, e.Period) {
		c.Days[e.Weekday-1][e.Period-1] = e
	}
}

type GradeTimetable struct {
	Grade   int              `json:"grade"`
	Classes []ClassTimetable `json:"classes"`
}

// Timetable is the class-indexed view of a school, sized up front from the
// number of real classes per grade.
type Timetable struct {
	Grades [Grades]GradeTimetable `json:"grades"`
}

// New allocates a timetable with classCounts[g-1] classes in grade g.
// Every cell already carries its coordinates.
func New(classCounts [Grades]int) *Timetable {
	t := &Timetable{}
	for g := 1; g <= Grades; g++ {
		n := classCounts[g-1]
		if n < 0 {
			n = 0
		}
		grade := GradeTimetable{Grade: g, Classes: make([]ClassTimetable, n)}
		for c := 1; c <= n; c++ {
			ct := &grade.Classes[c-1]
			ct.Grade, ct.Class = g, c
			for w := 1; w <= Weekdays; w++ {
				for p := 1; p <= Periods; p++ {
					ct.Days[w-1][p-1] = TimetableEntry{Grade: g, Class: c, Weekday: w, Period: p}
				}
			}
		}
		t.Grades[g-1] = grade
	}
	return t
}

// Class returns the timetable of one class.
func (t *Timetable) Class(grade, class int) (*ClassTimetable, bool) {
	if grade < 1 || grade > Grades {
		return nil, false
	}
	classes := t.Grades[grade-1].Classes
	if class < 1 || class > len(classes) {
		return nil, false
	}
	return &classes[class-1], true
}

func (t *Timetable) Entry(grade, class, weekday, period int) (TimetableEntry, bool) {
	ct, ok := t.Class(grade, class)
	if !ok {
		return TimetableEntry{}, false
	}
	return ct.Entry(weekday, period)
}

// ClassCount is the number of real classes in a grade.
func (t *Timetable) ClassCount(grade int) int {
	if grade < 1 || grade > Grades {
		return 0
	}
	return len(t.Grades[grade-1].Classes)
}

// Len is the total number of cells.
func (t *Timetable) Len() int {
	n := 0
	for _, g := range t.Grades {
		n += len(g.Classes) * Weekdays * Periods
	}
	return n
}

// Entries flattens the timetable in grade, class, weekday, period order.
func (t *Timetable) Entries() []TimetableEntry {
	out := make([]TimetableEntry, 0, t.Len())
	for _, g := range t.Grades {
		for i := range g.Classes {
			for w := range g.Classes[i].Days {
				out = append(out, g.Classes[i].Days[w][:]...)
			}
		}
	}
	return out
}

func validSlot(weekday, period int) bool {
	return weekday >= 1 && weekday <= Weekdays && period >= 1 && period <= Periods
}
