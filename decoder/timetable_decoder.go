// Package decoder turns the packed schedule payload of the timetable service
// into class-indexed and teacher-indexed timetables.
//
// Decoding is pure: it reads the payload, allocates a fresh result and does
// no I/O, so independent payloads can be decoded concurrently.
package decoder

import (
	"strconv"

	"comcigan-server/models"
	"comcigan-server/models/timetable"
)

// The class view shows this many leading characters of a teacher's name.
const teacherNameRunes = 2

// Upper bounds on the counts a payload may declare. Both views allocate
// and iterate by these counts, so anything larger is treated as corrupt.
const (
	maxClassesPerGrade = 300
	maxTeachers        = 3000
)

// DecodeTimetable builds the class-indexed timetable. Every real class of
// every grade gets all weekdays and periods; per-cell gaps decode as empty
// entries. Only a payload missing a top-level table, or declaring more
// classes than maxClassesPerGrade, fails.
func DecodeTimetable(p *models.RawSchedulePayload) (*timetable.Timetable, error) {
	if p == nil {
		return nil, ErrNilPayload
	}
	if err := requireClassView(p); err != nil {
		return nil, err
	}

	var counts [timetable.Grades]int
	for g := 1; g <= timetable.Grades; g++ {
		counts[g-1] = realClassCount(p, g)
	}

	t := timetable.New(counts)
	for g := 1; g <= timetable.Grades; g++ {
		for c := 1; c <= counts[g-1]; c++ {
			ct, _ := t.Class(g, c)
			for w := 1; w <= timetable.Weekdays; w++ {
				for pd := 1; pd <= timetable.Periods; pd++ {
					ct.Set(decodeClassCell(p, Cell{Grade: g, Class: c, Weekday: w, Period: pd}))
				}
			}
		}
	}
	return t, nil
}

func decodeClassCell(p *models.RawSchedulePayload, cell Cell) timetable.TimetableEntry {
	original := p.OriginalCodes.At(cell.Grade, cell.Class, cell.Weekday, cell.Period)
	current := p.CurrentCodes.At(cell.Grade, cell.Class, cell.Weekday, cell.Period)

	e := timetable.TimetableEntry{
		Grade:   cell.Grade,
		Class:   cell.Class,
		Weekday: cell.Weekday,
		Period:  cell.Period,
		Changed: original != current,
	}

	if p.ClassroomEnabled {
		e.Classroom = classroomLabel(p.ClassroomCodes.At(cell.Grade, cell.Class, cell.Weekday, cell.Period))
	}

	// The class view always splits on 100, whatever the payload's base.
	s := splitSlot(current, DefaultBase, QuotientFirst)
	if s.assigned {
		e.Teacher = truncateRunes(p.TeacherNames.At(s.owner), teacherNameRunes)
		e.Subject = p.SubjectNames.At(s.subject)
	}

	e.Code = ResolveJointGroup(p.JointGroups, p.OriginalCodes, cell, s.subject)
	return e
}

// realClassCount is the class count minus the virtual classes, never below
// zero and never above the declared count.
func realClassCount(p *models.RawSchedulePayload, grade int) int {
	virtual := p.VirtualClassCounts.At(grade)
	if virtual < 0 {
		virtual = 0
	}
	n := p.ClassCounts.At(grade) - virtual
	if n < 0 {
		return 0
	}
	return n
}

func checkClassCounts(p *models.RawSchedulePayload) error {
	for g := 1; g <= timetable.Grades; g++ {
		if n := p.ClassCounts.At(g); n > maxClassesPerGrade {
			return &PayloadError{Key: models.KeyClassCounts, OutOfRange: true, Value: n}
		}
	}
	return nil
}

func classroomLabel(code int) string {
	if code <= 0 {
		return ""
	}
	return strconv.Itoa(code)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func requireClassView(p *models.RawSchedulePayload) error {
	switch {
	case p.ClassCounts == nil:
		return &PayloadError{Key: models.KeyClassCounts}
	case p.OriginalCodes == nil:
		return &PayloadError{Key: models.KeyOriginalCodes}
	case p.CurrentCodes == nil:
		return &PayloadError{Key: models.KeyCurrentCodes}
	case p.TeacherNames == nil:
		return &PayloadError{Key: models.KeyTeacherNames}
	case p.SubjectNames == nil:
		return &PayloadError{Key: models.KeySubjectNames}
	}
	return checkClassCounts(p)
}
