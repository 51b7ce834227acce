package decoder

import (
	"comcigan-server/models"
	"comcigan-server/models/timetable"
)

// DecodeTeacherTimetable builds the teacher-indexed timetable. The planned
// schedule of each teacher is first rebuilt from the class-indexed original
// codes, then compared against the teacher table the service publishes.
func DecodeTeacherTimetable(p *models.RawSchedulePayload) (*timetable.TeacherTimetable, error) {
	if p == nil {
		return nil, ErrNilPayload
	}
	if err := requireTeacherView(p); err != nil {
		return nil, err
	}

	base := separationBase(p)
	layout := LayoutFor(base)
	teachers := p.TeacherCount.Value
	if teachers < 0 {
		teachers = 0
	}

	planned := plannedTeacherCodes(p, teachers, base, layout)
	tt := timetable.NewTeacherTimetable(teachers, p.TeacherNames)

	for t := 1; t <= teachers; t++ {
		sched, _ := tt.Teacher(t)
		for w := 1; w <= timetable.Weekdays; w++ {
			for pd := 1; pd <= timetable.Periods; pd++ {
				current := p.TeacherCurrentCodes.At(t, w, pd)
				e := &sched.Days[w-1][pd-1]
				e.Changed = planned[t-1][w-1][pd-1] != current

				s := splitSlot(current, base, layout)
				if !s.assigned {
					continue
				}
				_, subject := Split(s.subject, base)
				e.ClassCode = s.owner
				e.Grade, e.Class = Split(s.owner, classCodeBase)
				e.Subject = p.SubjectNames.At(subject)
			}
		}
	}
	return tt, nil
}

type weekCodes [timetable.Weekdays][timetable.Periods]int

// plannedTeacherCodes inverts the class-indexed original codes into one
// week per teacher. Virtual classes are included; later classes overwrite
// earlier ones in the same slot.
func plannedTeacherCodes(p *models.RawSchedulePayload, teachers, base int, layout Layout) []weekCodes {
	planned := make([]weekCodes, teachers)
	for g := 1; g <= timetable.Grades; g++ {
		for c := 1; c <= p.ClassCounts.At(g); c++ {
			classCode := Combine(g, c, classCodeBase)
			for w := 1; w <= timetable.Weekdays; w++ {
				for pd := 1; pd <= timetable.Periods; pd++ {
					code := p.OriginalCodes.At(g, c, w, pd)
					if code <= 0 {
						continue
					}
					s := splitSlot(code, base, layout)
					if s.owner < 1 || s.owner > teachers {
						continue
					}
					planned[s.owner-1][w-1][pd-1] = Pack(classCode, s.subject, base, layout)
				}
			}
		}
	}
	return planned
}

func separationBase(p *models.RawSchedulePayload) int {
	if !p.SeparationBase.Valid {
		return DefaultBase
	}
	return normalizeBase(p.SeparationBase.Value)
}

func requireTeacherView(p *models.RawSchedulePayload) error {
	switch {
	case !p.TeacherCount.Valid:
		return &PayloadError{Key: models.KeyTeacherCount}
	case p.ClassCounts == nil:
		return &PayloadError{Key: models.KeyClassCounts}
	case p.OriginalCodes == nil:
		return &PayloadError{Key: models.KeyOriginalCodes}
	case p.TeacherCurrentCodes == nil:
		return &PayloadError{Key: models.KeyTeacherCurrentCodes}
	case p.SubjectNames == nil:
		return &PayloadError{Key: models.KeySubjectNames}
	case p.TeacherCount.Value > maxTeachers:
		return &PayloadError{Key: models.KeyTeacherCount, OutOfRange: true, Value: p.TeacherCount.Value}
	}
	return checkClassCounts(p)
}
