package timetable

// TeacherEntry is one (teacher, weekday, period) cell of the teacher view.
type TeacherEntry struct {
	Teacher int `json:"teacher"`
	Weekday int `json:"weekday"`
	Period  int `json:"period"`
	// ClassCode is grade*100+class, 0 when the slot is free.
	ClassCode int    `json:"class_code"`
	Grade     int    `json:"grade"`
	Class     int    `json:"class"`
	Subject   string `json:"subject"`
	Changed   bool   `json:"changed"`
}

type TeacherSchedule struct {
	Teacher int                            `json:"teacher"`
	Name    string                         `json:"name"`
	Days    [Weekdays][Periods]TeacherEntry `json:"days"`
}

func (s *TeacherSchedule) Entry(weekday, period int) (TeacherEntry, bool) {
	if !validSlot(weekday, period) {
		return TeacherEntry{}, false
	}
	return s.Days[weekday-1][period-1], true
}

// TeacherTimetable is the teacher-indexed view of a school.
type TeacherTimetable struct {
	Teachers     []TeacherSchedule `json:"teachers"`
	TeacherNames []string          `json:"teacher_names"`
}

// NewTeacherTimetable allocates schedules for teachers 1..count.
func NewTeacherTimetable(count int, names []string) *TeacherTimetable {
	if count < 0 {
		count = 0
	}
	tt := &TeacherTimetable{
		Teachers:     make([]TeacherSchedule, count),
		TeacherNames: names,
	}
	for t := 1; t <= count; t++ {
		s := &tt.Teachers[t-1]
		s.Teacher = t
		if t < len(names) {
			s.Name = names[t]
		}
		for w := 1; w <= Weekdays; w++ {
			for p := 1; p <= Periods; p++ {
				s.Days[w-1][p-1] = TeacherEntry{Teacher: t, Weekday: w, Period: p}
			}
		}
	}
	return tt
}

// Teacher returns the schedule of teacher t (1-based).
func (tt *TeacherTimetable) Teacher(t int) (*TeacherSchedule, bool) {
	if t < 1 || t > len(tt.Teachers) {
		return nil, false
	}
	return &tt.Teachers[t-1], true
}
