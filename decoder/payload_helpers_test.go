package decoder

import (
	"comcigan-server/models"
	"comcigan-server/models/timetable"
)

// newPayload builds a payload with classCounts[i] classes in grade i+1,
// every cell zeroed and every required table present.
func newPayload(classCounts ...int) *models.RawSchedulePayload {
	counts := append(models.IntTable{0}, classCounts...)
	return &models.RawSchedulePayload{
		ClassCounts:        counts,
		VirtualClassCounts: make(models.IntTable, timetable.Grades+1),
		OriginalCodes:      newCodeTable(classCounts),
		CurrentCodes:       newCodeTable(classCounts),
		ClassroomCodes:     newCodeTable(classCounts),
		TeacherNames:       models.NameTable{""},
		SubjectNames:       models.NameTable{""},
	}
}

func newCodeTable(classCounts []int) models.CodeTable {
	t := make(models.CodeTable, timetable.Grades+1)
	for g := 1; g <= len(classCounts) && g <= timetable.Grades; g++ {
		t[g] = make([][][]int, classCounts[g-1]+1)
		for c := 1; c <= classCounts[g-1]; c++ {
			t[g][c] = make([][]int, timetable.Weekdays+1)
			for w := 1; w <= timetable.Weekdays; w++ {
				t[g][c][w] = make([]int, timetable.Periods+1)
			}
		}
	}
	return t
}

func newTeacherCodeTable(teachers int) models.TeacherCodeTable {
	t := make(models.TeacherCodeTable, teachers+1)
	for i := 1; i <= teachers; i++ {
		t[i] = make([][]int, timetable.Weekdays+1)
		for w := 1; w <= timetable.Weekdays; w++ {
			t[i][w] = make([]int, timetable.Periods+1)
		}
	}
	return t
}

func subjects(names ...string) models.NameTable {
	return append(models.NameTable{""}, names...)
}
