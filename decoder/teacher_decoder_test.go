package decoder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comcigan-server/models"
	"comcigan-server/models/timetable"
)

func teacherPayload(teachers int, classCounts ...int) *models.RawSchedulePayload {
	p := newPayload(classCounts...)
	p.TeacherCount = models.OptionalInt{Value: teachers, Valid: true}
	p.TeacherCurrentCodes = newTeacherCodeTable(teachers)
	p.TeacherNames = models.NameTable{"", "김철수*", "이영희"}
	p.SubjectNames = subjects("국어", "영어", "과학", "사회", "수학", "체육", "음악")
	return p
}

func TestDecodeTeacherTimetable_Unchanged(t *testing.T) {
	p := teacherPayload(2, 1)
	// teacher 2 teaches subject 5 to 1-1 on Monday period 1
	p.OriginalCodes[1][1][1][1] = 205
	p.TeacherCurrentCodes[2][1][1] = 10105

	tt, err := DecodeTeacherTimetable(p)
	require.NoError(t, err)
	require.Len(t, tt.Teachers, 2)

	sched, ok := tt.Teacher(2)
	require.True(t, ok)
	assert.Equal(t, "이영희", sched.Name)

	e, _ := sched.Entry(1, 1)
	assert.Equal(t, timetable.TeacherEntry{
		Teacher:   2,
		Weekday:   1,
		Period:    1,
		ClassCode: 101,
		Grade:     1,
		Class:     1,
		Subject:   "수학",
		Changed:   false,
	}, e)
}

func TestDecodeTeacherTimetable_Changed(t *testing.T) {
	p := teacherPayload(2, 1)
	p.OriginalCodes[1][1][1][1] = 205
	// teacher 1 picks up a class that was never planned for them
	p.TeacherCurrentCodes[1][1][2] = 30207

	tt, err := DecodeTeacherTimetable(p)
	require.NoError(t, err)

	sched, _ := tt.Teacher(1)
	assert.Equal(t, "김철수*", sched.Name)

	e, _ := sched.Entry(1, 2)
	assert.True(t, e.Changed)
	assert.Equal(t, 302, e.ClassCode)
	assert.Equal(t, 3, e.Grade)
	assert.Equal(t, 2, e.Class)
	assert.Equal(t, "음악", e.Subject)

	// teacher 2's planned slot was dropped from the live table
	sched2, _ := tt.Teacher(2)
	dropped, _ := sched2.Entry(1, 1)
	assert.True(t, dropped.Changed)
	assert.Zero(t, dropped.ClassCode)
	assert.Empty(t, dropped.Subject)
}

func TestDecodeTeacherTimetable_RemainderFirstBase(t *testing.T) {
	p := teacherPayload(2, 1)
	p.SeparationBase = models.OptionalInt{Value: 1000, Valid: true}
	// remainder-first: subject 5, teacher 2
	p.OriginalCodes[1][1][3][4] = 5002
	p.TeacherCurrentCodes[2][3][4] = Pack(101, 5, 1000, RemainderFirst)

	tt, err := DecodeTeacherTimetable(p)
	require.NoError(t, err)

	sched, _ := tt.Teacher(2)
	e, _ := sched.Entry(3, 4)
	assert.False(t, e.Changed)
	assert.Equal(t, 101, e.ClassCode)
	assert.Equal(t, "수학", e.Subject)
}

func TestDecodeTeacherTimetable_IgnoresUnknownTeachers(t *testing.T) {
	p := teacherPayload(1, 1)
	p.OriginalCodes[1][1][1][1] = 905 // teacher 9 does not exist
	p.OriginalCodes[1][1][1][2] = 5   // teacher 0

	tt, err := DecodeTeacherTimetable(p)
	require.NoError(t, err)

	sched, _ := tt.Teacher(1)
	for _, day := range sched.Days {
		for _, e := range day {
			assert.False(t, e.Changed, "%+v", e)
		}
	}
}

func TestDecodeTeacherTimetable_IncludesVirtualClasses(t *testing.T) {
	p := teacherPayload(1, 2)
	p.VirtualClassCounts = models.IntTable{0, 1}
	p.OriginalCodes[1][2][1][1] = 103
	p.TeacherCurrentCodes[1][1][1] = 10203

	tt, err := DecodeTeacherTimetable(p)
	require.NoError(t, err)

	sched, _ := tt.Teacher(1)
	e, _ := sched.Entry(1, 1)
	assert.False(t, e.Changed)
	assert.Equal(t, 102, e.ClassCode)
	assert.Equal(t, "과학", e.Subject)
}

func TestDecodeTeacherTimetable_MissingKeys(t *testing.T) {
	tests := []struct {
		key   string
		strip func(p *models.RawSchedulePayload)
	}{
		{models.KeyTeacherCount, func(p *models.RawSchedulePayload) { p.TeacherCount = models.OptionalInt{} }},
		{models.KeyClassCounts, func(p *models.RawSchedulePayload) { p.ClassCounts = nil }},
		{models.KeyOriginalCodes, func(p *models.RawSchedulePayload) { p.OriginalCodes = nil }},
		{models.KeyTeacherCurrentCodes, func(p *models.RawSchedulePayload) { p.TeacherCurrentCodes = nil }},
		{models.KeySubjectNames, func(p *models.RawSchedulePayload) { p.SubjectNames = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p := teacherPayload(1, 1)
			tt.strip(p)

			_, err := DecodeTeacherTimetable(p)
			var perr *PayloadError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.key, perr.Key)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestDecodeTeacherTimetable_CountBounds(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		set   func(p *models.RawSchedulePayload)
		valid bool
	}{
		{"teachers at limit", models.KeyTeacherCount, func(p *models.RawSchedulePayload) {
			p.TeacherCount.Value = maxTeachers
		}, true},
		{"teachers over limit", models.KeyTeacherCount, func(p *models.RawSchedulePayload) {
			p.TeacherCount.Value = maxTeachers + 1
		}, false},
		{"teachers huge", models.KeyTeacherCount, func(p *models.RawSchedulePayload) {
			p.TeacherCount.Value = 4000000000000
		}, false},
		{"classes huge", models.KeyClassCounts, func(p *models.RawSchedulePayload) {
			p.ClassCounts = models.IntTable{0, 4000000000000}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := teacherPayload(1, 1)
			tt.set(p)

			result, err := DecodeTeacherTimetable(p)
			if tt.valid {
				require.NoError(t, err)
				assert.Len(t, result.Teachers, maxTeachers)
				return
			}
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrOutOfRange)

			var perr *PayloadError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.key, perr.Key)
			assert.True(t, perr.OutOfRange)
			assert.Contains(t, err.Error(), "out of range")
		})
	}
}

func TestDecodeTeacherTimetable_NoTeachers(t *testing.T) {
	p := teacherPayload(0, 1)

	tt, err := DecodeTeacherTimetable(p)
	require.NoError(t, err)
	assert.Empty(t, tt.Teachers)
	_, ok := tt.Teacher(1)
	assert.False(t, ok)
}
