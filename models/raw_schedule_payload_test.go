package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawSchedulePayload(t *testing.T) {
	raw := []byte(`{
		"학급수": [0, 2, "3", 1.0],
		"강의실": true,
		"자료446": ["", "김철수", 7, null],
		"자료492": ["", "국어"],
		"자료481": [[], [[], [[], [0, 305, null]], null]],
		"동시그룹": [[1], [2, 7101, 7102]],
		"분리": 100,
		"교사수": "12",
		"자료542": [[], [[], [0, 10105]]]
	}`)

	p, err := ParseRawSchedulePayload(raw)
	require.NoError(t, err)

	assert.Equal(t, IntTable{0, 2, 3, 1}, p.ClassCounts)
	assert.Equal(t, Flag(true), p.ClassroomEnabled)
	assert.Equal(t, NameTable{"", "김철수", "7", ""}, p.TeacherNames)
	assert.Equal(t, 305, p.OriginalCodes.At(1, 1, 1, 1))
	assert.Equal(t, 0, p.OriginalCodes.At(1, 1, 1, 2))
	assert.Equal(t, 0, p.OriginalCodes.At(1, 2, 1, 1))
	assert.Equal(t, 0, p.OriginalCodes.At(3, 9, 9, 9))
	assert.Equal(t, 1, p.JointGroups.Count())
	assert.Equal(t, []int{2, 7101, 7102}, p.JointGroups.Row(1))
	assert.Equal(t, OptionalInt{Value: 100, Valid: true}, p.SeparationBase)
	assert.Equal(t, OptionalInt{Value: 12, Valid: true}, p.TeacherCount)
	assert.Equal(t, 10105, p.TeacherCurrentCodes.At(1, 1, 1))
	assert.Equal(t, 0, p.TeacherCurrentCodes.At(2, 1, 1))

	// absent keys stay nil
	assert.Nil(t, p.CurrentCodes)
	assert.Nil(t, p.VirtualClassCounts)
}

func TestParseRawSchedulePayload_NotObject(t *testing.T) {
	for _, raw := range []string{``, `null`, `[1, 2]`, `"text"`} {
		_, err := ParseRawSchedulePayload([]byte(raw))
		assert.ErrorIs(t, err, ErrPayloadNotObject, "input %q", raw)
	}
}

func TestParseRawSchedulePayload_InvalidJSON(t *testing.T) {
	_, err := ParseRawSchedulePayload([]byte(`{"학급수": [0, 1`))
	assert.Error(t, err)
}

func TestGroupTable_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"string", `{"동시그룹": "none"}`},
		{"object", `{"동시그룹": {"1": [1]}}`},
		{"flat array", `{"동시그룹": [1, 2, 3]}`},
		{"mixed rows", `{"동시그룹": [[1], 7101]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseRawSchedulePayload([]byte(tt.raw))
			require.NoError(t, err)
			assert.Nil(t, p.JointGroups)
			assert.Equal(t, 0, p.JointGroups.Count())
		})
	}
}

func TestCodeTable_NonArrayIsAbsent(t *testing.T) {
	p, err := ParseRawSchedulePayload([]byte(`{"자료481": {"1": 2}, "학급수": 3}`))
	require.NoError(t, err)
	assert.Nil(t, p.OriginalCodes)
	assert.Nil(t, p.ClassCounts)
}

func TestOptionalInt_NullIsAbsent(t *testing.T) {
	p, err := ParseRawSchedulePayload([]byte(`{"분리": null}`))
	require.NoError(t, err)
	assert.False(t, p.SeparationBase.Valid)
}

func TestFlag(t *testing.T) {
	for raw, want := range map[string]bool{
		`{"강의실": 1}`:     true,
		`{"강의실": "1"}`:   true,
		`{"강의실": true}`:  true,
		`{"강의실": 0}`:     false,
		`{"강의실": 2}`:     false,
		`{"강의실": false}`: false,
		`{}`:             false,
	} {
		p, err := ParseRawSchedulePayload([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, Flag(want), p.ClassroomEnabled, raw)
	}
}

func TestTableAccessorsOutOfRange(t *testing.T) {
	assert.Equal(t, 0, IntTable(nil).At(3))
	assert.Equal(t, 0, IntTable{1, 2}.At(-1))
	assert.Equal(t, "", NameTable{"a"}.At(1))
	assert.Nil(t, GroupTable{{1}}.Row(2))
	assert.Equal(t, 0, CodeTable(nil).At(1, 1, 1, 1))
	assert.Equal(t, 0, TeacherCodeTable(nil).At(1, 1, 1))
}
