// models/raw_schedule_payload.go
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Wire keys of the schedule payload.
const (
	KeyClassCounts         = "학급수"
	KeyVirtualClassCounts  = "가상학급수"
	KeyOriginalCodes       = "자료481"
	KeyCurrentCodes        = "자료147"
	KeyClassroomCodes      = "자료245"
	KeyClassroomEnabled    = "강의실"
	KeyTeacherNames        = "자료446"
	KeySubjectNames        = "자료492"
	KeyJointGroups         = "동시그룹"
	KeySeparationBase      = "분리"
	KeyTeacherCount        = "교사수"
	KeyTeacherCurrentCodes = "자료542"
)

var ErrPayloadNotObject = errors.New("schedule payload is not a JSON object")

// RawSchedulePayload is the document returned by the timetable endpoint.
// Every index (grade, class, weekday, period, teacher) is 1-based; slot 0 of
// each array is a placeholder. A nil table means the key was absent or not
// an array.
type RawSchedulePayload struct {
	ClassCounts         IntTable         `json:"학급수"`
	VirtualClassCounts  IntTable         `json:"가상학급수"`
	OriginalCodes       CodeTable        `json:"자료481"`
	CurrentCodes        CodeTable        `json:"자료147"`
	ClassroomCodes      CodeTable        `json:"자료245"`
	ClassroomEnabled    Flag             `json:"강의실"`
	TeacherNames        NameTable        `json:"자료446"`
	SubjectNames        NameTable        `json:"자료492"`
	JointGroups         GroupTable       `json:"동시그룹"`
	SeparationBase      OptionalInt      `json:"분리"`
	TeacherCount        OptionalInt      `json:"교사수"`
	TeacherCurrentCodes TeacherCodeTable `json:"자료542"`
}

// ParseRawSchedulePayload decodes a payload, rejecting anything that is not
// a JSON object.
func ParseRawSchedulePayload(data []byte) (*RawSchedulePayload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrPayloadNotObject
	}
	var p RawSchedulePayload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// IntTable is a 1-based integer array such as the per-grade class counts.
type IntTable []int

func (t *IntTable) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	*t = toInts(v)
	return nil
}

// At returns the value at i, or 0 when i is out of range.
func (t IntTable) At(i int) int {
	if i < 0 || i >= len(t) {
		return 0
	}
	return t[i]
}

// CodeTable holds packed codes indexed [grade][class][weekday][period].
type CodeTable [][][][]int

func (t *CodeTable) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	grades, ok := v.([]any)
	if !ok {
		*t = nil
		return nil
	}
	out := make(CodeTable, len(grades))
	for g, grade := range grades {
		classes, ok := grade.([]any)
		if !ok {
			continue
		}
		out[g] = make([][][]int, len(classes))
		for c, class := range classes {
			days, ok := class.([]any)
			if !ok {
				continue
			}
			out[g][c] = make([][]int, len(days))
			for d, day := range days {
				out[g][c][d] = toInts(day)
			}
		}
	}
	*t = out
	return nil
}

// At returns the code of a cell, or 0 when the cell is absent.
func (t CodeTable) At(grade, class, weekday, period int) int {
	if grade < 0 || grade >= len(t) {
		return 0
	}
	classes := t[grade]
	if class < 0 || class >= len(classes) {
		return 0
	}
	days := classes[class]
	if weekday < 0 || weekday >= len(days) {
		return 0
	}
	return IntTable(days[weekday]).At(period)
}

// TeacherCodeTable holds packed codes indexed [teacher][weekday][period].
type TeacherCodeTable [][][]int

func (t *TeacherCodeTable) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	teachers, ok := v.([]any)
	if !ok {
		*t = nil
		return nil
	}
	out := make(TeacherCodeTable, len(teachers))
	for i, teacher := range teachers {
		days, ok := teacher.([]any)
		if !ok {
			continue
		}
		out[i] = make([][]int, len(days))
		for d, day := range days {
			out[i][d] = toInts(day)
		}
	}
	*t = out
	return nil
}

func (t TeacherCodeTable) At(teacher, weekday, period int) int {
	if teacher < 0 || teacher >= len(t) {
		return 0
	}
	days := t[teacher]
	if weekday < 0 || weekday >= len(days) {
		return 0
	}
	return IntTable(days[weekday]).At(period)
}

// NameTable maps an index to a display name. Non-string entries decode as "".
type NameTable []string

func (t *NameTable) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	items, ok := v.([]any)
	if !ok {
		*t = nil
		return nil
	}
	out := make(NameTable, len(items))
	for i, item := range items {
		switch s := item.(type) {
		case string:
			out[i] = s
		case json.Number:
			out[i] = s.String()
		}
	}
	*t = out
	return nil
}

// At returns the name at i, or "" when i is out of range.
func (t NameTable) At(i int) string {
	if i < 0 || i >= len(t) {
		return ""
	}
	return t[i]
}

// GroupTable is the joint-lecture table. Row 0 holds the group count in its
// first slot; every other row holds its member count followed by the packed
// members. Anything that is not an array of arrays decodes as nil.
type GroupTable [][]int

func (t *GroupTable) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	rows, ok := v.([]any)
	if !ok {
		*t = nil
		return nil
	}
	out := make(GroupTable, len(rows))
	for i, row := range rows {
		if _, ok := row.([]any); !ok {
			*t = nil
			return nil
		}
		out[i] = toInts(row)
	}
	*t = out
	return nil
}

// Row returns group i, or nil when it is absent.
func (t GroupTable) Row(i int) []int {
	if i < 0 || i >= len(t) {
		return nil
	}
	return t[i]
}

// Count is the number of groups declared in row 0.
func (t GroupTable) Count() int {
	return IntTable(t.Row(0)).At(0)
}

// Flag accepts 1, "1" and true as set.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	*f = Flag(toInt(v) == 1)
	return nil
}

// OptionalInt records whether a scalar key was present.
type OptionalInt struct {
	Value int
	Valid bool
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	v, err := decodeLoose(data)
	if err != nil {
		return err
	}
	switch v.(type) {
	case json.Number, string, bool:
		*o = OptionalInt{Value: toInt(v), Valid: true}
	default:
		*o = OptionalInt{}
	}
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func decodeLoose(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func toInts(v any) []int {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = toInt(item)
	}
	return out
}

func toInt(v any) int {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	case bool:
		if n {
			return 1
		}
	}
	return 0
}
