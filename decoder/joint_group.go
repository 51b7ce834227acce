package decoder

import "comcigan-server/models"

const (
	// GroupLabelSuffix follows the letter of every joint-group label.
	GroupLabelSuffix = "_"

	// Groups 1..26 map to 'A'..'Z'; 27 and up continue from 'a'.
	groupLetterSpan = 26
	upperCaseOffset = int('A') - 1
	lowerCaseOffset = int('a') - (groupLetterSpan + 1)
)

// Cell addresses one slot of the class-indexed timetable.
type Cell struct {
	Grade   int
	Class   int
	Weekday int
	Period  int
}

// GroupLabel renders a 1-based group index as its printable label.
func GroupLabel(index int) string {
	offset := upperCaseOffset
	if index > groupLetterSpan {
		offset = lowerCaseOffset
	}
	return string(rune(index+offset)) + GroupLabelSuffix
}

type jointMember struct {
	subject int
	grade   int
	class   int
}

// decodeMember unpacks subject*1000 + grade*100 + class.
func decodeMember(packed int) jointMember {
	subject, rest := Split(packed, memberSubjectBase)
	grade, class := Split(rest, classCodeBase)
	return jointMember{subject: subject, grade: grade, class: class}
}

// ResolveJointGroup returns the label of the first joint group that lists
// (cell.Grade, cell.Class, subject), or "" when none does. A group is
// skipped as soon as one of its members disagrees with that member's
// original code at the same weekday and period.
func ResolveJointGroup(groups models.GroupTable, original models.CodeTable, cell Cell, subject int) string {
	if groups == nil {
		return ""
	}
	for i := 1; i <= groups.Count(); i++ {
		if groupMatches(groups.Row(i), original, cell, subject) {
			return GroupLabel(i)
		}
	}
	return ""
}

func groupMatches(row []int, original models.CodeTable, cell Cell, subject int) bool {
	if len(row) == 0 {
		return false
	}
	matched := false
	for j := 1; j <= row[0]; j++ {
		if j >= len(row) {
			return false
		}
		m := decodeMember(row[j])
		code := original.At(m.grade, m.class, cell.Weekday, cell.Period)
		if _, crossSubject := Split(code, classCodeBase); crossSubject != m.subject {
			return false
		}
		if m.grade == cell.Grade && m.class == cell.Class && m.subject == subject {
			matched = true
		}
	}
	return matched
}
