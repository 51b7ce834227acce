package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndCombine(t *testing.T) {
	tests := []struct {
		name      string
		v, base   int
		wantUpper int
		wantLower int
	}{
		{"teacher and subject", 305, 100, 3, 5},
		{"two digit teacher", 1207, 100, 12, 7},
		{"under base", 42, 100, 0, 42},
		{"zero", 0, 100, 0, 0},
		{"member triple", 7102, 1000, 7, 102},
		{"negative floors", -1, 100, -1, 99},
		{"zero base falls back to default", 305, 0, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upper, lower := Split(tt.v, tt.base)
			assert.Equal(t, tt.wantUpper, upper)
			assert.Equal(t, tt.wantLower, lower)
			assert.Equal(t, tt.v, Combine(upper, lower, tt.base))
		})
	}
}

func TestOwnerAndSubject_QuotientFirst(t *testing.T) {
	assert.Equal(t, 3, Owner(305, 100, QuotientFirst))
	assert.Equal(t, 5, Subject(305, 100, QuotientFirst))
	assert.Equal(t, 30512, Pack(305, 12, 100, QuotientFirst))
}

func TestOwnerAndSubject_RemainderFirst(t *testing.T) {
	// subject 12, owner 7 under base 1000
	assert.Equal(t, 7, Owner(12007, 1000, RemainderFirst))
	assert.Equal(t, 12, Subject(12007, 1000, RemainderFirst))
	assert.Equal(t, 12007, Pack(7, 12, 1000, RemainderFirst))

	// the same value read quotient-first swaps the halves
	assert.Equal(t, 12, Owner(12007, 1000, QuotientFirst))
	assert.Equal(t, 7, Subject(12007, 1000, QuotientFirst))
}

func TestPackRoundTrip(t *testing.T) {
	for _, layout := range []Layout{QuotientFirst, RemainderFirst} {
		t.Run(layout.String(), func(t *testing.T) {
			code := Pack(203, 9, 1000, layout)
			assert.Equal(t, 203, Owner(code, 1000, layout))
			assert.Equal(t, 9, Subject(code, 1000, layout))
		})
	}
}

func TestLayoutFor(t *testing.T) {
	assert.Equal(t, QuotientFirst, LayoutFor(100))
	assert.Equal(t, QuotientFirst, LayoutFor(0))
	assert.Equal(t, RemainderFirst, LayoutFor(1000))
	assert.Equal(t, RemainderFirst, LayoutFor(10))
}

func TestAssigned(t *testing.T) {
	assert.False(t, Assigned(0))
	assert.False(t, Assigned(55))
	assert.False(t, Assigned(100))
	assert.True(t, Assigned(101))
	assert.True(t, Assigned(305))
}

func TestSplitSlot(t *testing.T) {
	s := splitSlot(305, DefaultBase, QuotientFirst)
	assert.Equal(t, slot{owner: 3, subject: 5, assigned: true}, s)

	s = splitSlot(55, DefaultBase, QuotientFirst)
	assert.False(t, s.assigned)
	assert.Equal(t, 55, s.subject)
}
