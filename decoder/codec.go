package decoder

const (
	// DefaultBase is the separation base used when the payload has none.
	DefaultBase = 100
	// EmptyCode is the largest packed value that carries no assignment.
	EmptyCode = 100

	classCodeBase     = 100
	memberSubjectBase = 1000
)

// Layout says which half of a packed code holds the owner (teacher or
// class) and which holds the subject.
type Layout int

const (
	// QuotientFirst: owner = v / base, subject = v % base.
	QuotientFirst Layout = iota
	// RemainderFirst: owner = v % base, subject = v / base.
	RemainderFirst
)

func (l Layout) String() string {
	if l == RemainderFirst {
		return "remainder-first"
	}
	return "quotient-first"
}

// LayoutFor returns the layout the service uses for a separation base:
// quotient-first for 100, remainder-first for anything else.
//
// TODO: confirm against a live payload whether a non-100 base is ever sent;
// the remainder-first branch is kept until one turns up or is ruled out.
func LayoutFor(base int) Layout {
	if normalizeBase(base) == DefaultBase {
		return QuotientFirst
	}
	return RemainderFirst
}

// Split returns floor(v/base) and the floored remainder.
func Split(v, base int) (upper, lower int) {
	base = normalizeBase(base)
	upper = floorDiv(v, base)
	return upper, v - upper*base
}

// Combine is the inverse of Split.
func Combine(upper, lower, base int) int {
	return upper*normalizeBase(base) + lower
}

// Owner extracts the owner half of v under layout l.
func Owner(v, base int, l Layout) int {
	upper, lower := Split(v, base)
	if l == RemainderFirst {
		return lower
	}
	return upper
}

// Subject extracts the subject half of v under layout l.
func Subject(v, base int, l Layout) int {
	upper, lower := Split(v, base)
	if l == RemainderFirst {
		return upper
	}
	return lower
}

// Pack builds a code whose Owner and Subject under l are owner and subject.
func Pack(owner, subject, base int, l Layout) int {
	if l == RemainderFirst {
		return Combine(subject, owner, base)
	}
	return Combine(owner, subject, base)
}

// Assigned reports whether a packed code carries an assignment.
func Assigned(v int) bool {
	return v > EmptyCode
}

func normalizeBase(base int) int {
	if base <= 0 {
		return DefaultBase
	}
	return base
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// slot is a packed code split for display. Both timetable views go through
// it so the sentinel rule lives in one place.
type slot struct {
	owner    int
	subject  int
	assigned bool
}

func splitSlot(code, base int, l Layout) slot {
	return slot{
		owner:    Owner(code, base, l),
		subject:  Subject(code, base, l),
		assigned: Assigned(code),
	}
}
