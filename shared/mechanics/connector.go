package mechanics

import "fmt"

// Kind identifies the variant of an assembly element.
type Kind int

const (
	KindMass Kind = iota
	KindSpring
	KindBar
	KindMuscle
)

func (k Kind) String() string {
	switch k {
	case KindMass:
		return "mass"
	case KindSpring:
		return "spring"
	case KindBar:
		return "bar"
	case KindMuscle:
		return "muscle"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// PaintHint tells the render layer how a connector is currently loaded.
type PaintHint int

const (
	HintStretched PaintHint = iota
	HintCompressed
	HintRigid
)

// Element is anything an Assembly holds.
type Element interface {
	Kind() Kind
	Match(id int) bool
}

// Connector binds two masses it does not own. Each step it either applies a
// force to both ends (Spring) or moves them to satisfy a length (Bar, Muscle).
type Connector interface {
	Element
	Update(dt float64)
	Hint() PaintHint
	Ends() (start, end *Mass)
	// Length is the current natural length.
	Length() float64
	DistanceBetweenEnds() float64
}

// link is the state every connector variant shares.
type link struct {
	start  *Mass
	end    *Mass
	length float64
	k      float64
}

func newLink(start, end *Mass, length, k float64) (link, error) {
	if start == nil || end == nil {
		return link{}, fmt.Errorf("connector endpoint missing: %w", ErrDegenerateGeometry)
	}
	if start == end {
		return link{}, fmt.Errorf("connector joins mass %d to itself: %w", start.id, ErrDegenerateGeometry)
	}
	return link{start: start, end: end, length: length, k: k}, nil
}

func (l *link) Ends() (*Mass, *Mass) {
	return l.start, l.end
}

func (l *link) Length() float64 {
	return l.length
}

// Connectors are never looked up by id.
func (l *link) Match(int) bool {
	return false
}

func (l *link) components() (dx, dy float64) {
	return l.start.center.X - l.end.center.X, l.start.center.Y - l.end.center.Y
}

func (l *link) DistanceBetweenEnds() float64 {
	return DistanceBetween(l.components())
}

func (l *link) describe(kind Kind) string {
	return fmt.Sprintf("%s %d->%d length=%1.2f current=%1.2f k=%1.2f",
		kind, l.start.id, l.end.id, l.length, l.DistanceBetweenEnds(), l.k)
}

// stretchHint compares the current span with a reference length.
func stretchHint(current, reference float64) PaintHint {
	if current-reference < 0 {
		return HintCompressed
	}
	return HintStretched
}

// ForceLengthToNatural moves the ends of a connector directly so their
// separation equals length. Two movable ends share the correction evenly; a
// single movable end takes all of it; two fixed ends stay put.
func ForceLengthToNatural(start, end *Mass, length float64) {
	dx := start.center.X - end.center.X
	dy := start.center.Y - end.center.Y
	angle := AngleOf(dx, dy)
	gap := length - DistanceBetween(dx, dy)

	switch {
	case start.fixed && end.fixed:
		return
	case start.fixed:
		end.ShiftCenter(-gap, angle)
	case end.fixed:
		start.ShiftCenter(gap, angle)
	default:
		start.ShiftCenter(gap/2, angle)
		end.ShiftCenter(-gap/2, angle)
	}
}
