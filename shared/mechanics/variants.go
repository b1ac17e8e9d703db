package mechanics

import (
	"fmt"
	"math"
)

// Spring pulls or pushes its ends toward a fixed rest length (Hooke's law).
type Spring struct {
	link
}

func NewSpring(start, end *Mass, restLength, k float64) (*Spring, error) {
	l, err := newLink(start, end, restLength, k)
	if err != nil {
		return nil, err
	}
	return &Spring{link: l}, nil
}

func (s *Spring) Kind() Kind {
	return KindSpring
}

// Update applies k*(rest-current) along the spring axis, +F to the start and
// -F to the end.
func (s *Spring) Update(float64) {
	dx, dy := s.components()
	f := NewForce(AngleOf(dx, dy), s.k*(s.length-DistanceBetween(dx, dy)))
	s.start.ApplyForce(f)
	s.end.ApplyForce(f.Negate())
}

func (s *Spring) Hint() PaintHint {
	return stretchHint(s.DistanceBetweenEnds(), s.length)
}

func (s *Spring) String() string {
	return s.describe(KindSpring)
}

// Bar holds its ends at a natural length by moving them instead of applying
// a force.
type Bar struct {
	link
}

// NewBar builds a bar. A stiffness of zero or less makes it rigid, freezing
// its length to the current separation of the ends.
func NewBar(start, end *Mass, length, k float64) (*Bar, error) {
	l, err := newLink(start, end, length, k)
	if err != nil {
		return nil, err
	}
	b := &Bar{link: l}
	if k <= 0 {
		b.length = b.DistanceBetweenEnds()
	}
	return b, nil
}

func (b *Bar) Kind() Kind {
	return KindBar
}

func (b *Bar) Update(float64) {
	ForceLengthToNatural(b.start, b.end, b.length)
}

func (b *Bar) Hint() PaintHint {
	return HintRigid
}

func (b *Bar) String() string {
	return b.describe(KindBar)
}

// Muscle is a bar whose natural length oscillates with its age.
type Muscle struct {
	link
	amplitude     float64
	initialLength float64
	age           float64
	frequency     float64
}

func NewMuscle(start, end *Mass, length, k, amplitude, frequency float64) (*Muscle, error) {
	l, err := newLink(start, end, length, k)
	if err != nil {
		return nil, err
	}
	return &Muscle{
		link:          l,
		amplitude:     amplitude,
		initialLength: length,
		frequency:     frequency,
	}, nil
}

func (m *Muscle) Kind() Kind {
	return KindMuscle
}

// CurrentRestLength returns the natural length at the given age.
func (m *Muscle) CurrentRestLength(age float64) float64 {
	return m.initialLength + m.amplitude*math.Sin(m.frequency*age)
}

func (m *Muscle) Age() float64 {
	return m.age
}

func (m *Muscle) Amplitude() float64 {
	return m.amplitude
}

func (m *Muscle) Update(dt float64) {
	m.length = m.CurrentRestLength(m.age)
	ForceLengthToNatural(m.start, m.end, m.length)
	m.age += dt
}

// Hint compares against the initial length, not the oscillating one.
func (m *Muscle) Hint() PaintHint {
	return stretchHint(m.DistanceBetweenEnds(), m.initialLength)
}

func (m *Muscle) String() string {
	return fmt.Sprintf("%s amplitude=%1.2f", m.describe(KindMuscle), m.Amplitude())
}
