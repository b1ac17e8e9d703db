package mechanics

import (
	"fmt"
	"math"
	"strings"

	dmath "github.com/yohamta/donburi/features/math"
)

// Surface receives paint calls. Implementations decide styling.
type Surface interface {
	DrawMass(m *Mass)
	DrawConnector(c Connector)
}

// Assembly is a group of masses and connectors loaded together. It owns its
// masses; connectors only point at them.
type Assembly struct {
	elements []Element
}

func NewAssembly() *Assembly {
	return &Assembly{}
}

// Add appends a mass or connector. Insertion order is paint order.
func (a *Assembly) Add(e Element) {
	if e == nil {
		return
	}
	a.elements = append(a.elements, e)
}

// Remove drops the first occurrence of e and reports whether it was present.
func (a *Assembly) Remove(e Element) bool {
	for i, el := range a.elements {
		if el == e {
			a.elements = append(a.elements[:i], a.elements[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Assembly) Len() int {
	return len(a.elements)
}

// Masses returns the masses in insertion order.
func (a *Assembly) Masses() []*Mass {
	masses := make([]*Mass, 0, len(a.elements))
	for _, e := range a.elements {
		if m, ok := e.(*Mass); ok {
			masses = append(masses, m)
		}
	}
	return masses
}

// Connectors returns the connectors in insertion order.
func (a *Assembly) Connectors() []Connector {
	connectors := make([]Connector, 0, len(a.elements))
	for _, e := range a.elements {
		if c, ok := e.(Connector); ok {
			connectors = append(connectors, c)
		}
	}
	return connectors
}

func (a *Assembly) Paint(s Surface) {
	for _, e := range a.elements {
		switch el := e.(type) {
		case *Mass:
			s.DrawMass(el)
		case Connector:
			s.DrawConnector(el)
		}
	}
}

// UpdateMovers runs every connector before any mass moves, so connector
// forces and corrections see this tick's starting positions.
func (a *Assembly) UpdateMovers(sim *Simulation, dt float64) {
	for _, c := range a.Connectors() {
		c.Update(dt)
	}
	for _, m := range a.Masses() {
		m.Update(sim, a, dt)
	}
}

// Drawable returns the first element matching id.
func (a *Assembly) Drawable(id int) (Element, bool) {
	for _, e := range a.elements {
		if e.Match(id) {
			return e, true
		}
	}
	return nil, false
}

// MassByID resolves a mass reference.
func (a *Assembly) MassByID(id int) (*Mass, error) {
	e, ok := a.Drawable(id)
	if !ok {
		return nil, fmt.Errorf("mass %d: %w", id, ErrMassNotFound)
	}
	m, ok := e.(*Mass)
	if !ok {
		return nil, fmt.Errorf("element %d is a %s: %w", id, e.Kind(), ErrMassNotFound)
	}
	return m, nil
}

// NearestMass returns the mass closest to point and its distance. ok is
// false when the assembly has no masses.
func (a *Assembly) NearestMass(point dmath.Vec2) (nearest *Mass, distance float64, ok bool) {
	distance = math.Inf(1)
	for _, m := range a.Masses() {
		d := DistanceBetween(point.X-m.center.X, point.Y-m.center.Y)
		if d < distance {
			nearest = m
			distance = d
		}
	}
	return nearest, distance, nearest != nil
}

func (a *Assembly) String() string {
	var b strings.Builder
	masses, connectors := a.Masses(), a.Connectors()
	fmt.Fprintf(&b, "%d masses, %d connectors", len(masses), len(connectors))
	for _, e := range a.elements {
		fmt.Fprintf(&b, "\n  %v", e)
	}
	return b.String()
}
