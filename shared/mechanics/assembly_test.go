package mechanics

import (
	"errors"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

type recordingSurface struct {
	kinds []Kind
}

func (r *recordingSurface) DrawMass(m *Mass) {
	r.kinds = append(r.kinds, m.Kind())
}

func (r *recordingSurface) DrawConnector(c Connector) {
	r.kinds = append(r.kinds, c.Kind())
}

func TestConnectorsUpdateBeforeMasses(t *testing.T) {
	sim := quietSim(800, 800)
	a := NewAssembly()
	still := NewMass(1, 400, 400, 1)
	moving := NewMass(2, 420, 400, 1)
	moving.SetVelocity(RightAngle, 100)
	a.Add(still)
	a.Add(moving)
	bar, _ := NewBar(still, moving, 20, 1)
	a.Add(bar)
	sim.Add(a)

	sim.Update(testStep)

	// The bar saw its natural length, then the mass moved on.
	if got := bar.DistanceBetweenEnds(); !approx(got, 24, 1e-9) {
		t.Fatalf("separation: got=%f want≈24", got)
	}
}

func TestPaintFollowsInsertionOrder(t *testing.T) {
	a := NewAssembly()
	m1 := NewMass(1, 0, 0, 1)
	m2 := NewMass(2, 10, 0, 1)
	s, _ := NewSpring(m1, m2, 10, 1)
	a.Add(m1)
	a.Add(s)
	a.Add(m2)
	a.Add(nil)

	var surface recordingSurface
	a.Paint(&surface)

	want := []Kind{KindMass, KindSpring, KindMass}
	if len(surface.kinds) != len(want) {
		t.Fatalf("paint calls: got=%v want=%v", surface.kinds, want)
	}
	for i := range want {
		if surface.kinds[i] != want[i] {
			t.Fatalf("paint order: got=%v want=%v", surface.kinds, want)
		}
	}
}

func TestDrawableReturnsFirstMatch(t *testing.T) {
	a := NewAssembly()
	first := NewMass(7, 0, 0, 1)
	a.Add(first)
	a.Add(NewMass(7, 5, 5, 1))

	got, ok := a.Drawable(7)
	if !ok || got != first {
		t.Fatalf("drawable: got=%v ok=%t want first mass", got, ok)
	}
	if _, ok := a.Drawable(8); ok {
		t.Fatalf("missing id matched")
	}
	if _, err := a.MassByID(8); !errors.Is(err, ErrMassNotFound) {
		t.Fatalf("MassByID: got=%v want ErrMassNotFound", err)
	}
}

func TestAssemblyNearestMass(t *testing.T) {
	a := NewAssembly()
	if _, _, ok := a.NearestMass(dmath.Vec2{}); ok {
		t.Fatalf("empty assembly reported a mass")
	}

	near := NewMass(1, 10, 10, 1)
	a.Add(NewMass(2, 100, 100, 1))
	a.Add(near)
	m, d, ok := a.NearestMass(dmath.Vec2{X: 13, Y: 14})
	if !ok || m != near {
		t.Fatalf("nearest: got=%v want mass 1", m)
	}
	if !approx(d, 5, 1e-9) {
		t.Fatalf("distance: got=%f want=5", d)
	}
}

func TestRemove(t *testing.T) {
	a := NewAssembly()
	m := NewMass(1, 0, 0, 1)
	a.Add(m)
	if !a.Remove(m) {
		t.Fatalf("remove reported missing")
	}
	if a.Remove(m) {
		t.Fatalf("second remove should report missing")
	}
	if a.Len() != 0 {
		t.Fatalf("len: got=%d want=0", a.Len())
	}
}
