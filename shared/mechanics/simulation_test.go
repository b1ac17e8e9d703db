package mechanics

import (
	"strings"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestClearAssemblies(t *testing.T) {
	sim := quietSim(200, 200)
	singleMass(sim, NewMass(1, 10, 10, 1))
	singleMass(sim, NewMass(1, 20, 20, 1))
	if got := sim.MassCount(); got != 2 {
		t.Fatalf("mass count: got=%d want=2", got)
	}

	sim.ClearAssemblies()

	if len(sim.Assemblies()) != 0 || sim.MassCount() != 0 {
		t.Fatalf("assemblies survived clear")
	}
	sim.Update(testStep)
}

func TestNearestMassAcrossAssemblies(t *testing.T) {
	sim := quietSim(200, 200)
	far := NewMass(1, 150, 150, 1)
	near := NewMass(1, 40, 40, 1)
	singleMass(sim, far)
	second := singleMass(sim, near)

	m, owner, d, ok := sim.NearestMass(dmath.Vec2{X: 40, Y: 43})
	if !ok || m != near || owner != second {
		t.Fatalf("nearest: got=%v want mass at (40, 40)", m)
	}
	if !approx(d, 3, 1e-9) {
		t.Fatalf("distance: got=%f want=3", d)
	}
}

func TestNearestMassTieGoesToLaterAssembly(t *testing.T) {
	sim := quietSim(200, 200)
	singleMass(sim, NewMass(1, 50, 50, 1))
	later := NewMass(2, 50, 50, 1)
	singleMass(sim, later)

	if m, _, _, _ := sim.NearestMass(dmath.Vec2{X: 60, Y: 50}); m != later {
		t.Fatalf("tie: got=%v want later assembly", m)
	}
}

func TestNearestMassOutOfRange(t *testing.T) {
	sim := quietSim(100, 100)
	singleMass(sim, NewMass(1, 0, 0, 1))

	if _, _, _, ok := sim.NearestMass(dmath.Vec2{X: 500, Y: 500}); ok {
		t.Fatalf("mass beyond the arena diagonal reach was returned")
	}
	if _, _, _, ok := quietSim(100, 100).NearestMass(dmath.Vec2{}); ok {
		t.Fatalf("empty simulation returned a mass")
	}
}

func TestWalledAreaOffset(t *testing.T) {
	sim := quietSim(200, 200)
	m := NewMass(1, -30, 100, 1)
	singleMass(sim, m)

	sim.ChangeWalledAreaOffset(10)
	sim.ChangeWalledAreaOffset(10)
	if got := sim.WalledAreaOffset(); got != 20 {
		t.Fatalf("offset: got=%f want=20", got)
	}
	if got := m.Center().X; got != -30 {
		t.Fatalf("changing the offset moved the mass: x=%f", got)
	}

	sim.ChangeWalledAreaOffset(-20)
	sim.Update(testStep)
	if got := m.Left(); !approx(got, 0, 1e-9) {
		t.Fatalf("left edge after update: got=%f want=0", got)
	}
}

func TestSimulationString(t *testing.T) {
	sim := quietSim(200, 100)
	singleMass(sim, NewMass(3, 10, 10, 1))
	got := sim.String()
	if !strings.Contains(got, "200x100") || !strings.Contains(got, "assembly 0") {
		t.Fatalf("string: got=%q", got)
	}
}

func TestResizeMovesTheWalls(t *testing.T) {
	sim := quietSim(200, 200)
	m := NewMass(1, 180, 100, 1)
	singleMass(sim, m)

	if sim.Resize(Arena{Width: 200, Height: 200}) {
		t.Fatalf("same arena should report no change")
	}
	if !sim.Resize(Arena{Width: 100, Height: 120}) {
		t.Fatalf("smaller arena should report a change")
	}
	if got := sim.Arena(); got.Width != 100 || got.Height != 120 {
		t.Fatalf("arena: got=%gx%g want=100x120", got.Width, got.Height)
	}

	sim.Update(testStep)

	if m.Right() > 100+1e-9 {
		t.Fatalf("mass outside the new right wall: right=%f", m.Right())
	}
}
