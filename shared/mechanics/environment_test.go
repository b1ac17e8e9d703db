package mechanics

import (
	"math"
	"testing"
)

func TestDisabledCategoriesContributeNothing(t *testing.T) {
	sim := quietSim(300, 300)
	sim.Environment().SetParams(EnvironmentParams{
		GravityAngle:        DownAngle,
		GravityMagnitude:    9,
		Viscosity:           0.4,
		CenterMassMagnitude: 3,
		CenterMassExponent:  1,
		Walls: [4]WallParams{
			{Set: true, Magnitude: 5, Exponent: 1},
			{Set: true, Magnitude: 5, Exponent: 1},
			{Set: true, Magnitude: 5, Exponent: 1},
			{Set: true, Magnitude: 5, Exponent: 1},
		},
	})
	m := NewMass(1, 40, 70, 2)
	m.SetVelocity(30, 12)
	a := singleMass(sim, m)
	a.Add(NewMass(2, 200, 200, 1))

	if got := sim.Environment().AllForces(m, a, sim.Arena()); !got.IsZero() {
		t.Fatalf("all categories disabled: got=%s want zero", got)
	}
}

func TestCenterMassAttraction(t *testing.T) {
	env := NewEnvironment(DefaultSettings())
	env.SetParams(EnvironmentParams{CenterMassMagnitude: 2, CenterMassExponent: 2})
	a := NewAssembly()
	left := NewMass(1, 0, 0, 1)
	right := NewMass(2, 30, 0, 1)
	a.Add(left)
	a.Add(right)

	got := env.CategoryForce(CenterMass, left, a, Arena{Width: 300, Height: 300})
	if !approx(got.XChange(), 2, 1e-9) || !approx(got.YChange(), 0, 1e-9) {
		t.Fatalf("center mass on left: got=(%f, %f) want=(2, 0)", got.XChange(), got.YChange())
	}
	got = env.CategoryForce(CenterMass, right, a, Arena{Width: 300, Height: 300})
	if !approx(got.XChange(), -2, 1e-9) {
		t.Fatalf("center mass on right: got=%f want=-2", got.XChange())
	}
}

func TestCenterMassIgnoresFixedMasses(t *testing.T) {
	env := NewEnvironment(DefaultSettings())
	env.SetParams(EnvironmentParams{CenterMassMagnitude: 2, CenterMassExponent: 1})
	a := NewAssembly()
	m := NewMass(1, 10, 10, 1)
	a.Add(m)
	a.Add(NewMass(2, 90, 90, 0))
	a.Add(NewMass(3, 50, 10, -1))

	// The only positive mass is m itself, so the centroid coincides with it.
	if got := env.CategoryForce(CenterMass, m, a, Arena{Width: 300, Height: 300}); !got.IsZero() {
		t.Fatalf("centroid at the mass itself: got=%s want zero", got)
	}

	fixedOnly := NewAssembly()
	anchor := NewMass(4, 10, 10, 0)
	fixedOnly.Add(anchor)
	fixedOnly.Add(NewMass(5, 40, 10, -3))
	if got := env.CategoryForce(CenterMass, anchor, fixedOnly, Arena{Width: 300, Height: 300}); !got.IsZero() {
		t.Fatalf("zero total mass: got=%s want zero", got)
	}
}

func TestWallRepulsion(t *testing.T) {
	env := NewEnvironment(DefaultSettings())
	wall := WallParams{Set: true, Magnitude: 8, Exponent: 2}
	env.SetParams(EnvironmentParams{Walls: [4]WallParams{wall, wall, wall, wall}})
	arena := Arena{Width: 300, Height: 300}

	cases := []struct {
		category ForceCategory
		x, y     float64
		wantX    float64
		wantY    float64
	}{
		{Wall1, 150, 30, 0, 2},
		{Wall2, 270, 150, -2, 0},
		{Wall3, 150, 270, 0, -2},
		{Wall4, 30, 150, 2, 0},
	}
	for _, tc := range cases {
		m := NewMass(1, tc.x, tc.y, 1)
		got := env.CategoryForce(tc.category, m, nil, arena)
		if !approx(got.XChange(), tc.wantX, 1e-9) || !approx(got.YChange(), tc.wantY, 1e-9) {
			t.Fatalf("%s: got=(%f, %f) want=(%f, %f)", tc.category, got.XChange(), got.YChange(), tc.wantX, tc.wantY)
		}
	}
}

func TestUnsetWallExertsNothing(t *testing.T) {
	env := NewEnvironment(DefaultSettings())
	m := NewMass(1, 5, 5, 1)
	for c := Wall1; c <= Wall4; c++ {
		if got := env.CategoryForce(c, m, nil, Arena{Width: 100, Height: 100}); !got.IsZero() {
			t.Fatalf("%s unset: got=%s want zero", c, got)
		}
	}
}

func TestWallForceStaysFiniteAtAndBeyondTheBoundary(t *testing.T) {
	env := NewEnvironment(DefaultSettings())
	wall := WallParams{Set: true, Magnitude: 8, Exponent: 0.5}
	env.SetParams(EnvironmentParams{Walls: [4]WallParams{wall, wall, wall, wall}})
	arena := Arena{Width: 100, Height: 100}

	for _, p := range [][2]float64{{0, 0}, {-20, -20}, {100, 100}, {130, 130}} {
		m := NewMass(1, p[0], p[1], 1)
		got := env.AllForces(m, nil, arena)
		if math.IsNaN(got.Magnitude()) || math.IsInf(got.Magnitude(), 0) {
			t.Fatalf("force at (%f, %f) not finite: %s", p[0], p[1], got)
		}
	}
}

func TestViscosityOpposesVelocity(t *testing.T) {
	env := NewEnvironment(DefaultSettings())
	env.SetParams(EnvironmentParams{Viscosity: 0.25})
	m := NewMass(1, 50, 50, 1)
	m.SetVelocity(DownAngle, 8)

	got := env.CategoryForce(Viscosity, m, nil, Arena{Width: 100, Height: 100})
	if !approx(got.YChange(), -2, 1e-9) {
		t.Fatalf("viscosity: got=%f want=-2", got.YChange())
	}
}

func TestGravityIgnoresFixedMass(t *testing.T) {
	env := NewEnvironment(DefaultSettings())
	env.SetParams(EnvironmentParams{GravityAngle: DownAngle, GravityMagnitude: 5})
	if got := env.CategoryForce(Gravity, NewMass(1, 0, 0, 0), nil, Arena{}); !got.IsZero() {
		t.Fatalf("gravity on fixed mass: got=%s want zero", got)
	}
	if got := env.CategoryForce(Gravity, NewMass(1, 0, 0, 3), nil, Arena{}); !approx(got.YChange(), 15, 1e-9) {
		t.Fatalf("gravity on mass 3: got=%f want=15", got.YChange())
	}
}

func TestToggleForce(t *testing.T) {
	env := NewEnvironment(DefaultSettings())
	toggles := env.Toggles()
	if len(toggles) != int(ForceCategoryCount) {
		t.Fatalf("toggles: got=%d want=%d", len(toggles), ForceCategoryCount)
	}
	for name, on := range toggles {
		if !on {
			t.Fatalf("%s should start enabled", name)
		}
	}

	if env.ToggleForce(Gravity) {
		t.Fatalf("first toggle should disable gravity")
	}
	if env.Enabled(Gravity) {
		t.Fatalf("gravity still enabled")
	}
	if !env.ToggleForce(Gravity) {
		t.Fatalf("second toggle should enable gravity")
	}
	if env.ToggleForce(ForceCategoryCount) {
		t.Fatalf("unknown category reported enabled")
	}
}

func TestParseForceCategory(t *testing.T) {
	for c := ForceCategory(0); c < ForceCategoryCount; c++ {
		got, ok := ParseForceCategory(c.String())
		if !ok || got != c {
			t.Fatalf("round trip %s: got=%s ok=%t", c, got, ok)
		}
	}
	if got, ok := ParseForceCategory(" Wall3 "); !ok || got != Wall3 {
		t.Fatalf("case and space: got=%s ok=%t", got, ok)
	}
	if _, ok := ParseForceCategory("magnetism"); ok {
		t.Fatalf("unknown name accepted")
	}
	if _, ok := WallCategory(0); ok {
		t.Fatalf("wall 0 accepted")
	}
	if c, ok := WallCategory(4); !ok || c != Wall4 {
		t.Fatalf("wall 4: got=%s ok=%t", c, ok)
	}
}
