package mechanics

import (
	"testing"
)

const testStep = 0.04

// quietSim returns a simulation with every environment force switched off.
func quietSim(width, height float64) *Simulation {
	sim := NewSimulation(Arena{Width: width, Height: height}, DefaultSettings())
	for c := ForceCategory(0); c < ForceCategoryCount; c++ {
		sim.Environment().SetEnabled(c, false)
	}
	return sim
}

func singleMass(sim *Simulation, m *Mass) *Assembly {
	a := NewAssembly()
	a.Add(m)
	sim.Add(a)
	return a
}

func TestFixedMassNeverMoves(t *testing.T) {
	sim := NewSimulation(Arena{Width: 200, Height: 200}, DefaultSettings())
	sim.Environment().SetParams(EnvironmentParams{
		GravityAngle:        DownAngle,
		GravityMagnitude:    50,
		Viscosity:           0.3,
		CenterMassMagnitude: 10,
		CenterMassExponent:  1,
	})
	for _, m := range []*Mass{NewMass(1, 50, 50, 0), NewMass(2, -100, -100, -1)} {
		a := singleMass(sim, m)
		a.Add(NewMass(3, 150, 150, 4))
		start := m.Center()
		for i := 0; i < 50; i++ {
			m.ApplyForce(NewForce(30, 1000))
			sim.Update(testStep)
		}
		if got := m.Center(); got != start {
			t.Fatalf("fixed mass %d moved: got=(%f, %f) want=(%f, %f)", m.ID(), got.X, got.Y, start.X, start.Y)
		}
		sim.ClearAssemblies()
	}
}

func TestGravityFreeFall(t *testing.T) {
	sim := quietSim(800, 800)
	sim.Environment().SetEnabled(Gravity, true)
	sim.Environment().SetParams(EnvironmentParams{GravityAngle: 90, GravityMagnitude: 1})
	m := NewMass(1, 400, 400, 1)
	singleMass(sim, m)

	sim.Update(testStep)

	if got := m.Velocity().YChange(); !approx(got, 1, 1e-9) {
		t.Fatalf("vertical velocity: got=%f want≈1", got)
	}
	if got := m.Velocity().XChange(); !approx(got, 0, 1e-9) {
		t.Fatalf("horizontal velocity: got=%f want≈0", got)
	}
	if got := m.Center().Y; !approx(got, 400+testStep, 1e-9) {
		t.Fatalf("position: got=%f want≈%f", got, 400+testStep)
	}
}

func TestGravityScalesWithMassButAccelerationDoesNot(t *testing.T) {
	sim := quietSim(800, 800)
	sim.Environment().SetEnabled(Gravity, true)
	sim.Environment().SetParams(EnvironmentParams{GravityAngle: 90, GravityMagnitude: 2})
	heavy := NewMass(1, 400, 400, 5)
	singleMass(sim, heavy)

	sim.Update(testStep)

	if got := heavy.Velocity().YChange(); !approx(got, 2, 1e-9) {
		t.Fatalf("vertical velocity: got=%f want≈2", got)
	}
}

func TestWallContainment(t *testing.T) {
	cases := []struct {
		name     string
		x, y     float64
		velocity Force
	}{
		{"left at rest", -50, 100, Force{}},
		{"left moving in", -50, 100, NewForce(LeftAngle, 3)},
		{"right moving in", 260, 100, NewForce(RightAngle, 3)},
		{"top moving in", 100, -40, NewForce(UpAngle, 3)},
		{"bottom moving in", 100, 300, NewForce(DownAngle, 3)},
		{"corner", -30, 260, NewForce(135, 3)},
	}
	for _, offset := range []float64{0, 10, -10} {
		for _, tc := range cases {
			sim := quietSim(200, 200)
			sim.SetWalledAreaOffset(offset)
			m := NewMass(1, tc.x, tc.y, 1)
			m.velocity = tc.velocity
			singleMass(sim, m)

			sim.Update(testStep)

			lo, hi := -offset-1e-9, 200+offset+1e-9
			if m.Left() < lo || m.Right() > hi || m.Top() < lo || m.Bottom() > hi {
				t.Fatalf("%s offset=%g: box escaped: left=%f right=%f top=%f bottom=%f",
					tc.name, offset, m.Left(), m.Right(), m.Top(), m.Bottom())
			}
		}
	}
}

func TestBounceReflectsVelocity(t *testing.T) {
	sim := quietSim(200, 200)
	m := NewMass(1, -20, 100, 1)
	m.velocity = NewForce(LeftAngle, 10)
	singleMass(sim, m)

	sim.Update(testStep)

	// impulse is 2 * 10 * 10 against the wall, leaving -10 + 200
	if got := m.Velocity().XChange(); !approx(got, 190, 1e-9) {
		t.Fatalf("rebound x velocity: got=%f want≈190", got)
	}
	if got := m.Velocity().YChange(); !approx(got, 0, 1e-9) {
		t.Fatalf("rebound y velocity: got=%f want≈0", got)
	}
}

func TestBounceGrowsWithSpeed(t *testing.T) {
	for _, speed := range []float64{1, 4, 10} {
		sim := quietSim(200, 200)
		m := NewMass(1, 100, 240, 1)
		m.velocity = NewForce(DownAngle, speed)
		singleMass(sim, m)

		sim.Update(testStep)

		want := -(2*speed*speed - speed)
		if got := m.Velocity().YChange(); !approx(got, want, 1e-9) {
			t.Fatalf("speed %g: y velocity got=%f want≈%f", speed, got, want)
		}
	}
}

func TestBounceIgnoresVelocityLeavingTheWall(t *testing.T) {
	sim := quietSim(200, 200)
	m := NewMass(1, -20, 100, 1)
	m.velocity = NewForce(RightAngle, 10)
	singleMass(sim, m)

	sim.Update(testStep)

	if got := m.Velocity().XChange(); !approx(got, 10, 1e-9) {
		t.Fatalf("x velocity should be untouched: got=%f want≈10", got)
	}
}

func TestDisablingViscosityStopsDrag(t *testing.T) {
	sim := quietSim(800, 800)
	env := sim.Environment()
	env.SetParams(EnvironmentParams{Viscosity: 0.5})
	env.SetEnabled(Viscosity, true)
	m := NewMass(1, 400, 400, 1)
	m.SetVelocity(RightAngle, 10)
	singleMass(sim, m)

	sim.Update(testStep)
	if got := m.Velocity().Magnitude(); !approx(got, 5, 1e-9) {
		t.Fatalf("viscosity should halve speed: got=%f want≈5", got)
	}

	if env.ToggleForce(Viscosity) {
		t.Fatalf("toggle should report viscosity off")
	}
	sim.Update(testStep)
	if got := m.Velocity().Magnitude(); !approx(got, 5, 1e-9) {
		t.Fatalf("no drag expected once disabled: got=%f want≈5", got)
	}
}

func TestApplyForceAccumulatesUntilUpdate(t *testing.T) {
	sim := quietSim(800, 800)
	m := NewMass(1, 400, 400, 2)
	singleMass(sim, m)

	m.ApplyForce(NewForce(RightAngle, 3))
	m.ApplyForce(NewForce(RightAngle, 1))
	if got := m.PendingForce().Magnitude(); !approx(got, 4, 1e-9) {
		t.Fatalf("pending: got=%f want≈4", got)
	}
	if m.Velocity().Magnitude() != 0 {
		t.Fatalf("velocity changed before update")
	}

	sim.Update(testStep)

	if got := m.Velocity().XChange(); !approx(got, 2, 1e-9) {
		t.Fatalf("velocity after update: got=%f want≈2", got)
	}
	if !m.PendingForce().IsZero() {
		t.Fatalf("pending force should reset after update")
	}
}
