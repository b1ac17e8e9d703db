package mechanics

import (
	"fmt"
	"log"
	"math"
	"strings"
)

// ForceCategory names one independently toggleable environment force.
type ForceCategory int

const (
	Viscosity ForceCategory = iota
	Gravity
	CenterMass
	Wall1
	Wall2
	Wall3
	Wall4
	ForceCategoryCount // Must be last
)

var forceCategoryNames = [ForceCategoryCount]string{
	Viscosity:  "viscosity",
	Gravity:    "gravity",
	CenterMass: "centermass",
	Wall1:      "wall1",
	Wall2:      "wall2",
	Wall3:      "wall3",
	Wall4:      "wall4",
}

func (c ForceCategory) String() string {
	if c < 0 || c >= ForceCategoryCount {
		return fmt.Sprintf("force(%d)", int(c))
	}
	return forceCategoryNames[c]
}

// ParseForceCategory maps a category name back to its value.
func ParseForceCategory(name string) (ForceCategory, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range forceCategoryNames {
		if n == name {
			return ForceCategory(i), true
		}
	}
	return 0, false
}

// WallCategory returns the toggle for wall id 1..4.
func WallCategory(id int) (ForceCategory, bool) {
	if id < 1 || id > 4 {
		return 0, false
	}
	return Wall1 + ForceCategory(id-1), true
}

// Walls, in id order: top pushes down, right pushes left, bottom pushes up,
// left pushes right.
var wallAngles = [4]float64{DownAngle, LeftAngle, UpAngle, RightAngle}

// WallParams configures the repulsion of one wall. Unset walls exert nothing.
type WallParams struct {
	Set       bool
	Magnitude float64
	Exponent  float64
}

// EnvironmentParams is the scalar state read from an environment file.
type EnvironmentParams struct {
	GravityAngle        float64
	GravityMagnitude    float64
	Viscosity           float64
	CenterMassMagnitude float64
	CenterMassExponent  float64
	Walls               [4]WallParams
}

// Environment computes the external forces acting on a mass. It is owned by
// a Simulation and mutated only by loading and by toggles.
type Environment struct {
	params   EnvironmentParams
	enabled  [ForceCategoryCount]bool
	settings Settings
}

// NewEnvironment returns an environment with zero parameters and every
// category enabled.
func NewEnvironment(settings Settings) *Environment {
	e := &Environment{settings: settings.withDefaults()}
	for i := range e.enabled {
		e.enabled[i] = true
	}
	return e
}

func (e *Environment) Params() EnvironmentParams {
	return e.params
}

func (e *Environment) SetParams(p EnvironmentParams) {
	e.params = p
}

func (e *Environment) Enabled(c ForceCategory) bool {
	if c < 0 || c >= ForceCategoryCount {
		return false
	}
	return e.enabled[c]
}

func (e *Environment) SetEnabled(c ForceCategory, on bool) {
	if c < 0 || c >= ForceCategoryCount {
		return
	}
	e.enabled[c] = on
}

// ToggleForce flips a category and returns its new state.
func (e *Environment) ToggleForce(c ForceCategory) bool {
	if c < 0 || c >= ForceCategoryCount {
		log.Printf("Warning: unknown force category %d", int(c))
		return false
	}
	e.enabled[c] = !e.enabled[c]
	log.Printf("%s is now %t", c, e.enabled[c])
	return e.enabled[c]
}

// Toggles returns the state of every category keyed by name.
func (e *Environment) Toggles() map[string]bool {
	out := make(map[string]bool, ForceCategoryCount)
	for i, on := range e.enabled {
		out[ForceCategory(i).String()] = on
	}
	return out
}

// AllForces recomputes every enabled category for m and returns their sum.
// Nothing is cached between calls.
func (e *Environment) AllForces(m *Mass, a *Assembly, arena Arena) Force {
	var total Force
	for c := ForceCategory(0); c < ForceCategoryCount; c++ {
		if !e.enabled[c] {
			continue
		}
		total = total.Sum(e.CategoryForce(c, m, a, arena))
	}
	return total
}

// CategoryForce returns the contribution of a single category, ignoring its
// toggle.
func (e *Environment) CategoryForce(c ForceCategory, m *Mass, a *Assembly, arena Arena) Force {
	switch c {
	case Viscosity:
		return e.viscosity(m)
	case Gravity:
		return e.gravity(m)
	case CenterMass:
		return e.centerMass(m, a)
	case Wall1, Wall2, Wall3, Wall4:
		return e.wall(int(c-Wall1), m, arena)
	}
	return Force{}
}

// gravity is scaled by the mass itself. Fixed masses feel none.
func (e *Environment) gravity(m *Mass) Force {
	if m.mass <= 0 {
		return Force{}
	}
	return NewForce(e.params.GravityAngle, e.params.GravityMagnitude).Scale(m.mass)
}

func (e *Environment) viscosity(m *Mass) Force {
	drag := m.velocity.Negate()
	return NewForce(drag.Direction(), drag.Magnitude()*e.params.Viscosity)
}

// centerMass attracts m toward the mass-weighted centroid of its assembly.
func (e *Environment) centerMass(m *Mass, a *Assembly) Force {
	if a == nil {
		return Force{}
	}
	var xCenter, yCenter, total float64
	for _, other := range a.Masses() {
		if other.mass <= 0 {
			continue
		}
		xCenter += other.mass * other.center.X
		yCenter += other.mass * other.center.Y
		total += other.mass
	}
	if total <= 0 {
		return Force{}
	}
	dx := xCenter/total - m.center.X
	dy := yCenter/total - m.center.Y
	if dx == 0 && dy == 0 {
		return Force{}
	}
	distance := e.scaledDistance(DistanceBetween(dx, dy))
	return finite(NewForce(AngleOf(dx, dy),
		e.params.CenterMassMagnitude/math.Pow(distance, e.params.CenterMassExponent)))
}

// wall repels m from wall index i (0 based) toward the interior.
func (e *Environment) wall(i int, m *Mass, arena Arena) Force {
	w := e.params.Walls[i]
	if !w.Set {
		return Force{}
	}
	var raw float64
	switch i {
	case 0:
		raw = m.center.Y
	case 1:
		raw = arena.Width - m.center.X
	case 2:
		raw = arena.Height - m.center.Y
	case 3:
		raw = m.center.X
	}
	distance := e.scaledDistance(raw)
	return finite(NewForce(wallAngles[i], w.Magnitude/math.Pow(distance, w.Exponent)))
}

// scaledDistance divides by the distance divider and keeps the result away
// from zero and from negative values, which would turn a fractional power
// into NaN.
func (e *Environment) scaledDistance(raw float64) float64 {
	d := raw / e.settings.ForceDistanceDivider
	if d < e.settings.MinForceDistance {
		return e.settings.MinForceDistance
	}
	return d
}

func finite(f Force) Force {
	if math.IsNaN(f.magnitude) || math.IsInf(f.magnitude, 0) {
		return Force{}
	}
	return f
}

func (e *Environment) String() string {
	var b strings.Builder
	p := e.params
	fmt.Fprintf(&b, "gravity=%t %s viscosity=%t %1.2f centermass=%t (%1.2f ^%1.2f)",
		e.enabled[Gravity], NewForce(p.GravityAngle, p.GravityMagnitude),
		e.enabled[Viscosity], p.Viscosity,
		e.enabled[CenterMass], p.CenterMassMagnitude, p.CenterMassExponent)
	for i, w := range p.Walls {
		if !w.Set {
			continue
		}
		fmt.Fprintf(&b, " wall%d=%t (%1.2f ^%1.2f)", i+1, e.enabled[Wall1+ForceCategory(i)], w.Magnitude, w.Exponent)
	}
	return b.String()
}
