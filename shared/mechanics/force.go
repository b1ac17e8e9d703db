package mechanics

import (
	"fmt"
	"math"
)

// Screen-space directions in degrees. The y axis grows downward, so 90
// points toward the bottom of the arena.
const (
	RightAngle = 0.0
	DownAngle  = 90.0
	LeftAngle  = 180.0
	UpAngle    = 270.0
)

const forceEpsilon = 0.000001

// Force is a directed magnitude used for every force and velocity quantity.
// It is a value type: every operation returns a new Force and nothing is
// shared between owners.
type Force struct {
	angle     float64
	magnitude float64
}

// NewForce returns a force pointing at angle (degrees) with the given
// magnitude. A negative magnitude is stored as the reversed direction so the
// magnitude is never negative.
func NewForce(angle, magnitude float64) Force {
	if magnitude < 0 {
		angle += 180
		magnitude = -magnitude
	}
	return Force{angle: normalizeAngle(angle), magnitude: magnitude}
}

// ForceBetween returns the force represented by the component change dx, dy.
func ForceBetween(dx, dy float64) Force {
	return NewForce(AngleOf(dx, dy), DistanceBetween(dx, dy))
}

// normalizeAngle keeps directions within (-360, 360) while leaving 360, -360
// and 0 as distinct values.
func normalizeAngle(angle float64) float64 {
	const offset = 0.001
	sign := -1.0
	if angle < 0 {
		sign = 1
	}
	return math.Mod(angle+sign*offset, 360) - sign*offset
}

func (f Force) Magnitude() float64 {
	return f.magnitude
}

// Direction returns the angle in degrees.
func (f Force) Direction() float64 {
	return f.angle
}

func (f Force) IsZero() bool {
	return f.magnitude < forceEpsilon
}

// XChange returns the horizontal component.
func (f Force) XChange() float64 {
	return f.magnitude * math.Cos(toRadians(f.angle))
}

// YChange returns the vertical component.
func (f Force) YChange() float64 {
	return f.magnitude * math.Sin(toRadians(f.angle))
}

// Sum adds the two forces component-wise and converts back to polar form,
// so opposing forces cancel exactly.
func (f Force) Sum(other Force) Force {
	return ForceBetween(f.XChange()+other.XChange(), f.YChange()+other.YChange())
}

// Difference returns f minus other.
func (f Force) Difference(other Force) Force {
	return f.Sum(other.Negate())
}

// Negate returns the force turned by 180 degrees.
func (f Force) Negate() Force {
	return f.Turn(180)
}

func (f Force) Turn(change float64) Force {
	return NewForce(f.angle+change, f.magnitude)
}

// Scale multiplies the magnitude by change. A negative change reverses the
// direction instead of producing a negative magnitude.
func (f Force) Scale(change float64) Force {
	return NewForce(f.angle, f.magnitude*change)
}

// AngleBetween returns the difference between the two directions in degrees.
func (f Force) AngleBetween(other Force) float64 {
	return f.angle - other.angle
}

// RelativeMagnitude returns the magnitude of f projected onto other's
// direction, negated. It is positive when f points against other.
func (f Force) RelativeMagnitude(other Force) float64 {
	return -f.magnitude * math.Cos(toRadians(f.AngleBetween(other)))
}

// Average returns the mean direction and mean magnitude of the two forces.
func (f Force) Average(other Force) Force {
	return NewForce((f.angle+other.angle)/2, (f.magnitude+other.magnitude)/2)
}

// Equal reports whether both forces have the same direction and magnitude.
func (f Force) Equal(other Force) bool {
	return math.Abs(f.magnitude-other.magnitude) < forceEpsilon &&
		math.Abs(f.angle-other.angle) < forceEpsilon
}

func (f Force) String() string {
	return fmt.Sprintf("(%1.2f, %1.2f)", f.angle, f.magnitude)
}

// DistanceBetween returns the length represented by dx, dy.
func DistanceBetween(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleOf returns the direction of dx, dy in degrees.
func AngleOf(dx, dy float64) float64 {
	return math.Atan2(dy, dx) * 180 / math.Pi
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
