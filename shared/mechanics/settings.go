// Package mechanics is the physics update engine: point masses, the
// connectors that bind them, the environment forces acting on them and the
// assemblies and simulation that step them once per tick.
//
// It has no dependencies on ebitengine so it can be driven headless.
package mechanics

const (
	DefaultForceDistanceDivider = 15.0
	DefaultMinForceDistance     = 0.1
	DefaultMuscleFrequency      = 1.5
	DefaultMassSize             = 16.0
)

// Transient drag mass and bar parameters. A negative mass is always fixed and
// a negative stiffness makes the bar rigid.
const (
	DragMassID       = -1
	DragMassValue    = -1.0
	DragBarStiffness = -1.0
)

// Settings holds the numeric constants of the force model.
type Settings struct {
	// ForceDistanceDivider pre-scales distances before exponentiation.
	ForceDistanceDivider float64
	// MinForceDistance is the smallest scaled distance fed to an inverse power.
	MinForceDistance float64
	MuscleFrequency  float64
	MassSize         float64
}

func DefaultSettings() Settings {
	return Settings{
		ForceDistanceDivider: DefaultForceDistanceDivider,
		MinForceDistance:     DefaultMinForceDistance,
		MuscleFrequency:      DefaultMuscleFrequency,
		MassSize:             DefaultMassSize,
	}
}

// withDefaults fills zero fields so a partially specified Settings is usable.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.ForceDistanceDivider <= 0 {
		s.ForceDistanceDivider = d.ForceDistanceDivider
	}
	if s.MinForceDistance <= 0 {
		s.MinForceDistance = d.MinForceDistance
	}
	if s.MuscleFrequency == 0 {
		s.MuscleFrequency = d.MuscleFrequency
	}
	if s.MassSize <= 0 {
		s.MassSize = d.MassSize
	}
	return s
}

// Arena is the visible rectangle masses bounce inside.
type Arena struct {
	Width  float64
	Height float64
}
