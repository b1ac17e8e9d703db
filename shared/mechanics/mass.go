package mechanics

import (
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Mass is a point body. A mass of zero or less is fixed: it never moves on
// its own but still anchors the connectors attached to it.
type Mass struct {
	id       int
	center   dmath.Vec2
	velocity Force
	pending  Force
	mass     float64
	fixed    bool
	size     float64
}

func NewMass(id int, x, y, mass float64) *Mass {
	return &Mass{
		id:     id,
		center: dmath.Vec2{X: x, Y: y},
		mass:   mass,
		fixed:  mass <= 0,
		size:   DefaultMassSize,
	}
}

func (m *Mass) ID() int {
	return m.id
}

func (m *Mass) Kind() Kind {
	return KindMass
}

func (m *Mass) Match(id int) bool {
	return m.id == id
}

func (m *Mass) Mass() float64 {
	return m.mass
}

func (m *Mass) IsFixed() bool {
	return m.fixed
}

func (m *Mass) Center() dmath.Vec2 {
	return m.center
}

func (m *Mass) SetCenter(x, y float64) {
	m.center = dmath.Vec2{X: x, Y: y}
}

// ShiftCenter moves the center by increment along angle (degrees).
func (m *Mass) ShiftCenter(increment, angle float64) {
	rad := toRadians(angle)
	m.SetCenter(m.center.X+increment*math.Cos(rad), m.center.Y+increment*math.Sin(rad))
}

func (m *Mass) Velocity() Force {
	return m.velocity
}

func (m *Mass) SetVelocity(direction, magnitude float64) {
	m.velocity = NewForce(direction, magnitude)
}

// PendingForce returns the force accumulated since the last update.
func (m *Mass) PendingForce() Force {
	return m.pending
}

// Size is the edge length of the square bounding box.
func (m *Mass) Size() float64 {
	return m.size
}

func (m *Mass) SetSize(size float64) {
	if size > 0 {
		m.size = size
	}
}

func (m *Mass) Left() float64   { return m.center.X - m.size/2 }
func (m *Mass) Right() float64  { return m.center.X + m.size/2 }
func (m *Mass) Top() float64    { return m.center.Y - m.size/2 }
func (m *Mass) Bottom() float64 { return m.center.Y + m.size/2 }

// ApplyForce adds f to the pending force. It has no effect until Update.
func (m *Mass) ApplyForce(f Force) {
	m.pending = m.pending.Sum(f)
}

// Update integrates one step: environment forces join the pending force, the
// total becomes a velocity change, walls reflect the velocity and the center
// advances by velocity*dt.
func (m *Mass) Update(sim *Simulation, assembly *Assembly, dt float64) {
	m.ApplyForce(sim.Environment().AllForces(m, assembly, sim.Arena()))
	pending := m.pending
	m.pending = Force{}
	if m.fixed {
		return
	}
	m.velocity = m.velocity.Sum(pending.Scale(1 / m.mass))
	m.bounce(sim.Arena(), sim.WalledAreaOffset())
	m.SetCenter(m.center.X+m.velocity.XChange()*dt, m.center.Y+m.velocity.YChange()*dt)
}

// bounce clamps the box flush with any wall it crosses and kicks the
// velocity back off that wall. Each axis is checked independently.
func (m *Mass) bounce(arena Arena, offset float64) {
	half := m.size / 2
	if m.Left() < -offset {
		m.center.X = half - offset
		m.reflect(NewForce(RightAngle, 1))
	} else if m.Right() > arena.Width+offset {
		m.center.X = arena.Width - half + offset
		m.reflect(NewForce(LeftAngle, 1))
	}
	if m.Top() < -offset {
		m.center.Y = half - offset
		m.reflect(NewForce(DownAngle, 1))
	} else if m.Bottom() > arena.Height+offset {
		m.center.Y = arena.Height - half + offset
		m.reflect(NewForce(UpAngle, 1))
	}
}

// reflect pushes the velocity back along the inward normal of a wall with an
// impulse of 2 * (speed into the wall) * speed, so faster masses rebound
// harder. Velocities already leaving the wall are left alone.
func (m *Mass) reflect(normal Force) {
	into := m.velocity.RelativeMagnitude(normal)
	if into <= 0 {
		return
	}
	m.velocity = m.velocity.Sum(normal.Scale(2 * into * m.velocity.Magnitude()))
}

func (m *Mass) String() string {
	return fmt.Sprintf("mass %d center=(%1.2f, %1.2f) velocity=%s mass=%1.2f fixed=%t",
		m.id, m.center.X, m.center.Y, m.velocity, m.mass, m.fixed)
}
