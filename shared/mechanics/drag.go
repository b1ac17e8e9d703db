package mechanics

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Dragger manages the transient mass and rigid bar that let the user pull on
// the nearest mass. The pair lives only between Begin and End.
type Dragger struct {
	assembly *Assembly
	mass     *Mass
	bar      *Bar
}

func (d *Dragger) Active() bool {
	return d.mass != nil
}

// Mass returns the transient mass, or nil when no drag is active.
func (d *Dragger) Mass() *Mass {
	return d.mass
}

// Target returns the mass being pulled, or nil when no drag is active.
func (d *Dragger) Target() *Mass {
	if d.bar == nil {
		return nil
	}
	return d.bar.end
}

// Begin attaches a fixed mass at point to the nearest mass in sim with a
// rigid bar. When a drag is already active it only moves the handle.
func (d *Dragger) Begin(sim *Simulation, point dmath.Vec2) error {
	if d.Active() {
		d.Move(point)
		return nil
	}
	nearest, owner, _, ok := sim.NearestMass(point)
	if !ok {
		return ErrNoMassInRange
	}
	handle := NewMass(DragMassID, point.X, point.Y, DragMassValue)
	handle.SetSize(sim.settings.MassSize)
	bar, err := NewBar(handle, nearest, 0, DragBarStiffness)
	if err != nil {
		return err
	}
	owner.Add(handle)
	owner.Add(bar)
	d.assembly, d.mass, d.bar = owner, handle, bar
	return nil
}

// Move places the handle at point. Physics never moves it.
func (d *Dragger) Move(point dmath.Vec2) {
	if !d.Active() {
		return
	}
	d.mass.SetCenter(point.X, point.Y)
}

// End removes the handle and its bar from their assembly.
func (d *Dragger) End() {
	if !d.Active() {
		return
	}
	d.assembly.Remove(d.bar)
	d.assembly.Remove(d.mass)
	d.assembly, d.mass, d.bar = nil, nil, nil
}
