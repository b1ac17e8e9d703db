package systems

import (
	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/shared/mechanics"
	"github.com/automoto/springies/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHover mirrors every mass into the resolv space and finds the mass
// under the cursor. Proxies are reused between ticks.
func UpdateHover(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	data, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	hover := components.Hover.Get(spaceEntry)
	input := getOrCreateInput(ecs)

	hover.Proxies = SyncMassProxies(space, hover.Proxies, data.Sim)

	if hover.Cursor != nil {
		size := cfg.Hover.CursorSize
		hover.Cursor.X = input.CursorX - size/2
		hover.Cursor.Y = input.CursorY - size/2
		hover.Cursor.Update()
	}
	hover.Mass = MassUnderCursor(hover.Cursor)
}

// SyncMassProxies resizes proxies to one object per mass in sim, places each
// over its mass and returns the updated slice.
func SyncMassProxies(space *resolv.Space, proxies []*resolv.Object, sim *mechanics.Simulation) []*resolv.Object {
	i := 0
	for _, a := range sim.Assemblies() {
		for _, m := range a.Masses() {
			var obj *resolv.Object
			if i < len(proxies) {
				obj = proxies[i]
			} else {
				obj = resolv.NewObject(0, 0, 0, 0, tags.ResolvMass)
				space.Add(obj)
				proxies = append(proxies, obj)
			}
			size := m.Size()
			obj.X, obj.Y = m.Left(), m.Top()
			obj.W, obj.H = size, size
			obj.Data = m
			obj.Update()
			i++
		}
	}

	// Drop proxies for masses that went away.
	for _, obj := range proxies[i:] {
		space.Remove(obj)
	}
	for j := i; j < len(proxies); j++ {
		proxies[j] = nil
	}
	return proxies[:i]
}

// MassUnderCursor returns the mass whose proxy overlaps the cursor, or nil.
func MassUnderCursor(cursor *resolv.Object) *mechanics.Mass {
	if cursor == nil {
		return nil
	}
	collision := cursor.Check(0, 0, tags.ResolvMass)
	if collision == nil {
		return nil
	}
	for _, obj := range collision.ObjectsByTags(tags.ResolvMass) {
		if !overlaps(cursor, obj) {
			continue
		}
		if m, ok := obj.Data.(*mechanics.Mass); ok {
			return m
		}
	}
	return nil
}

// overlaps tests the rectangles directly since Check only reports shared
// cells.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
