package mechanics

import (
	"fmt"
	"log"
	"math"
	"strings"

	dmath "github.com/yohamta/donburi/features/math"
)

// Simulation owns every loaded assembly and the one environment that acts on
// them. It is stepped from a single goroutine.
type Simulation struct {
	assemblies  []*Assembly
	environment *Environment
	arena       Arena
	settings    Settings
	offset      float64
}

func NewSimulation(arena Arena, settings Settings) *Simulation {
	settings = settings.withDefaults()
	return &Simulation{
		environment: NewEnvironment(settings),
		arena:       arena,
		settings:    settings,
	}
}

// Update advances every assembly by dt. Each assembly runs its connectors
// and then its masses before the next assembly starts.
func (s *Simulation) Update(dt float64) {
	for _, a := range s.assemblies {
		a.UpdateMovers(s, dt)
	}
}

func (s *Simulation) Add(a *Assembly) {
	if a == nil {
		return
	}
	s.assemblies = append(s.assemblies, a)
}

func (s *Simulation) ClearAssemblies() {
	s.assemblies = nil
}

func (s *Simulation) Assemblies() []*Assembly {
	return s.assemblies
}

func (s *Simulation) Paint(surface Surface) {
	for _, a := range s.assemblies {
		a.Paint(surface)
	}
}

func (s *Simulation) Environment() *Environment {
	return s.environment
}

func (s *Simulation) Settings() Settings {
	return s.settings
}

func (s *Simulation) Arena() Arena {
	return s.arena
}

// Resize changes the arena and reports whether it differed. Masses outside
// the new bounds are pushed back on their next update.
func (s *Simulation) Resize(arena Arena) bool {
	if arena == s.arena {
		return false
	}
	s.arena = arena
	return true
}

// WalledAreaOffset is the margin between the visible arena edge and the
// collision boundary. Positive values move the boundary outward.
func (s *Simulation) WalledAreaOffset() float64 {
	return s.offset
}

// ChangeWalledAreaOffset adds delta to the offset. The new boundary applies
// from the next update; nothing is moved immediately.
func (s *Simulation) ChangeWalledAreaOffset(delta float64) {
	s.offset += delta
	log.Printf("Offset is now %g", s.offset)
}

func (s *Simulation) SetWalledAreaOffset(offset float64) {
	s.offset = offset
}

// NearestMass searches every assembly for the mass closest to point, within
// the larger arena dimension. Ties go to the later assembly.
func (s *Simulation) NearestMass(point dmath.Vec2) (*Mass, *Assembly, float64, bool) {
	var (
		nearest  *Mass
		owner    *Assembly
		distance = math.Max(s.arena.Width, s.arena.Height)
	)
	for _, a := range s.assemblies {
		m, d, ok := a.NearestMass(point)
		if ok && d <= distance {
			nearest, owner, distance = m, a, d
		}
	}
	return nearest, owner, distance, nearest != nil
}

// MassCount returns the number of masses across all assemblies.
func (s *Simulation) MassCount() int {
	n := 0
	for _, a := range s.assemblies {
		n += len(a.Masses())
	}
	return n
}

func (s *Simulation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "simulation %gx%g offset=%g assemblies=%d\n",
		s.arena.Width, s.arena.Height, s.offset, len(s.assemblies))
	fmt.Fprintf(&b, "environment: %s", s.environment)
	for i, a := range s.assemblies {
		fmt.Fprintf(&b, "\nassembly %d: %s", i, a)
	}
	return b.String()
}
