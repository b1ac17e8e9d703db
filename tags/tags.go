package tags

import "github.com/yohamta/donburi"

var (
	Simulation = donburi.NewTag().SetName("Simulation")
)

// Resolv tags for hit testing
const (
	ResolvMass   = "mass"
	ResolvCursor = "cursor"
)
