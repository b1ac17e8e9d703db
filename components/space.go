package components

import (
	"github.com/automoto/springies/shared/mechanics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[resolv.Space]()

// HoverData tracks the resolv proxies of every mass and the mass under the
// cursor.
type HoverData struct {
	Cursor  *resolv.Object
	Proxies []*resolv.Object
	Mass    *mechanics.Mass
}

var Hover = donburi.NewComponentType[HoverData]()
