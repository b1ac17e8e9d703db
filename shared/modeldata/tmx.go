package modeldata

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/springies/shared/mechanics"
)

// Object groups read from a Tiled model.
const (
	groupMasses     = "Masses"
	groupConnectors = "Connectors"
)

// LoadTMX builds an assembly from the object layers of a Tiled map. Every
// object in the Masses group is a mass at its position, with a "mass"
// property and an optional "id" property (the object id otherwise). Objects
// in the Connectors group use their class (spring, bar or muscle) and the
// properties start, end, rest, k and amplitude. The Masses group is read
// first so connectors may refer to any mass in it.
func LoadTMX(fsys fs.FS, tmxPath string, settings mechanics.Settings) (*mechanics.Assembly, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := mechanics.NewAssembly()
	for _, og := range m.ObjectGroups {
		if og.Name != groupMasses {
			continue
		}
		for _, o := range og.Objects {
			id := int(o.ID)
			if o.Properties.GetString("id") != "" {
				id = o.Properties.GetInt("id")
			}
			mass := mechanics.NewMass(id, o.X, o.Y, o.Properties.GetFloat("mass"))
			mass.SetSize(settings.MassSize)
			a.Add(mass)
		}
	}

	for _, og := range m.ObjectGroups {
		if og.Name != groupConnectors {
			continue
		}
		for _, o := range og.Objects {
			c, err := tmxConnector(o, a, settings)
			if err != nil {
				return nil, fmt.Errorf("%s object %d: %w", tmxPath, o.ID, err)
			}
			if c != nil {
				a.Add(c)
			}
		}
	}
	return a, nil
}

// tmxConnector returns nil for objects whose class is not a connector kind.
func tmxConnector(o *tiled.Object, a *mechanics.Assembly, settings mechanics.Settings) (mechanics.Connector, error) {
	class := strings.ToLower(o.Class)
	if class == "" {
		class = strings.ToLower(o.Type) //nolint:staticcheck // older maps use type=
	}
	if class != mechanics.KindSpring.String() && class != mechanics.KindBar.String() && class != mechanics.KindMuscle.String() {
		return nil, nil
	}

	start, err := a.MassByID(o.Properties.GetInt("start"))
	if err != nil {
		return nil, err
	}
	end, err := a.MassByID(o.Properties.GetInt("end"))
	if err != nil {
		return nil, err
	}
	rest := o.Properties.GetFloat("rest")
	k := o.Properties.GetFloat("k")

	switch class {
	case mechanics.KindBar.String():
		return mechanics.NewBar(start, end, rest, k)
	case mechanics.KindMuscle.String():
		return mechanics.NewMuscle(start, end, rest, k, o.Properties.GetFloat("amplitude"), settings.MuscleFrequency)
	}
	if k < 0 {
		return mechanics.NewBar(start, end, rest, k)
	}
	return mechanics.NewSpring(start, end, rest, k)
}
