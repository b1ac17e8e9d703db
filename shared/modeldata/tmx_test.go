package modeldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/springies/shared/mechanics"
)

const bridgeTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="20" tileheight="20" infinite="0" nextlayerid="3" nextobjectid="8">
 <objectgroup id="1" name="Masses">
  <object id="1" x="100" y="200">
   <properties>
    <property name="mass" type="float" value="0"/>
   </properties>
   <point/>
  </object>
  <object id="2" x="150" y="200">
   <properties>
    <property name="mass" type="float" value="2"/>
   </properties>
   <point/>
  </object>
  <object id="3" x="200" y="200">
   <properties>
    <property name="mass" type="float" value="1.5"/>
    <property name="id" type="int" value="30"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Connectors">
  <object id="4" type="spring" x="0" y="0">
   <properties>
    <property name="start" type="int" value="1"/>
    <property name="end" type="int" value="2"/>
    <property name="rest" type="float" value="45"/>
    <property name="k" type="float" value="0.8"/>
   </properties>
  </object>
  <object id="5" type="bar" x="0" y="0">
   <properties>
    <property name="start" type="int" value="2"/>
    <property name="end" type="int" value="30"/>
    <property name="rest" type="float" value="50"/>
    <property name="k" type="float" value="1"/>
   </properties>
  </object>
  <object id="6" type="muscle" x="0" y="0">
   <properties>
    <property name="start" type="int" value="1"/>
    <property name="end" type="int" value="30"/>
    <property name="rest" type="float" value="100"/>
    <property name="k" type="float" value="1"/>
    <property name="amplitude" type="float" value="10"/>
   </properties>
  </object>
  <object id="7" type="label" x="10" y="10"/>
 </objectgroup>
</map>
`

const danglingTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="20" tileheight="20" infinite="0">
 <objectgroup id="1" name="Masses">
  <object id="1" x="10" y="10">
   <properties>
    <property name="mass" type="float" value="1"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Connectors">
  <object id="2" type="spring" x="0" y="0">
   <properties>
    <property name="start" type="int" value="1"/>
    <property name="end" type="int" value="99"/>
    <property name="rest" type="float" value="10"/>
    <property name="k" type="float" value="1"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"bridge.tmx": {Data: []byte(bridgeTMX)}}

	a, err := LoadTMX(fsys, "bridge.tmx", mechanics.DefaultSettings())
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	masses := a.Masses()
	if len(masses) != 3 {
		t.Fatalf("masses: got=%d want=3", len(masses))
	}
	if !masses[0].IsFixed() {
		t.Fatalf("mass with zero value should be fixed")
	}
	m30, err := a.MassByID(30)
	if err != nil {
		t.Fatalf("id property ignored: %v", err)
	}
	if c := m30.Center(); c.X != 200 || c.Y != 200 {
		t.Fatalf("mass 30 center: got=(%f, %f)", c.X, c.Y)
	}

	connectors := a.Connectors()
	want := []mechanics.Kind{mechanics.KindSpring, mechanics.KindBar, mechanics.KindMuscle}
	if len(connectors) != len(want) {
		t.Fatalf("connectors: got=%d want=%d", len(connectors), len(want))
	}
	for i, c := range connectors {
		if c.Kind() != want[i] {
			t.Fatalf("connector %d: got=%s want=%s", i, c.Kind(), want[i])
		}
	}
	if got := connectors[0].Length(); got != 45 {
		t.Fatalf("spring rest: got=%f want=45", got)
	}
}

func TestLoadTMXDanglingReference(t *testing.T) {
	fsys := fstest.MapFS{"dangling.tmx": {Data: []byte(danglingTMX)}}
	sim := mechanics.NewSimulation(mechanics.Arena{Width: 200, Height: 200}, mechanics.DefaultSettings())

	_, err := LoadModel(sim, fsys, "dangling.tmx")
	if !errors.Is(err, mechanics.ErrMassNotFound) {
		t.Fatalf("dangling: got=%v want ErrMassNotFound", err)
	}
	if len(sim.Assemblies()) != 0 {
		t.Fatalf("failed load added an assembly")
	}
}

func TestLoadModelTiled(t *testing.T) {
	sim := mechanics.NewSimulation(mechanics.Arena{Width: 400, Height: 400}, mechanics.DefaultSettings())
	kind, err := LoadModel(sim, testFS(), "models/bridge.tmx")
	if err != nil || kind != KindTiled {
		t.Fatalf("bridge: kind=%s err=%v", kind, err)
	}
	if got := sim.MassCount(); got != 3 {
		t.Fatalf("mass count: got=%d want=3", got)
	}
}
