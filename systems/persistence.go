package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/springies/components"
	"github.com/automoto/springies/shared/mechanics"
	"github.com/quasilyte/gdata"
)

const sessionItem = "session"

// SavedSession represents the simulation state stored on disk between runs
type SavedSession struct {
	Toggles      map[string]bool `json:"toggles"`
	WalledOffset float64         `json:"walledOffset"`
	Models       []string        `json:"models"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for session storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "springies",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSession loads the last session from disk. A nil session without an
// error means nothing was saved yet.
func LoadSession() (*SavedSession, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(sessionItem)
	if err != nil {
		log.Printf("Warning: Could not load session: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var session SavedSession
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("Warning: Could not parse saved session: %v", err)
		return nil, err
	}
	return &session, nil
}

// SaveSession writes s to disk
func SaveSession(s *SavedSession) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize session: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(sessionItem, data); err != nil {
		log.Printf("Warning: Could not save session: %v", err)
		return err
	}
	return nil
}

// SnapshotSession captures what SaveSession persists from the live simulation.
func SnapshotSession(data *components.SimulationData) *SavedSession {
	models := make([]string, len(data.Models))
	copy(models, data.Models)
	return &SavedSession{
		Toggles:      data.Sim.Environment().Toggles(),
		WalledOffset: data.Sim.WalledAreaOffset(),
		Models:       models,
	}
}

// SaveSessionFor saves the current state of data.
func SaveSessionFor(data *components.SimulationData) {
	_ = SaveSession(SnapshotSession(data))
}

// ApplySession restores the toggles and walled offset of a saved session.
// Models are reloaded by the caller since that needs file access.
func ApplySession(sim *mechanics.Simulation, saved *SavedSession) {
	if saved == nil {
		return
	}
	env := sim.Environment()
	for name, on := range saved.Toggles {
		c, ok := mechanics.ParseForceCategory(name)
		if !ok {
			log.Printf("Warning: Ignoring saved toggle %q", name)
			continue
		}
		env.SetEnabled(c, on)
	}
	sim.SetWalledAreaOffset(saved.WalledOffset)
}
