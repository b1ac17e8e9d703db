// Package modeldata reads assembly and environment models from disk: the
// plain-text .xsp record format and Tiled .tmx object layers. It has no
// dependencies on ebitengine or donburi ECS, pure data only.
package modeldata

import (
	"errors"
	"path"
	"strings"
)

var (
	// ErrMalformedRecord is returned for a record with missing or unparsable
	// fields.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnknownWall is returned for a wall id outside 1..4.
	ErrUnknownWall = errors.New("unknown wall")
)

// Kind tells which part of the simulation a model file feeds.
type Kind int

const (
	KindAssembly Kind = iota
	KindEnvironment
	KindTiled
)

func (k Kind) String() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindTiled:
		return "tiled assembly"
	}
	return "assembly"
}

// Record kinds recognised in .xsp files.
const (
	recordMass       = "mass"
	recordSpring     = "spring"
	recordMuscle     = "muscle"
	recordGravity    = "gravity"
	recordViscosity  = "viscosity"
	recordCenterMass = "centermass"
	recordWall       = "wall"
)

const (
	extText  = ".xsp"
	extTiled = ".tmx"

	environmentPrefix = "environment"
)

// KindOf classifies a model file by its name. Text files whose base name
// starts with "environment" hold environment records.
func KindOf(name string) Kind {
	base := strings.ToLower(path.Base(name))
	switch {
	case strings.HasSuffix(base, extTiled):
		return KindTiled
	case strings.HasPrefix(base, environmentPrefix) && strings.HasSuffix(base, extText):
		return KindEnvironment
	}
	return KindAssembly
}
