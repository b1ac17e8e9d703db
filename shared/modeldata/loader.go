package modeldata

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/automoto/springies/shared/mechanics"
)

// record is one tokenised line of a model file.
type record struct {
	line   int
	kind   string
	fields []string
}

func (r record) float(i int) (float64, error) {
	if i >= len(r.fields) {
		return 0, fmt.Errorf("line %d: %s needs field %d: %w", r.line, r.kind, i+1, ErrMalformedRecord)
	}
	v, err := strconv.ParseFloat(r.fields[i], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("line %d: %s field %d %q: %w", r.line, r.kind, i+1, r.fields[i], ErrMalformedRecord)
	}
	return v, nil
}

func (r record) integer(i int) (int, error) {
	if i >= len(r.fields) {
		return 0, fmt.Errorf("line %d: %s needs field %d: %w", r.line, r.kind, i+1, ErrMalformedRecord)
	}
	v, err := strconv.Atoi(r.fields[i])
	if err != nil {
		return 0, fmt.Errorf("line %d: %s field %d %q: %w", r.line, r.kind, i+1, r.fields[i], ErrMalformedRecord)
	}
	return v, nil
}

// floats parses fields [from, from+n).
func (r record) floats(from, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := r.float(from + i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// scanRecords splits r into records, skipping blank lines and # comments.
func scanRecords(r io.Reader, fn func(record) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		tokens := strings.Fields(text)
		if len(tokens) == 0 {
			continue
		}
		rec := record{line: n, kind: strings.ToLower(tokens[0]), fields: tokens[1:]}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ParseAssembly reads mass, spring and muscle records into a new assembly.
// Connectors may only refer to masses declared above them. A spring with a
// negative constant becomes a rigid bar. Unknown record kinds are ignored.
func ParseAssembly(r io.Reader, settings mechanics.Settings) (*mechanics.Assembly, error) {
	a := mechanics.NewAssembly()
	err := scanRecords(r, func(rec record) error {
		var (
			e   mechanics.Element
			err error
		)
		switch rec.kind {
		case recordMass:
			e, err = massRecord(rec, settings)
		case recordSpring:
			e, err = springRecord(rec, a)
		case recordMuscle:
			e, err = muscleRecord(rec, a, settings)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		a.Add(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func massRecord(rec record, settings mechanics.Settings) (*mechanics.Mass, error) {
	id, err := rec.integer(0)
	if err != nil {
		return nil, err
	}
	v, err := rec.floats(1, 3)
	if err != nil {
		return nil, err
	}
	m := mechanics.NewMass(id, v[0], v[1], v[2])
	m.SetSize(settings.MassSize)
	return m, nil
}

func endpoints(rec record, a *mechanics.Assembly) (*mechanics.Mass, *mechanics.Mass, error) {
	id1, err := rec.integer(0)
	if err != nil {
		return nil, nil, err
	}
	id2, err := rec.integer(1)
	if err != nil {
		return nil, nil, err
	}
	start, err := a.MassByID(id1)
	if err != nil {
		return nil, nil, fmt.Errorf("line %d: %w", rec.line, err)
	}
	end, err := a.MassByID(id2)
	if err != nil {
		return nil, nil, fmt.Errorf("line %d: %w", rec.line, err)
	}
	return start, end, nil
}

func springRecord(rec record, a *mechanics.Assembly) (mechanics.Connector, error) {
	start, end, err := endpoints(rec, a)
	if err != nil {
		return nil, err
	}
	v, err := rec.floats(2, 2)
	if err != nil {
		return nil, err
	}
	rest, k := v[0], v[1]
	var c mechanics.Connector
	if k < 0 {
		c, err = mechanics.NewBar(start, end, rest, k)
	} else {
		c, err = mechanics.NewSpring(start, end, rest, k)
	}
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.line, err)
	}
	return c, nil
}

func muscleRecord(rec record, a *mechanics.Assembly, settings mechanics.Settings) (mechanics.Connector, error) {
	start, end, err := endpoints(rec, a)
	if err != nil {
		return nil, err
	}
	v, err := rec.floats(2, 3)
	if err != nil {
		return nil, err
	}
	c, err := mechanics.NewMuscle(start, end, v[0], v[1], v[2], settings.MuscleFrequency)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", rec.line, err)
	}
	return c, nil
}

// ParseEnvironment reads environment records over zero parameters.
func ParseEnvironment(r io.Reader) (mechanics.EnvironmentParams, error) {
	return parseEnvironmentOver(r, mechanics.EnvironmentParams{})
}

// parseEnvironmentOver overwrites only the parameters that appear in r, so a
// later environment file can adjust an earlier one.
func parseEnvironmentOver(r io.Reader, p mechanics.EnvironmentParams) (mechanics.EnvironmentParams, error) {
	err := scanRecords(r, func(rec record) error {
		switch rec.kind {
		case recordGravity:
			v, err := rec.floats(0, 2)
			if err != nil {
				return err
			}
			p.GravityAngle, p.GravityMagnitude = v[0], v[1]
		case recordViscosity:
			v, err := rec.float(0)
			if err != nil {
				return err
			}
			p.Viscosity = v
		case recordCenterMass:
			v, err := rec.floats(0, 2)
			if err != nil {
				return err
			}
			p.CenterMassMagnitude, p.CenterMassExponent = v[0], v[1]
		case recordWall:
			id, err := rec.integer(0)
			if err != nil {
				return err
			}
			if id < 1 || id > 4 {
				return fmt.Errorf("line %d: wall %d: %w", rec.line, id, ErrUnknownWall)
			}
			v, err := rec.floats(1, 2)
			if err != nil {
				return err
			}
			p.Walls[id-1] = mechanics.WallParams{Set: true, Magnitude: v[0], Exponent: v[1]}
		}
		return nil
	})
	if err != nil {
		return mechanics.EnvironmentParams{}, err
	}
	return p, nil
}
