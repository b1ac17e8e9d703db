package modeldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/springies/shared/mechanics"
)

// LoadModel reads the model at name and adds it to sim. Environment files
// overwrite the parameters they mention; anything else becomes a new
// assembly. The file is parsed completely before sim is touched, so a failed
// load leaves it as it was.
func LoadModel(sim *mechanics.Simulation, fsys fs.FS, name string) (Kind, error) {
	kind := KindOf(name)
	switch kind {
	case KindTiled:
		a, err := LoadTMX(fsys, name, sim.Settings())
		if err != nil {
			return kind, fmt.Errorf("load %s: %w", name, err)
		}
		sim.Add(a)
		return kind, nil
	}

	f, err := fsys.Open(name)
	if err != nil {
		return kind, fmt.Errorf("load %s: %w", name, err)
	}
	defer f.Close()

	if kind == KindEnvironment {
		p, err := parseEnvironmentOver(f, sim.Environment().Params())
		if err != nil {
			return kind, fmt.Errorf("load %s: %w", name, err)
		}
		sim.Environment().SetParams(p)
		return kind, nil
	}

	a, err := ParseAssembly(f, sim.Settings())
	if err != nil {
		return kind, fmt.Errorf("load %s: %w", name, err)
	}
	sim.Add(a)
	return kind, nil
}

// ListModels returns the .xsp and .tmx files directly inside dir, sorted,
// with environment files first.
func ListModels(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		if ext != extText && ext != extTiled {
			continue
		}
		names = append(names, path.Join(dir, e.Name()))
	}
	sort.SliceStable(names, func(i, j int) bool {
		ei, ej := KindOf(names[i]) == KindEnvironment, KindOf(names[j]) == KindEnvironment
		if ei != ej {
			return ei
		}
		return names[i] < names[j]
	})
	return names, nil
}
