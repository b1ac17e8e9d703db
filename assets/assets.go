package assets

import (
	"embed"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/springies/shared/modeldata"
)

var (
	//go:embed all:models
	modelFS embed.FS
)

// BuiltinModelDir is the directory of the bundled models inside ModelFS.
const BuiltinModelDir = "models"

// ModelSource is a file system plus the directory in it that holds models.
type ModelSource struct {
	FS  fs.FS
	Dir string
	// Root is the host path of FS, empty for the bundled models.
	Root string
}

// Builtin returns the models bundled with the binary.
func Builtin() ModelSource {
	return ModelSource{FS: modelFS, Dir: BuiltinModelDir}
}

// Directory returns a source backed by a directory on disk.
func Directory(dir string) ModelSource {
	return ModelSource{FS: os.DirFS(dir), Dir: ".", Root: dir}
}

// SourceFor picks the disk directory when one is given, the bundled models
// otherwise.
func SourceFor(dir string) ModelSource {
	if dir == "" {
		return Builtin()
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Printf("Warning: model directory %q unavailable, using bundled models", dir)
		return Builtin()
	}
	return Directory(dir)
}

// List returns the model files in the source, environment files first.
func (s ModelSource) List() ([]string, error) {
	return modeldata.ListModels(s.FS, s.Dir)
}

// Ref is the name persisted for a model so it can be reloaded later.
func (s ModelSource) Ref(name string) string {
	if s.Root == "" {
		return name
	}
	return filepath.Join(s.Root, filepath.FromSlash(name))
}

// ResolveRef maps a persisted or command line model reference back to a
// source and a name inside it. Bare names of bundled models resolve to the
// embedded files.
func ResolveRef(ref string) (ModelSource, string) {
	if _, err := fs.Stat(modelFS, ref); err == nil {
		return Builtin(), ref
	}
	return Directory(filepath.Dir(ref)), filepath.Base(ref)
}
