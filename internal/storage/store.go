// Package storage persists render and mesh outputs under a data
// directory, one subdirectory per run with a JSON metadata file.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/plasmakit/reactorgeom/internal/geometry"
	"github.com/plasmakit/reactorgeom/internal/mesh"
	"github.com/plasmakit/reactorgeom/internal/render"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Geometry    string    `json:"geometry"`
	Dimension   int       `json:"dimension"`
	Cylindrical bool      `json:"cylindrical"`
	Timestamp   time.Time `json:"timestamp"`
	Shapes      int       `json:"shapes"`
	Materials   int       `json:"materials"`
	GridNx      int       `json:"grid_nx,omitempty"`
	GridNy      int       `json:"grid_ny,omitempty"`
	Files       []string  `json:"files"`
}

// SaveRender renders g to PNG inside a new run directory and returns
// the run ID.
func (s *Store) SaveRender(g *geometry.Geometry, opts render.Options) (string, error) {
	runID, runDir, err := s.newRunDir(g)
	if err != nil {
		return "", err
	}

	path, err := render.WritePNG(g, runDir, opts)
	if err != nil {
		return "", err
	}

	meta := s.metadata(runID, g)
	meta.Files = []string{filepath.Base(path)}
	if err := writeMetadata(runDir, meta); err != nil {
		return "", err
	}
	return runID, nil
}

// SaveMesh exports m inside a new run directory in the given format
// ("csv" or "json") and returns the run ID.
func (s *Store) SaveMesh(g *geometry.Geometry, m *mesh.Mesh, format string) (string, error) {
	var name string
	switch format {
	case "csv":
		name = "mesh.csv"
	case "json":
		name = "mesh.json"
	default:
		return "", fmt.Errorf("storage: unsupported mesh format %q", format)
	}

	runID, runDir, err := s.newRunDir(g)
	if err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if format == "csv" {
		err = m.WriteCSV(f)
	} else {
		err = m.WriteJSON(f)
	}
	if err != nil {
		return "", err
	}

	meta := s.metadata(runID, g)
	meta.GridNx = m.Nx
	meta.GridNy = m.Ny
	meta.Files = []string{name}
	if err := writeMetadata(runDir, meta); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns metadata for all runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Dir returns the directory of a run ID.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

func (s *Store) newRunDir(g *geometry.Geometry) (string, string, error) {
	runID := fmt.Sprintf("%s_%d", g.Name(), time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", "", err
	}
	return runID, runDir, nil
}

func (s *Store) metadata(runID string, g *geometry.Geometry) RunMetadata {
	return RunMetadata{
		ID:          runID,
		Geometry:    g.Name(),
		Dimension:   int(g.Dimension()),
		Cylindrical: g.Cylindrical(),
		Timestamp:   time.Now(),
		Shapes:      len(g.Shapes()),
		Materials:   g.Registry().Len(),
	}
}

func writeMetadata(runDir string, meta RunMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(runDir, "metadata.json"), data, 0644)
}
