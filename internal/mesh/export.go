package mesh

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// WriteCSV writes one row per node: x, y, material, index.
func (m *Mesh) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "material", "index"}); err != nil {
		return err
	}
	for _, n := range m.Nodes {
		row := []string{
			strconv.FormatFloat(n.Pos.X, 'g', -1, 64),
			strconv.FormatFloat(n.Pos.Y, 'g', -1, 64),
			n.Material,
			strconv.Itoa(n.Index),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type meshJSON struct {
	Geometry string `json:"geometry"`
	Nx       int    `json:"nx"`
	Ny       int    `json:"ny"`
	Nodes    []Node `json:"nodes"`
}

// WriteJSON writes the mesh with its grid dimensions.
func (m *Mesh) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meshJSON{Geometry: m.Geometry, Nx: m.Nx, Ny: m.Ny, Nodes: m.Nodes})
}
