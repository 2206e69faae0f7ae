// Package mesh classifies uniform grids against a geometry. Each grid
// node is tagged with the material reported by Geometry.MaterialAt, so
// the mesh is the pointwise sampling downstream field solvers consume.
package mesh

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/plasmakit/reactorgeom/internal/geometry"
)

// Node is one classified grid point.
type Node struct {
	Pos      geometry.Point `json:"pos"`
	Material string         `json:"material"`
	Index    int            `json:"index"`
}

// Mesh is a row-major grid of classified nodes (Ny rows of Nx nodes;
// Ny is 1 for 1D geometries). Row 0 is the domain's bottom edge.
type Mesh struct {
	Geometry string
	Nx, Ny   int
	Nodes    []Node
}

// Generate samples an nx-by-ny grid spanning the domain extent,
// endpoints included, and classifies every node. Queries are pure and
// independent, so rows are classified in parallel across workers; the
// context cancels between rows.
func Generate(ctx context.Context, g *geometry.Geometry, nx, ny int) (*Mesh, error) {
	dom, ok := g.Domain()
	if !ok {
		return nil, fmt.Errorf("mesh: geometry %q has no domain", g.Name())
	}
	if g.Dimension() == geometry.Dim1D {
		ny = 1
	}
	if nx < 2 || ny < 1 || (g.Dimension() == geometry.Dim2D && ny < 2) {
		return nil, fmt.Errorf("mesh: grid %dx%d too small for %dD geometry", nx, ny, g.Dimension())
	}

	dx := (dom.Max().X - dom.Min().X) / float64(nx-1)
	dy := 0.0
	if ny > 1 {
		dy = (dom.Max().Y - dom.Min().Y) / float64(ny-1)
	}

	m := &Mesh{Geometry: g.Name(), Nx: nx, Ny: ny, Nodes: make([]Node, nx*ny)}

	workers := runtime.NumCPU()
	if workers > ny {
		workers = ny
	}
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := worker; j < ny; j += workers {
				if err := ctx.Err(); err != nil {
					errs[worker] = err
					return
				}
				y := dom.Min().Y + float64(j)*dy
				for i := 0; i < nx; i++ {
					p := geometry.Point{X: dom.Min().X + float64(i)*dx, Y: y}
					mat := g.MaterialAt(p)
					idx, err := g.Registry().IndexOf(mat)
					if err != nil {
						errs[worker] = err
						return
					}
					m.Nodes[j*nx+i] = Node{Pos: p, Material: mat, Index: idx}
				}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// At returns the node at column i, row j.
func (m *Mesh) At(i, j int) Node {
	return m.Nodes[j*m.Nx+i]
}

// Counts returns the number of nodes per material.
func (m *Mesh) Counts() map[string]int {
	counts := make(map[string]int)
	for _, n := range m.Nodes {
		counts[n.Material]++
	}
	return counts
}
