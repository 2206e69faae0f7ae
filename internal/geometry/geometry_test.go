package geometry

import (
	"errors"
	"testing"
)

func mustRect(t *testing.T, material string, bl, ur Point) Shape {
	t.Helper()
	s, err := NewRectangle(material, bl, ur)
	if err != nil {
		t.Fatalf("rectangle %q: %v", material, err)
	}
	return s
}

func TestAmbientDefault(t *testing.T) {
	g, err := New("reactor", Dim2D, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.InstallDomain(Point{0, 0}, Point{10, 10}); err != nil {
		t.Fatalf("install domain: %v", err)
	}

	if mat := g.MaterialAt(Point{5, 5}); mat != "Plasma" {
		t.Errorf("expected Plasma inside empty domain, got %q", mat)
	}
	// No bounds check: out-of-domain points also resolve to the ambient
	// default.
	if mat := g.MaterialAt(Point{20, 20}); mat != "Plasma" {
		t.Errorf("expected Plasma outside domain, got %q", mat)
	}
}

func TestAmbientIsNotDomainMaterial(t *testing.T) {
	// The scan seeds with the ambient default, not sequence[0].material:
	// a point outside a non-default domain resolves to "Plasma" even
	// though no shape carries it.
	g, _ := New("vacuum", Dim2D, false)
	if err := g.InstallDomainMaterial(Point{0, 0}, Point{1, 1}, "Vacuum"); err != nil {
		t.Fatalf("install domain: %v", err)
	}
	if mat := g.MaterialAt(Point{0.5, 0.5}); mat != "Vacuum" {
		t.Errorf("expected Vacuum inside domain, got %q", mat)
	}
	if mat := g.MaterialAt(Point{5, 5}); mat != "Plasma" {
		t.Errorf("expected ambient Plasma outside domain, got %q", mat)
	}
}

func TestLastWriterWins(t *testing.T) {
	g, _ := New("reactor", Dim2D, false)
	if err := g.InstallDomain(Point{0, 0}, Point{10, 10}); err != nil {
		t.Fatalf("install domain: %v", err)
	}
	if err := g.AddShape(mustRect(t, "Air", Point{0, 0}, Point{10, 10})); err != nil {
		t.Fatalf("add Air: %v", err)
	}
	if err := g.AddShape(mustRect(t, "Coil", Point{2, 2}, Point{4, 4})); err != nil {
		t.Fatalf("add Coil: %v", err)
	}

	if mat := g.MaterialAt(Point{3, 3}); mat != "Coil" {
		t.Errorf("expected Coil at (3,3), got %q", mat)
	}
	if mat := g.MaterialAt(Point{1, 1}); mat != "Air" {
		t.Errorf("expected Air at (1,1), got %q", mat)
	}
}

func TestDomainGating(t *testing.T) {
	g, _ := New("reactor", Dim2D, false)

	err := g.AddShape(mustRect(t, "Metal", Point{0, 0}, Point{1, 1}))
	var notCreated *DomainNotCreatedError
	if !errors.As(err, &notCreated) {
		t.Fatalf("expected DomainNotCreatedError, got %v", err)
	}
	if notCreated.Material != "Metal" {
		t.Errorf("expected offending material Metal, got %q", notCreated.Material)
	}

	// Failure must not mutate sequence or registry.
	if len(g.Shapes()) != 0 {
		t.Errorf("expected empty sequence, got %d shapes", len(g.Shapes()))
	}
	if g.Registry().Len() != 0 {
		t.Errorf("expected empty registry, got %d materials", g.Registry().Len())
	}
}

func TestDomainInstallOnce(t *testing.T) {
	g, _ := New("reactor", Dim2D, false)
	if err := g.InstallDomain(Point{0, 0}, Point{1, 1}); err != nil {
		t.Fatalf("first install: %v", err)
	}

	err := g.InstallDomain(Point{0, 0}, Point{2, 2})
	var exists *DomainExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected DomainExistsError, got %v", err)
	}
	if exists.Name != "reactor" || exists.Material != "Plasma" {
		t.Errorf("expected identifiers (reactor, Plasma), got (%q, %q)", exists.Name, exists.Material)
	}

	if len(g.Shapes()) != 1 {
		t.Errorf("second install must not mutate the sequence, got %d shapes", len(g.Shapes()))
	}

	dom, ok := g.Domain()
	if !ok || !dom.IsDomain() || dom.Label() != DomainLabel {
		t.Error("sequence[0] should be the original domain")
	}
	if dom.Max().X != 1 {
		t.Errorf("original domain extent overwritten: max.X=%g", dom.Max().X)
	}
}

func TestDimensionMismatch(t *testing.T) {
	g, _ := New("profile", Dim1D, false)
	if err := g.InstallDomain(Point{X: 0}, Point{X: 1}); err != nil {
		t.Fatalf("install domain: %v", err)
	}

	err := g.AddShape(mustRect(t, "Metal", Point{0, 0}, Point{1, 1}))
	var mismatch *DimensionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected DimensionMismatchError, got %v", err)
	}
	if mismatch.Geometry != Dim1D || mismatch.Shape != Dim2D {
		t.Errorf("expected 1D vs 2D, got %dD vs %dD", mismatch.Geometry, mismatch.Shape)
	}
	if len(g.Shapes()) != 1 {
		t.Error("rejected shape must not be appended")
	}
	if _, err := g.Registry().IndexOf("Metal"); err == nil {
		t.Error("rejected shape must not register its material")
	}
}

func TestRegistryTracksSequenceMaterials(t *testing.T) {
	g, _ := New("reactor", Dim2D, false)
	g.InstallDomain(Point{0, 0}, Point{10, 10})
	g.AddShape(mustRect(t, "Metal", Point{0, 9}, Point{10, 10}))
	g.AddShape(mustRect(t, "Quartz", Point{0, 5}, Point{10, 6}))
	g.AddShape(mustRect(t, "Metal", Point{0, 0}, Point{10, 1}))

	want := []string{"Plasma", "Metal", "Quartz"}
	got := g.Registry().Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d materials, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestQueryDeterminism(t *testing.T) {
	build := func() *Geometry {
		g, _ := New("reactor", Dim2D, false)
		g.InstallDomain(Point{0, 0}, Point{10, 10})
		g.AddShape(mustRect(t, "Air", Point{1, 1}, Point{9, 9}))
		g.AddShape(mustRect(t, "Coil", Point{4, 4}, Point{6, 6}))
		g.AddShape(mustRect(t, "Metal", Point{0, 0}, Point{10, 2}))
		return g
	}

	a, b := build(), build()
	points := []Point{{0, 0}, {5, 5}, {1, 1}, {5, 1.5}, {9.5, 9.5}, {12, -3}, {4, 4}, {6, 6}}
	for _, p := range points {
		first := a.MaterialAt(p)
		if second := a.MaterialAt(p); second != first {
			t.Errorf("repeated query at (%g,%g) changed: %q then %q", p.X, p.Y, first, second)
		}
		if other := b.MaterialAt(p); other != first {
			t.Errorf("identical build order disagreed at (%g,%g): %q vs %q", p.X, p.Y, first, other)
		}
	}
}

func TestReactorScenario(t *testing.T) {
	g, _ := New("icp2d", Dim2D, false)
	if err := g.InstallDomain(Point{-0.25, 0.0}, Point{0.25, 0.4}); err != nil {
		t.Fatalf("install domain: %v", err)
	}
	g.AddShape(mustRect(t, "Metal", Point{-0.25, 0.38}, Point{0.25, 0.4}))
	g.AddShape(mustRect(t, "Quartz", Point{-0.23, 0.3}, Point{0.23, 0.32}))
	g.AddShape(mustRect(t, "Coil", Point{-0.20, 0.34}, Point{-0.18, 0.36}))

	tests := []struct {
		p    Point
		want string
	}{
		{Point{0, 0.39}, "Metal"},
		{Point{0, 0.31}, "Quartz"},
		{Point{-0.19, 0.35}, "Coil"},
		{Point{0, 0.2}, "Plasma"},
	}
	for _, tt := range tests {
		if got := g.MaterialAt(tt.p); got != tt.want {
			t.Errorf("material at (%g,%g): expected %q, got %q", tt.p.X, tt.p.Y, tt.want, got)
		}
	}
}

func TestOneDimensionalOverlay(t *testing.T) {
	g, _ := New("stack1d", Dim1D, false)
	if err := g.InstallDomain(Point{X: 0}, Point{X: 1}); err != nil {
		t.Fatalf("install domain: %v", err)
	}
	si, _ := NewInterval("Si", 0.0, 0.4)
	ox, _ := NewInterval("SiO2", 0.35, 0.5)
	g.AddShape(si)
	g.AddShape(ox)

	tests := []struct {
		x    float64
		want string
	}{
		{0.1, "Si"},
		{0.4, "SiO2"}, // overlap resolved in favor of the later shape
		{0.45, "SiO2"},
		{0.7, "Plasma"},
		{2.0, "Plasma"},
	}
	for _, tt := range tests {
		if got := g.MaterialAt(Point{X: tt.x}); got != tt.want {
			t.Errorf("material at x=%g: expected %q, got %q", tt.x, tt.want, got)
		}
	}
}

func TestUnsupportedDimension(t *testing.T) {
	if _, err := New("bad", 3, false); err == nil {
		t.Error("expected error for dimension 3")
	}
}
