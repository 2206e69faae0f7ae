package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/plasmakit/reactorgeom/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReactor(t *testing.T) *geometry.Geometry {
	t.Helper()
	g, err := geometry.New("testreactor", geometry.Dim2D, false)
	require.NoError(t, err)
	require.NoError(t, g.InstallDomain(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 10}))

	air, err := geometry.NewRectangle("Air", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 10})
	require.NoError(t, err)
	require.NoError(t, g.AddShape(air))

	coil, err := geometry.NewRectangle("Coil", geometry.Point{X: 2, Y: 2}, geometry.Point{X: 4, Y: 4})
	require.NoError(t, err)
	require.NoError(t, g.AddShape(coil))
	return g
}

func TestRenderMatchesMaterialAt(t *testing.T) {
	g := buildReactor(t)

	img, err := Render(g, Options{Width: 100, Height: 100})
	require.NoError(t, err)

	// World (3,3) is inside the coil: column 30, row 70 after Y flip.
	coilIdx, err := g.Registry().IndexOf("Coil")
	require.NoError(t, err)
	assert.Equal(t, materialColor(coilIdx), img.RGBAAt(30, 70))
	assert.Equal(t, "Coil", g.MaterialAt(geometry.Point{X: 3, Y: 3}))

	// World (7,7) is covered by the Air overlay only.
	airIdx, err := g.Registry().IndexOf("Air")
	require.NoError(t, err)
	assert.Equal(t, materialColor(airIdx), img.RGBAAt(70, 30))
	assert.Equal(t, "Air", g.MaterialAt(geometry.Point{X: 7, Y: 7}))
}

func TestRenderMaskTwoColors(t *testing.T) {
	g, err := geometry.New("maskcase", geometry.Dim2D, false)
	require.NoError(t, err)
	require.NoError(t, g.InstallDomain(geometry.Point{}, geometry.Point{X: 10, Y: 10}))
	coil, err := geometry.NewRectangle("Coil", geometry.Point{X: 2, Y: 2}, geometry.Point{X: 4, Y: 4})
	require.NoError(t, err)
	require.NoError(t, g.AddShape(coil))

	img, err := Render(g, Options{Width: 100, Height: 100, Mask: true})
	require.NoError(t, err)

	seen := map[string]bool{}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := img.RGBAAt(x, y)
			seen[string([]byte{c.R, c.G, c.B, c.A})] = true
		}
	}
	assert.Len(t, seen, 2, "mask render should use exactly two colors")

	assert.Equal(t, maskShapeColor, img.RGBAAt(30, 70), "coil interior")
	assert.Equal(t, maskDomainColor, img.RGBAAt(70, 30), "uncovered domain")
}

func TestRenderOneDimensional(t *testing.T) {
	g, err := geometry.New("stack", geometry.Dim1D, false)
	require.NoError(t, err)
	require.NoError(t, g.InstallDomain(geometry.Point{X: 0}, geometry.Point{X: 1}))
	si, err := geometry.NewInterval("Si", 0.0, 0.5)
	require.NoError(t, err)
	require.NoError(t, g.AddShape(si))

	img, err := Render(g, Options{Width: 100, Height: 20})
	require.NoError(t, err)

	siIdx, err := g.Registry().IndexOf("Si")
	require.NoError(t, err)
	// Intervals span the full strip height.
	assert.Equal(t, materialColor(siIdx), img.RGBAAt(25, 0))
	assert.Equal(t, materialColor(siIdx), img.RGBAAt(25, 19))
	assert.Equal(t, materialColor(0), img.RGBAAt(75, 10))
}

func TestWritePNGDerivesFileName(t *testing.T) {
	g := buildReactor(t)
	dir := t.TempDir()

	path, err := WritePNG(g, dir, Options{Width: 50, Height: 50})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "testreactor.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())

	maskPath, err := WritePNG(g, dir, Options{Width: 50, Height: 50, Mask: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "testreactor_mask.png"), maskPath)
}

func TestRenderRequiresDomain(t *testing.T) {
	g, err := geometry.New("empty", geometry.Dim2D, false)
	require.NoError(t, err)
	_, err = Render(g, DefaultOptions())
	assert.Error(t, err)
}

func TestLegendFollowsRegistryOrder(t *testing.T) {
	g := buildReactor(t)

	entries := Legend(g)
	require.Len(t, entries, 3)
	assert.Equal(t, "Plasma", entries[0].Material)
	assert.Equal(t, 0, entries[0].Index)
	assert.Equal(t, "Air", entries[1].Material)
	assert.Equal(t, "Coil", entries[2].Material)
}

func TestMaterialColorOverflow(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 24; i++ {
		c := materialColor(i)
		assert.EqualValues(t, 0xFF, c.A)
		seen[string([]byte{c.R, c.G, c.B})] = true
	}
	assert.Greater(t, len(seen), 20, "overflow palette should stay distinct")
}
