package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/plasmakit/reactorgeom/internal/geometry"
	"github.com/plasmakit/reactorgeom/internal/render"
)

const (
	canvasWidth  = 60 // characters
	canvasHeight = 20
)

// View is an interactive probe over a finalized geometry: the overlay
// footprint is drawn on a braille canvas and the status line reports
// MaterialAt under a movable cursor.
type View struct {
	geom   *geometry.Geometry
	canvas *Canvas

	// Cursor in sub-pixel coordinates.
	cx, cy int
}

// NewView builds the probe for g. The geometry must have a domain.
func NewView(g *geometry.Geometry) (*View, error) {
	dom, ok := g.Domain()
	if !ok {
		return nil, fmt.Errorf("viz: geometry %q has no domain", g.Name())
	}
	if dom.Max().X == dom.Min().X {
		return nil, fmt.Errorf("viz: geometry %q domain has zero width", g.Name())
	}

	v := &View{
		geom:   g,
		canvas: NewCanvas(canvasWidth, canvasHeight),
		cx:     canvasWidth, // center of the dot grid
		cy:     canvasHeight * 2,
	}
	v.drawFootprint()
	return v, nil
}

// Run starts the interactive viewer and blocks until quit.
func Run(g *geometry.Geometry) error {
	v, err := NewView(g)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(v).Run()
	return err
}

func (v *View) Init() tea.Cmd { return nil }

func (v *View) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return v, tea.Quit
	case "left", "h":
		if v.cx > 0 {
			v.cx--
		}
	case "right", "l":
		if v.cx < canvasWidth*2-1 {
			v.cx++
		}
	case "up", "k":
		if v.cy > 0 {
			v.cy--
		}
	case "down", "j":
		if v.cy < canvasHeight*4-1 {
			v.cy++
		}
	}
	return v, nil
}

func (v *View) View() string {
	p := v.worldAt(v.cx, v.cy)
	mat := v.geom.MaterialAt(p)
	idx, _ := v.geom.Registry().IndexOf(mat)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  (%dD)", v.geom.Name(), v.geom.Dimension())))
	b.WriteString("\n")
	b.WriteString(canvasStyle.Render(v.renderCanvas()))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("probe"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("(%.4g, %.4g)", p.X, p.Y)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("material"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s [%d]", mat, idx)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("legend"))
	chips := make([]string, 0, v.geom.Registry().Len())
	for _, e := range render.Legend(v.geom) {
		hex := fmt.Sprintf("#%02X%02X%02X", e.Color.R, e.Color.G, e.Color.B)
		chips = append(chips, lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■ "+e.Material))
	}
	b.WriteString(strings.Join(chips, "  "))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("arrows/hjkl move · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderCanvas returns the footprint with the cursor cell highlighted.
func (v *View) renderCanvas() string {
	lines := strings.Split(strings.TrimRight(v.canvas.String(), "\n"), "\n")
	row, col := v.cy/4, v.cx/2
	if row >= 0 && row < len(lines) {
		runes := []rune(lines[row])
		if col >= 0 && col < len(runes) {
			runes[col] = ' '
			lines[row] = string(runes[:col]) + cursorStyle.Render("┼") + string(runes[col+1:])
		}
	}
	return strings.Join(lines, "\n")
}

// drawFootprint fills the canvas with every non-domain shape, mirroring
// the mask render: lit dots are the non-ambient footprint.
func (v *View) drawFootprint() {
	dom, _ := v.geom.Domain()
	spanX := dom.Max().X - dom.Min().X
	spanY := dom.Max().Y - dom.Min().Y

	subW := float64(canvasWidth * 2)
	subH := float64(canvasHeight * 4)

	for _, s := range v.geom.Shapes() {
		if s.IsDomain() {
			continue
		}
		x0 := int((s.Min().X - dom.Min().X) / spanX * subW)
		x1 := int((s.Max().X - dom.Min().X) / spanX * subW)
		y0, y1 := 0, int(subH)
		if v.geom.Dimension() == geometry.Dim2D && spanY > 0 {
			y0 = int((dom.Max().Y - s.Max().Y) / spanY * subH)
			y1 = int((dom.Max().Y - s.Min().Y) / spanY * subH)
		}
		v.canvas.FillRect(x0, y0, x1, y1)
	}
}

// worldAt maps sub-pixel cursor coordinates to a domain point, sampling
// at dot centers. The canvas Y axis points down, the domain's up.
func (v *View) worldAt(cx, cy int) geometry.Point {
	dom, _ := v.geom.Domain()
	spanX := dom.Max().X - dom.Min().X
	spanY := dom.Max().Y - dom.Min().Y

	p := geometry.Point{
		X: dom.Min().X + (float64(cx)+0.5)/float64(canvasWidth*2)*spanX,
	}
	if v.geom.Dimension() == geometry.Dim2D {
		p.Y = dom.Max().Y - (float64(cy)+0.5)/float64(canvasHeight*4)*spanY
	}
	return p
}
