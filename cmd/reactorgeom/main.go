package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/plasmakit/reactorgeom/internal/config"
	"github.com/plasmakit/reactorgeom/internal/geometry"
	"github.com/plasmakit/reactorgeom/internal/mesh"
	"github.com/plasmakit/reactorgeom/internal/render"
	"github.com/plasmakit/reactorgeom/internal/storage"
	"github.com/plasmakit/reactorgeom/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	preset  string
	// render
	outDir    string
	imgWidth  int
	imgHeight int
	mask      bool
	// mesh
	nx     int
	ny     int
	format string
	// query
	atPoints []string
	// profile
	sliceY  float64
	samples int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reactorgeom",
		Short: "plasma reactor and feature-etch geometry tool",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".reactorgeom", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render [config.yaml]",
		Short: "render geometry to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&preset, "preset", "", "use a built-in geometry")
	renderCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	renderCmd.Flags().IntVar(&imgWidth, "width", 800, "image width in pixels")
	renderCmd.Flags().IntVar(&imgHeight, "height", 800, "image height in pixels")
	renderCmd.Flags().BoolVar(&mask, "mask", false, "render the non-ambient footprint mask")

	meshCmd := &cobra.Command{
		Use:   "mesh [config.yaml]",
		Short: "classify a grid and store the mesh",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMesh,
	}
	meshCmd.Flags().StringVar(&preset, "preset", "", "use a built-in geometry")
	meshCmd.Flags().IntVar(&nx, "nx", 50, "grid nodes along x")
	meshCmd.Flags().IntVar(&ny, "ny", 50, "grid nodes along y")
	meshCmd.Flags().StringVar(&format, "format", "csv", "mesh format (csv or json)")

	queryCmd := &cobra.Command{
		Use:   "query [config.yaml]",
		Short: "look up materials at points",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runQuery,
	}
	queryCmd.Flags().StringVar(&preset, "preset", "", "use a built-in geometry")
	queryCmd.Flags().StringArrayVar(&atPoints, "at", nil, "point \"x,y\" (repeatable)")

	materialsCmd := &cobra.Command{
		Use:   "materials [config.yaml]",
		Short: "list registered materials",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMaterials,
	}
	materialsCmd.Flags().StringVar(&preset, "preset", "", "use a built-in geometry")

	profileCmd := &cobra.Command{
		Use:   "profile [config.yaml]",
		Short: "plot the material profile along a slice",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProfile,
	}
	profileCmd.Flags().StringVar(&preset, "preset", "", "use a built-in geometry")
	profileCmd.Flags().Float64Var(&sliceY, "y", 0, "y of the horizontal slice (2D only)")
	profileCmd.Flags().IntVar(&samples, "samples", 80, "sample count along the slice")

	viewCmd := &cobra.Command{
		Use:   "view [config.yaml]",
		Short: "interactive terminal probe",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGeometry(args)
			if err != nil {
				return err
			}
			return viz.Run(g)
		},
	}
	viewCmd.Flags().StringVar(&preset, "preset", "", "use a built-in geometry")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in geometries",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-10s %dD, %d shapes\n", name, cfg.Dimension, len(cfg.Shapes))
			}
		},
	}

	rootCmd.AddCommand(renderCmd, meshCmd, queryCmd, materialsCmd, profileCmd, viewCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	g, err := loadGeometry(args)
	if err != nil {
		return err
	}

	opts := render.Options{Width: imgWidth, Height: imgHeight, Mask: mask}
	path, err := render.WritePNG(g, outDir, opts)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d shapes, %d materials)\n", path, len(g.Shapes()), g.Registry().Len())
	return nil
}

func runMesh(cmd *cobra.Command, args []string) error {
	g, err := loadGeometry(args)
	if err != nil {
		return err
	}

	m, err := mesh.Generate(context.Background(), g, nx, ny)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveMesh(g, m, format)
	if err != nil {
		return err
	}

	fmt.Printf("stored run %s in %s\n", runID, st.Dir(runID))
	counts := m.Counts()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tNODES")
	for name := range g.Registry().All() {
		fmt.Fprintf(w, "%s\t%d\n", name, counts[name])
	}
	return w.Flush()
}

func runQuery(cmd *cobra.Command, args []string) error {
	g, err := loadGeometry(args)
	if err != nil {
		return err
	}
	if len(atPoints) == 0 {
		return fmt.Errorf("no points given; use --at \"x,y\"")
	}

	for _, raw := range atPoints {
		p, err := parsePoint(raw, g.Dimension())
		if err != nil {
			return err
		}
		mat := g.MaterialAt(p)
		idx, err := g.Registry().IndexOf(mat)
		if err != nil {
			// Ambient material with a non-default domain material: the
			// point is uncovered and the ambient was never registered.
			fmt.Printf("(%g, %g) -> %s (unregistered ambient)\n", p.X, p.Y, mat)
			continue
		}
		fmt.Printf("(%g, %g) -> %s [%d]\n", p.X, p.Y, mat, idx)
	}
	return nil
}

func runMaterials(cmd *cobra.Command, args []string) error {
	g, err := loadGeometry(args)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tMATERIAL\tCOLOR")
	for _, e := range render.Legend(g) {
		hex := fmt.Sprintf("#%02X%02X%02X", e.Color.R, e.Color.G, e.Color.B)
		chip := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■ " + hex)
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.Index, e.Material, chip)
	}
	return w.Flush()
}

func runProfile(cmd *cobra.Command, args []string) error {
	g, err := loadGeometry(args)
	if err != nil {
		return err
	}
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", samples)
	}
	dom, ok := g.Domain()
	if !ok {
		return fmt.Errorf("geometry %q has no domain", g.Name())
	}

	dx := (dom.Max().X - dom.Min().X) / float64(samples-1)
	data := make([]float64, samples)
	for i := range data {
		p := geometry.Point{X: dom.Min().X + float64(i)*dx, Y: sliceY}
		idx, err := g.Registry().IndexOf(g.MaterialAt(p))
		if err != nil {
			idx = -1
		}
		data[i] = float64(idx)
	}

	caption := fmt.Sprintf("material index, x in [%g, %g]", dom.Min().X, dom.Max().X)
	if g.Dimension() == geometry.Dim2D {
		caption += fmt.Sprintf(", y=%g", sliceY)
	}
	fmt.Println(asciigraph.Plot(data, asciigraph.Height(10), asciigraph.Caption(caption)))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("no runs yet")
			return nil
		}
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGEOMETRY\tDIM\tSHAPES\tMATERIALS\tGRID\tTIME")
	for _, r := range runs {
		grid := "-"
		if r.GridNx > 0 {
			grid = fmt.Sprintf("%dx%d", r.GridNx, r.GridNy)
		}
		fmt.Fprintf(w, "%s\t%s\t%dD\t%d\t%d\t%s\t%s\n",
			r.ID, r.Geometry, r.Dimension, r.Shapes, r.Materials, grid,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
