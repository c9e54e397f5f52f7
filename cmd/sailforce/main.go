package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/windlab/sailforce/internal/config"
	"github.com/windlab/sailforce/internal/export"
	"github.com/windlab/sailforce/internal/rig"
	"github.com/windlab/sailforce/internal/solver"
	"github.com/windlab/sailforce/internal/store"
	"github.com/windlab/sailforce/internal/tui"
	"github.com/windlab/sailforce/internal/viz"
)

var (
	dataDir    string
	wind       float64
	course     float64
	board      float64
	area       float64
	sheeting   float64
	downhaul   float64
	outhaul    float64
	waterC0    float64
	waterC2    float64
	configFile string
	preset     string
	savedName  string
	// polar sweep
	polarStep   float64
	polarMetric string
	csvPath     string
	jsonPath    string
	// trim search
	trimStep float64
	// svg export
	svgWidth   int
	svgHeight  int
	svgBraille bool
)

// main registers the sailforce commands; with no subcommand it launches the
// interactive estimator. Exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "sailforce",
		Short: "interactive sail-force estimator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			st := store.New(dataDir)
			if err := st.Init(); err != nil {
				return err
			}
			return tui.RunInteractive(cfg, st)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sailforce", "data directory")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "evaluate the force model once",
		RunE:  runCompute,
	}

	topspeedCmd := &cobra.Command{
		Use:   "topspeed",
		Short: "estimate equilibrium top speed",
		RunE:  runTopSpeed,
	}

	polarCmd := &cobra.Command{
		Use:   "polar",
		Short: "sweep course angle and plot drive or top speed",
		RunE:  runPolar,
	}
	polarCmd.Flags().Float64Var(&polarStep, "step", 5, "course step in degrees")
	polarCmd.Flags().StringVar(&polarMetric, "metric", "speed", "metric to plot (drive|speed)")
	polarCmd.Flags().StringVar(&csvPath, "csv", "", "also write sweep to CSV file")
	polarCmd.Flags().StringVar(&jsonPath, "json", "", "also write sweep to JSON file")

	trimCmd := &cobra.Command{
		Use:   "trim",
		Short: "grid-search sheeting and trim for max drive",
		RunE:  runTrim,
	}
	trimCmd.Flags().Float64Var(&trimStep, "step", 5, "sheeting step in degrees")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list builtin scenario presets",
		RunE:  runPresets,
	}

	savedCmd := &cobra.Command{
		Use:   "saved",
		Short: "list saved presets",
		RunE:  runSavedList,
	}

	saveCmd := &cobra.Command{
		Use:   "save [name]",
		Short: "save current inputs as a preset",
		Args:  cobra.ExactArgs(1),
		RunE:  runSave,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New(dataDir)
			if err := st.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	}

	exportPresetsCmd := &cobra.Command{
		Use:   "export-presets [path]",
		Short: "export saved presets to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New(dataDir)
			return st.Export(args[0])
		},
	}

	importPresetsCmd := &cobra.Command{
		Use:   "import-presets [path]",
		Short: "import presets from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New(dataDir)
			if err := st.Init(); err != nil {
				return err
			}
			n, err := st.Import(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("imported %d presets\n", n)
			return nil
		},
	}

	saveConfigCmd := &cobra.Command{
		Use:   "save-config [path]",
		Short: "write the resolved scenario to a yaml config file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSaveConfig,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [path]",
		Short: "render the force vectors to an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 600, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	exportSVGCmd.Flags().BoolVar(&svgBraille, "braille", false, "export the terminal canvas dots instead of clean arrows")

	for _, c := range []*cobra.Command{rootCmd, computeCmd, topspeedCmd, polarCmd, trimCmd, saveCmd, saveConfigCmd, exportSVGCmd} {
		addInputFlags(c)
	}

	rootCmd.AddCommand(computeCmd, topspeedCmd, polarCmd, trimCmd, presetsCmd,
		savedCmd, saveCmd, deleteCmd, exportPresetsCmd, importPresetsCmd, saveConfigCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&wind, "wind", config.DefaultWind, "true wind speed (m/s)")
	cmd.Flags().Float64Var(&course, "course", config.DefaultCourse, "course angle (deg, 0=downwind 180=upwind)")
	cmd.Flags().Float64Var(&board, "board", config.DefaultBoard, "board speed (m/s)")
	cmd.Flags().Float64Var(&area, "area", config.DefaultArea, "sail area (m²)")
	cmd.Flags().Float64Var(&sheeting, "sheeting", config.DefaultSheeting, "sheeting angle (deg)")
	cmd.Flags().Float64Var(&downhaul, "downhaul", config.DefaultDownhaul, "downhaul trim [0,1]")
	cmd.Flags().Float64Var(&outhaul, "outhaul", config.DefaultOuthaul, "outhaul trim [0,1]")
	cmd.Flags().Float64Var(&waterC0, "water-c0", config.DefaultWaterC0, "baseline water drag (N)")
	cmd.Flags().Float64Var(&waterC2, "water-c2", config.DefaultWaterC2, "quadratic water drag (N·s²/m²)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "builtin scenario preset")
	cmd.Flags().StringVar(&savedName, "saved", "", "saved preset name")
}

// resolveConfig layers the scenario: defaults, then builtin preset, then
// config file, then saved preset, then explicit CLI flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// Copy so flag overrides below don't touch the shared preset.
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if savedName != "" {
		st := store.New(dataDir)
		p, err := st.Load(savedName)
		if err != nil {
			return nil, err
		}
		in := p.Inputs.ToInputs()
		water := cfg.Water
		cfg = config.FromInputs(in)
		cfg.Water = water
	}

	if cmd.Flags().Changed("wind") {
		cfg.Wind = wind
	}
	if cmd.Flags().Changed("course") {
		cfg.Course = course
	}
	if cmd.Flags().Changed("board") {
		cfg.Board = board
	}
	if cmd.Flags().Changed("area") {
		cfg.Rig.Area = area
	}
	if cmd.Flags().Changed("sheeting") {
		cfg.Rig.Sheeting = sheeting
	}
	if cmd.Flags().Changed("downhaul") {
		cfg.Rig.Downhaul = downhaul
	}
	if cmd.Flags().Changed("outhaul") {
		cfg.Rig.Outhaul = outhaul
	}
	if cmd.Flags().Changed("water-c0") {
		cfg.Water.C0 = waterC0
	}
	if cmd.Flags().Changed("water-c2") {
		cfg.Water.C2 = waterC2
	}

	return cfg, nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	out := rig.Compute(cfg.ToInputs())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "apparent wind\t%.3f m/s @ %.1f°\n", out.ApparentWindSpeed, out.ApparentWindAngleDeg)
	fmt.Fprintf(w, "angle of attack\t%.1f°\n", out.AlphaDeg)
	fmt.Fprintf(w, "cl / cd\t%.3f / %.4f\n", out.Cl, out.Cd)
	fmt.Fprintf(w, "lift / drag\t%.1f N / %.1f N\n", out.LiftN, out.DragN)
	fmt.Fprintf(w, "drive (fwd)\t%.1f N\n", out.DriveN)
	fmt.Fprintf(w, "side (stbd)\t%.1f N\n", out.SideN)
	fmt.Fprintf(w, "aero power\t%.1f W\n", out.PowerW)
	return w.Flush()
}

func runTopSpeed(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res := solver.TopSpeed(cfg.ToInputs(), cfg.Water.C0, cfg.Water.C2)

	fmt.Printf("top speed: %.1f m/s (%.1f kn)\n", res.Speed, res.Speed*1.9438)
	fmt.Printf("drive at speed: %.1f N\n", res.DriveAtSpeed)
	fmt.Printf("water drag at speed: %.1f N\n", res.WaterDrag)
	return nil
}

func runPolar(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	points := solver.Polar(cfg.ToInputs(), cfg.Water.C0, cfg.Water.C2, polarStep)

	data := make([]float64, len(points))
	caption := "top speed (m/s) vs course angle 0..180°"
	for i, p := range points {
		if polarMetric == "drive" {
			data[i] = p.DriveN
		} else {
			data[i] = p.TopSpeed
		}
	}
	if polarMetric == "drive" {
		caption = "drive force (N) vs course angle 0..180°"
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)

	if csvPath != "" {
		file, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := export.PolarCSV(file, points); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}

	if jsonPath != "" {
		file, err := os.Create(jsonPath)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := export.PolarJSON(file, points); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}

	return nil
}

func runTrim(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if trimStep <= 0 {
		return fmt.Errorf("step must be positive")
	}

	search := solver.NewTrimSearch(
		[]string{"sheeting", "downhaul", "outhaul"},
		[][]float64{
			solver.SpanRange(-85, 85, trimStep),
			solver.SpanRange(0, 1, 0.25),
			solver.SpanRange(0, 1, 0.25),
		},
	)

	params, drive := search.Search(cfg.ToInputs())

	fmt.Printf("best drive: %.1f N\n\n", drive)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tVALUE")
	for _, name := range []string{"sheeting", "downhaul", "outhaul"} {
		fmt.Fprintf(w, "%s\t%.2f\n", name, params[name])
	}
	return w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	if len(names) == 0 {
		fmt.Println("no presets")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWIND\tCOURSE\tAREA\tSHEETING")
	for _, name := range names {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.1f\t%.0f°\t%.1f\t%.0f°\n", name, p.Wind, p.Course, p.Rig.Area, p.Rig.Sheeting)
	}
	return w.Flush()
}

func runSavedList(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	presets, err := st.List()
	if err != nil {
		return err
	}

	if len(presets) == 0 {
		fmt.Println("no saved presets")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSAVED\tWIND\tCOURSE\tBOARD\tAREA")
	for _, p := range presets {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.0f°\t%.1f\t%.1f\n",
			p.Name,
			p.SavedAt.Format("2006-01-02 15:04"),
			p.Inputs.TrueWindSpeed,
			p.Inputs.CourseAngleDeg,
			p.Inputs.BoardSpeed,
			p.Inputs.SailArea,
		)
	}
	return w.Flush()
}

func runSave(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	if err := st.Save(args[0], cfg.ToInputs()); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", args[0])
	return nil
}

func runSaveConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	out := rig.Compute(cfg.ToInputs())

	var svg string
	if svgBraille {
		canvas := viz.RenderForces(out, svgWidth/12, svgHeight/24)
		svg = export.CanvasToSVG(canvas, 6)
	} else {
		svg = export.ForcesToSVG(viz.Vectors(out), svgWidth, svgHeight)
	}

	if err := os.WriteFile(args[0], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
