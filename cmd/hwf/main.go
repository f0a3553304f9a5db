package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/hwf/internal/analysis"
	"github.com/san-kum/hwf/internal/config"
	"github.com/san-kum/hwf/internal/field"
	"github.com/san-kum/hwf/internal/logger"
	"github.com/san-kum/hwf/internal/viz"
)

var (
	// Config sources
	configFile string
	preset     string
	logMode    string
	workers    int
	// State
	charge      float64
	nucleus     string
	nuclearMass float64
	noReduced   bool
	// Slice
	phiMode       string
	phi0          float64
	framing       float64
	extent        float64
	resolution    int
	radialSamples int
	// Rendering
	width     int
	exposure  float64
	theme     string
	color     bool
	contour   float64
	showPlot  bool
	plotWidth int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "hwf",
		Short:         "hydrogenic orbital engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a preset state, e.g. 3d1")
	rootCmd.PersistentFlags().StringVar(&logMode, "log", "", "log mode: dev or prod")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")

	evalCmd := &cobra.Command{
		Use:   "eval [n l m]",
		Short: "evaluate an orbital and print diagnostics",
		Args:  stateArgs,
		RunE:  runEval,
	}
	addStateFlags(evalCmd)
	evalCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the radial distribution")
	evalCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "radial plot width")

	previewCmd := &cobra.Command{
		Use:   "preview [n l m]",
		Short: "render the x-z probability density in the terminal",
		Args:  stateArgs,
		RunE:  runPreview,
	}
	addStateFlags(previewCmd)
	previewCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "preview width in characters")
	previewCmd.Flags().Float64Var(&exposure, "exposure", 0, "lift faint regions (0 = linear)")
	previewCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "light or dark")
	previewCmd.Flags().BoolVar(&color, "color", true, "colour the preview")
	previewCmd.Flags().Float64Var(&contour, "contour", 0, "also draw the outline at this normalised level")
	previewCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the radial distribution")

	presetsCmd := &cobra.Command{
		Use:   "presets [shell]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "hwf.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(evalCmd, previewCmd, presetsCmd, initCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "hwf: %v\n", err)
		os.Exit(1)
	}
}

func addStateFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&charge, "z", 1, "nuclear charge Z")
	cmd.Flags().StringVar(&nucleus, "nucleus", "", "named nucleus (sets Z and M), e.g. He")
	cmd.Flags().Float64Var(&nuclearMass, "mass", 0, "nuclear mass in kg (default proton)")
	cmd.Flags().BoolVar(&noReduced, "no-reduced-mass", false, "use the infinite-mass Bohr radius")
	cmd.Flags().StringVar(&phiMode, "phi-mode", "plane", "azimuth on the slice: plane or constant")
	cmd.Flags().Float64Var(&phi0, "phi0", 0, "azimuth for constant mode (rad)")
	cmd.Flags().Float64Var(&framing, "k", 0, "framing factor around the mean radius")
	cmd.Flags().Float64Var(&extent, "extent", 0, "frame half-width in a_mu when k is 0")
	cmd.Flags().IntVar(&resolution, "res", config.DefaultResolution, "samples per axis")
	cmd.Flags().IntVar(&radialSamples, "radial-samples", config.DefaultRadialSamples, "P(r) samples")
}

func stateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) == 3 {
		return nil
	}
	return fmt.Errorf("expected n l m or no arguments, got %d", len(args))
}

// resolveConfig layers preset < config file < environment < arguments and flags.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.FindPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (see hwf presets)", preset)
		}
		config.ApplyPreset(cfg, p)
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if len(args) == 3 {
		qn := make([]int, 3)
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return nil, fmt.Errorf("quantum number %q: %w", a, err)
			}
			qn[i] = v
		}
		cfg.State.N, cfg.State.L, cfg.State.M = qn[0], qn[1], qn[2]
	} else if preset == "" && configFile == "" {
		return nil, fmt.Errorf("give n l m, --preset or --config")
	}

	flags := cmd.Flags()
	if flags.Changed("nucleus") {
		if flags.Changed("z") || flags.Changed("mass") {
			return nil, fmt.Errorf("--nucleus sets Z and M: drop --z and --mass")
		}
		cfg.State.Nucleus = nucleus
	}
	if flags.Changed("z") {
		if err := cfg.SetCharge(charge); err != nil {
			return nil, err
		}
	}
	if flags.Changed("mass") {
		if err := cfg.SetNuclearMass(nuclearMass); err != nil {
			return nil, err
		}
	}
	if flags.Changed("no-reduced-mass") {
		cfg.State.ReducedMass = !noReduced
	}
	if flags.Changed("phi-mode") {
		cfg.Slice.Mode = phiMode
	}
	if flags.Changed("phi0") {
		cfg.Slice.Phi0 = phi0
	}
	if flags.Changed("k") {
		cfg.Slice.K = framing
	}
	if flags.Changed("extent") {
		cfg.Slice.Extent = extent
		if !flags.Changed("k") {
			cfg.Slice.K = 0
		}
	}
	if flags.Changed("res") {
		cfg.Slice.Resolution = resolution
	}
	if flags.Changed("radial-samples") {
		cfg.RadialSamples = radialSamples
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("log") {
		cfg.Log.Mode = logMode
	}
	if flags.Changed("width") {
		cfg.Render.Width = width
	}
	if flags.Changed("exposure") {
		cfg.Render.Exposure = exposure
	}
	if flags.Changed("theme") {
		cfg.Render.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// assemble resolves the configuration and evaluates the field.
func assemble(cmd *cobra.Command, args []string) (*config.Config, *field.Field, *logger.Logger, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return nil, nil, nil, err
	}

	st, err := cfg.BuildState()
	if err != nil {
		return nil, nil, log, err
	}
	spec, err := cfg.BuildSlice()
	if err != nil {
		return nil, nil, log, err
	}

	log = log.With("state", viz.Label(st), "Z", st.Z())
	log.Debug("assembling",
		"resolution", spec.Resolution,
		"mode", spec.Mode.String(),
		"half_width_units", spec.HalfWidthUnits(st),
		"workers", cfg.Workers,
	)

	asm := field.NewAssembler(
		field.WithWorkers(cfg.Workers),
		field.WithRadialSamples(cfg.RadialSamples),
	)
	start := time.Now()
	f, err := asm.Assemble(cmd.Context(), st, spec)
	if err != nil {
		log.Error("assembly failed", "error", err)
		return nil, nil, log, err
	}
	log.Info("assembled", "samples", len(f.Density), "elapsed", time.Since(start))
	for _, adv := range f.Advisories {
		log.Warn("numeric advisory", "detail", adv.Error())
	}
	return cfg, f, log, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	_, f, log, err := assemble(cmd, args)
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}

	s, err := analysis.Summarize(f)
	if err != nil {
		return err
	}
	if s.RadialNodes != s.ExpectedNodes {
		log.Warn("radial node count mismatch", "got", s.RadialNodes, "want", s.ExpectedNodes)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tL\tM\tZ\tA_MU (m)\tNODES\tRADIAL NORM\tANGULAR NORM\tPEAK (a_mu)\t<r> (a_mu)")
	fmt.Fprintf(w, "%d\t%d\t%d\t%g\t%.6e\t%d\t%.9f\t%.9f\t%.4g\t%.4g\n",
		s.N, s.L, s.M, s.Z, s.AMu, s.RadialNodes, s.RadialNorm, s.AngularNorm, s.PeakRadius, s.MeanRadius)
	w.Flush()

	if showPlot {
		plot, err := viz.RadialPlot(f.Radial, f.AMu, viz.PlotOptions{Width: plotWidth, Unit: viz.UnitLabel(f.State)})
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(plot)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, f, log, err := assemble(cmd, args)
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}

	th := viz.GetTheme(cfg.Render.Theme)
	out, err := viz.Heatmap(f, viz.HeatmapOptions{
		Width:    cfg.Render.Width,
		Exposure: cfg.Render.Exposure,
		Theme:    th,
		Color:    color,
	})
	if err != nil {
		return err
	}
	fmt.Print(out)

	if contour > 0 {
		c, err := viz.Contour(f, contour, cfg.Render.Exposure, cfg.Render.Width)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(c.String())
	}

	if showPlot {
		plot, err := viz.RadialPlot(f.Radial, f.AMu, viz.PlotOptions{Width: cfg.Render.Width, Unit: viz.UnitLabel(f.State)})
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(plot)
	}

	s, err := analysis.Summarize(f)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(viz.Summary(s, th))
	fmt.Println(viz.Sparkline(f.Radial.P, min(cfg.Render.Width, f.Radial.Len()), th, color))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	shells := config.Shells()
	if len(args) > 0 {
		shells = args
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tN\tL\tM\tK")
	found := false
	for _, shell := range shells {
		for _, name := range config.ListPresets(shell) {
			p := config.GetPreset(shell, name)
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%g\n", name, p.State.N, p.State.L, p.State.M, p.Slice.K)
			found = true
		}
	}
	if !found {
		return fmt.Errorf("no presets for shell: %v", shells)
	}
	return w.Flush()
}

