package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/bonsai/internal/checkpoint"
	"github.com/san-kum/bonsai/internal/config"
	"github.com/san-kum/bonsai/internal/tree"
	"github.com/san-kum/bonsai/internal/viz"
)

var (
	dataDir     string
	width       int
	height      int
	life        int
	multiplier  int
	seed        int64
	leaves      string
	theme       string
	fps         int
	clampDeltas bool
	configFile  string
	preset      string
	screensaver bool
	saveState   bool
	resume      bool
	samples     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bonsai",
		Short: "grow bonsai trees in your terminal",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	addGrowFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "viewport width")
		cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "viewport height")
		cmd.Flags().IntVar(&life, "life", config.DefaultLife, "starting life")
		cmd.Flags().IntVar(&multiplier, "multiplier", config.DefaultMultiplier, "branching multiplier")
		cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
		cmd.Flags().StringVar(&leaves, "leaves", "&", "comma-separated leaf glyphs")
		cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
		cmd.Flags().BoolVar(&clampDeltas, "clamp", false, "clamp growth steps to one cell")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		cmd.Flags().BoolVar(&saveState, "save", false, "save seed checkpoint and run metadata")
		cmd.Flags().BoolVar(&resume, "resume", false, "regrow the last checkpointed tree")
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "grow a tree with live animation",
		RunE:  runLive,
	}
	addGrowFlags(liveCmd)
	addGrowFlags(rootCmd)
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().BoolVar(&screensaver, "screensaver", false, "replant forever with fresh seeds")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().BoolVar(&screensaver, "screensaver", false, "replant forever with fresh seeds")

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "grow a tree instantly and print it",
		RunE:  runPrint,
	}
	addGrowFlags(printCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot branch growth across sample trees",
		RunE:  runStats,
	}
	addGrowFlags(statsCmd)
	statsCmd.Flags().IntVar(&samples, "samples", 8, "number of sample trees")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, printCmd, statsCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration: preset first, then
// config file, then any flag the user explicitly set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("life") {
		cfg.Life = life
	}
	if cmd.Flags().Changed("multiplier") {
		cfg.Multiplier = multiplier
	}
	if cmd.Flags().Changed("seed") {
		if seed == 0 {
			return nil, fmt.Errorf("seed must be nonzero; omit --seed for a time-based one")
		}
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("leaves") {
		cfg.Leaves = config.ParseLeaves(leaves)
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("clamp") {
		cfg.ClampDeltas = clampDeltas
	}
	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		cfg.FPS = fps
	}
	if f := cmd.Flags().Lookup("screensaver"); f != nil && f.Changed {
		cfg.Screensaver = screensaver
	}
	if cfg.DataDir == "" || cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}

	if resume {
		st := checkpoint.New(cfg.DataDir)
		ckSeed, _, err := st.Load()
		switch {
		case err == nil:
			cfg.Seed = ckSeed
		case errors.Is(err, checkpoint.ErrNotFound):
			fmt.Fprintln(os.Stderr, "warning: no checkpoint found, growing a fresh tree")
		default:
			fmt.Fprintf(os.Stderr, "warning: checkpoint unreadable (%v), growing a fresh tree\n", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	var store *checkpoint.Store
	if saveState {
		store = checkpoint.New(cfg.DataDir)
		if err := store.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: checkpoint dir unavailable: %v\n", err)
			store = nil
		}
	}

	m, err := viz.NewModel(cfg, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	engine, err := tree.New(cfg.TreeOptions())
	if err != nil {
		return err
	}
	if err := engine.GrowAll(context.Background()); err != nil {
		return err
	}

	fmt.Print(viz.Render(engine.Cells(), cfg.Width, cfg.Height, cfg.Leaves, viz.GetTheme(cfg.Theme)))
	fmt.Printf("\nseed: %d  branches: %d  steps: %d\n", engine.Seed(), engine.Branches(), engine.Steps())

	if saveState {
		st := checkpoint.New(cfg.DataDir)
		if err := st.Save(engine.Seed(), engine.Branches()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: checkpoint not saved: %v\n", err)
		}
		if _, err := st.SaveRun(checkpoint.RunMetadata{
			Seed:       engine.Seed(),
			Life:       cfg.Life,
			Multiplier: cfg.Multiplier,
			Branches:   engine.Branches(),
			Steps:      engine.Steps(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: run metadata not saved: %v\n", err)
		}
	}

	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if samples < 1 {
		return fmt.Errorf("samples must be positive, got %d", samples)
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = 1
	}

	// Per-step branch counts, averaged across samples.
	var series [][]float64
	summary := make([]*tree.Engine, 0, samples)

	for i := 0; i < samples; i++ {
		opts := cfg.TreeOptions()
		opts.Seed = baseSeed + int64(i)
		engine, err := tree.New(opts)
		if err != nil {
			return err
		}

		counts := []float64{}
		for engine.Grow() {
			counts = append(counts, float64(engine.Branches()))
		}
		counts = append(counts, float64(engine.Branches()))

		series = append(series, counts)
		summary = append(summary, engine)
	}

	maxSteps := 0
	for _, s := range series {
		if len(s) > maxSteps {
			maxSteps = len(s)
		}
	}
	mean := make([]float64, maxSteps)
	for step := 0; step < maxSteps; step++ {
		sum, n := 0.0, 0
		for _, s := range series {
			if step < len(s) {
				sum += s[step]
				n++
			} else {
				// Completed trees hold their final count.
				sum += s[len(s)-1]
				n++
			}
		}
		mean[step] = sum / float64(n)
	}

	fmt.Printf("branch growth over %d sample trees (life=%d, multiplier=%d)\n\n",
		samples, cfg.Life, cfg.Multiplier)

	graph := asciigraph.Plot(mean,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("mean branch count vs growth step"),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tSTEPS\tBRANCHES")
	for _, e := range summary {
		fmt.Fprintf(w, "%d\t%d\t%d\n", e.Seed(), e.Steps(), e.Branches())
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := checkpoint.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tLIFE\tMULT\tBRANCHES\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Life,
			run.Multiplier,
			run.Branches,
			run.Steps,
		)
	}
	return w.Flush()
}
