package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/config"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/run"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/search"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/storage"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/tui"
)

var (
	dataDir      string
	configFile   string
	rows         int
	cols         int
	preset       string
	theme        string
	stepDelay    int
	seed         int64
	dynamic      bool
	obstacleRate float64
	noSave       bool
	// Board sizes for the bench sweep
	benchSizes = []int{16, 32, 64, 128}
)

// main is the entry point for the pathfinder CLI; it registers commands and
// flags and launches the interactive board when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pathfinder",
		Short: "grid pathfinding visualizer",
		RunE:  runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pathfinder", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&rows, "rows", config.DefaultRows, "board rows")
	rootCmd.PersistentFlags().IntVar(&cols, "cols", config.DefaultCols, "board columns")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "board preset")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().BoolVar(&dynamic, "dynamic", false, "inject random obstacles while running")
	rootCmd.PersistentFlags().Float64Var(&obstacleRate, "obstacle-rate", config.DefaultObstacleRate, "per-step obstacle probability")

	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.Flags().IntVar(&stepDelay, "delay", config.DefaultStepDelayMS, "step delay in milliseconds")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run a search headless and record the trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the trace")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot frontier and visited curves for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "benchmark an algorithm across board sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm1] [algorithm2] ...",
		Short: "run algorithms on the same board and compare",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list board presets",
		RunE:  listBoardPresets,
	}

	mazeCmd := &cobra.Command{
		Use:   "maze [preset]",
		Short: "print a preset board",
		Args:  cobra.ExactArgs(1),
		RunE:  printMaze,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, benchCmd, compareCmd, presetsCmd, mazeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges defaults, the optional config file, and CLI flags.
// Flags the user set explicitly win over the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("rows") || configFile == "" {
		cfg.Rows = rows
	}
	if flags.Changed("cols") || configFile == "" {
		cfg.Cols = cols
	}
	if flags.Changed("preset") {
		cfg.Preset = preset
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("dynamic") {
		cfg.DynamicObstacles = dynamic
	}
	if flags.Changed("obstacle-rate") {
		cfg.ObstacleRate = obstacleRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("delay") {
		cfg.StepDelayMS = stepDelay
	}
	return cfg, nil
}

func newController(cfg *config.Config, algorithm string) (*run.Controller, error) {
	g, err := cfg.BuildGrid()
	if err != nil {
		return nil, err
	}
	ctrl := run.NewController(g)
	if algorithm != "" {
		if err := ctrl.SelectAlgorithm(algorithm); err != nil {
			return nil, err
		}
	}
	if cfg.DynamicObstacles {
		ctrl.EnableObstacles(cfg.ObstacleRate, cfg.Seed)
	}
	return ctrl, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg, cfg.Algorithm)
	if err != nil {
		return err
	}
	return tui.Run(ctrl, cfg)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("running %s on %dx%d board...\n", args[0], cfg.Rows, cfg.Cols)
	start := time.Now()
	if err := ctrl.Run(context.Background()); err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := ctrl.Stats()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("outcome: %s\n", ctrl.Phase())
	fmt.Printf("steps: %d\n", st.Steps)
	fmt.Printf("expanded: %d\n", st.Expanded)
	fmt.Printf("discovered: %d\n", st.Discovered)
	fmt.Printf("max frontier: %d\n", st.MaxFrontier)
	if st.PathLen > 0 {
		fmt.Printf("path length: %d cells\n", st.PathLen)
	}

	if noSave {
		return nil
	}
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunMetadata{
		Algorithm: args[0],
		Timestamp: time.Now(),
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		Seed:      cfg.Seed,
		Outcome:   ctrl.Phase().String(),
		Stats:     st,
	}, ctrl.Trace())
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tBOARD\tOUTCOME\tSTEPS\tPATH")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%s\t%d\t%d\n",
			r.ID,
			r.Algorithm,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Rows,
			r.Cols,
			r.Outcome,
			r.Stats.Steps,
			r.Stats.PathLen,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	store := storage.New(dataDir)

	meta, err := store.Load(runID)
	if err != nil {
		return err
	}
	events, err := store.LoadEvents(runID)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("events: %d\n\n", len(events))

	frontier, visited := traceCurves(events)
	fmt.Println(asciigraph.Plot(frontier,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("frontier size per step"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(visited,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("cells visited"),
	))
	return nil
}

// traceCurves rebuilds per-step frontier size and cumulative visited counts
// from a stored event trace. A discover grows the frontier by one, a visit
// moves one cell from the frontier to the visited set.
func traceCurves(events []run.TraceEvent) (frontier, visited []float64) {
	lastStep := events[len(events)-1].Step
	frontier = make([]float64, 0, lastStep)
	visited = make([]float64, 0, lastStep)

	pending, seen, i := 0.0, 0.0, 0
	for step := 1; step <= lastStep; step++ {
		for ; i < len(events) && events[i].Step == step; i++ {
			switch events[i].Kind {
			case search.EventDiscover:
				pending++
			case search.EventVisit:
				seen++
				if pending > 0 {
					pending--
				}
			}
		}
		frontier = append(frontier, pending)
		visited = append(visited, seen)
	}
	return frontier, visited
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	events, err := store.LoadEvents(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, events)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	events, err := store.LoadEvents(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, events)
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	algorithm := args[0]

	fmt.Printf("benchmarking %s\n\n", algorithm)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BOARD\tSTEPS\tEXPANDED\tPATH\tTIME\tSTEPS/SEC")

	for _, size := range benchSizes {
		cfg := config.DefaultConfig()
		cfg.Rows, cfg.Cols = size, size
		ctrl, err := newController(cfg, algorithm)
		if err != nil {
			return err
		}

		start := time.Now()
		if err := ctrl.Run(context.Background()); err != nil {
			return err
		}
		elapsed := time.Since(start)

		st := ctrl.Stats()
		stepsPerSec := float64(st.Steps) / elapsed.Seconds()
		fmt.Fprintf(w, "%dx%d\t%d\t%d\t%d\t%v\t%.0f\n",
			size, size, st.Steps, st.Expanded, st.PathLen, elapsed, stepsPerSec)
	}
	return w.Flush()
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tOUTCOME\tSTEPS\tEXPANDED\tFRONTIER\tPATH\tTIME")

	for _, algorithm := range args {
		// Each run gets a fresh board so painted cells from the previous
		// algorithm do not leak into the next one.
		ctrl, err := newController(cfg, algorithm)
		if err != nil {
			return err
		}

		start := time.Now()
		if err := ctrl.Run(context.Background()); err != nil {
			return err
		}
		elapsed := time.Since(start)

		st := ctrl.Stats()
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%v\n",
			algorithm, ctrl.Phase(), st.Steps, st.Expanded, st.MaxFrontier, st.PathLen, elapsed)
	}
	return w.Flush()
}

func listBoardPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBOARD\tWALLS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%d\n", p.Name, p.Rows, p.Cols, len(p.Walls))
	}
	return w.Flush()
}

func printMaze(cmd *cobra.Command, args []string) error {
	p := config.GetPreset(args[0])
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}
	g, err := p.BuildGrid()
	if err != nil {
		return err
	}

	var b strings.Builder
	g.Each(func(c grid.Coord, role grid.Role) {
		if c.Col == 0 && c.Row > 0 {
			b.WriteByte('\n')
		}
		switch role {
		case grid.RoleWall:
			b.WriteString("##")
		case grid.RoleStart:
			b.WriteString("S ")
		case grid.RoleTarget:
			b.WriteString("T ")
		default:
			b.WriteString(". ")
		}
	})
	fmt.Println(b.String())
	return nil
}
