package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/danahmedkhan/faraday/internal/config"
	"github.com/danahmedkhan/faraday/internal/engine"
	"github.com/danahmedkhan/faraday/internal/metrics"
	"github.com/danahmedkhan/faraday/internal/storage"
	"github.com/danahmedkhan/faraday/internal/viz"
)

// Headless runs simulate a fixed virtual surface so recorded traces are
// comparable across terminals.
const (
	recordWidth  = 240
	recordHeight = 160
)

var (
	dataDir    string
	configFile string
	fps        int
	theme      string
	duration   float64
	seed       int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "faraday",
		Short: "electromagnetic induction visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the live visualization",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "record a headless simulation run",
		RunE:  runRecord,
	}

	for _, c := range []*cobra.Command{rootCmd, liveCmd, runCmd} {
		c.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
		c.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
		c.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in seconds")
		c.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for spark bursts")
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the optional config file with CLI flags; flags win
// when explicitly set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng := engine.New(cfg.Seed)
	return viz.RunLive(eng, viz.GetTheme(cfg.Theme), cfg.FPS)
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	eng := engine.New(cfg.Seed)
	eng.Resize(recordWidth, recordHeight)

	mets := metrics.Default()
	frames := int(cfg.Duration * float64(cfg.FPS))
	samples := make([]storage.Sample, 0, frames)

	fmt.Printf("recording %d frames at %d fps...\n", frames, cfg.FPS)
	start := time.Now()

	err = eng.Run(context.Background(), frames, func(s engine.Snapshot) bool {
		for _, m := range mets {
			m.Observe(s)
		}
		samples = append(samples, storage.Sample{
			Frame:        s.Clock,
			Time:         float64(s.Clock) / float64(cfg.FPS),
			Displacement: s.Displacement,
			Velocity:     s.Velocity,
			EMF:          s.EMF,
			Charge:       s.Charge,
			Particles:    len(s.Particles),
		})
		return true
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	results := make(map[string]float64, len(mets))
	for _, m := range mets {
		results[m.Name()] = m.Value()
	}

	runID, err := st.Save(cfg.Seed, cfg.FPS, cfg.Duration, results, samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(samples))
	fmt.Println("\nmetrics:")
	for name, val := range results {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tFPS\tFRAMES\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2fs\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.FPS,
			run.Frames,
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", len(samples))

	channels := []struct {
		caption string
		pick    func(storage.Sample) float64
	}{
		{"displacement", func(s storage.Sample) float64 { return s.Displacement }},
		{"velocity", func(s storage.Sample) float64 { return s.Velocity }},
		{"emf (induced voltage)", func(s storage.Sample) float64 { return s.EMF }},
		{"charge", func(s storage.Sample) float64 { return s.Charge }},
	}

	for _, ch := range channels {
		data := make([]float64, len(samples))
		for i, sm := range samples {
			data[i] = ch.pick(sm)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(ch.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.ExportCSV(os.Stdout, samples)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, samples)
}
