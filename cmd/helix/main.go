package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/helix/internal/analysis"
	"github.com/san-kum/helix/internal/anim"
	"github.com/san-kum/helix/internal/chain"
	"github.com/san-kum/helix/internal/config"
	"github.com/san-kum/helix/internal/export"
	"github.com/san-kum/helix/internal/metrics"
	"github.com/san-kum/helix/internal/storage"
	"github.com/san-kum/helix/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	length      int
	persistence float64
	temperature float64
	rigidity    float64
	noise       float64
	forceX      float64
	forceY      float64
	forceZ      float64
	forceMode   string

	step      float64
	frameRate int
	themeName string

	frames     int
	sweepSteps int
	svgOut     string
)

// main registers the commands and runs the root command; with no
// subcommand the interactive live view starts.
func main() {
	rootCmd := &cobra.Command{
		Use:   "helix",
		Short: "animated worm-like-chain DNA visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return runLiveView(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".helix", "data directory")
	addChainFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive chain animation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return runLiveView(cfg)
		},
	}
	addChainFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate frames headless and save the run",
		RunE:  runHeadless,
	}
	addChainFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", 1000, "number of frames to generate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run observables",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of the end-to-end series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "sweep one parameter across its range",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepParam,
	}
	addChainFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&frames, "frames", 200, "frames per sweep point")
	sweepCmd.Flags().IntVar(&sweepSteps, "points", 8, "number of sweep points")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run chain to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "chain.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, analyzeCmd, sweepCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addChainFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&length, "length", config.DefaultLength, "number of chain beads")
	cmd.Flags().Float64Var(&persistence, "persistence", config.DefaultPersistence, "persistence length")
	cmd.Flags().Float64Var(&temperature, "temperature", config.DefaultTemperature, "temperature")
	cmd.Flags().Float64Var(&rigidity, "rigidity", config.DefaultRigidity, "bending rigidity")
	cmd.Flags().Float64Var(&noise, "noise", config.DefaultNoise, "noise level")
	cmd.Flags().Float64Var(&forceX, "fx", 0, "external force x")
	cmd.Flags().Float64Var(&forceY, "fy", 0, "external force y")
	cmd.Flags().Float64Var(&forceZ, "fz", 0, "external force z")
	cmd.Flags().StringVar(&forceMode, "force-mode", "decay", "force attenuation: decay or constant")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "time advance per frame")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "display frame rate")
	cmd.Flags().StringVar(&themeName, "theme", "helix", "color theme")
}

// buildConfig resolves preset < config file < explicit flags, the same
// precedence for every command that takes chain parameters.
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
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("length") {
		cfg.Chain.Length = length
	}
	if cmd.Flags().Changed("persistence") {
		cfg.Chain.Persistence = persistence
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Chain.Temperature = temperature
	}
	if cmd.Flags().Changed("rigidity") {
		cfg.Chain.Rigidity = rigidity
	}
	if cmd.Flags().Changed("noise") {
		cfg.Chain.Noise = noise
	}
	if cmd.Flags().Changed("fx") {
		cfg.Chain.Force.X = forceX
	}
	if cmd.Flags().Changed("fy") {
		cfg.Chain.Force.Y = forceY
	}
	if cmd.Flags().Changed("fz") {
		cfg.Chain.Force.Z = forceZ
	}
	if cmd.Flags().Changed("force-mode") {
		cfg.ForceMode = forceMode
	}
	if cmd.Flags().Changed("step") {
		cfg.Step = step
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLiveView(cfg *config.Config) error {
	store, err := chain.NewStore(cfg.Params())
	if err != nil {
		return err
	}
	driver, err := anim.New(store, cfg.Step)
	if err != nil {
		return err
	}

	m := viz.NewModel(store, driver, cfg.FPS, cfg.Theme)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// traceRecorder collects per-frame observable series for storage.
type traceRecorder struct {
	endToEnd []float64
	gyration []float64
}

func (r *traceRecorder) OnFrame(f anim.Frame) {
	r.endToEnd = append(r.endToEnd, metrics.EndToEnd(f.Points))
	r.gyration = append(r.gyration, metrics.RadiusOfGyration(f.Points))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	store, err := chain.NewStore(cfg.Params())
	if err != nil {
		return err
	}
	driver, err := anim.New(store, cfg.Step)
	if err != nil {
		return err
	}

	recorder := &traceRecorder{}
	driver.AddObserver(recorder)
	mset := metrics.Default()
	for _, m := range mset {
		m.Reset()
		driver.AddObserver(m.(anim.Observer))
	}

	fmt.Printf("generating %d frames...\n", frames)
	last, err := driver.Run(context.Background(), frames)
	if err != nil {
		return err
	}

	metricVals := make(map[string]float64, len(mset))
	for _, m := range mset {
		metricVals[m.Name()] = m.Value()
	}

	traces := []storage.Trace{
		{Name: "end_to_end", Values: recorder.endToEnd},
		{Name: "radius_of_gyration", Values: recorder.gyration},
	}
	runID, err := st.Save(store.Snapshot(), cfg.Step, last.Time, last.Points, traces, metricVals)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("final time: %.2f\n", last.Time)
	fmt.Println("\nmetrics:")
	for name, val := range metricVals {
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
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tLENGTH\tPERSIST\tTEMP\tRIGIDITY\tNOISE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f\t%.0f\t%.1f\t%.1f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Params.Length,
			run.Params.Persistence,
			run.Params.Temperature,
			run.Params.Rigidity,
			run.Params.Noise,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, traces, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", meta.Frames)

	for _, tr := range traces {
		if len(tr.Values) < 2 {
			continue
		}
		graph := asciigraph.Plot(tr.Values,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(tr.Name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, traces, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	var series []float64
	for _, tr := range traces {
		if tr.Name == "end_to_end" {
			series = tr.Values
		}
	}
	if len(series) < 4 {
		return fmt.Errorf("not enough data to analyze")
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	power := analysis.PowerSpectrum(analysis.Detrend(series))
	plotData := power[:len(power)/4+1]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (end-to-end)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(analysis.Detrend(series), meta.Step)
	fmt.Printf("dominant frequency: %.3f cycles/time-unit\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f time-units\n", 1.0/freq)
	}
	return nil
}

func sweepParam(cmd *cobra.Command, args []string) error {
	name := args[0]
	spec, ok := chain.SpecFor(name)
	if !ok {
		return fmt.Errorf("unknown parameter: %s", name)
	}
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if sweepSteps < 2 {
		return fmt.Errorf("need at least 2 sweep points")
	}

	fmt.Printf("sweeping %s over [%.1f, %.1f] (%d points, %d frames each)\n\n",
		name, spec.Min, spec.Max, sweepSteps, frames)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tEND_TO_END\tRG\tMAX_CONTOUR\n", name)

	means := make([]float64, 0, sweepSteps)
	for i := 0; i < sweepSteps; i++ {
		val := spec.Min + (spec.Max-spec.Min)*float64(i)/float64(sweepSteps-1)

		store, err := chain.NewStore(cfg.Params())
		if err != nil {
			return err
		}
		if err := store.Set(name, val); err != nil {
			return err
		}
		driver, err := anim.New(store, cfg.Step)
		if err != nil {
			return err
		}

		mset := metrics.Default()
		for _, m := range mset {
			m.Reset()
			driver.AddObserver(m.(anim.Observer))
		}
		if _, err := driver.Run(context.Background(), frames); err != nil {
			return err
		}

		vals := map[string]float64{}
		for _, m := range mset {
			vals[m.Name()] = m.Value()
		}
		means = append(means, vals["end_to_end"])
		fmt.Fprintf(w, "%.2f\t%.3f\t%.3f\t%.3f\n",
			val, vals["end_to_end"], vals["radius_of_gyration"], vals["max_contour"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	graph := asciigraph.Plot(means,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("mean end-to-end vs %s", name)),
	)
	fmt.Println(graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no points to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"index", "x", "y", "z"}); err != nil {
		return err
	}
	for i, p := range points {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	times, traces, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, points, times, traces)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	svg := export.ChainToSVG(points, 800, 600, "#00ffff")
	if svg == "" {
		return fmt.Errorf("chain contains no drawable points")
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
