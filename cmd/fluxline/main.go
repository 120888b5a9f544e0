package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fluxline/fluxline/internal/bfield"
	"github.com/fluxline/fluxline/internal/config"
	"github.com/fluxline/fluxline/internal/sensor"
	"github.com/fluxline/fluxline/internal/storage"
	"github.com/fluxline/fluxline/internal/tui"
	"github.com/fluxline/fluxline/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	fieldName  string
	verbose    bool
	// graph flags
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fluxline",
		Short: "magnetic field evaluation lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			bfield.SetLogger(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fluxline", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evaluate a scene and store the result",
		RunE:  runScene,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset scene")
	runCmd.Flags().StringVar(&fieldName, "field", "", "override field quantity (B or H)")

	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "plot field profiles along the scan line",
		RunE:  graphScene,
	}
	graphCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	graphCmd.Flags().StringVar(&preset, "preset", "", "use preset scene")
	graphCmd.Flags().StringVar(&fieldName, "field", "", "override field quantity (B or H)")
	graphCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	graphCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive scan viewer",
		RunE:  liveScene,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset scene")
	liveCmd.Flags().StringVar(&fieldName, "field", "", "override field quantity (B or H)")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list supported source kinds",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range bfield.Kinds() {
				fmt.Println(k)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(runCmd, graphCmd, liveCmd, kindsCmd, presetsCmd, listCmd, exportCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScene() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene: %w", err)
		}
		cfg = loaded
	}
	if fieldName != "" {
		cfg.Field = fieldName
	}
	return cfg, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene()
	if err != nil {
		return err
	}
	ft, err := cfg.FieldType()
	if err != nil {
		return err
	}
	sources, err := cfg.BuildSources()
	if err != nil {
		return err
	}
	sensors, err := cfg.BuildSensors()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("evaluating %s field: %d sources, %d sensors...\n", ft, len(sources), len(sensors))
	start := time.Now()
	result, err := bfield.Evaluate(ft, sources, sensors, cfg.Options())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	pathLen := 1
	for _, s := range sensors {
		if n := s.Path().Len(); n > pathLen {
			pathLen = n
		}
	}
	runID, err := st.Save(ft.String(), len(sources), len(sensors), pathLen, elapsed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("result shape: %v\n", result.Shape)
	if len(result.Shape) == 1 && result.Shape[0] == 3 {
		fmt.Printf("%s = (%.6g, %.6g, %.6g)\n", ft, result.Data[0], result.Data[1], result.Data[2])
	}
	return nil
}

// evaluateScan probes the configured scan line with single-pixel sensors
// and returns a (n, 3) tensor.
func evaluateScan(cfg *config.Config) (bfield.FieldType, []float64, *bfield.Tensor, error) {
	ft, err := cfg.FieldType()
	if err != nil {
		return 0, nil, nil, err
	}
	sources, err := cfg.BuildSources()
	if err != nil {
		return 0, nil, nil, err
	}
	pts, coords, err := cfg.ScanPoints()
	if err != nil {
		return 0, nil, nil, err
	}

	result, err := bfield.Evaluate(ft, sources, sensor.FromPoints(pts),
		bfield.Options{SumUp: true, Squeeze: true})
	if err != nil {
		return 0, nil, nil, err
	}
	if len(result.Shape) != 2 || result.Shape[1] != 3 {
		return 0, nil, nil, fmt.Errorf("scan needs static sources, got result shape %v", result.Shape)
	}
	return ft, coords, result, nil
}

func graphScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene()
	if err != nil {
		return err
	}
	ft, coords, result, err := evaluateScan(cfg)
	if err != nil {
		return err
	}
	out, err := viz.ProfileAll(coords, result, ft.String(), plotWidth, plotHeight)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func liveScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene()
	if err != nil {
		return err
	}
	ft, coords, result, err := evaluateScan(cfg)
	if err != nil {
		return err
	}
	axis := cfg.Scan.Axis
	if axis == "" {
		axis = "z"
	}
	return tui.Run(tui.Scan{
		Field:  ft.String(),
		Axis:   axis,
		Coords: coords,
		Result: result,
	})
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
	fmt.Fprintln(w, "ID\tFIELD\tTIME\tSOURCES\tSENSORS\tPATH\tSHAPE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%v\n",
			run.ID,
			run.Field,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Sources,
			run.Observers,
			run.PathLen,
			run.Shape,
		)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Metadata *storage.RunMetadata `json:"metadata"`
		Shape    []int                `json:"shape"`
		Data     []float64            `json:"data"`
	}{meta, field.Shape, field.Data}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
