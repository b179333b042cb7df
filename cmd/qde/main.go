package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/IgorGayday/qde/internal/config"
	"github.com/IgorGayday/qde/internal/export"
	"github.com/IgorGayday/qde/internal/qubo"
	"github.com/IgorGayday/qde/internal/sampler"
	"github.com/IgorGayday/qde/internal/solver"
	"github.com/IgorGayday/qde/internal/stencil"
	"github.com/IgorGayday/qde/internal/tui"
)

var (
	points       int
	dx           float64
	y0           float64
	y0Set        bool
	qbitsInteger int
	qbitsDecimal int
	signed       bool
	block        int
	average      bool
	samplerName  string
	reads        int
	sweeps       int
	seed         int64
	exportPath   string
	configFile   string
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qde",
		Short: "solve differential equations as QUBO problems",
	}

	solveCmd := &cobra.Command{
		Use:   "solve [preset]",
		Short: "solve a preset equation block by block",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addSolveFlags(solveCmd)

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "watch the block-by-block solve live",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)

	coeffsCmd := &cobra.Command{
		Use:   "coeffs [deriv] [accuracy]",
		Short: "print forward finite-difference coefficients",
		Args:  cobra.ExactArgs(2),
		RunE:  runCoeffs,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list equation presets",
		RunE:  runPresets,
	}

	rootCmd.AddCommand(solveCmd, liveCmd, coeffsCmd, presetsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	cmd.Flags().Float64Var(&dx, "dx", config.DefaultDx, "grid step")
	cmd.Flags().Float64Var(&y0, "y0", 0, "boundary value (default: preset's)")
	cmd.Flags().IntVar(&qbitsInteger, "qbits-int", config.DefaultQbits, "integer bits per value")
	cmd.Flags().IntVar(&qbitsDecimal, "qbits-dec", config.DefaultQbits, "decimal bits per value")
	cmd.Flags().BoolVar(&signed, "signed", true, "signed fixed-point range")
	cmd.Flags().IntVar(&block, "block", 1, "points per QUBO")
	cmd.Flags().BoolVar(&average, "average", false, "occurrence-weighted sample averaging")
	cmd.Flags().StringVar(&samplerName, "sampler", "anneal", "sampling engine (exact|anneal)")
	cmd.Flags().IntVar(&reads, "reads", config.DefaultReads, "sampler reads per block")
	cmd.Flags().IntVar(&sweeps, "sweeps", config.DefaultSweeps, "annealing sweeps per read")
	cmd.Flags().Int64Var(&seed, "seed", 0, "sampler random seed (0 = time)")
	cmd.Flags().StringVar(&exportPath, "export", "", "write trajectory to file (.json, .csv or .svg)")
	cmd.Flags().StringVar(&configFile, "config", "", "load settings from YAML file")
}

// buildConfig merges the config file, flag defaults, and explicitly
// set flags, in that precedence order.
func buildConfig(cmd *cobra.Command, preset string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Preset = preset

	flags := map[string]func(){
		"points":    func() { cfg.Points = points },
		"dx":        func() { cfg.Dx = dx },
		"qbits-int": func() { cfg.QbitsInteger = qbitsInteger },
		"qbits-dec": func() { cfg.QbitsDecimal = qbitsDecimal },
		"signed":    func() { cfg.Signed = signed },
		"block":     func() { cfg.PointsPerQUBO = block },
		"average":   func() { cfg.AverageSolutions = average },
		"sampler":   func() { cfg.Sampler = samplerName },
		"reads":     func() { cfg.Reads = reads },
		"sweeps":    func() { cfg.Sweeps = sweeps },
		"seed":      func() { cfg.Seed = seed },
	}
	for name, apply := range flags {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	y0Set = cmd.Flags().Changed("y0")
	return cfg, nil
}

func buildSampler(name string) (qubo.Sampler, error) {
	switch name {
	case "exact":
		return sampler.NewExact(), nil
	case "anneal":
		return sampler.NewAnneal(), nil
	default:
		return nil, fmt.Errorf("unknown sampler %q (want exact or anneal)", name)
	}
}

func prepare(cmd *cobra.Command, presetName string) (*config.Config, config.Preset, []float64, float64, qubo.Sampler, error) {
	cfg, err := buildConfig(cmd, presetName)
	if err != nil {
		return nil, config.Preset{}, nil, 0, nil, err
	}
	preset, ok := config.Presets[presetName]
	if !ok {
		return nil, config.Preset{}, nil, 0, nil, fmt.Errorf("unknown preset %q, see 'qde presets'", presetName)
	}
	boundary := preset.Y0
	if y0Set {
		boundary = y0
	}
	smp, err := buildSampler(cfg.Sampler)
	if err != nil {
		return nil, config.Preset{}, nil, 0, nil, err
	}
	f := preset.Sample(cfg.Points, cfg.Dx)
	return cfg, preset, f, boundary, smp, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, preset, f, boundary, smp, err := prepare(cmd, args[0])
	if err != nil {
		return err
	}

	solution, energy, err := solver.New(smp).Run(context.Background(), f, cfg.Dx, boundary, cfg.SolverOptions())
	if err != nil {
		return err
	}

	chart := asciigraph.Plot(solution, asciigraph.Height(12), asciigraph.Width(64),
		asciigraph.Caption(preset.Description))
	fmt.Println(chart)
	fmt.Println()
	fmt.Println(labelStyle.Render("Points") + valueStyle.Render(strconv.Itoa(cfg.Points)))
	fmt.Println(labelStyle.Render("Residual") + valueStyle.Render(fmt.Sprintf("%.6g", energy)))
	if preset.Analytic != nil {
		fmt.Println(labelStyle.Render("RMS error") + valueStyle.Render(fmt.Sprintf("%.6g", rmsError(solution, preset, cfg.Dx, boundary))))
	}

	if exportPath != "" {
		return exportTrajectory(cfg, preset, solution, energy, boundary)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, preset, f, boundary, smp, err := prepare(cmd, args[0])
	if err != nil {
		return err
	}
	stepper, err := solver.New(smp).Stepper(f, cfg.Dx, boundary, cfg.SolverOptions())
	if err != nil {
		return err
	}
	return tui.Run(stepper, preset.Name)
}

func runCoeffs(cmd *cobra.Command, args []string) error {
	deriv, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("derivative order: %w", err)
	}
	accuracy, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("accuracy order: %w", err)
	}
	coeffs, err := stencil.NewLibrary(nil).Coefficients(deriv, accuracy)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "offset\tcoefficient")
	for i, c := range coeffs {
		fmt.Fprintf(w, "%d\t%.10g\n", i, c)
	}
	return w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\ty0\tdescription")
	for _, name := range config.Names() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%g\t%s\n", p.Name, p.Y0, p.Description)
	}
	return w.Flush()
}

func rmsError(solution []float64, preset config.Preset, dx, boundary float64) float64 {
	// Analytic curves are stated for the preset's own boundary value;
	// shift by the override so comparisons stay meaningful.
	offset := boundary - preset.Y0
	sum := 0.0
	for i, v := range solution {
		exact := preset.Analytic(float64(i)*dx) + offset
		sum += (v - exact) * (v - exact)
	}
	return math.Sqrt(sum / float64(len(solution)))
}

func exportTrajectory(cfg *config.Config, preset config.Preset, solution []float64, energy, boundary float64) error {
	t := &export.Trajectory{
		Preset:       preset.Name,
		Sampler:      cfg.Sampler,
		Dx:           cfg.Dx,
		QbitsInteger: cfg.QbitsInteger,
		QbitsDecimal: cfg.QbitsDecimal,
		Signed:       cfg.Signed,
		Points:       cfg.Points,
		X:            make([]float64, len(solution)),
		Solution:     solution,
		Energy:       energy,
	}
	for i := range t.X {
		t.X[i] = float64(i) * cfg.Dx
	}
	if preset.Analytic != nil {
		offset := boundary - preset.Y0
		t.Analytic = make([]float64, len(solution))
		for i := range t.Analytic {
			t.Analytic[i] = preset.Analytic(t.X[i]) + offset
		}
	}
	switch strings.ToLower(filepath.Ext(exportPath)) {
	case ".csv":
		return export.CSV(exportPath, t)
	case ".svg":
		return export.SVG(exportPath, t)
	default:
		return export.JSON(exportPath, t)
	}
}
