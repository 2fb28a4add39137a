package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kmall/stepdiag/internal/export"
	"github.com/kmall/stepdiag/internal/kernel"
	"github.com/kmall/stepdiag/internal/render"
	"github.com/kmall/stepdiag/internal/scenario"
	"github.com/kmall/stepdiag/internal/tui"
	"github.com/kmall/stepdiag/internal/whatif"
)

var (
	configFile string
	preset     string

	mass        float64
	mass2       float64
	angle       float64
	mu          float64
	speed       float64
	radius      float64
	velocity1   float64
	velocity2   float64
	restitution float64
	applied     float64

	netForce bool
	momentum bool
	energy   bool

	sweepParam   string
	sweepFrom    float64
	sweepTo      float64
	sweepSamples int

	outFile       string
	trajectory    bool
	reducedMotion bool
	plotWidth     int
	plotHeight    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stepdiag",
		Short: "physics diagram step engine for tutoring UIs",
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list diagram scenarios and presets",
		RunE:  listScenarios,
	}

	stepsCmd := &cobra.Command{
		Use:   "steps [scenario]",
		Short: "print the reveal sequence",
		Args:  cobra.ExactArgs(1),
		RunE:  printSteps,
	}
	addScenarioFlags(stepsCmd)

	calcCmd := &cobra.Command{
		Use:   "calc [scenario]",
		Short: "compute the what-if panel",
		Args:  cobra.ExactArgs(1),
		RunE:  calcPanel,
	}
	addScenarioFlags(calcCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "sweep one parameter and print the results",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepPanel,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "angle", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 10, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 80, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSamples, "samples", 8, "sample count")

	plotCmd := &cobra.Command{
		Use:   "plot [scenario]",
		Short: "plot a projectile trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrajectory,
	}
	addScenarioFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")

	showCmd := &cobra.Command{
		Use:   "show [scenario]",
		Short: "step through a diagram interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  showDiagram,
	}
	addScenarioFlags(showCmd)
	showCmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "disable reveal animation timing")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [scenario]",
		Short: "export the diagram as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	addScenarioFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&outFile, "out", "diagram.svg", "output file")
	exportSVGCmd.Flags().BoolVar(&trajectory, "trajectory", false, "export the flight path instead (projectile only)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [scenario]",
		Short: "export a parameter sweep as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	addScenarioFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&sweepParam, "param", "angle", "parameter to sweep")
	exportCSVCmd.Flags().Float64Var(&sweepFrom, "from", 10, "sweep start")
	exportCSVCmd.Flags().Float64Var(&sweepTo, "to", 80, "sweep end")
	exportCSVCmd.Flags().IntVar(&sweepSamples, "samples", 20, "sample count")
	exportCSVCmd.Flags().StringVar(&outFile, "out", "sweep.csv", "output file")

	rootCmd.AddCommand(scenariosCmd, stepsCmd, calcCmd, sweepCmd, plotCmd, showCmd, exportSVGCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
	cmd.Flags().Float64Var(&mass, "mass", 0, "object mass (kg)")
	cmd.Flags().Float64Var(&mass2, "mass2", 0, "second mass (kg)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "incline or launch angle (deg)")
	cmd.Flags().Float64Var(&mu, "mu", 0, "friction coefficient")
	cmd.Flags().Float64Var(&speed, "speed", 0, "speed (m/s)")
	cmd.Flags().Float64Var(&radius, "radius", 0, "circle radius (m)")
	cmd.Flags().Float64Var(&velocity1, "v1", 0, "initial velocity 1 (m/s)")
	cmd.Flags().Float64Var(&velocity2, "v2", 0, "initial velocity 2 (m/s)")
	cmd.Flags().Float64Var(&restitution, "restitution", 0, "restitution coefficient")
	cmd.Flags().Float64Var(&applied, "applied", 0, "applied force (N)")
	cmd.Flags().BoolVar(&netForce, "net", false, "add a net force step")
	cmd.Flags().BoolVar(&momentum, "momentum", false, "add a momentum step")
	cmd.Flags().BoolVar(&energy, "energy", false, "add an energy step")
}

// resolveConfig layers config file, preset, and flag overrides.
func resolveConfig(cmd *cobra.Command, scenarioName string) (*scenario.Config, error) {
	cfg := scenario.DefaultConfig()
	if configFile != "" {
		loaded, err := scenario.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if preset != "" {
		p := scenario.GetPreset(scenarioName, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for scenario %q", preset, scenarioName)
		}
		copied := *p
		cfg = &copied
	}
	cfg.Scenario = scenarioName

	overrides := map[string]float64{
		"mass": mass, "mass2": mass2, "angle": angle, "mu": mu,
		"speed": speed, "radius": radius, "v1": velocity1, "v2": velocity2,
		"restitution": restitution, "applied": applied,
	}
	params := map[string]string{"v1": "velocity1", "v2": "velocity2"}
	for flag, value := range overrides {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		name := flag
		if p, ok := params[flag]; ok {
			name = p
		}
		if err := cfg.Params.Set(name, value); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("net") {
		cfg.Steps.NetForce = netForce
	}
	if cmd.Flags().Changed("momentum") {
		cfg.Steps.Momentum = momentum
	}
	if cmd.Flags().Changed("energy") {
		cfg.Steps.Energy = energy
	}
	return cfg, nil
}

func buildDiagram(cmd *cobra.Command, scenarioName string) (*scenario.Diagram, error) {
	cfg, err := resolveConfig(cmd, scenarioName)
	if err != nil {
		return nil, err
	}
	return scenario.NewRegistry().Build(scenarioName, cfg)
}

func listScenarios(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tPRESETS")
	for _, name := range scenario.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(scenario.ListPresets(name), ", "))
	}
	return w.Flush()
}

func printSteps(cmd *cobra.Command, args []string) error {
	d, err := buildDiagram(cmd, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tID\tFORCES")
	for _, s := range d.Steps {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Ordinal, s.ID, strings.Join(s.ForceNames, ", "))
	}
	return w.Flush()
}

func calcPanel(cmd *cobra.Command, args []string) error {
	d, err := buildDiagram(cmd, args[0])
	if err != nil {
		return err
	}
	results, err := whatif.Panel(d)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tVALUE")
	for _, r := range results {
		mark := " "
		if r.Primary {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\n", mark, r.Label, r.Formatted)
	}
	return w.Flush()
}

func sweepPanel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	rows, err := whatif.Sweep(scenario.NewRegistry(), cfg, sweepParam, sweepFrom, sweepTo, sweepSamples)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tQUANTITY\tVALUE\n", strings.ToUpper(sweepParam))
	for _, r := range rows {
		fmt.Fprintf(w, "%.2f\t%s\t%.3f %s\n", r.Value, r.Label, r.Result, r.Unit)
	}
	return w.Flush()
}

func plotTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if cfg.Scenario != string(scenario.KindProjectile) {
		return fmt.Errorf("plot supports projectile scenarios, got %q", cfg.Scenario)
	}
	if _, err := scenario.NewRegistry().Build(cfg.Scenario, cfg); err != nil {
		return err
	}

	p := kernel.Projectile{Speed: cfg.Params.Speed, AngleDeg: cfg.Params.Angle, Gravity: kernel.DefaultGravity}
	if cfg.Params.Gravity > 0 {
		p.Gravity = cfg.Params.Gravity
	}
	fmt.Println(render.TrajectoryPlot(p, plotWidth, plotHeight))
	return nil
}

func showDiagram(cmd *cobra.Command, args []string) error {
	d, err := buildDiagram(cmd, args[0])
	if err != nil {
		return err
	}
	return tui.Run(d, reducedMotion)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	d, err := buildDiagram(cmd, args[0])
	if err != nil {
		return err
	}

	var svg string
	if trajectory {
		if d.Kind != scenario.KindProjectile {
			return fmt.Errorf("--trajectory supports projectile scenarios, got %q", d.Kind)
		}
		p := kernel.Projectile{Speed: d.Params.Speed, AngleDeg: d.Params.Angle, Gravity: kernel.DefaultGravity}
		if d.Params.Gravity > 0 {
			p.Gravity = d.Params.Gravity
		}
		svg = export.TrajectorySVG(p.Trajectory(100, p.Y0), 600, 300, "")
	} else {
		svg = export.DiagramSVG(d, 480, 360)
	}

	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	rows, err := whatif.Sweep(scenario.NewRegistry(), cfg, sweepParam, sweepFrom, sweepTo, sweepSamples)
	if err != nil {
		return err
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := whatif.WriteCSV(f, rows); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d rows)\n", outFile, len(rows))
	return nil
}
