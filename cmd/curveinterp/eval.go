package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meenmo/mocurve/curve"
	"github.com/meenmo/mocurve/utils"
)

type evalOutput struct {
	Curve       string    `json:"curve"`
	X           float64   `json:"x"`
	Date        string    `json:"date,omitempty"`
	Value       float64   `json:"value"`
	Derivative  float64   `json:"derivative"`
	Labels      []string  `json:"labels"`
	Sensitivity []float64 `json:"sensitivity"`
}

func (a *app) evalCmd() *cobra.Command {
	var (
		curvesPath string
		name       string
		xs         []float64
		dates      []string
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate value, derivative and node sensitivity",
		Long: `Evaluates every curve in the definition file (or the one selected with --name)
at the given x-values and dates. Without --x or --date the default probes are
used: every interval midpoint and one point beyond each end.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			curves, err := a.loadCurves(curvesPath, name)
			if err != nil {
				return err
			}
			var out []evalOutput
			for _, c := range curves {
				probes := xs
				if len(xs) == 0 && len(dates) == 0 {
					probes = curve.DefaultProbes(c)
				}
				before := len(out)
				for _, x := range probes {
					out = append(out, evaluate(c, x, ""))
				}
				for _, d := range dates {
					date, err := utils.ParseDate(d)
					if err != nil {
						return fmt.Errorf("--date %q: %w", d, err)
					}
					x, err := c.XAt(date)
					if err != nil {
						return err
					}
					out = append(out, evaluate(c, x, d))
				}
				a.logger.Debug("curve evaluated", zap.String("curve", c.Name()), zap.Int("points", len(out)-before))
			}
			return writeJSON(a.stdout, out)
		},
	}
	cmd.Flags().StringVar(&curvesPath, "curves", "", "Curve definition file (YAML or JSON)")
	cmd.Flags().StringVar(&name, "name", "", "Only evaluate the named curve")
	cmd.Flags().Float64SliceVar(&xs, "x", nil, "x-values to evaluate (repeatable or comma separated)")
	cmd.Flags().StringSliceVar(&dates, "date", nil, "Dates (YYYY-MM-DD) to evaluate on dated curves")
	return cmd
}

func evaluate(c *curve.Curve, x float64, date string) evalOutput {
	sens := c.Sensitivity(x)
	return evalOutput{
		Curve:       c.Name(),
		X:           x,
		Date:        date,
		Value:       c.YValue(x),
		Derivative:  c.FirstDerivative(x),
		Labels:      sens.Labels,
		Sensitivity: sens.Values,
	}
}
