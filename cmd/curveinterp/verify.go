package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/meenmo/mocurve/curve"
)

func (a *app) verifyCmd() *cobra.Command {
	var curvesPath, name string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check node reproduction, derivatives and sensitivities",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			curves, err := a.loadCurves(curvesPath, name)
			if err != nil {
				return err
			}

			tol := curve.TolerancesFromConfig(a.cfg)
			reports := make([]curve.Report, len(curves))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Workers)
			for i, c := range curves {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					reports[i] = curve.Verify(c, curve.DefaultProbes(c), tol)
					a.logger.Debug("curve verified",
						zap.String("curve", c.Name()),
						zap.Int("checks", reports[i].Checks),
						zap.Int("failures", len(reports[i].Failures)))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if err := writeJSON(a.stdout, reports); err != nil {
				return err
			}
			for _, rep := range reports {
				if !rep.OK() {
					a.logger.Warn("curve failed verification", zap.String("curve", rep.Curve), zap.Int("failures", len(rep.Failures)))
					return errChecksFailed
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&curvesPath, "curves", "", "Curve definition file (YAML or JSON)")
	cmd.Flags().StringVar(&name, "name", "", "Only verify the named curve")
	return cmd
}
