package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meenmo/mocurve/config"
	"github.com/meenmo/mocurve/curve"
	"github.com/meenmo/mocurve/logging"
)

var (
	// errChecksFailed makes verify exit non-zero without printing twice.
	errChecksFailed = errors.New("verification failed")
	// errUsage marks bad commands, flags and arguments.
	errUsage = errors.New("usage")
)

type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger

	stdout, stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if _, _, err := root.Find(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		usage(stderr)
		return 2
	}

	err := root.ExecuteContext(context.Background())
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errChecksFailed):
		return 1
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: curveinterp <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  names    List registered interpolators and extrapolators")
	fmt.Fprintln(w, "  eval     Evaluate curves at x-values or dates")
	fmt.Fprintln(w, "  verify   Check curves against finite differences")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `curveinterp <command> -h` for command-specific help.")
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "curveinterp",
		Short:         "Evaluate and verify interpolated curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s: %v", errUsage, cmd.CommandPath(), err)
	})
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config path (defaults apply if omitted)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(a.namesCmd(), a.evalCmd(), a.verifyCmd())
	return root
}

func (a *app) init() error {
	a.cfg = config.DefaultConfig
	if path := strings.TrimSpace(a.configPath); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.verbose {
		a.cfg.Logging.Level = "debug"
	}
	logger, err := logging.New(a.cfg.Logging)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) loadCurves(path, only string) ([]*curve.Curve, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("--curves is required")
	}
	curves, err := curve.NewLoader(a.cfg, a.logger).Load(path)
	if err != nil {
		return nil, err
	}
	if only == "" {
		return curves, nil
	}
	for _, c := range curves {
		if c.Name() == only {
			return []*curve.Curve{c}, nil
		}
	}
	return nil, fmt.Errorf("curve %q not found in %s", only, path)
}

// noArgs is cobra.NoArgs with the error tagged as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
