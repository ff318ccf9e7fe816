package curve

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/meenmo/mocurve/config"
)

// Loader reads curve definition files and binds them, filling missing
// strategies from the configuration.
type Loader struct {
	cfg    config.Config
	logger *zap.Logger
}

// NewLoader returns a loader. A nil logger disables logging.
func NewLoader(cfg config.Config, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cfg: cfg, logger: logger}
}

// LoadDefinitions reads all definitions in path.
func LoadDefinitions(path string) ([]Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curves: %w", err)
	}
	defs, err := ParseDefinitions(raw, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return defs, nil
}

// Load reads and builds every curve in path. Curve names must be unique.
func (l *Loader) Load(path string) ([]*Curve, error) {
	defs, err := LoadDefinitions(path)
	if err != nil {
		return nil, err
	}
	return l.Build(defs)
}

// Build binds the definitions in order.
func (l *Loader) Build(defs []Definition) ([]*Curve, error) {
	seen := make(map[string]struct{}, len(defs))
	curves := make([]*Curve, 0, len(defs))
	for _, d := range defs {
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate curve name %q", ErrInvalidDefinition, d.Name)
		}
		seen[d.Name] = struct{}{}

		d = d.WithDefaults(l.cfg.DefaultInterpolator, l.cfg.DefaultLeftExtrapolator, l.cfg.DefaultRightExtrapolator)
		c, err := d.Build()
		if err != nil {
			l.logger.Warn("curve rejected", zap.String("curve", d.Name), zap.Error(err))
			return nil, err
		}
		l.logger.Debug("curve bound",
			zap.String("curve", d.Name),
			zap.Stringer("interpolator", d.Interpolator),
			zap.Stringer("left", d.LeftExtrapolator),
			zap.Stringer("right", d.RightExtrapolator),
			zap.Int("nodes", len(d.Nodes)))
		curves = append(curves, c)
	}
	return curves, nil
}
