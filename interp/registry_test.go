package interp_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/mocurve/interp"
)

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Linear", "LogLinear", "TimeSquare"}, interp.InterpolatorNames())
	assert.Equal(t, []string{"Flat", "Linear"}, interp.ExtrapolatorNames())
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	s, err := interp.Lookup(interp.CategoryInterpolator, "TimeSquare")
	require.NoError(t, err)
	assert.Equal(t, interp.TimeSquareInterpolator, s)

	s, err = interp.Lookup(interp.CategoryExtrapolator, "Flat")
	require.NoError(t, err)
	assert.Equal(t, interp.FlatExtrapolator, s)

	_, err = interp.Lookup(interp.CategoryInterpolator, "Flat")
	require.ErrorIs(t, err, interp.ErrUnknownStrategyName)

	_, err = interp.Lookup(interp.CategoryExtrapolator, "timesquare")
	require.ErrorIs(t, err, interp.ErrUnknownStrategyName)

	s, err = interp.Lookup(interp.Category("surface"), "TimeSquare")
	require.ErrorIs(t, err, interp.ErrUnknownStrategyName)
	assert.Nil(t, s)
}

func TestRegistry_NameRoundTrip(t *testing.T) {
	t.Parallel()

	check := []float64{-1, 0.0005, 0.2, 0.4, 1.1, 2.3, 5, 7}
	for _, name := range interp.InterpolatorNames() {
		ip, err := interp.LookupInterpolator(name)
		require.NoError(t, err)

		again, err := interp.LookupInterpolator(ip.Name())
		require.NoError(t, err)
		require.Equal(t, ip, again)

		b1, err := ip.Bind(xData, yData, interp.FlatExtrapolator, interp.LinearExtrapolator)
		require.NoError(t, err)
		b2, err := again.Bind(xData, yData, interp.FlatExtrapolator, interp.LinearExtrapolator)
		require.NoError(t, err)
		for _, x := range check {
			assert.Equal(t, b1.Eval(x), b2.Eval(x), "%s x = %v", name, x)
			assert.Equal(t, b1.FirstDerivative(x), b2.FirstDerivative(x), "%s x = %v", name, x)
			assert.Equal(t, b1.ParameterSensitivity(x), b2.ParameterSensitivity(x), "%s x = %v", name, x)
		}
	}
}

type strategies struct {
	Interpolator interp.Interpolator `json:"interpolator" yaml:"interpolator"`
	Left         interp.Extrapolator `json:"left" yaml:"left"`
	Right        interp.Extrapolator `json:"right" yaml:"right"`
}

func TestRegistry_TextEncoding(t *testing.T) {
	t.Parallel()

	in := strategies{
		Interpolator: interp.TimeSquareInterpolator,
		Left:         interp.FlatExtrapolator,
		Right:        interp.LinearExtrapolator,
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"interpolator":"TimeSquare","left":"Flat","right":"Linear"}`, string(raw))

	var out strategies
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	raw, err = yaml.Marshal(in)
	require.NoError(t, err)
	var fromYAML strategies
	require.NoError(t, yaml.Unmarshal(raw, &fromYAML))
	assert.Equal(t, in, fromYAML)
}

func TestRegistry_TextEncodingRejectsUnknownNames(t *testing.T) {
	t.Parallel()

	var out strategies
	err := json.Unmarshal([]byte(`{"interpolator":"Spline","left":"Flat","right":"Flat"}`), &out)
	require.ErrorIs(t, err, interp.ErrUnknownStrategyName)

	err = yaml.Unmarshal([]byte("interpolator: Linear\nleft: Exception\nright: Flat\n"), &out)
	require.ErrorIs(t, err, interp.ErrUnknownStrategyName)

	_, err = json.Marshal(strategies{Interpolator: "Nope", Left: interp.FlatExtrapolator, Right: interp.FlatExtrapolator})
	require.ErrorIs(t, err, interp.ErrUnknownStrategyName)
}
