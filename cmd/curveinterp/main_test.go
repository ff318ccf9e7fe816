package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const curvesYAML = "../../curve/testdata/curves.yaml"

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_NoArgs(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage: curveinterp")
}

func TestRun_UnknownCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "bogus")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `unknown command "bogus"`)
	assert.Contains(t, stderr, "Usage: curveinterp")
}

func TestRun_UsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"eval", "--nope"}, "unknown flag: --nope"},
		{"unknown persistent flag", []string{"--nope", "names"}, "unknown flag: --nope"},
		{"bad flag value", []string{"eval", "--x", "abc"}, "--x"},
		{"positional argument", []string{"names", "extra"}, `unknown command "extra"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tc.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, tc.want)
		})
	}
}

func TestRun_Names(t *testing.T) {
	code, stdout, _ := runCLI(t, "names")
	require.Equal(t, 0, code)
	assert.Equal(t, "Interpolators:\n  Linear\n  LogLinear\n  TimeSquare\nExtrapolators:\n  Flat\n  Linear\n", stdout)
}

func TestRun_Eval(t *testing.T) {
	code, stdout, stderr := runCLI(t, "eval", "--curves", curvesYAML, "--name", "vol-atm", "--x", "0.2,1.1", "--x", "2.3")
	require.Equal(t, 0, code, stderr)

	var out []evalOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out, 3)
	want := []float64{3.9978064160675513, 2.909037641557771, 5.602794333886091}
	for i, o := range out {
		assert.Equal(t, "vol-atm", o.Curve)
		assert.InDelta(t, want[i], o.Value, 1e-12)
		assert.Len(t, o.Sensitivity, 6)
		assert.Len(t, o.Labels, 6)
	}
}

func TestRun_EvalDates(t *testing.T) {
	code, stdout, stderr := runCLI(t, "eval", "--curves", curvesYAML, "--name", "usd-sofr-df", "--date", "2027-11-22")
	require.Equal(t, 0, code, stderr)

	var out []evalOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "2027-11-22", out[0].Date)
	assert.InDelta(t, 0.92180, out[0].Value, 1e-12)
}

func TestRun_EvalDefaultProbes(t *testing.T) {
	code, stdout, stderr := runCLI(t, "eval", "--curves", curvesYAML)
	require.Equal(t, 0, code, stderr)

	var out []evalOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	// Six nodes per curve: five midpoints plus one probe beyond each end.
	assert.Len(t, out, 14)
}

func TestRun_EvalErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "eval")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--curves is required")

	code, _, stderr = runCLI(t, "eval", "--curves", curvesYAML, "--name", "missing")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `curve "missing" not found`)

	code, _, stderr = runCLI(t, "eval", "--curves", curvesYAML, "--name", "vol-atm", "--date", "2026-01-01")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no valuation date")
}

func TestRun_Verify(t *testing.T) {
	code, stdout, stderr := runCLI(t, "verify", "--curves", curvesYAML)
	require.Equal(t, 0, code, stderr)

	var reports []struct {
		Curve    string `json:"curve"`
		Checks   int    `json:"checks"`
		Failures []any  `json:"failures"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "vol-atm", reports[0].Curve)
	assert.Equal(t, "usd-sofr-df", reports[1].Curve)
	for _, r := range reports {
		assert.Empty(t, r.Failures)
	}
}

func TestRun_VerifyFailsWithTightConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("derivative_tolerance: 1e-12\nbump_size: 0.05\nworkers: 2\n"), 0o600))

	code, stdout, _ := runCLI(t, "--config", cfgPath, "verify", "--curves", curvesYAML, "--name", "vol-atm")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, `"failures"`)
}

func TestRun_BadConfig(t *testing.T) {
	code, _, stderr := runCLI(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "names")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "read config")
}

func TestRun_VerifyReportsRebindFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	body := "name: tiny-df\ninterpolator: LogLinear\nnodes:\n  - {x: 1, y: 5.0e-7}\n  - {x: 2, y: 1.0e-6}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	code, stdout, stderr := runCLI(t, "verify", "--curves", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stderr)

	var reports []struct {
		Curve    string `json:"curve"`
		Failures []struct {
			Check string `json:"check"`
			Error string `json:"error"`
		} `json:"failures"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 1)
	require.NotEmpty(t, reports[0].Failures)
	assert.Equal(t, "sensitivity", reports[0].Failures[0].Check)
	assert.NotEmpty(t, reports[0].Failures[0].Error)
}
