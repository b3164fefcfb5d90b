package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qanneal"
)

func writeRunFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

const twoSpinModel = `
model:
  kind: dense
  n: 2
  h: [1, -1]
  j: [[0, 0.5], [0.5, 0]]
`

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	require.Equal(t, "qanneal "+qanneal.Version+"\n", out)
}

func TestRunEveryAlgorithmJSON(t *testing.T) {
	cases := map[string]string{
		"anneal":      "algorithm: anneal\nseed: 3\nsweeps: 4\nschedule: {beta_start: 0.1, beta_end: 5, steps: 20}\n",
		"tempering":   "algorithm: tempering\nseed: 3\nsweeps: 2\ntempering: {betas: [0.5, 2, 5], steps: 20}\n",
		"ensemble":    "algorithm: ensemble\nseed: 3\nsweeps: 2\nschedule: {beta_start: 0.1, beta_end: 5, steps: 20}\nensemble: {replicas: 3}\n",
		"sqa":         "algorithm: sqa\nseed: 3\nsweeps: 3\nschedule: {beta_start: 0.2, beta_end: 5, steps: 25, gamma_start: 3, gamma_end: 0.01}\nsqa: {slices: 4, replicas: 2, worldline_sweeps: 1}\n",
		"distributed": "algorithm: distributed\nseed: 3\nsweeps: 2\nschedule: {beta_start: 0.1, beta_end: 5, steps: 20}\ndistributed: {workers: 3, replicas_per_worker: 2}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeRunFile(t, body+twoSpinModel)
			out, logs, err := runCLI(t, "run", "--config", path, "--json", "--log-level", "debug")
			require.NoError(t, err, logs)

			var rep report
			require.NoError(t, json.Unmarshal([]byte(out), &rep))
			require.Equal(t, name, rep.Algorithm)
			require.Equal(t, "cpu", rep.Backend)
			require.Equal(t, 2, rep.Spins)
			require.NotEmpty(t, rep.RunID)
			require.InDelta(t, -2.5, rep.BestEnergy, 1e-9)
			require.Equal(t, []int{-1, 1}, rep.BestState)
			require.Contains(t, logs, "run_id="+rep.RunID)

			if name == "distributed" {
				require.NotNil(t, rep.WinnerRank)
				require.Equal(t, 3, rep.Workers)
			} else {
				require.NotEmpty(t, rep.EnergyTrace)
			}
		})
	}
}

func TestRunTextReport(t *testing.T) {
	path := writeRunFile(t, "algorithm: anneal\nsweeps: 4\nschedule: {beta_start: 0.1, beta_end: 5, steps: 20}\n"+twoSpinModel)
	out, _, err := runCLI(t, "run", "-c", path, "--log-format", "json")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "run "))
	require.Contains(t, out, "algorithm: anneal (backend cpu, seed 0)")
	require.Contains(t, out, "best energy: -2.5")
}

func TestRunFailures(t *testing.T) {
	_, _, err := runCLI(t, "run")
	require.Error(t, err)

	bad := writeRunFile(t, "algorithm: anneal\nsweeps: 0\n"+twoSpinModel)
	_, logs, err := runCLI(t, "run", "--config", bad)
	require.Error(t, err)
	require.Contains(t, logs, "config.invalid")

	cuda := writeRunFile(t, "algorithm: anneal\nbackend: cuda\nsweeps: 1\nschedule: {steps: 2, beta_end: 1}\n"+twoSpinModel)
	_, logs, err = runCLI(t, "run", "--config", cuda)
	require.Error(t, err)
	require.Contains(t, logs, "run.failed")

	ok := writeRunFile(t, "algorithm: anneal\nsweeps: 1\nschedule: {steps: 2, beta_end: 1}\n"+twoSpinModel)
	_, _, err = runCLI(t, "run", "--config", ok, "--log-level", "loud")
	require.Error(t, err)
	_, _, err = runCLI(t, "run", "--config", ok, "--log-format", "xml")
	require.Error(t, err)
}

func TestRunGeneratedModel(t *testing.T) {
	path := writeRunFile(t, `
algorithm: anneal
seed: 9
sweeps: 5
schedule: {beta_start: 0.1, beta_end: 4, steps: 30}
model:
  kind: generated
  generator: {shape: complete, size: 4}
`)
	out, logs, err := runCLI(t, "run", "--config", path, "--json")
	require.NoError(t, err, logs)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, 4, rep.Spins)
	require.InDelta(t, -6, rep.BestEnergy, 1e-9)
}
