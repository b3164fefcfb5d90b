// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qanneal"
	"github.com/katalvlaran/qanneal/config"
)

// runFlags holds the flags of the run command.
type runFlags struct {
	configPath  string
	jsonOutput  bool
	logLevel    string
	logFormat   string
	metricsAddr string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "qanneal",
		Short:         "Monte-Carlo optimisation for Ising spin models",
		Long:          "qanneal runs simulated annealing, parallel tempering, replica ensembles,\nsimulated quantum annealing and distributed ensembles from a YAML run file.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newRunCmd(stdout, stderr), newVersionCmd(stdout))

	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the qanneal version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(stdout, "qanneal %s\n", qanneal.Version)
			return err
		},
	}
}

func newRunCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the job described by a run file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(stderr, flags.logLevel, flags.logFormat)
			if err != nil {
				return err
			}
			runID := uuid.NewString()
			logger = logger.With("run_id", runID)

			cfg, err := config.Load(flags.configPath)
			if err != nil {
				logger.Error("config.invalid", "path", flags.configPath, "error", err)
				return err
			}

			rep, err := execute(cmd.Context(), cfg, logger, flags.metricsAddr)
			if err != nil {
				logger.Error("run.failed", "algorithm", cfg.Algorithm, "error", err)
				return err
			}
			rep.RunID = runID

			return writeReport(stdout, rep, flags.jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to the YAML run file")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("--log-format %q: want text or json", format)
}

func writeReport(w io.Writer, rep *report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	_, err := fmt.Fprintf(w, "run %s\nalgorithm: %s (backend %s, seed %d)\nspins: %d\nbest energy: %.12g\nbest state: %v\nelapsed: %dms\n",
		rep.RunID, rep.Algorithm, rep.Backend, rep.Seed, rep.Spins, rep.BestEnergy, rep.BestState, rep.ElapsedMS)
	if err != nil {
		return err
	}
	if rep.WinnerRank != nil {
		_, err = fmt.Fprintf(w, "winner rank: %d of %d\n", *rep.WinnerRank, rep.Workers)
	}

	return err
}
