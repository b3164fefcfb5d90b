// SPDX-License-Identifier: MIT

// Command qanneal runs one annealing job described by a YAML run file.
//
//	qanneal run --config run.yaml [--json] [--log-level debug] [--metrics-addr :9090]
//	qanneal version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "qanneal:", err)
		stop()
		os.Exit(1)
	}
}
