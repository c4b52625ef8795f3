// SPDX-License-Identifier: MIT

// Command lvmat-demo generates seeded integer matrices, inverts them with the
// adjugate method and cross-checks the results. Settings come from LVMAT_*
// environment variables (see internal/config).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/internal/demo"
	"github.com/katalvlaran/lvmat/internal/logging"
)

const (
	exitOK           = 0
	exitVerification = 1
	exitConfig       = 2
	exitInternal     = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfig
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogColor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err = demo.Run(ctx, cfg, log); err != nil {
		log.Error("demo failed", "err", err)
		if errors.Is(err, demo.ErrVerification) {
			return exitVerification
		}
		return exitInternal
	}

	return exitOK
}
