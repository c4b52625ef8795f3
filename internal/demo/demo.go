// SPDX-License-Identifier: MIT

// Package demo runs a deterministic determinant / inverse workload over
// seeded integer matrices and reports how each trial went.
//
// Every trial:
//   - builds an Order×Order matrix with cells in [-MaxValue, MaxValue];
//   - computes det by Laplace expansion and by LU (gonum) and logs both;
//   - inverts via the adjugate unless singular, checks A·A⁻¹ ≈ I and compares
//     the result against the LU inverse.
//
// The sequence of matrices depends only on Seed, so a run is reproducible.
package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrix/bridge"
)

// VerifyTolerance is the absolute tolerance for A·A⁻¹ ≈ I and for the
// adjugate/LU agreement check.
const VerifyTolerance = 1e-6

// ErrVerification is returned when at least one inverse fails the identity check.
var ErrVerification = errors.New("demo: inverse verification failed")

// Trial is the outcome of one generated matrix.
type Trial struct {
	Index    int
	Det      float64 // Laplace expansion
	DetLU    float64 // gonum LU, approximate
	Singular bool
	Verified bool // A·A⁻¹ ≈ I; false when Singular
	AgreesLU bool // adjugate inverse ≈ LU inverse; false when either is unavailable
}

// Summary aggregates all trials of a run.
type Summary struct {
	Trials   []Trial
	Singular int
	Inverted int
	Failed   int
}

// Run executes cfg.Trials trials. It stops early with ctx.Err() when ctx is
// cancelled and returns ErrVerification when any inverse misses the identity.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	sum := Summary{Trials: make([]Trial, 0, cfg.Trials)}

	log.Info("demo started",
		"order", cfg.Order, "trials", cfg.Trials, "seed", cfg.Seed,
		"max_value", cfg.MaxValue, "epsilon", cfg.Epsilon)

	for i := 0; i < cfg.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("demo: trial %d: %w", i, err)
		}

		tr, err := runTrial(i, cfg, rng, log)
		if err != nil {
			return sum, err
		}
		sum.Trials = append(sum.Trials, tr)
		switch {
		case tr.Singular:
			sum.Singular++
		case tr.Verified:
			sum.Inverted++
		default:
			sum.Failed++
		}
	}

	log.Info("demo finished",
		"inverted", sum.Inverted, "singular", sum.Singular, "failed", sum.Failed)
	if sum.Failed > 0 {
		return sum, fmt.Errorf("%d of %d trials: %w", sum.Failed, cfg.Trials, ErrVerification)
	}

	return sum, nil
}

// generate draws one matrix from rng.
func generate(cfg config.Config, rng *rand.Rand) (*matrix.Dense, error) {
	span := 2*cfg.MaxValue + 1

	return matrix.NewFromFunc(cfg.Order, cfg.Order, func(_, _ int) float64 {
		return float64(rng.Intn(span) - cfg.MaxValue)
	}, matrix.WithSingularEpsilon(cfg.Epsilon))
}

func runTrial(i int, cfg config.Config, rng *rand.Rand, log *slog.Logger) (Trial, error) {
	tr := Trial{Index: i}

	a, err := generate(cfg, rng)
	if err != nil {
		return tr, fmt.Errorf("demo: trial %d: %w", i, err)
	}
	log.Debug("matrix", "trial", i, "cells", a.String())

	if tr.Det, err = a.Determinant(); err != nil {
		return tr, fmt.Errorf("demo: trial %d: %w", i, err)
	}
	if tr.DetLU, err = bridge.DetLU(a); err != nil {
		return tr, fmt.Errorf("demo: trial %d: %w", i, err)
	}

	inv, err := a.Inverse()
	if errors.Is(err, matrix.ErrSingular) {
		tr.Singular = true
		log.Info("trial singular", "trial", i, "det", tr.Det, "det_lu", tr.DetLU)
		return tr, nil
	}
	if err != nil {
		return tr, fmt.Errorf("demo: trial %d: %w", i, err)
	}

	if tr.Verified, err = isIdentityProduct(a, inv); err != nil {
		return tr, fmt.Errorf("demo: trial %d: %w", i, err)
	}
	if !tr.Verified {
		log.Error("inverse check failed", "trial", i, "det", tr.Det, "inverse", inv.String())
		return tr, nil
	}

	lu, err := bridge.InverseLU(a)
	switch {
	case errors.Is(err, matrix.ErrSingular):
		log.Warn("LU reports singular, adjugate did not", "trial", i, "det", tr.Det)
	case err != nil:
		return tr, fmt.Errorf("demo: trial %d: %w", i, err)
	default:
		if tr.AgreesLU, err = inv.AllClose(lu, 0, VerifyTolerance); err != nil {
			return tr, fmt.Errorf("demo: trial %d: %w", i, err)
		}
	}

	log.Info("trial inverted", "trial", i, "det", tr.Det, "det_lu", tr.DetLU, "agrees_lu", tr.AgreesLU)

	return tr, nil
}

// isIdentityProduct reports whether a·inv is I within VerifyTolerance.
func isIdentityProduct(a, inv *matrix.Dense) (bool, error) {
	prod, err := a.Mul(inv)
	if err != nil {
		return false, err
	}
	id, err := matrix.IdentityLike(a)
	if err != nil {
		return false, err
	}

	return prod.AllClose(id, 0, VerifyTolerance)
}
