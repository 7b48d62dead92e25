// ============================================================================
// primarray - Primitive Array Toolkit
// ============================================================================
//
// Package:     bench
// Description: Runs timed primitive versus boxed operations per element kind
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package bench

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	perror "github.com/msto63/primarray/foundation/core/error"
	"github.com/msto63/primarray/foundation/core/errors"
	"github.com/msto63/primarray/foundation/core/log"
)

// Runner executes a benchmark described by Options
type Runner struct {
	opts   Options
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

// NewRunner validates opts and returns a runner. A nil logger discards output.
func NewRunner(opts Options, logger *log.Logger) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Runner{
		opts:   opts,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// Run measures every configured kind and operation. The context is checked
// between rounds; a cancelled run returns no report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:   r.newID(),
		Started: r.now(),
		Size:    r.opts.Size,
		Rounds:  r.opts.Rounds,
		Seed:    r.opts.Seed,
	}
	logger := r.logger.WithName("bench").WithRunID(report.RunID)
	logger.Info("benchmark started", log.Fields{
		"kinds":  len(r.opts.Kinds),
		"ops":    len(r.opts.Operations),
		"size":   r.opts.Size,
		"rounds": r.opts.Rounds,
	})

	timer := logger.StartTimer("benchmark").WithLevel(log.LevelInfo)
	for _, kind := range r.opts.Kinds {
		subj, err := newSubject(kind, r.opts.Size, r.opts.Seed)
		if err != nil {
			timer.StopWithError(err)
			return nil, errors.OperationFailed(errors.ModuleBench, "Run", err)
		}

		for _, op := range r.opts.Operations {
			result, err := r.measure(ctx, subj, op)
			if err != nil {
				timer.StopWithError(err)
				logger.LogError(err)
				return nil, err
			}
			report.Results = append(report.Results, result)
		}
		timer.Checkpoint(kind.String(), log.Field("kind", kind.String()))
	}
	report.Elapsed = timer.Stop()
	return report, nil
}

func (r *Runner) measure(ctx context.Context, subj subject, op Operation) (Result, error) {
	result := Result{Kind: subj.kind(), Operation: op}
	if op == OpSort && !subj.kind().Sortable() {
		// the array layer rejects the sort; record why instead of timing it
		err := subj.runPrimitive(op, nil)
		result.Skipped = perror.GetCode(err).String()
		return result, nil
	}

	for round := 0; round < r.opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return Result{}, perror.Wrap(err, "benchmark cancelled").
				WithCode(perror.CodeCanceled).
				WithOperation("bench.Run").
				WithDetail("kind", subj.kind().String()).
				WithDetail("operation", string(op)).
				WithDetail("round", round)
		}

		subj.reset()
		// identical streams so both shuffles produce the same permutation
		seed := r.opts.Seed + uint64(round)
		primitiveRng := rand.New(rand.NewPCG(seed, seed))
		boxedRng := rand.New(rand.NewPCG(seed, seed))

		start := r.now()
		if err := subj.runPrimitive(op, primitiveRng); err != nil {
			return Result{}, errors.OperationFailed(errors.ModuleBench, "Run", err)
		}
		primitive := r.now().Sub(start)

		start = r.now()
		subj.runBoxed(op, boxedRng)
		boxed := r.now().Sub(start)

		if err := subj.verify(); err != nil {
			return Result{}, perror.Wrap(err, "primitive and boxed results differ").
				WithCode(perror.CodeInternal).
				WithOperation("bench.Run").
				WithDetail("kind", subj.kind().String()).
				WithDetail("operation", string(op))
		}
		result.Primitive.add(primitive)
		result.Boxed.add(boxed)
	}
	return result, nil
}
