// ============================================================================
// primarray - Primitive Array Toolkit
// ============================================================================
//
// Package:     bench
// Description: Benchmark options and their configuration binding
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package bench

import (
	"fmt"
	"strings"

	"github.com/msto63/primarray/foundation/core/config"
	"github.com/msto63/primarray/foundation/core/errors"
	"github.com/msto63/primarray/foundation/utils/primarray"
)

// Operation is one measured in-place array operation
type Operation string

const (
	OpReverse Operation = "reverse"
	OpSort    Operation = "sort"
	OpShuffle Operation = "shuffle"
)

// AllOperations returns the measured operations in report order
func AllOperations() []Operation {
	return []Operation{OpReverse, OpSort, OpShuffle}
}

// ParseOperation resolves an operation by case-insensitive name
func ParseOperation(name string) (Operation, error) {
	for _, op := range AllOperations() {
		if strings.EqualFold(string(op), strings.TrimSpace(name)) {
			return op, nil
		}
	}
	return "", errors.InvalidInput(errors.ModuleBench, "ParseOperation", "operation", name, "expected reverse, sort or shuffle")
}

// ParseKinds resolves element kind names. "all" selects every kind.
func ParseKinds(names []string) ([]primarray.Kind, error) {
	var kinds []primarray.Kind
	for _, name := range names {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, "all") {
			return primarray.AllKinds(), nil
		}
		kind, ok := primarray.ParseKind(name)
		if !ok {
			return nil, errors.InvalidInput(errors.ModuleBench, "ParseKinds", "kind", name, "unknown element kind")
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// ParseOperations resolves operation names. "all" selects every operation.
func ParseOperations(names []string) ([]Operation, error) {
	var ops []Operation
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			return AllOperations(), nil
		}
		op, err := ParseOperation(name)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Options configures a benchmark run
type Options struct {
	Kinds      []primarray.Kind
	Size       int
	Rounds     int
	Seed       uint64
	Operations []Operation
}

// Limits enforced by Validate
const (
	MaxSize   = 100_000_000
	MaxRounds = 1000
)

// DefaultOptions measures every kind and operation on 100k elements
func DefaultOptions() Options {
	return Options{
		Kinds:      primarray.AllKinds(),
		Size:       100_000,
		Rounds:     5,
		Seed:       1,
		Operations: AllOperations(),
	}
}

// Validate checks that the options describe a runnable benchmark
func (o Options) Validate() error {
	switch {
	case len(o.Kinds) == 0:
		return errors.InvalidConfig(errors.ModuleBench, "kinds", o.Kinds, "at least one kind is required")
	case len(o.Operations) == 0:
		return errors.InvalidConfig(errors.ModuleBench, "operations", o.Operations, "at least one operation is required")
	case o.Size < 0 || o.Size > MaxSize:
		return errors.InvalidConfig(errors.ModuleBench, "size", o.Size, fmt.Sprintf("must be within [0, %d]", MaxSize))
	case o.Rounds < 1 || o.Rounds > MaxRounds:
		return errors.InvalidConfig(errors.ModuleBench, "rounds", o.Rounds, fmt.Sprintf("must be within [1, %d]", MaxRounds))
	}
	return nil
}

// ConfigDefaults are the configuration values used where a document is silent
func ConfigDefaults() map[string]interface{} {
	d := DefaultOptions()
	return map[string]interface{}{
		"bench.kinds":      []interface{}{"all"},
		"bench.operations": []interface{}{"all"},
		"bench.size":       d.Size,
		"bench.rounds":     d.Rounds,
		"bench.seed":       int64(d.Seed),
		"bench.output":     "table",
		"log.level":        "info",
		"log.format":       "console",
	}
}

// ConfigRules validates the [bench] table of a configuration document
func ConfigRules() config.ValidationRules {
	kinds := []string{"all"}
	for _, k := range primarray.AllKinds() {
		kinds = append(kinds, k.String())
	}
	return config.ValidationRules{
		"bench.kinds":      {Type: "[]string", Min: config.Bound(1), OneOf: kinds},
		"bench.operations": {Type: "[]string", Min: config.Bound(1), OneOf: []string{"all", "reverse", "sort", "shuffle"}},
		"bench.size":       {Required: true, Type: "int", Min: config.Bound(0), Max: config.Bound(MaxSize)},
		"bench.rounds":     {Required: true, Type: "int", Min: config.Bound(1), Max: config.Bound(MaxRounds)},
		"bench.seed":       {Type: "int", Min: config.Bound(0)},
		"bench.output":     {OneOf: []string{"table", "json"}},
	}
}

// FromConfig reads and validates Options from the [bench] table
func FromConfig(cfg *config.Config) (Options, error) {
	if err := cfg.Validate(ConfigRules()).Err(); err != nil {
		return Options{}, err
	}

	kinds, err := ParseKinds(cfg.GetStringSlice("bench.kinds", []string{"all"}))
	if err != nil {
		return Options{}, err
	}
	ops, err := ParseOperations(cfg.GetStringSlice("bench.operations", []string{"all"}))
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Kinds:      kinds,
		Size:       cfg.GetInt("bench.size"),
		Rounds:     cfg.GetInt("bench.rounds"),
		Seed:       uint64(cfg.GetInt64("bench.seed", 1)),
		Operations: ops,
	}
	return opts, opts.Validate()
}
