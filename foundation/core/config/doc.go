// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration documents with
//              environment overrides, defaults, discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Discovery with optional fallback, structured validation

/*
Package config loads configuration documents for the primarray tools.

Documents are TOML (default) or YAML, chosen by file extension. Values are
read by dot-separated key with typed getters that fall back to an optional
default:

	cfg, err := config.LoadWithOptions("bench.toml", config.LoadOptions{
		EnvPrefix: "PRIMBENCH",
		Defaults: map[string]interface{}{
			"bench.size":   100000,
			"bench.rounds": 5,
		},
	})
	if err != nil {
		return err
	}
	size := cfg.GetInt("bench.size")
	kinds := cfg.GetStringSlice("bench.kinds", []string{"int", "long"})

# Environment Overrides

Every lookup first consults the environment. The variable name is the key in
upper case with dots replaced by underscores, behind the prefix:

	export PRIMBENCH_BENCH_SIZE=5000
	export PRIMBENCH_BENCH_KINDS=int,double

String slices taken from the environment are split on commas.

# Discovery

Discover searches directories for a known base name when no explicit path is
given. With Required unset a missing file yields an Empty configuration that
still honors defaults and environment overrides:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions("bench"))

# Validation

Validate checks keys against declarative rules and reports structured
errors with the CONFIG codes of the core error package:

	result := cfg.Validate(config.ValidationRules{
		"bench.size":   {Type: "int", Min: config.Bound(0)},
		"bench.output": {OneOf: []string{"table", "json"}},
	})
	if err := result.Err(); err != nil {
		return err
	}
*/
package config
