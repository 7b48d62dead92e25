// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks configuration values against declarative rules: required
//              keys, expected types, numeric bounds and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-03-02 v0.2.0: Rules report structured errors; added OneOf, dropped
//                      pattern rules and struct binding

package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	perror "github.com/msto63/primarray/foundation/core/error"
	"github.com/msto63/primarray/foundation/core/errors"
)

// ValidationRule defines validation criteria for one configuration key
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // "string", "int", "bool", "float", "duration" or "[]string"
	Min      *float64 // Minimum numeric value, or minimum length for slices
	Max      *float64 // Maximum numeric value, or maximum length for slices
	OneOf    []string // Allowed values, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// Bound is a convenience for the Min and Max fields
func Bound(v float64) *float64 {
	return &v
}

// ValidationResult collects every violation found by Validate
type ValidationResult struct {
	Valid  bool            `json:"valid"`
	Errors []*perror.Error `json:"errors,omitempty"`
}

// Err returns the first violation, or nil when the configuration is valid
func (r *ValidationResult) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Validate checks the configuration against rules. Keys are checked in
// sorted order so the reported violations are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) *perror.Error {
	if !c.Has(key) {
		if rule.Required {
			return perror.New(fmt.Sprintf("required key %q is missing", key)).
				WithCode(perror.CodeMissingConfig).
				WithOperation("config.Validate").
				WithDetail("key", key)
		}
		return nil
	}

	switch rule.Type {
	case "", "string":
		return c.validateOneOf(key, c.GetString(key), rule)
	case "int":
		v, ok := c.intValue(key)
		if !ok {
			return errors.InvalidConfig(errors.ModuleConfig, key, c.raw(key), "must be an integer")
		}
		return validateBounds(key, float64(v), rule)
	case "float":
		v, ok := c.floatValue(key)
		if !ok {
			return errors.InvalidConfig(errors.ModuleConfig, key, c.raw(key), "must be a number")
		}
		return validateBounds(key, v, rule)
	case "bool":
		if _, ok := c.raw(key).(bool); !ok && !c.fromEnv(key) {
			return errors.InvalidConfig(errors.ModuleConfig, key, c.raw(key), "must be a boolean")
		}
		return nil
	case "duration":
		s := c.GetString(key)
		if _, err := time.ParseDuration(s); err != nil {
			return errors.InvalidConfig(errors.ModuleConfig, key, s, "must be a duration such as 250ms")
		}
		return nil
	case "[]string":
		values := c.GetStringSlice(key)
		if err := validateBounds(key, float64(len(values)), rule); err != nil {
			return err
		}
		for _, v := range values {
			if err := c.validateOneOf(key, v, rule); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.InvalidConfig(errors.ModuleConfig, key, rule.Type, "unknown rule type")
	}
}

func (c *Config) raw(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getValue(key)
}

func (c *Config) fromEnv(key string) bool {
	_, ok := c.envValue(key)
	return ok
}

// intValue reports whether key holds a whole number
func (c *Config) intValue(key string) (int64, bool) {
	const sentinel = -1 << 63
	if v := c.GetInt64(key, sentinel); v != sentinel {
		return v, true
	}
	return 0, false
}

func (c *Config) floatValue(key string) (float64, bool) {
	switch c.raw(key).(type) {
	case float64, int, int64:
		return c.GetFloat(key), true
	}
	if c.fromEnv(key) {
		return c.GetFloat(key), true
	}
	return 0, false
}

func validateBounds(key string, v float64, rule ValidationRule) *perror.Error {
	if rule.Min != nil && v < *rule.Min {
		return errors.InvalidConfig(errors.ModuleConfig, key, v, fmt.Sprintf("must be at least %g", *rule.Min))
	}
	if rule.Max != nil && v > *rule.Max {
		return errors.InvalidConfig(errors.ModuleConfig, key, v, fmt.Sprintf("must be at most %g", *rule.Max))
	}
	return nil
}

func (c *Config) validateOneOf(key, value string, rule ValidationRule) *perror.Error {
	if len(rule.OneOf) == 0 {
		return nil
	}
	for _, allowed := range rule.OneOf {
		if strings.EqualFold(allowed, value) {
			return nil
		}
	}
	return errors.InvalidConfig(errors.ModuleConfig, key, value, "must be one of "+strings.Join(rule.OneOf, ", "))
}
