// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading TOML and YAML documents,
//              dot-path typed access, environment overrides and defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Deep defaults merge, int64 getter, env string slices;
//                      dropped hot reload and tracing identifiers

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	perror "github.com/msto63/primarray/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config is a parsed configuration document with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Values used where the document has none
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, perror.New("config file path cannot be empty").
			WithCode(perror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perror.New(fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(perror.CodeNotFound).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
		return nil, perror.Wrap(err, "failed to read config file").
			WithCode(perror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, perror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with the specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, perror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return &Config{data: data, format: format}, nil
}

// Empty returns a configuration without a backing document. Lookups fall
// through to the environment and then to defaults.
func Empty(options LoadOptions) *Config {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}
	return &Config{
		data:      mergeDefaults(nil, options.Defaults),
		format:    format,
		envPrefix: options.EnvPrefix,
	}
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, perror.Wrap(err, "TOML parse error").
				WithCode(perror.CodeConfigError).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, perror.Wrap(err, "YAML parse error").
				WithCode(perror.CodeConfigError).
				WithOperation("config.parseContent")
		}
	default:
		return nil, perror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(perror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults fills keys missing from data with defaults, descending into
// nested tables. Default keys may use dot notation.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	expanded := &Config{}
	for k, v := range defaults {
		expanded.setValue(k, v)
	}
	return mergeTables(data, expanded.data)
}

func mergeTables(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range defaults {
		if nested, ok := v.(map[string]interface{}); ok {
			result[k] = deepCopyMap(nested)
			continue
		}
		result[k] = v
	}

	for k, v := range data {
		nested, isMap := v.(map[string]interface{})
		existing, hasMap := result[k].(map[string]interface{})
		if isMap && hasMap {
			result[k] = mergeTables(nested, existing)
			continue
		}
		result[k] = v
	}
	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.envValue(key); ok {
		return envValue
	}

	switch v := c.getValue(key).(type) {
	case nil:
		return first(defaultValue, "")
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	return int(c.GetInt64(key, int64(first(defaultValue, 0))))
}

// GetInt64 returns a 64-bit integer configuration value with optional default.
// TOML decodes integers as int64, YAML as int.
func (c *Config) GetInt64(key string, defaultValue ...int64) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.envValue(key); ok {
		if intVal, err := strconv.ParseInt(envValue, 10, 64); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case uint64:
		return int64(v)
	case float64:
		if v == float64(int64(v)) {
			return int64(v)
		}
	case string:
		if intVal, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intVal
		}
	}
	return first(defaultValue, 0)
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.envValue(key); ok {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}
	return first(defaultValue, false)
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.envValue(key); ok {
		if floatVal, err := strconv.ParseFloat(envValue, 64); err == nil {
			return floatVal
		}
	}

	switch v := c.getValue(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}
	return first(defaultValue, 0)
}

// GetDuration returns a time.Duration configuration value with optional
// default. Strings use time.ParseDuration syntax; bare numbers are nanoseconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.envValue(key); ok {
		if duration, err := time.ParseDuration(envValue); err == nil {
			return duration
		}
	}

	switch v := c.getValue(key).(type) {
	case string:
		if duration, err := time.ParseDuration(v); err == nil {
			return duration
		}
	case time.Duration:
		return v
	case int:
		return time.Duration(v)
	case int64:
		return time.Duration(v)
	}
	return first(defaultValue, 0)
}

// GetStringSlice returns a string slice configuration value with optional
// default. An environment override is split on commas.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.envValue(key); ok {
		return splitList(envValue)
	}

	switch v := c.getValue(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return splitList(v)
	}
	return first(defaultValue, nil)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func first[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

// getValue retrieves a value by dot-separated key
func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// envValue looks up the environment override for key
func (c *Config) envValue(key string) (string, bool) {
	value, ok := os.LookupEnv(c.EnvKey(key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvKey converts a config key to its environment variable name:
// bench.size with prefix PRIMBENCH becomes PRIMBENCH_BENCH_SIZE.
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(strings.TrimSuffix(c.envPrefix, "_")) + "_" + envKey
	}
	return envKey
}

// Has checks if a key exists in the document or the environment
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.envValue(key); ok {
		return true
	}
	return c.getValue(key) != nil
}

// Set sets a value at runtime, creating intermediate tables as needed
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setValue(key, value)
}

func (c *Config) setValue(key string, value interface{}) {
	if c.data == nil {
		c.data = make(map[string]interface{})
	}
	current := c.data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// GetAll returns a deep copy of the document
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// Keys returns the sorted dot-paths of all leaf values
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			if nested, ok := v.(map[string]interface{}); ok {
				walk(path, nested)
				continue
			}
			keys = append(keys, path)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format)}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))
	return strings.Join(parts, ", ")
}
