// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates a configuration file by searching directories for
//              known base names and extensions, then loads it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-03-02 v0.2.0: Optional discovery falls back to Empty with defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	perror "github.com/msto63/primarray/foundation/core/error"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Paths      []string               // Directories to search, in order
	Filenames  []string               // Base names without extension
	Extensions []string               // Extensions to try, in order
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Defaults applied to the loaded document
	Required   bool                   // Whether a missing file is an error
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for name.toml, name.yaml and name.yml
func DefaultDiscoveryOptions(name string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, name))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{name},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Candidates lists every path Discover checks, in search order
func (o DiscoveryOptions) Candidates() []string {
	paths := make([]string, 0, len(o.Paths)*len(o.Filenames)*len(o.Extensions))
	for _, dir := range o.Paths {
		for _, filename := range o.Filenames {
			for _, ext := range o.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first existing candidate
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range options.Candidates() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", perror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(options.Candidates(), ", "))).
		WithCode(perror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", options.Candidates())
}

// Discover loads the first configuration file found. Without a file it
// returns an error when Required is set, otherwise an Empty configuration.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(loadOptions), nil
	}

	cfg, err := LoadWithOptions(path, loadOptions)
	if err != nil {
		return nil, perror.Wrap(err, fmt.Sprintf("found config file %s but failed to load it", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}
