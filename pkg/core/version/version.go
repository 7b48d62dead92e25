// ============================================================================
// primarray - Primitive Array Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the library and the benchmark tool
const (
	Library   = "0.1.0"
	Primbench = "0.1.0"
)

// Build metadata, set with -ldflags "-X"
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes one build of a component
type Info struct {
	Component string
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "primbench":
		return Primbench
	default:
		return Library
	}
}

// Get returns the build information of component
func Get(component string) Info {
	return Info{
		Component: component,
		Version:   ComponentVersion(component),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the one-line form "primbench v0.1.0"
func (i Info) String() string {
	return fmt.Sprintf("%s v%s", i.Component, i.Version)
}
