// Package engine locates the container engine cross delegates builds to.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrNotFound reports that no supported container engine is on PATH.
var ErrNotFound = errors.New("no container engine found")

// knownEngines is the detection order when no engine is pinned.
var knownEngines = []string{"docker", "podman"}

var versionRe = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Engine is a detected container engine binary.
type Engine struct {
	Name    string
	Path    string
	Version string
}

// Detect finds a usable container engine. With a name it checks only that
// binary; otherwise it tries the known engines in order. A binary that is
// on PATH but fails the version probe is skipped.
func Detect(ctx context.Context, name string) (*Engine, error) {
	names := knownEngines
	if name != "" {
		names = []string{name}
	}

	for _, n := range names {
		path, err := exec.LookPath(n)
		if err != nil {
			continue
		}
		version, err := probeVersion(ctx, path)
		if err != nil {
			continue
		}
		return &Engine{Name: n, Path: path, Version: version}, nil
	}
	return nil, ErrNotFound
}

// MeetsMinimum reports whether the engine version is at least min
// ("20.10.0" style). An empty minimum always passes.
func (e *Engine) MeetsMinimum(min string) bool {
	if min == "" {
		return true
	}
	return semver.Compare("v"+e.Version, "v"+min) >= 0
}

func probeVersion(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("probing %s: %w", path, err)
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts the semantic version from an engine's --version
// banner, e.g. "Docker version 24.0.7, build afdd53b" or
// "podman version 4.9.3".
func ParseVersion(banner string) (string, error) {
	v := versionRe.FindString(banner)
	if v == "" {
		return "", fmt.Errorf("no version in %q", strings.TrimSpace(banner))
	}
	return v, nil
}
