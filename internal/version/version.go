// Package version carries build metadata injected with -ldflags, e.g.
//
//	-X github.com/1icebest1/shooter/internal/version.Version=v0.3.0
package version

import (
	"fmt"
	"time"
)

var (
	Version   = "dev"
	Commit    string
	BuildDate string // YYYY-MM-DD (UTC)
)

const shortCommitLen = 7

// Info describes the build in structured form.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	Built     time.Time
	DateValid bool
}

// Get returns the current build info. Safe to call at any time.
func Get() Info {
	info := Info{
		Version:   coalesce(Version, "dev"),
		Commit:    shortCommit(Commit),
		BuildDate: BuildDate,
	}
	if t, err := parseBuildDate(BuildDate); err == nil {
		info.Built = t
		info.DateValid = true
	}
	return info
}

// String returns a human-readable build line for the startup log.
func String() string {
	info := Get()
	date := "unknown"
	if info.DateValid {
		date = info.Built.Format("2006-01-02")
	}
	return fmt.Sprintf("Slime Survival %s commit[%s] built[%s]",
		info.Version, coalesce(info.Commit, "unknown"), date)
}

// WindowTitle appends the version to base, except for dev builds.
func WindowTitle(base string) string {
	info := Get()
	if info.Version == "dev" {
		return base
	}
	return fmt.Sprintf("%s %s", base, info.Version)
}

func parseBuildDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("build date is empty")
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid build date %q: %w", s, err)
	}
	return t, nil
}

func shortCommit(c string) string {
	if len(c) > shortCommitLen {
		return c[:shortCommitLen]
	}
	return c
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
