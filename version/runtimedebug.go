package version

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// ErrNoBuildInfo is returned when the binary carries no module information.
var ErrNoBuildInfo = errors.New("build information is not available")

// BuildInfo returns the build information
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return nil, ErrNoBuildInfo
	}

	return bi, nil
}

// Describe renders the main module, the Go version and the VCS settings of bi,
// one per line.
func Describe(bi *debug.BuildInfo) string {
	if bi == nil {
		return ErrNoBuildInfo.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "module: %s\n", bi.Main.Path)
	fmt.Fprintf(&b, "version: %s\n", orUnknown(bi.Main.Version))
	fmt.Fprintf(&b, "go: %s\n", bi.GoVersion)
	for _, s := range bi.Settings {
		if strings.HasPrefix(s.Key, "vcs.") {
			fmt.Fprintf(&b, "%s: %s\n", s.Key, s.Value)
		}
	}

	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}

	return s
}
