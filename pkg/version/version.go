// Package version exposes the build information injected at link time:
//
//	go build -ldflags "-X github.com/rshade/pickr/pkg/version.version=v1.2.3"
package version

import "runtime"

//nolint:gochecknoglobals // Set through -ldflags at build time.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the release version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns when the binary was built.
func GetBuildDate() string {
	return buildDate
}

// GetGoVersion returns the Go toolchain the binary was built with.
func GetGoVersion() string {
	return runtime.Version()
}
