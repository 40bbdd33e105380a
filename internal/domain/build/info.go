// Package build describes the running binary.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/panes"
}

// IsRelease reports whether the binary was built with release ldflags.
func (i Info) IsRelease() bool {
	return i.Version != "" && i.Version != "dev"
}

// Short is the one-line form, e.g. "panes v0.3.0 (1a2b3c4)".
func (i Info) Short() string {
	version := i.Version
	if !i.IsRelease() {
		version = "dev"
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("panes %s (%s)", version, commit)
}
