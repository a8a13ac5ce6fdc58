package version

import "fmt"

// Version contains the application version information.
// Set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/pagesmith/internal/version.Version=v0.1.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String is the text printed by --version.
func String() string {
	return fmt.Sprintf("pagesmith %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
