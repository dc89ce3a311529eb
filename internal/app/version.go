package app

import "fmt"

// Version, Commit, and BuildTime are stamped via ldflags, for example:
// go build -ldflags "-X github.com/feelhome/feelhome-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build info for startup logs and the health
// endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
