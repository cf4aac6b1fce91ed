package app

import "fmt"

// Version, Commit, and BuildTime are injected via -ldflags at build
// time, e.g.
// go build -ldflags "-X github.com/amteixeira/uvtrack-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup logs and the
// health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
