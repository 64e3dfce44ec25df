package app

import "fmt"

// Version, Commit and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/dauchezhenri-coder/praxis-backend/internal/app.Version=1.2.0 \
//	  -X github.com/dauchezhenri-coder/praxis-backend/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/praxis
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version reported in startup logs and /health.
// Unset build metadata is left out.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime)
}

func formatVersion(version, commit, built string) string {
	switch {
	case commit == "unknown" && built == "unknown":
		return version
	case built == "unknown":
		return fmt.Sprintf("%s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
