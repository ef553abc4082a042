package cli

// Build metadata, set at release time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/joabzzz/r3dy/internal/cli.version=v1.0.0 \
//	  -X github.com/joabzzz/r3dy/internal/cli.commit=$(git rev-parse HEAD) \
//	  -X github.com/joabzzz/r3dy/internal/cli.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
