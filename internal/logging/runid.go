package logging

import "github.com/oklog/ulid/v2"

// GenerateRunID returns a new ULID identifying a single renamer run. ULIDs
// sort lexicographically by creation time, which keeps per-run log files in
// chronological order when listed by name.
func GenerateRunID() string {
	return ulid.Make().String()
}
