package version

import "runtime/debug"

var (
	// Build-time parameters set via -ldflags
	Version = "unknown"
)

// Binaries installed with `go install` carry no -ldflags, but they do embed the
// module version, so fall back to that.
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	mainVersion := info.Main.Version
	if mainVersion == "" || mainVersion == "(devel)" {
		// bin not built using `go install`
		return
	}
	Version = mainVersion
}
