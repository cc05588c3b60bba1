package nada

// Version is the semantic version populated at build time via ldflags. In
// development it defaults to v0.0.0-in-progress.
var Version = "v0.0.0-in-progress"

// LibraryVersion returns the module version string.
func LibraryVersion() string {
	return Version
}
