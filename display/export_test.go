package display

import "runtime/debug"

// SetReadBuildInfo replaces the build info source and returns a func restoring it.
func SetReadBuildInfo(f func() (*debug.BuildInfo, bool)) func() {
	old := readBuildInfo
	readBuildInfo = f
	return func() { readBuildInfo = old }
}
