package settings

import "strings"

// overridable with -ldflags "-X ...settings.version=v0.2.1"
var version = "dev"

// Version ...
func Version() string {
	return version
}

// InDevelop reports a non-release build.
func InDevelop() bool {
	return version == "dev" || strings.HasSuffix(version, "-dirty")
}
