package definite

import "fmt"

var version = struct {
	major, minor, patch int
	release             string
}{1, 0, 0, "alpha"}

// Version returns the short semver string, e.g. "1.0.0".
func Version() string {
	return fmt.Sprintf("%d.%d.%d", version.major, version.minor, version.patch)
}

// FullVersion returns the version including release information when
// present, e.g. "1.0.0-alpha".
func FullVersion() string {
	v := Version()
	if version.release == "" {
		return v
	}
	return v + "-" + version.release
}
