package tokens

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the version of the token set. Bump the major component on breaking changes
// to token names or values.
const Version = "1.0.0"

var currentVersion = semver.MustParse(Version)

// TokenVersion returns the current token set version.
func TokenVersion() string {
	return Version
}

// IsTokenVersionCompatible reports whether the token set satisfies a consumer's minimum
// version. Only the major components are compared: minor and patch are ignored, and
// "1.9.9" is satisfied by 1.0.0. This is a coarse check, not semver range matching.
// Versions that cannot be parsed are never compatible.
func IsTokenVersionCompatible(minVersion string) bool {
	minimum, err := semver.NewVersion(strings.TrimSpace(minVersion))
	if err != nil {
		return false
	}
	return currentVersion.Major() >= minimum.Major()
}
