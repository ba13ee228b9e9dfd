package slp

import "fmt"

// maxSupported is the newest format revision the decoders fully cover.
// Newer files still decode; fields past the known gates are skipped.
var maxSupported = Version{3, 16, 0}

// Version is a replay format revision. Revisions order lexicographically
// on (Major, Minor, Build).
type Version struct {
	Major, Minor, Build uint8
}

// AtLeast reports whether v is at or past the given revision. Every
// version-gated field in the format is additive, so one comparison decides
// whether the field is present.
func (v Version) AtLeast(major, minor, build uint8) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Build >= build
}

func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Build)
}
