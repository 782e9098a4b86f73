package metadata

import "strconv"

// Version is a WCVP release recognized by this package.
type Version uint

// V15 is the 15th release of WCVP.
const V15 Version = 15

var knownVersions = map[uint]Version{
	15: V15,
}

// NewVersion maps a release number to a known Version.
func NewVersion(n uint) (Version, error) {
	if v, ok := knownVersions[n]; ok {
		return v, nil
	}
	return 0, InvalidVersionError(n)
}

// Number returns the release number.
func (v Version) Number() uint {
	return uint(v)
}

func (v Version) String() string {
	return strconv.FormatUint(uint64(v), 10)
}
