package version

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ErrMalformedTag is returned for release tags that are not MAJOR.MINOR[.PATCH][-PRE].
var ErrMalformedTag = errors.New("malformed release tag")

// Release is a parsed mpcrpc release tag.
type Release struct {
	Major, Minor, Patch int
	// Pre is the pre-release suffix, such as "rc1". Empty for a final release.
	Pre string
}

// ParseRelease reads tags as published on the releases page, with or without the leading "v".
func ParseRelease(tag string) (Release, error) {
	core, pre, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(tag), "v"), "-")

	segments := strings.Split(core, ".")
	if len(segments) < 2 || len(segments) > 3 {
		return Release{}, fmt.Errorf("%w: %q", ErrMalformedTag, tag)
	}

	numbers := make([]int, 3)
	for i, segment := range segments {
		n, err := strconv.Atoi(segment)
		if err != nil || n < 0 {
			return Release{}, fmt.Errorf("%w: %q", ErrMalformedTag, tag)
		}
		numbers[i] = n
	}

	return Release{Major: numbers[0], Minor: numbers[1], Patch: numbers[2], Pre: pre}, nil
}

// Compare orders r against other. A pre-release sorts before the final release of the same version.
func (r Release) Compare(other Release) int {
	if c := cmp.Or(
		cmp.Compare(r.Major, other.Major),
		cmp.Compare(r.Minor, other.Minor),
		cmp.Compare(r.Patch, other.Patch),
	); c != 0 {
		return c
	}

	switch {
	case r.Pre == other.Pre:
		return 0
	case r.Pre == "":
		return 1
	case other.Pre == "":
		return -1
	default:
		return strings.Compare(r.Pre, other.Pre)
	}
}

func (r Release) String() string {
	s := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	return lo.Ternary(r.Pre == "", s, s+"-"+r.Pre)
}

// Compare parses two tags and returns 1 if a is newer, -1 if b is newer and 0 if they are the same release.
func Compare(a, b string) (int, error) {
	ra, err := ParseRelease(a)
	if err != nil {
		return 0, err
	}

	rb, err := ParseRelease(b)
	if err != nil {
		return 0, err
	}

	return ra.Compare(rb), nil
}
