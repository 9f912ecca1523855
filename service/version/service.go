// Package version computes the next release version from a selector.
package version

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseSelector maps a command-line token to a Selector. An empty token is
// a revision bump.
func ParseSelector(token string) (Selector, error) {
	switch Selector(token) {
	case "":
		return SelectorRevision, nil
	case SelectorMajor, SelectorMinor, SelectorRevision:
		return Selector(token), nil
	}
	return "", invalidSelector(token)
}

// Bump returns current incremented according to selector.
func Bump(current string, selector Selector) (string, error) {
	switch selector {
	case SelectorMajor, SelectorMinor, SelectorRevision:
	default:
		return "", invalidSelector(string(selector))
	}

	parts, err := split(current)
	if err != nil {
		return "", err
	}
	// semver wraps silently on overflow.
	bumped := 2
	switch selector {
	case SelectorMajor:
		bumped = 0
	case SelectorMinor:
		bumped = 1
	}
	if parts[bumped] == math.MaxUint64 {
		return "", fmt.Errorf("%w: cannot increment %q", ErrOverflow, current)
	}

	v, err := semver.NewVersion(fmt.Sprintf("%d.%d.%d", parts[0], parts[1], parts[2]))
	if err != nil {
		return "", fmt.Errorf("unable to split version %q: %w", current, err)
	}

	var next semver.Version
	switch selector {
	case SelectorMajor:
		next = v.IncMajor()
	case SelectorMinor:
		next = v.IncMinor()
	default:
		next = v.IncPatch()
	}
	return next.String(), nil
}

// Core strips any build metadata or pre-release suffix, leaving the
// "major.minor.revision" phrase written in project files.
func Core(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexAny(v, "+-"); i >= 0 {
		v = v[:i]
	}
	return v
}

// split reads the three numeric parts of the version core. Leading zeros
// are accepted and dropped.
func split(current string) ([3]uint64, error) {
	var parts [3]uint64
	fields := strings.Split(Core(current), ".")
	if len(fields) != len(parts) {
		return parts, fmt.Errorf("unable to split version %q: expected major.minor.revision", current)
	}
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return parts, fmt.Errorf("unable to split version %q: %w", current, err)
		}
		parts[i] = n
	}
	return parts, nil
}

func invalidSelector(value string) error {
	return fmt.Errorf("%w: %q is an invalid argument. Valid arguments are 'M', 'm' and 'r'", ErrInvalidSelector, value)
}
