package version

import "errors"

// Selector picks which part of a version is incremented.
type Selector string

const (
	// SelectorMajor increments major and resets minor and revision.
	SelectorMajor Selector = "M"
	// SelectorMinor increments minor and resets revision.
	SelectorMinor Selector = "m"
	// SelectorRevision increments revision only.
	SelectorRevision Selector = "r"
)

// ErrInvalidSelector is returned for any selector other than M, m or r.
var ErrInvalidSelector = errors.New("invalid version selector")

// ErrOverflow is returned when the incremented part would not fit in 64 bits.
var ErrOverflow = errors.New("version part overflows")
