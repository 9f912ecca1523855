package model

// SkipToken is the positional argument that builds without bumping the version.
const SkipToken = "noup"

// Flags represents the command line flags and the positional selector.
type Flags struct {
	Selector   string
	NoBump     bool
	From       string
	ConfigPath string
	NoBuild    bool
	NoOpen     bool
	Quiet      bool
	Output     string
	Store      bool
	DBPath     string
	Version    bool
}
