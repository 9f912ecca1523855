package substitute

// Placeholder is expanded to the version inside a rule pattern.
const Placeholder = "{version}"

// Rule is a file and the phrase in it that carries the version.
type Rule struct {
	Path    string `yaml:"path"`
	Pattern string `yaml:"pattern"`
}
