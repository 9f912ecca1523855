// Package substitute rewrites version phrases in project files.
package substitute

import (
	"fmt"
	"os"
	"strings"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/utils/logger"
)

// Phrase expands the version placeholder in pattern.
func Phrase(pattern, version string) string {
	return strings.ReplaceAll(pattern, Placeholder, version)
}

// Apply replaces every literal occurrence of oldPhrase with newPhrase in the
// file at path and writes the file back. A file without oldPhrase is
// rewritten unchanged.
func Apply(path, oldPhrase, newPhrase string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	count := strings.Count(content, oldPhrase)
	if oldPhrase == "" {
		count = 0
	} else {
		content = strings.ReplaceAll(content, oldPhrase, newPhrase)
	}

	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return count, nil
}

// ApplyAll rewrites every rule from oldVersion to newVersion in order. It
// stops at the first error; files already rewritten stay rewritten.
func ApplyAll(rules []Rule, oldVersion, newVersion string) ([]model.SubstitutionResult, error) {
	results := make([]model.SubstitutionResult, 0, len(rules))
	for _, r := range rules {
		oldPhrase := Phrase(r.Pattern, oldVersion)
		newPhrase := Phrase(r.Pattern, newVersion)

		logger.Info("Opening %s", logger.Path(r.Path))
		logger.Info("Replacing %s with %s", logger.Old(oldPhrase), logger.New(newPhrase))

		n, err := Apply(r.Path, oldPhrase, newPhrase)
		if err != nil {
			return results, err
		}
		if n == 0 {
			logger.Warn("%s does not contain %s", logger.Path(r.Path), logger.Old(oldPhrase))
		}
		results = append(results, model.SubstitutionResult{
			Path:         r.Path,
			OldPhrase:    oldPhrase,
			NewPhrase:    newPhrase,
			Replacements: n,
		})
	}
	return results, nil
}
