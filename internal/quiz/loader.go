package quiz

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ErrNoQuestions is returned when a file holds no complete question.
var ErrNoQuestions = errors.New("quiz: no usable questions")

type file struct {
	Questions []Question `yaml:"questions"`
}

// Parse decodes a question document of the form
// {"questions":[{"id":..,"text":..,"answer":..}]}. JSON and YAML are both accepted.
// A record is skipped when its id, text or answer is missing or empty.
func Parse(data []byte) ([]Question, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("quiz: parse: %w", err)
	}

	out := make([]Question, 0, len(f.Questions))
	for _, q := range f.Questions {
		if q.complete() {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoQuestions
	}
	return out, nil
}

// Load reads and parses a question file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quiz: read %s: %w", path, err)
	}
	qs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("quiz: %s: %w", path, err)
	}
	return &Set{questions: qs}, nil
}

// SearchPaths returns the candidate question files in lookup order.
func SearchPaths(customPath string) []string {
	var paths []string
	if customPath != "" {
		paths = append(paths, customPath)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".virusdefense")
		paths = append(paths,
			filepath.Join(dir, "questions.json"),
			filepath.Join(dir, "questions.yaml"),
		)
	}
	return append(paths, "questions.json", filepath.Join("..", "questions.json"))
}

// Resolve loads the first usable file from SearchPaths. It never fails:
// when no file can be used the built-in fallback set is returned.
// The second result names where the questions came from.
func Resolve(customPath string, logger *log.Logger) (*Set, string) {
	for _, path := range SearchPaths(customPath) {
		set, err := Load(path)
		if err != nil {
			if logger != nil && !errors.Is(err, os.ErrNotExist) {
				logger.Warn("skipping question file", "path", path, "err", err)
			}
			continue
		}
		if logger != nil {
			logger.Info("loaded questions", "path", path, "count", set.Count())
		}
		return set, path
	}

	if logger != nil {
		logger.Info("no question file found, using fallback questions", "count", FallbackCount)
	}
	return Fallback(), "fallback"
}
