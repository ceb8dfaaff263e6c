// Package nav provides the navigation bar: the ordered navigation entries and
// the two ways of presenting them, an inline list for wide terminals and a
// slide-out panel for narrow ones.
package nav

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/42-short/council/internal/icon"
	"gopkg.in/yaml.v3"
)

//go:embed entries.yaml
var entriesYAML []byte

var (
	ErrDuplicatePath = errors.New("duplicate navigation path")
	ErrInvalidPath   = errors.New("navigation path must begin with /")
	ErrEmptyLabel    = errors.New("navigation label must not be empty")
	ErrNoEntries     = errors.New("at least one navigation entry is required")
)

// Entry is a navigable menu item.
type Entry struct {
	Label string    `yaml:"label"`
	Path  string    `yaml:"path"`
	Icon  icon.Name `yaml:"icon"`
}

// Model is an ordered, immutable sequence of entries. The order is the
// display order.
type Model struct {
	entries []Entry
}

// Load loads the entries compiled into the binary.
func Load() (Model, error) {
	return Parse(entriesYAML)
}

// Parse parses a YAML document with a top-level list of entries.
func Parse(b []byte) (Model, error) {
	var doc struct {
		Entries []Entry `yaml:"entries"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return Model{}, fmt.Errorf("parsing navigation entries: %w", err)
	}
	return NewModel(doc.Entries...)
}

// NewModel constructs a model from entries, validating each one.
func NewModel(entries ...Entry) (Model, error) {
	if len(entries) == 0 {
		return Model{}, ErrNoEntries
	}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			return Model{}, fmt.Errorf("entry %d: %w", i, ErrEmptyLabel)
		}
		if !strings.HasPrefix(e.Path, "/") {
			return Model{}, fmt.Errorf("entry %q: %w: %q", e.Label, ErrInvalidPath, e.Path)
		}
		if _, ok := seen[e.Path]; ok {
			return Model{}, fmt.Errorf("entry %q: %w: %s", e.Label, ErrDuplicatePath, e.Path)
		}
		if err := icon.Validate(e.Icon); err != nil {
			return Model{}, fmt.Errorf("entry %q: %w", e.Label, err)
		}
		seen[e.Path] = struct{}{}
	}
	m := Model{entries: make([]Entry, len(entries))}
	copy(m.entries, entries)
	return m, nil
}

// Entries returns a copy of the entries in display order.
func (m Model) Entries() []Entry {
	entries := make([]Entry, len(m.entries))
	copy(entries, m.entries)
	return entries
}

func (m Model) Len() int {
	return len(m.entries)
}

// Index returns the position of the entry with the given path, or -1.
func (m Model) Index(path string) int {
	for i, e := range m.entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}
