// Package catalog provides the static career attribute lookup used by the
// match-scoring engine. Built-in entries cover the common tech careers; extra
// entries can be loaded from YAML files in a content directory.
package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

var fold = cases.Fold()

// Catalog maps case-folded career titles to their attribute sets.
type Catalog struct {
	entries map[string]CareerAttributes
	mu      sync.RWMutex
}

// New creates a catalog pre-populated with the built-in career entries.
func New() *Catalog {
	c := &Catalog{
		entries: make(map[string]CareerAttributes),
	}
	for _, attrs := range builtinEntries() {
		c.entries[fold.String(attrs.Title)] = attrs
	}
	return c
}

// NewFromDir creates a catalog with the built-in entries plus any entries found
// in YAML files under rootDir. Files that fail schema validation are skipped
// with a warning, matching the lenient content-loading behavior elsewhere in
// the service.
func NewFromDir(rootDir string) (*Catalog, error) {
	c := New()
	if err := c.loadDir(rootDir); err != nil {
		return nil, fmt.Errorf("loading catalog content: %w", err)
	}
	slog.Info("career catalog loaded", "entries", len(c.entries))
	return c, nil
}

// AttributesFor returns the attribute set for a career title. Lookup is
// case-insensitive. Unknown titles return the neutral default set; this is an
// explicit fallback, not a failure.
func (c *Catalog) AttributesFor(title string) CareerAttributes {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if attrs, ok := c.entries[fold.String(title)]; ok {
		return attrs
	}
	return DefaultAttributes(title)
}

// Known reports whether the catalog has a dedicated entry for a title.
func (c *Catalog) Known(title string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[fold.String(title)]
	return ok
}

// Titles returns the titles of all catalog entries, sorted.
func (c *Catalog) Titles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	titles := make([]string, 0, len(c.entries))
	for _, attrs := range c.entries {
		titles = append(titles, attrs.Title)
	}
	sort.Strings(titles)
	return titles
}

func (c *Catalog) loadDir(rootDir string) error {
	return filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		return c.loadEntry(path)
	})
}

func (c *Catalog) loadEntry(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := validateEntry(data); err != nil {
		slog.Warn("skipping invalid catalog entry", "path", path, "error", err)
		return nil
	}

	var attrs CareerAttributes
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		slog.Warn("skipping unreadable catalog entry", "path", path, "error", err)
		return nil
	}
	if attrs.Title == "" {
		return nil // Not a catalog entry file
	}
	if attrs.TechRequirements == "" {
		attrs.TechRequirements = TechModerate
	}

	c.mu.Lock()
	c.entries[fold.String(attrs.Title)] = attrs
	c.mu.Unlock()

	return nil
}

// builtinEntries returns the attribute constants for the careers the product
// ships with. Trait values were tuned by hand against the assessment question
// bank.
func builtinEntries() []CareerAttributes {
	return []CareerAttributes{
		{
			Title:              "Frontend Developer",
			RequiredSkills:     []string{"html", "css", "javascript"},
			VisualOrientation:  0.8,
			LogicalOrientation: 0.6,
			Creativity:         0.7,
			DetailOrientation:  0.8,
			Collaboration:      0.7,
			IndependentWork:    0.6,
			LearningCurve:      0.6,
			RemoteFriendly:     0.9,
			TechRequirements:   TechModerate,
			ProjectTypes:       []string{"websites", "mobile applications", "user interfaces"},
			Technologies:       []string{"html", "css", "javascript", "react", "angular", "vue"},
		},
		{
			Title:              "Backend Developer",
			RequiredSkills:     []string{"programming", "databases", "apis"},
			VisualOrientation:  0.3,
			LogicalOrientation: 0.9,
			Creativity:         0.5,
			DetailOrientation:  0.8,
			Collaboration:      0.6,
			IndependentWork:    0.8,
			LearningCurve:      0.7,
			RemoteFriendly:     0.9,
			TechRequirements:   TechModerate,
			ProjectTypes:       []string{"apis", "databases", "server applications"},
			Technologies:       []string{"java", "python", "node.js", "sql", "nosql"},
		},
		{
			Title:              "Data Scientist",
			RequiredSkills:     []string{"statistics", "python", "sql"},
			VisualOrientation:  0.6,
			LogicalOrientation: 0.9,
			Creativity:         0.6,
			DetailOrientation:  0.8,
			Collaboration:      0.6,
			IndependentWork:    0.8,
			LearningCurve:      0.8,
			RemoteFriendly:     0.8,
			TechRequirements:   TechHigh,
			ProjectTypes:       []string{"data analysis", "machine learning", "visualization"},
			Technologies:       []string{"python", "r", "sql", "machine learning", "statistics"},
		},
		{
			Title:              "UX Designer",
			RequiredSkills:     []string{"design", "user research", "prototyping"},
			VisualOrientation:  0.9,
			LogicalOrientation: 0.7,
			Creativity:         0.9,
			DetailOrientation:  0.8,
			Collaboration:      0.8,
			IndependentWork:    0.6,
			LearningCurve:      0.6,
			RemoteFriendly:     0.8,
			TechRequirements:   TechModerate,
			ProjectTypes:       []string{"user interfaces", "user research", "prototyping"},
			Technologies:       []string{"figma", "sketch", "adobe xd", "user testing"},
		},
		{
			Title:              "Cybersecurity Specialist",
			RequiredSkills:     []string{"networking", "linux", "security"},
			VisualOrientation:  0.5,
			LogicalOrientation: 0.9,
			Creativity:         0.6,
			DetailOrientation:  0.9,
			Collaboration:      0.6,
			IndependentWork:    0.8,
			LearningCurve:      0.8,
			RemoteFriendly:     0.7,
			TechRequirements:   TechHigh,
			ProjectTypes:       []string{"security systems", "penetration testing", "risk assessment"},
			Technologies:       []string{"networking", "linux", "security tools", "cryptography"},
		},
	}
}
