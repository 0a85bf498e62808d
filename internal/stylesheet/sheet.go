package stylesheet

import (
	"fmt"
	"io"
	"os"
)

// Sheet indexes class rules from one or more stylesheets. Later files
// extend rules of the same name.
type Sheet struct {
	rules map[string]*Rule
	files []string
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{rules: make(map[string]*Rule)}
}

// Load discovers the files matching patterns and adds each of them.
func Load(patterns []string) (*Sheet, ScanStats, error) {
	files, stats, err := Discover(patterns)
	if err != nil {
		return nil, stats, fmt.Errorf("scan failed: %w", err)
	}

	sheet := NewSheet()
	for _, file := range files {
		if err := sheet.AddFile(file); err != nil {
			return nil, stats, err
		}
	}
	return sheet, stats, nil
}

// AddFile parses the stylesheet at path.
func (s *Sheet) AddFile(path string) error {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	defer f.Close()

	return s.Add(f, path)
}

// Add parses CSS from r; name is recorded as the rules' source file.
func (s *Sheet) Add(r io.Reader, name string) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	rules, err := Parse(string(content), name)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	for _, rule := range rules {
		existing, ok := s.rules[rule.Name]
		if !ok {
			s.rules[rule.Name] = rule
			continue
		}
		for k, v := range rule.Properties {
			existing.Properties[k] = v
		}
		for _, ps := range rule.PseudoStates {
			if !contains(existing.PseudoStates, ps) {
				existing.PseudoStates = append(existing.PseudoStates, ps)
			}
		}
	}
	s.files = append(s.files, name)
	return nil
}

// Lookup returns the rule for a class name.
func (s *Sheet) Lookup(class string) (*Rule, bool) {
	if s == nil {
		return nil, false
	}
	rule, ok := s.rules[class]
	return rule, ok
}

// Has reports whether a class is defined. Modified utilities like
// "md:hover:p-4" are defined when either the full name or "p-4" is.
func (s *Sheet) Has(class string) bool {
	if _, ok := s.Lookup(class); ok {
		return true
	}
	_, _, utility := splitModifiers(class)
	_, ok := s.Lookup(utility)
	return ok
}

// Len returns the number of classes in the sheet.
func (s *Sheet) Len() int { return len(s.rules) }

// Files returns the stylesheets added so far, in order.
func (s *Sheet) Files() []string { return s.files }
