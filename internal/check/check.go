// Package check reports problems in component configurations: defaults
// that match no option, empty variants and breakpoints, classes that
// conflict with each other and classes missing from the stylesheets.
package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/clf"
	"github.com/yacobolo/clf/internal/registry"
	"github.com/yacobolo/clf/internal/stylesheet"
)

// Options configures a check run.
type Options struct {
	Filename string            // config file reported in issue positions
	Source   []byte            // config file contents, for line/column lookup
	Merger   clf.Merger        // conflict detection; nil disables it
	Sheet    *stylesheet.Sheet // class existence; nil disables it
}

// Result holds the issues found by Run.
type Result struct {
	Issues            []Issue
	ComponentsChecked int
	ClassesChecked    int
}

// Errors returns the number of error-severity issues.
func (r *Result) Errors() int { return r.count(SeverityError) }

// Warnings returns the number of warning-severity issues.
func (r *Result) Warnings() int { return r.count(SeverityWarning) }

func (r *Result) count(severity string) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

type checker struct {
	opts    Options
	loc     *locator
	result  *Result
	name    string
	checked map[string]bool // classes already looked up for this component
}

// Run checks every component in reg. Components are visited in name
// order and issues are appended in the order they are found.
func Run(reg registry.Registry, opts Options) *Result {
	c := &checker{
		opts:   opts,
		loc:    newLocator(opts.Filename, opts.Source),
		result: &Result{},
	}

	for _, name := range reg.Names() {
		c.component(name, reg[name])
		c.result.ComponentsChecked++
	}
	return c.result
}

func (c *checker) component(name string, comp registry.Component) {
	c.name = name
	c.checked = make(map[string]bool)

	c.classes(comp.Base, "", "base")

	variants := sortedKeys(comp.Variants)
	for _, variant := range variants {
		options := comp.Variants[variant]
		if len(options) == 0 {
			c.report(SeverityWarning, fmt.Sprintf(IssueEmptyVariant, variant), "variants", variant)
			continue
		}
		for _, option := range sortedKeys(options) {
			c.classes(options[option], "", "variants", variant, option)
		}
	}

	for _, variant := range sortedKeys(comp.DefaultVariants) {
		key, ok := clf.ValueOf(comp.DefaultVariants[variant]).Key()
		if !ok {
			// null and empty defaults select nothing
			continue
		}
		if _, exists := comp.Variants[variant][key]; !exists {
			c.report(SeverityWarning, fmt.Sprintf(IssueUnknownDefault, key, variant), "defaultVariants", variant, key)
		}
	}

	for _, bp := range sortedKeys(comp.Responsive) {
		classes := comp.Responsive[bp]
		if strings.TrimSpace(classes) == "" {
			c.report(SeverityWarning, fmt.Sprintf(IssueEmptyBreakpoint, bp), "responsive", bp)
			continue
		}
		c.classes(classes, bp, "responsive", bp)
	}

	c.classes(comp.ClassName, "", "className")
	c.classes(comp.Class, "", "class")
}

// classes checks one class string found at path. prefix is the
// breakpoint applied to responsive classes.
func (c *checker) classes(classes string, prefix string, path ...string) {
	tokens := strings.Fields(classes)
	if len(tokens) == 0 {
		return
	}

	if c.opts.Merger != nil {
		normalized := strings.Join(tokens, " ")
		// A merger only ever drops tokens, so a shorter result means a conflict.
		if merged := c.opts.Merger.Merge(normalized); len(strings.Fields(merged)) < len(tokens) {
			where := c.name + "." + strings.Join(path, ".")
			c.report(SeverityWarning, fmt.Sprintf(IssueConflict, where, normalized, merged), path...)
		}
	}

	if c.opts.Sheet == nil {
		return
	}
	for _, token := range tokens {
		if c.checked[prefix+"|"+token] {
			continue
		}
		c.checked[prefix+"|"+token] = true
		c.result.ClassesChecked++

		class := token
		if prefix != "" {
			class = prefix + ":" + token
		}
		if !c.opts.Sheet.Has(class) {
			c.report(SeverityError, fmt.Sprintf(IssueUnknownClass, class), append(path, token)...)
		}
	}
}

func (c *checker) report(severity, text string, path ...string) {
	pos, lines := c.loc.find(append([]string{"components", c.name}, path...)...)
	c.result.Issues = append(c.result.Issues, Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		Component:   c.name,
		SourceLines: lines,
		Pos:         pos,
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
