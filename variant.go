package clf

import (
	"sort"
	"strings"
)

// Func resolves the class string for one set of props.
type Func func(Props) string

// Option configures a resolver built by Make.
type Option func(*options)

type options struct {
	merger Merger
}

// WithMerger sets the merger applied to the joined classes.
// A nil merger leaves the default in place.
func WithMerger(m Merger) Option {
	return func(o *options) {
		if m != nil {
			o.merger = m
		}
	}
}

// Make returns a resolver for base and src. src may be nil, a Config or
// a ConfigFunc; a ConfigFunc runs on every call with that call's props.
func Make(base string, src Source, opts ...Option) Func {
	o := options{merger: DefaultMerger}
	for _, opt := range opts {
		opt(&o)
	}

	return func(p Props) string {
		cfg := resolveConfig(src, p)
		return o.merger.Merge(Join(
			base,
			variantClasses(cfg, p),
			responsiveClasses(cfg.Responsive),
			cfg.ClassName,
			cfg.Class,
		))
	}
}

// variantClasses returns one fragment per variant, ordered by variant name.
func variantClasses(cfg Config, p Props) []string {
	names := sortedKeys(cfg.Variants)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, variantClass(cfg.Variants[name], p.Get(name), cfg.DefaultVariants[name]))
	}
	return out
}

func variantClass(choices map[string]string, chosen, fallback Value) string {
	// Explicit opt-out
	if chosen.IsNull() && fallback.IsNull() {
		return ""
	}

	key, ok := chosen.Key()
	if !ok {
		key, ok = fallback.Key()
	}
	if !ok {
		return ""
	}
	return choices[key]
}

// responsiveClasses prefixes each utility with its breakpoint label.
// Labels are applied mobile-first; unknown labels follow, by name.
func responsiveClasses(responsive map[string]string) []string {
	labels := sortedKeys(responsive)
	sort.SliceStable(labels, func(i, j int) bool {
		return breakpointRank(labels[i]) < breakpointRank(labels[j])
	})

	var out []string
	for _, label := range labels {
		if label == "" {
			continue
		}
		for _, token := range strings.Fields(responsive[label]) {
			out = append(out, label+":"+token)
		}
	}
	return out
}

var breakpoints = []string{"sm", "md", "lg", "xl", "2xl"}

func breakpointRank(label string) int {
	for i, bp := range breakpoints {
		if bp == label {
			return i
		}
	}
	return len(breakpoints)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
