// Package registry loads named component definitions from configuration
// and turns them into resolver functions.
package registry

import (
	"fmt"
	"sort"

	"github.com/knadh/koanf/v2"

	"github.com/yacobolo/clf"
)

// Component is the configuration of one named component.
type Component struct {
	Base            string                       `koanf:"base" json:"base,omitempty"`
	Variants        map[string]map[string]string `koanf:"variants" json:"variants,omitempty"`
	DefaultVariants map[string]any               `koanf:"defaultVariants" json:"defaultVariants,omitempty"`
	Responsive      map[string]string            `koanf:"responsive" json:"responsive,omitempty"`
	ClassName       string                       `koanf:"className" json:"className,omitempty"`
	Class           string                       `koanf:"class" json:"class,omitempty"`
}

// Config converts the component into a resolver configuration.
func (c Component) Config() clf.Config {
	return clf.Config{
		Variants:        c.Variants,
		DefaultVariants: clf.Defaults(c.DefaultVariants),
		Responsive:      c.Responsive,
		ClassName:       c.ClassName,
		Class:           c.Class,
	}
}

// Resolver returns a resolver for the component. The "className" and
// "class" props of a call are appended after the component's own
// classes, so they win conflicts.
func (c Component) Resolver(m clf.Merger) clf.Func {
	cfg := c.Config()
	src := clf.ConfigFunc(func(p clf.Props) clf.Config {
		out := cfg
		out.ClassName = clf.Join(cfg.ClassName, p.Get("className"))
		out.Class = clf.Join(cfg.Class, p.Get("class"))
		return out
	})
	return clf.Make(c.Base, src, clf.WithMerger(m))
}

// Registry holds components by name.
type Registry map[string]Component

// Load decodes the components stored under path in k.
func Load(k *koanf.Koanf, path string) (Registry, error) {
	reg := make(Registry)
	if !k.Exists(path) {
		return reg, nil
	}
	if err := k.Unmarshal(path, &reg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return reg, nil
}

// Names returns the component names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named component.
func (r Registry) Get(name string) (Component, error) {
	c, ok := r[name]
	if !ok {
		return Component{}, fmt.Errorf("unknown component %q", name)
	}
	return c, nil
}
