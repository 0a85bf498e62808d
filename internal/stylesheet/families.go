package stylesheet

import (
	"sort"
	"strings"
)

func sides(prefix, suffix string) []string {
	return []string{
		prefix + "-top" + suffix,
		prefix + "-right" + suffix,
		prefix + "-bottom" + suffix,
		prefix + "-left" + suffix,
	}
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// shorthands maps CSS shorthand properties to the longhands they set.
// "p-2" (padding) thus overrides an earlier "pt-1" (padding-top).
var shorthands = map[string][]string{
	// Spacing
	"padding":        sides("padding", ""),
	"padding-inline": {"padding-left", "padding-right"},
	"padding-block":  {"padding-top", "padding-bottom"},
	"margin":         sides("margin", ""),
	"margin-inline":  {"margin-left", "margin-right"},
	"margin-block":   {"margin-top", "margin-bottom"},
	"inset":          {"top", "right", "bottom", "left"},
	"inset-inline":   {"left", "right"},
	"inset-block":    {"top", "bottom"},
	"gap":            {"row-gap", "column-gap"},
	"grid-gap":       {"row-gap", "column-gap"},
	"scroll-margin":  sides("scroll-margin", ""),
	"scroll-padding": sides("scroll-padding", ""),

	// Scrolling
	"overscroll-behavior": {"overscroll-behavior-x", "overscroll-behavior-y"},

	// Layout
	"overflow":      {"overflow-x", "overflow-y"},
	"flex":          {"flex-grow", "flex-shrink", "flex-basis"},
	"flex-flow":     {"flex-direction", "flex-wrap"},
	"place-items":   {"align-items", "justify-items"},
	"place-content": {"align-content", "justify-content"},
	"place-self":    {"align-self", "justify-self"},
	"grid-row":      {"grid-row-start", "grid-row-end"},
	"grid-column":   {"grid-column-start", "grid-column-end"},
	"grid-area":     {"grid-row-start", "grid-column-start", "grid-row-end", "grid-column-end"},
	"grid-template": {"grid-template-rows", "grid-template-columns", "grid-template-areas"},

	// Visual
	"border":        concat(sides("border", "-width"), sides("border", "-style"), sides("border", "-color")),
	"border-width":  sides("border", "-width"),
	"border-style":  sides("border", "-style"),
	"border-color":  sides("border", "-color"),
	"border-top":    {"border-top-width", "border-top-style", "border-top-color"},
	"border-right":  {"border-right-width", "border-right-style", "border-right-color"},
	"border-bottom": {"border-bottom-width", "border-bottom-style", "border-bottom-color"},
	"border-left":   {"border-left-width", "border-left-style", "border-left-color"},
	"border-inline": {"border-left-width", "border-left-style", "border-left-color", "border-right-width", "border-right-style", "border-right-color"},
	"border-block":  {"border-top-width", "border-top-style", "border-top-color", "border-bottom-width", "border-bottom-style", "border-bottom-color"},
	"border-radius": {"border-top-left-radius", "border-top-right-radius", "border-bottom-right-radius", "border-bottom-left-radius"},
	"outline":       {"outline-color", "outline-style", "outline-width"},
	"background": {
		"background-color", "background-image", "background-position", "background-size",
		"background-repeat", "background-attachment", "background-origin", "background-clip",
	},

	// Typography
	"font":            {"font-style", "font-variant", "font-weight", "font-stretch", "font-size", "line-height", "font-family"},
	"text-decoration": {"text-decoration-line", "text-decoration-color", "text-decoration-style", "text-decoration-thickness"},
	"list-style":      {"list-style-type", "list-style-position", "list-style-image"},

	// Effects
	"transition": {"transition-property", "transition-duration", "transition-timing-function", "transition-delay"},
	"animation": {
		"animation-name", "animation-duration", "animation-timing-function", "animation-delay",
		"animation-iteration-count", "animation-direction", "animation-fill-mode", "animation-play-state",
	},
}

// vendorPrefixes are dropped so that -webkit-backdrop-filter and
// backdrop-filter count as the same property.
var vendorPrefixes = []string{"-webkit-", "-moz-", "-ms-", "-o-"}

func normalizeProperty(name string) string {
	for _, prefix := range vendorPrefixes {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}

// expandProperty returns the longhands set by a property.
func expandProperty(name string) []string {
	name = normalizeProperty(name)
	if expanded, ok := shorthands[name]; ok {
		return expanded
	}
	return []string{name}
}

// longhands returns the sorted longhand properties a rule sets. Custom
// properties only count when the rule sets nothing else.
func longhands(props map[string]string) []string {
	seen := make(map[string]bool)
	var custom []string

	for name := range props {
		if strings.HasPrefix(name, "--") {
			custom = append(custom, name)
			continue
		}
		for _, l := range expandProperty(name) {
			seen[l] = true
		}
	}

	if len(seen) == 0 {
		sort.Strings(custom)
		return custom
	}

	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
