package stylesheet

import (
	"sort"
	"strings"
)

// Merger resolves class conflicts using the properties each class sets
// in a Sheet. A class is dropped when a later class, under the same
// modifiers, sets every property it sets. Classes the sheet does not
// know are always kept.
type Merger struct {
	sheet *Sheet
}

// NewMerger returns a merger backed by sheet.
func NewMerger(sheet *Sheet) *Merger {
	return &Merger{sheet: sheet}
}

// Merge implements clf.Merger.
func (m *Merger) Merge(classes string) string {
	tokens := strings.Fields(classes)
	if len(tokens) == 0 {
		return ""
	}

	seen := make(map[string]bool, len(tokens))
	claimed := make(map[string]bool)
	kept := make([]string, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if seen[token] {
			continue
		}
		seen[token] = true

		props := m.properties(token)
		if len(props) == 0 {
			kept = append(kept, token)
			continue
		}

		scope := scopeOf(token)
		overridden := true
		for _, p := range props {
			if !claimed[scope+"|"+p] {
				overridden = false
				break
			}
		}
		if overridden {
			continue
		}

		for _, p := range props {
			claimed[scope+"|"+p] = true
		}
		kept = append(kept, token)
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, " ")
}

// Conflicts returns the classes Merge would drop, in input order.
func (m *Merger) Conflicts(classes string) []string {
	merged := strings.Fields(m.Merge(classes))
	remaining := make(map[string]int, len(merged))
	for _, c := range merged {
		remaining[c]++
	}

	var dropped []string
	seen := make(map[string]bool)
	for _, c := range strings.Fields(classes) {
		if remaining[c] > 0 {
			continue
		}
		if !seen[c] {
			seen[c] = true
			dropped = append(dropped, c)
		}
	}
	return dropped
}

func (m *Merger) properties(token string) []string {
	_, _, utility := splitModifiers(token)
	if rule, ok := m.sheet.Lookup(utility); ok && len(rule.Properties) > 0 {
		return longhands(rule.Properties)
	}
	if rule, ok := m.sheet.Lookup(token); ok {
		return longhands(rule.Properties)
	}
	return nil
}

func scopeOf(token string) string {
	modifiers, important, _ := splitModifiers(token)
	sort.Strings(modifiers)
	scope := strings.Join(modifiers, ":")
	if important {
		scope += "!"
	}
	return scope
}

// splitModifiers splits "md:hover:!p-4" into its modifiers, the
// important flag and the bare utility. Colons inside [] or () belong
// to the utility: "[&>*]:p-2", "bg-[url(a:b)]".
func splitModifiers(class string) ([]string, bool, string) {
	var modifiers []string
	depth := 0
	start := 0

	for i := 0; i < len(class); i++ {
		switch class[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				modifiers = append(modifiers, class[start:i])
				start = i + 1
			}
		}
	}

	utility := class[start:]
	important := false
	switch {
	case strings.HasPrefix(utility, "!"):
		important = true
		utility = utility[1:]
	case strings.HasSuffix(utility, "!"):
		important = true
		utility = utility[:len(utility)-1]
	}
	return modifiers, important, utility
}
