package clf

import (
	"strings"
	"sync"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Merger resolves conflicting utility classes in a joined class string.
type Merger interface {
	Merge(classes string) string
}

// MergerFunc adapts a function to the Merger interface.
type MergerFunc func(string) string

// Merge calls f(classes).
func (f MergerFunc) Merge(classes string) string { return f(classes) }

// DefaultMerger is used by Make and Merge unless WithMerger says otherwise.
var DefaultMerger Merger = &TailwindMerger{}

// TailwindMerger resolves conflicts using Tailwind CSS naming conventions:
// the last class of each utility group wins ("p-2 p-4" becomes "p-4",
// "px-2 p-4" becomes "p-4", "md:p-2 p-4" is kept as is).
type TailwindMerger struct{}

// twmerge keeps a package-level result cache without locking.
var twmergeMu sync.Mutex

// Merge implements Merger. twmerge decides which classes survive; the
// result keeps them in input order.
func (*TailwindMerger) Merge(classes string) string {
	tokens := strings.Fields(classes)
	if len(tokens) == 0 {
		return ""
	}

	twmergeMu.Lock()
	merged := twmerge.Merge(strings.Join(tokens, " "))
	twmergeMu.Unlock()

	survivors := make(map[string]bool)
	for _, token := range strings.Fields(merged) {
		survivors[token] = true
	}
	return keepLast(tokens, func(token string) bool { return survivors[token] })
}

// DedupMerger only removes exact duplicate tokens, keeping the last
// occurrence of each.
type DedupMerger struct{}

// Merge implements Merger.
func (DedupMerger) Merge(classes string) string {
	return keepLast(strings.Fields(classes), func(string) bool { return true })
}

// keepLast returns the tokens accepted by keep in input order, keeping
// only the last occurrence of duplicates.
func keepLast(tokens []string, keep func(string) bool) string {
	seen := make(map[string]bool, len(tokens))
	kept := make([]string, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		if seen[tokens[i]] {
			continue
		}
		seen[tokens[i]] = true
		if keep(tokens[i]) {
			kept = append(kept, tokens[i])
		}
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, " ")
}

// Merge joins parts like Join and merges the result with DefaultMerger.
//
//	clf.Merge("px-2 py-1", map[string]bool{"bg-blue-500": active}, props.Get("class"))
func Merge(parts ...any) string {
	return DefaultMerger.Merge(Join(parts...))
}
