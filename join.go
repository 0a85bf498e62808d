package clf

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Join concatenates the truthy parts with single spaces, in order.
//
// Accepted parts:
//   - string, []string and []any (flattened recursively)
//   - map[string]bool: keys whose value is true, sorted
//   - Value: strings and numbers, when truthy
//   - non-zero integers and floats
//   - fmt.Stringer
//
// nil, booleans, empty strings and zero numbers are dropped.
func Join(parts ...any) string {
	var b strings.Builder
	for _, part := range parts {
		appendPart(&b, part)
	}
	return b.String()
}

func appendPart(b *strings.Builder, part any) {
	switch t := part.(type) {
	case nil, bool:
	case string:
		appendTokens(b, t)
	case []string:
		for _, s := range t {
			appendTokens(b, s)
		}
	case []any:
		for _, p := range t {
			appendPart(b, p)
		}
	case map[string]bool:
		keys := make([]string, 0, len(t))
		for k, on := range t {
			if on {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendTokens(b, k)
		}
	case Value:
		if t.kind == KindBool || (t.kind == KindNumber && t.num == 0) {
			return
		}
		if s, ok := t.Key(); ok {
			appendTokens(b, s)
		}
	case int:
		if t != 0 {
			appendTokens(b, strconv.Itoa(t))
		}
	case int64:
		if t != 0 {
			appendTokens(b, strconv.FormatInt(t, 10))
		}
	case float64:
		if t != 0 && !math.IsNaN(t) {
			appendTokens(b, formatNumber(t))
		}
	case fmt.Stringer:
		appendTokens(b, t.String())
	}
}

func appendTokens(b *strings.Builder, s string) {
	for _, tok := range strings.Fields(s) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
}
