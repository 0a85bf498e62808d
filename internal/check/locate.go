package check

import "strings"

// locator finds config keys and classes in the config source text.
type locator struct {
	filename string
	lines    []string
}

func newLocator(filename string, source []byte) *locator {
	var lines []string
	if len(source) > 0 {
		lines = strings.Split(strings.ReplaceAll(string(source), "\r\n", "\n"), "\n")
	}
	return &locator{filename: filename, lines: lines}
}

// find follows path through the source: each element is searched for
// at or after the line where the previous one was found. Elements that
// cannot be found are skipped, so the result is the deepest match.
func (l *locator) find(path ...string) (IssuePos, []string) {
	pos := IssuePos{Filename: l.filename}
	if len(l.lines) == 0 {
		return pos, nil
	}

	start := 0
	for _, needle := range path {
		if needle == "" {
			continue
		}
		for i := start; i < len(l.lines); i++ {
			if col := findColumn(l.lines[i], needle); col > 0 {
				pos.Line = i + 1
				pos.Column = col
				start = i
				break
			}
		}
	}

	if pos.Line == 0 {
		return pos, nil
	}
	return pos, []string{l.lines[pos.Line-1]}
}

// findColumn returns the 1-based column of target in line, or 0.
// Quoted occurrences are preferred, then whole-token matches.
func findColumn(line string, target string) int {
	for _, q := range []string{`"`, `'`} {
		if idx := strings.Index(line, q+target+q); idx != -1 {
			return idx + 2 // +1 for 1-based, +1 to skip quote
		}
	}

	for off := 0; off < len(line); {
		idx := strings.Index(line[off:], target)
		if idx == -1 {
			return 0
		}
		idx += off
		end := idx + len(target)
		if (idx == 0 || isBoundary(line[idx-1], false)) && (end == len(line) || isBoundary(line[end], true)) {
			return idx + 1
		}
		off = idx + 1
	}
	return 0
}

func isBoundary(c byte, after bool) bool {
	switch c {
	case ' ', '\t', '"', '\'', '=', ',', '[', ']', '{', '}', '.':
		return true
	case ':':
		// "sm:" is a key; "md:p-4" is not "p-4"
		return after
	}
	return false
}
