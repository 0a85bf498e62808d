// Package stylesheet learns which CSS properties each class sets and
// merges class lists by those properties.
package stylesheet

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Rule is everything known about one class selector.
type Rule struct {
	Name         string            // "md:flex-row" (unescaped)
	Properties   map[string]string // declarations of the plain selector
	PseudoStates []string          // [":hover", ":focus"]
	Layer        string            // "utilities"
	Media        string            // "(min-width: 768px)"
	SourceFile   string
}

type blockKind int

const (
	blockPlain blockKind = iota
	blockLayer
	blockMedia
)

type block struct {
	kind  blockKind
	value string
}

// parserState maintains context while parsing CSS
type parserState struct {
	blocks   []block
	rules    map[string]*Rule
	order    []string
	filename string
}

// Parse parses CSS content and returns its class rules in source order.
func Parse(content string, filename string) ([]*Rule, error) {
	state := &parserState{
		rules:    make(map[string]*Rule),
		filename: filename,
	}

	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		switch {
		case tt == css.AtKeywordToken:
			state.handleAtRule(lexer, string(text))
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			state.handleClassRule(lexer)
		case tt == css.LeftBraceToken:
			// Element, id or attribute selector block
			state.skipBlock(lexer)
		case tt == css.RightBraceToken:
			state.pop()
		}
	}

	result := make([]*Rule, 0, len(state.order))
	for _, name := range state.order {
		result = append(result, state.rules[name])
	}
	return result, nil
}

func (s *parserState) pop() {
	if len(s.blocks) > 0 {
		s.blocks = s.blocks[:len(s.blocks)-1]
	}
}

func (s *parserState) layer() string {
	for i := len(s.blocks) - 1; i >= 0; i-- {
		if s.blocks[i].kind == blockLayer {
			return s.blocks[i].value
		}
	}
	return ""
}

func (s *parserState) media() string {
	var parts []string
	for _, b := range s.blocks {
		if b.kind == blockMedia {
			parts = append(parts, b.value)
		}
	}
	return strings.Join(parts, " and ")
}

// handleAtRule processes @layer, @media and friends up to their { or ;
func (s *parserState) handleAtRule(lexer *css.Lexer, keyword string) {
	var prelude strings.Builder
	var layerName string

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken, css.SemicolonToken:
			// @import ...; or @layer a, b;
			return
		case css.IdentToken:
			if layerName == "" {
				layerName = string(text)
			}
		case css.LeftBraceToken:
			switch keyword {
			case "@layer":
				s.blocks = append(s.blocks, block{kind: blockLayer, value: layerName})
			case "@media", "@container", "@supports":
				s.blocks = append(s.blocks, block{kind: blockMedia, value: strings.TrimSpace(prelude.String())})
			case "@keyframes", "@-webkit-keyframes", "@font-face", "@property", "@page":
				s.skipBlock(lexer)
				return
			default:
				s.blocks = append(s.blocks, block{kind: blockPlain})
			}
			return
		}
		prelude.Write(text)
	}
}

// skipBlock consumes tokens up to the } matching an already read {.
func (s *parserState) skipBlock(lexer *css.Lexer) {
	depth := 1
	for depth > 0 {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

type selectorInfo struct {
	className    string
	pseudoStates []string
	subject      bool // last class of its comma-separated selector
}

// handleClassRule processes a class selector list and its declarations.
// In ".dark .dark\:bg-black, .card" only the last class of each
// selector receives the declarations; the others are context.
func (s *parserState) handleClassRule(lexer *css.Lexer) {
	// At this point we've seen a '.', read the class name
	tt, classNameBytes := lexer.Next()
	if tt != css.IdentToken {
		return
	}

	selectors := []selectorInfo{{className: unescape(string(classNameBytes))}}
	currentIdx := 0

	for {
		tt, text := lexer.Next()
		switch {
		case tt == css.ErrorToken:
			return

		// Compound and descendant selectors (.foo.bar, .group .item)
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			tt2, name := lexer.Next()
			if tt2 == css.IdentToken {
				selectors = append(selectors, selectorInfo{className: unescape(string(name))})
				currentIdx = len(selectors) - 1
			}

		case tt == css.ColonToken:
			tt2, text2 := lexer.Next()
			switch tt2 {
			case css.ColonToken:
				// ::before and friends
				if tt3, text3 := lexer.Next(); tt3 == css.IdentToken {
					selectors[currentIdx].pseudoStates = append(selectors[currentIdx].pseudoStates, "::"+string(text3))
				}
			case css.IdentToken:
				selectors[currentIdx].pseudoStates = append(selectors[currentIdx].pseudoStates, ":"+string(text2))
			case css.FunctionToken:
				// :not(.foo), :is(...), :where(...)
				selectors[currentIdx].pseudoStates = append(selectors[currentIdx].pseudoStates, ":"+strings.TrimSuffix(string(text2), "("))
				skipParens(lexer)
			}

		case tt == css.CommaToken:
			selectors[currentIdx].subject = true

		case tt == css.LeftBraceToken:
			selectors[currentIdx].subject = true
			s.apply(selectors, s.extractDeclarations(lexer))
			return
		}
	}
}

func skipParens(lexer *css.Lexer) {
	depth := 1
	for depth > 0 {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
	}
}

func (s *parserState) apply(selectors []selectorInfo, properties map[string]string) {
	for _, sel := range selectors {
		rule, exists := s.rules[sel.className]
		if !exists {
			rule = &Rule{
				Name:       sel.className,
				Properties: make(map[string]string),
				Layer:      s.layer(),
				Media:      s.media(),
				SourceFile: s.filename,
			}
			s.rules[sel.className] = rule
			s.order = append(s.order, sel.className)
		}

		if !sel.subject {
			continue
		}

		if len(sel.pseudoStates) > 0 {
			for _, ps := range sel.pseudoStates {
				if !contains(rule.PseudoStates, ps) {
					rule.PseudoStates = append(rule.PseudoStates, ps)
				}
			}
			continue
		}

		for k, v := range properties {
			rule.Properties[k] = v
		}
	}
}

// extractDeclarations reads property: value pairs until }
func (s *parserState) extractDeclarations(lexer *css.Lexer) map[string]string {
	props := make(map[string]string)

	var currentProp string
	var currentVal []string
	depth := 0

	save := func() {
		if currentProp != "" && len(currentVal) > 0 {
			props[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
		}
		currentProp = ""
		currentVal = nil
	}

	for {
		tt, text := lexer.Next()

		switch {
		case tt == css.ErrorToken:
			save()
			return props
		case tt == css.LeftBraceToken:
			// Nested rule; its declarations do not belong to this class
			depth++
			currentProp = ""
			currentVal = nil
		case tt == css.RightBraceToken:
			if depth == 0 {
				save()
				return props
			}
			depth--
		case depth > 0:
		case tt == css.AtKeywordToken && currentProp == "":
			// @apply and other at-rules inside a block
			if skipStatement(lexer) {
				save()
				return props
			}
		case tt == css.WhitespaceToken && len(currentVal) == 0:
		case currentProp == "" && isPropertyName(tt, text):
			currentProp = strings.ToLower(string(text))
		case tt == css.ColonToken && len(currentVal) == 0:
			// Separator between property and value
		case tt == css.SemicolonToken:
			save()
		case currentProp != "":
			currentVal = append(currentVal, string(text))
		}
	}
}

// skipStatement consumes tokens up to the next ; and reports whether
// the enclosing block's } was reached instead.
func skipStatement(lexer *css.Lexer) bool {
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken, css.RightBraceToken:
			return true
		case css.SemicolonToken:
			return false
		}
	}
}

func isPropertyName(tt css.TokenType, text []byte) bool {
	if tt == css.IdentToken {
		return true
	}
	// Custom properties (--tw-ring-color)
	return len(text) > 2 && text[0] == '-' && text[1] == '-'
}

// unescape decodes CSS identifier escapes: "md\:p-4" -> "md:p-4",
// "w-1\.5" -> "w-1.5", "\32xl\:p-4" -> "2xl:p-4".
func unescape(ident string) string {
	if !strings.Contains(ident, `\`) {
		return ident
	}

	var b strings.Builder
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c != '\\' || i+1 >= len(ident) {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(ident) && j-i <= 6 && isHex(ident[j]) {
			j++
		}
		if j == i+1 {
			b.WriteByte(ident[j])
			i = j
			continue
		}

		var r rune
		for _, h := range ident[i+1 : j] {
			r = r*16 + hexValue(byte(h))
		}
		b.WriteRune(r)
		// A single whitespace terminates a hex escape
		if j < len(ident) && ident[j] == ' ' {
			j++
		}
		i = j - 1
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexValue(c byte) rune {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0')
	case 'a' <= c && c <= 'f':
		return rune(c-'a') + 10
	}
	return rune(c-'A') + 10
}

// contains checks if a string slice contains a value
func contains(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}
