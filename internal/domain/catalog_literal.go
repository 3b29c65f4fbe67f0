package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	errNoObjectLiteral   = errors.New("no object literal found")
	errUnbalancedLiteral = errors.New("unbalanced object literal")

	exportDefaultPattern = regexp.MustCompile(`export\s+default\b|module\.exports\s*=`)
	scanKeyPattern       = regexp.MustCompile(`^\s*(?:(?:'([^']+)'|"([^"]+)"|([\w$-]+))\s*:\s*)`)
)

// parseObjectLiteral extracts the exported object literal of a locale module,
// normalizes it to JSON and decodes it.
func parseObjectLiteral(source string) (map[string]interface{}, error) {
	literal, err := extractObjectLiteral(source)
	if err != nil {
		return nil, err
	}

	normalized, err := normalizeObjectLiteral(literal)
	if err != nil {
		return nil, err
	}

	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(normalized), &tree); err != nil {
		return nil, fmt.Errorf("decode normalized literal: %w", err)
	}

	return tree, nil
}

// extractObjectLiteral returns the balanced {...} text following the default
// export, or the first object literal in the file.
func extractObjectLiteral(source string) (string, error) {
	from := 0
	if loc := exportDefaultPattern.FindStringIndex(source); loc != nil {
		from = loc[1]
	}

	start := indexOutsideCode(source, from, '{')
	if start < 0 && from > 0 {
		start = indexOutsideCode(source, 0, '{')
	}

	if start < 0 {
		return "", errNoObjectLiteral
	}

	depth := 0
	s := newLiteralScanner(source, start)

	for !s.done() {
		c := s.peek()

		switch {
		case s.skipComment():
			continue
		case c == '\'' || c == '"' || c == '`':
			if _, err := s.readString(); err != nil {
				return "", err
			}

			continue
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return source[start : s.pos+1], nil
			}
		}

		s.pos++
	}

	return "", errUnbalancedLiteral
}

// indexOutsideCode finds the first c at or after from that is not inside a
// comment or string.
func indexOutsideCode(source string, from int, c byte) int {
	s := newLiteralScanner(source, from)

	for !s.done() {
		switch {
		case s.skipComment():
			continue
		case s.peek() == '\'' || s.peek() == '"' || s.peek() == '`':
			if _, err := s.readString(); err != nil {
				return -1
			}

			continue
		case s.peek() == c:
			return s.pos
		}

		s.pos++
	}

	return -1
}

// normalizeObjectLiteral rewrites a JavaScript object literal as strict JSON:
// comments are dropped, strings are re-quoted, bare keys are quoted and
// trailing commas are removed. Anything that is not plain data (spreads,
// references, calls, interpolated templates) is an error.
func normalizeObjectLiteral(literal string) (string, error) {
	var out strings.Builder

	s := newLiteralScanner(literal, 0)

	for !s.done() {
		c := s.peek()

		switch {
		case s.skipComment():
		case c == '\'' || c == '"' || c == '`':
			value, err := s.readString()
			if err != nil {
				return "", err
			}

			quoted, _ := json.Marshal(value)
			out.Write(quoted)
		case c == '}' || c == ']':
			trimTrailingComma(&out)
			out.WriteByte(c)
			s.pos++
		case isIdentStart(c):
			ident := s.readIdent()
			if s.nextNonSpace() == ':' {
				quoted, _ := json.Marshal(ident)
				out.Write(quoted)

				continue
			}

			switch ident {
			case "true", "false", "null":
				out.WriteString(ident)
			default:
				return "", fmt.Errorf("unsupported identifier %q in literal", ident)
			}
		case c == '-' || c == '.' || (c >= '0' && c <= '9'):
			num := s.readNumber()
			if _, err := strconv.ParseFloat(num, 64); err != nil {
				return "", fmt.Errorf("unsupported number %q in literal", num)
			}

			out.WriteString(num)
		case strings.IndexByte("{[:, \t\r\n", c) >= 0:
			out.WriteByte(c)
			s.pos++
		default:
			return "", fmt.Errorf("unexpected %q at offset %d", c, s.pos)
		}
	}

	return out.String(), nil
}

func trimTrailingComma(out *strings.Builder) {
	text := strings.TrimRight(out.String(), " \t\r\n")
	if strings.HasSuffix(text, ",") {
		text = text[:len(text)-1]
		out.Reset()
		out.WriteString(text)
	}
}

// scanObjectLiteral is the fallback parser. It walks the source line by line,
// tracking nested objects on a stack, and keeps single-line quoted values.
// Arrays and multi-line strings are not recognised: anything nested in them is
// tracked by a nil frame so its braces stay balanced and its pairs are dropped.
func scanObjectLiteral(source string) map[string]interface{} {
	root := make(map[string]interface{})

	var stack []map[string]interface{}

	for _, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "/*") {
			continue
		}

		if len(stack) == 0 {
			if strings.HasSuffix(line, "{") && !scanKeyPattern.MatchString(line) {
				stack = append(stack, root)
			}

			continue
		}

		for len(line) > 0 && (line[0] == '}' || line[0] == ']') {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return root
			}

			line = strings.TrimLeft(line[1:], " \t,;)")
		}

		if line == "" {
			continue
		}

		current := stack[len(stack)-1]

		loc := scanKeyPattern.FindStringSubmatchIndex(line)
		if loc == nil || current == nil {
			stack = adjustDepth(stack, bracketDelta(line))
			if len(stack) == 0 {
				return root
			}

			continue
		}

		key := firstGroup(line, loc)
		rest := strings.TrimSpace(line[loc[1]:])

		if rest == "{" {
			child := make(map[string]interface{})
			current[key] = child
			stack = append(stack, child)

			continue
		}

		if value, ok := scanStringValue(rest); ok {
			current[key] = value
			continue
		}

		stack = adjustDepth(stack, bracketDelta(rest))
		if len(stack) == 0 {
			return root
		}
	}

	return root
}

// adjustDepth pushes nil frames for unmatched openers and pops one frame per
// unmatched closer.
func adjustDepth(stack []map[string]interface{}, delta int) []map[string]interface{} {
	for ; delta > 0; delta-- {
		stack = append(stack, nil)
	}

	for ; delta < 0 && len(stack) > 0; delta++ {
		stack = stack[:len(stack)-1]
	}

	return stack
}

// bracketDelta counts braces and brackets outside string literals.
func bracketDelta(line string) int {
	delta := 0

	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case quote != 0 && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '{' || c == '[':
			delta++
		case c == '}' || c == ']':
			delta--
		}
	}

	return delta
}

func firstGroup(line string, loc []int) string {
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] >= 0 {
			return line[loc[i]:loc[i+1]]
		}
	}

	return ""
}

// scanStringValue accepts a single-line quoted value with an optional trailing comma.
func scanStringValue(rest string) (string, bool) {
	rest = strings.TrimSuffix(strings.TrimSpace(rest), ",")
	rest = strings.TrimSpace(rest)

	if len(rest) < 2 {
		return "", false
	}

	quote := rest[0]
	if (quote != '\'' && quote != '"' && quote != '`') || rest[len(rest)-1] != quote {
		return "", false
	}

	body := rest[1 : len(rest)-1]
	if quote == '`' && strings.Contains(body, dynamicMarker) {
		return "", false
	}

	return unescapeJS(body), true
}

func unescapeJS(body string) string {
	replacer := strings.NewReplacer(`\'`, `'`, `\"`, `"`, "\\`", "`", `\n`, "\n", `\t`, "\t", `\\`, `\`)
	return replacer.Replace(body)
}

// literalScanner walks JavaScript source with just enough awareness of strings
// and comments to find structure.
type literalScanner struct {
	src string
	pos int
}

func newLiteralScanner(src string, pos int) *literalScanner {
	return &literalScanner{src: src, pos: pos}
}

func (s *literalScanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *literalScanner) peek() byte {
	return s.src[s.pos]
}

func (s *literalScanner) skipComment() bool {
	if s.pos+1 >= len(s.src) || s.src[s.pos] != '/' {
		return false
	}

	switch s.src[s.pos+1] {
	case '/':
		end := strings.IndexByte(s.src[s.pos:], '\n')
		if end < 0 {
			s.pos = len(s.src)
		} else {
			s.pos += end
		}

		return true
	case '*':
		end := strings.Index(s.src[s.pos+2:], "*/")
		if end < 0 {
			s.pos = len(s.src)
		} else {
			s.pos += end + 4
		}

		return true
	}

	return false
}

// readString consumes a quoted string starting at the current quote and
// returns its decoded value.
func (s *literalScanner) readString() (string, error) {
	quote := s.src[s.pos]
	start := s.pos
	s.pos++

	var b strings.Builder

	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == '\\' && s.pos+1 < len(s.src):
			s.readEscape(&b)

			continue
		case c == quote:
			s.pos++

			value := b.String()
			if quote == '`' && strings.Contains(value, dynamicMarker) {
				return "", fmt.Errorf("interpolated template literal at offset %d", start)
			}

			return value, nil
		case c == '\n' && quote != '`':
			return "", fmt.Errorf("unterminated string at offset %d", start)
		}

		b.WriteByte(c)
		s.pos++
	}

	return "", fmt.Errorf("unterminated string at offset %d", start)
}

// readEscape decodes the escape sequence at the current backslash.
func (s *literalScanner) readEscape(b *strings.Builder) {
	next := s.src[s.pos+1]

	if next == 'u' && s.pos+6 <= len(s.src) {
		if r, err := strconv.ParseUint(s.src[s.pos+2:s.pos+6], 16, 32); err == nil {
			b.WriteRune(rune(r))
			s.pos += 6

			return
		}
	}

	if next == '\n' {
		s.pos += 2
		return
	}

	b.WriteString(decodeEscape(next))
	s.pos += 2
}

func decodeEscape(c byte) string {
	switch c {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	default:
		return string(c)
	}
}

func (s *literalScanner) readIdent() string {
	start := s.pos
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
	}

	return s.src[start:s.pos]
}

func (s *literalScanner) readNumber() string {
	start := s.pos
	for s.pos < len(s.src) && strings.IndexByte("0123456789.-+eE_xXabcdefABCDEF", s.src[s.pos]) >= 0 {
		s.pos++
	}

	return s.src[start:s.pos]
}

// nextNonSpace returns the next non-whitespace byte without consuming it.
func (s *literalScanner) nextNonSpace() byte {
	for i := s.pos; i < len(s.src); i++ {
		if strings.IndexByte(" \t\r\n", s.src[i]) < 0 {
			return s.src[i]
		}
	}

	return 0
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
