package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// contextRadius is how many characters around a span are kept for the report.
const contextRadius = 20

var (
	textNodePattern    = regexp.MustCompile(`>([^<>]+)<`)
	htmlCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	mustachePattern    = regexp.MustCompile(`(?s)\{\{.*?\}\}`)
	openTagPattern     = regexp.MustCompile(`<[A-Za-z](?:"[^"]*"|'[^']*'|[^"'>])*>`)
	quotedValuePattern = regexp.MustCompile(`"[^"]*"|'[^']*'`)
	whitespacePattern  = regexp.MustCompile(`\s+`)

	// builtinExclusions never describe prose.
	builtinExclusions = []*regexp.Regexp{
		regexp.MustCompile(`^v-`),                        // directive
		regexp.MustCompile(`^@`),                         // event binding
		regexp.MustCompile(`^:`),                         // attribute binding
		regexp.MustCompile(`^#`),                         // slot / fragment
		regexp.MustCompile(`^\$?route\w*\(`),             // route helpers
		regexp.MustCompile(`^https?://`),                 // URLs
		regexp.MustCompile(`^mailto:`),                   // mail links
		regexp.MustCompile(`^/`),                         // root-relative paths
		regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)+$`), // kebab-case
		regexp.MustCompile(`^[a-z0-9]+(?:_[a-z0-9]+)+$`), // snake_case
		regexp.MustCompile(`^\d+$`),                      // digits
		regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`),        // hex colour
		regexp.MustCompile(`\{\{|\}\}`),                  // unresolved interpolation
	}

	pascalCasePattern    = regexp.MustCompile(`^[A-Z][a-z0-9]+(?:[A-Z][a-z0-9]*)+$`)
	constantPattern      = regexp.MustCompile(`^[A-Z][A-Z0-9]*(?:_[A-Z0-9]+)+$`)
	camelCasePattern     = regexp.MustCompile(`^[a-z]+[A-Z][A-Za-z0-9]*$`)
	fileNamePattern      = regexp.MustCompile(`^[\w-]+\.[A-Za-z0-9]{1,5}$`)
	sentenceStartPattern = regexp.MustCompile(`^[A-Z][a-z]`)
	terminalPunctPattern = regexp.MustCompile(`[.!?]$`)
	capitalWordPattern   = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// maxCamelCaseLength bounds the camelCase identifier heuristic.
const maxCamelCaseLength = 20

// HardcodedDetector finds literal markup text that bypasses translation.
type HardcodedDetector struct {
	rules    m.HardcodedRules
	patterns []*regexp.Regexp
}

// NewHardcodedDetector compiles the caller-supplied exclusion patterns.
func NewHardcodedDetector(rules m.HardcodedRules) (*HardcodedDetector, error) {
	patterns := make([]*regexp.Regexp, 0, len(builtinExclusions)+len(rules.ExcludePatterns))
	patterns = append(patterns, builtinExclusions...)

	for _, source := range rules.ExcludePatterns {
		pattern, err := regexp.Compile(source)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", source, err)
		}

		patterns = append(patterns, pattern)
	}

	if rules.MinLength < 0 {
		return nil, fmt.Errorf("min length must not be negative, got %d", rules.MinLength)
	}

	return &HardcodedDetector{rules: rules, patterns: patterns}, nil
}

// Detect scans a markup section for text nodes and returns the spans that
// survive every exclusion rule, scored by confidence.
func (d *HardcodedDetector) Detect(path m.Path, section m.Section) []m.HardcodedCandidate {
	if section.Kind != m.SectionTemplate {
		return nil
	}

	content := blankAttributeValues(blank(mustachePattern, blank(htmlCommentPattern, section.Content)))

	// The section edges bound text nodes the same way tags do.
	scan := ">" + content + "<"

	var candidates []m.HardcodedCandidate

	for _, loc := range textNodePattern.FindAllStringSubmatchIndex(scan, -1) {
		raw := scan[loc[2]:loc[3]]

		text := normalizeText(raw)
		if text == "" || d.excluded(text) {
			continue
		}

		offset := loc[2] - 1
		start := offset + (len(raw) - len(strings.TrimLeft(raw, " \t\r\n")))
		end := offset + len(strings.TrimRight(raw, " \t\r\n"))

		candidates = append(candidates, m.HardcodedCandidate{
			Text:       text,
			Path:       path,
			Line:       section.AbsoluteLine(strings.Count(content[:start], "\n")),
			Confidence: scoreConfidence(text),
			Context:    snippet(content, start, end),
		})
	}

	return candidates
}

// excluded applies the filters in order: length, all-caps, exclusion
// patterns, component names, technical identifiers.
func (d *HardcodedDetector) excluded(text string) bool {
	length := utf8.RuneCountInString(text)

	if length < d.rules.MinLength {
		return true
	}

	if d.rules.ExcludeAllCaps && strings.ToUpper(text) == text && length > 2 {
		return true
	}

	for _, pattern := range d.patterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	if pascalCasePattern.MatchString(text) {
		return true
	}

	return isTechnicalIdentifier(text)
}

func isTechnicalIdentifier(text string) bool {
	if constantPattern.MatchString(text) {
		return true
	}

	if camelCasePattern.MatchString(text) && utf8.RuneCountInString(text) < maxCamelCaseLength {
		return true
	}

	return fileNamePattern.MatchString(text)
}

func scoreConfidence(text string) m.Confidence {
	length := utf8.RuneCountInString(text)
	hasSpace := strings.Contains(text, " ")

	switch {
	case sentenceStartPattern.MatchString(text) && hasSpace:
		return m.ConfidenceHigh
	case terminalPunctPattern.MatchString(text) && length > 5:
		return m.ConfidenceHigh
	case capitalWordPattern.MatchString(text):
		return m.ConfidenceMedium
	case hasSpace && length > 10:
		return m.ConfidenceMedium
	default:
		return m.ConfidenceLow
	}
}

// HardcodedIssues promotes candidates to warning issues one to one.
func HardcodedIssues(candidates []m.HardcodedCandidate) []m.Issue {
	issues := make([]m.Issue, 0, len(candidates))

	for _, candidate := range candidates {
		issues = append(issues, m.Issue{
			Kind:     m.IssueHardcodedText,
			Severity: m.SeverityWarning,
			Path:     candidate.Path,
			Line:     candidate.Line,
			Text:     candidate.Text,
			Message: fmt.Sprintf("Possible hardcoded text (%s confidence): %q near %q",
				candidate.Confidence, candidate.Text, candidate.Context),
		})
	}

	return issues
}

// blank replaces every match of pattern with spaces, keeping newlines so line
// numbers stay put.
func blank(pattern *regexp.Regexp, content string) string {
	return pattern.ReplaceAllStringFunc(content, blankRunes)
}

// blankAttributeValues blanks quoted attribute values inside opening tags, so
// expressions such as v-if="a > 0" never look like text nodes.
func blankAttributeValues(content string) string {
	return openTagPattern.ReplaceAllStringFunc(content, func(tag string) string {
		return blank(quotedValuePattern, tag)
	})
}

func blankRunes(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}

		return ' '
	}, s)
}

func normalizeText(text string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(text), " ")
}

func snippet(content string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}

	to := end + contextRadius
	if to > len(content) {
		to = len(content)
	}

	return normalizeText(strings.ToValidUTF8(content[from:to], ""))
}
