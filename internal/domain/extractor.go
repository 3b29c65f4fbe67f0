package domain

import (
	"regexp"
	"strings"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// translatorCall matches the callee of a translation lookup. The leading group
// rejects identifiers that merely end in "t" (format(, split( ...).
const translatorCall = `(?:^|[^\w$.])(?:this\.\$t|i18n\.global\.t|\$t|t)\(\s*`

var (
	interpolationPattern   = regexp.MustCompile(`\{\{(.*?)\}\}`)
	boundAttributePattern  = regexp.MustCompile(`(?:^|\s)(?::|@|v-[\w-]+:?)[\w.:\[\]-]*=(?:"([^"]*)"|'([^']*)')`)
	quotedCallPattern      = regexp.MustCompile(translatorCall + `(?:'((?:[^'\\]|\\.)+)'|"((?:[^"\\]|\\.)+)")`)
	templateLiteralPattern = regexp.MustCompile(translatorCall + "(`[^`]*`)")
	importLinePattern      = regexp.MustCompile(`^\s*(?:import\b|export\s+(?:type|interface)\b|(?:type|interface)\s+\w+)`)
	translatorEvidence     = []*regexp.Regexp{
		regexp.MustCompile(`\buseI18n\s*\(`),
		regexp.MustCompile(`\bi18n\.global\b`),
		regexp.MustCompile(`import\s*\{[^}]*\bt\b[^}]*\}\s*from`),
		regexp.MustCompile(`(?:const|let|var)\s*\{[^}]*\bt\b[^}]*\}\s*=`),
		regexp.MustCompile(`\bthis\.\$t\(`),
	}
)

// dynamicMarker is the only signal used to decide that a template literal key
// is built at runtime.
const dynamicMarker = "${"

// ExtractCallSites scans one section for translation calls. Code sections are
// only scanned when the translation function is visibly obtained in them.
func ExtractCallSites(path m.Path, section m.Section) []m.CallSite {
	if section.Kind.IsCode() && !hasTranslatorEvidence(section.Content) {
		return nil
	}

	var sites []m.CallSite

	for idx, line := range strings.Split(section.Content, "\n") {
		if section.Kind.IsCode() && importLinePattern.MatchString(line) {
			continue
		}

		site := m.CallSite{
			Path:    path,
			Line:    section.AbsoluteLine(idx),
			Section: section.Kind,
		}

		var keys []string
		if section.Kind == m.SectionTemplate {
			keys = append(keys, recognizeInterpolationCalls(line)...)
			keys = append(keys, recognizeBoundAttributeCalls(line)...)
		} else {
			keys = append(keys, recognizeCodeCalls(line)...)
		}

		for _, key := range keys {
			s := site
			s.Key = key
			sites = append(sites, s)
		}

		for _, literal := range recognizeTemplateLiteralCalls(line) {
			s := site
			if strings.Contains(literal, dynamicMarker) {
				s.Dynamic = true
				s.RawPattern = literal
			} else {
				s.Key = strings.Trim(literal, "`")
			}

			sites = append(sites, s)
		}
	}

	return sites
}

// recognizeInterpolationCalls returns quoted keys of calls inside {{ ... }}.
func recognizeInterpolationCalls(line string) []string {
	var keys []string

	for _, match := range interpolationPattern.FindAllStringSubmatch(line, -1) {
		keys = append(keys, quotedKeys(match[1])...)
	}

	return keys
}

// recognizeBoundAttributeCalls returns quoted keys of calls inside bound or
// directive attribute values such as :title="t('x')".
func recognizeBoundAttributeCalls(line string) []string {
	var keys []string

	for _, match := range boundAttributePattern.FindAllStringSubmatch(line, -1) {
		value := match[1]
		if value == "" {
			value = match[2]
		}

		keys = append(keys, quotedKeys(value)...)
	}

	return keys
}

// recognizeTemplateLiteralCalls returns backtick arguments, delimiters included.
func recognizeTemplateLiteralCalls(line string) []string {
	var literals []string

	for _, match := range templateLiteralPattern.FindAllStringSubmatch(line, -1) {
		literals = append(literals, match[1])
	}

	return literals
}

// recognizeCodeCalls returns quoted keys of calls in script code.
func recognizeCodeCalls(line string) []string {
	return quotedKeys(line)
}

func quotedKeys(text string) []string {
	var keys []string

	for _, match := range quotedCallPattern.FindAllStringSubmatch(text, -1) {
		key := match[1]
		if key == "" {
			key = match[2]
		}

		keys = append(keys, key)
	}

	return keys
}

// hasTranslatorEvidence reports whether code imports or otherwise obtains the
// translation function.
func hasTranslatorEvidence(code string) bool {
	for _, pattern := range translatorEvidence {
		if pattern.MatchString(code) {
			return true
		}
	}

	return false
}
