package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

func templateSection(content string) m.Section {
	return m.Section{Kind: m.SectionTemplate, StartLine: 1, Content: content}
}

func newDefaultDetector(t *testing.T) *HardcodedDetector {
	t.Helper()

	detector, err := NewHardcodedDetector(m.DefaultHardcodedRules())
	require.NoError(t, err)

	return detector
}

func candidateTexts(candidates []m.HardcodedCandidate) []string {
	texts := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		texts = append(texts, candidate.Text)
	}

	return texts
}

func TestDetect_SentenceHeading(t *testing.T) {
	detector := newDefaultDetector(t)

	candidates := detector.Detect("Dashboard.vue", templateSection("\n  <h1>Welcome to Dashboard</h1>\n"))
	require.Len(t, candidates, 1)

	candidate := candidates[0]
	assert.Equal(t, "Welcome to Dashboard", candidate.Text)
	assert.Equal(t, m.ConfidenceHigh, candidate.Confidence)
	assert.Equal(t, m.Path("Dashboard.vue"), candidate.Path)
	assert.Equal(t, 2, candidate.Line)
	assert.Contains(t, candidate.Context, "Welcome to Dashboard")
}

func TestDetect_AttributeOnlyMarkup(t *testing.T) {
	detector := newDefaultDetector(t)

	candidates := detector.Detect("Layout.vue", templateSection("\n  <div class=\"flex-container\">\n  </div>\n"))
	assert.Empty(t, candidates)
}

func TestDetect_TextAtSectionEdges(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		line    int
	}{
		{"only text", "Welcome to the dashboard", "Welcome to the dashboard", 1},
		{"text before first tag", "\n  Leading sentence here\n  <div/>\n", "Leading sentence here", 2},
		{"text after last tag", "\n  <div/>\n  Trailing sentence here\n", "Trailing sentence here", 3},
	}

	detector := newDefaultDetector(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := detector.Detect("A.vue", templateSection(tt.content))
			require.Len(t, candidates, 1)
			assert.Equal(t, tt.want, candidates[0].Text)
			assert.Equal(t, tt.line, candidates[0].Line)
			assert.Equal(t, m.ConfidenceHigh, candidates[0].Confidence)
		})
	}
}

func TestDetect_IgnoresComparisonsInAttributeValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "directive expression",
			content: "<div v-if=\"a > 0 && b < 5\">\n  <p>Visible text</p>\n</div>",
			want:    []string{"Visible text"},
		},
		{
			name:    "bound ternary",
			content: "<p :title=\"count > 1 ? 'Many' : 'One'\">Label text</p>",
			want:    []string{"Label text"},
		},
		{
			name:    "single quoted value",
			content: "<span v-show='total >= limit'>Limit reached</span>",
			want:    []string{"Limit reached"},
		},
		{
			name:    "apostrophe in text",
			content: "<p>Don't panic now</p>",
			want:    []string{"Don't panic now"},
		},
	}

	detector := newDefaultDetector(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, candidateTexts(detector.Detect("A.vue", templateSection(tt.content))))
		})
	}
}

func TestDetect_Filters(t *testing.T) {
	tests := []struct {
		name string
		text string
		kept bool
	}{
		{"too short", "OK", false},
		{"all caps", "SAVE NOW", false},
		{"directive prefix", "v-if stuff", false},
		{"url", "https://example.com", false},
		{"mail link", "mailto:someone", false},
		{"root path", "/settings/profile", false},
		{"kebab case", "flex-container", false},
		{"snake case", "user_name", false},
		{"digits", "12345", false},
		{"component name", "UserProfile", false},
		{"camel case identifier", "isLoading", false},
		{"file name", "logo.png", false},
		{"sentence", "Hello world", true},
		{"single word", "Save", true},
		{"text around interpolation", "{{ count }} items", true},
		{"interpolation only", "{{ count }}", false},
	}

	detector := newDefaultDetector(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := detector.Detect("A.vue", templateSection("<p>"+tt.text+"</p>"))
			if tt.kept {
				assert.Len(t, candidates, 1)
			} else {
				assert.Empty(t, candidates)
			}
		})
	}
}

func TestDetect_CollapsesWhitespaceAndStripsInterpolation(t *testing.T) {
	detector := newDefaultDetector(t)

	candidates := detector.Detect("A.vue", templateSection("<p>\n  You have {{ n }}\n  new   messages\n</p>"))
	require.Len(t, candidates, 1)
	assert.Equal(t, "You have new messages", candidates[0].Text)
	assert.Equal(t, 2, candidates[0].Line)
}

func TestDetect_IgnoresComments(t *testing.T) {
	detector := newDefaultDetector(t)

	content := "<div>\n  <!-- <p>Hidden text here</p> -->\n  <p>Visible text</p>\n</div>"

	candidates := detector.Detect("A.vue", templateSection(content))
	require.Len(t, candidates, 1)
	assert.Equal(t, "Visible text", candidates[0].Text)
	assert.Equal(t, 3, candidates[0].Line)
}

func TestDetect_OnlyScansMarkup(t *testing.T) {
	detector := newDefaultDetector(t)

	section := m.Section{Kind: m.SectionScript, StartLine: 1, Content: "const x = '<p>Hello world</p>'"}
	assert.Nil(t, detector.Detect("A.vue", section))
}

func TestDetect_AllCapsAllowed(t *testing.T) {
	rules := m.DefaultHardcodedRules()
	rules.ExcludeAllCaps = false

	detector, err := NewHardcodedDetector(rules)
	require.NoError(t, err)

	assert.Equal(t, []string{"SAVE NOW"}, candidateTexts(detector.Detect("A.vue", templateSection("<b>SAVE NOW</b>"))))
}

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		text string
		want m.Confidence
	}{
		{"Welcome to Dashboard", m.ConfidenceHigh},
		{"saved successfully!", m.ConfidenceHigh},
		{"Save", m.ConfidenceMedium},
		{"click here to continue", m.ConfidenceMedium},
		{"items", m.ConfidenceLow},
		{"Done.", m.ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreConfidence(tt.text))
		})
	}
}

const detectorFixture = `
<section>
  <h2>Account settings</h2>
  <p>Change your password</p>
  <span>Beta</span>
  <em>new</em>
  <small>ok</small>
</section>
`

func TestDetect_AddingExclusionPatternNeverAddsCandidates(t *testing.T) {
	base := newDefaultDetector(t)

	rules := m.DefaultHardcodedRules()
	rules.ExcludePatterns = append(rules.ExcludePatterns, `^Beta$`, `password`)

	stricter, err := NewHardcodedDetector(rules)
	require.NoError(t, err)

	before := candidateTexts(base.Detect("A.vue", templateSection(detectorFixture)))
	after := candidateTexts(stricter.Detect("A.vue", templateSection(detectorFixture)))

	assert.LessOrEqual(t, len(after), len(before))
	assert.Subset(t, before, after)
	assert.Equal(t, []string{"Account settings", "new"}, after)
}

func TestDetect_LoweringMinLengthNeverRemovesCandidates(t *testing.T) {
	for minLength := 10; minLength > 0; minLength-- {
		high := m.DefaultHardcodedRules()
		high.MinLength = minLength

		low := m.DefaultHardcodedRules()
		low.MinLength = minLength - 1

		highDetector, err := NewHardcodedDetector(high)
		require.NoError(t, err)

		lowDetector, err := NewHardcodedDetector(low)
		require.NoError(t, err)

		before := candidateTexts(highDetector.Detect("A.vue", templateSection(detectorFixture)))
		after := candidateTexts(lowDetector.Detect("A.vue", templateSection(detectorFixture)))

		assert.Subset(t, after, before, "min length %d", minLength)
	}
}

func TestNewHardcodedDetector_InvalidRules(t *testing.T) {
	tests := []struct {
		name  string
		rules m.HardcodedRules
	}{
		{"invalid pattern", m.HardcodedRules{MinLength: 3, ExcludePatterns: []string{"("}}},
		{"negative min length", m.HardcodedRules{MinLength: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector, err := NewHardcodedDetector(tt.rules)
			assert.Error(t, err)
			assert.Nil(t, detector)
		})
	}
}

func TestHardcodedIssues(t *testing.T) {
	issues := HardcodedIssues([]m.HardcodedCandidate{
		{Text: "Hello world", Path: "A.vue", Line: 4, Confidence: m.ConfidenceHigh, Context: "<p>Hello world</p>"},
	})

	require.Len(t, issues, 1)
	assert.Equal(t, m.IssueHardcodedText, issues[0].Kind)
	assert.Equal(t, m.SeverityWarning, issues[0].Severity)
	assert.Equal(t, m.Path("A.vue"), issues[0].Path)
	assert.Equal(t, 4, issues[0].Line)
	assert.Equal(t, "Hello world", issues[0].Text)
	assert.Contains(t, issues[0].Message, "high confidence")

	assert.Empty(t, HardcodedIssues(nil))
}
