// Package model defines the data structures shared by the i18n audit pipeline.
package model

// Path represents a file system path.
type Path string

// SectionKind identifies one region of a single-file component.
type SectionKind string

const (
	// SectionTemplate is the markup region (<template>...</template>).
	SectionTemplate SectionKind = "template"

	// SectionScriptSetup is the imperative setup region (<script setup>).
	SectionScriptSetup SectionKind = "script_setup"

	// SectionScript is the classic imperative region (<script>), also used for
	// plain .js/.ts sources that have no section markers.
	SectionScript SectionKind = "script"
)

// IsCode reports whether the section holds imperative code rather than markup.
func (k SectionKind) IsCode() bool {
	return k == SectionScriptSetup || k == SectionScript
}

// Section is one region of a source document.
type Section struct {
	Kind    SectionKind
	Content string

	// StartLine is the 1-based line of the opening marker. Line i (0-based) of
	// Content lives at StartLine+i in the original document.
	StartLine int
}

// AbsoluteLine translates a 0-based line index inside the section content to a
// 1-based document line.
func (s Section) AbsoluteLine(index int) int {
	return s.StartLine + index
}

// SourceDocument is one input file split into its sections.
type SourceDocument struct {
	Path     Path
	Text     string
	Sections map[SectionKind]Section
}

// Section returns the section of the given kind if it was found.
func (d SourceDocument) Section(kind SectionKind) (Section, bool) {
	s, ok := d.Sections[kind]
	return s, ok
}
