package model

// CallSite is one detected translation-function invocation.
type CallSite struct {
	Key     string      `json:"key" yaml:"key"`
	Path    Path        `json:"path" yaml:"path"`
	Line    int         `json:"line" yaml:"line"`
	Section SectionKind `json:"section" yaml:"section"`
	Dynamic bool        `json:"dynamic" yaml:"dynamic"`

	// RawPattern holds the backtick-delimited literal for dynamic calls only.
	RawPattern string `json:"raw_pattern,omitempty" yaml:"raw_pattern,omitempty"`
}

// KeyListing is one row of the list-keys output.
type KeyListing struct {
	Key   string `json:"key" yaml:"key"`
	Path  Path   `json:"path,omitempty" yaml:"path,omitempty"`
	Line  int    `json:"line,omitempty" yaml:"line,omitempty"`
	Count int    `json:"count" yaml:"count"`
}
