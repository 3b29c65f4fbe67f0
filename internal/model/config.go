package model

// HardcodedRules tunes the hardcoded-text detector.
type HardcodedRules struct {
	MinLength       int      `json:"min_length" yaml:"min_length"`
	ExcludeAllCaps  bool     `json:"exclude_all_caps" yaml:"exclude_all_caps"`
	ExcludePatterns []string `json:"exclude_patterns" yaml:"exclude_patterns"`
}

// Config is the effective configuration of one audit run. It is resolved once
// and passed by value into every core call.
type Config struct {
	PagesRoot       Path           `json:"pages_root" yaml:"pages_root"`
	LocalesRoot     Path           `json:"locales_root" yaml:"locales_root"`
	Include         string         `json:"include" yaml:"include"`
	Exclude         []string       `json:"exclude" yaml:"exclude"`
	IncludePartials bool           `json:"include_partials" yaml:"include_partials"`
	DetectHardcoded bool           `json:"detect_hardcoded" yaml:"detect_hardcoded"`
	Hardcoded       HardcodedRules `json:"hardcoded" yaml:"hardcoded"`
	Parallel        int            `json:"parallel" yaml:"parallel"`
}

// DefaultExcludePatterns are the directive, event, binding and fragment
// prefixes that never count as prose.
func DefaultExcludePatterns() []string {
	return []string{`^v-`, `^@`, `^:`, `^#`}
}

// DefaultHardcodedRules returns the detector defaults.
func DefaultHardcodedRules() HardcodedRules {
	return HardcodedRules{
		MinLength:       3,
		ExcludeAllCaps:  true,
		ExcludePatterns: DefaultExcludePatterns(),
	}
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		PagesRoot:       "src",
		LocalesRoot:     "src/locales",
		Include:         "**/*.vue",
		Exclude:         []string{"**/node_modules/**", "**/dist/**"},
		IncludePartials: true,
		DetectHardcoded: true,
		Hardcoded:       DefaultHardcodedRules(),
		Parallel:        1,
	}
}
