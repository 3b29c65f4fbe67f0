package domain

import (
	"fmt"
	"math"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// Validate classifies every call site against the catalog. Dynamic keys always
// surface for review; static keys are reported when missing or empty.
func Validate(sites []m.CallSite, catalog *Catalog) []m.Issue {
	var issues []m.Issue

	for _, site := range sites {
		if site.Dynamic {
			issues = append(issues, m.Issue{
				Kind:     m.IssueDynamicKey,
				Severity: m.SeverityInfo,
				Path:     site.Path,
				Line:     site.Line,
				Text:     site.RawPattern,
				Message:  fmt.Sprintf("Dynamic translation key %s cannot be validated statically", site.RawPattern),
			})

			continue
		}

		entry, ok := catalog.Lookup(site.Key)
		switch {
		case !ok:
			issues = append(issues, m.Issue{
				Kind:     m.IssueMissingTranslation,
				Severity: m.SeverityError,
				Path:     site.Path,
				Line:     site.Line,
				Key:      site.Key,
				Message:  fmt.Sprintf("Translation key %q is missing from the catalog", site.Key),
			})
		case entry.Empty:
			issues = append(issues, m.Issue{
				Kind:     m.IssueEmptyValue,
				Severity: m.SeverityWarning,
				Path:     site.Path,
				Line:     site.Line,
				Key:      site.Key,
				Message:  fmt.Sprintf("Translation key %q has an empty value in %s", site.Key, entry.File),
			})
		}
	}

	return issues
}

// CheckCatalog reports empty catalog values independently of usage.
func CheckCatalog(entries []m.CatalogEntry) []m.Issue {
	var issues []m.Issue

	for _, entry := range entries {
		if !entry.Empty {
			continue
		}

		issues = append(issues, m.Issue{
			Kind:     m.IssueEmptyValue,
			Severity: m.SeverityWarning,
			Path:     entry.File,
			Line:     0,
			Key:      entry.Key,
			Message:  fmt.Sprintf("Catalog entry %q has an empty value", entry.Key),
		})
	}

	return issues
}

// IssueCounts tallies issues by kind and by severity.
type IssueCounts struct {
	ByKind     map[m.IssueKind]int
	BySeverity map[m.Severity]int
	Total      int
}

// CountIssues is a pure counting pass over issues.
func CountIssues(issues []m.Issue) IssueCounts {
	counts := IssueCounts{
		ByKind:     make(map[m.IssueKind]int, len(m.IssueKinds)),
		BySeverity: make(map[m.Severity]int, 3),
	}

	for _, kind := range m.IssueKinds {
		counts.ByKind[kind] = 0
	}

	for _, issue := range issues {
		counts.ByKind[issue.Kind]++
		counts.BySeverity[issue.Severity]++
		counts.Total++
	}

	return counts
}

// UniqueStaticKeys returns the distinct static keys in first-seen order.
func UniqueStaticKeys(sites []m.CallSite) []string {
	seen := make(map[string]struct{})

	var keys []string

	for _, site := range sites {
		if site.Dynamic {
			continue
		}

		if _, ok := seen[site.Key]; ok {
			continue
		}

		seen[site.Key] = struct{}{}
		keys = append(keys, site.Key)
	}

	return keys
}

// coveragePercent is the share of unique static keys present in the catalog,
// rounded to one decimal. An audit with no keys is fully covered.
func coveragePercent(uniqueKeys, missingKeys int) float64 {
	if uniqueKeys == 0 {
		return 100.0
	}

	ratio := float64(uniqueKeys-missingKeys) / float64(uniqueKeys)

	return math.Round(ratio*1000) / 10
}
