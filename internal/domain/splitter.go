package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

var (
	templateOpenPattern  = regexp.MustCompile(`(?m)^[ \t]*<template\b[^>]*>`)
	templateClosePattern = regexp.MustCompile(`</template\s*>`)
	scriptOpenPattern    = regexp.MustCompile(`<script\b([^>]*)>`)
	scriptClosePattern   = regexp.MustCompile(`</script\s*>`)
	setupAttrPattern     = regexp.MustCompile(`(^|\s)setup(\s|=|$)`)
	blockStartPattern    = regexp.MustCompile(`(?m)^<(script|style)\b`)
)

// componentExtensions are sources with section markers; everything else is a
// plain script module.
var componentExtensions = map[string]bool{
	".vue": true,
}

// SplitResult holds a split document and any structural warnings found on the way.
type SplitResult struct {
	Document m.SourceDocument
	Warnings []string
}

// SplitSections locates the markup, setup-script and classic-script regions of a
// document. Missing regions are simply absent; malformed ones are extracted on a
// best-effort basis and reported as warnings.
func SplitSections(path m.Path, text string) SplitResult {
	result := SplitResult{
		Document: m.SourceDocument{
			Path:     path,
			Text:     text,
			Sections: make(map[m.SectionKind]m.Section),
		},
	}

	if !componentExtensions[strings.ToLower(filepath.Ext(string(path)))] {
		result.Document.Sections[m.SectionScript] = m.Section{
			Kind:      m.SectionScript,
			Content:   text,
			StartLine: 1,
		}

		return result
	}

	splitTemplate(text, &result)
	splitScripts(text, &result)

	return result
}

func splitTemplate(text string, result *SplitResult) {
	open := templateOpenPattern.FindStringIndex(text)
	if open == nil {
		if templateClosePattern.MatchString(text) {
			result.warnf("closing </template> without an opening tag")
		}

		return
	}

	contentStart := open[1]
	contentEnd := -1

	closes := templateClosePattern.FindAllStringIndex(text[contentStart:], -1)
	if len(closes) > 0 {
		// Nested <template> slots share the closing tag, so the outermost block
		// ends at the last one.
		contentEnd = contentStart + closes[len(closes)-1][0]
	} else {
		result.warnf("unclosed <template> opened at line %d", lineOf(text, open[0]))

		contentEnd = len(text)
		if next := blockStartPattern.FindStringIndex(text[contentStart:]); next != nil {
			contentEnd = contentStart + next[0]
		}
	}

	result.Document.Sections[m.SectionTemplate] = m.Section{
		Kind:      m.SectionTemplate,
		Content:   text[contentStart:contentEnd],
		StartLine: lineOf(text, open[0]),
	}
}

func splitScripts(text string, result *SplitResult) {
	offset := 0

	for offset < len(text) {
		open := scriptOpenPattern.FindStringSubmatchIndex(text[offset:])
		if open == nil {
			return
		}

		openStart := offset + open[0]
		contentStart := offset + open[1]
		attrs := text[offset+open[2] : offset+open[3]]

		kind := m.SectionScript
		if setupAttrPattern.MatchString(attrs) {
			kind = m.SectionScriptSetup
		}

		contentEnd := len(text)
		next := len(text)

		if closeIdx := scriptClosePattern.FindStringIndex(text[contentStart:]); closeIdx != nil {
			contentEnd = contentStart + closeIdx[0]
			next = contentStart + closeIdx[1]
		} else {
			result.warnf("unclosed <script> opened at line %d", lineOf(text, openStart))
		}

		if _, exists := result.Document.Sections[kind]; exists {
			result.warnf("duplicate %s block at line %d ignored", kind, lineOf(text, openStart))
		} else {
			result.Document.Sections[kind] = m.Section{
				Kind:      kind,
				Content:   text[contentStart:contentEnd],
				StartLine: lineOf(text, openStart),
			}
		}

		offset = next
	}
}

func (r *SplitResult) warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, fmt.Sprintf("%s: %s", r.Document.Path, msg))
}

// lineOf returns the 1-based line containing byte offset idx.
func lineOf(text string, idx int) int {
	return strings.Count(text[:idx], "\n") + 1
}
