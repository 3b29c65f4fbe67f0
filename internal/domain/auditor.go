package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/adapter"
	"github.com/AhmedKhchai/vue-i18n-audit/internal/controller"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

var (
	// ErrInvalidConfig wraps configuration the audit cannot run with.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDiscovery wraps failures to enumerate the source files.
	ErrDiscovery = errors.New("source discovery failed")
)

// sectionOrder fixes the order in which sections are scanned.
var sectionOrder = []m.SectionKind{m.SectionTemplate, m.SectionScriptSetup, m.SectionScript}

// Auditor runs the extraction and validation pipeline over a source tree.
type Auditor interface {
	Run(ctx context.Context, cfg m.Config) (m.AuditReport, error)
	CollectCallSites(ctx context.Context, cfg m.Config) ([]m.CallSite, error)
}

type auditor struct {
	fsAdapter adapter.SourceFSAdapter
	loader    CatalogLoader
	ui        controller.UI
	now       func() time.Time
}

// NewAuditor wires the pipeline to its filesystem adapter and UI.
func NewAuditor(fsAdapter adapter.SourceFSAdapter, loader CatalogLoader, ui controller.UI) Auditor {
	return &auditor{
		fsAdapter: fsAdapter,
		loader:    loader,
		ui:        ui,
		now:       time.Now,
	}
}

// documentResult is the independent outcome of one source file.
type documentResult struct {
	sites  []m.CallSite
	issues []m.Issue
	file   m.FileResult
}

type documentFunc func(ctx context.Context, path m.Path) (documentResult, error)

// Run audits every discovered document against the catalog and assembles the
// report. Per-document failures become error file results; only invalid
// configuration, failed discovery and cancellation abort the run.
func (a *auditor) Run(ctx context.Context, cfg m.Config) (m.AuditReport, error) {
	var detector *HardcodedDetector

	if cfg.DetectHardcoded {
		d, err := NewHardcodedDetector(cfg.Hardcoded)
		if err != nil {
			return m.AuditReport{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		detector = d
	}

	paths, err := a.discover(ctx, cfg)
	if err != nil {
		return m.AuditReport{}, err
	}

	load := a.loader.LoadCatalog(ctx, cfg.LocalesRoot)
	for _, warning := range load.Warnings {
		a.ui.DisplayWarning(ctx, warning)
	}

	catalog := NewCatalog(load.Entries)
	for _, key := range catalog.Duplicates() {
		slog.Debug("Duplicate catalog key, last definition wins", "key", key)
	}

	slog.Info("Auditing documents", "files", len(paths), "catalog_entries", catalog.Len(), "parallel", cfg.Parallel)

	results, err := a.processDocuments(ctx, paths, cfg.Parallel, func(ctx context.Context, path m.Path) (documentResult, error) {
		return a.auditDocument(ctx, path, catalog, detector)
	})
	if err != nil {
		return m.AuditReport{}, err
	}

	report := m.AuditReport{
		ID:          uuid.NewString(),
		GeneratedAt: a.now(),
		Config:      cfg,
	}

	for _, result := range results {
		report.CallSites = append(report.CallSites, result.sites...)
		report.Issues = append(report.Issues, result.issues...)
		report.Files = append(report.Files, result.file)
	}

	report.Issues = append(report.Issues, CheckCatalog(load.Entries)...)
	report.Summary = summarize(report, catalog)

	slog.Info("Audit finished",
		"id", report.ID,
		"issues", report.Summary.TotalIssues,
		"coverage", report.Summary.CoveragePercent,
	)

	return report, nil
}

// CollectCallSites runs discovery, splitting and extraction only.
func (a *auditor) CollectCallSites(ctx context.Context, cfg m.Config) ([]m.CallSite, error) {
	paths, err := a.discover(ctx, cfg)
	if err != nil {
		return nil, err
	}

	results, err := a.processDocuments(ctx, paths, cfg.Parallel, a.extractDocument)
	if err != nil {
		return nil, err
	}

	var sites []m.CallSite

	for _, result := range results {
		if result.file.Status == m.FileError {
			a.ui.DisplayWarning(ctx, fmt.Sprintf("%s: %s", result.file.Path, result.file.Error))
		}

		sites = append(sites, result.sites...)
	}

	return sites, nil
}

func (a *auditor) discover(ctx context.Context, cfg m.Config) ([]m.Path, error) {
	paths, err := a.fsAdapter.Discover(ctx, adapter.DiscoverArgs{
		Root:            cfg.PagesRoot,
		Include:         []string{cfg.Include},
		Exclude:         cfg.Exclude,
		IncludePartials: cfg.IncludePartials,
	})
	if err != nil {
		slog.Error("Failed to discover source files", "root", cfg.PagesRoot, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDiscovery, err)
	}

	return paths, nil
}

// processDocuments runs fn for every path on at most parallel workers. Each
// worker writes only its own slot, so the results keep discovery order.
func (a *auditor) processDocuments(ctx context.Context, paths []m.Path, parallel int, fn documentFunc) ([]documentResult, error) {
	results := make([]documentResult, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, path := range paths {
		group.Go(func() (err error) {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}

			defer func() {
				if r := recover(); r != nil {
					slog.Error("Recovered from panic while processing document", "path", path, "panic", r)
					results[i] = errorResult(path, fmt.Errorf("panic: %v", r))
				}
			}()

			result, docErr := fn(groupCtx, path)
			if docErr != nil {
				if errors.Is(docErr, context.Canceled) || errors.Is(docErr, context.DeadlineExceeded) {
					return docErr
				}

				slog.Warn("Failed to process document", "path", path, "error", docErr)
				result = errorResult(path, docErr)
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *auditor) splitDocument(ctx context.Context, path m.Path) (m.SourceDocument, error) {
	content, err := a.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return m.SourceDocument{}, fmt.Errorf("read %s: %w", path, err)
	}

	split := SplitSections(path, string(content))
	for _, warning := range split.Warnings {
		slog.Warn("Malformed section markers", "path", path, "warning", warning)
		a.ui.DisplayWarning(ctx, warning)
	}

	return split.Document, nil
}

func (a *auditor) extractDocument(ctx context.Context, path m.Path) (documentResult, error) {
	doc, err := a.splitDocument(ctx, path)
	if err != nil {
		return documentResult{}, err
	}

	sites := extractDocumentCallSites(doc)

	return documentResult{
		sites: sites,
		file:  m.FileResult{Path: path, Status: m.FileClean, KeyCount: len(sites)},
	}, nil
}

func (a *auditor) auditDocument(ctx context.Context, path m.Path, catalog *Catalog, detector *HardcodedDetector) (documentResult, error) {
	doc, err := a.splitDocument(ctx, path)
	if err != nil {
		return documentResult{}, err
	}

	sites := extractDocumentCallSites(doc)
	issues := Validate(sites, catalog)

	if template, ok := doc.Section(m.SectionTemplate); ok && detector != nil {
		issues = append(issues, HardcodedIssues(detector.Detect(path, template))...)
	}

	status := m.FileClean
	if len(issues) > 0 {
		status = m.FileIssues
	}

	return documentResult{
		sites:  sites,
		issues: issues,
		file: m.FileResult{
			Path:       path,
			Status:     status,
			KeyCount:   len(sites),
			IssueCount: len(issues),
		},
	}, nil
}

func extractDocumentCallSites(doc m.SourceDocument) []m.CallSite {
	var sites []m.CallSite

	for _, kind := range sectionOrder {
		if section, ok := doc.Section(kind); ok {
			sites = append(sites, ExtractCallSites(doc.Path, section)...)
		}
	}

	return sites
}

// errorResult is the synthetic outcome of a document that could not be
// processed. It counts as one issue.
func errorResult(path m.Path, err error) documentResult {
	return documentResult{
		file: m.FileResult{
			Path:       path,
			Status:     m.FileError,
			IssueCount: 1,
			Error:      err.Error(),
		},
	}
}

func summarize(report m.AuditReport, catalog *Catalog) m.Summary {
	counts := CountIssues(report.Issues)
	unique := UniqueStaticKeys(report.CallSites)

	missing := 0

	for _, key := range unique {
		if _, ok := catalog.Lookup(key); !ok {
			missing++
		}
	}

	summary := m.Summary{
		TotalFiles:     len(report.Files),
		TotalCallSites: len(report.CallSites),
		UniqueKeys:     len(unique),
		CatalogEntries: catalog.Len(),
		MissingKeys:    missing,
		Errors:         counts.BySeverity[m.SeverityError],
		Warnings:       counts.BySeverity[m.SeverityWarning],
		Infos:          counts.BySeverity[m.SeverityInfo],
		ByKind:         counts.ByKind,
	}

	for _, file := range report.Files {
		switch file.Status {
		case m.FileError:
			summary.FilesWithErrors++
			summary.FilesWithIssues++
		case m.FileIssues:
			summary.FilesWithIssues++
		case m.FileClean:
		}
	}

	// Unprocessable files have no Issue entry but still count as one error.
	summary.Errors += summary.FilesWithErrors
	summary.TotalIssues = counts.Total + summary.FilesWithErrors
	summary.CoveragePercent = coveragePercent(summary.UniqueKeys, summary.MissingKeys)

	return summary
}
