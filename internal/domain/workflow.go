package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/adapter"
	"github.com/AhmedKhchai/vue-i18n-audit/internal/controller"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// AuditArgs contains the arguments for a full audit run.
type AuditArgs struct {
	Config m.Config

	// Output is the report file. Empty prints the report only.
	Output m.Path
	Format m.ReportFormat
}

// CheckArgs contains the arguments for a CI check.
type CheckArgs struct {
	Config     m.Config
	Threshold  int
	ErrorsOnly bool
}

// ListKeysArgs contains the arguments for listing extracted keys.
type ListKeysArgs struct {
	Config m.Config
	Unique bool
	Format m.ReportFormat
}

// ViewArgs contains the arguments for viewing a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the user-facing operations of the audit tool.
type Workflow interface {
	Audit(ctx context.Context, args AuditArgs) (m.AuditReport, error)
	Check(ctx context.Context, args CheckArgs) (m.CheckResult, error)
	ListKeys(ctx context.Context, args ListKeysArgs) ([]m.KeyListing, error)
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	Auditor
	adapter.ReportStore
	ui controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	auditor Auditor,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		Auditor:     auditor,
		ReportStore: reportStore,
		ui:          ui,
	}
}

func (w *workflow) Audit(ctx context.Context, args AuditArgs) (m.AuditReport, error) {
	report, err := w.Run(ctx, args.Config)
	if err != nil {
		return report, fmt.Errorf("run audit: %w", err)
	}

	if args.Output == "" {
		return report, w.ui.DisplayReport(ctx, report)
	}

	format := args.Format
	if format == "" {
		format = m.FormatFromPath(args.Output)
	}

	if err := w.SaveReport(ctx, args.Output, report, format); err != nil {
		slog.Error("Failed to save report", "path", args.Output, "format", format, "error", err)
		return report, fmt.Errorf("save report: %w", err)
	}

	w.ui.DisplayReportSaved(ctx, args.Output, format)

	if format != m.FormatText {
		if err := w.ui.DisplayReport(ctx, report); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) (m.CheckResult, error) {
	report, err := w.Run(ctx, args.Config)
	if err != nil {
		return m.CheckResult{}, fmt.Errorf("run audit: %w", err)
	}

	result := m.CheckResult{
		Report:     report,
		Threshold:  args.Threshold,
		ErrorsOnly: args.ErrorsOnly,
		Counted:    report.Summary.TotalIssues,
	}

	if args.ErrorsOnly {
		result.Counted = report.Summary.Errors
	}

	slog.Info("Check finished", "counted", result.Counted, "threshold", result.Threshold, "exceeded", result.Exceeded())

	if err := w.ui.DisplayCheckResult(ctx, result); err != nil {
		return result, err
	}

	return result, nil
}

func (w *workflow) ListKeys(ctx context.Context, args ListKeysArgs) ([]m.KeyListing, error) {
	sites, err := w.CollectCallSites(ctx, args.Config)
	if err != nil {
		return nil, fmt.Errorf("collect call sites: %w", err)
	}

	listings := BuildKeyListings(sites, args.Unique)

	if err := w.ui.DisplayKeys(ctx, listings, args.Format); err != nil {
		return listings, fmt.Errorf("display keys: %w", err)
	}

	return listings, nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.ui.ViewReport(ctx, report)
}

// BuildKeyListings turns static call sites into listing rows. Without unique
// every occurrence is listed in scan order; with unique each key appears once,
// sorted, with its occurrence count and first location.
func BuildKeyListings(sites []m.CallSite, unique bool) []m.KeyListing {
	var listings []m.KeyListing

	if !unique {
		for _, site := range sites {
			if site.Dynamic {
				continue
			}

			listings = append(listings, m.KeyListing{Key: site.Key, Path: site.Path, Line: site.Line, Count: 1})
		}

		return listings
	}

	index := make(map[string]int)

	for _, site := range sites {
		if site.Dynamic {
			continue
		}

		if i, ok := index[site.Key]; ok {
			listings[i].Count++
			continue
		}

		index[site.Key] = len(listings)
		listings = append(listings, m.KeyListing{Key: site.Key, Path: site.Path, Line: site.Line, Count: 1})
	}

	sort.SliceStable(listings, func(i, j int) bool { return listings[i].Key < listings[j].Key })

	return listings
}
