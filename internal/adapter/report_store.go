package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// ErrUnsupportedFormat is returned for formats a report cannot be stored in.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// TextRenderer writes the human-readable rendition of a report.
type TextRenderer func(w io.Writer, report m.AuditReport) error

// ReportStore persists audit reports and reads them back for viewing.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.AuditReport, format m.ReportFormat) error
	LoadReport(ctx context.Context, path m.Path) (m.AuditReport, error)
}

// LocalReportStore stores reports through a SourceFSAdapter.
type LocalReportStore struct {
	fsAdapter SourceFSAdapter
	text      TextRenderer
}

// NewLocalReportStore builds a report store. text may be nil, in which case
// text reports are rejected.
func NewLocalReportStore(fsAdapter SourceFSAdapter, text TextRenderer) *LocalReportStore {
	return &LocalReportStore{fsAdapter: fsAdapter, text: text}
}

// SaveReport encodes report in format and writes it to path.
func (s *LocalReportStore) SaveReport(ctx context.Context, path m.Path, report m.AuditReport, format m.ReportFormat) error {
	content, err := s.encode(report, format)
	if err != nil {
		return err
	}

	if err := s.fsAdapter.WriteFile(ctx, path, content, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (s *LocalReportStore) encode(report m.AuditReport, format m.ReportFormat) ([]byte, error) {
	switch format {
	case m.FormatJSON:
		content, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json report: %w", err)
		}

		return append(content, '\n'), nil
	case m.FormatYAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(report); err != nil {
			return nil, fmt.Errorf("encode yaml report: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml report: %w", err)
		}

		return buf.Bytes(), nil
	case m.FormatText:
		if s.text == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
		}

		var buf bytes.Buffer
		if err := s.text(&buf, report); err != nil {
			return nil, fmt.Errorf("render text report: %w", err)
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// LoadReport reads a JSON or YAML report, chosen by file extension.
func (s *LocalReportStore) LoadReport(ctx context.Context, path m.Path) (m.AuditReport, error) {
	var report m.AuditReport

	content, err := s.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return report, fmt.Errorf("read report %s: %w", path, err)
	}

	switch format := m.FormatFromPath(path); format {
	case m.FormatYAML:
		err = yaml.Unmarshal(content, &report)
	case m.FormatJSON:
		err = json.Unmarshal(content, &report)
	default:
		return report, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return report, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
