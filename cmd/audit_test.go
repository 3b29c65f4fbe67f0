package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/domain"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

func TestAuditCmd_Defaults(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd, _, _ := newTestRootCmd(t, newAuditCmd())

	mockWorkflow.On("Audit", mock.Anything, mock.MatchedBy(func(args domain.AuditArgs) bool {
		defaults := m.DefaultConfig()

		return args.Output == m.Path(defaultReportOutput) &&
			args.Format == m.FormatJSON &&
			args.Config.PagesRoot == defaults.PagesRoot &&
			args.Config.LocalesRoot == defaults.LocalesRoot &&
			args.Config.Include == defaults.Include &&
			args.Config.IncludePartials &&
			args.Config.DetectHardcoded &&
			args.Config.Hardcoded.MinLength == 3 &&
			args.Config.Hardcoded.ExcludeAllCaps &&
			args.Config.Parallel == 1
	})).Return(m.AuditReport{}, nil)

	withArgs(t, cmd, "audit")
	assert.Equal(t, exitOK, execute(cmd))
}

func TestAuditCmd_FlagsOverrideConfig(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd, _, _ := newTestRootCmd(t, newAuditCmd())

	mockWorkflow.On("Audit", mock.Anything, mock.MatchedBy(func(args domain.AuditArgs) bool {
		return args.Output == m.Path("out/report.yaml") &&
			args.Format == m.FormatYAML &&
			args.Config.PagesRoot == m.Path("app/pages") &&
			args.Config.LocalesRoot == m.Path("app/i18n") &&
			!args.Config.IncludePartials &&
			!args.Config.DetectHardcoded &&
			args.Config.Parallel == 4 &&
			len(args.Config.Exclude) == 1 && args.Config.Exclude[0] == "**/legacy/**"
	})).Return(m.AuditReport{}, nil)

	withArgs(t, cmd, "audit",
		"--pages", "app/pages",
		"--locales", "app/i18n",
		"--output", "out/report.yaml",
		"--no-partials",
		"--no-hardcoded",
		"--parallel", "4",
		"-x", "**/legacy/**",
	)
	assert.Equal(t, exitOK, execute(cmd))
}

func TestAuditCmd_ExplicitFormatWins(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd, _, _ := newTestRootCmd(t, newAuditCmd())

	mockWorkflow.On("Audit", mock.Anything, mock.MatchedBy(func(args domain.AuditArgs) bool {
		return args.Output == m.Path("report.json") && args.Format == m.FormatText
	})).Return(m.AuditReport{}, nil)

	withArgs(t, cmd, "audit", "--output", "report.json", "--format", "text")
	assert.Equal(t, exitOK, execute(cmd))
}

func TestAuditCmd_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"csv report", []string{"audit", "--format", "csv"}},
		{"unknown format", []string{"audit", "--format", "xml"}},
		{"zero parallelism", []string{"audit", "--parallel", "0"}},
		{"negative min length", []string{"audit", "--min-length", "-1"}},
		{"positional argument", []string{"audit", "src"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useMockWorkflow(t)

			cmd, _, _ := newTestRootCmd(t, newAuditCmd())
			withArgs(t, cmd, tt.args...)

			assert.Equal(t, exitInvalidArgs, execute(cmd))
		})
	}
}

func TestAuditCmd_WorkflowErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing pages root", fmt.Errorf("run audit: %w", domain.ErrDiscovery), exitFileError},
		{"bad exclusion regex", fmt.Errorf("run audit: %w", domain.ErrInvalidConfig), exitInvalidArgs},
		{"report not writable", fmt.Errorf("save report: permission denied"), exitFileError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := useMockWorkflow(t)
			mockWorkflow.On("Audit", mock.Anything, mock.Anything).Return(m.AuditReport{}, tt.err)

			cmd, _, errOut := newTestRootCmd(t, newAuditCmd())
			withArgs(t, cmd, "audit")

			assert.Equal(t, tt.want, execute(cmd))
			assert.Contains(t, errOut.String(), "Error:")
		})
	}
}

func TestReportFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		output  m.Path
		want    m.ReportFormat
		wantErr bool
	}{
		{"inferred json", "", "report.json", m.FormatJSON, false},
		{"inferred yaml", "", "report.yml", m.FormatYAML, false},
		{"inferred text", "", "report.txt", m.FormatText, false},
		{"no output prints text", "", "", m.FormatText, false},
		{"explicit", "yaml", "report.json", m.FormatYAML, false},
		{"csv rejected", "csv", "report.csv", "", true},
		{"unknown rejected", "toml", "report.toml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reportFormat(tt.format, tt.output)
			if tt.wantErr {
				assert.Equal(t, exitInvalidArgs, exitCodeFor(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
