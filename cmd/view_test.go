package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/domain"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

func TestViewCmd_UsesReportOutputByDefault(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Report == m.Path(defaultReportOutput)
	})).Return(nil)

	cmd, _, _ := newTestRootCmd(t, newViewCmd())
	withArgs(t, cmd, "view")

	assert.Equal(t, exitOK, execute(cmd))
}

func TestViewCmd_PositionalReportPath(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Report == m.Path("reports/nightly.yaml")
	})).Return(nil)

	cmd, _, _ := newTestRootCmd(t, newViewCmd())
	withArgs(t, cmd, "view", "reports/nightly.yaml")

	assert.Equal(t, exitOK, execute(cmd))
}

func TestViewCmd_TooManyArgs(t *testing.T) {
	useMockWorkflow(t)

	cmd, _, _ := newTestRootCmd(t, newViewCmd())
	withArgs(t, cmd, "view", "a.json", "b.json")

	assert.Equal(t, exitInvalidArgs, execute(cmd))
}

func TestViewCmd_MissingReport(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	mockWorkflow.On("View", mock.Anything, mock.Anything).Return(errors.New("load report: no such file"))

	cmd, _, _ := newTestRootCmd(t, newViewCmd())
	withArgs(t, cmd, "view", "missing.json")

	assert.Equal(t, exitFileError, execute(cmd))
}
