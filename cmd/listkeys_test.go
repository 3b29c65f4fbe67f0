package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/domain"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

func TestListKeysCmd_Arguments(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantUnique bool
		wantFormat m.ReportFormat
	}{
		{"defaults", []string{"list-keys"}, false, m.FormatText},
		{"unique json", []string{"list-keys", "--unique", "--format", "json"}, true, m.FormatJSON},
		{"short flags csv", []string{"list-keys", "-u", "-f", "csv"}, true, m.FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := useMockWorkflow(t)

			mockWorkflow.On("ListKeys", mock.Anything, mock.MatchedBy(func(args domain.ListKeysArgs) bool {
				return args.Unique == tt.wantUnique && args.Format == tt.wantFormat
			})).Return([]m.KeyListing{}, nil)

			cmd, _, _ := newTestRootCmd(t, newListKeysCmd())
			withArgs(t, cmd, tt.args...)

			assert.Equal(t, exitOK, execute(cmd))
		})
	}
}

func TestListKeysCmd_RejectsYAML(t *testing.T) {
	useMockWorkflow(t)

	cmd, _, errOut := newTestRootCmd(t, newListKeysCmd())
	withArgs(t, cmd, "list-keys", "--format", "yaml")

	assert.Equal(t, exitInvalidArgs, execute(cmd))
	assert.Contains(t, errOut.String(), "text, json or csv")
}

func TestListKeysCmd_DiscoveryFailure(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	mockWorkflow.On("ListKeys", mock.Anything, mock.Anything).Return(nil, domain.ErrDiscovery)

	cmd, _, _ := newTestRootCmd(t, newListKeysCmd())
	withArgs(t, cmd, "list-keys")

	assert.Equal(t, exitFileError, execute(cmd))
}
