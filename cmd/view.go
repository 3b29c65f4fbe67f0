package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/domain"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously written audit report",
		Long: `Open a JSON or YAML report written by audit. On a terminal the report is
shown in a scrollable viewer; otherwise it is printed as text. Without an
argument the configured report.output path is used.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return invalidArgs(err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath := m.Path(viper.GetString(reportOutputConfigKey))
			if len(args) == 1 {
				reportPath = m.Path(args[0])
			}

			if reportPath == "" {
				return invalidArgs(errors.New("no report path given"))
			}

			return workflowError(workflow.View(cmd.Context(), domain.ViewArgs{Report: reportPath}))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newViewCmd())
}
