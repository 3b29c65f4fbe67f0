package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/domain"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

func newListKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-keys",
		Short: "List the static translation keys used by the pages",
		Long: `List every static translation key found in the audited files, one row per
call site. With --unique each key is listed once with its occurrence count.
Dynamic keys are left out.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString(formatFlagName)

			format, err := m.ParseReportFormat(name)
			if err != nil || format == m.FormatYAML {
				return invalidArgs(fmt.Errorf("unknown key listing format %q (want text, json or csv)", name))
			}

			unique, _ := cmd.Flags().GetBool(uniqueFlagName)

			_, err = workflow.ListKeys(cmd.Context(), domain.ListKeysArgs{
				Config: cfg,
				Unique: unique,
				Format: format,
			})

			return workflowError(err)
		},
	}

	cmd.Flags().BoolP(uniqueFlagName, "u", false, "list each key once with its occurrence count")
	cmd.Flags().StringP(formatFlagName, "f", string(m.FormatText), "output format: text, json or csv")

	return cmd
}

func init() {
	rootCmd.AddCommand(newListKeysCmd())
}
