package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/domain"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

const auditLongDescription = `Run a full audit and write the report.

The report format follows --format, or the extension of --output when no
format is given (.json, .yaml/.yml, .txt). Pass an empty --output to print
the report without writing a file.`

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit translation usage and write a report",
		Long:  auditLongDescription,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			output := m.Path(viper.GetString(reportOutputConfigKey))

			format, err := reportFormat(viper.GetString(reportFormatConfigKey), output)
			if err != nil {
				return err
			}

			_, err = workflow.Audit(cmd.Context(), domain.AuditArgs{
				Config: cfg,
				Output: output,
				Format: format,
			})

			return workflowError(err)
		},
	}

	cmd.Flags().StringP(outputFlagName, "o", defaultReportOutput, "report file path (empty prints only)")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), reportOutputConfigKey)

	cmd.Flags().StringP(formatFlagName, "f", "", "report format: text, json or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), reportFormatConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(newAuditCmd())
}

// reportFormat validates an explicit format or infers one from the output path.
func reportFormat(name string, output m.Path) (m.ReportFormat, error) {
	if name == "" {
		if output == "" {
			return m.FormatText, nil
		}

		name = string(m.FormatFromPath(output))
	}

	format, err := m.ParseReportFormat(name)
	if err != nil {
		return "", invalidArgs(err)
	}

	if format == m.FormatCSV {
		return "", invalidArgs(errUnsupportedReportFormat(format))
	}

	return format, nil
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return invalidArgs(err)
	}

	return nil
}
