package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/domain"
)

const checkLongDescription = `Run the audit for CI without writing a report.

The command exits with code 1 when the number of issues is above
--threshold. With --errors-only only error-severity findings (missing
translations and unreadable files) are counted.`

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail when the issue count exceeds a threshold",
		Long:  checkLongDescription,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			threshold := viper.GetInt(checkThresholdConfigKey)
			if threshold < 0 {
				return invalidArgs(fmt.Errorf("--%s must not be negative, got %d", thresholdFlagName, threshold))
			}

			errorsOnly, _ := cmd.Flags().GetBool(errorsOnlyFlagName)

			result, err := workflow.Check(cmd.Context(), domain.CheckArgs{
				Config:     cfg,
				Threshold:  threshold,
				ErrorsOnly: errorsOnly,
			})
			if err != nil {
				return workflowError(err)
			}

			if result.Exceeded() {
				return &exitError{
					code: exitThresholdExceeded,
					err:  fmt.Errorf("%w: %d > %d", errThresholdExceeded, result.Counted, result.Threshold),
				}
			}

			return nil
		},
	}

	cmd.Flags().Int(thresholdFlagName, defaultCheckThreshold, "maximum number of issues tolerated")
	bindFlagToConfig(cmd.Flags().Lookup(thresholdFlagName), checkThresholdConfigKey)

	cmd.Flags().Bool(errorsOnlyFlagName, false, "count only error-severity issues")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCheckCmd())
}
