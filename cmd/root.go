// Package cmd provides the root command and CLI setup for vue-i18n-audit.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/adapter"
	"github.com/AhmedKhchai/vue-i18n-audit/internal/controller"
	"github.com/AhmedKhchai/vue-i18n-audit/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var catalogLoader domain.CatalogLoader
var auditor domain.Auditor
var workflow domain.Workflow
var ui controller.UI

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewLocalReportStore(fsAdapter, controller.RenderReportText)
	catalogLoader = domain.NewCatalogLoader(fsAdapter)
	auditor = domain.NewAuditor(fsAdapter, catalogLoader, ui)
	workflow = domain.NewWorkflow(auditor, reportStore, ui)
}

const rootLongDescription = `vue-i18n-audit checks a Vue code base for internationalization gaps.

It extracts every translation call (t, $t, this.$t, i18n.global.t) from
single-file components, validates the keys against the locale catalogs and
flags literal template text that was never translated.

Exit codes: 0 success, 1 issues exceed the check threshold, 2 invalid
arguments, 3 file or parse error.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vue-i18n-audit",
		Short:         "Audit Vue components for missing translations",
		Long:          rootLongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configReadErr != nil {
				slog.Error("Failed to read config file", "error", configReadErr)
				return invalidArgs(configReadErr)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return invalidArgs(err)
	})

	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(pagesFlagName, viper.GetString(pagesConfigKey), "root directory of the pages to audit")
	bindFlagToConfig(flags.Lookup(pagesFlagName), pagesConfigKey)

	flags.String(localesFlagName, viper.GetString(localesConfigKey), "directory (or single file) holding the locale catalogs")
	bindFlagToConfig(flags.Lookup(localesFlagName), localesConfigKey)

	flags.String(includeFlagName, viper.GetString(includeConfigKey), "glob of files to audit, relative to the pages root")
	bindFlagToConfig(flags.Lookup(includeFlagName), includeConfigKey)

	flags.StringArrayP(excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.Bool(noPartialsFlagName, false, "skip files under partials directories")
	flags.Bool(noHardcodedFlagName, false, "disable hardcoded text detection")

	flags.Int(minLengthFlagName, viper.GetInt(minLengthConfigKey), "minimum length of hardcoded text worth reporting")
	bindFlagToConfig(flags.Lookup(minLengthFlagName), minLengthConfigKey)

	flags.StringArray(excludePatternFlagName, viper.GetStringSlice(excludePatternsConfigKey), "regex of template text to ignore (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludePatternFlagName), excludePatternsConfigKey)

	flags.IntP(runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files processed in parallel")
	bindFlagToConfig(flags.Lookup(runParallelFlagName), runParallelConfigKey)

	flags.String(logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(execute(rootCmd))
}

func execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(ctx)

	code := exitCodeFor(err)
	if err != nil && code != exitThresholdExceeded {
		cmd.PrintErrln("Error:", err)
	}

	if code == exitInvalidArgs {
		cmd.PrintErrln("Run 'vue-i18n-audit --help' for usage.")
	}

	return code
}
