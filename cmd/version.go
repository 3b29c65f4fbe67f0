package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the vue-i18n-audit build version, the VCS revision it was built from and the Go version.",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines describes a build. Binaries built outside module mode report
// an unknown version.
func versionLines(info *debug.BuildInfo) []string {
	if info == nil || info.Main.Version == "" {
		return []string{"vue-i18n-audit version: unknown"}
	}

	lines := []string{fmt.Sprintf("vue-i18n-audit\t%s", info.Main.Version)}

	revision, modified := "", false

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision != "" {
		if modified {
			revision += " (modified)"
		}

		lines = append(lines, "revision\t"+revision)
	}

	return append(lines, "go version\t"+info.GoVersion)
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
