package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const forceFlagName = "force"

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default i18n-audit.yaml configuration file",
		Long: `Create an i18n-audit.yaml in the current working directory holding the
effective settings (defaults merged with any flags given), ready to be edited.
An existing file is kept unless --force is given.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if force, _ := cmd.Flags().GetBool(forceFlagName); force {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return &exitError{code: exitFileError, err: fmt.Errorf("write config file %s: %w", targetPath, err)}
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().Bool(forceFlagName, false, "overwrite an existing configuration file")

	return cmd
}

func init() {
	rootCmd.AddCommand(newInitCmd())
}
