package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/qyinm/placetui/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the config file path and the settings in effect after
environment overrides.

If no config file exists, one is created with the default values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			path := a.resolvedConfigPath()
			fmt.Fprintf(out, "Config file: %s\n", path)

			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				if err := config.Default().SaveTo(path); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Fprintln(out, colorMuted.Sprint("Created with default values."))
			}

			fmt.Fprintln(out)
			printSetting(cmd, "api.base_url", a.config.API.BaseURL)
			printSetting(cmd, "api.timeout", a.config.API.Timeout)
			printSetting(cmd, "ui.user_name", a.config.UI.UserName)
			printSetting(cmd, "ui.headlines", fmt.Sprint(a.config.UI.Headlines))
			printSetting(cmd, "log.file", a.config.Log.File)
			return nil
		},
	}
}

func printSetting(cmd *cobra.Command, key, value string) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %s\n", key, colorName.Sprint(value))
}
