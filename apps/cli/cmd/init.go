package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/hitclient/packages/core/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a client profile in the current directory",
	Long: `Create a .hitclient.yaml client profile in the current directory.

Examples:
  hitclient init
  hitclient init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing profile")
}

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	return writeProfile(cmd, filepath.Join(cwd, ".hitclient.yaml"))
}

func writeProfile(cmd *cobra.Command, path string) error {
	if !forceInit {
		if _, err := os.Stat(path); err == nil {
			return &exitError{code: ExitUsageError, err: fmt.Errorf("file already exists: %s (use --force to overwrite)", path)}
		}
	}

	profile := config.DefaultConfig()
	profile.BaseURL = "http://localhost:3000"
	profile.BaseHeaders = map[string]string{
		"User-Agent": "hitclient/" + version,
	}

	if err := profile.SaveConfig(path); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", path)
	return nil
}
