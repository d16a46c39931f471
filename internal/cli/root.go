package cli

import (
	"fmt"
	"os"

	"github.com/rabellamy/generator-drupal-theme/internal/branding"
	"github.com/rabellamy/generator-drupal-theme/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks a few questions about a new Drupal theme and writes
its directory skeleton, .info file and editor dotfiles into the current directory.

Running it without a subcommand is the same as '` + branding.CLIName() + ` new'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(cmd, rootNewOpts)
	},
}

var rootNewOpts = &newOptions{}

func init() {
	bindNewFlags(rootCmd, rootNewOpts)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
