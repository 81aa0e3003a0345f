// Package root provides the root command for the transjson CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transjson/internal/cmd/build"
	"github.com/open-cli-collective/transjson/internal/cmd/completion"
	"github.com/open-cli-collective/transjson/internal/cmd/configcmd"
	"github.com/open-cli-collective/transjson/internal/cmd/export"
	initcmd "github.com/open-cli-collective/transjson/internal/cmd/init"
	"github.com/open-cli-collective/transjson/internal/version"
)

// NewCmdRoot creates the root command for transjson.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transjson",
		Short: "Extract bilingual entries from LaTeX into JSON",
		Long: `transjson reads the \input{...} lines of a LaTeX manifest, extracts the
\transSec, \transSubSec and \trans entries of every included file and
writes them as a JSON array for the web front end.

Running transjson without a subcommand builds the JSON file.

Get started by running: transjson init`,
		Args:          cobra.NoArgs,
		RunE:          build.Run,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().String("root", "", "project root (default: current directory)")
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: <root>/.transjson.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().String("manifest", "", "manifest document, relative to the root")
	cmd.PersistentFlags().String("out", "", "JSON output path, relative to the root")
	cmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "", "log format: console, json, pretty")

	// Set version template
	cmd.SetVersionTemplate(version.Template("transjson"))

	// Subcommands
	cmd.AddCommand(build.NewCmdBuild())
	cmd.AddCommand(export.NewCmdExport())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
