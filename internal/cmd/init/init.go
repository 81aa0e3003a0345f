// Package init provides the init command for transjson.
package init

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transjson/internal/cmd/cmdutil"
	"github.com/open-cli-collective/transjson/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the project configuration",
		Long: `Create a .transjson.yml file in the project root.

The form asks for the manifest document, the JSON output path and the
key and label of both languages. Every value has a default, so running
transjson without a configuration file works as well.`,
		Example: `  # Interactive setup
  transjson init

  # Pre-populate the manifest path
  transjson init --manifest book.tex`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := cmdutil.RootPath(cmd)
			if err != nil {
				return err
			}
			configPath := cmdutil.ConfigPath(cmd, root)

			if _, err := os.Stat(configPath); err == nil && !force {
				var overwrite bool
				err := huh.NewConfirm().
					Title("Configuration already exists").
					Description(fmt.Sprintf("Overwrite %s?", configPath)).
					Value(&overwrite).
					Run()
				if err != nil {
					return err
				}
				if !overwrite {
					fmt.Fprintln(cmd.OutOrStdout(), "Initialization cancelled.")
					return nil
				}
			}

			manifest, _ := cmd.Flags().GetString("manifest")
			output, _ := cmd.Flags().GetString("out")
			cfg := prefill(manifest, output)
			if err := newForm(cfg).Run(); err != nil {
				return err
			}
			return saveConfig(cfg, configPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration without asking")

	return cmd
}

// prefill returns the defaults with any values given on the command line.
func prefill(manifest, output string) *config.Config {
	cfg := config.Default()
	if manifest != "" {
		cfg.Manifest = manifest
	}
	if output != "" {
		cfg.Output = output
	}
	return cfg
}

func required(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// newForm builds the setup form bound to cfg.
func newForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Manifest").
				Description("Root document whose \\input{...} lines name the content files").
				Placeholder(config.DefaultManifest).
				Value(&cfg.Manifest).
				Validate(required("manifest")),

			huh.NewInput().
				Title("Output").
				Description("Where the translation JSON is written").
				Placeholder(config.DefaultOutput).
				Value(&cfg.Output).
				Validate(required("output")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("First language key").
				Description("JSON field for the first argument of each entry macro").
				Value(&cfg.Languages.A.Key).
				Validate(required("key")),
			huh.NewInput().
				Title("First language label").
				Value(&cfg.Languages.A.Label),
			huh.NewInput().
				Title("Second language key").
				Description("JSON field for the second argument of each entry macro").
				Value(&cfg.Languages.B.Key).
				Validate(required("key")),
			huh.NewInput().
				Title("Second language label").
				Value(&cfg.Languages.B.Label),
		),
	)
}

// saveConfig validates cfg and writes it to path.
func saveConfig(cfg *config.Config, path string, w io.Writer) error {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nConfiguration saved to %s\n", path)
	fmt.Fprintln(w, "\nYou're all set! Try running:")
	fmt.Fprintln(w, "  transjson config test")
	fmt.Fprintln(w, "  transjson")

	return nil
}
