package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transjson/internal/cmd/cmdutil"
	"github.com/open-cli-collective/transjson/internal/config"
	"github.com/open-cli-collective/transjson/internal/view"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective transjson configuration with source indicators.`,
		Example: `  # Show current config
  transjson config show

  # As JSON
  transjson config show -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := cmdutil.RootPath(cmd)
			if err != nil {
				return err
			}
			output, _ := cmd.Flags().GetString("output")
			if err := view.ValidateFormat(output); err != nil {
				return err
			}
			noColor, _ := cmd.Flags().GetBool("no-color")

			r := view.NewRenderer(view.Format(output), noColor)
			r.SetWriter(cmd.OutOrStdout())
			return runShow(cmdutil.ConfigPath(cmd, root), r)
		},
	}

	return cmd
}

type shownField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func runShow(configPath string, r *view.Renderer) error {
	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	field := func(name, value, fileValue, envVar string) shownField {
		source := "default"
		switch {
		case envVar != "" && os.Getenv(envVar) != "" && os.Getenv(envVar) == value:
			source = envVar
		case fileValue != "" && fileValue == value:
			source = "config"
		}
		return shownField{Name: name, Value: value, Source: source}
	}

	fields := []shownField{
		field("Manifest", cfg.Manifest, fileCfg.Manifest, "TRANSJSON_MANIFEST"),
		field("Output", cfg.Output, fileCfg.Output, "TRANSJSON_OUTPUT"),
		field("Language A", cfg.Languages.A.Key+" ("+cfg.Languages.A.Label+")", joinLanguage(fileCfg.Languages.A), ""),
		field("Language B", cfg.Languages.B.Key+" ("+cfg.Languages.B.Label+")", joinLanguage(fileCfg.Languages.B), ""),
		field("Log level", cfg.LogLevel, fileCfg.LogLevel, "TRANSJSON_LOG_LEVEL"),
		field("Log format", cfg.LogFormat, fileCfg.LogFormat, ""),
	}

	if r.Format() == view.FormatJSON {
		return r.RenderJSON(struct {
			ConfigFile string       `json:"config_file"`
			Found      bool         `json:"found"`
			Fields     []shownField `json:"fields"`
		}{configPath, fileErr == nil, fields})
	}

	for _, f := range fields {
		r.RenderKeyValue(f.Name, fmt.Sprintf("%s  (source: %s)", f.Value, f.Source))
	}

	r.RenderText("")
	r.RenderText("Config file: " + configPath)
	if fileErr != nil {
		r.RenderText("(file not found)")
	}

	return nil
}

func joinLanguage(l config.Language) string {
	if l.Key == "" || l.Label == "" {
		return ""
	}
	return l.Key + " (" + l.Label + ")"
}
