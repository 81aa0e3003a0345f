// Package cmdutil holds the flag handling shared by transjson commands.
package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transjson/internal/config"
	"github.com/open-cli-collective/transjson/internal/dataset"
	"github.com/open-cli-collective/transjson/internal/logging"
)

// Settings is the resolved configuration of one command invocation.
type Settings struct {
	Root       string // absolute project root
	ConfigPath string
	Config     *config.Config
	Logger     glog.Logger
	Output     string // summary format
	NoColor    bool
}

// ManifestPath returns the manifest path resolved against the project root.
func (s *Settings) ManifestPath() string {
	return config.ResolvePath(s.Root, s.Config.Manifest)
}

// OutputPath returns the JSON output path resolved against the project root.
func (s *Settings) OutputPath() string {
	return config.ResolvePath(s.Root, s.Config.Output)
}

// Keys returns the JSON field names of the two languages.
func (s *Settings) Keys() dataset.Keys {
	return dataset.Keys{A: s.Config.Languages.A.Key, B: s.Config.Languages.B.Key}
}

// RootPath resolves the --root flag, defaulting to the working directory.
func RootPath(cmd *cobra.Command) (string, error) {
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		root = wd
	}
	return filepath.Abs(root)
}

// ConfigPath resolves the --config flag, defaulting to the project config file.
func ConfigPath(cmd *cobra.Command, root string) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath(root)
}

// Load reads the global flags, the config file and the environment.
// Precedence: flag > env > file > default.
func Load(cmd *cobra.Command) (*Settings, error) {
	root, err := RootPath(cmd)
	if err != nil {
		return nil, err
	}
	configPath := ConfigPath(cmd, root)

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("manifest"); v != "" {
		cfg.Manifest = v
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.Output = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'transjson init' to configure)", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, err
	}

	output, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")

	return &Settings{
		Root:       root,
		ConfigPath: configPath,
		Config:     cfg,
		Logger:     logger,
		Output:     output,
		NoColor:    noColor,
	}, nil
}
