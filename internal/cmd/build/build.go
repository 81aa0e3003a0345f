// Package build provides the build command, the default action of transjson.
package build

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transjson/internal/cmd/cmdutil"
	"github.com/open-cli-collective/transjson/internal/pipeline"
	"github.com/open-cli-collective/transjson/internal/view"
)

// NewCmdBuild creates the build command.
func NewCmdBuild() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Extract entries and write the translation JSON",
		Long: `Read the manifest, extract every \transSec, \transSubSec and \trans entry
from the included files and write them as one JSON array.

Running transjson without a subcommand does the same.`,
		Example: `  # Build with the defaults (main.tex -> web/translation-data.json)
  transjson build

  # Build another project and print the summary as JSON
  transjson build --root ../book -o json`,
		Args: cobra.NoArgs,
		RunE: Run,
	}

	return cmd
}

// Run loads the settings of cmd and executes the build.
func Run(cmd *cobra.Command, _ []string) error {
	settings, err := cmdutil.Load(cmd)
	if err != nil {
		return err
	}
	return runBuild(settings, cmd.OutOrStdout())
}

type summary struct {
	Output  string                `json:"output"`
	Entries int                   `json:"entries"`
	Files   []pipeline.FileReport `json:"files"`
}

func runBuild(s *cmdutil.Settings, w io.Writer) error {
	if err := view.ValidateFormat(s.Output); err != nil {
		return err
	}

	report, err := pipeline.Run(pipeline.Options{
		Manifest: s.ManifestPath(),
		Output:   s.OutputPath(),
		Keys:     s.Keys(),
		Logger:   s.Logger,
	})
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(s.Output), s.NoColor)
	renderer.SetWriter(w)

	if renderer.Format() == view.FormatJSON {
		files := report.Files
		if files == nil {
			files = []pipeline.FileReport{}
		}
		return renderer.RenderJSON(summary{
			Output:  report.Output,
			Entries: len(report.Entries),
			Files:   files,
		})
	}

	headers := []string{"FILE", "SECTIONS", "SUBSECTIONS", "PARAGRAPHS", "SKIPPED"}
	rows := make([][]string, 0, len(report.Files))
	for _, f := range report.Files {
		rows = append(rows, []string{
			relative(s.Root, f.Path),
			strconv.Itoa(f.Sections),
			strconv.Itoa(f.Subsections),
			strconv.Itoa(f.Paragraphs),
			strconv.Itoa(f.Skipped),
		})
	}
	renderer.RenderTable(headers, rows)

	if renderer.Format() == view.FormatTable {
		renderer.Success(fmt.Sprintf("Wrote %d entries to %s", len(report.Entries), relative(s.Root, report.Output)))
	}
	return nil
}

func relative(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
