// Package export provides the export command.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transjson/internal/cmd/cmdutil"
	exporter "github.com/open-cli-collective/transjson/internal/export"
	"github.com/open-cli-collective/transjson/internal/pipeline"
)

type exportOptions struct {
	format  string
	lang    string
	title   string
	outFile string
}

// NewCmdExport creates the export command.
func NewCmdExport() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the entries as Markdown or HTML",
		Long: `Extract the entries like build does, but render them as a Markdown document
or a standalone HTML page instead of writing the translation JSON.

Sections and subsections become headings. Paragraph entries become a
two-column table, or plain paragraphs when a single language is selected.`,
		Example: `  # Side-by-side Markdown on stdout
  transjson export

  # German-only HTML page
  transjson export --format html --lang b --out-file preview.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := cmdutil.Load(cmd)
			if err != nil {
				return err
			}
			return runExport(settings, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "markdown", "export format: markdown, html")
	cmd.Flags().StringVar(&opts.lang, "lang", "both", "languages to include: both, a, b")
	cmd.Flags().StringVar(&opts.title, "title", "", "document title")
	cmd.Flags().StringVar(&opts.outFile, "out-file", "", "write to this file instead of stdout")

	return cmd
}

func runExport(s *cmdutil.Settings, opts *exportOptions, w io.Writer) error {
	lang, err := exporter.ParseLang(opts.lang)
	if err != nil {
		return err
	}

	render := exporter.Markdown
	switch opts.format {
	case "", "markdown", "md":
	case "html":
		render = exporter.HTML
	default:
		return fmt.Errorf("invalid export format %q (valid: markdown, html)", opts.format)
	}

	report, err := pipeline.Collect(pipeline.Options{
		Manifest: s.ManifestPath(),
		Keys:     s.Keys(),
		Logger:   s.Logger,
	})
	if err != nil {
		return err
	}

	doc, err := render(report.Entries, exporter.Options{
		Title:  opts.title,
		LabelA: s.Config.Languages.A.Label,
		LabelB: s.Config.Languages.B.Label,
		Lang:   lang,
	})
	if err != nil {
		return err
	}

	if opts.outFile == "" {
		_, err = io.WriteString(w, doc)
		return err
	}

	if err := os.WriteFile(opts.outFile, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	s.Logger.Info("export written", "path", opts.outFile, "entries", len(report.Entries))
	return nil
}
