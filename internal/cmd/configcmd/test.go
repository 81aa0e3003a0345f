package configcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/transjson/internal/cmd/cmdutil"
	"github.com/open-cli-collective/transjson/internal/manifest"
	"github.com/open-cli-collective/transjson/internal/view"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check that the configured manifest and content files are readable",
		Long: `Validate the configuration, read the manifest and check that every
included content file exists. Nothing is parsed or written.`,
		Example: `  # Check the project
  transjson config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := cmdutil.Load(cmd)
			if err != nil {
				return err
			}
			return runTest(settings, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runTest(s *cmdutil.Settings, w io.Writer) error {
	r := view.NewRenderer(view.FormatTable, s.NoColor)
	r.SetWriter(w)

	manifestPath := s.ManifestPath()
	r.RenderText(fmt.Sprintf("Checking %s...", manifestPath))

	files, err := manifest.Load(manifestPath)
	if err != nil {
		r.Error(fmt.Sprintf("Manifest not readable: %v", err))
		r.RenderText("\nCheck the manifest path with: transjson config show")
		return err
	}
	r.Success(fmt.Sprintf("Manifest lists %d content file(s)", len(files)))

	var missing int
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			r.Error(fmt.Sprintf("%s: %v", f, err))
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d content file(s) missing", missing)
	}

	r.Success("All content files found")
	r.RenderText("\nOutput will be written to: " + s.OutputPath())
	return nil
}
