package completion

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestRootCmd creates a minimal root command for testing.
func createTestRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "transjson",
		Short: "Test CLI",
	}
	root.AddCommand(NewCmdCompletion())
	return root
}

func TestNewCmdCompletion(t *testing.T) {
	cmd := NewCmdCompletion()

	assert.Equal(t, "completion", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Len(t, cmd.Commands(), 4)
}

func TestCompletionScripts(t *testing.T) {
	testCases := []struct {
		shell  string
		marker string
	}{
		{"bash", "bash completion"},
		{"zsh", "compdef"},
		{"fish", "complete -c transjson"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tc := range testCases {
		t.Run(tc.shell, func(t *testing.T) {
			root := createTestRootCmd()
			buf := new(bytes.Buffer)
			root.SetOut(buf)
			root.SetArgs([]string{"completion", tc.shell})

			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tc.marker)
		})
	}
}

func TestCompletionRejectsExtraArgs(t *testing.T) {
	for _, s := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(s, func(t *testing.T) {
			root := createTestRootCmd()
			root.SetArgs([]string{"completion", s, "unexpected-arg"})

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown command")
		})
	}
}
