package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), runErr
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "protopojo", root.Name)
	assert.Equal(t, "protopojo - generate Java data classes from proto schemas", root.Description)
	assert.NotNil(t, root.Subcommands)
	assert.NotNil(t, root.Flags)

	expectedCommands := []string{
		"generate",
		"check",
		"watch",
		"version",
	}

	for _, cmdName := range expectedCommands {
		assert.Contains(t, root.Subcommands, cmdName, "Expected subcommand %s to be registered", cmdName)
		assert.NotNil(t, root.Subcommands[cmdName], "Expected subcommand %s to be non-nil", cmdName)
	}

	assert.Equal(t, len(expectedCommands), len(root.Subcommands))
}

func TestCommandUsage(t *testing.T) {
	root := NewRootCommand()

	output, err := captureStdout(t, root.usage)
	assert.NoError(t, err)

	assert.Contains(t, output, "Usage: protopojo <command> [args]")
	assert.Contains(t, output, "Commands:")
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "check")
	assert.Contains(t, output, "watch")
	assert.Contains(t, output, "version")

	// Commands are listed alphabetically.
	assert.Less(t, indexOf(output, "check"), indexOf(output, "generate"))
	assert.Less(t, indexOf(output, "generate"), indexOf(output, "version"))
	assert.Less(t, indexOf(output, "version"), indexOf(output, "watch"))
}

func indexOf(haystack, needle string) int {
	return bytes.Index([]byte(haystack), []byte(needle))
}

func TestCommandExecute_NoArgs(t *testing.T) {
	root := NewRootCommand()

	oldArgs := os.Args
	os.Args = []string{"protopojo"}
	defer func() { os.Args = oldArgs }()

	output, err := captureStdout(t, root.Execute)
	assert.NoError(t, err)
	assert.Contains(t, output, "Usage: protopojo <command> [args]")
}

func TestCommandExecute_HelpFlag(t *testing.T) {
	for _, helpFlag := range []string{"-h", "--help"} {
		t.Run(helpFlag, func(t *testing.T) {
			root := NewRootCommand()

			oldArgs := os.Args
			os.Args = []string{"protopojo", helpFlag}
			defer func() { os.Args = oldArgs }()

			output, err := captureStdout(t, root.Execute)
			assert.NoError(t, err)
			assert.Contains(t, output, "Usage: protopojo <command> [args]")
		})
	}
}

func TestCommandExecute_ValidSubcommand(t *testing.T) {
	root := NewRootCommand()

	var receivedArgs []string
	root.Subcommands["test"] = &Command{
		Name:        "test",
		Description: "Test command",
		Run: func(args []string) error {
			receivedArgs = args
			return nil
		},
	}

	oldArgs := os.Args
	os.Args = []string{"protopojo", "test", "arg1", "-flag"}
	defer func() { os.Args = oldArgs }()

	err := root.Execute()
	assert.NoError(t, err)
	require.Equal(t, []string{"arg1", "-flag"}, receivedArgs)
}

func TestCommandExecute_UnknownCommand(t *testing.T) {
	root := NewRootCommand()

	oldArgs := os.Args
	os.Args = []string{"protopojo", "nonexistent"}
	defer func() { os.Args = oldArgs }()

	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: nonexistent")
}

func TestVersionCommand(t *testing.T) {
	output, err := captureStdout(t, func() error {
		return runVersion(nil)
	})
	assert.NoError(t, err)
	assert.Contains(t, output, "protopojo")
	assert.Contains(t, output, Version)
}
