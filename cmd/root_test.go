package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRegistersCommands(t *testing.T) {
	for _, name := range []string{"render", "prepare", "update-inst", "replace-svgs", "clean-pdf", "log", "version"} {
		t.Run(name, func(t *testing.T) {
			found, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, found.Name())
		})
	}
}

func TestRenderFlags(t *testing.T) {
	flags := renderCmd.GetCommand().Flags()
	for _, name := range []string{"dry-run", "task-dir", "diff", "keep-legacy"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
	assert.Equal(t, "d", flags.Lookup("task-dir").Shorthand)
	assert.Equal(t, "dev", rootCmd.Version)
}
