package cmd

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/spf13/viper"
)

// setupCmdTest isolates a command execution from the real user environment:
// config dir, home dir, and data search path all point at temp dirs.
func setupCmdTest(t *testing.T) (configDir, homeDir string) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configDir = t.TempDir()
	homeDir = t.TempDir()

	t.Setenv("CORPUS_CONFIG_DIR", configDir)
	t.Setenv("CORPUS_DATA", "")
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", homeDir)
	} else {
		t.Setenv("HOME", homeDir)
	}

	return configDir, homeDir
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := BuildRootCmd()

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}
