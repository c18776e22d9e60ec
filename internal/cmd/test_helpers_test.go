package cmd

import (
	"bytes"
	"testing"
	"time"
)

// executeCmd executes the root command with the given args and returns the output.
// Package-level flag variables are reset first so values don't leak between tests.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlagVars()

	buf := new(bytes.Buffer)
	// Important: Set args BEFORE setting output buffers
	rootCmd.SetArgs(args)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlagVars restores flag-bound variables to their defaults.
func resetFlagVars() {
	addType = ""
	addDescription = ""
	addCodeURI = ""
	addFunction = ""
	addDir = ""

	uploadURL = ""
	uploadNoProgress = false
	uploadTimeout = 5 * time.Minute
}
