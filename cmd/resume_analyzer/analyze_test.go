package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRoot(args ...string) (string, error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAnalyzeCommand_RequiresResumeArg(t *testing.T) {
	output, err := execRoot("analyze")

	assert.Error(t, err)
	assert.Contains(t, output, "arg")
}

func TestAnalyzeCommand_MissingCorpus(t *testing.T) {
	_, err := execRoot("analyze", "resume.pdf", "--courses", "/nonexistent/courses.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize analyzer")
}

func TestAnalyzeCommand_BadConfigPath(t *testing.T) {
	_, err := execRoot("analyze", "resume.pdf", "--config", "/nonexistent/config.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["analyze"])
	assert.True(t, names["serve"])
}
