package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataFlags() []string {
	return []string{
		"--resume", filepath.Join("..", "..", "assets", "data", "resume.json"),
		"--profiles", filepath.Join("..", "..", "assets", "data", "resume_profiles.json"),
	}
}

func TestGenerateCommand_MissingProfileFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, append([]string{"generate"}, sampleDataFlags()...)...)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestGenerateCommand_UnknownProfile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	args := append([]string{"generate", "--profile", "nonexistent"}, sampleDataFlags()...)
	output, err := exec.Command(binaryPath, args...).CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "nonexistent")
}

func TestGenerateCommand_WritesHTMLOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outputFile := filepath.Join(t.TempDir(), "resume.html")

	args := append([]string{"generate", "--profile", "brand_management", "--out", outputFile}, sampleDataFlags()...)
	output, err := exec.Command(binaryPath, args...).CombinedOutput()
	require.NoError(t, err, string(output))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<!DOCTYPE html>")
	assert.Contains(t, string(content), "resume-header")
	assert.Contains(t, string(content), "Professional Experience")
}

func TestGenerateCommand_RejectsUnknownFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	args := append([]string{"generate", "--profile", "brand_management", "--format", "fancy"}, sampleDataFlags()...)
	output, err := exec.Command(binaryPath, args...).CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "format")
}

func TestCustomCommand_GeneratesFromSelection(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outputFile := filepath.Join(t.TempDir(), "resume.html")

	args := append([]string{"custom", "--select", "oncology,ai", "--out", outputFile}, sampleDataFlags()...)
	output, err := exec.Command(binaryPath, args...).CombinedOutput()
	require.NoError(t, err, string(output))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Oncology AI-Driven Marketing Leader")
}

func TestProfilesCommand_ListsProfiles(t *testing.T) {
	binaryPath := getBinaryPath(t)

	args := append([]string{"profiles"}, sampleDataFlags()...)
	output, err := exec.Command(binaryPath, args...).CombinedOutput()
	require.NoError(t, err, string(output))

	assert.Contains(t, string(output), "brand_management")
	assert.Contains(t, string(output), "strategy_innovation")
	assert.Contains(t, string(output), "CUSTOM OPTION")
}

func TestValidateCommand_SampleDataValid(t *testing.T) {
	binaryPath := getBinaryPath(t)

	args := append([]string{"validate"}, sampleDataFlags()...)
	output, err := exec.Command(binaryPath, args...).CombinedOutput()
	require.NoError(t, err, string(output))

	assert.Contains(t, string(output), "OK")
}
