// Package integration provides CLI integration tests for pantry.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// pantryBin is the path to the built pantry binary.
	pantryBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetPantryBin sets the path to the pantry binary (called from TestMain).
func SetPantryBin(path string) {
	pantryBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and
// data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment using the file backend.
func NewTestEnv(t *testing.T) *TestEnv {
	return NewTestEnvBackend(t, "file")
}

// NewTestEnvBackend creates an isolated environment on a specific backend.
func NewTestEnvBackend(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build pantry: %v", buildErr)
	}
	if pantryBin == "" {
		t.Fatal("pantry binary not built (pantryBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: " + backend + "\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a pantry command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunPantry executes the pantry CLI with the given arguments.
func (e *TestEnv) RunPantry(args ...string) CmdResult {
	return e.runWithStdin(nil, args...)
}

// RunPantryStdin executes the pantry CLI feeding input on stdin.
func (e *TestEnv) RunPantryStdin(stdin string, args ...string) CmdResult {
	return e.runWithStdin([]byte(stdin), args...)
}

func (e *TestEnv) runWithStdin(stdin []byte, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(pantryBin, allArgs...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run pantry: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunPantry executes the pantry CLI and fails the test on non-zero exit.
func (e *TestEnv) MustRunPantry(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunPantry(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("pantry %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Task mirrors the CLI's JSON task output.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Stats mirrors the stats command's JSON output.
type Stats struct {
	Total          int  `json:"total"`
	Active         int  `json:"active"`
	Completed      int  `json:"completed"`
	CompletionRate int  `json:"completionRate"`
	AllCompleted   bool `json:"allCompleted"`
}
