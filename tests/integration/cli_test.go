// CLI integration tests for pantry.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the pantry binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "pantry-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "pantry")
	SetPantryBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/pantry")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{Err: err, Output: string(output)})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestInit(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPantry("init")
	if result.Stdout == "" {
		t.Error("expected init output message")
	}
	if _, err := os.Stat(filepath.Join(env.Config, "config.yaml")); err != nil {
		t.Errorf("config.yaml not present: %v", err)
	}
}

func TestAddPersistsAcrossRuns(t *testing.T) {
	env := NewTestEnv(t)

	created := ParseJSON[Task](t, env.MustRunPantry("--json", "add", "Buy milk").Stdout)
	if created.ID == "" {
		t.Fatal("expected a generated task id")
	}
	if created.Title != "Buy milk" {
		t.Errorf("title = %q, want %q", created.Title, "Buy milk")
	}
	if created.Completed {
		t.Error("new task must start active")
	}

	// A second process run must see the task.
	listed := ParseJSON[[]Task](t, env.MustRunPantry("--json", "list").Stdout)
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("list after restart = %+v, want the created task", listed)
	}
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunPantry("add", "   ")
	if result.ExitCode == 0 {
		t.Fatal("expected non-zero exit for whitespace title")
	}
	if !strings.Contains(result.Stderr, "empty") {
		t.Errorf("stderr = %q, want empty-title message", result.Stderr)
	}
}

func TestToggleAndStats(t *testing.T) {
	env := NewTestEnv(t)

	a := ParseJSON[Task](t, env.MustRunPantry("--json", "add", "one").Stdout)
	env.MustRunPantry("add", "two")
	env.MustRunPantry("add", "three")

	env.MustRunPantry("toggle", a.ID)

	stats := ParseJSON[Stats](t, env.MustRunPantry("--json", "stats").Stdout)
	if stats.Total != 3 || stats.Completed != 1 || stats.Active != 2 {
		t.Errorf("stats = %+v, want 3 total / 1 completed / 2 active", stats)
	}
	if stats.CompletionRate != 33 {
		t.Errorf("completion rate = %d, want 33", stats.CompletionRate)
	}
}

func TestToggleMissingIDFails(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPantry("add", "one")

	result := env.RunPantry("toggle", "no-such-id")
	if result.ExitCode == 0 {
		t.Fatal("expected non-zero exit for unknown id")
	}
}

func TestFilterPersists(t *testing.T) {
	env := NewTestEnv(t)

	a := ParseJSON[Task](t, env.MustRunPantry("--json", "add", "done").Stdout)
	env.MustRunPantry("add", "open")
	env.MustRunPantry("toggle", a.ID)

	env.MustRunPantry("filter", "active")

	// The persisted filter applies on the next run.
	listed := ParseJSON[[]Task](t, env.MustRunPantry("--json", "list").Stdout)
	if len(listed) != 1 || listed[0].Title != "open" {
		t.Fatalf("filtered list = %+v, want only the active task", listed)
	}

	shown := env.MustRunPantry("filter")
	if strings.TrimSpace(shown.Stdout) != "active" {
		t.Errorf("filter = %q, want active", strings.TrimSpace(shown.Stdout))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := NewTestEnv(t)
	src.MustRunPantry("add", "alpha")
	b := ParseJSON[Task](t, src.MustRunPantry("--json", "add", "beta").Stdout)
	src.MustRunPantry("toggle", b.ID)
	src.MustRunPantry("filter", "completed")

	blob := src.MustRunPantry("export").Stdout

	dst := NewTestEnv(t)
	dst.RunPantryStdin(blob, "import")

	stats := ParseJSON[Stats](t, dst.MustRunPantry("--json", "stats").Stdout)
	if stats.Total != 2 || stats.Completed != 1 {
		t.Errorf("imported stats = %+v, want 2 total / 1 completed", stats)
	}
	shown := dst.MustRunPantry("filter")
	if strings.TrimSpace(shown.Stdout) != "completed" {
		t.Errorf("imported filter = %q, want completed", strings.TrimSpace(shown.Stdout))
	}
}

func TestImportRejectsGarbageAndKeepsState(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPantry("add", "keep me")

	result := env.RunPantryStdin("{not json", "import")
	if result.ExitCode == 0 {
		t.Fatal("expected non-zero exit for malformed snapshot")
	}

	listed := ParseJSON[[]Task](t, env.MustRunPantry("--json", "list").Stdout)
	if len(listed) != 1 || listed[0].Title != "keep me" {
		t.Fatalf("state after failed import = %+v, want untouched", listed)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPantry("add", "one")

	if result := env.RunPantry("reset"); result.ExitCode == 0 {
		t.Fatal("reset without --yes must fail")
	}

	env.MustRunPantry("reset", "--yes")
	stats := ParseJSON[Stats](t, env.MustRunPantry("--json", "stats").Stdout)
	if stats.Total != 0 {
		t.Errorf("total after reset = %d, want 0", stats.Total)
	}
}

func TestHealth(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPantry("add", "one")

	result := env.MustRunPantry("health")
	if !strings.Contains(result.Stdout, "Storage:   ok") {
		t.Errorf("health output = %q, want storage ok", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "Integrity: ok") {
		t.Errorf("health output = %q, want integrity ok", result.Stdout)
	}
}

func TestSQLiteBackendLifecycle(t *testing.T) {
	env := NewTestEnvBackend(t, "sqlite")

	env.MustRunPantry("add", "sqlite task")
	listed := ParseJSON[[]Task](t, env.MustRunPantry("--json", "list").Stdout)
	if len(listed) != 1 || listed[0].Title != "sqlite task" {
		t.Fatalf("sqlite list = %+v, want the created task", listed)
	}
	if _, err := os.Stat(filepath.Join(env.DataDir, "pantry.db")); err != nil {
		t.Errorf("pantry.db not present: %v", err)
	}
}
