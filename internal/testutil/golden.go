package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// BuildBinary compiles the selector into a temporary directory.
func BuildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("skipping: go toolchain not available")
	}
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "sdmenu")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = RepoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// Run captures the outcome of one binary invocation.
type Run struct {
	Stdout string
	Stderr string
	Code   int
}

// RunBinary executes bin with args, feeding stdin as keystrokes. Logs go to
// a temporary file so they never mix with the captured streams.
func RunBinary(t *testing.T, bin, stdin string, env []string, args ...string) Run {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(os.Environ(), "SDMENU_LOG_FILE="+filepath.Join(t.TempDir(), "sdmenu.log"))
	cmd.Env = append(cmd.Env, env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	run := Run{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		run.Code = exitErr.ExitCode()
	default:
		t.Fatalf("failed to run %s: %v", bin, err)
	}
	return run
}

// AssertGolden compares output with testdata/<goldenName> at the repository
// root. Set UPDATE_GOLDEN=1 to rewrite the file.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	path := filepath.Join(RepoRoot(t), "testdata", goldenName)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", goldenName, err)
	}
	if string(data) != output {
		t.Fatalf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", goldenName, string(data), output)
	}
}

// RepoRoot walks up from the working directory to the directory holding
// go.mod.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
