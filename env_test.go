package scalp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvironFromPairs(t *testing.T) {
	got := environFromPairs([]string{"FOO=bar", "BAZ=qux=extra", "EMPTY="})
	if got["FOO"] != "bar" {
		t.Fatalf("FOO = %q, want bar", got["FOO"])
	}
	if got["BAZ"] != "qux=extra" {
		t.Fatalf("BAZ = %q, want qux=extra (only first = splits)", got["BAZ"])
	}
	if got["EMPTY"] != "" {
		t.Fatalf("EMPTY = %q, want empty string", got["EMPTY"])
	}
}

func TestOSEnvironmentReflectsProcess(t *testing.T) {
	t.Setenv("SCALP_TEST_VAR", "present")
	env := OSEnvironment()
	if env["SCALP_TEST_VAR"] != "present" {
		t.Fatalf("OSEnvironment()[SCALP_TEST_VAR] = %q, want present", env["SCALP_TEST_VAR"])
	}
}

func TestDotEnvironmentProcessWins(t *testing.T) {
	t.Setenv("SCALP_DOTENV_SHARED", "from-process")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	contents := "SCALP_DOTENV_SHARED=from-file\nSCALP_DOTENV_ONLY=file-only\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	env, err := DotEnvironment(path)
	if err != nil {
		t.Fatalf("DotEnvironment: %v", err)
	}
	if env["SCALP_DOTENV_SHARED"] != "from-process" {
		t.Fatalf("process environment should win, got %q", env["SCALP_DOTENV_SHARED"])
	}
	if env["SCALP_DOTENV_ONLY"] != "file-only" {
		t.Fatalf("file-only variable should be layered in, got %q", env["SCALP_DOTENV_ONLY"])
	}
}

func TestDotEnvironmentMissingFile(t *testing.T) {
	if _, err := DotEnvironment(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected an error for a missing dotenv file")
	}
}
