package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/steven-cutting/decree/internal/output"
	"github.com/steven-cutting/decree/internal/testutil"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"decree", "--config", ""}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestTitleSet(t *testing.T) {
	dir, _ := testutil.TestDir(t, map[string]string{
		"0001-first-decision.md":  "# 0001: First decision\n",
		"0002-second-decision.md": "# 0002: Second\n\n[first](0001-first-decision.md)\n",
	})

	code, stdout, stderr := runCLI(t, "--dir", dir, "title", "set", "1", "Adopt", "New", "Title")
	if code != output.ExitSuccess {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	want := "Updated title in 0001-first-decision.md\n" +
		"Renamed 0001-first-decision.md -> 0001-adopt-new-title.md\n" +
		"Updated links in 0002-second-decision.md\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if got := testutil.ReadFile(t, dir, "0001-adopt-new-title.md"); got != "# 0001: Adopt New Title\n" {
		t.Errorf("renamed entry = %q", got)
	}
}

func TestTitleSet_DryRun(t *testing.T) {
	dir, _ := testutil.TestDir(t, map[string]string{"0001-old.md": "# 0001: Old\n"})

	code, stdout, _ := runCLI(t, "--dir", dir, "title", "set", "--dry-run", "1", "New")
	if code != output.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	want := "DRY-RUN: Updated title in 0001-old.md\nDRY-RUN: Renamed 0001-old.md -> 0001-new.md\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if got := testutil.ReadFile(t, dir, "0001-old.md"); got != "# 0001: Old\n" {
		t.Errorf("dry run wrote %q", got)
	}
}

func TestTitleSet_NoRename(t *testing.T) {
	dir, _ := testutil.TestDir(t, map[string]string{"0001-old.md": "# 0001: Old\n"})

	code, stdout, _ := runCLI(t, "--dir", dir, "title", "set", "--no-rename", "1", "New")
	if code != output.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if stdout != "Updated title in 0001-old.md\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestTitleSet_DirFromEnv(t *testing.T) {
	dir, _ := testutil.TestDir(t, map[string]string{"0001-old.md": "# 0001: Old\n"})
	t.Setenv("DECREE_DIR", dir)

	code, _, stderr := runCLI(t, "title", "set", "--no-rename", "1", "New")
	if code != output.ExitSuccess {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if got := testutil.ReadFile(t, dir, "0001-old.md"); got != "# 0001: New\n" {
		t.Errorf("content = %q", got)
	}
}

func TestTitleSync(t *testing.T) {
	dir, _ := testutil.TestDir(t, map[string]string{
		"0001-old.md": "# Fresh Start\n",
		"0007-x.md":   "## 7. X\n",
	})

	code, stdout, stderr := runCLI(t, "--dir", dir, "title", "sync")
	if code != output.ExitSuccess {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	want := "Updated title in 0001-old.md\n" +
		"Renamed 0001-old.md -> 0001-fresh-start.md\n" +
		"Updated title in 0007-x.md\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	code, stdout, _ = runCLI(t, "--dir", dir, "title", "sync")
	if code != output.ExitSuccess || stdout != "" {
		t.Errorf("second sync: code = %d, stdout = %q", code, stdout)
	}
}

func TestExitCodes(t *testing.T) {
	dir, _ := testutil.TestDir(t, map[string]string{
		"0008-source.md":        "# 0008: Source\n",
		"0008-existing-slug.md": "# 0008: Existing Slug\n",
	})

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"not found", []string{"--dir", dir, "title", "set", "42", "X"}, output.ExitInputMissing, "Error: Could not find entry for target '42'\n"},
		{"missing dir", []string{"--dir", filepath.Join(dir, "nope"), "title", "sync"}, output.ExitInputMissing, ""},
		{"conflict", []string{"--dir", dir, "title", "set", "0008-source.md", "Existing", "Slug"}, output.ExitGeneralError,
			"Error: Cannot rename 0008-source.md to 0008-existing-slug.md: target already exists\n"},
		{"missing title", []string{"--dir", dir, "title", "set", "1"}, output.ExitUsageError, ""},
		{"both rename flags", []string{"--dir", dir, "title", "set", "--rename", "--no-rename", "1", "X"}, output.ExitUsageError, ""},
		{"sync args", []string{"--dir", dir, "title", "sync", "extra"}, output.ExitUsageError, ""},
		{"watch dry run", []string{"--dir", dir, "title", "sync", "--watch", "--dry-run"}, output.ExitUsageError, ""},
		{"unknown flag", []string{"--dir", dir, "title", "set", "--bogus", "1", "X"}, output.ExitUsageError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.code, stderr)
			}
			if tt.msg != "" && stderr != tt.msg {
				t.Errorf("stderr = %q, want %q", stderr, tt.msg)
			}
		})
	}
}

func TestExitCodes_Config(t *testing.T) {
	dir, _ := testutil.TestDir(t, map[string]string{
		"0001-a.md":           "# 0001: A\n",
		".decree/config.toml": "[title\n",
	})
	code, _, stderr := runCLI(t, "--dir", dir, "title", "sync")
	if code != output.ExitConfigError {
		t.Errorf("malformed toml: exit code = %d, want %d", code, output.ExitConfigError)
	}
	if !strings.Contains(stderr, "Invalid configuration in") {
		t.Errorf("stderr = %q", stderr)
	}

	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte("app:\n  log_format: xml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, errOut bytes.Buffer
	code = run(context.Background(), []string{"decree", "--config", cfgFile, "--dir", dir, "title", "sync"}, &stdout, &errOut)
	if code != output.ExitConfigError {
		t.Errorf("invalid yaml config: exit code = %d, want %d", code, output.ExitConfigError)
	}
}

func TestMissingConfigWarns(t *testing.T) {
	dir, _ := testutil.TestDir(t, map[string]string{
		"0001-a.md": "# 0001: A\n",
	})
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"decree", "--config", missing, "--dir", dir, "title", "sync"}, &stdout, &stderr)
	if code != output.ExitSuccess {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "Warning: config file "+missing+" not found") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
