package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubInterpreter writes an executable shell script that appends one line
// to countFile per invocation and exits with the given code.
func stubInterpreter(t *testing.T, dir string, exitCode int) (script, countFile string) {
	t.Helper()

	countFile = filepath.Join(dir, "count")
	script = filepath.Join(dir, "osascript-stub")

	content := fmt.Sprintf("#!/bin/sh\necho x >> %s\nexit %d\n", countFile, exitCode)

	if err := os.WriteFile(script, []byte(content), 0700); err != nil { //nolint:gosec // Test stub must be executable
		t.Fatalf("failed to write stub: %v", err)
	}

	return script, countFile
}

// invocationCount returns how many times the stub was launched.
func invocationCount(t *testing.T, countFile string) int {
	t.Helper()

	data, err := os.ReadFile(countFile) //nolint:gosec // Test-owned path
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("failed to read count file: %v", err)
	}
	return strings.Count(string(data), "x")
}

// runBench executes the bench command with the given extra arguments.
func runBench(t *testing.T, args ...string) error {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"bench"}, args...))
	return cmd.Execute()
}

// TestBenchCmdInvocationCounts verifies process launch counts per
// strategy: with 2 reps and 3 values, single launches 6 processes and
// each batch strategy launches 2.
func TestBenchCmdInvocationCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{
			name: "single strategy launches reps*values",
			args: []string{"--batch=false", "--batch-alt=false"},
			want: 6,
		},
		{
			name: "batch strategy launches one per rep",
			args: []string{"--single=false", "--batch-alt=false"},
			want: 2,
		},
		{
			name: "batch-alt strategy launches one per rep",
			args: []string{"--single=false", "--batch=false"},
			want: 2,
		},
		{
			name: "all disabled launches nothing",
			args: []string{"--single=false", "--batch=false", "--batch-alt=false"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			script, countFile := stubInterpreter(t, t.TempDir(), 0)
			args := append([]string{
				"--reps", "2", "--values", "3", "--interpreter", script,
			}, tt.args...)

			if err := runBench(t, args...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := invocationCount(t, countFile); got != tt.want {
				t.Errorf("expected %d invocations, got %d", tt.want, got)
			}
		})
	}
}

// TestBenchCmdAbortsOnFailure verifies a failing bridge invocation aborts
// the run with an error after the first launch.
func TestBenchCmdAbortsOnFailure(t *testing.T) {
	t.Parallel()

	script, countFile := stubInterpreter(t, t.TempDir(), 1)

	err := runBench(t, "--reps", "2", "--values", "3", "--interpreter", script)
	if err == nil {
		t.Fatal("expected error from failing interpreter")
	}
	if !strings.Contains(err.Error(), "osascript failed") {
		t.Errorf("expected osascript failure, got %v", err)
	}

	if got := invocationCount(t, countFile); got != 1 {
		t.Errorf("expected run to abort after 1 invocation, got %d", got)
	}
}

// TestBenchCmdValidation verifies flag validation surfaces sentinel
// errors before anything launches.
func TestBenchCmdValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "zero reps", args: []string{"--reps", "0"}},
		{name: "negative values", args: []string{"--values", "-1"}},
		{name: "empty bundle ID", args: []string{"--bundle-id", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := runBench(t, tt.args...)
			if err == nil {
				t.Fatal("expected configuration error")
			}
			if !strings.Contains(err.Error(), "configuration error") {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}
