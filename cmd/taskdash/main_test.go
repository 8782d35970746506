package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sandeepkv93/taskdash/internal/update"
)

// execute runs the root command with args and returns the config it would
// start the dashboard with.
func execute(t *testing.T, args ...string) (update.RuntimeConfig, error) {
	t.Helper()
	var got update.RuntimeConfig
	started := false
	cmd := newRootCmd(func(cfg update.RuntimeConfig) error {
		got = cfg
		started = true
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	err := cmd.Execute()
	if err == nil && !started {
		t.Fatal("expected dashboard start")
	}
	return got, err
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TASKDASH_FILTER", "completed")
	t.Setenv("TASKDASH_SORT", "priority")
	t.Setenv("TASKDASH_LOG_FILE", "env.log")

	cfg, err := execute(t, "--filter", "active", "--sort", "due", "--no-seed", "--ids", "uuid", "--log-file", "flag.log")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if cfg.Filter != "Active" || cfg.Sort != "dueDate" {
		t.Fatalf("unexpected selection: %+v", cfg)
	}
	if cfg.Seed || cfg.IDStrategy != "uuid" || cfg.LogFile != "flag.log" {
		t.Fatalf("unexpected runtime flags: %+v", cfg)
	}
}

func TestEnvUsedWithoutFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TASKDASH_FILTER", "completed")
	t.Setenv("TASKDASH_ID_STRATEGY", "uuid")

	cfg, err := execute(t)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if cfg.Filter != "Completed" || cfg.Sort != "priority" || !cfg.Seed || cfg.IDStrategy != "uuid" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestRejectsBadFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := execute(t, "--sort", "title"); err == nil {
		t.Fatal("expected invalid sort to be rejected")
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd(func(update.RuntimeConfig) error {
		t.Fatal("version must not start the dashboard")
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out.String()) != version {
		t.Fatalf("unexpected version output %q", out.String())
	}
}
