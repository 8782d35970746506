package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add ship release due:2024-09-01", TypeAdd},
		{"filter active", TypeFilter},
		{"show completed", TypeFilter},
		{"sort due", TypeSort},
		{"toggle 3", TypeToggle},
		{"done 3", TypeToggle},
		{"/delete 4", TypeDelete},
		{"rm 4", TypeDelete},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddSplitsOptions(t *testing.T) {
	cmd, err := Parse("/add Ship prio:High the release due:2024-09-01")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Title != "Ship the release" {
		t.Fatalf("unexpected title: %q", cmd.Add.Title)
	}
	if cmd.Add.Due != "2024-09-01" || cmd.Add.Priority != "High" {
		t.Fatalf("unexpected options: %+v", cmd.Add)
	}

	cmd, err = Parse("add due:2024-09-01")
	if err != nil {
		t.Fatalf("empty title must reach the form validator, got %v", err)
	}
	if cmd.Add.Title != "" {
		t.Fatalf("expected empty title, got %q", cmd.Add.Title)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"filter", ErrCodeInvalidArgument},
		{"sort", ErrCodeInvalidArgument},
		{"toggle", ErrCodeInvalidArgument},
		{"delete 1 2", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/toggle 7")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Toggle: func(a TargetArgs) (Result, error) {
			called = true
			if a.ID != "7" {
				t.Fatalf("unexpected id: %q", a.ID)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("sort priority")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
