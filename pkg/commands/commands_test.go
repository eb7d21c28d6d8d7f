package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

// run executes the command tree against a throwaway config directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("DAYPLAN_CONFIG_PATH", dir)
	t.Setenv("DAYPLAN_PATH", dir+"/data")
	t.Setenv("DAYPLAN_LOCALE", "en")

	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	for _, name := range []string{"show", "set", "add", "done", "remove", "week", "info", "ui", "mcp", "version", "upgrade", "completion"} {
		if c, _, err := cmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Fatalf("missing command %q", name)
		}
	}
	for _, name := range []string{"todo", "goal"} {
		if _, _, err := cmd.Find([]string{"add", name}); err != nil {
			t.Fatalf("missing add %s", name)
		}
	}
}

func TestAddThenShowJSON(t *testing.T) {
	dir := t.TempDir()
	env := func() {
		t.Setenv("HOME", dir)
		t.Setenv("DAYPLAN_CONFIG_PATH", dir)
		t.Setenv("DAYPLAN_PATH", dir+"/data")
		t.Setenv("DAYPLAN_LOCALE", "en")
	}
	exec := func(args ...string) string {
		env()
		var out bytes.Buffer
		cmd := New()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v\n%s", args, err, out.String())
		}
		return out.String()
	}

	exec("add", "todo", "buy", "milk", "--on=2024-03-05")
	exec("set", "9", "standup", "--on=2024-03-05")
	exec("done", "todo", "1", "--on=2024-03-05")

	var got struct {
		Key    string `json:"key"`
		Record struct {
			Schedule map[string]string `json:"schedule"`
			Todos    []struct {
				Text string `json:"text"`
				Done bool   `json:"done"`
			} `json:"todos"`
		} `json:"record"`
	}
	out := exec("show", "--on=2024-03-05", "--json")
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if got.Key != "2024-03-05" || got.Record.Schedule["09H00"] != "standup" {
		t.Fatalf("unexpected day %+v", got)
	}
	if len(got.Record.Todos) != 1 || got.Record.Todos[0].Text != "buy milk" || !got.Record.Todos[0].Done {
		t.Fatalf("unexpected todos %+v", got.Record.Todos)
	}

	exec("remove", "todo", "1", "--on=2024-03-05")
	if out := exec("show", "--on=2024-03-05"); strings.Contains(out, "buy milk") {
		t.Fatalf("expected todo removed:\n%s", out)
	}
}

func TestBadArgs(t *testing.T) {
	if _, err := run(t, "done", "notes", "1"); err == nil {
		t.Fatalf("expected error for unknown list")
	}
	if _, err := run(t, "set"); err == nil {
		t.Fatalf("expected error without hour")
	}
	if _, err := run(t, "show", "--on=someday"); err == nil {
		t.Fatalf("expected error for bad date")
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		out, err := run(t, "completion", shell)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", shell, err)
		}
		if !strings.Contains(out, "dayplan") {
			t.Fatalf("%s: expected script mentioning dayplan", shell)
		}
	}
	if _, err := run(t, "completion", "tcsh"); err == nil {
		t.Fatalf("expected error for unsupported shell")
	}
}
