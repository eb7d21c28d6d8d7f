package mcp

import (
	"context"
	"strings"
	"testing"

	mcppkg "github.com/mark3labs/mcp-go/mcp"

	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/store"
)

func callResultText(t *testing.T, res *mcppkg.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("expected non-empty tool result")
	}
	text, ok := mcppkg.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("expected text content")
	}
	return text.Text
}

func call(t *testing.T, h func(context.Context, mcppkg.CallToolRequest) (*mcppkg.CallToolResult, error), args map[string]any) *mcppkg.CallToolResult {
	t.Helper()
	req := mcppkg.CallToolRequest{Params: mcppkg.CallToolParams{Arguments: args}}
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return res
}

func TestNewServer(t *testing.T) {
	svc, _ := newTestService(t)
	if srv := NewServer(svc, ""); srv == nil {
		t.Fatalf("expected MCP server instance")
	}
}

func TestHandleAddTaskThenShowDay(t *testing.T) {
	svc, _ := newTestService(t)

	res := call(t, handleAddTask(svc), map[string]any{"list": "goal", "text": "Ship it", "done": true})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", callResultText(t, res))
	}

	res = call(t, handleShowDay(svc), map[string]any{"date": "today"})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", callResultText(t, res))
	}
	text := callResultText(t, res)
	for _, want := range []string{`"key":"2024-03-06"`, `"text":"Ship it"`, `"done":true`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s in %s", want, text)
		}
	}
}

func TestHandleSetTaskDoneRequiresIndex(t *testing.T) {
	svc, _ := newTestService(t)

	res := call(t, handleSetTaskDone(svc), map[string]any{"list": "todo"})
	if !res.IsError {
		t.Fatalf("expected error result without index")
	}

	res = call(t, handleRemoveTask(svc), map[string]any{"list": "todo", "index": 3})
	if !res.IsError || !strings.Contains(callResultText(t, res), "task not found") {
		t.Fatalf("expected task not found error")
	}
}

func TestHandleSetSlotAndWeek(t *testing.T) {
	svc, _ := newTestService(t)

	res := call(t, handleSetSlot(svc), map[string]any{"date": "2024-03-08", "hour": "14:00", "text": "Dentist"})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", callResultText(t, res))
	}
	if !strings.Contains(callResultText(t, res), `"14H00":"Dentist"`) {
		t.Fatalf("expected slot in result")
	}

	res = call(t, handleWeek(svc), map[string]any{"date": "2024-03-08"})
	if !strings.Contains(callResultText(t, res), `"count":7`) {
		t.Fatalf("expected seven days: %s", callResultText(t, res))
	}

	res = call(t, handleListDays(svc), map[string]any{})
	if !strings.Contains(callResultText(t, res), "2024-03-08") {
		t.Fatalf("expected stored day in list")
	}
}

func TestHandleListDaysCorruptDocument(t *testing.T) {
	mem := store.NewMemory()
	mem.SetRaw(store.DocumentKey, []byte(`{not json`))
	svc := NewService(store.New(mem), daykey.English)

	res := call(t, handleListDays(svc), map[string]any{})
	if !res.IsError {
		t.Fatalf("expected tool error for unreadable document, got %q", callResultText(t, res))
	}
}
