package assistant

import (
	"fmt"
	"testing"

	"kalibot/model"
)

func TestStoreAppendAndRecent(t *testing.T) {
	s := NewStore(10)
	s.Append(1, model.RoleUser, "hello")
	s.Append(1, model.RoleAssistant, "hi")

	got := s.Recent(1)
	if len(got) != 2 {
		t.Fatalf("Recent() returned %d messages, want 2", len(got))
	}
	if got[0].Role != model.RoleUser || got[0].Content != "hello" {
		t.Errorf("first message = %+v", got[0])
	}
	if got[1].Role != model.RoleAssistant || got[1].Content != "hi" {
		t.Errorf("second message = %+v", got[1])
	}
}

func TestStoreEvictsOldestFirst(t *testing.T) {
	s := NewStore(4)
	for i := 0; i < 10; i++ {
		s.Append(1, model.RoleUser, fmt.Sprintf("msg-%d", i))
	}

	got := s.Recent(1)
	if len(got) != 4 {
		t.Fatalf("history length = %d, want cap 4", len(got))
	}
	if got[0].Content != "msg-6" || got[3].Content != "msg-9" {
		t.Errorf("kept wrong window: first=%q last=%q", got[0].Content, got[3].Content)
	}
}

func TestStoreIsolatesUsers(t *testing.T) {
	s := NewStore(10)
	s.Append(1, model.RoleUser, "from one")
	s.Append(2, model.RoleUser, "from two")

	if n := s.Len(1); n != 1 {
		t.Errorf("user 1 length = %d, want 1", n)
	}
	if got := s.Recent(2); len(got) != 1 || got[0].Content != "from two" {
		t.Errorf("user 2 history = %+v", got)
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore(10)
	s.Append(1, model.RoleUser, "hello")
	s.Clear(1)
	if n := s.Len(1); n != 0 {
		t.Errorf("length after Clear = %d, want 0", n)
	}
	// Clearing an unknown user is a no-op.
	s.Clear(42)
}

func TestStoreZeroCapDisablesHistory(t *testing.T) {
	s := NewStore(0)
	s.Append(1, model.RoleUser, "hello")
	if n := s.Len(1); n != 0 {
		t.Errorf("zero-cap store kept %d messages", n)
	}
}

func TestRecentReturnsCopy(t *testing.T) {
	s := NewStore(10)
	s.Append(1, model.RoleUser, "original")

	got := s.Recent(1)
	got[0].Content = "mutated"

	if again := s.Recent(1); again[0].Content != "original" {
		t.Error("Recent() exposed internal slice")
	}
}
