package store

import (
	"testing"

	"github.com/studiowebux/anonctl/internal/api"
)

func assertSnapshot(t *testing.T, got Snapshot, want Snapshot) {
	t.Helper()
	if got.InputText != want.InputText {
		t.Errorf("InputText = %q, want %q", got.InputText, want.InputText)
	}
	if got.IsLoading != want.IsLoading {
		t.Errorf("IsLoading = %v, want %v", got.IsLoading, want.IsLoading)
	}
	if got.Error != want.Error {
		t.Errorf("Error = %q, want %q", got.Error, want.Error)
	}
	if got.Result != want.Result {
		t.Errorf("Result = %p, want %p", got.Result, want.Result)
	}
}

func TestNew_InitialSnapshot(t *testing.T) {
	s := New()
	assertSnapshot(t, s.Snapshot(), Snapshot{})
}

func TestMutators_TouchExactlyOneField(t *testing.T) {
	s := New()
	result := &api.AnonymizeResult{AnonymizedText: "[PERSON]", Iterations: 1}

	s.SetInputText("hello")
	assertSnapshot(t, s.Snapshot(), Snapshot{InputText: "hello"})

	s.SetLoading(true)
	assertSnapshot(t, s.Snapshot(), Snapshot{InputText: "hello", IsLoading: true})

	s.SetError("boom")
	assertSnapshot(t, s.Snapshot(), Snapshot{InputText: "hello", IsLoading: true, Error: "boom"})

	s.SetResult(result)
	assertSnapshot(t, s.Snapshot(), Snapshot{InputText: "hello", IsLoading: true, Error: "boom", Result: result})
}

func TestBegin_EntersPendingAndClearsError(t *testing.T) {
	s := New()
	s.SetInputText("text")
	s.SetError("previous failure")

	if !s.Begin() {
		t.Fatal("Begin should succeed when idle")
	}
	assertSnapshot(t, s.Snapshot(), Snapshot{InputText: "text", IsLoading: true})
}

func TestBegin_SingleFlight(t *testing.T) {
	s := New()

	if !s.Begin() {
		t.Fatal("first Begin should succeed")
	}
	if s.Begin() {
		t.Error("second Begin should fail while a request is outstanding")
	}

	s.SetLoading(false)
	if !s.Begin() {
		t.Error("Begin should succeed again after the request settled")
	}
}

func TestBegin_LeavesResultUntouched(t *testing.T) {
	s := New()
	previous := &api.AnonymizeResult{AnonymizedText: "old", Iterations: 1}
	s.SetResult(previous)

	s.Begin()
	if s.Result() != previous {
		t.Error("Begin must leave the prior result in place")
	}
}

func TestSubscribe_NotifiedSynchronouslyOnEveryMutation(t *testing.T) {
	s := New()
	var seen []Snapshot
	s.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap)
	})

	s.SetInputText("a")
	s.SetLoading(true)
	s.SetError("e")
	s.SetResult(&api.AnonymizeResult{Iterations: 1})
	s.SetLoading(false)

	if len(seen) != 5 {
		t.Fatalf("listener called %d times, want 5", len(seen))
	}
	if seen[0].InputText != "a" {
		t.Errorf("first notification InputText = %q, want %q", seen[0].InputText, "a")
	}
	if !seen[1].IsLoading {
		t.Error("second notification should carry IsLoading=true")
	}
	if seen[4].IsLoading {
		t.Error("final notification should carry IsLoading=false")
	}
}

func TestSubscribe_FailedBeginDoesNotNotify(t *testing.T) {
	s := New()
	s.Begin()

	calls := 0
	s.Subscribe(func(Snapshot) { calls++ })

	s.Begin() // no-op: already loading
	if calls != 0 {
		t.Errorf("failed Begin notified %d times, want 0", calls)
	}
}

func TestSubscribe_MultipleListeners(t *testing.T) {
	s := New()
	first, second := 0, 0
	s.Subscribe(func(Snapshot) { first++ })
	s.Subscribe(func(Snapshot) { second++ })

	s.SetInputText("x")
	if first != 1 || second != 1 {
		t.Errorf("listener calls = (%d, %d), want (1, 1)", first, second)
	}
}
