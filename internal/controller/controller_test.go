package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/studiowebux/anonctl/internal/api"
	"github.com/studiowebux/anonctl/internal/store"
)

// fakeClient records calls and returns a scripted result or error. When
// blockUntil is set, Anonymize waits on it and signals started first, so
// tests can observe the pending state.
type fakeClient struct {
	mu         sync.Mutex
	calls      int
	result     *api.AnonymizeResult
	err        error
	started    chan struct{}
	blockUntil chan struct{}
}

func (f *fakeClient) Anonymize(ctx context.Context, text, documentID string) (*api.AnonymizeResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.blockUntil != nil {
		<-f.blockUntil
	}
	return f.result, f.err
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func successResult() *api.AnonymizeResult {
	return &api.AnonymizeResult{
		AnonymizedText: "[PERSON] lives in [LOCATION].",
		Mappings:       map[string]string{"John Doe": "[PERSON]", "Paris": "[LOCATION]"},
		Validation:     api.ValidationResult{Passed: true, Reasoning: "ok", Confidence: 0.95},
		RiskAssessment: api.RiskAssessment{OverallScore: 10, RiskLevel: api.RiskLow, GDPRCompliant: true, Confidence: 0.9},
		Iterations:     1,
		Success:        true,
		LLMProvider:    "acme",
		LLMModel:       "m1",
	}
}

func TestRun_EmptyInputNeverCallsClient(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  "} {
		s := store.New()
		s.SetInputText(input)
		client := &fakeClient{}

		New(s, client).Run(context.Background())

		if client.callCount() != 0 {
			t.Errorf("input %q: client called %d times, want 0", input, client.callCount())
		}
		if s.Error() != EmptyInputMessage {
			t.Errorf("input %q: error = %q, want empty-input message", input, s.Error())
		}
		if s.IsLoading() {
			t.Errorf("input %q: guard must not touch the loading flag", input)
		}
		if s.Result() != nil {
			t.Errorf("input %q: guard must not touch the result", input)
		}
	}
}

func TestRun_Success(t *testing.T) {
	s := store.New()
	s.SetInputText("John Doe lives in Paris.")
	want := successResult()
	client := &fakeClient{result: want}

	New(s, client).Run(context.Background())

	if client.callCount() != 1 {
		t.Fatalf("client called %d times, want 1", client.callCount())
	}
	if s.Result() != want {
		t.Error("result should be exactly the decoded response")
	}
	if s.Error() != "" {
		t.Errorf("error = %q, want empty on success", s.Error())
	}
	if s.IsLoading() {
		t.Error("loading flag must be cleared after settlement")
	}
}

func TestRun_FailureLeavesPriorResult(t *testing.T) {
	s := store.New()
	s.SetInputText("some text")
	previous := successResult()
	s.SetResult(previous)
	client := &fakeClient{err: &api.RequestError{Status: 500, Message: "service unavailable"}}

	New(s, client).Run(context.Background())

	if s.Error() != "service unavailable" {
		t.Errorf("error = %q, want failure message", s.Error())
	}
	if s.Result() != previous {
		t.Error("failure must leave the prior result untouched")
	}
	if s.IsLoading() {
		t.Error("loading flag must be cleared after a failed attempt")
	}
}

func TestRun_ClearsPreviousErrorOnNewAttempt(t *testing.T) {
	s := store.New()
	s.SetInputText("some text")
	s.SetError("stale failure")
	client := &fakeClient{result: successResult()}

	New(s, client).Run(context.Background())

	if s.Error() != "" {
		t.Errorf("error = %q, want cleared by the pending transition", s.Error())
	}
}

func TestRun_SingleFlight(t *testing.T) {
	s := store.New()
	s.SetInputText("some text")
	started := make(chan struct{})
	release := make(chan struct{})
	client := &fakeClient{result: successResult(), started: started, blockUntil: release}
	ctrl := New(s, client)

	done := make(chan struct{})
	go func() {
		ctrl.Run(context.Background())
		close(done)
	}()

	<-started
	if !s.IsLoading() {
		t.Error("loading flag should be set while the request is outstanding")
	}

	// Re-entry while pending must be a no-op.
	ctrl.Run(context.Background())
	if client.callCount() != 1 {
		t.Errorf("client called %d times during pending, want 1", client.callCount())
	}

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("first attempt did not settle")
	}

	if s.IsLoading() {
		t.Error("loading flag should be cleared after settlement")
	}
}

func TestRun_LoadingInterval(t *testing.T) {
	s := store.New()
	s.SetInputText("some text")
	client := &fakeClient{result: successResult()}

	var transitions []bool
	s.Subscribe(func(snap store.Snapshot) {
		transitions = append(transitions, snap.IsLoading)
	})

	New(s, client).Run(context.Background())

	// Pending transition, result write (still loading), settle.
	want := []bool{true, true, false}
	if len(transitions) != len(want) {
		t.Fatalf("saw %d store notifications, want %d", len(transitions), len(want))
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("notification %d: IsLoading = %v, want %v", i, transitions[i], want[i])
		}
	}
}
