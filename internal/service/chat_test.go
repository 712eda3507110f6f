package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"homewise/internal/model"
)

type fakeRetriever struct {
	snippets []Snippet
	err      error
	delay    time.Duration
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query string, k int) ([]Snippet, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.snippets, nil
}

type fakeGenerator struct {
	answer string
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, query string, snippets []Snippet) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newTestChatService(retriever Retriever, generator Generator) *ChatService {
	store := testStore()
	return NewChatService(store, NewInterpreter(store), NewSessionStore(), retriever, generator, time.Second)
}

func TestChatService_SearchThenCompare(t *testing.T) {
	svc := newTestChatService(nil, nil)
	ctx := context.Background()

	// First turn: a search that sets the session context.
	resp := svc.Answer(ctx, "s1", "Find 2 BHK in Mumbai")
	if !resp.Success {
		t.Fatalf("Success = false: %+v", resp)
	}
	if resp.Source != model.SourceComposer {
		t.Errorf("Source = %q, want composer", resp.Source)
	}
	if !strings.Contains(resp.Response, "Found 3 properties") {
		t.Errorf("response = %q, want 3 matches", resp.Response)
	}
	if resp.Context == nil || resp.Context.Location == nil || *resp.Context.Location != "Mumbai" {
		t.Fatalf("context = %+v, want Mumbai", resp.Context)
	}
	if resp.Context.BHK == nil || *resp.Context.BHK != 2 {
		t.Errorf("context BHK = %v, want 2", resp.Context.BHK)
	}

	// Second turn: the comparison inherits the remembered filters.
	resp = svc.Answer(ctx, "s1", "Should I buy or rent?")
	if !strings.Contains(resp.Response, "Analysis of 3 properties") {
		t.Errorf("response = %q, want analysis over remembered context", resp.Response)
	}
	if !strings.Contains(resp.Response, "Buying is financially better") {
		t.Errorf("response = %q, want buying verdict", resp.Response)
	}
}

func TestChatService_LocationReplacement(t *testing.T) {
	svc := newTestChatService(nil, nil)
	ctx := context.Background()

	svc.Answer(ctx, "s2", "properties in Thane")

	resp := svc.Answer(ctx, "s2", "Should I buy or rent in Pune?")
	if resp.Context == nil || resp.Context.Location == nil || *resp.Context.Location != "Pune" {
		t.Fatalf("context = %+v, want Pune replacing Thane", resp.Context)
	}
	if !strings.Contains(resp.Response, "For Pune:") {
		t.Errorf("response = %q, want Pune analysis", resp.Response)
	}
}

func TestChatService_SessionsDoNotBleed(t *testing.T) {
	svc := newTestChatService(nil, nil)
	ctx := context.Background()

	svc.Answer(ctx, "a", "properties in Mumbai")
	resp := svc.Answer(ctx, "b", "should i buy or rent")

	if resp.Context != nil && resp.Context.Location != nil {
		t.Errorf("session b context = %q, want none", *resp.Context.Location)
	}
	if !strings.Contains(resp.Response, "all properties") {
		t.Errorf("response = %q, want unfiltered analysis", resp.Response)
	}
}

func TestChatService_RAGPath(t *testing.T) {
	retriever := &fakeRetriever{snippets: []Snippet{{Content: "Property Overview", Score: 0.92}}}
	generator := &fakeGenerator{answer: "The decision follows the wealth comparison in the records."}
	svc := newTestChatService(retriever, generator)

	resp := svc.Answer(context.Background(), "s1", "Explain why this decision was made")
	if !resp.Success {
		t.Fatalf("Success = false: %+v", resp)
	}
	if resp.Source != model.SourceRAG {
		t.Errorf("Source = %q, want rag", resp.Source)
	}
	if resp.Response != generator.answer {
		t.Errorf("response = %q, want generated answer", resp.Response)
	}
}

func TestChatService_RAGFallback(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("connection refused")}
	generator := &fakeGenerator{answer: "unused"}
	svc := newTestChatService(retriever, generator)

	resp := svc.Answer(context.Background(), "s1", "Explain why this decision was made")
	if !resp.Success {
		t.Fatal("Success = false, fallback must not break the conversation")
	}
	if resp.Source != model.SourceFallback {
		t.Errorf("Source = %q, want fallback", resp.Source)
	}
	if !strings.Contains(resp.Response, "explain real estate concepts") {
		t.Errorf("response = %q, want template fallback", resp.Response)
	}
}

func TestChatService_RAGTimeout(t *testing.T) {
	retriever := &fakeRetriever{
		snippets: []Snippet{{Content: "doc"}},
		delay:    200 * time.Millisecond,
	}
	generator := &fakeGenerator{answer: "late"}

	store := testStore()
	svc := NewChatService(store, NewInterpreter(store), NewSessionStore(), retriever, generator, 20*time.Millisecond)

	resp := svc.Answer(context.Background(), "s1", "Explain the recommendation")
	if resp.Source != model.SourceFallback {
		t.Errorf("Source = %q, want fallback after timeout", resp.Source)
	}
}

func TestChatService_TemplatesWhenRAGDisabled(t *testing.T) {
	svc := newTestChatService(nil, nil)

	resp := svc.Answer(context.Background(), "s1", "Explain the recommendation")
	if resp.Source != model.SourceComposer {
		t.Errorf("Source = %q, want composer when RAG is not configured", resp.Source)
	}
}

func TestChatService_GeneratorFailure(t *testing.T) {
	retriever := &fakeRetriever{snippets: []Snippet{{Content: "doc"}}}
	generator := &fakeGenerator{err: errors.New("model overloaded")}
	svc := newTestChatService(retriever, generator)

	resp := svc.Answer(context.Background(), "s1", "Explain the recommendation")
	if !resp.Success || resp.Source != model.SourceFallback {
		t.Errorf("got (%v, %q), want successful fallback", resp.Success, resp.Source)
	}
}
