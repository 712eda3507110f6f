package service

import (
	"context"
	"log"
	"time"

	"homewise/internal/dataset"
	"homewise/internal/model"
)

const (
	sampleLimit       = 5
	retrieveK         = 3
	defaultRAGTimeout = 10 * time.Second
)

// ChatService answers natural-language questions over the analyzed dataset.
// Template responses come straight from the dataset; EXPLAIN and EDUCATIONAL
// questions are routed through retrieval-augmented generation when a
// retriever and generator are configured.
type ChatService struct {
	store      *dataset.Store
	interp     *Interpreter
	sessions   *SessionStore
	retriever  Retriever
	generator  Generator
	ragTimeout time.Duration
}

// NewChatService builds a chat service. retriever and generator may be nil,
// in which case every intent is answered from templates.
func NewChatService(store *dataset.Store, interp *Interpreter, sessions *SessionStore, retriever Retriever, generator Generator, ragTimeout time.Duration) *ChatService {
	if ragTimeout <= 0 {
		ragTimeout = defaultRAGTimeout
	}
	return &ChatService{
		store:      store,
		interp:     interp,
		sessions:   sessions,
		retriever:  retriever,
		generator:  generator,
		ragTimeout: ragTimeout,
	}
}

// ragEnabled reports whether the full retrieval path is configured.
func (s *ChatService) ragEnabled() bool {
	return s.retriever != nil && s.generator != nil
}

// Answer runs the full pipeline for one query: classify intent, extract
// filters, merge them into the session context, aggregate stats, and compose
// or generate a response. It never fails on model errors; the templated
// response is the fallback.
func (s *ChatService) Answer(ctx context.Context, sessionID, query string) model.ChatResponse {
	intent := ClassifyIntent(query)
	extracted := s.interp.ExtractFilters(query)
	merged := s.sessions.Update(sessionID, extracted)

	stats := ComputeStats(s.store, merged)
	samples, total := FilterProperties(s.store, merged, sampleLimit)

	if s.ragEnabled() && (intent == model.IntentExplain || intent == model.IntentEducational) {
		if answer, ok := s.generate(ctx, query); ok {
			return model.ChatResponse{
				Success:  true,
				Response: answer,
				Source:   model.SourceRAG,
				Context:  &merged,
			}
		}
		return model.ChatResponse{
			Success:  true,
			Response: Compose(intent, stats, samples, total),
			Source:   model.SourceFallback,
			Context:  &merged,
		}
	}

	return model.ChatResponse{
		Success:  true,
		Response: Compose(intent, stats, samples, total),
		Source:   model.SourceComposer,
		Context:  &merged,
	}
}

// generate runs retrieval plus generation under the RAG timeout. Any error
// is logged and reported as not-ok so the caller falls back to templates.
func (s *ChatService) generate(ctx context.Context, query string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.ragTimeout)
	defer cancel()

	snippets, err := s.retriever.Retrieve(ctx, query, retrieveK)
	if err != nil {
		log.Printf("⚠️ RAG retrieval failed, falling back to templates: %v", err)
		return "", false
	}
	if len(snippets) == 0 {
		return "", false
	}

	answer, err := s.generator.Generate(ctx, query, snippets)
	if err != nil {
		log.Printf("⚠️ RAG generation failed, falling back to templates: %v", err)
		return "", false
	}
	if answer == "" {
		return "", false
	}
	return answer, true
}

// Context returns the current merged filters for a session.
func (s *ChatService) Context(sessionID string) model.Filters {
	return s.sessions.Get(sessionID)
}

// ResetContext clears a session's conversation context.
func (s *ChatService) ResetContext(sessionID string) {
	s.sessions.Reset(sessionID)
}
