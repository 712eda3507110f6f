package service

import (
	"context"
	"fmt"
	"strings"
)

// Snippet is one retrieved property document with its relevance score.
type Snippet struct {
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Retriever finds the property documents most relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]Snippet, error)
}

// Generator produces a grounded answer from retrieved documents.
type Generator interface {
	Generate(ctx context.Context, query string, snippets []Snippet) (string, error)
}

// ragSystemPrompt constrains the model to explaining the retrieved records.
const ragSystemPrompt = `You are a real estate assistant.
You must NOT calculate numbers.
You must NOT change financial values.
You must ONLY explain the provided property records.`

// OpenAIGenerator answers questions through an OpenAI-compatible chat model.
type OpenAIGenerator struct {
	client *OpenAIClient
}

// NewOpenAIGenerator wraps an OpenAI client as a Generator. Returns nil when
// the client is not configured, so callers can fall back to templates.
func NewOpenAIGenerator(client *OpenAIClient) *OpenAIGenerator {
	if client == nil || !client.IsEnabled() {
		return nil
	}
	return &OpenAIGenerator{client: client}
}

// Generate builds a grounded prompt from the snippets and asks the model.
func (g *OpenAIGenerator) Generate(ctx context.Context, query string, snippets []Snippet) (string, error) {
	docs := make([]string, 0, len(snippets))
	for _, s := range snippets {
		docs = append(docs, s.Content)
	}

	var prompt strings.Builder
	prompt.WriteString("Property Records:\n")
	prompt.WriteString(strings.Join(docs, "\n\n---\n\n"))
	prompt.WriteString("\n\nUser Question:\n")
	prompt.WriteString(query)
	prompt.WriteString("\n\nAnswer strictly using the above records.")

	resp, err := g.client.ChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: ragSystemPrompt},
			{Role: "user", Content: prompt.String()},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// SnippetSearcher is the slice of the vector index the retriever needs.
type SnippetSearcher interface {
	Search(ctx context.Context, embedding []float32, k int) ([]Snippet, error)
}

// VectorRetriever embeds the query and searches the vector index.
type VectorRetriever struct {
	embedder *OpenAIClient
	index    SnippetSearcher
}

// NewVectorRetriever wires an embedding client to a vector index. Returns nil
// when either side is unavailable.
func NewVectorRetriever(embedder *OpenAIClient, index SnippetSearcher) *VectorRetriever {
	if embedder == nil || !embedder.IsEnabled() || index == nil {
		return nil
	}
	return &VectorRetriever{embedder: embedder, index: index}
}

// Retrieve embeds the query and returns the k nearest documents.
func (r *VectorRetriever) Retrieve(ctx context.Context, query string, k int) ([]Snippet, error) {
	embeddings, err := r.embedder.CreateEmbeddings(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(embeddings) == 0 || len(embeddings[0]) == 0 {
		return nil, fmt.Errorf("empty query embedding")
	}
	return r.index.Search(ctx, embeddings[0], k)
}
