package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homewise/internal/service"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// VectorIndex stores property explanation documents and their embeddings in
// PostgreSQL with the pgvector extension.
type VectorIndex struct {
	db *sqlx.DB
}

// Document is one embedded property explanation.
type Document struct {
	ID        int64     `db:"id"`
	Content   string    `db:"content"`
	Embedding []float32 `db:"-"`
}

// NewVectorIndex connects to PostgreSQL and ensures the document schema.
func NewVectorIndex(dsn string, maxConn, maxIdleConn int) (*VectorIndex, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	idx := &VectorIndex{db: db}
	if err := idx.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

// Close closes the database connection
func (v *VectorIndex) Close() error {
	return v.db.Close()
}

func (v *VectorIndex) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`CREATE TABLE IF NOT EXISTS property_documents (
			id BIGSERIAL PRIMARY KEY,
			content TEXT NOT NULL,
			embedding vector,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := v.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// Count returns the number of indexed documents.
func (v *VectorIndex) Count(ctx context.Context) (int, error) {
	var n int
	if err := v.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM property_documents`); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}

// ReplaceAll atomically swaps the index contents for a fresh set of
// documents. Used by the rebuild endpoint after re-analysis.
func (v *VectorIndex) ReplaceAll(ctx context.Context, docs []Document) (int, []string) {
	success := 0
	var errors []string

	tx, err := v.db.BeginTxx(ctx, nil)
	if err != nil {
		errors = append(errors, fmt.Sprintf("failed to start transaction: %v", err))
		return success, errors
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM property_documents`); err != nil {
		errors = append(errors, fmt.Sprintf("failed to clear index: %v", err))
		return success, errors
	}

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO property_documents (content, embedding) VALUES ($1, $2)`)
	if err != nil {
		errors = append(errors, fmt.Sprintf("failed to prepare statement: %v", err))
		return success, errors
	}
	defer stmt.Close()

	for i, doc := range docs {
		vec := pgvector.NewVector(doc.Embedding)
		if _, err := stmt.ExecContext(ctx, doc.Content, vec); err != nil {
			errors = append(errors, fmt.Sprintf("document %d: %v", i, err))
			continue
		}
		success++
	}

	if err := tx.Commit(); err != nil {
		errors = append(errors, fmt.Sprintf("failed to commit transaction: %v", err))
		return 0, errors
	}

	return success, errors
}

// Search returns the k documents nearest to the query embedding by cosine
// distance, with score = 1 - distance.
func (v *VectorIndex) Search(ctx context.Context, embedding []float32, k int) ([]service.Snippet, error) {
	if k <= 0 {
		k = 3
	}
	vec := pgvector.NewVector(embedding)

	rows, err := v.db.QueryxContext(ctx, `
		SELECT content, 1 - (embedding <=> $1) AS score
		FROM property_documents
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2
	`, vec, k)
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}
	defer rows.Close()

	var snippets []service.Snippet
	for rows.Next() {
		var s service.Snippet
		if err := rows.Scan(&s.Content, &s.Score); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		snippets = append(snippets, s)
	}
	return snippets, rows.Err()
}
