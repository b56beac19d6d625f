// Package comments persists the comments resource behind the HTTP layer.
package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no comment exists with the requested ID
var ErrNotFound = errors.New("comment not found")

// Comment is a stored comment record
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists comments in a SQL database
type Store struct {
	db *sql.DB
}

// NewStore creates a store backed by the given database handle
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the comments table if it does not exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		author TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create comments table: %w", err)
	}
	return nil
}

// List returns all comments ordered by creation time
func (s *Store) List(ctx context.Context) ([]Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, author, body, created_at FROM comments ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Author, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}

// Create inserts a new comment and returns the stored record
func (s *Store) Create(ctx context.Context, author, body string) (*Comment, error) {
	c := &Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO comments (id, author, body, created_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Author, c.Body, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return c, nil
}

// DeleteByID removes a comment and returns the deleted record.
// Returns ErrNotFound when no comment has the given ID.
func (s *Store) DeleteByID(ctx context.Context, id string) (*Comment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Load the record first so the caller gets back what was deleted
	var c Comment
	row := tx.QueryRowContext(ctx,
		`SELECT id, author, body, created_at FROM comments WHERE id = ?`, id)
	if err := row.Scan(&c.ID, &c.Author, &c.Body, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &c, nil
}
