package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hanssen-studio/portfolio/internal/db"
)

// Inbox stores submissions in the local SQLite database.
type Inbox struct {
	db *db.DB
}

// NewInbox creates an inbox backed by database.
func NewInbox(database *db.DB) *Inbox {
	return &Inbox{db: database}
}

func (i *Inbox) Deliver(ctx context.Context, s Submission) error {
	_, err := i.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, message, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Form.Name, s.Form.Email, s.Form.Message, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting contact message: %w", err)
	}
	return nil
}

// Get returns the submission with id, or nil when it does not exist.
func (i *Inbox) Get(ctx context.Context, id string) (*Submission, error) {
	var s Submission
	err := i.db.QueryRowContext(ctx,
		`SELECT id, name, email, message, created_at FROM contact_messages WHERE id = ?`, id,
	).Scan(&s.ID, &s.Form.Name, &s.Form.Email, &s.Form.Message, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact message: %w", err)
	}
	return &s, nil
}

// List returns the most recent submissions first. A limit of zero returns
// all of them.
func (i *Inbox) List(ctx context.Context, limit int) ([]Submission, error) {
	query := `SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := i.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.Form.Name, &s.Form.Email, &s.Form.Message, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count returns the number of stored submissions.
func (i *Inbox) Count(ctx context.Context) (int, error) {
	var n int
	err := i.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
