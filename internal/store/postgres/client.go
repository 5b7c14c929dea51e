package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/a6w/mapmo/internal/errs"
	"github.com/a6w/mapmo/internal/store"
)

// Client implements store.Client using PostgreSQL.
type Client struct {
	db  *DB
	now func() time.Time
}

var _ store.Client = (*Client)(nil)

// NewClient constructs a document store client over db.
func NewClient(db *DB) *Client { return &Client{db: db, now: time.Now} }

// SetClock overrides the server clock. Test hook.
func (c *Client) SetClock(now func() time.Time) { c.now = now }

// Query returns all documents of collection whose top-level field equals value.
// Comparison happens on the jsonb text form, which is exact for the string
// fields this contract queries on (userID).
func (c *Client) Query(ctx context.Context, collection, field string, value any) ([]store.Document, error) {
	const q = `
SELECT id, fields FROM documents
WHERE collection=$1 AND fields->>$2 = $3`
	rows, err := c.db.Pool.Query(ctx, q, collection, field, fmt.Sprint(value))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Document
	for rows.Next() {
		var (
			id  uuid.UUID
			raw []byte
		)
		if err = rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, store.Document{ID: id.String(), Fields: fields})
	}
	return out, rows.Err()
}

// GetByID returns a single document by id.
func (c *Client) GetByID(ctx context.Context, collection, id string) (store.Document, error) {
	const q = `SELECT fields FROM documents WHERE collection=$1 AND id=$2`
	docID, err := uuid.FromString(id)
	if err != nil {
		return store.Document{}, errs.ErrNotFound
	}
	var raw []byte
	if err := c.db.Pool.QueryRow(ctx, q, collection, docID).Scan(&raw); err != nil {
		if errors.Is(err, context.Canceled) {
			return store.Document{}, err
		}
		return store.Document{}, errs.ErrNotFound
	}
	fields, err := decodeFields(raw)
	if err != nil {
		return store.Document{}, err
	}
	return store.Document{ID: id, Fields: fields}, nil
}

// Add stores a new document under a fresh UUID and returns it as stored.
func (c *Client) Add(ctx context.Context, collection string, fields store.Fields) (store.Document, error) {
	const q = `INSERT INTO documents (collection, id, fields) VALUES ($1, $2, $3)`
	id, err := uuid.NewV4()
	if err != nil {
		return store.Document{}, err
	}
	resolved := store.ResolveWriteFields(fields, c.now())
	raw, err := json.Marshal(resolved)
	if err != nil {
		return store.Document{}, err
	}
	if _, err := c.db.Pool.Exec(ctx, q, collection, id, raw); err != nil {
		return store.Document{}, err
	}
	return store.Document{ID: id.String(), Fields: resolved}, nil
}

// Update merges fields into an existing document and returns the result.
func (c *Client) Update(ctx context.Context, collection, id string, fields store.Fields) (store.Document, error) {
	const q = `
UPDATE documents SET fields = fields || $3
WHERE collection=$1 AND id=$2
RETURNING fields`
	docID, err := uuid.FromString(id)
	if err != nil {
		return store.Document{}, errs.ErrNotFound
	}
	resolved := store.ResolveWriteFields(fields, c.now())
	patch, err := json.Marshal(resolved)
	if err != nil {
		return store.Document{}, err
	}
	var raw []byte
	if err := c.db.Pool.QueryRow(ctx, q, collection, docID, patch).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Document{}, errs.ErrNotFound
		}
		return store.Document{}, err
	}
	merged, err := decodeFields(raw)
	if err != nil {
		return store.Document{}, err
	}
	return store.Document{ID: id, Fields: merged}, nil
}

// Delete removes a document.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	const q = `DELETE FROM documents WHERE collection=$1 AND id=$2`
	docID, err := uuid.FromString(id)
	if err != nil {
		return errs.ErrNotFound
	}
	tag, err := c.db.Pool.Exec(ctx, q, collection, docID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func decodeFields(raw []byte) (store.Fields, error) {
	var fields store.Fields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
