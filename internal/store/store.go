// Package store is the query layer over Postgres. Entities are scanned into
// the typed structs in internal/models; optional columns use sql.Null*.
package store

import (
	"database/sql"
	"errors"
)

type Client struct {
	db *sql.DB
}

func New(db *sql.DB) *Client {
	return &Client{db: db}
}

func (c *Client) Close() error {
	return c.db.Close()
}

// IsNotFound reports whether err is a no-rows result.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// requireRow converts a zero-row update into sql.ErrNoRows so callers can
// distinguish "not found" from other failures.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
