// Package datastore persists fetched rows to SQLite or a remote Datasette.
package datastore

import "context"

// Store is a destination for exported rows.
type Store interface {
	// Connect establishes a connection to the data store
	Connect(ctx context.Context) error

	// CreateTable creates a table from schema if it doesn't exist
	CreateTable(ctx context.Context, schema string) error

	// Upsert writes records into table, replacing rows with the same key
	Upsert(ctx context.Context, table string, records []map[string]any) error

	Close() error
}
