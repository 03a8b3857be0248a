package cmdutil

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/lepinkainen/narou/internal/datastore"
)

// newStore picks the export target from configuration: a remote Datasette
// when datastore.url is set, the local SQLite file otherwise.
var newStore = func() datastore.Store {
	if url := viper.GetString("datastore.url"); url != "" {
		return datastore.NewDatasetteClient(url, "narou", viper.GetString("datastore.token"))
	}
	return datastore.NewSQLiteStore(viper.GetString("datastore.dbfile"))
}

// WriteToDatastore exports items into table when datastore.enabled is set.
// toRecord maps one item to its column values.
func WriteToDatastore[T any](ctx context.Context, items []T, schema, table, description string, toRecord func(T) map[string]any) error {
	if !viper.GetBool("datastore.enabled") {
		return nil
	}

	store := newStore()
	if err := store.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(ctx, schema); err != nil {
		return fmt.Errorf("failed to create %s table: %w", table, err)
	}

	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		records = append(records, toRecord(item))
	}

	if err := store.Upsert(ctx, table, records); err != nil {
		return fmt.Errorf("failed to write %s: %w", description, err)
	}

	slog.Info("Exported to datastore", "what", description, "rows", len(records), "table", table)
	return nil
}
