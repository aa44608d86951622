package db

import "context"

// SchemaInterface maintains the database schema of the tracking store.
type SchemaInterface interface {
	// Upgrade applies schema versions newer than the stored one.
	Upgrade(ctx context.Context) error

	// Version returns the version stored in the database.
	// A database with no schema at all is version 0.
	Version(ctx context.Context) (int, error)

	// Context derives a context which is cancelled when the stored
	// schema version falls behind the schema repository on disk.
	Context(ctx context.Context) (context.Context, context.CancelFunc)
}
