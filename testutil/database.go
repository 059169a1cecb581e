package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"todo-go-backend/pkg/infrastructure/datastore"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// NewStore opens a sqlite store in a temp dir with the schema in place.
// The store is closed when the test ends.
func NewStore(t *testing.T) *datastore.Store {
	t.Helper()

	dsn := datastore.SQLiteDSN(filepath.Join(t.TempDir(), "todos.db"))
	store, err := datastore.Open(dialect.SQLite, dsn)
	if err != nil {
		t.Fatalf("failed opening store: %v", err)
	}
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// DropAll drops all the data from database
func DropAll(t *testing.T, store *datastore.Store) {
	t.Log("drop data from database")
	DropTodo(t, store)
}

// DropTodo drops all the data from todos.
func DropTodo(t *testing.T, store *datastore.Store) {
	ctx := context.Background()
	err := store.Conn(ctx, func(conn entsql.Conn) error {
		query, args := store.Builder().Delete(datastore.TodoTableName).Query()
		return conn.Exec(ctx, query, args, nil)
	})
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}
