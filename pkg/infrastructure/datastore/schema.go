package datastore

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/pkg/errors"
)

// Todo table and column names.
const (
	TodoTableName         = "todos"
	TodoColumnID          = "id"
	TodoColumnTitle       = "title"
	TodoColumnDescription = "description"
	TodoColumnDone        = "done"
)

// Column describes one column with its type and attributes per dialect.
type Column struct {
	Name  string
	Types map[string]string
	Attrs map[string]string
}

// Table describes one table of the store.
type Table struct {
	Name       string
	PrimaryKey string
	Columns    []Column
}

// TodoTable is the schema of the todos table.
var TodoTable = Table{
	Name:       TodoTableName,
	PrimaryKey: TodoColumnID,
	Columns: []Column{
		{
			Name: TodoColumnID,
			Types: map[string]string{
				dialect.SQLite:   "integer",
				dialect.Postgres: "bigint",
				dialect.MySQL:    "bigint",
			},
			// AUTOINCREMENT keeps sqlite from reusing ids of deleted rows.
			Attrs: map[string]string{
				dialect.SQLite:   "PRIMARY KEY AUTOINCREMENT",
				dialect.Postgres: "GENERATED BY DEFAULT AS IDENTITY",
				dialect.MySQL:    "NOT NULL AUTO_INCREMENT",
			},
		},
		{
			Name:  TodoColumnTitle,
			Types: sameType("text"),
			Attrs: sameType("NOT NULL"),
		},
		{
			Name:  TodoColumnDescription,
			Types: sameType("text"),
		},
		{
			Name:  TodoColumnDone,
			Types: sameType("boolean"),
			Attrs: sameType("NOT NULL DEFAULT false"),
		},
	},
}

func sameType(v string) map[string]string {
	return map[string]string{
		dialect.SQLite:   v,
		dialect.Postgres: v,
		dialect.MySQL:    v,
	}
}

// ColumnNames returns the column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// CreateQuery builds an idempotent CREATE TABLE statement for dialect d.
func (t Table) CreateQuery(d string) (string, []any) {
	columns := make([]*entsql.ColumnBuilder, 0, len(t.Columns))
	for _, c := range t.Columns {
		cb := entsql.Column(c.Name).Type(c.Types[d])
		if attr := c.Attrs[d]; attr != "" {
			cb.Attr(attr)
		}
		columns = append(columns, cb)
	}

	b := entsql.Dialect(d).CreateTable(t.Name).IfNotExists().Columns(columns...)
	// sqlite declares the key inline so that AUTOINCREMENT applies.
	if d != dialect.SQLite {
		b.PrimaryKey(t.PrimaryKey)
	}
	return b.Query()
}

// EnsureSchema creates missing tables. Existing tables are left untouched.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.Conn(ctx, func(conn entsql.Conn) error {
		query, args := TodoTable.CreateQuery(s.Dialect())
		if err := conn.Exec(ctx, query, args, nil); err != nil {
			return errors.Wrapf(err, "failed creating table %s", TodoTable.Name)
		}
		return nil
	})
}
