package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"todo-go-backend/config"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const defaultMaxConns = 20

// Store is a handle on the relational store shared by every request.
// Each operation acquires its own connection through Conn.
type Store struct {
	drv     *entsql.Driver
	closers []func()
}

// NewDSN builds the data source name for the configured driver.
func NewDSN() (string, error) {
	db := config.C.Database
	switch db.Driver {
	case dialect.Postgres:
		return "postgres://" + db.User + ":" + db.Password + "@" + db.Addr + ":" + db.Port + "/" + db.DBName + "?sslmode=disable", nil
	case dialect.MySQL:
		cfg := mysql.NewConfig()
		cfg.User = db.User
		cfg.Passwd = db.Password
		cfg.Net = db.Net
		if cfg.Net == "" {
			cfg.Net = "tcp"
		}
		cfg.Addr = net.JoinHostPort(db.Addr, db.Port)
		cfg.DBName = db.DBName
		cfg.AllowNativePasswords = db.AllowNativePasswords
		cfg.ParseTime = db.Params.ParseTime == "true"
		// Updates that change nothing must still count the matched row.
		cfg.ClientFoundRows = true
		cfg.Params = map[string]string{}
		if db.Params.Charset != "" {
			cfg.Params["charset"] = db.Params.Charset
		}
		if db.Params.TLS != "" {
			cfg.TLSConfig = db.Params.TLS
		}
		if db.Params.Loc != "" {
			loc, err := time.LoadLocation(db.Params.Loc)
			if err != nil {
				return "", errors.Wrapf(err, "invalid database.params.loc %q", db.Params.Loc)
			}
			cfg.Loc = loc
		}
		return cfg.FormatDSN(), nil
	default:
		return SQLiteDSN(db.File), nil
	}
}

// SQLiteDSN returns a DSN for a single-file sqlite store.
func SQLiteDSN(file string) string {
	if file == "" {
		file = "todos.db"
	}
	return "file:" + file + "?_busy_timeout=5000&_fk=1&_journal_mode=WAL"
}

// NewStore opens the store described by the loaded config.
func NewStore() (*Store, error) {
	driver := config.C.Database.Driver
	if driver == "" {
		driver = dialect.SQLite
	}
	dsn, err := NewDSN()
	if err != nil {
		return nil, err
	}
	return Open(driver, dsn, WithMaxConns(config.C.Database.MaxConns))
}

// Option configures Open.
type Option func(*options)

type options struct {
	maxConns int32
}

// WithMaxConns bounds the connection pool. Ignored for sqlite.
func WithMaxConns(n int32) Option {
	return func(o *options) {
		if n > 0 {
			o.maxConns = n
		}
	}
}

// Open connects to the store for the given ent dialect name.
func Open(driver, dsn string, opts ...Option) (*Store, error) {
	o := options{maxConns: defaultMaxConns}
	for _, opt := range opts {
		opt(&o)
	}

	switch driver {
	case dialect.Postgres:
		return openPostgres(dsn, o)
	case dialect.MySQL:
		db, err := sql.Open(dialect.MySQL, dsn)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open mysql")
		}
		db.SetMaxOpenConns(int(o.maxConns))
		db.SetConnMaxLifetime(time.Minute * 2)
		return &Store{drv: entsql.OpenDB(dialect.MySQL, db)}, nil
	case dialect.SQLite:
		db, err := sql.Open(dialect.SQLite, dsn)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open sqlite")
		}
		// sqlite allows a single writer; one pooled connection serializes
		// interleaved requests instead of failing them with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		return &Store{drv: entsql.OpenDB(dialect.SQLite, db)}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Create a new store using pgxpool
func openPostgres(dsn string, o options) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to create pool config: %w", err)
	}
	poolConfig.MaxConns = o.maxConns
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = time.Minute * 2
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	// Use stdlib to wrap pgxpool in database/sql compatibility
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &Store{
		drv:     entsql.OpenDB(dialect.Postgres, sqlDB),
		closers: []func(){pool.Close},
	}, nil
}

// Dialect returns the ent dialect name of the store.
func (s *Store) Dialect() string {
	return s.drv.Dialect()
}

// Builder returns a SQL builder for the store's dialect.
func (s *Store) Builder() *entsql.DialectBuilder {
	return entsql.Dialect(s.drv.Dialect())
}

// Conn runs fn on one connection taken from the pool and always releases it.
func (s *Store) Conn(ctx context.Context, fn func(conn entsql.Conn) error) (err error) {
	c, err := s.drv.DB().Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire connection")
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "release connection")
		}
	}()
	return fn(entsql.Conn{ExecQuerier: c})
}

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.drv.DB().PingContext(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	err := s.drv.Close()
	for _, c := range s.closers {
		c()
	}
	return err
}
