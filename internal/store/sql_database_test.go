package store

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/the-todo-way/internal/apperror"
	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantDriver  string
		wantDSN     string
		wantDialect string
	}{
		{"postgres", "postgres://u:p@db:5432/todo", driverPgx, "postgresql://u:p@db:5432/todo", DialectPostgres},
		{"postgresql", "postgresql://u:p@db/todo?sslmode=disable", driverPgx, "postgresql://u:p@db/todo?sslmode=disable", DialectPostgres},
		{"postgresql with async driver", "postgresql+asyncpg://u:p@db/todo", driverPgx, "postgresql://u:p@db/todo", DialectPostgres},
		{"upper case scheme", "POSTGRESQL://db/todo", driverPgx, "postgresql://db/todo", DialectPostgres},
		{"sqlite relative", "sqlite:///todo.db", driverSQLite3, "todo.db", DialectSQLite3},
		{"sqlite absolute", "sqlite:////var/lib/todo.db", driverSQLite3, "/var/lib/todo.db", DialectSQLite3},
		{"sqlite short form", "sqlite://todo.db", driverSQLite3, "todo.db", DialectSQLite3},
		{"sqlite with async driver", "sqlite+aiosqlite:///todo.db", driverSQLite3, "todo.db", DialectSQLite3},
		{"sqlite in memory", "sqlite://", driverSQLite3, ":memory:", DialectSQLite3},
		{"sqlite with options", "sqlite:///todo.db?_fk=1", driverSQLite3, "file:todo.db?_fk=1", DialectSQLite3},
		{"file uri", "file:todo.db?cache=shared", driverSQLite3, "file:todo.db?cache=shared", DialectSQLite3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDSN(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, got.driver)
			assert.Equal(t, tt.wantDSN, got.dsn)
			assert.Equal(t, tt.wantDialect, got.dialect)
		})
	}
}

func TestParseDSN_Unsupported(t *testing.T) {
	tests := []string{
		"mysql://root:hunter2@db/todo",
		"root:hunter2@tcp(db)/todo",
		"",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := parseDSN(raw)

			assert.ErrorIs(t, err, ErrUnsupportedDSN)
			assert.NotContains(t, err.Error(), "hunter2")
		})
	}
}

func sqliteConfig() config.DB {
	return config.DB{
		DSN:             "sqlite://",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxIdleTime: time.Minute,
		PrePingAttempts: 3,
	}
}

func TestNewConnect_SQLite(t *testing.T) {
	db, err := NewConnect(context.Background(), sqliteConfig(), logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, DialectSQLite3, db.Dialect)
	assert.IsType(t, &SQLiteErrorClassifier{}, db.errorClassificator)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestParseDSN_InMemory(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"sqlite://", true},
		{"sqlite:///:memory:", true},
		{"sqlite:///:memory:?_fk=1", true},
		{"file::memory:", true},
		{"file:todo?mode=memory", true},
		{"file::memory:?cache=shared", false},
		{"sqlite:///todo.db", false},
		{"postgresql://db/todo", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseDSN(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.inMemory)
		})
	}
}

// TestNewConnect_InMemorySQLiteKeepsOneDatabase verifies that every session
// over an in-memory DSN sees the same schema, whatever the configured pool
// limits.
func TestNewConnect_InMemorySQLiteKeepsOneDatabase(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig()
	cfg.MaxOpenConns = 10
	cfg.MaxIdleConns = 4
	cfg.ConnMaxIdleTime = time.Millisecond

	p, err := NewSessionProvider(ctx, cfg, false, logger.Nop())
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, 1, p.DB().Stats().MaxOpenConnections)

	err = p.WithSession(ctx, func(ctx context.Context, s *Session) error {
		if _, err := s.ExecContext(ctx, "CREATE TABLE sections (name TEXT)"); err != nil {
			return err
		}
		return s.Commit()
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		err = p.WithSession(ctx, func(ctx context.Context, s *Session) error {
			var count int
			return s.QueryRowContext(ctx, "SELECT COUNT(*) FROM sections").Scan(&count)
		})
		require.NoError(t, err, "session %d should see the sections table", i)
	}
}

func TestNewConnect_UnsupportedScheme(t *testing.T) {
	cfg := sqliteConfig()
	cfg.DSN = "mssql://sa@db/todo"

	db, err := NewConnect(context.Background(), cfg, logger.Nop())

	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

// TestSessionProvider_SQLite runs real units of work against an in-memory
// database: a committed insert is visible, a failed one is not, and a
// duplicate key surfaces as a 409 once translated.
func TestSessionProvider_SQLite(t *testing.T) {
	ctx := context.Background()
	p, err := NewSessionProvider(ctx, sqliteConfig(), true, logger.Nop())
	require.NoError(t, err)
	defer p.Close()

	err = p.WithSession(ctx, func(ctx context.Context, s *Session) error {
		if _, err := s.ExecContext(ctx, "CREATE TABLE labels (name TEXT PRIMARY KEY)"); err != nil {
			return err
		}
		if _, err := s.ExecContext(ctx, "INSERT INTO labels (name) VALUES (?)", "home"); err != nil {
			return err
		}
		return s.Commit()
	})
	require.NoError(t, err)

	err = p.WithSession(ctx, func(ctx context.Context, s *Session) error {
		if _, err := s.ExecContext(ctx, "INSERT INTO labels (name) VALUES (?)", "work"); err != nil {
			return err
		}
		return errors.New("changed my mind")
	})
	require.Error(t, err)

	err = p.WithSession(ctx, func(ctx context.Context, s *Session) error {
		_, err := s.ExecContext(ctx, "INSERT INTO labels (name) VALUES (?)", "home")
		return TranslateError(err)
	})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Status)

	var count int
	err = p.WithSession(ctx, func(ctx context.Context, s *Session) error {
		return s.QueryRowContext(ctx, "SELECT COUNT(*) FROM labels").Scan(&count)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	err = p.WithSession(ctx, func(ctx context.Context, s *Session) error {
		var name string
		return TranslateError(s.QueryRowContext(ctx, "SELECT name FROM labels WHERE name = ?", "work").Scan(&name))
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Resource not found", appErr.Detail)
}

func TestTranslateError(t *testing.T) {
	uniquePg := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	uniqueSQLite := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"no rows", sql.ErrNoRows, http.StatusNotFound, "Resource not found"},
		{"wrapped no rows", errors.Join(errors.New("loading todo"), sql.ErrNoRows), http.StatusNotFound, "Resource not found"},
		{"postgres unique violation", uniquePg, http.StatusConflict, "Resource already exists"},
		{"sqlite unique violation", uniqueSQLite, http.StatusConflict, "Resource already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TranslateError(tt.err)

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.Status)
			assert.Equal(t, tt.wantDetail, appErr.Detail)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTranslateError_Passthrough(t *testing.T) {
	assert.NoError(t, TranslateError(nil))

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	assert.Same(t, fk, TranslateError(fk))

	plain := errors.New("disk full")
	assert.Same(t, plain, TranslateError(plain))
}

func TestErrorClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	lite := NewSQLiteErrorClassifier()

	tests := []struct {
		name       string
		classifier ErrorClassificator
		err        error
		want       ErrorClassification
	}{
		{"pg nil", pg, nil, NonRetryable},
		{"pg plain error", pg, errors.New("oops"), NonRetryable},
		{"pg connection failure", pg, &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"pg deadlock", pg, &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"pg cannot connect now", pg, &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"pg unique violation", pg, &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"pg syntax error", pg, &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
		{"sqlite busy", lite, sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"sqlite locked", lite, sqlite3.Error{Code: sqlite3.ErrLocked}, Retryable},
		{"sqlite constraint", lite, sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
		{"sqlite plain error", lite, errors.New("oops"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.classifier.Classify(tt.err))
		})
	}
}
