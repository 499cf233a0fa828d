package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"mit-market/config"
)

// PostgresStore keeps one JSONB document per key path in a single table.
// Set is an upsert that replaces the whole document, which preserves the
// last-writer-wins overwrite semantics of the Firebase backend.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context) (*PostgresStore, error) {
	dsn := buildDSN()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DB config: %w", err)
	}
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("DB connection failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("DB ping failed: %w", err)
	}

	log.Println("Database connected successfully")

	if err := runMigrations(dsn); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func buildDSN() string {
	cfg := config.AppConfig
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode,
	)
}

func runMigrations(dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open DB for migrations: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath, err := filepath.Abs("database/migration")
	if err != nil {
		return fmt.Errorf("failed to resolve migration path: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Println("Database migrations applied (or already up to date)")
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, path string, dest interface{}) error {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		"SELECT doc FROM documents WHERE path = $1", path).Scan(&doc)
	if err == pgx.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("postgres get %s: %w", path, err)
	}
	if err := json.Unmarshal(doc, dest); err != nil {
		return fmt.Errorf("postgres decode %s: %w", path, err)
	}
	return nil
}

func (s *PostgresStore) Set(ctx context.Context, path string, value interface{}) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("postgres encode %s: %w", path, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO documents (path, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (path) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		path, doc)
	if err != nil {
		return fmt.Errorf("postgres set %s: %w", path, err)
	}
	return nil
}

func (s *PostgresStore) GetChildren(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	prefix := strings.TrimSuffix(path, "/")

	// Key paths are opaque and may contain LIKE wildcards; the prefix must
	// match literally or 'users/a_c' would also list 'users/abc'.
	rows, err := s.pool.Query(ctx, `
		SELECT path, doc FROM documents
		WHERE path LIKE $1 || '/%' ESCAPE '\' AND path NOT LIKE $1 || '/%/%' ESCAPE '\'`,
		escapeLikePattern(prefix))
	if err != nil {
		return nil, fmt.Errorf("postgres children %s: %w", path, err)
	}
	defer rows.Close()

	children := map[string]json.RawMessage{}
	for rows.Next() {
		var childPath string
		var doc []byte
		if err := rows.Scan(&childPath, &doc); err != nil {
			return nil, fmt.Errorf("postgres children %s: %w", path, err)
		}
		key := strings.TrimPrefix(childPath, prefix+"/")
		if strings.Contains(key, "/") {
			continue
		}
		children[key] = json.RawMessage(doc)
	}
	return children, rows.Err()
}

// escapeLikePattern escapes LIKE metacharacters so a key path matches only
// itself.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
