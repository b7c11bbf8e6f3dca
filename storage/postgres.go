package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore wraps an optional pgx pool. The search pipeline never touches
// it; it exists so the diagnostic endpoint can report on database reachability.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Status describes the outcome of a connectivity probe.
type Status struct {
	Connected    bool
	DatabaseName string
	Tables       []string
	Err          error
}

// Status pings the database and, when reachable, lists up to ten public
// tables. Errors are reported in the result rather than failing the caller.
func (s *PostgresStore) Status(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.pool.Ping(ctx); err != nil {
		return Status{Err: err}
	}

	st := Status{Connected: true}

	if err := s.pool.QueryRow(ctx, "SELECT current_database()").Scan(&st.DatabaseName); err != nil {
		st.Err = err
		return st
	}

	rows, err := s.pool.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
		LIMIT 10
	`)
	if err != nil {
		st.Err = err
		return st
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			st.Err = err
			return st
		}
		st.Tables = append(st.Tables, name)
	}
	st.Err = rows.Err()
	return st
}
