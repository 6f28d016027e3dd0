//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package meteor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// synsetQuery reads the synonym sets a word belongs to. The table is
// expected to have one row per (word, synset_id) membership.
const synsetQuery = `SELECT synset_id FROM synonyms WHERE word = $1`

// PGSynonyms is a SynonymProvider backed by a PostgreSQL synonym table.
// The underlying pool is safe for concurrent use, so one PGSynonyms can
// serve parallel scoring calls.
type PGSynonyms struct {
	pool *pgxpool.Pool
}

// NewPGSynonyms connects to PostgreSQL and verifies the connection.
// The connection string uses the usual keyword=value form
// ("host=... dbname=... user=...").
func NewPGSynonyms(ctx context.Context, connString string) (*PGSynonyms, error) {
	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PGSynonyms{pool: pool}, nil
}

// Synsets implements SynonymProvider.
func (p *PGSynonyms) Synsets(ctx context.Context, word string) ([]string, error) {
	rows, err := p.pool.Query(ctx, synsetQuery, word)
	if err != nil {
		return nil, fmt.Errorf("synonym query failed: %w", err)
	}
	defer rows.Close()

	var sets []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan synset row: %w", err)
		}
		sets = append(sets, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("synonym query failed: %w", err)
	}

	return sets, nil
}

// Close releases the connection pool.
func (p *PGSynonyms) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
