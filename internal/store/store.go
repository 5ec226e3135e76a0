// Package store persists game saves in Postgres. The whole snapshot is
// stored as a single jsonb document; writes replace the document atomically
// so a save is never half updated.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"snowball/internal/game"
)

var ErrSaveNotFound = errors.New("save not found")

// SaveInfo is the listing view of a save, without the full snapshot.
type SaveInfo struct {
	SaveID     string    `json:"save_id"`
	MarketID   string    `json:"market_id"`
	PlayerName string    `json:"player_name"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Store struct {
	pool *pgxpool.Pool
}

// Connect opens the pool and verifies the connection.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = 20
	cfg.MinConns = 2
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 10 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// Migrate creates the saves table if missing.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS saves (
			save_id     text PRIMARY KEY,
			market_id   text NOT NULL,
			player_name text NOT NULL,
			state       jsonb NOT NULL,
			created_at  timestamptz NOT NULL DEFAULT now(),
			updated_at  timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("migrate saves: %w", err)
	}
	return nil
}

// Put upserts the snapshot under its save id.
func (s *Store) Put(ctx context.Context, state game.GameState) error {
	data, err := state.Encode()
	if err != nil {
		return fmt.Errorf("encode save %s: %w", state.SaveID, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO saves (save_id, market_id, player_name, state, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (save_id) DO UPDATE
		SET market_id = EXCLUDED.market_id,
		    player_name = EXCLUDED.player_name,
		    state = EXCLUDED.state,
		    updated_at = now()`,
		state.SaveID, state.MarketID, state.Player.Name, data)
	if err != nil {
		return fmt.Errorf("put save %s: %w", state.SaveID, err)
	}
	return nil
}

// Get loads and validates a snapshot.
func (s *Store) Get(ctx context.Context, saveID string) (game.GameState, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT state FROM saves WHERE save_id = $1`, saveID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return game.GameState{}, fmt.Errorf("%w: %s", ErrSaveNotFound, saveID)
	}
	if err != nil {
		return game.GameState{}, fmt.Errorf("get save %s: %w", saveID, err)
	}
	state, err := game.DecodeGameState(data)
	if err != nil {
		return game.GameState{}, fmt.Errorf("save %s: %w", saveID, err)
	}
	return state, nil
}

// List returns save metadata, most recently updated first.
func (s *Store) List(ctx context.Context) ([]SaveInfo, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT save_id, market_id, player_name, updated_at
		FROM saves
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var out []SaveInfo
	for rows.Next() {
		var info SaveInfo
		if err := rows.Scan(&info.SaveID, &info.MarketID, &info.PlayerName, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan save row: %w", err)
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return out, nil
}

// Delete removes a save; deleting a missing save is an error so callers can
// report it.
func (s *Store) Delete(ctx context.Context, saveID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM saves WHERE save_id = $1`, saveID)
	if err != nil {
		return fmt.Errorf("delete save %s: %w", saveID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrSaveNotFound, saveID)
	}
	return nil
}
