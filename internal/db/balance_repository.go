package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/riftduel/internal/sim"
)

var ErrRunNotFound = errors.New("balance run not found")

// BalanceRepository stores simulator reports.
type BalanceRepository struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository создаёт новый BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{pool: pool}
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// SaveRun writes a report and all its matchups in one transaction.
func (r *BalanceRepository) SaveRun(ctx context.Context, report *sim.Report) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`INSERT INTO balance_runs (id, started_at, seed, runs) VALUES ($1, $2, $3, $4)`,
		pgUUID(report.ID), report.StartedAt, int64(report.Seed), report.Runs,
	)
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", report.ID, err)
	}

	if len(report.Matchups) > 0 {
		rows := make([][]any, 0, len(report.Matchups))
		for i, m := range report.Matchups {
			rows = append(rows, []any{
				pgUUID(report.ID), int32(i), m.A, m.B,
				int32(m.LevelA), int32(m.LevelB), int32(m.Runs),
				int32(m.WinsA), int32(m.WinsB), int32(m.Draws), int32(m.TotalTurns),
			})
		}
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"balance_matchups"},
			[]string{"run_id", "idx", "champion_a", "champion_b", "level_a", "level_b",
				"runs", "wins_a", "wins_b", "draws", "total_turns"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("copying matchups of run %s: %w", report.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing run %s: %w", report.ID, err)
	}
	return nil
}

// LoadRun reads a stored report. Returns ErrRunNotFound for unknown ids.
func (r *BalanceRepository) LoadRun(ctx context.Context, id uuid.UUID) (*sim.Report, error) {
	report := &sim.Report{ID: id}
	var seed int64
	err := r.pool.QueryRow(ctx,
		`SELECT started_at, seed, runs FROM balance_runs WHERE id = $1`, pgUUID(id),
	).Scan(&report.StartedAt, &seed, &report.Runs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", id, err)
	}
	report.Seed = uint64(seed)

	rows, err := r.pool.Query(ctx, `
		SELECT champion_a, champion_b, level_a, level_b, runs, wins_a, wins_b, draws, total_turns
		FROM balance_matchups
		WHERE run_id = $1
		ORDER BY idx`, pgUUID(id))
	if err != nil {
		return nil, fmt.Errorf("querying matchups of run %s: %w", id, err)
	}
	report.Matchups, err = scanMatchups(rows)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListMatchups returns every stored result of a pairing, newest run first.
func (r *BalanceRepository) ListMatchups(ctx context.Context, a, b string) ([]sim.MatchupResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.champion_a, m.champion_b, m.level_a, m.level_b, m.runs, m.wins_a, m.wins_b, m.draws, m.total_turns
		FROM balance_matchups m
		JOIN balance_runs r ON r.id = m.run_id
		WHERE m.champion_a = $1 AND m.champion_b = $2
		ORDER BY r.started_at DESC, m.idx`, a, b)
	if err != nil {
		return nil, fmt.Errorf("querying matchups %s vs %s: %w", a, b, err)
	}
	return scanMatchups(rows)
}

func scanMatchups(rows pgx.Rows) ([]sim.MatchupResult, error) {
	defer rows.Close()

	var out []sim.MatchupResult
	for rows.Next() {
		var m sim.MatchupResult
		var levelA, levelB, runs, winsA, winsB, draws, turns int32
		if err := rows.Scan(&m.A, &m.B, &levelA, &levelB, &runs, &winsA, &winsB, &draws, &turns); err != nil {
			return nil, fmt.Errorf("scanning matchup row: %w", err)
		}
		m.LevelA, m.LevelB = int(levelA), int(levelB)
		m.Runs, m.WinsA, m.WinsB, m.Draws, m.TotalTurns = int(runs), int(winsA), int(winsB), int(draws), int(turns)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matchup rows: %w", err)
	}
	return out, nil
}
