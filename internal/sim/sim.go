// Package sim runs batches of independent battles for balance tuning.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/riftduel/internal/config"
	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/game/battle"
	"github.com/udisondev/riftduel/internal/game/roll"
	"github.com/udisondev/riftduel/internal/model"
)

var ErrNoMatchups = errors.New("no matchups to simulate")

// MatchupResult aggregates the battles of one matchup.
type MatchupResult struct {
	A, B           string
	LevelA, LevelB int

	Runs       int
	WinsA      int
	WinsB      int
	Draws      int
	TotalTurns int
}

// WinRateA returns side A's win fraction.
func (m MatchupResult) WinRateA() float64 {
	if m.Runs == 0 {
		return 0
	}
	return float64(m.WinsA) / float64(m.Runs)
}

// AvgTurns returns the mean battle length.
func (m MatchupResult) AvgTurns() float64 {
	if m.Runs == 0 {
		return 0
	}
	return float64(m.TotalTurns) / float64(m.Runs)
}

// Report is the outcome of one simulator run.
type Report struct {
	ID        uuid.UUID
	StartedAt time.Time
	Seed      uint64
	Runs      int
	Matchups  []MatchupResult
}

// Simulator runs battles on a bounded worker group. Every battle has its own
// combatants and random source, so battles share no mutable state.
type Simulator struct {
	cat    *data.Catalog
	cfg    config.Simulator
	policy battle.Selector
}

// New creates a simulator using GreedyPolicy for both sides.
func New(cat *data.Catalog, cfg config.Simulator) *Simulator {
	return &Simulator{cat: cat, cfg: cfg, policy: GreedyPolicy{}}
}

// WithPolicy replaces the action policy.
func (s *Simulator) WithPolicy(p battle.Selector) *Simulator {
	s.policy = p
	return s
}

// Matchups returns the configured matchups, or every pair of catalog
// champions when none are configured.
func (s *Simulator) Matchups() []config.Matchup {
	if len(s.cfg.Matchups) > 0 {
		return s.cfg.Matchups
	}
	names := s.cat.ChampionNames()
	var out []config.Matchup
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			out = append(out, config.Matchup{A: names[i], B: names[j]})
		}
	}
	return out
}

// Run simulates every matchup and returns the report.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	matchups := s.Matchups()
	if len(matchups) == 0 {
		return nil, ErrNoMatchups
	}

	report := &Report{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
		Seed:      s.cfg.Seed,
		Runs:      s.cfg.Runs,
	}

	slog.Info("simulation started",
		"id", report.ID,
		"matchups", len(matchups),
		"runs", s.cfg.Runs,
		"parallelism", s.cfg.Parallelism)

	for _, m := range matchups {
		res, err := s.RunMatchup(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("matchup %s vs %s: %w", m.A, m.B, err)
		}
		report.Matchups = append(report.Matchups, res)
	}

	slog.Info("simulation finished", "id", report.ID, "elapsed", time.Since(report.StartedAt))
	return report, nil
}

// RunMatchup plays cfg.Runs battles of one matchup. Battle i uses seed
// cfg.Seed+i, so results are reproducible regardless of parallelism.
func (s *Simulator) RunMatchup(ctx context.Context, m config.Matchup) (MatchupResult, error) {
	res := MatchupResult{A: m.A, B: m.B, LevelA: s.level(m.LevelA), LevelB: s.level(m.LevelB)}

	// Resolve templates once; each battle clones them into fresh combatants.
	champA, itemsA, err := s.resolve(m.A, m.ItemsA)
	if err != nil {
		return res, err
	}
	champB, itemsB, err := s.resolve(m.B, m.ItemsB)
	if err != nil {
		return res, err
	}

	type outcome struct {
		result battle.Result
		turns  int
	}
	outcomes := make([]outcome, s.cfg.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.cfg.Parallelism))

	for i := range s.cfg.Runs {
		g.Go(func() error {
			a := model.NewCombatant(s.cat, champA, res.LevelA, itemsA...)
			b := model.NewCombatant(s.cat, champB, res.LevelB, itemsB...)

			bt, err := battle.New(s.cfg.Battle, roll.New(s.cfg.Seed+uint64(i)),
				[]*model.Combatant{a}, []*model.Combatant{b}, s.policy)
			if err != nil {
				return err
			}
			r, err := bt.Run(gctx)
			if err != nil {
				return err
			}
			outcomes[i] = outcome{result: r, turns: bt.Turn()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	for _, o := range outcomes {
		res.Runs++
		res.TotalTurns += o.turns
		switch o.result {
		case battle.ResultSideAWin:
			res.WinsA++
		case battle.ResultSideBWin:
			res.WinsB++
		default:
			res.Draws++
		}
	}

	slog.Debug("matchup done",
		"a", m.A,
		"b", m.B,
		"winsA", res.WinsA,
		"winsB", res.WinsB,
		"draws", res.Draws)

	return res, nil
}

func (s *Simulator) level(override int) int {
	if override > 0 {
		return data.ClampLevel(override)
	}
	return data.ClampLevel(s.cfg.Level)
}

func (s *Simulator) resolve(name string, itemNames []string) (*data.ChampionTemplate, []*data.ItemTemplate, error) {
	champ, err := s.cat.Champion(name)
	if err != nil {
		return nil, nil, err
	}
	items := make([]*data.ItemTemplate, 0, len(itemNames))
	for _, n := range itemNames {
		it, err := s.cat.Item(n)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return champ, items, nil
}
