package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/udisondev/riftduel/internal/config"
	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/db"
	"github.com/udisondev/riftduel/internal/sim"
)

const ConfigPath = "config/balancesim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfgPath := ConfigPath
	if p := os.Getenv("RIFTDUEL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded", "runs", cfg.Runs, "parallelism", cfg.Parallelism, "seed", cfg.Seed)

	cat := data.DefaultCatalog()
	if cfg.CatalogPath != "" {
		cat, err = data.LoadCatalog(cfg.CatalogPath, cat)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}
	slog.Info("catalog loaded", "champions", len(cat.ChampionNames()))

	report, err := sim.New(cat, cfg).Run(ctx)
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	if err := printReport(os.Stdout, report); err != nil {
		return fmt.Errorf("printing report: %w", err)
	}

	if !cfg.Persist {
		return nil
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if err := database.Balance().SaveRun(ctx, report); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	slog.Info("report saved", "id", report.ID)
	return nil
}

func printReport(w io.Writer, r *sim.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s  seed %d  battles/matchup %d\n\n", r.ID, r.Seed, r.Runs)
	fmt.Fprintln(tw, "A\tB\tLV\tWIN A\tWIN B\tDRAW\tWIN% A\tAVG TURNS")
	for _, m := range r.Matchups {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%d\t%d\t%d\t%.1f\t%.1f\n",
			m.A, m.B, m.LevelA, m.LevelB, m.WinsA, m.WinsB, m.Draws, m.WinRateA()*100, m.AvgTurns())
	}
	return tw.Flush()
}
