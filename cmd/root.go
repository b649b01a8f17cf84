// Package cmd implements the mathflow command line.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/mathflow/internal/activity"
	"github.com/abhisek/mathflow/internal/config"
	"github.com/abhisek/mathflow/internal/facts"
	"github.com/abhisek/mathflow/internal/spacedrep"
	"github.com/abhisek/mathflow/internal/store"
)

// Execute runs the root command. Ctrl-C cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "mathflow",
		Short: "Spaced-repetition arithmetic drills",
		Long: `mathflow drills arithmetic facts in the terminal.

Each fact you answer gets its own review card. Facts you miss come back
soon; facts you know drift further apart.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(config.KeyDB, "", "Path to SQLite database file (overrides MATHFLOW_DB env var)")
	pf.Bool(config.KeyEphemeral, false, "Keep progress in memory only")
	pf.String("config", "", "Config file (yaml, toml or json)")
	pf.String(config.KeyLogLevel, "warn", "Log level: debug, info, warn or error")
	pf.String(config.KeyTopics, "", "JSON file with extra topics")
	pf.Int64(config.KeySeed, 0, "Seed for question order (0 picks one from the clock)")

	root.AddCommand(
		newDrillCmd(a),
		newStatsCmd(a),
		newTopicsCmd(a),
		newResetCmd(a),
		newVersionCmd(),
	)
	return root
}

// app carries what the subcommands share: configuration, logger and the
// lazily opened store.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *slog.Logger

	st *store.Store
	kv store.KV

	custom []facts.Topic
}

func (a *app) configure(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(a.v, cmd.Flags(), file)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(a.logger)

	if cfg.TopicsFile != "" {
		if err := a.loadTopics(cfg.TopicsFile); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) loadTopics(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open topics file: %w", err)
	}
	defer f.Close()

	topics, err := facts.LoadTopics(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a.custom = topics
	a.logger.Debug("loaded custom topics", "file", path, "count", len(topics))
	return nil
}

// open returns the key-value store, opening it on first use.
func (a *app) open() (store.KV, error) {
	if a.kv != nil {
		return a.kv, nil
	}
	if a.cfg.Ephemeral {
		a.logger.Info("using in-memory store")
		a.kv = store.NewMemoryKV()
		return a.kv, nil
	}

	dbPath, err := a.cfg.ResolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.logger.Debug("opened store", "path", dbPath)
	a.st = st
	a.kv = st.KV()
	return a.kv, nil
}

func (a *app) close() error {
	if a.st == nil {
		return nil
	}
	err := a.st.Close()
	a.st, a.kv = nil, nil
	return err
}

// scheduler builds a Scheduler over the store.
func (a *app) scheduler() (*spacedrep.Scheduler, error) {
	kv, err := a.open()
	if err != nil {
		return nil, err
	}
	opts := []spacedrep.Option{spacedrep.WithLogger(a.logger)}
	if a.cfg.Seed != 0 {
		opts = append(opts, spacedrep.WithSeed(a.cfg.Seed))
	}
	return spacedrep.NewScheduler(store.NewReviewRepo(kv), opts...), nil
}

// activityLog builds the activity log over the store.
func (a *app) activityLog() (*activity.Log, error) {
	kv, err := a.open()
	if err != nil {
		return nil, err
	}
	return activity.NewLog(store.NewActivityRepo(kv), activity.WithLogger(a.logger)), nil
}

// topics returns the built-in catalog followed by custom topics.
func (a *app) topics() []facts.Topic {
	return append(facts.Catalog(), a.custom...)
}

// lookupTopic finds a topic by ID among built-in and custom topics.
func (a *app) lookupTopic(id string) (facts.Topic, error) {
	if t, ok := facts.Lookup(id); ok {
		return t, nil
	}
	for _, t := range a.custom {
		if t.ID == id {
			return t, nil
		}
	}
	return facts.Topic{}, fmt.Errorf("%w: %q (see 'mathflow topics')", facts.ErrUnknownTopic, id)
}

// topicsIn filters topics by section; an empty section keeps all.
func (a *app) topicsIn(section string) ([]facts.Topic, error) {
	all := a.topics()
	if section == "" {
		return all, nil
	}
	var out []facts.Topic
	for _, t := range all {
		if string(t.Section) == section {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no topics in section %q", section)
	}
	return out, nil
}
