package root

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mikecappella27/life-rpg/internal/config"
	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/storage"
)

// app bundles everything a command needs: config, logger, the save store,
// and a booted engine that has already run its day-rollover check.
type app struct {
	ctx   context.Context
	cfg   config.Config
	log   *zap.Logger
	store *storage.SlotStore
	eng   *engine.Engine
}

func openApp(ctx context.Context) (*app, func(), error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(filepath.Join(dir, "config.toml"))
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(ctx, dbPath, logger)
	if err != nil {
		return nil, nil, err
	}

	state, err := store.Load(ctx)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	if state == nil {
		state = engine.DefaultState()
		state.PlayerName = cfg.DefaultPlayerName
		state.Title = cfg.DefaultTitle
	}

	a := &app{
		ctx:   ctx,
		cfg:   cfg,
		log:   logger,
		store: store,
		eng:   engine.New(state),
	}
	if a.eng.Tick(time.Now()) {
		a.persist()
	}

	cleanup := func() {
		_ = store.Close()
		_ = logger.Sync()
	}
	return a, cleanup, nil
}

// newLogger builds a quiet console logger: gameplay output goes through
// cobra; zap only carries warnings (persist failures, corrupt saves).
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// persist writes the current state, best-effort.
func (a *app) persist() {
	a.store.Persist(a.ctx, a.eng.State())
}

// resolveStat accepts a stat index ("0".."5") or a name prefix ("str",
// "Intelligence") and returns the index.
func resolveStat(s *engine.SaveState, arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return 0, fmt.Errorf("stat is required")
	}
	if i, ok := atoiOK(arg); ok {
		if i < 0 || i >= len(s.Stats) {
			return 0, fmt.Errorf("stat index %d out of range", i)
		}
		return i, nil
	}
	lower := strings.ToLower(arg)
	for i, st := range s.Stats {
		if strings.HasPrefix(strings.ToLower(st.Name), lower) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", arg)
}

func atoiOK(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// matchQuest resolves a quest by full ID or unique prefix.
func matchQuest(s *engine.SaveState, arg string) (string, error) {
	var hits []string
	for _, q := range s.Quests {
		if q.ID == arg {
			return q.ID, nil
		}
		if strings.HasPrefix(q.ID, arg) {
			hits = append(hits, q.ID)
		}
	}
	switch len(hits) {
	case 1:
		return hits[0], nil
	case 0:
		return "", fmt.Errorf("no quest matches %q", arg)
	default:
		return "", fmt.Errorf("quest id %q is ambiguous (%d matches)", arg, len(hits))
	}
}

// matchDaily resolves a daily quest by ID prefix or 1-based list position.
func matchDaily(s *engine.SaveState, arg string) (string, error) {
	if i, ok := atoiOK(arg); ok && i >= 1 && i <= len(s.DailyQuests) {
		return s.DailyQuests[i-1].ID, nil
	}
	var hits []string
	for _, d := range s.DailyQuests {
		if d.ID == arg {
			return d.ID, nil
		}
		if strings.HasPrefix(d.ID, arg) {
			hits = append(hits, d.ID)
		}
	}
	switch len(hits) {
	case 1:
		return hits[0], nil
	case 0:
		return "", fmt.Errorf("no daily quest matches %q", arg)
	default:
		return "", fmt.Errorf("daily quest id %q is ambiguous", arg)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
