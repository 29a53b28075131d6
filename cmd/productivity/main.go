package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/enrich"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/pomodoro"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/reminder"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/storage"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "productivity failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := update.LoadRuntimeConfig(os.Getenv("PRODUCTIVITY_CONFIG"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	log, err := newFileLogger(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("open logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := storage.MigrateUp(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	engine := reminder.NewEngine(cfg.ReminderBuffer)
	engine.Start()
	defer engine.Stop()
	if err := scheduleDueAlerts(repo, engine); err != nil {
		log.Warn("scheduling due alerts failed", zap.Error(err))
	}

	enricher := newEnricher(cfg, log)

	m := update.NewModelWithDeps(update.Deps{
		Repo:     repo,
		Reminder: engine,
		Enricher: enricher,
		Log:      log,
		Settings: pomodoro.Settings{
			FocusMinutes:            cfg.FocusMinutes,
			ShortBreakMinutes:       cfg.ShortBreakMinutes,
			LongBreakMinutes:        cfg.LongBreakMinutes,
			SessionsBeforeLongBreak: cfg.SessionsBeforeLongBreak,
		},
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}

// newFileLogger writes structured logs to a file; stdout belongs to the
// TUI.
func newFileLogger(path string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

// newEnricher returns nil when no API key is configured; the app then
// runs fully rule-based.
func newEnricher(cfg update.RuntimeConfig, log *zap.Logger) *enrich.Enricher {
	if cfg.AIAPIKey == "" {
		log.Info("no AI api key configured, enrichment disabled")
		return nil
	}
	client, err := enrich.NewClient(enrich.ClientConfig{
		BaseURL: cfg.AIBaseURL,
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIModel,
		Timeout: time.Duration(cfg.AITimeoutSeconds) * time.Second,
	})
	if err != nil {
		log.Warn("AI client init failed, enrichment disabled", zap.Error(err))
		return nil
	}
	return enrich.NewEnricher(client, log)
}

// scheduleDueAlerts arms a reminder for every open task whose due time
// is still ahead.
func scheduleDueAlerts(repo storage.Repository, engine *reminder.Engine) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tasks, err := repo.ListTasks(ctx, storage.TaskListFilter{})
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, t := range tasks {
		if t.Status == string(model.StatusCompleted) || t.DueAt == nil || !t.DueAt.After(now) {
			continue
		}
		if err := engine.Schedule(reminder.DueAlert{TaskID: t.ID, Title: t.Title, DueAt: *t.DueAt}); err != nil {
			return err
		}
	}
	return nil
}
