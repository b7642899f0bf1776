package main

import (
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/bloom/internal/cli"
	"github.com/julianstephens/bloom/internal/cli/backups"
	"github.com/julianstephens/bloom/internal/cli/system"
	"github.com/julianstephens/bloom/internal/config"
	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/errors"
	"github.com/julianstephens/bloom/internal/logger"
	"github.com/julianstephens/bloom/internal/storage"
	"github.com/julianstephens/bloom/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`

	Init    system.InitCmd   `cmd:"" help:"Initialize bloom storage."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Login   cli.LoginCmd     `cmd:"" help:"Set your profile name."`
	Mood    cli.MoodCmd      `cmd:"" help:"Record and review moods."`
	Habit   cli.HabitCmd     `cmd:"" help:"Track daily habits."`
	Journal cli.JournalCmd   `cmd:"" help:"Write and review journal entries."`
	Score   cli.ScoreCmd     `cmd:"" help:"Show the bloom score."`
	Coach   cli.CoachCmd     `cmd:"" help:"Chat with the wellness coach."`
	Tip     cli.TipCmd       `cmd:"" help:"Show a wellness tip."`
	Theme   cli.ThemeCmd     `cmd:"" help:"Manage the selected theme."`
	Reset   cli.ResetCmd     `cmd:"" help:"Erase all data and start fresh."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Debug   system.DebugCmd  `cmd:"" help:"Debug commands for troubleshooting."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage snapshot backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bloom"),
		kong.Description("Wellness tracker: moods, habits, journaling and a daily bloom score"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	configDir, err := config.DefaultConfigDir()
	if err != nil {
		errors.Fatal(err)
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = filepath.Join(configDir, "config.toml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: cfg.App.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	storePath := cfg.StoragePath(configDir)
	if cfg.Storage.Backend == config.BackendSQLite {
		store = storage.NewSQLiteStore(storePath)
	} else {
		store = storage.NewJSONStore(storePath)
	}

	// Day boundaries follow the configured timezone; a broken timezone
	// setting falls back to the system clock rather than failing startup.
	eng := engine.NewWithClock(func() time.Time {
		now, err := utils.NowInTimezone(cfg.App.Timezone)
		if err != nil {
			logger.Warn("Invalid timezone, using system time", "timezone", cfg.App.Timezone, "error", err)
			return time.Now()
		}
		return now
	})

	appCtx := &cli.Context{
		Store:     store,
		Engine:    eng,
		Config:    cfg,
		ConfigDir: configDir,
	}

	err = ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}
