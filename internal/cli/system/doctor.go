package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/bloom/internal/backup"
	"github.com/julianstephens/bloom/internal/cli"
	"github.com/julianstephens/bloom/internal/storage"
	"github.com/julianstephens/bloom/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable and parseable
	snapshotOK := false
	if err := checkSnapshot(ctx); err != nil {
		if errors.Is(err, storage.ErrNotInitialized) {
			fmt.Printf("⚠ Snapshot: not initialized (run 'bloom init')\n")
		} else {
			fmt.Printf("❌ Snapshot: FAIL\n   Error: %v\n", err)
			hasError = true
		}
	} else {
		fmt.Printf("✓ Snapshot: OK\n")
		snapshotOK = true
	}

	// Check 2: snapshot day marker vs today
	if snapshotOK {
		if err := checkRolloverMarker(ctx); err != nil {
			fmt.Printf("⚠ Day marker: %v\n", err)
		} else {
			fmt.Printf("✓ Day marker: OK\n")
		}
	} else {
		fmt.Printf("⊘ Day marker: SKIPPED (no snapshot)\n")
	}

	// Check 3: timezone valid
	if utils.ValidateTimezone(ctx.Config.App.Timezone) {
		fmt.Printf("✓ Timezone: OK (%s)\n", ctx.Config.App.Timezone)
	} else {
		fmt.Printf("❌ Timezone: FAIL\n   Error: invalid timezone %q\n", ctx.Config.App.Timezone)
		hasError = true
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: no second bloom process against the same storage
	if err := checkSingleInstance(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkSnapshot(ctx *cli.Context) error {
	_, err := ctx.Store.Load()
	return err
}

func checkRolloverMarker(ctx *cli.Context) error {
	state, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	today := utils.DayKey(ctx.Engine.Now())
	if state.LastActiveDate != today {
		return fmt.Errorf("last active day is %s; rollover will apply on next load", state.LastActiveDate)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; run 'bloom backup create'")
	}
	return nil
}

// checkSingleInstance warns when another bloom process is running. The
// storage layer assumes a single writer; two live processes can lose
// updates.
func checkSingleInstance() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not enumerate processes: %w", err)
	}

	self := os.Getpid()
	name := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.TrimSuffix(p.Executable(), ".exe") == name {
			return fmt.Errorf("another %s process is running (pid %d); concurrent writers are unsupported", name, p.Pid())
		}
	}
	return nil
}
