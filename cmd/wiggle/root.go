// Root command for the wiggle CLI. Each subcommand is one discrete user
// action; the store, settings, and tracker are opened before the command
// runs and released after it finishes.
package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/logging"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/paths"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/settings"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/sqlite"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/tracker"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagDebug     bool
)

// Application state opened by PersistentPreRunE and released by
// PersistentPostRunE.
var (
	logger *zap.SugaredLogger
	store  *sqlite.Store
	prefs  *settings.Store
	track  *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "wiggle",
	Short: "Wiggle is a dog care logbook",
	Long: `Wiggle records a dog's mood, diet, walks, room time, and notes into a
local SQLite logbook and shows them back in tabular views.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openApp,
	PersistentPostRunE: closeApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log to stderr as well")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(ateCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(roomCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(walkNoteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
}

// openApp loads config, builds the logger, opens the record store (seeding
// from a shipped template when present), ensures the schema, loads settings,
// and wires the tracker. An unopenable store is logged and the command still
// runs in a degraded state with persistence non-functional.
func openApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return err
	}

	logger = logging.New(filepath.Join(dataDir, paths.LogFileName), flagDebug)

	storeCfg := storeConfig(cfg, dataDir)
	store, err = sqlite.Open(storeCfg, logger)
	if err != nil {
		logger.Errorw("opening store", "path", storeCfg.DBPath, "error", err)
	} else if err := store.EnsureSchema(); err != nil {
		logger.Errorw("ensuring schema", "error", err)
	}

	prefs, err = settings.Open(filepath.Join(configDir, paths.SettingsFileName), logger)
	if err != nil {
		logger.Errorw("opening settings", "error", err)
		prefs, _ = settings.Open(filepath.Join(configDir, paths.SettingsFileName+".new"), logger)
	}
	if prefs != nil {
		prefs.EnsureInstallID()
	}

	if store != nil {
		track = tracker.New(store, logger)
	}
	return nil
}

// closeApp flushes settings and releases the store. Both are best-effort.
func closeApp(cmd *cobra.Command, args []string) error {
	if prefs != nil {
		if err := prefs.Flush(); err != nil {
			logger.Errorw("flushing settings", "error", err)
		}
	}
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Errorw("closing store", "error", err)
		}
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return nil
}
