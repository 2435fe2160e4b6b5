package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tinywasm/enroll"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "modernc.org/sqlite"
)

var (
	cfg    config
	dbPath string
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Drive and inspect the Tech for Girls registration form",
	Long: `enroll runs the registration form state machine outside the browser.

The submission flag lives in a local SQLite file, the same way the browser
keeps it in localStorage. Once a run submits, every later run starts in the
terminal "already submitted" state.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if logger == nil {
			logger, err = newLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// openStore opens the SQLite file named by --db.
func openStore() (*enroll.SQLStore, func() error, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1)
	store, err := enroll.NewSQLStore(enroll.NewDBExecutor(db))
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate %s: %w", dbPath, err)
	}
	return store, db.Close, nil
}

func sessionConfig(out io.Writer) enroll.Config {
	return enroll.Config{
		StorageKey:   cfg.StorageKey,
		ShareBaseURL: cfg.ShareBaseURL,
		ShareMessage: cfg.ShareMessage,
		Logger:       logger,
		Opener: enroll.OpenerFunc(func(url string) {
			fmt.Fprintf(out, "open %s\n", url)
		}),
		Notifier: enroll.NotifierFunc(func(n enroll.Notice) {
			level := "info"
			if n.Destructive {
				level = "error"
			}
			fmt.Fprintf(out, "[%s] %s %s\n", level, n.Title, n.Description)
		}),
	}
}

func init() {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "SQLite file holding the submission flag")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "debug logging")

	rootCmd.AddCommand(statusCmd, shareURLCmd, renderCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
