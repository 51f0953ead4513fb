package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stickies/internal/board"
	"stickies/internal/storage"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// appContext holds the global flag values shared by every subcommand.
type appContext struct {
	configFile string
	dataDir    string
	backend    string
	verbose    bool
	ephemeral  bool
}

func newRootCmd() *cobra.Command {
	app := &appContext{}
	cmd := &cobra.Command{
		Use:   "stickies",
		Short: "A sticky-notes board for the terminal",
		Long: `Stickies is a board of freeform text notes. Add notes, drag them by
their header, resize them from the corner, and drop them on the trash to
delete them. The board is saved after every change.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runBoard,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/stickies/config.yaml)")
	flags.StringVar(&app.dataDir, "data-dir", "", "directory holding the saved board (default: $XDG_DATA_HOME/stickies)")
	flags.StringVar(&app.backend, "backend", storage.BackendFile, "storage backend: file, sqlite or memory")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVar(&app.ephemeral, "ephemeral", false, "keep the board in memory only")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (a *appContext) config(cmd *cobra.Command) (*Config, error) {
	configDir, err := defaultConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(cmd, a.configFile, configDir)
	if err != nil {
		return nil, err
	}
	if a.ephemeral {
		cfg.Backend = storage.BackendMemory
	}
	return cfg, nil
}

// loadNotes reads the stored board once, for commands that do not open the
// UI.
func (a *appContext) loadNotes(cmd *cobra.Command) ([]board.Note, error) {
	cfg, err := a.config(cmd)
	if err != nil {
		return nil, err
	}
	kv, err := storage.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer kv.Close()
	return storage.NewPersistence(kv, nil).Load(), nil
}

func (a *appContext) runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := a.config(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Sync()

	kv, err := storage.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer kv.Close()

	persistence := storage.NewPersistence(kv, logger)
	notes := cfg.Reducer().Normalize(persistence.Load())
	b := board.New(cfg.Reducer(), notes, logger)
	b.Observe(persistence.Mirror())
	logger.Info("board opened",
		zap.String("backend", cfg.Backend),
		zap.String("data_dir", cfg.DataDir),
		zap.Int("notes", len(notes)))

	p := tea.NewProgram(newModel(b, cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	logger.Info("board closed", zap.Int("notes", len(b.State().Notes)))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stickies version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "stickies", version)
		},
	}
}
