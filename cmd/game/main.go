// Command game is the playable front end: an interactive TUI by default,
// plus a simulate subcommand that replays a command script against a world.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jsredmond/zork1-sub000/internal/config"
	"github.com/jsredmond/zork1-sub000/internal/content"
	"github.com/jsredmond/zork1-sub000/internal/engine"
	"github.com/jsredmond/zork1-sub000/internal/tui"
	"github.com/jsredmond/zork1-sub000/internal/vocab"
	"github.com/jsredmond/zork1-sub000/internal/world"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var worldPath, saveDir, logPath string
	var debug bool

	root := &cobra.Command{
		Use:   "game",
		Short: "A text adventure engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(worldPath, saveDir, logPath, debug)
			if err != nil {
				return err
			}
			sess, cleanup, err := newSession(cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			return tui.Run(sess, cfg.SaveDir)
		},
	}
	root.PersistentFlags().StringVar(&worldPath, "world", "", "world definition file (default: embedded world)")
	root.PersistentFlags().StringVar(&saveDir, "save-dir", "", "directory for saved sessions")
	root.PersistentFlags().StringVar(&logPath, "log", "", "debug log file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	simulate := &cobra.Command{
		Use:   "simulate <script>",
		Short: "Replay a newline-separated command script and print outcomes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(worldPath, saveDir, logPath, debug)
			if err != nil {
				return err
			}
			sess, cleanup, err := newSession(cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			return runScript(sess, args[0], cmd.OutOrStdout())
		},
	}
	root.AddCommand(simulate)
	return root
}

func loadConfig(worldPath, saveDir, logPath string, debug bool) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if worldPath != "" {
		cfg.WorldPath = worldPath
	}
	if saveDir != "" {
		cfg.SaveDir = saveDir
	}
	if logPath != "" {
		cfg.LogPath = logPath
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// newSession loads the world and wires a session with its logger. The TUI
// owns stdout, so the logger writes to a file or nowhere.
func newSession(cfg *config.Config) (*engine.Session, func(), error) {
	log, cleanup, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	w, tab, err := loadWorld(cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	sess := engine.NewSession(w, tab, log)
	log.Info("session started",
		zap.String("session_id", sess.ID.String()),
		zap.String("world", cfg.WorldPath))
	return sess, cleanup, nil
}

func loadWorld(cfg *config.Config) (*world.World, *vocab.Table, error) {
	if cfg.WorldPath != "" {
		return content.LoadFile(cfg.WorldPath)
	}
	return content.LoadDefault()
}

func newLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	if cfg.LogPath == "" {
		return zap.NewNop(), func() {}, nil
	}
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.LogPath}
	log, err := zcfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	return log, func() { _ = log.Sync() }, nil
}

// runScript feeds each non-empty, non-comment line of the script to the
// session and prints the outcome, stopping early on quit.
func runScript(sess *engine.Session, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		fmt.Fprintf(out, "> %s\n", line)
		fmt.Fprintf(out, "%s\n\n", sess.Execute(line))
		if sess.Quit {
			break
		}
	}
	return scanner.Err()
}
