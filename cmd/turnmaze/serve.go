package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turnmaze/internal/levels"
	"github.com/vovakirdan/turnmaze/internal/storage"
	"github.com/vovakirdan/turnmaze/internal/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeSave   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve [maze]",
	Short: "Start the visualiser SSH server",
	Long: `Start an SSH server that shows the search visualiser to every
connection. Each session runs its own search over the same maze.

The maze defaults to server.maze from the config. Address, host key and
idle timeout also default to the server section.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise the config value is used, auto-generated if missing

Examples:
  turnmaze serve mazes/wall.txt
  turnmaze serve --ssh :2222 mazes/wall.txt
  turnmaze serve --save              # record every finished session

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.MaximumNArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().BoolVar(&flagServeSave, "save", false, "Record finished sessions in the history database")
}

func runServe(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}
	if len(args) > 0 {
		cfg.Server.Maze = args[0]
	}
	if cfg.Server.Maze == "" {
		fail("no maze given and server.maze is not set")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fail("%v", err)
	}
	logger.SetPrefix("turnmaze-ssh")

	maze, err := levels.LoadFile(cfg.Server.Maze)
	if err != nil {
		fail("%v", err)
	}

	opts, err := cfg.Search.Options()
	if err != nil {
		fail("%v", err)
	}

	var store *storage.Store
	if flagServeSave {
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			logger.Warn("could not open history database", "error", err)
			// Continue without storage
		}
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeoutMinutes) * time.Minute,
		Maze:        maze,
		Options:     opts,
		Settings:    runSettings(cfg),
		TickRate:    cfg.Watch.TickRate,
		Store:       store,
	}, logger)
	if err != nil {
		closeStore(store)
		fail("creating server: %v", err)
	}

	fmt.Printf("Serving %s on %s\n", maze.Name, server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	err = server.ListenAndServe()
	closeStore(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
