package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/cli"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/library"
	"github.com/mmcdole/reel/internal/playback"
	"github.com/mmcdole/reel/internal/playlist"
	"github.com/mmcdole/reel/internal/search"
	"github.com/mmcdole/reel/internal/service"
	"github.com/mmcdole/reel/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var configFile string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configFile, "config", "", "path to config file")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, closer = adapter.NullLogger(), io.NopCloser(nil)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	catalog, err := library.Open(cfg.Catalog.Path, cfg.Catalog.Format, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	color := cfg.UI.Color && term.IsTerminal(int(os.Stdout.Fd()))
	in := bufio.NewReader(os.Stdin)

	var intn func(int) int
	if cfg.Playback.Seed != 0 {
		intn = playback.Seeded(cfg.Playback.Seed)
	}

	// Create services
	controller := playback.NewController(catalog, cli.NewObserver(os.Stdout, color), intn, logger)
	player := service.NewPlayer(
		catalog,
		controller,
		playlist.NewRegistry(logger),
		search.NewEngine(catalog, logger),
		selectionPrompt(cfg.UI.Picker, interactive, in, logger),
		logger,
	)

	opts := cli.Options{Color: color}
	if interactive {
		opts.Prompt = "> "
		fmt.Println("Hello and welcome to reel, what would you like to do?")
		fmt.Println("Enter HELP for list of available commands or EXIT to terminate.")
	}

	logger.Info("starting command loop", "videos", catalog.Len(), "picker", cfg.UI.Picker)

	if err := cli.New(player, in, os.Stdout, opts, logger).Run(); err != nil {
		logger.Error("command loop error", "error", err)
		return err
	}

	logger.Info("shutting down")
	return nil
}

// selectionPrompt picks how search results are offered to the user.
// The line prompt shares the command reader.
func selectionPrompt(mode string, interactive bool, in *bufio.Reader, logger *slog.Logger) domain.SelectionPrompt {
	picker := adapter.ResolvePicker(mode, interactive)
	if mode == adapter.PickerTUI && picker != adapter.PickerTUI {
		logger.Warn("stdin is not a terminal, using line prompt", "picker", mode)
	}
	if picker == adapter.PickerTUI {
		return tui.NewPicker(os.Stdin, os.Stdout)
	}
	return adapter.NewLinePrompt(in, os.Stdout)
}
