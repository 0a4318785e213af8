package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/format"
	"github.com/mmcdole/reel/internal/library"
	"github.com/mmcdole/reel/internal/store"
)

const usage = `usage:
  reelcat import <videos.txt> <catalog.db>   convert a text catalog to a bolt snapshot
  reelcat list [catalog]                      print a catalog (default: built-in sample)`

func main() {
	verbose := flag.Bool("verbose", false, "log to stderr")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	logger := adapter.NullLogger()
	if *verbose {
		logger = adapter.NewLogger(os.Stderr, "debug")
	}
	slog.SetDefault(logger)

	if err := run(flag.Args(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, logger *slog.Logger) error {
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "import":
		if len(args) != 3 {
			flag.Usage()
			return fmt.Errorf("import takes a source and a destination")
		}
		return importCatalog(args[1], args[2], logger)
	case "list":
		if len(args) > 2 {
			flag.Usage()
			return fmt.Errorf("list takes at most one catalog")
		}
		path := ""
		if len(args) == 2 {
			path = args[1]
		}
		return listCatalog(path, logger)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// importCatalog writes a text catalog into a bolt snapshot, replacing its contents
func importCatalog(src, dst string, logger *slog.Logger) error {
	catalog, err := library.Open(src, library.FormatText, logger)
	if err != nil {
		return err
	}

	s, err := store.OpenCatalogStore(dst, false)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer s.Close()

	if err := s.SaveVideos(catalog.All()); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	logger.Info("imported catalog", "source", src, "destination", dst, "videos", catalog.Len())
	fmt.Printf("✓ Imported %d videos into %s\n", catalog.Len(), dst)
	return nil
}

// listCatalog prints every video in load order
func listCatalog(path string, logger *slog.Logger) error {
	catalog, err := library.Open(path, "", logger)
	if err != nil {
		return err
	}
	for _, v := range catalog.All() {
		fmt.Println(format.Video(v))
	}
	fmt.Printf("%d videos\n", catalog.Len())
	return nil
}
