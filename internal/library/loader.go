package library

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/store"
)

// Catalog file formats
const (
	FormatText = "text"
	FormatBolt = "bolt"
)

//go:embed videos.txt
var defaultCatalog string

// ParseCatalog reads the text catalog format, one video per line:
//
//	Title | video_id | #tag1 , #tag2
//
// The tag column is optional. Blank lines are skipped.
func ParseCatalog(r io.Reader) ([]*domain.Video, error) {
	var videos []*domain.Video
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("line %d: expected \"title | id | tags\", got %q", lineNum, line)
		}

		title := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])
		if title == "" || id == "" {
			return nil, fmt.Errorf("line %d: title and id are required", lineNum)
		}

		var tags []string
		if len(fields) == 3 {
			tags = parseTags(fields[2])
		}

		videos = append(videos, &domain.Video{ID: id, Title: title, Tags: tags})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return videos, nil
}

func parseTags(field string) []string {
	var tags []string
	for _, t := range strings.Split(field, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Default returns a catalog built from the embedded sample library
func Default(logger *slog.Logger) (*Catalog, error) {
	videos, err := ParseCatalog(strings.NewReader(defaultCatalog))
	if err != nil {
		return nil, fmt.Errorf("failed to parse default catalog: %w", err)
	}
	return NewCatalog(videos, logger)
}

// Open loads a catalog from path. format is FormatText, FormatBolt, or empty to
// decide from the file extension (.db and .bolt are bbolt snapshots).
// An empty path loads the embedded sample library.
func Open(path, format string, logger *slog.Logger) (*Catalog, error) {
	if path == "" {
		return Default(logger)
	}
	if format == "" {
		format = DetectFormat(path)
	}

	var (
		videos []*domain.Video
		err    error
	)
	switch format {
	case FormatText:
		videos, err = readTextFile(path)
	case FormatBolt:
		videos, err = readSnapshot(path)
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	if err != nil {
		return nil, err
	}

	return NewCatalog(videos, logger)
}

// DetectFormat guesses the catalog format from the file extension
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".bolt":
		return FormatBolt
	default:
		return FormatText
	}
}

func readTextFile(path string) ([]*domain.Video, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	videos, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return videos, nil
}

func readSnapshot(path string) ([]*domain.Video, error) {
	s, err := store.OpenCatalogStore(path, true)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.LoadVideos()
}
