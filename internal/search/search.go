package search

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/format"
)

// Engine answers catalog queries.
// Flagged videos are visible in listings but never in search results.
type Engine struct {
	videos domain.VideoSource
	logger *slog.Logger
}

// NewEngine creates a new search engine
func NewEngine(videos domain.VideoSource, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		videos: videos,
		logger: logger,
	}
}

// ListAll renders every video, flag-annotated, sorted by the rendered string
// in byte order (not case-folded).
func (e *Engine) ListAll() []string {
	videos := e.videos.All()
	lines := make([]string, len(videos))
	for i, v := range videos {
		lines[i] = format.Annotated(v)
	}
	slices.Sort(lines)
	return lines
}

// ByTitle returns unflagged videos whose title contains term, ignoring case,
// in catalog order.
func (e *Engine) ByTitle(term string) ([]*domain.Video, error) {
	needle := strings.ToLower(term)
	return e.filter(term, func(v *domain.Video) bool {
		return strings.Contains(strings.ToLower(v.Title), needle)
	})
}

// ByTag returns unflagged videos carrying tag, ignoring case, in catalog order.
func (e *Engine) ByTag(tag string) ([]*domain.Video, error) {
	return e.filter(tag, func(v *domain.Video) bool {
		return v.HasTag(tag)
	})
}

func (e *Engine) filter(query string, match func(*domain.Video) bool) ([]*domain.Video, error) {
	var results []*domain.Video
	for _, v := range e.videos.All() {
		if v.IsFlagged() {
			continue
		}
		if match(v) {
			results = append(results, v)
		}
	}

	e.logger.Debug("search complete", "query", query, "results", len(results))
	if len(results) == 0 {
		return nil, domain.ErrNoResults
	}
	return results, nil
}

// Suggest returns up to limit unflagged titles that fuzzily match term,
// best first.
func (e *Engine) Suggest(term string, limit int) []string {
	if term == "" || limit <= 0 {
		return nil
	}

	var titles []string
	for _, v := range e.videos.All() {
		if !v.IsFlagged() {
			titles = append(titles, v.Title)
		}
	}

	ranks := fuzzy.RankFindFold(term, titles)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		return a.Distance - b.Distance
	})

	out := make([]string, 0, min(limit, len(ranks)))
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, r.Target)
	}
	return out
}

// ParseSelection interprets a reply to the result prompt.
// It returns the 0-based index, or false when the reply is not a number in [1, n].
func ParseSelection(reply string, n int) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil || choice < 1 || choice > n {
		return 0, false
	}
	return choice - 1, true
}
