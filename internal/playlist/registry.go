package playlist

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Registry maps case-insensitive names to playlists.
// Keys are normalized; the playlist keeps the casing it was created with.
type Registry struct {
	byKey  map[string]*domain.Playlist
	logger *slog.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		byKey:  make(map[string]*domain.Playlist),
		logger: logger,
	}
}

// Create adds an empty playlist. Names colliding case-insensitively are rejected.
func (r *Registry) Create(name string) (*domain.Playlist, error) {
	key := domain.PlaylistKey(name)
	if _, exists := r.byKey[key]; exists {
		return nil, domain.ErrDuplicatePlaylist
	}

	p := domain.NewPlaylist(name)
	r.byKey[key] = p
	r.logger.Info("created playlist", "title", name)
	return p, nil
}

// Find looks up a playlist by name, ignoring case
func (r *Registry) Find(name string) (*domain.Playlist, bool) {
	p, ok := r.byKey[domain.PlaylistKey(name)]
	return p, ok
}

// Delete removes the playlist matching name
func (r *Registry) Delete(name string) (*domain.Playlist, error) {
	key := domain.PlaylistKey(name)
	p, ok := r.byKey[key]
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}

	delete(r.byKey, key)
	r.logger.Info("deleted playlist", "title", p.Title)
	return p, nil
}

// All returns playlists sorted by title (byte order)
func (r *Registry) All() []*domain.Playlist {
	out := make([]*domain.Playlist, 0, len(r.byKey))
	for _, p := range r.byKey {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *domain.Playlist) int {
		return strings.Compare(a.Title, b.Title)
	})
	return out
}

// Len returns the number of playlists
func (r *Registry) Len() int {
	return len(r.byKey)
}

// titleSource implements fuzzy.Source over lowercase playlist titles
type titleSource []*domain.Playlist

func (s titleSource) String(i int) string { return strings.ToLower(s[i].Title) }
func (s titleSource) Len() int            { return len(s) }

// Suggest returns the title of the playlist closest to name, if any matches.
func (r *Registry) Suggest(name string) (string, bool) {
	if name == "" || len(r.byKey) == 0 {
		return "", false
	}

	playlists := titleSource(r.All())
	matches := fuzzy.FindFrom(strings.ToLower(name), playlists)
	if len(matches) == 0 {
		return "", false
	}
	return playlists[matches[0].Index].Title, true
}
