package service

import (
	"log/slog"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/library"
	"github.com/mmcdole/reel/internal/playback"
	"github.com/mmcdole/reel/internal/playlist"
	"github.com/mmcdole/reel/internal/search"
)

// suggestionLimit caps the titles offered after an empty search
const suggestionLimit = 3

// Player exposes one operation per user-facing command.
// Every mutation of the cursor or of a playlist goes through here so the
// cross-component rules (flag checks, stop-before-flag) hold.
type Player struct {
	catalog   *library.Catalog
	playback  *playback.Controller
	playlists *playlist.Registry
	search    *search.Engine
	prompt    domain.SelectionPrompt
	logger    *slog.Logger
}

// NewPlayer wires the core components together
func NewPlayer(
	catalog *library.Catalog,
	controller *playback.Controller,
	playlists *playlist.Registry,
	engine *search.Engine,
	prompt domain.SelectionPrompt,
	logger *slog.Logger,
) *Player {
	if prompt == nil {
		prompt = domain.DeclinePrompt{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		catalog:   catalog,
		playback:  controller,
		playlists: playlists,
		search:    engine,
		prompt:    prompt,
		logger:    logger,
	}
}

// NumberOfVideos returns the catalog size
func (p *Player) NumberOfVideos() int {
	return p.catalog.Len()
}

// ShowAllVideos lists every video, flagged ones annotated
func (p *Player) ShowAllVideos() []string {
	return p.search.ListAll()
}

// === Playback ===

func (p *Player) PlayVideo(id string) (*domain.Video, error) {
	return p.playback.Play(id)
}

func (p *Player) StopVideo() (*domain.Video, error) {
	return p.playback.Stop()
}

func (p *Player) PlayRandomVideo() (*domain.Video, error) {
	return p.playback.PlayRandom()
}

func (p *Player) PauseVideo() (*domain.Video, error) {
	return p.playback.Pause()
}

func (p *Player) ContinueVideo() (*domain.Video, error) {
	return p.playback.Resume()
}

func (p *Player) ShowPlaying() domain.PlaybackStatus {
	return p.playback.Status()
}

// === Flags ===

// FlagVideo flags a video, stopping it first if it is the loaded one
func (p *Player) FlagVideo(id, reason string) (*domain.Video, error) {
	v, ok := p.catalog.Get(id)
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	if v.IsFlagged() {
		return v, domain.ErrAlreadyFlagged
	}

	if p.playback.StopIfPlaying(id) {
		p.logger.Debug("stopped video before flagging", "videoID", id)
	}
	return p.catalog.Flag(id, reason)
}

// AllowVideo removes the flag from a video
func (p *Player) AllowVideo(id string) (*domain.Video, error) {
	return p.catalog.Unflag(id)
}
