package service

import "github.com/mmcdole/reel/internal/domain"

// PlaylistView is a playlist resolved against the catalog at display time
type PlaylistView struct {
	Playlist *domain.Playlist
	Videos   []*domain.Video // Flagged videos included; dangling IDs skipped
}

// CreatePlaylist creates an empty playlist
func (p *Player) CreatePlaylist(name string) (*domain.Playlist, error) {
	return p.playlists.Create(name)
}

// AddToPlaylist checks, in order: playlist, video, flag, membership.
// Nothing changes unless every check passes.
func (p *Player) AddToPlaylist(name, videoID string) (*domain.Video, error) {
	pl, ok := p.playlists.Find(name)
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	v, ok := p.catalog.Get(videoID)
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	if v.IsFlagged() {
		return v, &domain.FlaggedError{VideoID: v.ID, Reason: v.Flag}
	}
	if pl.Contains(v.ID) {
		return v, domain.ErrAlreadyInPlaylist
	}

	pl.Add(v.ID)
	p.logger.Info("added video to playlist", "playlist", pl.Title, "videoID", v.ID)
	return v, nil
}

// RemoveFromPlaylist checks, in order: playlist, video, membership.
func (p *Player) RemoveFromPlaylist(name, videoID string) (*domain.Video, error) {
	pl, ok := p.playlists.Find(name)
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	v, ok := p.catalog.Get(videoID)
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	if !pl.Contains(v.ID) {
		return v, domain.ErrNotInPlaylist
	}

	pl.Remove(v.ID)
	p.logger.Info("removed video from playlist", "playlist", pl.Title, "videoID", v.ID)
	return v, nil
}

// ClearPlaylist removes every video from a playlist
func (p *Player) ClearPlaylist(name string) (*domain.Playlist, error) {
	pl, ok := p.playlists.Find(name)
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	pl.Clear()
	p.logger.Info("cleared playlist", "playlist", pl.Title)
	return pl, nil
}

// DeletePlaylist removes a playlist
func (p *Player) DeletePlaylist(name string) (*domain.Playlist, error) {
	return p.playlists.Delete(name)
}

// ShowPlaylist resolves a playlist's IDs against the catalog
func (p *Player) ShowPlaylist(name string) (*PlaylistView, error) {
	pl, ok := p.playlists.Find(name)
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}

	view := &PlaylistView{Playlist: pl}
	for _, id := range pl.VideoIDs() {
		v, ok := p.catalog.Get(id)
		if !ok {
			p.logger.Warn("playlist references unknown video", "playlist", pl.Title, "videoID", id)
			continue
		}
		view.Videos = append(view.Videos, v)
	}
	return view, nil
}

// ShowAllPlaylists returns playlists sorted by title, or ErrNoPlaylists
func (p *Player) ShowAllPlaylists() ([]*domain.Playlist, error) {
	if p.playlists.Len() == 0 {
		return nil, domain.ErrNoPlaylists
	}
	return p.playlists.All(), nil
}

// SuggestPlaylist returns the existing playlist title closest to name
func (p *Player) SuggestPlaylist(name string) (string, bool) {
	return p.playlists.Suggest(name)
}
