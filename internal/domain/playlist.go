package domain

import (
	"slices"
	"strings"
)

// Playlist is a named, ordered, duplicate-free list of video IDs.
// IDs are not validated against the catalog and may dangle.
type Playlist struct {
	Title    string // Case-preserved display name
	videoIDs []string
}

// NewPlaylist creates an empty playlist
func NewPlaylist(title string) *Playlist {
	return &Playlist{Title: title}
}

// PlaylistKey returns the case-insensitive identity of a playlist name
func PlaylistKey(name string) string {
	return strings.ToLower(name)
}

// Contains reports whether id is in the playlist
func (p *Playlist) Contains(id string) bool {
	return slices.Contains(p.videoIDs, id)
}

// Add appends id unless already present. Returns true if the playlist changed.
func (p *Playlist) Add(id string) bool {
	if p.Contains(id) {
		return false
	}
	p.videoIDs = append(p.videoIDs, id)
	return true
}

// Remove deletes id if present. Returns true if the playlist changed.
func (p *Playlist) Remove(id string) bool {
	i := slices.Index(p.videoIDs, id)
	if i < 0 {
		return false
	}
	p.videoIDs = slices.Delete(p.videoIDs, i, i+1)
	return true
}

// Clear empties the playlist
func (p *Playlist) Clear() {
	p.videoIDs = nil
}

// VideoIDs returns a copy of the IDs in insertion order
func (p *Playlist) VideoIDs() []string {
	return slices.Clone(p.videoIDs)
}

// Len returns the number of IDs
func (p *Playlist) Len() int {
	return len(p.videoIDs)
}
