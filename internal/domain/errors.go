package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrVideoNotFound indicates the requested video does not exist
	ErrVideoNotFound = errors.New("video does not exist")

	// ErrVideoFlagged indicates the video is flagged; see FlaggedError for the reason
	ErrVideoFlagged = errors.New("video is currently flagged")

	// ErrPlaylistNotFound indicates no playlist matches the name
	ErrPlaylistNotFound = errors.New("playlist does not exist")

	// ErrDuplicatePlaylist indicates a playlist with the same name already exists
	ErrDuplicatePlaylist = errors.New("a playlist with the same name already exists")

	// ErrNoPlaylists indicates the registry is empty
	ErrNoPlaylists = errors.New("no playlists exist yet")

	ErrAlreadyInPlaylist = errors.New("video already added")
	ErrNotInPlaylist     = errors.New("video is not in playlist")

	// ErrNothingPlaying indicates the cursor is stopped
	ErrNothingPlaying = errors.New("no video is currently playing")

	ErrAlreadyPaused = errors.New("video already paused")
	ErrNotPaused     = errors.New("video is not paused")

	// ErrNoVideosAvailable indicates every catalog video is flagged, or the catalog is empty
	ErrNoVideosAvailable = errors.New("no videos available")

	ErrNoResults = errors.New("no search results")

	ErrAlreadyFlagged = errors.New("video is already flagged")
	ErrNotFlagged     = errors.New("video is not flagged")
)

// FlaggedError is returned when an operation is refused because the video is flagged.
// It matches ErrVideoFlagged with errors.Is.
type FlaggedError struct {
	VideoID string
	Reason  string
}

func (e *FlaggedError) Error() string {
	return fmt.Sprintf("video is currently flagged (reason: %s)", e.Reason)
}

func (e *FlaggedError) Is(target error) bool {
	return target == ErrVideoFlagged
}

// FlagReason extracts the flag reason from err, if it is a FlaggedError
func FlagReason(err error) (string, bool) {
	var fe *FlaggedError
	if errors.As(err, &fe) {
		return fe.Reason, true
	}
	return "", false
}
