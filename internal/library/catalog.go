package library

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/reel/internal/domain"
)

// Catalog is the in-memory video library.
// The record set is fixed at construction. Catalog is the only writer of Video.Flag;
// everyone else holds references and resolves by ID at time of use.
type Catalog struct {
	videos []*domain.Video
	byID   map[string]*domain.Video
	logger *slog.Logger
}

// NewCatalog builds a catalog from videos, keeping their order.
// Duplicate or empty IDs are rejected.
func NewCatalog(videos []*domain.Video, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{
		videos: make([]*domain.Video, 0, len(videos)),
		byID:   make(map[string]*domain.Video, len(videos)),
		logger: logger,
	}
	for _, v := range videos {
		if v.ID == "" {
			return nil, fmt.Errorf("video %q has no id", v.Title)
		}
		if _, dup := c.byID[v.ID]; dup {
			return nil, fmt.Errorf("duplicate video id %q", v.ID)
		}
		c.videos = append(c.videos, v)
		c.byID[v.ID] = v
	}
	logger.Debug("catalog loaded", "count", len(c.videos))
	return c, nil
}

// Get returns the video with the given ID
func (c *Catalog) Get(id string) (*domain.Video, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// All returns every video in catalog order.
// The slice is a copy; the videos are shared.
func (c *Catalog) All() []*domain.Video {
	out := make([]*domain.Video, len(c.videos))
	copy(out, c.videos)
	return out
}

// Len returns the number of videos
func (c *Catalog) Len() int {
	return len(c.videos)
}

// Flag marks a video with a moderation reason. An empty reason is stored as
// domain.DefaultFlagReason.
func (c *Catalog) Flag(id, reason string) (*domain.Video, error) {
	v, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	if v.IsFlagged() {
		return v, domain.ErrAlreadyFlagged
	}
	v.Flag = domain.NormalizeFlagReason(reason)
	c.logger.Info("flagged video", "videoID", id, "reason", v.Flag)
	return v, nil
}

// Unflag clears the moderation reason of a video
func (c *Catalog) Unflag(id string) (*domain.Video, error) {
	v, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	if !v.IsFlagged() {
		return v, domain.ErrNotFlagged
	}
	v.Flag = ""
	c.logger.Info("unflagged video", "videoID", id)
	return v, nil
}
