package playback

import (
	"log/slog"
	"math/rand/v2"

	"github.com/mmcdole/reel/internal/domain"
)

// Controller owns the single playback cursor.
// At most one video is loaded; paused is only meaningful while one is.
type Controller struct {
	videos   domain.VideoSource
	observer domain.PlaybackObserver
	intn     func(n int) int
	logger   *slog.Logger

	current *domain.Video
	paused  bool
}

// NewController creates a stopped controller.
// intn picks random indexes in [0, n); nil uses math/rand/v2.
func NewController(
	videos domain.VideoSource,
	observer domain.PlaybackObserver,
	intn func(n int) int,
	logger *slog.Logger,
) *Controller {
	if observer == nil {
		observer = domain.NoOpObserver{}
	}
	if intn == nil {
		intn = rand.IntN
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		videos:   videos,
		observer: observer,
		intn:     intn,
		logger:   logger,
	}
}

// Seeded returns a deterministic random source for NewController
func Seeded(seed uint64) func(n int) int {
	return rand.New(rand.NewPCG(seed, seed)).IntN
}

// Status returns the current cursor state
func (c *Controller) Status() domain.PlaybackStatus {
	switch {
	case c.current == nil:
		return domain.PlaybackStatus{State: domain.PlaybackStopped}
	case c.paused:
		return domain.PlaybackStatus{State: domain.PlaybackPaused, Video: c.current}
	default:
		return domain.PlaybackStatus{State: domain.PlaybackPlaying, Video: c.current}
	}
}

// Play loads the video and starts it, stopping whatever was loaded.
// Flagged or unknown videos leave the cursor untouched.
func (c *Controller) Play(id string) (*domain.Video, error) {
	v, ok := c.videos.Get(id)
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	if v.IsFlagged() {
		c.logger.Debug("refusing to play flagged video", "videoID", id, "reason", v.Flag)
		return v, &domain.FlaggedError{VideoID: id, Reason: v.Flag}
	}

	c.stopCurrent()
	c.start(v)
	return v, nil
}

// Stop unloads the current video
func (c *Controller) Stop() (*domain.Video, error) {
	if c.current == nil {
		return nil, domain.ErrNothingPlaying
	}
	return c.stopCurrent(), nil
}

// Pause pauses the current video. If it is already paused the video is
// returned along with ErrAlreadyPaused.
func (c *Controller) Pause() (*domain.Video, error) {
	if c.current == nil {
		return nil, domain.ErrNothingPlaying
	}
	if c.paused {
		return c.current, domain.ErrAlreadyPaused
	}

	c.paused = true
	c.logger.Info("paused", "videoID", c.current.ID)
	c.observer.OnPlayback(domain.PlaybackEvent{Kind: domain.EventPaused, Video: c.current})
	return c.current, nil
}

// Resume continues a paused video
func (c *Controller) Resume() (*domain.Video, error) {
	if c.current == nil {
		return nil, domain.ErrNothingPlaying
	}
	if !c.paused {
		return c.current, domain.ErrNotPaused
	}

	c.paused = false
	c.logger.Info("resumed", "videoID", c.current.ID)
	c.observer.OnPlayback(domain.PlaybackEvent{Kind: domain.EventResumed, Video: c.current})
	return c.current, nil
}

// PlayRandom stops the current video, then plays one chosen uniformly among
// the unflagged videos. With none available the cursor stays stopped.
func (c *Controller) PlayRandom() (*domain.Video, error) {
	c.stopCurrent()

	var candidates []*domain.Video
	for _, v := range c.videos.All() {
		if !v.IsFlagged() {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		c.logger.Debug("no unflagged videos for random play")
		return nil, domain.ErrNoVideosAvailable
	}

	v := candidates[c.intn(len(candidates))]
	c.start(v)
	return v, nil
}

// StopIfPlaying stops the cursor when id is the loaded video, playing or paused.
// Returns true if it stopped something.
func (c *Controller) StopIfPlaying(id string) bool {
	if c.current == nil || c.current.ID != id {
		return false
	}
	c.stopCurrent()
	return true
}

func (c *Controller) start(v *domain.Video) {
	c.current = v
	c.paused = false
	c.logger.Info("playing", "videoID", v.ID, "title", v.Title)
	c.observer.OnPlayback(domain.PlaybackEvent{Kind: domain.EventPlaying, Video: v})
}

// stopCurrent clears the cursor, announcing the stop if something was loaded
func (c *Controller) stopCurrent() *domain.Video {
	v := c.current
	if v == nil {
		return nil
	}
	c.current = nil
	c.paused = false
	c.logger.Info("stopped", "videoID", v.ID)
	c.observer.OnPlayback(domain.PlaybackEvent{Kind: domain.EventStopped, Video: v})
	return v
}
