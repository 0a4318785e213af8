package domain

// PlaybackState is the state of the single playback cursor
type PlaybackState int

const (
	PlaybackStopped PlaybackState = iota
	PlaybackPlaying
	PlaybackPaused
)

// String returns a human-readable label for the playback state.
func (s PlaybackState) String() string {
	switch s {
	case PlaybackStopped:
		return "stopped"
	case PlaybackPlaying:
		return "playing"
	case PlaybackPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// PlaybackStatus is a snapshot of the cursor. Video is nil when stopped.
type PlaybackStatus struct {
	State PlaybackState
	Video *Video
}

// PlaybackEventKind identifies a cursor transition
type PlaybackEventKind int

const (
	EventPlaying PlaybackEventKind = iota
	EventStopped
	EventPaused
	EventResumed
)

// PlaybackEvent announces a transition of the cursor.
type PlaybackEvent struct {
	Kind  PlaybackEventKind
	Video *Video
}

// PlaybackObserver receives cursor transitions as they happen.
type PlaybackObserver interface {
	OnPlayback(event PlaybackEvent)
}

// NoOpObserver discards playback events (for testing/batch operations).
type NoOpObserver struct{}

func (NoOpObserver) OnPlayback(PlaybackEvent) {}

// ObserverFunc adapts a function to PlaybackObserver
type ObserverFunc func(PlaybackEvent)

func (f ObserverFunc) OnPlayback(e PlaybackEvent) { f(e) }
