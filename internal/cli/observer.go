package cli

import (
	"fmt"
	"io"

	"github.com/mmcdole/reel/internal/domain"
)

// Observer prints playback transitions as they happen.
type Observer struct {
	w     io.Writer
	style styler
}

// NewObserver creates a printing domain.PlaybackObserver
func NewObserver(w io.Writer, color bool) *Observer {
	return &Observer{w: w, style: styler{color: color}}
}

func (o *Observer) OnPlayback(e domain.PlaybackEvent) {
	var verb string
	switch e.Kind {
	case domain.EventPlaying:
		verb = "Playing"
	case domain.EventStopped:
		verb = "Stopping"
	case domain.EventPaused:
		verb = "Pausing"
	case domain.EventResumed:
		verb = "Continuing"
	default:
		return
	}
	fmt.Fprintln(o.w, o.style.accent(fmt.Sprintf("%s video: %s", verb, e.Video.Title)))
}
