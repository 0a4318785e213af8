// Package format renders catalog entries to their canonical display strings.
package format

import (
	"fmt"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

// Video renders "Title (id) [#tag1 #tag2]"
func Video(v *domain.Video) string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}

// Annotated renders the video with a flag suffix when flagged
func Annotated(v *domain.Video) string {
	if v.IsFlagged() {
		return Video(v) + FlagSuffix(v.Flag)
	}
	return Video(v)
}

// FlagSuffix renders " - FLAGGED (reason: r)"
func FlagSuffix(reason string) string {
	return fmt.Sprintf(" - FLAGGED (reason: %s)", reason)
}

// Numbered renders a 1-indexed result line
func Numbered(i int, v *domain.Video) string {
	return fmt.Sprintf("%d) %s", i+1, Video(v))
}
