package domain

import "strings"

// DefaultFlagReason is stored when a video is flagged without a reason.
const DefaultFlagReason = "Not supplied"

// Video represents a catalog entry.
// The record set is fixed once loaded; only Flag changes, and only through the catalog.
type Video struct {
	ID    string   `json:"id"`    // Stable unique identifier
	Title string   `json:"title"` // Display title
	Tags  []string `json:"tags"`  // Ordered tags, e.g. "#cat"

	// Moderation reason. Empty means not flagged. Never persisted.
	Flag string `json:"-"`
}

// IsFlagged reports whether the video carries a moderation reason
func (v *Video) IsFlagged() bool {
	return v.Flag != ""
}

// HasTag reports whether any tag equals tag, ignoring case
func (v *Video) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// NormalizeFlagReason maps an empty reason to DefaultFlagReason
func NormalizeFlagReason(reason string) string {
	if reason == "" {
		return DefaultFlagReason
	}
	return reason
}
