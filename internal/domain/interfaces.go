package domain

// VideoSource is read access to the catalog.
type VideoSource interface {
	// Get returns the video with the given ID
	Get(id string) (*Video, bool)

	// All returns every video in catalog order
	All() []*Video
}

// SelectionPrompt asks the user to pick one of the search results.
// It returns the raw reply; interpretation is left to the caller.
// Implementations block until a reply is available.
type SelectionPrompt interface {
	Prompt(term string, results []*Video) (string, error)
}

// DeclinePrompt never selects anything (for testing/batch operations).
type DeclinePrompt struct{}

func (DeclinePrompt) Prompt(string, []*Video) (string, error) { return "", nil }
