package service

import (
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/search"
)

// SearchOutcome describes a finished search interaction.
type SearchOutcome struct {
	Query    string
	Results  []*domain.Video
	Selected *domain.Video // nil when the user declined
}

// SearchVideos searches titles and lets the user pick a result to play
func (p *Player) SearchVideos(term string) (*SearchOutcome, error) {
	results, err := p.search.ByTitle(term)
	if err != nil {
		return &SearchOutcome{Query: term}, err
	}
	return p.choose(term, results)
}

// SearchVideosWithTag searches tags and lets the user pick a result to play
func (p *Player) SearchVideosWithTag(tag string) (*SearchOutcome, error) {
	results, err := p.search.ByTag(tag)
	if err != nil {
		return &SearchOutcome{Query: tag}, err
	}
	return p.choose(tag, results)
}

// SuggestTitles returns titles close to a search term that found nothing
func (p *Player) SuggestTitles(term string) []string {
	return p.search.Suggest(term, suggestionLimit)
}

// choose prompts for a selection. Anything but a valid 1-based index declines.
// A chosen video goes through the normal play rules; a play error is returned
// with the outcome.
func (p *Player) choose(query string, results []*domain.Video) (*SearchOutcome, error) {
	outcome := &SearchOutcome{Query: query, Results: results}

	reply, err := p.prompt.Prompt(query, results)
	if err != nil {
		p.logger.Debug("selection prompt failed, treating as declined", "error", err)
		return outcome, nil
	}

	i, ok := search.ParseSelection(reply, len(results))
	if !ok {
		p.logger.Debug("selection declined", "query", query, "reply", reply)
		return outcome, nil
	}

	v, err := p.playback.Play(results[i].ID)
	if err != nil {
		return outcome, err
	}
	outcome.Selected = v
	return outcome, nil
}
