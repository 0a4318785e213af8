package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/format"
)

// LinePrompt lists search results on w and reads one reply line from r.
// r should be the same reader the command loop uses so no input is lost to buffering.
type LinePrompt struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompt creates a line-oriented selection prompt
func NewLinePrompt(r *bufio.Reader, w io.Writer) *LinePrompt {
	return &LinePrompt{r: r, w: w}
}

// Prompt implements domain.SelectionPrompt
func (p *LinePrompt) Prompt(term string, results []*domain.Video) (string, error) {
	fmt.Fprintf(p.w, "Here are the results for %s:\n", term)
	for i, v := range results {
		fmt.Fprintln(p.w, format.Numbered(i, v))
	}
	fmt.Fprintln(p.w, "Would you like to play any of the above? If yes, specify the number of the video.")
	fmt.Fprintln(p.w, "If your answer is not a valid number, we will assume it's a no.")

	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
