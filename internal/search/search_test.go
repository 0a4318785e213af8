package search

import (
	"errors"
	"slices"
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/library"
)

func newTestEngine(t *testing.T, videos []*domain.Video) (*Engine, *library.Catalog) {
	t.Helper()
	cat, err := library.NewCatalog(videos, nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewEngine(cat, nil), cat
}

func catVideos() []*domain.Video {
	return []*domain.Video{
		{ID: "v1", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}},
		{ID: "v2", Title: "Another Cat Video", Tags: []string{"#cat"}, Flag: "dead link"},
		{ID: "v3", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
	}
}

func ids(videos []*domain.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

func TestListAll(t *testing.T) {
	e, _ := newTestEngine(t, []*domain.Video{
		{ID: "b", Title: "beta", Tags: []string{"#x"}},
		{ID: "a", Title: "Beta", Tags: nil, Flag: "spam"},
		{ID: "c", Title: "Alpha", Tags: []string{"#y", "#z"}},
	})

	want := []string{
		"Alpha (c) [#y #z]",
		"Beta (a) [] - FLAGGED (reason: spam)",
		"beta (b) [#x]",
	}
	if got := e.ListAll(); !slices.Equal(got, want) {
		t.Errorf("ListAll() = %q, want %q", got, want)
	}
}

func TestByTitle(t *testing.T) {
	e, _ := newTestEngine(t, catVideos())

	tests := []struct {
		term string
		want []string
	}{
		{"cat", []string{"v1"}},
		{"CAT", []string{"v1"}},
		{"S", []string{"v1", "v3"}},
		{"dogs", []string{"v3"}},
	}
	for _, tt := range tests {
		got, err := e.ByTitle(tt.term)
		if err != nil {
			t.Errorf("ByTitle(%q) error = %v", tt.term, err)
			continue
		}
		if !slices.Equal(ids(got), tt.want) {
			t.Errorf("ByTitle(%q) = %v, want %v", tt.term, ids(got), tt.want)
		}
	}

	if _, err := e.ByTitle("Another"); !errors.Is(err, domain.ErrNoResults) {
		t.Errorf("ByTitle(flagged only) error = %v, want ErrNoResults", err)
	}
	if _, err := e.ByTitle("zebra"); !errors.Is(err, domain.ErrNoResults) {
		t.Errorf("ByTitle(zebra) error = %v", err)
	}
}

func TestByTag(t *testing.T) {
	e, _ := newTestEngine(t, catVideos())

	got, err := e.ByTag("#cat")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ids(got), []string{"v1"}) {
		t.Errorf("ByTag(#cat) = %v, want [v1]", ids(got))
	}

	got, err = e.ByTag("#ANIMAL")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ids(got), []string{"v1", "v3"}) {
		t.Errorf("ByTag(#ANIMAL) = %v", ids(got))
	}

	// Exact tag match only
	if _, err := e.ByTag("cat"); !errors.Is(err, domain.ErrNoResults) {
		t.Errorf("ByTag(cat) error = %v", err)
	}
	if _, err := e.ByTag("#ca"); !errors.Is(err, domain.ErrNoResults) {
		t.Errorf("ByTag(#ca) error = %v", err)
	}
}

func TestSearchNeverReturnsFlagged(t *testing.T) {
	e, cat := newTestEngine(t, catVideos())
	for _, v := range cat.All() {
		cat.Flag(v.ID, "")
	}
	for _, q := range []string{"", "a", "cat"} {
		if got, _ := e.ByTitle(q); len(got) != 0 {
			t.Errorf("ByTitle(%q) returned flagged videos %v", q, ids(got))
		}
	}
	if got, _ := e.ByTag("#animal"); len(got) != 0 {
		t.Errorf("ByTag returned flagged videos %v", ids(got))
	}
}

func TestSearchSeesUnflag(t *testing.T) {
	e, cat := newTestEngine(t, catVideos())
	cat.Unflag("v2")

	got, err := e.ByTag("#cat")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ids(got), []string{"v1", "v2"}) {
		t.Errorf("ByTag(#cat) = %v", ids(got))
	}
}

func TestSuggest(t *testing.T) {
	e, _ := newTestEngine(t, catVideos())

	got := e.Suggest("amzcat", 3)
	if !slices.Equal(got, []string{"Amazing Cats"}) {
		t.Errorf("Suggest(amzcat) = %v", got)
	}
	// Flagged titles are never suggested
	if got := e.Suggest("anothercat", 3); len(got) != 0 {
		t.Errorf("Suggest(anothercat) = %v", got)
	}
	if got := e.Suggest("", 3); got != nil {
		t.Errorf("Suggest(\"\") = %v", got)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		reply string
		n     int
		want  int
		ok    bool
	}{
		{"1", 1, 0, true},
		{" 2\n", 3, 1, true},
		{"3", 3, 2, true},
		{"4", 3, 0, false},
		{"0", 3, 0, false},
		{"-1", 3, 0, false},
		{"abc", 3, 0, false},
		{"1.5", 3, 0, false},
		{"", 3, 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSelection(tt.reply, tt.n)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSelection(%q, %d) = %d, %v, want %d, %v", tt.reply, tt.n, got, ok, tt.want, tt.ok)
		}
	}
}
