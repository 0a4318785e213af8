package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/format"
	"github.com/mmcdole/reel/internal/service"
)

// command is one front-end command
type command struct {
	name    string
	args    string // usage suffix shown in HELP
	help    string
	minArgs int
	maxArgs int // -1 = unbounded
	run     func(r *REPL, args []string)
}

func (c command) usage() string {
	if c.args == "" {
		return c.name
	}
	return c.name + " " + c.args
}

// commandTable lists commands in HELP order
var commandTable = []command{
	{name: "NUMBER_OF_VIDEOS", help: "Shows how many videos are in the library.", run: (*REPL).numberOfVideos},
	{name: "SHOW_ALL_VIDEOS", help: "Lists all videos from the library.", run: (*REPL).showAllVideos},
	{name: "PLAY", args: "<video_id>", help: "Plays specified video.", minArgs: 1, maxArgs: 1, run: (*REPL).play},
	{name: "PLAY_RANDOM", help: "Plays a random video from the library.", run: (*REPL).playRandom},
	{name: "STOP", help: "Stop the current video.", run: (*REPL).stop},
	{name: "PAUSE", help: "Pause the current video.", run: (*REPL).pause},
	{name: "CONTINUE", help: "Resume the current paused video.", run: (*REPL).resume},
	{name: "SHOW_PLAYING", help: "Displays the title, url and paused status of the video that is currently playing (or paused).", run: (*REPL).showPlaying},
	{name: "CREATE_PLAYLIST", args: "<playlist_name>", help: "Creates a new (empty) playlist with the provided name.", minArgs: 1, maxArgs: 1, run: (*REPL).createPlaylist},
	{name: "ADD_TO_PLAYLIST", args: "<playlist_name> <video_id>", help: "Adds the requested video to the playlist.", minArgs: 2, maxArgs: 2, run: (*REPL).addToPlaylist},
	{name: "REMOVE_FROM_PLAYLIST", args: "<playlist_name> <video_id>", help: "Removes the specified video from the specified playlist", minArgs: 2, maxArgs: 2, run: (*REPL).removeFromPlaylist},
	{name: "CLEAR_PLAYLIST", args: "<playlist_name>", help: "Removes all videos from the playlist.", minArgs: 1, maxArgs: 1, run: (*REPL).clearPlaylist},
	{name: "DELETE_PLAYLIST", args: "<playlist_name>", help: "Deletes the playlist.", minArgs: 1, maxArgs: 1, run: (*REPL).deletePlaylist},
	{name: "SHOW_PLAYLIST", args: "<playlist_name>", help: "List all videos in this playlist.", minArgs: 1, maxArgs: 1, run: (*REPL).showPlaylist},
	{name: "SHOW_ALL_PLAYLISTS", help: "Display all the available playlists.", run: (*REPL).showAllPlaylists},
	{name: "SEARCH_VIDEOS", args: "<search_term>", help: "Display all the videos whose titles contain the search_term.", minArgs: 1, maxArgs: 1, run: (*REPL).searchVideos},
	{name: "SEARCH_VIDEOS_WITH_TAG", args: "<tag_name>", help: "Display all videos whose tags contains the provided tag.", minArgs: 1, maxArgs: 1, run: (*REPL).searchVideosWithTag},
	{name: "FLAG_VIDEO", args: "<video_id> [flag_reason]", help: "Mark a video as flagged.", minArgs: 1, maxArgs: -1, run: (*REPL).flagVideo},
	{name: "ALLOW_VIDEO", args: "<video_id>", help: "Removes a flag from a video.", minArgs: 1, maxArgs: 1, run: (*REPL).allowVideo},
	{name: "HELP", help: "Displays help.", run: (*REPL).printHelp},
}

// reason renders a domain error as the sentence used after "Cannot ...: "
func reason(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func (r *REPL) numberOfVideos(_ []string) {
	r.println(fmt.Sprintf("%d videos in the library", r.player.NumberOfVideos()))
}

func (r *REPL) showAllVideos(_ []string) {
	r.println("Here's a list of all available videos:")
	for _, line := range r.player.ShowAllVideos() {
		r.println(r.annotate(line))
	}
}

// annotate styles the flag suffix of a rendered video line
func (r *REPL) annotate(line string) string {
	if i := strings.Index(line, " - FLAGGED (reason: "); i >= 0 {
		return line[:i] + r.style.flagged(line[i:])
	}
	return line
}

func (r *REPL) play(args []string) {
	if _, err := r.player.PlayVideo(args[0]); err != nil {
		r.fail("Cannot play video: " + reason(err))
	}
}

func (r *REPL) playRandom(_ []string) {
	if _, err := r.player.PlayRandomVideo(); err != nil {
		r.fail(reason(err))
	}
}

func (r *REPL) stop(_ []string) {
	if _, err := r.player.StopVideo(); err != nil {
		r.fail("Cannot stop video: " + reason(err))
	}
}

func (r *REPL) pause(_ []string) {
	v, err := r.player.PauseVideo()
	switch {
	case errors.Is(err, domain.ErrAlreadyPaused):
		r.println("Video already paused: " + v.Title)
	case err != nil:
		r.fail("Cannot pause video: " + reason(err))
	}
}

func (r *REPL) resume(_ []string) {
	if _, err := r.player.ContinueVideo(); err != nil {
		r.fail("Cannot continue video: " + reason(err))
	}
}

func (r *REPL) showPlaying(_ []string) {
	st := r.player.ShowPlaying()
	switch st.State {
	case domain.PlaybackPlaying:
		r.println("Currently playing: " + format.Video(st.Video))
	case domain.PlaybackPaused:
		r.println("Currently playing: " + format.Video(st.Video) + " - PAUSED")
	default:
		r.println("No video is currently playing")
	}
}

func (r *REPL) createPlaylist(args []string) {
	name := args[0]
	if _, err := r.player.CreatePlaylist(name); err != nil {
		r.fail("Cannot create playlist: " + reason(err))
		return
	}
	r.ok("Successfully created new playlist: " + name)
}

func (r *REPL) addToPlaylist(args []string) {
	name, id := args[0], args[1]
	v, err := r.player.AddToPlaylist(name, id)
	if err != nil {
		r.fail(fmt.Sprintf("Cannot add video to %s: %s", name, reason(err)))
		r.hintPlaylist(name, err)
		return
	}
	r.ok(fmt.Sprintf("Added video to %s: %s", name, v.Title))
}

func (r *REPL) removeFromPlaylist(args []string) {
	name, id := args[0], args[1]
	v, err := r.player.RemoveFromPlaylist(name, id)
	if err != nil {
		r.fail(fmt.Sprintf("Cannot remove video from %s: %s", name, reason(err)))
		r.hintPlaylist(name, err)
		return
	}
	r.ok(fmt.Sprintf("Removed video from %s: %s", name, v.Title))
}

func (r *REPL) clearPlaylist(args []string) {
	name := args[0]
	if _, err := r.player.ClearPlaylist(name); err != nil {
		r.fail(fmt.Sprintf("Cannot clear playlist %s: %s", name, reason(err)))
		r.hintPlaylist(name, err)
		return
	}
	r.ok("Successfully removed all videos from " + name)
}

func (r *REPL) deletePlaylist(args []string) {
	name := args[0]
	if _, err := r.player.DeletePlaylist(name); err != nil {
		r.fail(fmt.Sprintf("Cannot delete playlist %s: %s", name, reason(err)))
		r.hintPlaylist(name, err)
		return
	}
	r.ok("Deleted playlist: " + name)
}

func (r *REPL) showPlaylist(args []string) {
	name := args[0]
	view, err := r.player.ShowPlaylist(name)
	if err != nil {
		r.fail(fmt.Sprintf("Cannot show playlist %s: %s", name, reason(err)))
		r.hintPlaylist(name, err)
		return
	}

	r.println("Showing playlist: " + name)
	if len(view.Videos) == 0 {
		r.println("No videos here yet")
		return
	}
	for _, v := range view.Videos {
		r.println(r.annotate(format.Annotated(v)))
	}
}

func (r *REPL) showAllPlaylists(_ []string) {
	playlists, err := r.player.ShowAllPlaylists()
	if err != nil {
		r.println(reason(err))
		return
	}
	r.println("Showing all playlists:")
	for _, p := range playlists {
		r.println(p.Title)
	}
}

func (r *REPL) searchVideos(args []string) {
	r.finishSearch(r.player.SearchVideos(args[0]))
}

func (r *REPL) searchVideosWithTag(args []string) {
	r.finishSearch(r.player.SearchVideosWithTag(args[0]))
}

func (r *REPL) finishSearch(out *service.SearchOutcome, err error) {
	switch {
	case errors.Is(err, domain.ErrNoResults):
		r.println("No search results for " + out.Query)
		if hints := r.player.SuggestTitles(out.Query); len(hints) > 0 {
			r.println(r.style.dim("Did you mean: " + strings.Join(hints, ", ") + "?"))
		}
	case err != nil:
		r.fail("Cannot play video: " + reason(err))
	}
}

func (r *REPL) flagVideo(args []string) {
	flagReason := strings.Join(args[1:], " ")
	v, err := r.player.FlagVideo(args[0], flagReason)
	if err != nil {
		r.fail("Cannot flag video: " + reason(err))
		return
	}
	r.ok(fmt.Sprintf("Successfully flagged video: %s (reason: %s)", v.Title, v.Flag))
}

func (r *REPL) allowVideo(args []string) {
	v, err := r.player.AllowVideo(args[0])
	if err != nil {
		r.fail("Cannot remove flag from video: " + reason(err))
		return
	}
	r.ok("Successfully removed flag from video: " + v.Title)
}

// hintPlaylist suggests an existing playlist after a failed lookup
func (r *REPL) hintPlaylist(name string, err error) {
	if !errors.Is(err, domain.ErrPlaylistNotFound) {
		return
	}
	if title, ok := r.player.SuggestPlaylist(name); ok {
		r.println(r.style.dim("Did you mean " + strconv.Quote(title) + "?"))
	}
}

func (r *REPL) printHelp(_ []string) {
	r.println(r.style.title("Available commands:"))
	for _, c := range r.ordered {
		r.println(fmt.Sprintf("    %s - %s", c.usage(), c.help))
	}
	r.println("    EXIT - Terminates the program execution.")
}
