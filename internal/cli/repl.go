// Package cli is the line-oriented front end: one command per line,
// dispatched to the player and rendered to text.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mmcdole/reel/internal/service"
)

// Options configures the REPL
type Options struct {
	Color  bool   // Style output with lipgloss
	Prompt string // Printed before each command; empty for none
}

// REPL reads commands from in and writes results to out
type REPL struct {
	player   *service.Player
	in       *bufio.Reader
	out      io.Writer
	opts     Options
	style    styler
	commands map[string]command
	ordered  []command
	logger   *slog.Logger
}

// New creates a REPL. in must be shared with any line-based selection prompt.
func New(player *service.Player, in *bufio.Reader, out io.Writer, opts Options, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.Default()
	}
	commands := make(map[string]command, len(commandTable))
	for _, c := range commandTable {
		commands[c.name] = c
	}
	return &REPL{
		player:   player,
		in:       in,
		out:      out,
		opts:     opts,
		style:    styler{color: opts.Color},
		commands: commands,
		ordered:  commandTable,
		logger:   logger,
	}
}

// Run processes commands until EXIT or end of input
func (r *REPL) Run() error {
	for {
		if r.opts.Prompt != "" {
			fmt.Fprint(r.out, r.opts.Prompt)
		}

		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read command: %w", err)
		}
		eof := err != nil

		if strings.TrimSpace(line) != "" {
			if !r.Execute(line) {
				return nil
			}
		}
		if eof {
			return nil
		}
	}
}

// Execute runs a single command line. It returns false on EXIT.
func (r *REPL) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	name := strings.ToUpper(fields[0])
	args := fields[1:]
	if name == "EXIT" {
		r.println("Goodbye!")
		return false
	}

	c, ok := r.commands[name]
	if !ok {
		r.logger.Debug("unknown command", "command", fields[0])
		r.println("Please enter a valid command, type HELP for a list of available commands.")
		return true
	}
	if len(args) < c.minArgs || (c.maxArgs >= 0 && len(args) > c.maxArgs) {
		r.println("Usage: " + c.usage())
		return true
	}

	r.logger.Debug("executing command", "command", name, "args", args)
	c.run(r, args)
	return true
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *REPL) ok(s string) {
	r.println(r.style.ok(s))
}

func (r *REPL) fail(s string) {
	r.println(r.style.fail(s))
}
