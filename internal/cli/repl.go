package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/Abhisheklearn12/kvstore/internal/store"
)

// REPL drives the interactive read-eval-print loop. Input and output are
// injected so tests can script whole sessions against in-memory buffers.
type REPL struct {
	registry *Registry
	in       io.Reader
	out      io.Writer
	prompt   string
	logger   hclog.Logger
}

// NewREPL builds a REPL with every standard command registered against
// the given store.
func NewREPL(st *store.InstrumentedStore, in io.Reader, out io.Writer, prompt, defaultPath string, logger hclog.Logger) (*REPL, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	registry := NewRegistry()
	commands := []Command{
		&SetCmd{Store: st},
		&GetCmd{Store: st},
		&RemoveCmd{Store: st},
		&ExistsCmd{Store: st},
		&ListCmd{Store: st},
		&ClearCmd{Store: st},
		&SaveCmd{Store: st, DefaultPath: defaultPath},
		&LoadCmd{Store: st, DefaultPath: defaultPath},
		&StatsCmd{Store: st},
		&HelpCmd{Registry: registry},
		&ExitCmd{},
	}
	for _, cmd := range commands {
		if err := registry.Register(cmd); err != nil {
			return nil, err
		}
	}

	return &REPL{
		registry: registry,
		in:       in,
		out:      out,
		prompt:   prompt,
		logger:   logger,
	}, nil
}

// Run reads lines until EOF or the exit command. Every failure short of
// that is reported and the loop continues.
func (r *REPL) Run() error {
	r.logger.Info("Welcome to the Key-Value CLI Store")
	r.logger.Info("Type 'exit' to quit")

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, r.prompt)

		if !scanner.Scan() {
			// EOF ends the session the same way exit does.
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, rest := splitWord(line)

		cmd, ok := r.registry.Get(name)
		if !ok {
			r.logger.Error("unknown command", "command", name)
			fmt.Fprintf(r.out, "Available commands: %s\n", strings.Join(r.registry.Names(), ", "))
			continue
		}

		err := cmd.Run(r.out, rest)
		switch {
		case errors.Is(err, ErrExit):
			return nil
		case errors.Is(err, ErrUsage):
			r.logger.Error("bad usage", "command", name)
			fmt.Fprintf(r.out, "Usage: %s\n", cmd.Usage())
		case err != nil:
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}
