package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"

	"github.com/Abhisheklearn12/kvstore/internal/store"
	"github.com/Abhisheklearn12/kvstore/pkg/kv"
)

// firstField returns the first whitespace-delimited token of args.
// Trailing tokens are ignored, matching the historical CLI behavior.
func firstField(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// splitWord splits off the first token of line on any whitespace, not just
// a space, and returns it with the raw remainder of the line.
func splitWord(line string) (word, rest string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i+1:]
}

// SetCmd implements "set <key> <value>". The value is the remainder of
// the line after the key, trimmed of surrounding whitespace. An empty key
// or value is a usage error and does not touch the store.
type SetCmd struct {
	Store kv.Store
}

func (c *SetCmd) Name() string  { return "set" }
func (c *SetCmd) Usage() string { return "set <key> <value>" }

func (c *SetCmd) Run(out io.Writer, args string) error {
	key, rest := splitWord(args)
	value := strings.TrimSpace(rest)
	if key == "" || value == "" {
		return ErrUsage
	}
	return c.Store.Set(key, value)
}

// GetCmd implements "get <key>".
type GetCmd struct {
	Store kv.Store
}

func (c *GetCmd) Name() string  { return "get" }
func (c *GetCmd) Usage() string { return "get <key>" }

func (c *GetCmd) Run(out io.Writer, args string) error {
	key := firstField(args)
	if key == "" {
		return ErrUsage
	}

	if value, ok := c.Store.Get(key); ok {
		fmt.Fprintf(out, "%s = %s\n", key, value)
	} else {
		fmt.Fprintln(out, "Key not found")
	}
	return nil
}

// RemoveCmd implements "remove <key>". Removing an absent key is a no-op.
type RemoveCmd struct {
	Store kv.Store
}

func (c *RemoveCmd) Name() string  { return "remove" }
func (c *RemoveCmd) Usage() string { return "remove <key>" }

func (c *RemoveCmd) Run(out io.Writer, args string) error {
	key := firstField(args)
	if key == "" {
		return ErrUsage
	}
	return c.Store.Delete(key)
}

// ExistsCmd implements "exists <key>".
type ExistsCmd struct {
	Store kv.Store
}

func (c *ExistsCmd) Name() string  { return "exists" }
func (c *ExistsCmd) Usage() string { return "exists <key>" }

func (c *ExistsCmd) Run(out io.Writer, args string) error {
	key := firstField(args)
	if key == "" {
		return ErrUsage
	}

	fmt.Fprintln(out, c.Store.Exists(key))
	return nil
}

// ListCmd implements "list": a dump of every entry, "(empty)" when the
// store holds nothing. Order is whatever the backend produces.
type ListCmd struct {
	Store kv.Store
}

func (c *ListCmd) Name() string  { return "list" }
func (c *ListCmd) Usage() string { return "list" }

func (c *ListCmd) Run(out io.Writer, args string) error {
	entries := c.Store.List()

	fmt.Fprintln(out, "\n[STORE DUMP]")
	if len(entries) == 0 {
		fmt.Fprintln(out, "(empty)")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "- %s: %s\n", e.Key, e.Value)
	}
	return nil
}

// ClearCmd implements "clear".
type ClearCmd struct {
	Store kv.Store
}

func (c *ClearCmd) Name() string  { return "clear" }
func (c *ClearCmd) Usage() string { return "clear" }

func (c *ClearCmd) Run(out io.Writer, args string) error {
	return c.Store.Clear()
}

// SaveCmd implements "save [path]". With no argument the configured
// default snapshot path is used.
type SaveCmd struct {
	Store       kv.Store
	DefaultPath string
}

func (c *SaveCmd) Name() string  { return "save" }
func (c *SaveCmd) Usage() string { return "save [path]" }

func (c *SaveCmd) Run(out io.Writer, args string) error {
	path := firstField(args)
	if path == "" {
		path = c.DefaultPath
	}
	if path == "" {
		return ErrUsage
	}
	return c.Store.Save(path)
}

// LoadCmd implements "load [path]". With no argument the configured
// default snapshot path is used.
type LoadCmd struct {
	Store       kv.Store
	DefaultPath string
}

func (c *LoadCmd) Name() string  { return "load" }
func (c *LoadCmd) Usage() string { return "load [path]" }

func (c *LoadCmd) Run(out io.Writer, args string) error {
	path := firstField(args)
	if path == "" {
		path = c.DefaultPath
	}
	if path == "" {
		return ErrUsage
	}
	return c.Store.Load(path)
}

// StatsCmd implements "stats": entry count, payload size, and per-op
// counters from the instrumented store.
type StatsCmd struct {
	Store *store.InstrumentedStore
}

func (c *StatsCmd) Name() string  { return "stats" }
func (c *StatsCmd) Usage() string { return "stats" }

func (c *StatsCmd) Run(out io.Writer, args string) error {
	var payload uint64
	for _, e := range c.Store.List() {
		payload += uint64(len(e.Key) + len(e.Value))
	}

	m := c.Store.GetMetrics()

	fmt.Fprintf(out, "entries: %d (%s)\n", c.Store.Len(), humanize.Bytes(payload))
	fmt.Fprintf(out, "get:     %d ops, avg %s\n", m.GetCount, m.GetAvgLatency)
	fmt.Fprintf(out, "set:     %d ops, avg %s\n", m.SetCount, m.SetAvgLatency)
	fmt.Fprintf(out, "remove:  %d ops, avg %s\n", m.DeleteCount, m.DeleteAvgLatency)
	return nil
}

// HelpCmd implements "help": lists every registered command's usage line.
type HelpCmd struct {
	Registry *Registry
}

func (c *HelpCmd) Name() string  { return "help" }
func (c *HelpCmd) Usage() string { return "help" }

func (c *HelpCmd) Run(out io.Writer, args string) error {
	fmt.Fprintln(out, "Available commands:")
	for _, name := range c.Registry.Names() {
		cmd, _ := c.Registry.Get(name)
		fmt.Fprintf(out, "  %s\n", cmd.Usage())
	}
	return nil
}

// ExitCmd implements "exit": ends the interactive loop.
type ExitCmd struct{}

func (c *ExitCmd) Name() string  { return "exit" }
func (c *ExitCmd) Usage() string { return "exit" }

func (c *ExitCmd) Run(out io.Writer, args string) error {
	return ErrExit
}
