package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

var (
	// ErrExit signals the interactive loop to terminate cleanly.
	ErrExit = errors.New("exit requested")
	// ErrUsage signals that a command was invoked with bad arguments.
	// The loop responds by printing the command's usage line.
	ErrUsage = errors.New("bad usage")
)

// Command defines the interface for interactive commands.
type Command interface {
	Name() string  // command name (e.g., "set")
	Usage() string // one-line usage (e.g., "set <key> <value>")
	// Run executes the command. args is the raw remainder of the input
	// line after the command name, untrimmed. User-facing output goes
	// to the provided writer.
	Run(out io.Writer, args string) error
}

// Registry holds the registered commands.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	r.commands[name] = cmd
	return nil
}

// Get returns a command by its name.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, exists := r.commands[name]
	return cmd, exists
}

// Names returns all registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
