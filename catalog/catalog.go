// Package catalog holds the static registry of invocable security tools.
//
// Each tool is described once, as an MCP tool descriptor plus KaliBot
// metadata (category, install command). The same descriptors feed three
// consumers: the natural-language documentation inserted into the assistant's
// system prompt, the MCP server's tool registration, and the dispatcher's
// name/availability validation. Descriptors are loaded once at startup and
// never mutated afterwards except for the discovery flags.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Entry is one catalog tool: the MCP descriptor plus discovery state.
type Entry struct {
	Tool     mcptypes.Tool
	Category string
	Install  string // suggested install command, empty if always present

	// Discovery state, populated by Scan
	Installed bool
	Path      string
	Version   string
}

// Registry is the tool catalog. Descriptor data is immutable after
// construction; only the discovery flags change, under the lock.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*Entry
}

// NewRegistry builds a registry from entries, preserving their order.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{entries: make(map[string]*Entry, len(entries))}
	for i := range entries {
		e := entries[i]
		if e.Tool.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if _, dup := r.entries[e.Tool.Name]; dup {
			return nil, fmt.Errorf("duplicate catalog entry: %s", e.Tool.Name)
		}
		r.entries[e.Tool.Name] = &e
		r.order = append(r.order, e.Tool.Name)
	}
	return r, nil
}

// NewDefaultRegistry builds the registry with the builtin tool set.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinEntries())
	if err != nil {
		// Builtin entries are compile-time data; a duplicate is a bug.
		panic(err)
	}
	return r
}

// Get returns the entry for a tool name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Has reports whether a tool name exists in the catalog.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// Installed reports whether a catalog tool was found on this system.
// Unknown names are reported as not installed.
func (r *Registry) Installed(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return ok && e.Installed
}

// SetInstalled updates the availability flag for a tool. Path and version
// come from Scan; clearing the flag clears them too.
func (r *Registry) SetInstalled(name string, installed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[name]; ok {
		e.Installed = installed
		if !installed {
			e.Path = ""
			e.Version = ""
		}
	}
}

// Names returns all tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries returns a snapshot of all entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.entries[name])
	}
	return out
}

// InstalledEntries returns the entries discovery found on this system.
func (r *Registry) InstalledEntries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Entry
	for _, name := range r.order {
		if r.entries[name].Installed {
			out = append(out, *r.entries[name])
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, name := range r.order {
		cat := r.entries[name].Category
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// ByCategory returns the entries in one category, in registration order.
func (r *Registry) ByCategory(category string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Entry
	for _, name := range r.order {
		if r.entries[name].Category == category {
			out = append(out, *r.entries[name])
		}
	}
	return out
}

// InstallCommand returns the suggested install command for a tool. Tools
// without a specific entry get the stock apt suggestion, matching what the
// assistant is taught to offer.
func (r *Registry) InstallCommand(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[name]; ok && e.Install != "" {
		return e.Install
	}
	return "sudo apt install " + name
}

// InstallSpec resolves the suggested install command for a tool into the
// package manager and package name to run it with. The package name often
// differs from the tool name (searchsploit ships in exploitdb, msfvenom in
// metasploit-framework), and a few tools install through gem or pip rather
// than apt, so installs must follow the suggestion, not the tool name.
func (r *Registry) InstallSpec(name string) (manager, pkg string) {
	fields := strings.Fields(r.InstallCommand(name))
	if len(fields) > 0 && fields[0] == "sudo" {
		fields = fields[1:]
	}
	// Expect "<manager> install <package>".
	if len(fields) < 3 || fields[1] != "install" {
		return "apt", name
	}
	switch fields[0] {
	case "apt", "apt-get":
		manager = "apt"
	case "pip", "pip3", "gem", "cargo", "npm":
		manager = fields[0]
	default:
		return "apt", name
	}
	return manager, fields[len(fields)-1]
}
