package catalog

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"time"

	"kalibot/config"
)

// versionProbeTimeout bounds each `tool --version` invocation during a scan.
const versionProbeTimeout = 3 * time.Second

// versionArgs lists tools whose version flag differs from --version.
var versionArgs = map[string][]string{
	"nc":           {"-h"},
	"enum4linux":   {"-h"},
	"searchsploit": {"-h"},
	"dig":          {"-v"},
	"whois":        {"--help"},
	"traceroute":   {"--version"},
}

// Scan probes PATH for every registry entry and records installation state,
// resolved path and version. Native operations (file moves, reads) are
// always marked installed.
func (r *Registry) Scan(ctx context.Context) {
	for _, name := range r.Names() {
		bin := binaryFor(name)
		if bin == "" {
			r.markInstalled(name, "", "builtin")
			continue
		}
		path, err := exec.LookPath(bin)
		if err != nil {
			r.SetInstalled(name, false)
			continue
		}
		r.markInstalled(name, path, probeVersion(ctx, bin))
	}
}

func (r *Registry) markInstalled(name, path, version string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[name]; ok {
		e.Installed = true
		e.Path = path
		e.Version = version
	}
}

// probeVersion runs the tool's version flag and returns the first output
// line. Returns "" when the probe fails; a failed probe does not affect
// installation state.
func probeVersion(ctx context.Context, bin string) string {
	args, ok := versionArgs[bin]
	if !ok {
		args = []string{"--version"}
	}
	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if len(out) == 0 && err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("version probe failed for %s: %v", bin, err)
		}
		return ""
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}

// inventoryEntry is the JSON shape of one tool in an exported inventory.
type inventoryEntry struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Installed bool   `json:"installed"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
	Install   string `json:"install,omitempty"`
}

// ExportJSON renders the current inventory as indented JSON, suitable for
// dumping to disk or sending to an operator.
func (r *Registry) ExportJSON() ([]byte, error) {
	entries := r.Entries()
	inv := make([]inventoryEntry, 0, len(entries))
	for _, e := range entries {
		ie := inventoryEntry{
			Name:      e.Tool.Name,
			Category:  e.Category,
			Installed: e.Installed,
			Path:      e.Path,
			Version:   e.Version,
		}
		if !e.Installed {
			ie.Install = r.InstallCommand(e.Tool.Name)
		}
		inv = append(inv, ie)
	}
	return json.MarshalIndent(inv, "", "  ")
}
