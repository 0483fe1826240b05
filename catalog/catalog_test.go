package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func testEntries() []Entry {
	return []Entry{
		{
			Category: "scanning",
			Install:  "sudo apt install scanner",
			Tool: mcp.NewTool("scanner",
				mcp.WithDescription("Scans things."),
				mcp.WithString("target", mcp.Required(), mcp.Description("what to scan")),
				mcp.WithString("mode",
					mcp.Description("scan mode"),
					mcp.Enum("fast", "slow"),
					mcp.DefaultString("fast"),
				),
			),
		},
		{
			Category: "scanning",
			Tool: mcp.NewTool("prober",
				mcp.WithDescription("Probes things."),
				mcp.WithString("host", mcp.Required()),
			),
		},
		{
			Category: "misc",
			Tool: mcp.NewTool("helper",
				mcp.WithDescription("Helps."),
			),
		},
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	entries := testEntries()
	entries = append(entries, Entry{Tool: mcp.NewTool("scanner")})
	if _, err := NewRegistry(entries); err == nil {
		t.Fatal("expected duplicate name error, got nil")
	}
}

func TestRegistryLookup(t *testing.T) {
	r, err := NewRegistry(testEntries())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	if !r.Has("scanner") {
		t.Error("Has(scanner) = false, want true")
	}
	if r.Has("missing") {
		t.Error("Has(missing) = true, want false")
	}
	e, ok := r.Get("prober")
	if !ok {
		t.Fatal("Get(prober) not found")
	}
	if e.Category != "scanning" {
		t.Errorf("prober category = %q, want scanning", e.Category)
	}
}

func TestCategoriesPreserveFirstSeenOrder(t *testing.T) {
	r, err := NewRegistry(testEntries())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	got := r.Categories()
	want := []string{"scanning", "misc"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	scanning := r.ByCategory("scanning")
	if len(scanning) != 2 || scanning[0].Tool.Name != "scanner" {
		t.Errorf("ByCategory(scanning) order wrong: got %d entries", len(scanning))
	}
}

func TestInstallCommandFallback(t *testing.T) {
	r, err := NewRegistry(testEntries())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"scanner", "sudo apt install scanner"},
		{"prober", "sudo apt install prober"},
	}
	for _, tt := range tests {
		if got := r.InstallCommand(tt.name); got != tt.want {
			t.Errorf("InstallCommand(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInstallSpecFollowsSuggestedCommand(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		tool        string
		wantManager string
		wantPkg     string
	}{
		// Package name differs from the tool name.
		{"searchsploit", "apt", "exploitdb"},
		{"msfvenom", "apt", "metasploit-framework"},
		// Non-apt manager.
		{"wpscan", "gem", "wpscan"},
		{"nmap", "apt", "nmap"},
		// No suggestion falls back to apt with the tool name.
		{"unknown-tool", "apt", "unknown-tool"},
	}
	for _, tt := range tests {
		manager, pkg := r.InstallSpec(tt.tool)
		if manager != tt.wantManager || pkg != tt.wantPkg {
			t.Errorf("InstallSpec(%s) = (%q, %q), want (%q, %q)",
				tt.tool, manager, pkg, tt.wantManager, tt.wantPkg)
		}
	}
}

func TestSetInstalledFiltersInstalledEntries(t *testing.T) {
	r, err := NewRegistry(testEntries())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	r.SetInstalled("scanner", true)
	installed := r.InstalledEntries()
	if len(installed) != 1 || installed[0].Tool.Name != "scanner" {
		t.Errorf("InstalledEntries() = %d entries, want just scanner", len(installed))
	}
	if !r.Installed("scanner") {
		t.Error("Installed(scanner) = false after SetInstalled")
	}
	if r.Installed("prober") {
		t.Error("Installed(prober) = true, never marked")
	}
}

func TestRenderDocsIsDeterministic(t *testing.T) {
	r, err := NewRegistry(testEntries())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	first := r.RenderDocs(false)
	for i := 0; i < 5; i++ {
		if again := r.RenderDocs(false); again != first {
			t.Fatal("RenderDocs output changed between calls")
		}
	}
}

func TestRenderDocsContent(t *testing.T) {
	r, err := NewRegistry(testEntries())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	docs := r.RenderDocs(false)
	for _, want := range []string{
		"## scanning",
		"### scanner",
		"Scans things.",
		"one of: fast|slow",
		"default: fast",
		"required",
	} {
		if !strings.Contains(docs, want) {
			t.Errorf("RenderDocs missing %q in:\n%s", want, docs)
		}
	}

	// Required parameters come before optional ones.
	target := strings.Index(docs, "- target")
	mode := strings.Index(docs, "- mode")
	if target == -1 || mode == -1 || target > mode {
		t.Errorf("required parameter not listed first (target=%d, mode=%d)", target, mode)
	}
}

func TestRenderDocsOnlyInstalled(t *testing.T) {
	r, err := NewRegistry(testEntries())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	r.SetInstalled("prober", true)

	docs := r.RenderDocs(true)
	if strings.Contains(docs, "### scanner") {
		t.Error("uninstalled tool rendered in installed-only docs")
	}
	if !strings.Contains(docs, "### prober") {
		t.Error("installed tool missing from installed-only docs")
	}
	if strings.Contains(docs, "## misc") {
		t.Error("category with no installed tools should be omitted")
	}
}

func TestExportJSON(t *testing.T) {
	r, err := NewRegistry(testEntries())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	r.SetInstalled("scanner", true)

	data, err := r.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	var inv []map[string]any
	if err := json.Unmarshal(data, &inv); err != nil {
		t.Fatalf("ExportJSON produced invalid JSON: %v", err)
	}
	if len(inv) != 3 {
		t.Fatalf("exported %d entries, want 3", len(inv))
	}
	if inv[0]["name"] != "scanner" || inv[0]["installed"] != true {
		t.Errorf("first entry wrong: %v", inv[0])
	}
	if _, ok := inv[1]["install"]; !ok {
		t.Error("uninstalled entry should carry an install suggestion")
	}
}

func TestBuiltinEntriesAreWellFormed(t *testing.T) {
	r, err := NewRegistry(BuiltinEntries())
	if err != nil {
		t.Fatalf("builtin entries: %v", err)
	}

	for _, e := range r.Entries() {
		if e.Tool.Description == "" {
			t.Errorf("%s: missing description", e.Tool.Name)
		}
		if e.Category == "" {
			t.Errorf("%s: missing category", e.Tool.Name)
		}
		for _, req := range e.Tool.InputSchema.Required {
			if _, ok := e.Tool.InputSchema.Properties[req]; !ok {
				t.Errorf("%s: required parameter %q has no schema", e.Tool.Name, req)
			}
		}
	}

	for _, name := range []string{"nmap", "gobuster", "sqlmap", "hydra", "dig", "install_package"} {
		if !r.Has(name) {
			t.Errorf("builtin set missing %s", name)
		}
	}
}

func TestBinaryFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"nmap", "nmap"},
		{"netcat", "nc"},
		{"download", "wget"},
		{"git_clone", "git"},
		{"read_file", ""},
	}
	for _, tt := range tests {
		if got := binaryFor(tt.name); got != tt.want {
			t.Errorf("binaryFor(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
