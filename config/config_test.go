package config

import (
	"testing"
	"time"
)

func TestToolTimeoutFallback(t *testing.T) {
	cfg := &Config{Timeouts: map[string]int{"nmap": 600, "default": 120}}

	tests := []struct {
		tool string
		want time.Duration
	}{
		{"nmap", 600 * time.Second},
		{"nikto", 120 * time.Second}, // falls back to default
	}
	for _, tt := range tests {
		if got := cfg.ToolTimeout(tt.tool); got != tt.want {
			t.Errorf("ToolTimeout(%s) = %s, want %s", tt.tool, got, tt.want)
		}
	}

	empty := &Config{}
	if got := empty.ToolTimeout("anything"); got != 5*time.Minute {
		t.Errorf("ToolTimeout with no table = %s, want 5m", got)
	}
}

func TestWordlistPassthrough(t *testing.T) {
	cfg := &Config{Wordlists: map[string]string{"common": "/usr/share/wordlists/dirb/common.txt"}}

	if got := cfg.Wordlist("common"); got != "/usr/share/wordlists/dirb/common.txt" {
		t.Errorf("Wordlist(common) = %q", got)
	}
	// Unknown aliases are treated as literal paths.
	if got := cfg.Wordlist("/tmp/custom.txt"); got != "/tmp/custom.txt" {
		t.Errorf("Wordlist(path) = %q", got)
	}
}

func TestUserAllowed(t *testing.T) {
	open := &Config{}
	if !open.UserAllowed(12345) {
		t.Error("empty allow-list should admit everyone")
	}

	restricted := &Config{Telegram: TelegramConfig{AllowedUsers: []int64{100, 200}}}
	if !restricted.UserAllowed(200) {
		t.Error("listed user rejected")
	}
	if restricted.UserAllowed(300) {
		t.Error("unlisted user admitted")
	}
}

func TestParseUserList(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"100,200,300", 3},
		{" 100 , 200 ", 2},
		{"100,not-a-number,200", 2},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseUserList(tt.raw); len(got) != tt.want {
			t.Errorf("parseUserList(%q) = %v, want %d ids", tt.raw, got, tt.want)
		}
	}
}

func TestDefaultTimeoutsHaveDefault(t *testing.T) {
	timeouts := DefaultTimeouts()
	if timeouts["default"] <= 0 {
		t.Error("default timeout entry missing")
	}
	if timeouts["hydra"] <= timeouts["dig"] {
		t.Error("brute-force timeout should exceed DNS lookup timeout")
	}
	if timeouts["install_package"] <= timeouts["default"] {
		t.Error("package installs need more room than the general default")
	}
}
