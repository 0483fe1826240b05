package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

type TelegramConfig struct {
	AllowedUsers []int64 `toml:"allowed_users"`
}

type AIConfig struct {
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	BaseURL     string  `toml:"base_url,omitempty"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	MaxContext  int     `toml:"max_context"`
}

type SecurityConfig struct {
	CredentialStorage string `toml:"credential_storage"`
	SSHKeyPath        string `toml:"ssh_key_path,omitempty"`
}

type UserConfig struct {
	Telegram  TelegramConfig    `toml:"telegram"`
	AI        AIConfig          `toml:"ai"`
	Security  SecurityConfig    `toml:"security"`
	Timeouts  map[string]int    `toml:"timeouts"`
	Wordlists map[string]string `toml:"wordlists"`
}

type Config struct {
	DataDirectory string
	Telegram      TelegramConfig
	AI            AIConfig
	Security      SecurityConfig
	Timeouts      map[string]int
	Wordlists     map[string]string
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// ToolTimeout returns the configured timeout for a tool, falling back to the
// "default" entry and finally to five minutes.
func (c *Config) ToolTimeout(tool string) time.Duration {
	if secs, ok := c.Timeouts[tool]; ok && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if secs, ok := c.Timeouts["default"]; ok && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 5 * time.Minute
}

// Wordlist resolves a wordlist alias (common, medium, big, rockyou) to its
// path. Unknown aliases are returned unchanged so users can pass raw paths.
func (c *Config) Wordlist(alias string) string {
	if path, ok := c.Wordlists[alias]; ok {
		return path
	}
	return alias
}

// UserAllowed reports whether a Telegram user ID may use the bot. An empty
// allow-list means the bot is open, matching the original deployment default.
func (c *Config) UserAllowed(userID int64) bool {
	if len(c.Telegram.AllowedUsers) == 0 {
		return true
	}
	for _, id := range c.Telegram.AllowedUsers {
		if id == userID {
			return true
		}
	}
	return false
}

func (c *Config) applyEnvOverrides() {
	if dataDir := os.Getenv("KALIBOT_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
	if provider := os.Getenv("KALIBOT_AI_PROVIDER"); provider != "" {
		c.AI.Provider = provider
	}
	if model := os.Getenv("KALIBOT_AI_MODEL"); model != "" {
		c.AI.Model = model
	}
	if users := os.Getenv("KALIBOT_ALLOWED_USERS"); users != "" {
		c.Telegram.AllowedUsers = parseUserList(users)
	}
}

func parseUserList(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func CheckDebug() bool {
	debug := os.Getenv("KALIBOT_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := dataDir + "/debug.log"

	// 0600 - debug output can include command lines and targets
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (KALIBOT_DEBUG=%s) ===", os.Getenv("KALIBOT_DEBUG"))
}

func Load() (*Config, error) {
	systemCfg, err := LoadSystemConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}

	cfg := &Config{DataDirectory: systemCfg.DataDirectory}
	if dataDir := os.Getenv("KALIBOT_DATA_DIR"); dataDir != "" {
		cfg.DataDirectory = dataDir
	}

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	userCfg, err := LoadUserConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	cfg.Telegram = userCfg.Telegram
	cfg.AI = userCfg.AI
	cfg.Security = userCfg.Security
	cfg.Timeouts = userCfg.Timeouts
	cfg.Wordlists = userCfg.Wordlists

	cfg.applyEnvOverrides()

	if cfg.Timeouts == nil {
		cfg.Timeouts = DefaultTimeouts()
	}
	if cfg.Wordlists == nil {
		cfg.Wordlists = DefaultWordlists()
	}

	return cfg, nil
}
